package html

type TokenType int

const (
	TokenText TokenType = iota
	TokenTag
)

// Token is a raw lexical unit of the markup stream: either a text run
// or the contents of a <...> run with the angle brackets stripped.
type Token struct {
	Type TokenType
	Data string
}

// Tokenizer splits raw markup into text runs and tag runs. It never
// fails: an unterminated tag simply consumes the rest of the input, and
// a trailing text run is flushed as text.
type Tokenizer struct {
	input string
	pos   int
}

func NewTokenizer(markup string) *Tokenizer {
	return &Tokenizer{input: markup}
}

// Next returns the next token. The second result is false once the
// input is exhausted.
func (t *Tokenizer) Next() (Token, bool) {
	if t.pos >= len(t.input) {
		return Token{}, false
	}
	if t.input[t.pos] == '<' {
		return t.readTag(), true
	}
	return t.readText(), true
}

func (t *Tokenizer) readTag() Token {
	t.pos++ // consume '<'
	start := t.pos
	for t.pos < len(t.input) && t.input[t.pos] != '>' {
		t.pos++
	}
	data := t.input[start:t.pos]
	if t.pos < len(t.input) {
		t.pos++ // consume '>'
	}
	return Token{Type: TokenTag, Data: data}
}

func (t *Tokenizer) readText() Token {
	start := t.pos
	for t.pos < len(t.input) && t.input[t.pos] != '<' {
		t.pos++
	}
	return Token{Type: TokenText, Data: t.input[start:t.pos]}
}
