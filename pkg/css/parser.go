package css

import (
	"fmt"
	"strings"
	"unicode"
)

// Parser is a cursor over a CSS character buffer. The explicit cursor
// (rather than a one-pass iterator) lets the rule parser resynchronize
// after a malformed declaration or rule without losing the rest of the
// sheet.
type Parser struct {
	input string
	pos   int
}

func NewParser(css string) *Parser {
	return &Parser{input: css}
}

// Parse parses a whole stylesheet into rules. A malformed rule is
// skipped by scanning to the next '}' and the remainder of the sheet is
// parsed normally; Parse itself never fails.
func (p *Parser) Parse() []Rule {
	var rules []Rule
	for p.pos < len(p.input) {
		p.whitespace()
		rule, err := p.rule()
		if err != nil {
			if why := p.ignoreUntil("}"); why == '}' {
				p.pos++
				p.whitespace()
				continue
			}
			break
		}
		rules = append(rules, rule)
	}
	return rules
}

func (p *Parser) rule() (Rule, error) {
	selector, err := p.selector()
	if err != nil {
		return Rule{}, err
	}
	if err := p.literal('{'); err != nil {
		return Rule{}, err
	}
	p.whitespace()
	declarations := p.Body()
	if err := p.literal('}'); err != nil {
		return Rule{}, err
	}
	return Rule{Selector: selector, Declarations: declarations}, nil
}

// selector parses whitespace-separated tag names into a left-folded
// descendant chain; the first name is the outermost ancestor.
func (p *Parser) selector() (Selector, error) {
	word, err := p.word()
	if err != nil {
		return nil, err
	}
	var out Selector = TagSelector{Tag: strings.ToLower(word)}
	p.whitespace()
	for p.pos < len(p.input) && p.input[p.pos] != '{' {
		word, err := p.word()
		if err != nil {
			return nil, err
		}
		out = DescendantSelector{
			Ancestor:   out,
			Descendant: TagSelector{Tag: strings.ToLower(word)},
		}
		p.whitespace()
	}
	return out, nil
}

// Body parses a run of declarations up to a closing brace or the end of
// input. A failed declaration is skipped by scanning to the next ';' or
// '}'; the declarations before and after it survive. Used both for rule
// bodies and for inline style attributes.
func (p *Parser) Body() map[string]string {
	declarations := make(map[string]string)
	for p.pos < len(p.input) && p.input[p.pos] != '}' {
		property, value, err := p.pair()
		if err == nil {
			declarations[property] = value
			p.whitespace()
			err = p.literal(';')
		}
		if err != nil {
			if why := p.ignoreUntil(";}"); why == ';' {
				p.pos++
			} else {
				break
			}
		}
		p.whitespace()
	}
	return declarations
}

// pair parses one `property: value` declaration. The property name is
// lowercased; the value is kept as written.
func (p *Parser) pair() (string, string, error) {
	property, err := p.word()
	if err != nil {
		return "", "", err
	}
	p.whitespace()
	if err := p.literal(':'); err != nil {
		return "", "", err
	}
	p.whitespace()
	value, err := p.word()
	if err != nil {
		return "", "", err
	}
	return strings.ToLower(property), value, nil
}

// word greedily consumes alphanumerics plus the punctuation that can
// appear in property names and values. It fails only when nothing
// matches.
func (p *Parser) word() (string, error) {
	start := p.pos
	for p.pos < len(p.input) && isWordChar(p.input[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return "", fmt.Errorf("css: expected word at position %d", p.pos)
	}
	return p.input[start:p.pos], nil
}

func (p *Parser) literal(ch byte) error {
	if p.pos < len(p.input) && p.input[p.pos] == ch {
		p.pos++
		return nil
	}
	return fmt.Errorf("css: expected %q at position %d", string(ch), p.pos)
}

func (p *Parser) whitespace() {
	for p.pos < len(p.input) && unicode.IsSpace(rune(p.input[p.pos])) {
		p.pos++
	}
}

// ignoreUntil scans forward to the first of chars and returns it, or 0
// at end of input. The found character is not consumed.
func (p *Parser) ignoreUntil(chars string) byte {
	for p.pos < len(p.input) {
		if strings.IndexByte(chars, p.input[p.pos]) >= 0 {
			return p.input[p.pos]
		}
		p.pos++
	}
	return 0
}

func isWordChar(c byte) bool {
	if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' {
		return true
	}
	switch c {
	case '#', '-', '.', '%':
		return true
	}
	return false
}
