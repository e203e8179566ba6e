package html

import (
	"strings"
)

// Parser builds a document tree from raw markup. It never fails:
// malformed input is structurally repaired via implicit-tag insertion
// and stray-close-tag suppression.
type Parser struct {
	tokenizer  *Tokenizer
	unfinished []*Node // open-element stack, root first
}

func NewParser(markup string) *Parser {
	return &Parser{tokenizer: NewTokenizer(markup)}
}

// Parse parses markup and returns the document root.
func Parse(markup string) *Node {
	return NewParser(markup).Parse()
}

func (p *Parser) Parse() *Node {
	for {
		token, ok := p.tokenizer.Next()
		if !ok {
			break
		}
		switch token.Type {
		case TokenText:
			p.addText(token.Data)
		case TokenTag:
			p.addTag(token.Data)
		}
	}
	return p.finish()
}

func (p *Parser) addText(text string) {
	// Inter-tag whitespace carries no content and must not trigger
	// implicit body insertion.
	if strings.TrimSpace(text) == "" {
		return
	}
	p.implicitTags("")
	p.top().AddChild(NewText(text, nil))
}

func (p *Parser) addTag(raw string) {
	tag, attributes := parseTagText(raw)
	if strings.HasPrefix(tag, "!") {
		// Comments and doctype declarations.
		return
	}
	p.implicitTags(tag)

	switch {
	case strings.HasPrefix(tag, "/"):
		// A close with only the root open would underflow the stack.
		if len(p.unfinished) <= 1 {
			return
		}
		p.unfinished = p.unfinished[:len(p.unfinished)-1]
	case IsVoid(tag):
		p.top().AddChild(NewElement(tag, attributes, nil))
	default:
		node := NewElement(tag, attributes, nil)
		if top := p.top(); top != nil {
			top.AddChild(node)
		}
		p.unfinished = append(p.unfinished, node)
	}
}

// implicitTags opens (or closes) the structural html/head/body elements
// the incoming tag requires, repeating until the stack is stable.
func (p *Parser) implicitTags(tag string) {
	for {
		open := make([]string, len(p.unfinished))
		for i, node := range p.unfinished {
			open[i] = node.TagName
		}
		switch {
		case len(open) == 0 && tag != "html":
			p.addTag("html")
		case len(open) == 1 && open[0] == "html" &&
			tag != "head" && tag != "body" && tag != "/html":
			if IsHeadOnly(tag) {
				p.addTag("head")
			} else {
				p.addTag("body")
			}
		case len(open) == 2 && open[0] == "html" && open[1] == "head" &&
			!IsHeadOnly(tag) && tag != "/head":
			p.addTag("/head")
		default:
			return
		}
	}
}

// finish collapses any remaining open elements into the root and
// returns it. Elements are already attached to their parents when
// opened, so collapsing is a matter of popping the stack.
func (p *Parser) finish() *Node {
	if len(p.unfinished) == 0 {
		p.implicitTags("")
	}
	root := p.unfinished[0]
	p.unfinished = p.unfinished[:0]
	return root
}

func (p *Parser) top() *Node {
	if len(p.unfinished) == 0 {
		return nil
	}
	return p.unfinished[len(p.unfinished)-1]
}

// parseTagText splits the inside of a <...> run into a lowercased tag
// name and its attributes. Attribute tokens are key=value pairs with
// optional quotes, or bare keys that default to the empty string.
func parseTagText(text string) (string, map[string]string) {
	attributes := make(map[string]string)
	parts := strings.Fields(text)
	if len(parts) == 0 {
		return "", attributes
	}
	tag := strings.ToLower(parts[0])
	for _, part := range parts[1:] {
		if key, value, found := strings.Cut(part, "="); found {
			attributes[strings.ToLower(key)] = stripQuotes(value)
		} else if part != "/" {
			attributes[strings.ToLower(part)] = ""
		}
	}
	return tag, attributes
}

func stripQuotes(value string) string {
	if len(value) >= 2 {
		if (value[0] == '"' && value[len(value)-1] == '"') ||
			(value[0] == '\'' && value[len(value)-1] == '\'') {
			return value[1 : len(value)-1]
		}
	}
	return value
}
