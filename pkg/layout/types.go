package layout

import (
	"lumen/pkg/html"
	"lumen/pkg/text"
)

// Page geometry constants.
const (
	Width  = 800.0 // default viewport width
	Height = 600.0 // default viewport height
	HStep  = 13.0  // horizontal page padding
	VStep  = 17.0  // vertical page padding, also the paragraph step

	// Leading is the factor applied to ascent and descent when
	// computing line height.
	Leading = 1.25
)

type Kind int

const (
	DocumentNode Kind = iota
	BlockNode
	LineNode
	TextNode
)

// Node is a node in the layout tree. Document and Block nodes store
// absolute positions; Line and Text positions are relative to their
// parent. The tree references, but does not own, the document nodes it
// was derived from, and is rebuilt wholesale on every layout pass.
type Node struct {
	Kind     Kind
	DOM      *html.Node
	Parent   *Node
	Previous *Node
	Children []*Node

	X, Y          float64
	Width, Height float64

	// Line fields.
	MaxAscent  float64
	MaxDescent float64

	// Text fields.
	Text   string
	Font   text.FontSpec
	Color  string
	Ascent float64
}

func (n *Node) appendChild(child *Node) {
	child.Parent = n
	if len(n.Children) > 0 {
		child.Previous = n.Children[len(n.Children)-1]
	}
	n.Children = append(n.Children, child)
}

// isBlockElement reports whether tag establishes block layout.
func isBlockElement(tag string) bool {
	switch tag {
	case "html", "body", "article", "section", "nav", "aside",
		"h1", "h2", "h3", "h4", "h5", "h6", "hgroup", "header",
		"footer", "address", "p", "hr", "pre", "blockquote",
		"ol", "ul", "menu", "li", "dl", "dt", "dd", "figure",
		"figcaption", "main", "div", "table", "form", "fieldset",
		"legend", "details", "summary":
		return true
	}
	return false
}

type layoutMode int

const (
	blockMode layoutMode = iota
	inlineMode
)

// modeFor decides how a block lays out its source node: any block-level
// element child forces block mode; any children at all otherwise mean
// inline mode; a childless node is an empty block.
func modeFor(node *html.Node) layoutMode {
	if node.Type == html.TextNode {
		return inlineMode
	}
	for _, child := range node.Children {
		if child.Type == html.ElementNode && isBlockElement(child.TagName) {
			return blockMode
		}
	}
	if len(node.Children) > 0 {
		return inlineMode
	}
	return blockMode
}
