package layout

import (
	"errors"

	"lumen/pkg/html"
	"lumen/pkg/text"
)

// ErrNoDocument is returned when layout is invoked without a document
// tree.
var ErrNoDocument = errors.New("layout: no document tree")

// Engine lays out a styled document tree into a positioned layout tree.
type Engine struct {
	viewportWidth  float64
	viewportHeight float64
	measurer       text.Measurer
}

func NewEngine(viewportWidth, viewportHeight float64, measurer text.Measurer) *Engine {
	return &Engine{
		viewportWidth:  viewportWidth,
		viewportHeight: viewportHeight,
		measurer:       measurer,
	}
}

// Layout builds a fresh layout tree for root. The document establishes
// the page content box; a single block child wraps the document tree
// root, and the document's height follows the child's measured height.
func (e *Engine) Layout(root *html.Node) (*Node, error) {
	if root == nil {
		return nil, ErrNoDocument
	}
	doc := &Node{
		Kind:  DocumentNode,
		DOM:   root,
		X:     HStep,
		Y:     VStep,
		Width: e.viewportWidth - 2*HStep,
	}
	child := &Node{Kind: BlockNode, DOM: root}
	doc.appendChild(child)
	e.layoutBlock(child)
	doc.Height = child.Height
	return doc, nil
}

// layoutBlock positions n below its previous sibling (or at its
// parent's origin), gives it the parent's content width, and then lays
// out its contents in block or inline mode.
func (e *Engine) layoutBlock(n *Node) {
	n.X = n.Parent.X
	if n.Previous != nil {
		n.Y = n.Previous.Y + n.Previous.Height
	} else {
		n.Y = n.Parent.Y
	}
	n.Width = n.Parent.Width

	switch modeFor(n.DOM) {
	case blockMode:
		// One block per document-tree child, in source order. Inline
		// elements mixed between block siblings get their own block
		// too; no anonymous grouping box is synthesized.
		for _, domChild := range n.DOM.Children {
			child := &Node{Kind: BlockNode, DOM: domChild}
			n.appendChild(child)
		}
		for _, child := range n.Children {
			e.layoutBlock(child)
		}
		total := 0.0
		for _, child := range n.Children {
			total += child.Height
		}
		n.Height = total
	case inlineMode:
		composer := newLineComposer(n, e.measurer)
		composer.recurse(n.DOM)
		composer.flush()
		n.Height = composer.cursorY
	}
}
