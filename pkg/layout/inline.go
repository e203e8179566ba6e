package layout

import (
	"strings"

	"lumen/pkg/css"
	"lumen/pkg/html"
	"lumen/pkg/text"
)

// lineComposer performs greedy line-breaking for a block laid out in
// inline mode. Words are styled entirely from their owning node's
// resolved style map; the only tag-driven events are the explicit line
// break and the paragraph close.
type lineComposer struct {
	block    *Node
	measurer text.Measurer

	cursorX float64
	cursorY float64
	line    []*Node // buffered words, positions relative to the line
}

func newLineComposer(block *Node, measurer text.Measurer) *lineComposer {
	return &lineComposer{block: block, measurer: measurer}
}

// recurse walks the document subtree depth-first, emitting words.
func (c *lineComposer) recurse(node *html.Node) {
	if node.Type == html.TextNode {
		for _, word := range strings.Fields(node.Text) {
			c.word(node, word)
		}
		return
	}
	c.openTag(node.TagName)
	for _, child := range node.Children {
		c.recurse(child)
	}
	c.closeTag(node.TagName)
}

func (c *lineComposer) openTag(tag string) {
	if tag == "br" {
		c.flush()
	}
}

func (c *lineComposer) closeTag(tag string) {
	if tag == "p" {
		c.flush()
		c.cursorY += VStep
	}
}

// word places one word on the current line, flushing first when it
// would overflow. The break happens before the overflowing word even if
// that word alone would not fit an empty line; words are never split.
func (c *lineComposer) word(owner *html.Node, word string) {
	spec := fontSpecFor(owner.Style)
	metrics := c.measurer.Measure(word, spec)

	if c.cursorX+metrics.Width > c.block.Width {
		c.flush()
	}

	c.line = append(c.line, &Node{
		Kind:   TextNode,
		DOM:    owner,
		X:      c.cursorX,
		Width:  metrics.Width,
		Height: metrics.Height,
		Ascent: metrics.Ascent,
		Text:   word,
		Font:   spec,
		Color:  owner.Style["color"],
	})
	c.cursorX += metrics.Width + c.measurer.SpaceWidth(spec)
}

// flush closes the current line: all buffered words share one baseline
// placed Leading*maxAscent below the line top, and the block's vertical
// cursor advances by Leading*(maxAscent+maxDescent).
func (c *lineComposer) flush() {
	if len(c.line) == 0 {
		return
	}

	maxAscent, maxDescent := 0.0, 0.0
	for _, word := range c.line {
		if word.Ascent > maxAscent {
			maxAscent = word.Ascent
		}
		if descent := word.Height - word.Ascent; descent > maxDescent {
			maxDescent = descent
		}
	}

	baseline := Leading * maxAscent
	line := &Node{
		Kind:       LineNode,
		DOM:        c.block.DOM,
		X:          0,
		Y:          c.cursorY,
		Width:      c.block.Width,
		Height:     Leading * (maxAscent + maxDescent),
		MaxAscent:  maxAscent,
		MaxDescent: maxDescent,
	}
	for _, word := range c.line {
		word.Y = baseline - word.Ascent
		line.appendChild(word)
	}
	c.block.appendChild(line)

	c.cursorY += line.Height
	c.cursorX = 0
	c.line = c.line[:0]
}

// fontSpecFor derives the effective font from a resolved style map.
func fontSpecFor(style map[string]string) text.FontSpec {
	size := 16.0
	if px, ok := css.ParseLength(style["font-size"]); ok {
		size = px
	}
	return text.FontSpec{
		Weight: style["font-weight"],
		Style:  style["font-style"],
		Size:   size,
	}
}
