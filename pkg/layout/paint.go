package layout

import (
	"lumen/pkg/css"
	"lumen/pkg/text"
)

// Command is one entry of the display list, positioned absolutely on
// the page. Top and Bottom support scroll culling in the renderer.
type Command interface {
	Top() float64
	Bottom() float64
}

// DrawRect fills a rectangle.
type DrawRect struct {
	X, Y          float64
	Width, Height float64
	Color         css.Color
}

func (r DrawRect) Top() float64    { return r.Y }
func (r DrawRect) Bottom() float64 { return r.Y + r.Height }

// DrawText draws one measured word. Y is the top of the glyph box; the
// baseline sits at Y+Ascent.
type DrawText struct {
	X, Y          float64
	Width, Height float64
	Ascent        float64
	Text          string
	Font          text.FontSpec
	Color         css.Color
}

func (t DrawText) Top() float64    { return t.Y }
func (t DrawText) Bottom() float64 { return t.Y + t.Height }

// DisplayList is the flat, ordered sequence of paint commands consumed
// by a renderer.
type DisplayList []Command

// paint emits the commands for a single node at the given absolute
// position. It is purely local: Document and Line nodes paint nothing,
// a Block paints its background when one resolves, and a Text node
// paints its word.
func paint(n *Node, x, y float64) []Command {
	switch n.Kind {
	case BlockNode:
		if bg, ok := n.DOM.Style["background-color"]; ok {
			if color, parsed := css.ParseColor(bg); parsed && color.A > 0 {
				return []Command{DrawRect{
					X: x, Y: y,
					Width: n.Width, Height: n.Height,
					Color: color,
				}}
			}
		}
	case TextNode:
		color, parsed := css.ParseColor(n.Color)
		if !parsed {
			color = css.Color{A: 255} // black
		}
		return []Command{DrawText{
			X: x, Y: y,
			Width: n.Width, Height: n.Height,
			Ascent: n.Ascent,
			Text:   n.Text,
			Font:   n.Font,
			Color:  color,
		}}
	}
	return nil
}

// PaintTree flattens a layout tree into a display list. Document and
// Block positions are already absolute and reset the offset for their
// descendants; Line and Text positions are relative and accumulate.
func PaintTree(root *Node) DisplayList {
	var list DisplayList
	paintTree(root, 0, 0, &list)
	return list
}

func paintTree(n *Node, offsetX, offsetY float64, list *DisplayList) {
	var x, y float64
	switch n.Kind {
	case DocumentNode, BlockNode:
		x, y = n.X, n.Y
	default:
		x, y = offsetX+n.X, offsetY+n.Y
	}
	*list = append(*list, paint(n, x, y)...)
	for _, child := range n.Children {
		paintTree(child, x, y, list)
	}
}
