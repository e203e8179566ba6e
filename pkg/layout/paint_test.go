package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumen/pkg/css"
)

func TestPaintTree_TextPosition(t *testing.T) {
	doc := layoutMarkup(t, "<p>hi</p>", "", Width)
	list := PaintTree(doc)
	require.Len(t, list, 1)

	cmd, ok := list[0].(DrawText)
	require.True(t, ok)
	assert.Equal(t, "hi", cmd.Text)
	// Block at the page origin, word on the first line: the glyph top
	// sits baseline minus ascent below it.
	assert.InDelta(t, HStep, cmd.X, 1e-9)
	assert.InDelta(t, VStep+(Leading*12-12), cmd.Y, 1e-9)
	assert.InDelta(t, 12, cmd.Ascent, 1e-9)
	assert.Equal(t, css.Color{A: 255}, cmd.Color)
}

func TestPaintTree_BackgroundBeforeText(t *testing.T) {
	doc := layoutMarkup(t, "<p>x</p>", "p { background-color: gray }", Width)
	list := PaintTree(doc)
	require.Len(t, list, 2)

	rect, ok := list[0].(DrawRect)
	require.True(t, ok, "background paints before the text above it")
	p := findBlock(doc, "p")
	assert.InDelta(t, p.X, rect.X, 1e-9)
	assert.InDelta(t, p.Y, rect.Y, 1e-9)
	assert.InDelta(t, p.Width, rect.Width, 1e-9)
	assert.InDelta(t, p.Height, rect.Height, 1e-9)

	_, ok = list[1].(DrawText)
	assert.True(t, ok)
}

func TestPaintTree_TransparentBackgroundSkipped(t *testing.T) {
	doc := layoutMarkup(t, "<p>x</p>", "p { background-color: transparent }", Width)
	for _, cmd := range PaintTree(doc) {
		_, isRect := cmd.(DrawRect)
		assert.False(t, isRect)
	}
}

func TestPaintTree_ScrolledParagraphOffsets(t *testing.T) {
	// The second paragraph's words carry its absolute position even
	// though line and word coordinates are parent-relative.
	doc := layoutMarkup(t, "<p>a</p><p>b</p>", "", Width)
	list := PaintTree(doc)
	require.Len(t, list, 2)

	first := list[0].(DrawText)
	second := list[1].(DrawText)
	p2 := findBlock(doc, "body").Children[1]
	assert.InDelta(t, first.Y+(20+VStep), second.Y, 1e-9)
	assert.InDelta(t, p2.Y+(Leading*12-12), second.Y, 1e-9)
}

func TestCommands_TopBottom(t *testing.T) {
	rect := DrawRect{Y: 10, Height: 5}
	assert.InDelta(t, 10, rect.Top(), 1e-9)
	assert.InDelta(t, 15, rect.Bottom(), 1e-9)

	txt := DrawText{Y: 40, Height: 16}
	assert.InDelta(t, 40, txt.Top(), 1e-9)
	assert.InDelta(t, 56, txt.Bottom(), 1e-9)
}
