// Package render rasterizes display lists onto an image using gg.
package render

import (
	"image"

	"github.com/fogleman/gg"

	"lumen/pkg/css"
	"lumen/pkg/layout"
	"lumen/pkg/text"
)

// Renderer paints display lists onto a raster context, applying a
// vertical scroll offset supplied by the caller.
type Renderer struct {
	context *gg.Context
	fonts   *text.GoFontMeasurer
	width   float64
	height  float64
}

func NewRenderer(width, height int, fonts *text.GoFontMeasurer) *Renderer {
	return &Renderer{
		context: gg.NewContext(width, height),
		fonts:   fonts,
		width:   float64(width),
		height:  float64(height),
	}
}

// Paint clears the context to white and draws the display list in
// order, shifted up by scrollY. Commands wholly outside the viewport
// are culled.
func (r *Renderer) Paint(list layout.DisplayList, scrollY float64) {
	r.context.SetRGB(1, 1, 1)
	r.context.Clear()

	for _, cmd := range list {
		if cmd.Bottom() < scrollY || cmd.Top() > scrollY+r.height {
			continue
		}
		switch c := cmd.(type) {
		case layout.DrawRect:
			r.setColor(c.Color)
			r.context.DrawRectangle(c.X, c.Y-scrollY, c.Width, c.Height)
			r.context.Fill()
		case layout.DrawText:
			face, err := r.fonts.Face(c.Font)
			if err != nil {
				continue
			}
			r.context.SetFontFace(face)
			r.setColor(c.Color)
			r.context.DrawString(c.Text, c.X, c.Y+c.Ascent-scrollY)
		}
	}
}

func (r *Renderer) setColor(c css.Color) {
	r.context.SetRGBA255(int(c.R), int(c.G), int(c.B), int(c.A))
}

// Image returns the rendered raster.
func (r *Renderer) Image() image.Image {
	return r.context.Image()
}

// SavePNG writes the rendered raster to path.
func (r *Renderer) SavePNG(path string) error {
	return r.context.SavePNG(path)
}
