// Package text provides glyph metrics for layout and font faces for
// rendering, backed by the embedded Go fonts.
package text

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// FontSpec identifies the font a word is measured and drawn with.
// Weight and Style carry the resolved CSS values ("bold", "italic");
// anything else selects the regular variant.
type FontSpec struct {
	Weight string
	Style  string
	Size   float64
}

// Metrics are the measurements layout needs for one text run.
type Metrics struct {
	Width  float64
	Height float64
	Ascent float64
}

// Measurer is the glyph-metrics collaborator the layout engine depends
// on. Implementations must be deterministic for identical inputs.
type Measurer interface {
	Measure(text string, spec FontSpec) Metrics
	SpaceWidth(spec FontSpec) float64
}

type fontVariant int

const (
	regular fontVariant = iota
	bold
	italic
	boldItalic
)

type faceKey struct {
	variant fontVariant
	size    float64
}

// GoFontMeasurer measures text with the embedded Go font family.
// Faces are cached per variant and size. Not safe for concurrent use;
// the engine is single-threaded by contract.
type GoFontMeasurer struct {
	fonts map[fontVariant]*opentype.Font
	faces map[faceKey]font.Face
}

// NewGoFontMeasurer parses the embedded fonts and returns a measurer.
func NewGoFontMeasurer() (*GoFontMeasurer, error) {
	sources := map[fontVariant][]byte{
		regular:    goregular.TTF,
		bold:       gobold.TTF,
		italic:     goitalic.TTF,
		boldItalic: gobolditalic.TTF,
	}
	fonts := make(map[fontVariant]*opentype.Font, len(sources))
	for variant, ttf := range sources {
		parsed, err := opentype.Parse(ttf)
		if err != nil {
			return nil, fmt.Errorf("parsing embedded font: %w", err)
		}
		fonts[variant] = parsed
	}
	return &GoFontMeasurer{
		fonts: fonts,
		faces: make(map[faceKey]font.Face),
	}, nil
}

// Face returns the cached face for spec, creating it on first use.
func (m *GoFontMeasurer) Face(spec FontSpec) (font.Face, error) {
	size := spec.Size
	if size <= 0 {
		size = 16
	}
	key := faceKey{variant: variantFor(spec), size: size}
	if face, ok := m.faces[key]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(m.fonts[key.variant], &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("creating %gpx face: %w", size, err)
	}
	m.faces[key] = face
	return face, nil
}

func (m *GoFontMeasurer) Measure(text string, spec FontSpec) Metrics {
	face, err := m.Face(spec)
	if err != nil {
		// Rough estimate so a face failure degrades instead of halting.
		size := spec.Size
		if size <= 0 {
			size = 16
		}
		return Metrics{
			Width:  float64(len(text)) * size * 0.6,
			Height: size * 1.2,
			Ascent: size,
		}
	}
	width := fixedToFloat(font.MeasureString(face, text))
	fm := face.Metrics()
	return Metrics{
		Width:  width,
		Height: fixedToFloat(fm.Ascent + fm.Descent),
		Ascent: fixedToFloat(fm.Ascent),
	}
}

func (m *GoFontMeasurer) SpaceWidth(spec FontSpec) float64 {
	return m.Measure(" ", spec).Width
}

func variantFor(spec FontSpec) fontVariant {
	isBold := spec.Weight == "bold"
	isItalic := spec.Style == "italic"
	switch {
	case isBold && isItalic:
		return boldItalic
	case isBold:
		return bold
	case isItalic:
		return italic
	}
	return regular
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
