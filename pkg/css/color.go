package css

import (
	"strconv"
	"strings"
)

// Color is an 8-bit RGBA color parsed from a CSS value.
type Color struct {
	R, G, B, A uint8
}

var namedColors = map[string]Color{
	"black":     {0, 0, 0, 255},
	"white":     {255, 255, 255, 255},
	"red":       {255, 0, 0, 255},
	"green":     {0, 128, 0, 255},
	"blue":      {0, 0, 255, 255},
	"gray":      {128, 128, 128, 255},
	"grey":      {128, 128, 128, 255},
	"silver":    {192, 192, 192, 255},
	"yellow":    {255, 255, 0, 255},
	"orange":    {255, 165, 0, 255},
	"purple":    {128, 0, 128, 255},
	"brown":     {165, 42, 42, 255},
	"pink":      {255, 192, 203, 255},
	"lightblue": {173, 216, 230, 255},
	"lightgray": {211, 211, 211, 255},
	"lightgrey": {211, 211, 211, 255},
}

// ParseColor parses a named color, "#rgb", or "#rrggbb" value. The
// keyword "transparent" parses to a fully transparent color; unknown
// values return false.
func ParseColor(value string) (Color, bool) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "transparent" {
		return Color{}, true
	}
	if c, ok := namedColors[value]; ok {
		return c, true
	}
	if strings.HasPrefix(value, "#") {
		return parseHexColor(value[1:])
	}
	return Color{}, false
}

func parseHexColor(hex string) (Color, bool) {
	switch len(hex) {
	case 3:
		r, okR := hexNibble(hex[0])
		g, okG := hexNibble(hex[1])
		b, okB := hexNibble(hex[2])
		if !okR || !okG || !okB {
			return Color{}, false
		}
		return Color{r * 17, g * 17, b * 17, 255}, true
	case 6:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return Color{}, false
		}
		return Color{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}, true
	}
	return Color{}, false
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}
