package card

import (
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a 24-bit RGB value (0xRRGGBB). None marks an absent color.
type Color int32

const (
	Black Color = 0x000000
	White Color = 0xFFFFFF
	None  Color = -1
)

// Valid reports whether c holds an RGB value
func (c Color) Valid() bool {
	return c >= 0 && c <= White
}

// RGB splits the color into its channels
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Colorful converts the color for distance and blending math
func (c Color) Colorful() colorful.Color {
	r, g, b := c.RGB()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// Hex returns the color as #rrggbb, or "" for None
func (c Color) Hex() string {
	if !c.Valid() {
		return ""
	}
	return c.Colorful().Hex()
}

func (c Color) String() string {
	if !c.Valid() {
		return "none"
	}
	return c.Hex()
}

// ColorFromInt accepts an integer color value as stored in cyoa.json
func ColorFromInt(v int64) (Color, bool) {
	if v < 0 || v > int64(White) {
		return None, false
	}
	return Color(v), true
}

// ParseColor parses decimal ("16711680"), 0x-prefixed ("0xff0000") and
// CSS-style ("#ff0000") color strings.
func ParseColor(s string) (Color, bool) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return None, false
	case strings.HasPrefix(s, "#"):
		c, err := colorful.Hex(s)
		if err != nil {
			return None, false
		}
		r, g, b := c.RGB255()
		return Color(int32(r)<<16 | int32(g)<<8 | int32(b)), true
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		v, err := strconv.ParseInt(s[2:], 16, 64)
		if err != nil {
			return None, false
		}
		return ColorFromInt(v)
	default:
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return None, false
		}
		return ColorFromInt(v)
	}
}
