package console

import (
	"math"

	"github.com/fatih/color"

	"github.com/arcanaland/adventurer/internal/card"
)

// xterm default RGB values of the 16 basic foreground colors
var basicColors = []struct {
	attr color.Attribute
	rgb  card.Color
}{
	{color.FgBlack, 0x000000},
	{color.FgRed, 0xCD0000},
	{color.FgGreen, 0x00CD00},
	{color.FgYellow, 0xCDCD00},
	{color.FgBlue, 0x0000EE},
	{color.FgMagenta, 0xCD00CD},
	{color.FgCyan, 0x00CDCD},
	{color.FgWhite, 0xE5E5E5},
	{color.FgHiBlack, 0x7F7F7F},
	{color.FgHiRed, 0xFF0000},
	{color.FgHiGreen, 0x00FF00},
	{color.FgHiYellow, 0xFFFF00},
	{color.FgHiBlue, 0x5C5CFF},
	{color.FgHiMagenta, 0xFF00FF},
	{color.FgHiCyan, 0x00FFFF},
	{color.FgHiWhite, 0xFFFFFF},
}

// nearest returns the basic foreground attribute closest to c in Lab space
func nearest(c card.Color) color.Attribute {
	target := c.Colorful()
	best, bestDist := color.FgWhite, math.MaxFloat64
	for _, bc := range basicColors {
		if d := target.DistanceLab(bc.rgb.Colorful()); d < bestDist {
			best, bestDist = bc.attr, d
		}
	}
	return best
}

// background attributes sit 10 above their foreground counterparts
func asBackground(fg color.Attribute) color.Attribute {
	return fg + 10
}

// textStyle maps card colors onto the terminal palette. Black text without a
// background uses the terminal default so it stays readable on dark screens.
func textStyle(fg, bg card.Color) *color.Color {
	if !bg.Valid() {
		if fg == card.Black || !fg.Valid() {
			return color.New(color.Reset)
		}
		return color.New(nearest(fg))
	}
	return color.New(nearest(fg), asBackground(nearest(bg)))
}
