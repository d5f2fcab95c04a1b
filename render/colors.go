package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/spacewar/constants"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbDivider    = tcell.NewRGBColor(70, 72, 96)    // Muted slate
	RgbHud        = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbHealthLost = tcell.NewRGBColor(90, 90, 90)    // Dim gray

	RgbShipLeft        = tcell.NewRGBColor(100, 150, 255) // Normal Blue
	RgbShipRight       = tcell.NewRGBColor(255, 80, 80)   // Normal Red
	RgbProjectileLeft  = tcell.NewRGBColor(140, 190, 255) // Bright Blue
	RgbProjectileRight = tcell.NewRGBColor(255, 120, 120) // Bright Red

	RgbMenuTitle    = tcell.NewRGBColor(255, 255, 0)   // Bright Yellow
	RgbMenuItem     = tcell.NewRGBColor(255, 255, 255) // White
	RgbMenuCursorBg = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbMenuCursorFg = tcell.NewRGBColor(0, 0, 0)       // Dark text on cursor
	RgbMenuPanel    = tcell.NewRGBColor(40, 42, 58)    // Slightly lifted panel
)

// shipColor returns the body color for a side name
func shipColor(side string) tcell.Color {
	if side == "right" {
		return RgbShipRight
	}
	return RgbShipLeft
}

func projectileColor(owner string) tcell.Color {
	if owner == "right" {
		return RgbProjectileRight
	}
	return RgbProjectileLeft
}

// Dim scales a color toward the background by the pause dim factor
func Dim(c tcell.Color) tcell.Color {
	r, g, b := c.RGB()
	br, bg, bb := RgbBackground.RGB()
	f := constants.PauseDimFactor
	mix := func(fg, bgc int32) int32 {
		return bgc + int32(float64(fg-bgc)*f)
	}
	return tcell.NewRGBColor(mix(r, br), mix(g, bg), mix(b, bb))
}
