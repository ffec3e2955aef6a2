package core

import "math"

// Color represents a foreground color for a drawn element.
// Platforms map it to ANSI 256-color codes or RGB values.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
	ColorInk     // (30, 26, 27) text and outlines
	ColorCrimson // (157, 21, 36) hovered buttons
	ColorAqua    // #51fbed items
	ColorPaper   // (242, 233, 231) background
)

// BrickColor is the hue shared by every brick.
const BrickColor = ColorRed

// BrickFade returns the opacity of the brick at grid index i. Each brick is
// half a percent fainter than the one before it, down to 0.4.
func BrickFade(i int) float64 {
	if i < 0 {
		i = 0
	}
	return math.Max(1-float64(i)*0.005, 0.4)
}

// RGB returns the color as 8-bit red, green and blue channels.
func (c Color) RGB() (r, g, b uint8) {
	switch c {
	case ColorRed:
		return 214, 58, 58
	case ColorGreen:
		return 72, 170, 92
	case ColorYellow:
		return 226, 184, 48
	case ColorBlue:
		return 64, 110, 210
	case ColorMagenta:
		return 176, 72, 180
	case ColorCyan:
		return 52, 170, 190
	case ColorWhite:
		return 250, 250, 250
	case ColorOrange:
		return 232, 128, 44
	case ColorGray:
		return 128, 128, 128
	case ColorCrimson:
		return 157, 21, 36
	case ColorAqua:
		return 0x51, 0xfb, 0xed
	case ColorPaper:
		return 242, 233, 231
	default:
		return 30, 26, 27
	}
}

// ANSI returns the closest ANSI 256-color code for terminal output.
func (c Color) ANSI() string {
	switch c {
	case ColorRed:
		return "196"
	case ColorGreen:
		return "40"
	case ColorYellow:
		return "226"
	case ColorBlue:
		return "33"
	case ColorMagenta:
		return "201"
	case ColorCyan:
		return "51"
	case ColorWhite:
		return "15"
	case ColorOrange:
		return "208"
	case ColorGray:
		return "245"
	case ColorCrimson:
		return "124"
	case ColorAqua:
		return "87"
	case ColorPaper:
		return "255"
	case ColorInk:
		return "253"
	default:
		return ""
	}
}
