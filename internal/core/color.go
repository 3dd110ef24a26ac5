package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
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
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGray
)

// RGB returns the 8-bit red, green and blue components used by
// pixel-based frontends.
func (c Color) RGB() (r, g, b uint8) {
	switch c {
	case ColorRed, ColorBrightRed:
		return 255, 0, 0
	case ColorGreen, ColorBrightGreen:
		return 0, 255, 0
	case ColorYellow, ColorBrightYellow:
		return 255, 255, 0
	case ColorBlue, ColorBrightBlue:
		return 0, 0, 255
	case ColorMagenta, ColorBrightMagenta:
		return 128, 0, 128
	case ColorCyan, ColorBrightCyan:
		return 0, 255, 255
	case ColorWhite, ColorBrightWhite:
		return 255, 255, 255
	case ColorOrange:
		return 255, 165, 0
	case ColorGray:
		return 128, 128, 128
	case ColorDarkGray:
		return 35, 35, 35
	default:
		return 200, 200, 200
	}
}
