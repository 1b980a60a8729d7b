package core

// Color is a logical foreground color of a screen cell.
// The platform maps it to a terminal palette entry.
type Color uint8

// Palette of cell colors.
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

// WarmColor maps a hue in degrees onto the red-orange-yellow part of the
// palette. Hues outside [0, 60) are clamped.
func WarmColor(hue float64) Color {
	switch {
	case hue < 20:
		return ColorBrightRed
	case hue < 40:
		return ColorOrange
	default:
		return ColorYellow
	}
}

// Dim returns a darker variant of c for background elements.
func (c Color) Dim() Color {
	switch c {
	case ColorBrightRed:
		return ColorRed
	case ColorBrightGreen:
		return ColorGreen
	case ColorBrightYellow, ColorOrange:
		return ColorYellow
	case ColorBrightBlue:
		return ColorBlue
	case ColorBrightMagenta:
		return ColorMagenta
	case ColorBrightCyan:
		return ColorCyan
	case ColorBrightWhite, ColorWhite:
		return ColorGray
	case ColorGray:
		return ColorDarkGray
	default:
		return c
	}
}
