package core

// Color represents a paint colour on a Surface.
// Frontends map it to ANSI 256-color codes or RGBA values.
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
	ColorBlack

	// ColorShade is a translucent dark wash. Filling with it darkens what is
	// already drawn instead of replacing it.
	ColorShade
)
