package core

// Align controls horizontal text placement relative to the anchor x.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// TextStyle describes how DrawText paints a string.
type TextStyle struct {
	Color Color
	Size  int // Nominal font size in pixels; character surfaces ignore it
	Align Align
}

// Surface is an abstract pixel-addressed drawing target. Games draw in
// canvas pixels; each frontend decides how pixels map to its display.
type Surface interface {
	// Size returns the canvas dimensions in pixels.
	Size() (width, height int)

	// Fill paints the whole surface.
	Fill(c Color)

	// FillRect paints the interior of r.
	FillRect(r Rect, c Color)

	// StrokeRect outlines r.
	StrokeRect(r Rect, c Color)

	// DrawText paints text with its baseline at y.
	DrawText(x, y int, text string, style TextStyle)
}
