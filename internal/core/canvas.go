package core

import "unicode/utf8"

// Canvas adapts a character Screen to the pixel-addressed Surface.
// Each character covers cellW x cellH canvas pixels, and pixel (0, 0)
// lands on the screen character at the canvas origin.
type Canvas struct {
	screen  *Screen
	width   int // canvas width in pixels
	height  int // canvas height in pixels
	cellW   int
	cellH   int
	originX int
	originY int
}

// Ensure Canvas implements Surface
var _ Surface = (*Canvas)(nil)

// NewCanvas creates a canvas of width x height pixels drawing into s.
// Cell sizes below 1 are raised to 1.
func NewCanvas(s *Screen, width, height, cellW, cellH int) *Canvas {
	return &Canvas{
		screen: s,
		width:  width,
		height: height,
		cellW:  max(1, cellW),
		cellH:  max(1, cellH),
	}
}

// SetOrigin moves the canvas to the given screen character position.
func (c *Canvas) SetOrigin(x, y int) {
	c.originX = x
	c.originY = y
}

// Origin returns the screen character position of pixel (0, 0).
func (c *Canvas) Origin() (int, int) {
	return c.originX, c.originY
}

// Size returns the canvas dimensions in pixels.
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// Cols returns how many screen characters the canvas spans horizontally.
func (c *Canvas) Cols() int {
	return CeilDiv(c.width, c.cellW)
}

// Rows returns how many screen characters the canvas spans vertically.
func (c *Canvas) Rows() int {
	return CeilDiv(c.height, c.cellH)
}

// toChars converts a pixel rectangle to the screen characters it touches,
// clipped to the canvas area.
func (c *Canvas) toChars(r Rect) Rect {
	r = r.Intersect(NewRect(0, 0, c.width, c.height))
	if r.Empty() {
		return Rect{}
	}
	x0 := r.X / c.cellW
	y0 := r.Y / c.cellH
	x1 := CeilDiv(r.Right(), c.cellW)
	y1 := CeilDiv(r.Bottom(), c.cellH)
	return NewRect(c.originX+x0, c.originY+y0, x1-x0, y1-y0)
}

// Fill paints the whole canvas with blank cells of the given colour.
func (c *Canvas) Fill(col Color) {
	c.FillRect(NewRect(0, 0, c.width, c.height), col)
}

// FillRect paints solid blocks over r. ColorShade dims the cells instead.
func (c *Canvas) FillRect(r Rect, col Color) {
	area := c.toChars(r)
	if area.Empty() {
		return
	}
	switch col {
	case ColorShade:
		c.screen.Recolor(area, ColorDarkGray)
	case ColorBlack, ColorDefault:
		c.screen.DrawRect(area, Cell{Rune: ' ', Color: col})
	default:
		c.screen.DrawRect(area, Cell{Rune: '█', Color: col})
	}
}

// StrokeRect outlines r with box-drawing characters. Rectangles too small
// for a box collapse to a dot at their top-left character.
func (c *Canvas) StrokeRect(r Rect, col Color) {
	area := c.toChars(r)
	if area.Empty() {
		return
	}
	if area.W < 3 || area.H < 3 {
		c.screen.SetCell(area.X, area.Y, Cell{Rune: '·', Color: col})
		return
	}
	c.screen.DrawBox(area, col)
}

// DrawText writes text on the character row containing the pixel just
// above baseline y. Text is clipped to the canvas.
func (c *Canvas) DrawText(x, y int, text string, style TextStyle) {
	if y <= 0 || y > c.height {
		return
	}
	row := (y - 1) / c.cellH
	col := x / c.cellW
	n := utf8.RuneCountInString(text)
	switch style.Align {
	case AlignCenter:
		col -= n / 2
	case AlignRight:
		col -= n
	}

	maxCol := c.Cols()
	i := 0
	for _, r := range text {
		cx := col + i
		i++
		if cx < 0 || cx >= maxCol {
			continue
		}
		c.screen.SetCell(c.originX+cx, c.originY+row, Cell{Rune: r, Color: style.Color})
	}
}
