package core

import "testing"

// newBoardCanvas returns a 400x400 pixel canvas where each 20px board cell
// spans two characters by one row.
func newBoardCanvas() (*Screen, *Canvas) {
	s := NewScreen(40, 20)
	return s, NewCanvas(s, 400, 400, 10, 20)
}

func TestCanvasDimensions(t *testing.T) {
	_, c := newBoardCanvas()

	w, h := c.Size()
	if w != 400 || h != 400 {
		t.Errorf("Size() = (%d, %d), expected (400, 400)", w, h)
	}
	if c.Cols() != 40 || c.Rows() != 20 {
		t.Errorf("Cols/Rows = %d/%d, expected 40/20", c.Cols(), c.Rows())
	}
}

func TestCanvasFillRect(t *testing.T) {
	s, c := newBoardCanvas()

	// Board cell (10, 9) covers characters 20-21 on row 9
	c.FillRect(NewRect(200, 180, 20, 20), ColorRed)

	for _, x := range []int{20, 21} {
		if cell := s.GetCell(x, 9); cell.Rune != '█' || cell.Color != ColorRed {
			t.Errorf("Expected red block at (%d, 9), got %+v", x, cell)
		}
	}
	if s.Get(19, 9) != ' ' || s.Get(22, 9) != ' ' || s.Get(20, 8) != ' ' {
		t.Error("FillRect should not spill into neighbouring characters")
	}
}

func TestCanvasFillRectClipped(t *testing.T) {
	s, c := newBoardCanvas()
	c.SetOrigin(2, 1)

	// Partially outside the canvas: only the visible part is drawn
	c.FillRect(NewRect(-20, -20, 40, 40), ColorGreen)

	if s.GetCell(2, 1).Color != ColorGreen || s.GetCell(3, 1).Color != ColorGreen {
		t.Error("Visible part of the rect should be painted at the origin")
	}
	if s.Get(1, 1) != ' ' || s.Get(2, 0) != ' ' {
		t.Error("Nothing should be drawn before the origin")
	}
}

func TestCanvasShade(t *testing.T) {
	s, c := newBoardCanvas()
	c.FillRect(NewRect(0, 0, 20, 20), ColorGreen)
	c.FillRect(NewRect(0, 0, 400, 400), ColorShade)

	cell := s.GetCell(0, 0)
	if cell.Rune != '█' {
		t.Errorf("Shade should keep the rune, got %q", cell.Rune)
	}
	if cell.Color != ColorDarkGray {
		t.Errorf("Shade should dim the colour, got %v", cell.Color)
	}
}

func TestCanvasStrokeRect(t *testing.T) {
	s, c := newBoardCanvas()

	// Single board cell: too small for a box, becomes a dot
	c.StrokeRect(NewRect(20, 20, 20, 20), ColorDarkGray)
	if s.Get(2, 1) != '·' {
		t.Errorf("Small stroke should draw a dot, got %q", s.Get(2, 1))
	}
	if s.Get(3, 1) != ' ' {
		t.Errorf("Small stroke should only mark the top-left character, got %q", s.Get(3, 1))
	}

	// Larger rect becomes a box
	c.StrokeRect(NewRect(100, 100, 100, 100), ColorWhite)
	if s.Get(10, 5) != '┌' || s.Get(19, 9) != '┘' {
		t.Errorf("Large stroke should draw a box, got %q and %q", s.Get(10, 5), s.Get(19, 9))
	}
}

func TestCanvasDrawText(t *testing.T) {
	tests := []struct {
		name  string
		x, y  int
		align Align
		col   int
		row   int
	}{
		{"left aligned at top", 10, 20, AlignLeft, 1, 0},
		{"centered", 200, 190, AlignCenter, 18, 9},
		{"right aligned", 400, 400, AlignRight, 36, 19},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, c := newBoardCanvas()
			c.DrawText(tc.x, tc.y, "Text", TextStyle{Color: ColorWhite, Align: tc.align})

			for i, ch := range "Text" {
				if got := s.Get(tc.col+i, tc.row); got != ch {
					t.Errorf("Expected %q at (%d, %d), got %q", ch, tc.col+i, tc.row, got)
				}
			}
		})
	}
}

func TestCanvasDrawTextClipped(t *testing.T) {
	s, c := newBoardCanvas()
	c.DrawText(390, 20, "Hello", TextStyle{})

	if s.Get(39, 0) != 'H' {
		t.Errorf("Expected 'H' at the last column, got %q", s.Get(39, 0))
	}

	// Baseline outside the canvas draws nothing
	c.DrawText(0, 0, "Nope", TextStyle{})
	if s.Get(0, 0) != ' ' {
		t.Error("Text with baseline 0 should not be drawn")
	}
}
