package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Cell is one grid square addressed in board units.
type Cell struct {
	X, Y int
}

// offBoard marks "no cell", e.g. food when the board is full.
var offBoard = Cell{X: -1, Y: -1}

// Step returns the neighbouring cell in direction d.
func (c Cell) Step(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Grid describes the board: cols x rows cells of box pixels each.
type Grid struct {
	Cols int
	Rows int
	Box  int
}

// NewGrid derives the board from the canvas pixel size.
func NewGrid(canvasW, canvasH, box int) Grid {
	return Grid{
		Cols: canvasW / box,
		Rows: canvasH / box,
		Box:  box,
	}
}

// Cells returns the total number of cells on the board.
func (g Grid) Cells() int {
	return g.Cols * g.Rows
}

// Contains reports whether c lies on the board.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Cols && c.Y >= 0 && c.Y < g.Rows
}

// Wrap maps c onto the board by wrapping each coordinate around its edge.
func (g Grid) Wrap(c Cell) Cell {
	return Cell{X: core.Mod(c.X, g.Cols), Y: core.Mod(c.Y, g.Rows)}
}

// Bounds returns the pixel rectangle covered by c.
func (g Grid) Bounds(c Cell) core.Rect {
	return core.NewRect(c.X*g.Box, c.Y*g.Box, g.Box, g.Box)
}

// CanvasSize returns the board size in pixels.
func (g Grid) CanvasSize() (int, int) {
	return g.Cols * g.Box, g.Rows * g.Box
}
