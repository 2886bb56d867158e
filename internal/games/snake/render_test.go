package snake

import (
	"slices"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

type drawOp struct {
	kind  string
	rect  core.Rect
	color core.Color
	x, y  int
	text  string
	style core.TextStyle
}

// recorder is a Surface that logs every call.
type recorder struct {
	w, h int
	ops  []drawOp
}

func (r *recorder) Size() (int, int) { return r.w, r.h }

func (r *recorder) Fill(c core.Color) {
	r.ops = append(r.ops, drawOp{kind: "fill", color: c})
}

func (r *recorder) FillRect(rect core.Rect, c core.Color) {
	r.ops = append(r.ops, drawOp{kind: "fillrect", rect: rect, color: c})
}

func (r *recorder) StrokeRect(rect core.Rect, c core.Color) {
	r.ops = append(r.ops, drawOp{kind: "stroke", rect: rect, color: c})
}

func (r *recorder) DrawText(x, y int, text string, style core.TextStyle) {
	r.ops = append(r.ops, drawOp{kind: "text", x: x, y: y, text: text, style: style})
}

func (r *recorder) texts() []string {
	var out []string
	for _, op := range r.ops {
		if op.kind == "text" {
			out = append(out, op.text)
		}
	}
	return out
}

func TestRenderIdempotent(t *testing.T) {
	g := Grid{Cols: 20, Rows: 20, Box: 20}
	s := stateAt(DirRight, true, Cell{X: 9, Y: 9}, Cell{X: 8, Y: 9})
	s.Food = Cell{X: 2, Y: 3}
	s.Score = 4

	a := &recorder{w: 400, h: 400}
	b := &recorder{w: 400, h: 400}
	Render(a, s, g, false)
	Render(b, s, g, false)

	if !slices.Equal(a.ops, b.ops) {
		t.Error("rendering the same state twice produced different frames")
	}
}

func TestRenderLayers(t *testing.T) {
	g := Grid{Cols: 20, Rows: 20, Box: 20}
	s := stateAt(DirRight, true, Cell{X: 9, Y: 9}, Cell{X: 8, Y: 9})
	s.Food = Cell{X: 2, Y: 3}
	s.Score = 4

	r := &recorder{w: 400, h: 400}
	Render(r, s, g, false)

	if r.ops[0].kind != "fill" || r.ops[0].color != colorBackground {
		t.Errorf("first op should clear the background, got %+v", r.ops[0])
	}

	strokes := 0
	var food, head, body bool
	for _, op := range r.ops {
		switch {
		case op.kind == "stroke":
			strokes++
		case op.kind == "fillrect" && op.rect == g.Bounds(s.Food):
			food = op.color == colorFood
		case op.kind == "fillrect" && op.rect == g.Bounds(Cell{X: 9, Y: 9}):
			head = op.color == colorHead
		case op.kind == "fillrect" && op.rect == g.Bounds(Cell{X: 8, Y: 9}):
			body = op.color == colorBody
		}
	}
	if strokes != 400 {
		t.Errorf("expected one grid stroke per cell, got %d", strokes)
	}
	if !food || !head || !body {
		t.Errorf("missing layers: food=%v head=%v body=%v", food, head, body)
	}

	texts := r.texts()
	if len(texts) != 1 || texts[0] != "Score: 4" {
		t.Errorf("live frame texts = %q, expected only the score", texts)
	}
}

func TestRenderGameOverOverlay(t *testing.T) {
	g := Grid{Cols: 20, Rows: 20, Box: 20}
	s := stateAt(DirRight, false, Cell{X: 19, Y: 9})
	s.GameOver = true
	s.Score = 7

	r := &recorder{w: 400, h: 400}
	Render(r, s, g, true)

	want := []string{
		"Score: 7",
		"Game Over!",
		"Score: 7",
		"Press R/Enter to restart",
		"Wrap (W): OFF",
		"Music (M): OFF",
	}
	if got := r.texts(); !slices.Equal(got, want) {
		t.Errorf("overlay texts = %q, expected %q", got, want)
	}

	shaded := false
	for _, op := range r.ops {
		if op.kind == "fillrect" && op.color == core.ColorShade && op.rect == core.NewRect(0, 0, 400, 400) {
			shaded = true
		}
	}
	if !shaded {
		t.Error("overlay should shade the whole canvas")
	}
}

func TestRenderOnTerminalCanvas(t *testing.T) {
	g := Grid{Cols: 20, Rows: 20, Box: 20}
	s := stateAt(DirRight, true, Cell{X: 9, Y: 9})
	s.Food = Cell{X: 2, Y: 3}
	s.Score = 12

	screen := core.NewScreen(40, 20)
	Render(core.NewCanvas(screen, 400, 400, 10, 20), s, g, false)

	if !strings.Contains(screen.Row(0), "Score: 12") {
		t.Errorf("score missing from top row: %q", screen.Row(0))
	}
	// Head at cell (9,9) covers characters 18-19 on row 9
	if c := screen.GetCell(18, 9); c.Rune != '█' || c.Color != colorHead {
		t.Errorf("head cell = %+v", c)
	}
	if c := screen.GetCell(4, 3); c.Rune != '█' || c.Color != colorFood {
		t.Errorf("food cell = %+v", c)
	}

	s.GameOver = true
	Render(core.NewCanvas(screen, 400, 400, 10, 20), s, g, false)
	if !strings.Contains(screen.String(), "Game Over!") {
		t.Errorf("overlay missing:\n%s", screen.String())
	}
	if !strings.Contains(screen.String(), "Music (M): ON") {
		t.Error("unmuted overlay should show music ON")
	}
}
