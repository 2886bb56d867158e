package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Palette used by Render.
const (
	colorBackground = core.ColorBlack
	colorGridLine   = core.ColorDarkGray
	colorFood       = core.ColorRed
	colorHead       = core.ColorBrightGreen
	colorBody       = core.ColorWhite
	colorText       = core.ColorBrightWhite
)

// Render draws one frame of s. It only reads its inputs, so drawing the
// same state twice yields the same frame.
func Render(dst core.Surface, s State, g Grid, muted bool) {
	dst.Fill(colorBackground)

	for y := range g.Rows {
		for x := range g.Cols {
			dst.StrokeRect(g.Bounds(Cell{X: x, Y: y}), colorGridLine)
		}
	}

	if g.Contains(s.Food) {
		dst.FillRect(g.Bounds(s.Food), colorFood)
	}

	// Body first so the head stays visible if cells ever overlap
	for i := len(s.Snake) - 1; i >= 0; i-- {
		col := colorBody
		if i == 0 {
			col = colorHead
		}
		dst.FillRect(g.Bounds(s.Snake[i]), col)
	}

	dst.DrawText(10, 20, scoreText(s.Score), core.TextStyle{Color: colorText, Size: 16})

	if s.GameOver {
		renderGameOver(dst, s, muted)
	}
}

func renderGameOver(dst core.Surface, s State, muted bool) {
	w, h := dst.Size()
	dst.FillRect(core.NewRect(0, 0, w, h), core.ColorShade)

	cx, cy := w/2, h/2
	title := core.TextStyle{Color: core.ColorBrightRed, Size: 28, Align: core.AlignCenter}
	body := core.TextStyle{Color: colorText, Size: 16, Align: core.AlignCenter}

	dst.DrawText(cx, cy-10, "Game Over!", title)
	dst.DrawText(cx, cy+20, scoreText(s.Score), body)
	dst.DrawText(cx, cy+44, "Press R/Enter to restart", body)
	dst.DrawText(cx, cy+68, "Wrap (W): "+OnOff(s.Wrap), body)
	dst.DrawText(cx, cy+92, "Music (M): "+OnOff(!muted), body)
}

func scoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}
