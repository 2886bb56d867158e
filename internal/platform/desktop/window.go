package desktop

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Options configure the desktop window.
type Options struct {
	Scale int // Window pixels per canvas pixel
	Keys  core.KeyMap
}

// window adapts the driver to ebiten.Game.
type window struct {
	*driver
	surface *Surface
	w, h    int
}

func (win *window) Update() error {
	win.focus(ebiten.IsFocused())
	for _, k := range justPressed() {
		if win.press(k) {
			return ebiten.Termination
		}
	}
	win.advance(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

func (win *window) Draw(screen *ebiten.Image) {
	if win.surface == nil || win.surface.img != screen {
		win.surface = NewSurface(screen)
	}
	win.game.Render(win.surface)
}

func (win *window) Layout(_, _ int) (int, int) {
	return win.w, win.h
}

// Run opens a window sized to the game canvas and plays until it is
// closed or the quit key is pressed.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	scale := max(1, opts.Scale)

	w, h := game.CanvasSize()
	win := &window{driver: newDriver(game, opts.Keys), w: w, h: h}
	win.start(cfg)

	ebiten.SetWindowSize(w*scale, h*scale)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// RunGame returns nil when Update returns ebiten.Termination
	return ebiten.RunGame(win)
}
