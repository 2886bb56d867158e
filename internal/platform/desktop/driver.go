// Package desktop runs the game in an ebiten window.
package desktop

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// driver turns frame-polled input and wall time into game actions and
// ticks. It holds no ebiten state so it can be exercised without a window.
type driver struct {
	game    registry.Game
	keys    core.KeyMap
	timer   core.Timer
	focused bool
}

func newDriver(game registry.Game, keys core.KeyMap) *driver {
	if keys == nil {
		keys = core.DefaultKeyMap()
	}
	return &driver{game: game, keys: keys, focused: true}
}

// start resets the game and arms the tick schedule.
func (d *driver) start(cfg core.RuntimeConfig) {
	d.game.Reset(cfg)
	d.timer.Start(d.game.Interval())
}

// press handles one key. It reports whether the key asks to quit.
func (d *driver) press(key string) bool {
	action, ok := d.keys.Lookup(key)
	if !ok {
		return false
	}
	if action == core.ActionQuit {
		return true
	}

	wasOver := d.game.State().GameOver
	d.game.Handle(action)
	if wasOver && !d.game.State().GameOver {
		d.timer.Start(d.game.Interval())
	}
	return false
}

// focus forwards window focus changes to the game.
func (d *driver) focus(focused bool) {
	if focused == d.focused {
		return
	}
	d.focused = focused
	d.game.SetFocused(focused)
}

// advance feeds dt of wall time to the schedule and runs the ticks that
// fell due. A speed change re-arms the schedule, dropping the rest.
func (d *driver) advance(dt time.Duration) {
	for n := d.timer.Advance(dt); n > 0; n-- {
		res := d.game.Step()
		if res.State.GameOver {
			d.timer.Stop()
			return
		}
		if res.Rescheduled {
			d.timer.Start(res.Interval)
			return
		}
	}
}
