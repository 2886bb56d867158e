// Package snake implements the grid snake game: a pure tick engine over an
// explicit State plus a Game orchestrator that wires sound, HUD and
// logging around it.
package snake

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// volumeStep is how much one VolumeUp/VolumeDown press moves the music volume.
const volumeStep = 0.05

// Variant describes a registered flavour of the game.
type Variant struct {
	ID    string
	Title string
	Walls bool // Forces wrap off at start regardless of config
}

var (
	Classic = Variant{ID: "snake", Title: "Snake"}
	Walls   = Variant{ID: "snake_walls", Title: "Snake (Walls)", Walls: true}
)

func init() {
	for _, v := range []Variant{Classic, Walls} {
		registry.Register(v.ID, func(env registry.Env) registry.Game {
			return New(v, env)
		})
	}
}

// Game owns one running snake session. It is driven from a single
// goroutine: the host calls Handle between ticks and Step once per tick.
type Game struct {
	variant Variant
	cfg     config.SnakeConfig
	rules   Rules
	rng     *rand.Rand
	state   State
	tick    uint64

	wrap    bool // User setting; survives restart
	muted   bool
	focused bool

	sound  core.Sound
	hud    core.HUD
	logger *log.Logger
}

// New creates a game for variant v. Zero fields of env fall back to the
// default config, silent audio, a discarding HUD and a discarding logger.
func New(v Variant, env registry.Env) *Game {
	g := &Game{
		variant: v,
		cfg:     env.Config,
		muted:   env.Muted,
		focused: true,
		sound:   env.Sound,
		hud:     env.HUD,
		logger:  env.Logger,
	}
	if g.cfg.Board.Box == 0 {
		g.cfg = config.DefaultSnakeConfig()
	}
	if g.sound == nil {
		g.sound = core.NopSound{}
	}
	if g.hud == nil {
		g.hud = core.NopHUD{}
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}

	rules, err := RulesFromConfig(g.cfg, env.Interval)
	if err != nil {
		g.logger.Warn("invalid snake config, using defaults", "err", err)
		g.cfg = config.DefaultSnakeConfig()
		rules, _ = RulesFromConfig(g.cfg, env.Interval)
	}
	g.rules = rules

	g.wrap = g.cfg.Board.Wrap && !v.Walls
	if !g.cfg.Audio.Enabled {
		g.muted = true
	}

	g.rng = rand.New(rand.NewSource(1))
	g.state = NewState(g.rules, g.wrap, g.rng)
	return g
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// Reset seeds the game and starts the first round. It also configures the
// audio clips and starts the music unless muted.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))

	g.sound.SetLoop(core.ClipMusic, true)
	g.sound.SetVolume(core.ClipMusic, g.cfg.Audio.MusicVolume)
	g.sound.SetVolume(core.ClipEat, g.cfg.Audio.SFXVolume)
	g.sound.SetVolume(core.ClipGameOver, g.cfg.Audio.SFXVolume)

	g.restart()
	if !g.muted {
		g.startMusic()
	}
	g.hud.SetMusic(OnOff(!g.muted))
}

// restart recreates the round. Wrap and mute are left as the player set them.
func (g *Game) restart() {
	g.tick = 0
	g.state = NewState(g.rules, g.wrap, g.rng)
	g.hud.SetScore(scoreText(g.state.Score))
	g.hud.SetWrap(OnOff(g.wrap))
	g.logger.Info("round started",
		"variant", g.variant.ID,
		"interval", g.state.Interval,
		"wrap", g.wrap,
		"food", g.state.Food,
	)
}

// Handle applies one input action.
func (g *Game) Handle(a core.Action) {
	switch a {
	case core.ActionLeft:
		g.state = Steer(g.state, DirLeft)
	case core.ActionUp:
		g.state = Steer(g.state, DirUp)
	case core.ActionRight:
		g.state = Steer(g.state, DirRight)
	case core.ActionDown:
		g.state = Steer(g.state, DirDown)
	case core.ActionToggleWrap:
		g.state = ToggleWrap(g.state)
		g.wrap = g.state.Wrap
		g.hud.SetWrap(OnOff(g.wrap))
		g.logger.Debug("wrap toggled", "wrap", g.wrap)
	case core.ActionToggleMute:
		g.setMuted(!g.muted)
	case core.ActionRestart:
		if g.state.GameOver {
			g.restart()
		}
	case core.ActionVolumeUp:
		g.nudgeVolume(volumeStep)
	case core.ActionVolumeDown:
		g.nudgeVolume(-volumeStep)
	}
}

// Step advances one tick and fires the matching side effects.
func (g *Game) Step() core.StepResult {
	if g.state.GameOver {
		return core.StepResult{State: g.State(), Interval: g.state.Interval}
	}

	g.tick++
	next, out := Advance(g.state, g.rules, g.rng)
	g.state = next

	if out.Ate {
		g.cue(core.ClipEat)
		g.hud.SetScore(scoreText(g.state.Score))
		g.logger.Debug("food eaten", "score", g.state.Score, "length", len(g.state.Snake))
	}
	if out.SpeedChanged {
		g.logger.Debug("speed changed", "interval", g.state.Interval)
	}
	if out.Died {
		g.cue(core.ClipGameOver)
		g.logger.Info("game over",
			"cause", out.Cause,
			"score", g.state.Score,
			"ticks", g.tick,
		)
	}

	return core.StepResult{
		State:       g.State(),
		Interval:    g.state.Interval,
		Rescheduled: out.SpeedChanged,
	}
}

// Render draws the current frame.
func (g *Game) Render(dst core.Surface) {
	Render(dst, g.state, g.rules.Grid, g.muted)
}

// State returns the platform-facing summary.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		GameOver: g.state.GameOver,
	}
}

// Snake returns a copy of the full game state.
func (g *Game) Snake() State {
	s := g.state
	s.Snake = append([]Cell(nil), g.state.Snake...)
	return s
}

// Interval returns the current tick interval.
func (g *Game) Interval() time.Duration {
	return g.state.Interval
}

// CanvasSize returns the board size in pixels.
func (g *Game) CanvasSize() (int, int) {
	return g.rules.Grid.CanvasSize()
}

// Muted reports whether audio is muted.
func (g *Game) Muted() bool {
	return g.muted
}

// SetFocused pauses the music while the host is in the background and
// resumes it on return unless muted.
func (g *Game) SetFocused(focused bool) {
	if g.focused == focused {
		return
	}
	g.focused = focused
	if !focused {
		g.sound.Pause(core.ClipMusic)
		return
	}
	if !g.muted {
		g.startMusic()
	}
}

func (g *Game) setMuted(muted bool) {
	g.muted = muted
	if muted {
		g.sound.Pause(core.ClipMusic)
	} else if g.focused {
		g.startMusic()
	}
	g.hud.SetMusic(OnOff(!g.muted))
	g.logger.Debug("mute toggled", "muted", g.muted)
}

// startMusic starts the background loop. If the device refuses, the game
// falls back to muted and tells the HUD.
func (g *Game) startMusic() {
	if err := g.sound.Play(core.ClipMusic); err != nil {
		g.logger.Debug("music start failed", "err", err)
		g.muted = true
		g.hud.SetMusic(OnOff(false))
	}
}

// cue plays a one-shot sound effect. Errors are dropped.
func (g *Game) cue(c core.Clip) {
	if g.muted {
		return
	}
	if err := g.sound.Play(c); err != nil {
		g.logger.Debug("sound failed", "clip", c, "err", err)
	}
}

func (g *Game) nudgeVolume(delta float64) {
	v := core.ClampF(g.sound.Volume(core.ClipMusic)+delta, 0, 1)
	g.sound.SetVolume(core.ClipMusic, v)
	g.logger.Debug("music volume", "volume", v)
}
