package snake

import (
	"math/rand"
	"slices"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// DeathCause records why a game ended.
type DeathCause string

const (
	CauseNone      DeathCause = ""
	CauseWall      DeathCause = "wall-collision"
	CauseSelf      DeathCause = "self-collision"
	CauseBoardFull DeathCause = "board-full"
)

// Rules are the fixed parameters of one game: board, spawn point and the
// speed curve. They never change during play.
type Rules struct {
	Grid          Grid
	Start         Cell
	StartDir      Direction
	StartInterval time.Duration
	Speed         config.SnakeSpeed
}

// RulesFromConfig builds Rules from a validated config. A zero interval
// selects the config's default difficulty.
func RulesFromConfig(cfg config.SnakeConfig, interval time.Duration) (Rules, error) {
	dir, err := ParseDirection(cfg.Start.Direction)
	if err != nil {
		return Rules{}, err
	}
	if interval <= 0 {
		interval, err = cfg.StartInterval("")
		if err != nil {
			return Rules{}, err
		}
	}
	b := cfg.Board
	return Rules{
		Grid:          NewGrid(b.CanvasWidth, b.CanvasHeight, b.Box),
		Start:         Cell{X: cfg.Start.X, Y: cfg.Start.Y},
		StartDir:      dir,
		StartInterval: interval,
		Speed:         cfg.Speed,
	}, nil
}

// State is the complete game state. It is a value: the pure functions in
// this package take a State and return a new one.
type State struct {
	Snake     []Cell // Head at index 0
	Direction Direction
	Pending   Direction // Applied at the start of the next tick
	Food      Cell
	Score     int
	GameOver  bool
	Cause     DeathCause
	Wrap      bool
	Interval  time.Duration
}

// NewState starts a fresh game: a length-1 snake at the spawn cell, score
// zero, food on a random free cell. Wrap is a user setting carried in.
func NewState(r Rules, wrap bool, rng *rand.Rand) State {
	s := State{
		Snake:     []Cell{r.Start},
		Direction: r.StartDir,
		Pending:   r.StartDir,
		Wrap:      wrap,
		Interval:  r.StartInterval,
	}
	food, ok := SpawnFood(rng, r.Grid, s.Snake)
	s.Food = food
	if !ok {
		s.GameOver = true
		s.Cause = CauseBoardFull
	}
	return s
}

// Head returns the snake's head cell.
func (s State) Head() Cell {
	return s.Snake[0]
}

// Occupies reports whether c is covered by any snake segment.
func (s State) Occupies(c Cell) bool {
	return slices.Contains(s.Snake, c)
}
