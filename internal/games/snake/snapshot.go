package snake

import "time"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StateGameOver GameStateType = "game_over"
)

// Snapshot captures the observable game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Variant  string
	Score    int
	SnakeLen int
	HeadX    int
	HeadY    int
	Dir      Direction
	FoodX    int
	FoodY    int
	Interval time.Duration
	Wrap     bool
	Muted    bool
	Cause    DeathCause
	State    GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	if g.state.GameOver {
		state = StateGameOver
	}

	head := g.state.Head()
	return Snapshot{
		Tick:     g.tick,
		Variant:  g.variant.ID,
		Score:    g.state.Score,
		SnakeLen: len(g.state.Snake),
		HeadX:    head.X,
		HeadY:    head.Y,
		Dir:      g.state.Direction,
		FoodX:    g.state.Food.X,
		FoodY:    g.state.Food.Y,
		Interval: g.state.Interval,
		Wrap:     g.state.Wrap,
		Muted:    g.muted,
		Cause:    g.state.Cause,
		State:    state,
	}
}
