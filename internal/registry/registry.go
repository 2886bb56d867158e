// Package registry provides a global registry for game factories.
// Game variants register themselves in init() functions, allowing the
// platform to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Game is the core interface that all game variants implement.
// Games contain pure logic with no frontend dependencies (no Bubble Tea, no ebiten).
// The platform handles key mapping, timing, and presenting frames.
type Game interface {
	// ID returns a unique identifier for this variant (e.g., "snake").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	Reset(cfg core.RuntimeConfig)

	// Handle applies one input action between ticks.
	Handle(a core.Action)

	// Step advances the simulation by one tick.
	Step() core.StepResult

	// Render draws the current game state onto the surface.
	Render(dst core.Surface)

	// State returns the current game state (score, game over).
	State() core.GameState

	// Interval returns the current tick interval.
	Interval() time.Duration

	// CanvasSize returns the canvas dimensions in pixels.
	CanvasSize() (width, height int)

	// SetFocused tells the game whether its window or terminal has focus.
	SetFocused(focused bool)
}

// Env carries the collaborators and settings a factory wires into a game.
// Zero fields fall back to defaults.
type Env struct {
	Config   config.SnakeConfig
	Interval time.Duration // Starting tick interval picked by the menu
	Muted    bool
	Sound    core.Sound
	HUD      core.HUD
	Logger   *log.Logger
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func(env Env) Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	g := f(Env{})
	titles[id] = g.Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string, env Env) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(env), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
