package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// chromeRows is the number of terminal rows used outside the canvas:
// the status bar above and the help footer below.
const chromeRows = 2

// Options configure the terminal frontend.
type Options struct {
	// CellW and CellH are canvas pixels per terminal character.
	CellW, CellH int
	HUD          *StatusBar
	Keys         core.KeyMap
	Theme        Theme
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	canvas    *core.Canvas
	hud       *StatusBar
	keys      core.KeyMap
	bindings  GameKeyMap
	help      help.Model
	theme     Theme
	timer     *core.Timer
	config    core.RuntimeConfig
	gameState core.GameState
	width     int
	height    int
	tooSmall  bool
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game. The HUD in
// opts must be the same one the game was created with.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Keys == nil {
		opts.Keys = core.DefaultKeyMap()
	}
	if opts.HUD == nil {
		opts.HUD = NewStatusBar(game.Title(), opts.Theme)
	}

	w, h := game.CanvasSize()
	screen := core.NewScreen(cfg.ScreenW, max(0, cfg.ScreenH-chromeRows))
	m := Model{
		game:     game,
		screen:   screen,
		canvas:   core.NewCanvas(screen, w, h, opts.CellW, opts.CellH),
		hud:      opts.HUD,
		keys:     opts.Keys,
		bindings: NewGameKeyMap(opts.Keys),
		help:     help.New(),
		theme:    opts.Theme,
		timer:    &core.Timer{},
		config:   cfg,
		width:    cfg.ScreenW,
		height:   cfg.ScreenH,
	}
	m.layout()
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	return m.arm(m.game.Interval())
}

// arm cancels any pending tick and schedules a new one.
func (m Model) arm(interval time.Duration) tea.Cmd {
	gen := m.timer.Start(interval)
	return tickCmd(gen, interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.FocusMsg:
		m.game.SetFocused(true)

	case tea.BlurMsg:
		m.game.SetFocused(false)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, ok := m.keys.Lookup(msg.String())
	if !ok {
		return m, nil
	}
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	wasOver := m.game.State().GameOver
	m.game.Handle(action)
	m.gameState = m.game.State()

	// A restart brings the tick loop back to life at the fresh interval
	if wasOver && !m.gameState.GameOver {
		return m, m.arm(m.game.Interval())
	}
	return m, nil
}

// handleResize processes window resize events. The canvas keeps its size;
// only its placement changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(0, msg.Height-chromeRows))
	m.help.Width = msg.Width
	m.layout()
	return m, nil
}

// layout centers the canvas on the screen and flags terminals too small to hold it.
func (m *Model) layout() {
	cols, rows := m.canvas.Cols(), m.canvas.Rows()
	m.tooSmall = m.screen.Width() < cols || m.screen.Height() < rows
	m.canvas.SetOrigin(
		max(0, (m.screen.Width()-cols)/2),
		max(0, (m.screen.Height()-rows)/2),
	)
}

// handleTick processes simulation ticks.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.timer.Valid(msg.Gen) {
		return m, nil
	}

	// Hold the game while the canvas cannot be shown
	if m.tooSmall {
		return m, tickCmd(msg.Gen, m.timer.Interval())
	}

	result := m.game.Step()
	m.gameState = result.State

	if m.gameState.GameOver {
		m.timer.Stop()
		return m, nil
	}
	if result.Rescheduled {
		return m, m.arm(result.Interval)
	}
	return m, tickCmd(msg.Gen, m.timer.Interval())
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.canvas)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".tui-snake", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.tooSmall {
		cols, rows := m.canvas.Cols(), m.canvas.Rows()
		notice := m.theme.Notice.Render(fmt.Sprintf(
			"Terminal too small: need %dx%d, have %dx%d",
			cols, rows+chromeRows, m.width, m.height,
		))
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, notice)
	}

	m.screen.Clear()
	m.game.Render(m.canvas)

	var b strings.Builder
	b.WriteString(m.hud.View(m.width))
	b.WriteString("\n")
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.help.View(m.bindings)))
	return b.String()
}

// GameState returns the last state observed by the model.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),   // Use alternate screen buffer
		tea.WithReportFocus(), // Focus/blur pause the music
	)

	_, err := p.Run()
	return err
}
