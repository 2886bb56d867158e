package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// DifficultyModel lets users choose the starting speed before a game.
type DifficultyModel struct {
	presets  []config.Preset
	cursor   int
	width    int
	height   int
	theme    Theme
	selected *config.Preset
	quitting bool
}

// NewDifficultyModel creates a picker over the configured presets with
// the cursor on the default one.
func NewDifficultyModel(cfg config.SnakeConfig, theme Theme, width, height int) DifficultyModel {
	presets := cfg.Presets()
	cursor := 0
	for i, p := range presets {
		if p.Name == cfg.Difficulty.Default {
			cursor = i
		}
	}
	return DifficultyModel{
		presets: presets,
		cursor:  cursor,
		width:   width,
		height:  height,
		theme:   theme,
	}
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m DifficultyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.presets)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		if len(m.presets) > 0 {
			p := m.presets[m.cursor]
			m.selected = &p
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the difficulty list.
func (m DifficultyModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuTitle.Render("S N A K E"), 9, m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.theme.MenuDescription.Render("Choose your speed:"), 18, m.width))
	b.WriteString("\n\n")

	for i, p := range m.presets {
		line := fmt.Sprintf("  %-8s %4d ms", capitalize(string(p.Name)), p.Interval.Milliseconds())
		style := m.theme.MenuItemNormal
		if i == m.cursor {
			line = "> " + line[2:]
			style = m.theme.MenuItemActive
		}
		b.WriteString(centerText(style.Render(line), len(line), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	footer := "Enter: Play  |  Esc/Q: Quit"
	b.WriteString(centerText(m.theme.MenuDescription.Render(footer), len(footer), m.width))

	return b.String()
}

// Selected returns the chosen preset, or nil if still choosing.
func (m DifficultyModel) Selected() *config.Preset {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m DifficultyModel) IsQuitting() bool {
	return m.quitting
}

// centerText pads styled text of visible width n to the middle of width.
func centerText(text string, n, width int) string {
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// RunDifficultySelector runs the picker and returns the chosen preset,
// or nil if the user quit.
func RunDifficultySelector(cfg config.SnakeConfig, theme Theme, width, height int) (*config.Preset, error) {
	model := NewDifficultyModel(cfg, theme, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(DifficultyModel)
	if !ok || m.IsQuitting() {
		return nil, nil
	}
	return m.Selected(), nil
}
