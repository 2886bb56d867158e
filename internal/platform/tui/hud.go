package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// StatusBar is the HUD drawn above the canvas. The game pushes display
// strings into it; the model renders it every frame.
type StatusBar struct {
	theme Theme
	title string
	score string
	wrap  string
	music string
}

var _ core.HUD = (*StatusBar)(nil)

// NewStatusBar creates a status bar for the given game title.
func NewStatusBar(title string, theme Theme) *StatusBar {
	return &StatusBar{
		theme: theme,
		title: title,
		score: "Score: 0",
		wrap:  "ON",
		music: "ON",
	}
}

func (b *StatusBar) SetScore(text string) { b.score = text }
func (b *StatusBar) SetWrap(text string) { b.wrap = text }
func (b *StatusBar) SetMusic(text string) { b.music = text }

// View renders the bar centered in width columns.
func (b *StatusBar) View(width int) string {
	sep := b.theme.HUDSeparator.Render("  │  ")
	parts := []string{
		b.theme.HUDValue.Render(b.title),
		b.theme.HUDValue.Render(b.score),
		b.theme.HUDLabel.Render("Wrap (W): ") + b.toggle(b.wrap),
		b.theme.HUDLabel.Render("Music (M): ") + b.toggle(b.music),
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(parts, sep))
}

func (b *StatusBar) toggle(v string) string {
	if v == "ON" {
		return b.theme.HUDOn.Render(v)
	}
	return b.theme.HUDOff.Render(v)
}
