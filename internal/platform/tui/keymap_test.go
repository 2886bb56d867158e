package tui

import (
	"slices"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestGameKeyMapFromCore(t *testing.T) {
	km := NewGameKeyMap(core.DefaultKeyMap())

	tests := []struct {
		name string
		keys []string
		want []string
	}{
		{"steer", km.Steer.Keys(), []string{"left", "up", "right", "down"}},
		{"wrap", km.Wrap.Keys(), []string{"w"}},
		{"mute", km.Mute.Keys(), []string{"m"}},
		{"restart", km.Restart.Keys(), []string{"enter", "r"}},
		{"volume", km.Volume.Keys(), []string{"+", "=", "-"}},
		{"quit", km.Quit.Keys(), []string{"ctrl+c", "q"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !slices.Equal(tt.keys, tt.want) {
				t.Errorf("keys = %q, expected %q", tt.keys, tt.want)
			}
		})
	}

	if h := km.Restart.Help(); h.Key != "enter/r" || h.Desc != "restart" {
		t.Errorf("restart help = %+v", h)
	}
	if len(km.ShortHelp()) != 6 {
		t.Errorf("ShortHelp has %d bindings", len(km.ShortHelp()))
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionQuit},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, MenuActionNone},
	}

	for _, tt := range tests {
		if got := MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
		}
	}
}
