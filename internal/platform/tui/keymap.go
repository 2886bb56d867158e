package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// GameKeyMap holds the bindings shown in the help footer. The keys come
// from a core.KeyMap so the footer always matches what is actually bound.
type GameKeyMap struct {
	Steer   key.Binding
	Wrap    key.Binding
	Mute    key.Binding
	Restart key.Binding
	Volume  key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Steer, k.Wrap, k.Mute, k.Restart, k.Volume, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Steer, k.Restart},
		{k.Wrap, k.Mute, k.Volume},
		{k.Quit},
	}
}

// NewGameKeyMap derives help bindings from km.
func NewGameKeyMap(km core.KeyMap) GameKeyMap {
	steer := make([]string, 0, 4)
	for _, a := range []core.Action{core.ActionLeft, core.ActionUp, core.ActionRight, core.ActionDown} {
		steer = append(steer, terminalKeys(km, a)...)
	}
	volume := append(terminalKeys(km, core.ActionVolumeUp), terminalKeys(km, core.ActionVolumeDown)...)

	return GameKeyMap{
		Steer:   binding(steer, "arrows", "steer"),
		Wrap:    binding(terminalKeys(km, core.ActionToggleWrap), "", "wrap"),
		Mute:    binding(terminalKeys(km, core.ActionToggleMute), "", "music"),
		Restart: binding(terminalKeys(km, core.ActionRestart), "", "restart"),
		Volume:  binding(volume, "+/-", "volume"),
		Quit:    binding(terminalKeys(km, core.ActionQuit), "", "quit"),
	}
}

// terminalKeys drops browser-style aliases that a terminal never sends.
func terminalKeys(km core.KeyMap, a core.Action) []string {
	var keys []string
	for _, k := range km.Keys(a) {
		if strings.HasPrefix(k, "arrow") {
			continue
		}
		keys = append(keys, k)
	}
	return keys
}

func binding(keys []string, helpKey, desc string) key.Binding {
	if helpKey == "" {
		helpKey = strings.Join(keys, "/")
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpKey, desc),
	)
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	}
	return MenuActionNone
}
