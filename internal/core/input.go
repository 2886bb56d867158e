package core

import (
	"sort"
	"strings"
)

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionLeft              // Left arrow - steer left
	ActionUp                // Up arrow - steer up
	ActionRight             // Right arrow - steer right
	ActionDown              // Down arrow - steer down
	ActionToggleWrap        // W - toggle wall wrap
	ActionToggleMute        // M - toggle music
	ActionRestart           // R, Enter - restart after game over
	ActionVolumeUp          // + - louder music
	ActionVolumeDown        // - - quieter music
	ActionQuit              // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionUp:
		return "Up"
	case ActionRight:
		return "Right"
	case ActionDown:
		return "Down"
	case ActionToggleWrap:
		return "ToggleWrap"
	case ActionToggleMute:
		return "ToggleMute"
	case ActionRestart:
		return "Restart"
	case ActionVolumeUp:
		return "VolumeUp"
	case ActionVolumeDown:
		return "VolumeDown"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// KeyMap translates key identifier strings into actions.
// Lookups are case-insensitive.
type KeyMap map[string]Action

// DefaultKeyMap returns the standard bindings. Both terminal-style names
// ("left", "enter") and browser-style names ("ArrowLeft", "Enter") resolve.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		"left":       ActionLeft,
		"arrowleft":  ActionLeft,
		"up":         ActionUp,
		"arrowup":    ActionUp,
		"right":      ActionRight,
		"arrowright": ActionRight,
		"down":       ActionDown,
		"arrowdown":  ActionDown,
		"w":          ActionToggleWrap,
		"m":          ActionToggleMute,
		"r":          ActionRestart,
		"enter":      ActionRestart,
		"+":          ActionVolumeUp,
		"=":          ActionVolumeUp,
		"-":          ActionVolumeDown,
		"q":          ActionQuit,
		"ctrl+c":     ActionQuit,
	}
}

// Lookup returns the action bound to key, or false for unrecognized keys.
func (km KeyMap) Lookup(key string) (Action, bool) {
	a, ok := km[strings.ToLower(key)]
	if !ok || a == ActionNone {
		return ActionNone, false
	}
	return a, true
}

// Keys returns the keys bound to the given action, sorted.
func (km KeyMap) Keys(a Action) []string {
	var keys []string
	for k, v := range km {
		if v == a {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
