package snake

// Steer queues d as the next direction. The exact reverse of the current
// direction is rejected; otherwise the latest call wins.
func Steer(s State, d Direction) State {
	if d == s.Direction.Opposite() {
		return s
	}
	s.Pending = d
	return s
}

// ToggleWrap flips wall-wrap mode.
func ToggleWrap(s State) State {
	s.Wrap = !s.Wrap
	return s
}

// OnOff formats a toggle for HUD and overlay text.
func OnOff(on bool) string {
	if on {
		return "ON"
	}
	return "OFF"
}
