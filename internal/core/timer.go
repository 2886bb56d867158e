package core

import "time"

// Timer is a cancellable repeating task for hosts that drive game ticks.
// Changing the interval cancels the current schedule and starts a new one;
// every schedule carries a generation number so a host can drop ticks that
// were armed by a cancelled schedule.
//
// Timer is not safe for concurrent use; hosts call it from their update loop.
type Timer struct {
	interval time.Duration
	gen      uint64
	running  bool
	elapsed  time.Duration
}

// Start cancels any current schedule and begins a new one with the given
// interval. It returns the generation of the new schedule.
func (t *Timer) Start(interval time.Duration) uint64 {
	t.gen++
	t.interval = interval
	t.running = true
	t.elapsed = 0
	return t.gen
}

// Stop cancels the current schedule. Pending ticks become stale.
func (t *Timer) Stop() {
	t.gen++
	t.running = false
	t.elapsed = 0
}

// Running reports whether a schedule is active.
func (t *Timer) Running() bool {
	return t.running
}

// Interval returns the interval of the current schedule.
func (t *Timer) Interval() time.Duration {
	return t.interval
}

// Generation returns the generation of the current schedule.
func (t *Timer) Generation() uint64 {
	return t.gen
}

// Valid reports whether a tick armed under generation gen should fire.
func (t *Timer) Valid(gen uint64) bool {
	return t.running && gen == t.gen
}

// Advance feeds dt of wall time into the schedule and returns how many
// ticks became due. It is meant for frame-driven hosts that poll instead
// of arming one-shot callbacks.
func (t *Timer) Advance(dt time.Duration) int {
	if !t.running || t.interval <= 0 {
		return 0
	}
	t.elapsed += dt
	n := 0
	for t.elapsed >= t.interval {
		t.elapsed -= t.interval
		n++
	}
	return n
}
