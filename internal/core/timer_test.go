package core

import (
	"testing"
	"time"
)

func TestTimerGenerations(t *testing.T) {
	var tm Timer

	if tm.Running() {
		t.Fatal("Zero timer should not be running")
	}

	g1 := tm.Start(150 * time.Millisecond)
	if !tm.Valid(g1) {
		t.Error("Tick from the current schedule should be valid")
	}

	// Rescheduling cancels the old schedule
	g2 := tm.Start(145 * time.Millisecond)
	if g2 == g1 {
		t.Fatal("Start should produce a new generation")
	}
	if tm.Valid(g1) {
		t.Error("Tick from a cancelled schedule should be stale")
	}
	if !tm.Valid(g2) {
		t.Error("Tick from the new schedule should be valid")
	}
	if tm.Interval() != 145*time.Millisecond {
		t.Errorf("Interval() = %v, expected 145ms", tm.Interval())
	}

	tm.Stop()
	if tm.Running() {
		t.Error("Timer should not be running after Stop")
	}
	if tm.Valid(g2) {
		t.Error("No tick should be valid after Stop")
	}
}

func TestTimerAdvance(t *testing.T) {
	var tm Timer

	if n := tm.Advance(time.Second); n != 0 {
		t.Errorf("Stopped timer should not produce ticks, got %d", n)
	}

	tm.Start(100 * time.Millisecond)

	tests := []struct {
		dt       time.Duration
		expected int
	}{
		{60 * time.Millisecond, 0},
		{60 * time.Millisecond, 1}, // 120ms accumulated
		{80 * time.Millisecond, 1}, // 20 + 80 = 100ms
		{250 * time.Millisecond, 2},
	}

	for i, tc := range tests {
		if n := tm.Advance(tc.dt); n != tc.expected {
			t.Errorf("step %d: Advance(%v) = %d, expected %d", i, tc.dt, n, tc.expected)
		}
	}
}

func TestTimerRestartResetsElapsed(t *testing.T) {
	var tm Timer
	tm.Start(100 * time.Millisecond)
	tm.Advance(90 * time.Millisecond)

	// Cancel-and-reschedule drops the partial interval
	tm.Start(50 * time.Millisecond)
	if n := tm.Advance(40 * time.Millisecond); n != 0 {
		t.Errorf("Expected no tick right after reschedule, got %d", n)
	}
	if n := tm.Advance(10 * time.Millisecond); n != 1 {
		t.Errorf("Expected one tick after a full new interval, got %d", n)
	}
}
