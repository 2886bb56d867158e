package snake

import (
	"math/rand"
	"slices"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
)

func testRules(t *testing.T) Rules {
	t.Helper()
	r, err := RulesFromConfig(config.DefaultSnakeConfig(), 150*time.Millisecond)
	if err != nil {
		t.Fatalf("RulesFromConfig: %v", err)
	}
	return r
}

// stateAt builds a live state with the given body and a food cell out of the way.
func stateAt(dir Direction, wrap bool, body ...Cell) State {
	return State{
		Snake:     body,
		Direction: dir,
		Pending:   dir,
		Food:      Cell{X: 0, Y: 0},
		Wrap:      wrap,
		Interval:  150 * time.Millisecond,
	}
}

func TestRulesFromDefaultConfig(t *testing.T) {
	r := testRules(t)

	if r.Grid.Cols != 20 || r.Grid.Rows != 20 || r.Grid.Box != 20 {
		t.Errorf("Grid = %+v, expected 20x20 cells of 20px", r.Grid)
	}
	if r.Start != (Cell{X: 9, Y: 9}) || r.StartDir != DirRight {
		t.Errorf("Start = %v %v, expected (9,9) right", r.Start, r.StartDir)
	}

	// Zero interval picks the default difficulty
	r2, err := RulesFromConfig(config.DefaultSnakeConfig(), 0)
	if err != nil {
		t.Fatalf("RulesFromConfig: %v", err)
	}
	if r2.StartInterval != 150*time.Millisecond {
		t.Errorf("StartInterval = %v, expected 150ms", r2.StartInterval)
	}
}

func TestNewState(t *testing.T) {
	r := testRules(t)
	s := NewState(r, true, rand.New(rand.NewSource(1)))

	if len(s.Snake) != 1 || s.Head() != (Cell{X: 9, Y: 9}) {
		t.Errorf("Snake = %v, expected single cell at (9,9)", s.Snake)
	}
	if s.Direction != DirRight || s.Pending != DirRight {
		t.Errorf("Direction = %v/%v, expected right/right", s.Direction, s.Pending)
	}
	if s.Score != 0 || s.GameOver || s.Interval != 150*time.Millisecond {
		t.Errorf("unexpected fresh state %+v", s)
	}
	if s.Occupies(s.Food) || !r.Grid.Contains(s.Food) {
		t.Errorf("Food %v must be on the board and off the snake", s.Food)
	}
}

func TestAdvanceScenarios(t *testing.T) {
	r := testRules(t)
	rng := rand.New(rand.NewSource(7))

	tests := []struct {
		name     string
		head     Cell
		wrap     bool
		wantHead Cell
		wantOver bool
	}{
		{"plain move", Cell{X: 9, Y: 9}, true, Cell{X: 10, Y: 9}, false},
		{"wrap right edge", Cell{X: 19, Y: 9}, true, Cell{X: 0, Y: 9}, false},
		{"wall right edge", Cell{X: 19, Y: 9}, false, Cell{X: 19, Y: 9}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := stateAt(DirRight, tt.wrap, tt.head)
			s.Food = Cell{X: 5, Y: 5}

			next, out := Advance(s, r, rng)

			if next.GameOver != tt.wantOver || out.Died != tt.wantOver {
				t.Fatalf("GameOver = %v (died %v), expected %v", next.GameOver, out.Died, tt.wantOver)
			}
			if next.Head() != tt.wantHead {
				t.Errorf("Head = %v, expected %v", next.Head(), tt.wantHead)
			}
			if len(next.Snake) != 1 {
				t.Errorf("Length = %d, expected 1", len(next.Snake))
			}
			if tt.wantOver && next.Cause != CauseWall {
				t.Errorf("Cause = %q, expected %q", next.Cause, CauseWall)
			}
		})
	}
}

func TestAdvanceWrapAllEdges(t *testing.T) {
	r := testRules(t)
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		dir  Direction
		head Cell
		want Cell
	}{
		{DirLeft, Cell{X: 0, Y: 4}, Cell{X: 19, Y: 4}},
		{DirUp, Cell{X: 4, Y: 0}, Cell{X: 4, Y: 19}},
		{DirRight, Cell{X: 19, Y: 4}, Cell{X: 0, Y: 4}},
		{DirDown, Cell{X: 4, Y: 19}, Cell{X: 4, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			s := stateAt(tt.dir, true, tt.head)
			s.Food = Cell{X: 10, Y: 10}
			next, _ := Advance(s, r, rng)
			if next.Head() != tt.want {
				t.Errorf("Head = %v, expected %v", next.Head(), tt.want)
			}
		})
	}
}

func TestAdvanceSelfCollision(t *testing.T) {
	r := testRules(t)
	rng := rand.New(rand.NewSource(1))

	// Moving down from (5,5) runs into (5,6)
	body := []Cell{{5, 5}, {6, 5}, {6, 6}, {5, 6}, {4, 6}}
	s := stateAt(DirLeft, true, body...)
	s.Pending = DirDown

	next, out := Advance(s, r, rng)
	if !next.GameOver || out.Cause != CauseSelf {
		t.Fatalf("expected self collision, got over=%v cause=%q", next.GameOver, out.Cause)
	}

	// The tail cell counts as occupied on the tick it would vacate
	tailBody := []Cell{{5, 5}, {6, 5}, {6, 6}, {5, 6}}
	s = stateAt(DirLeft, true, tailBody...)
	s.Pending = DirDown
	next, _ = Advance(s, r, rng)
	if !next.GameOver || next.Cause != CauseSelf {
		t.Errorf("moving into the tail should be fatal, got %+v", next)
	}
}

func TestAdvanceLengthOneNeverSelfCollides(t *testing.T) {
	r := testRules(t)
	rng := rand.New(rand.NewSource(3))

	for _, dir := range []Direction{DirLeft, DirUp, DirRight, DirDown} {
		s := stateAt(dir, true, Cell{X: 10, Y: 10})
		s.Food = Cell{X: 0, Y: 19}
		for range 50 {
			s, _ = Advance(s, r, rng)
			if s.GameOver {
				t.Fatalf("length-1 snake died moving %v: %q", dir, s.Cause)
			}
		}
	}
}

func TestAdvanceEat(t *testing.T) {
	r := testRules(t)
	rng := rand.New(rand.NewSource(11))

	s := stateAt(DirRight, true, Cell{X: 9, Y: 9})
	s.Food = Cell{X: 10, Y: 9}

	next, out := Advance(s, r, rng)

	if !out.Ate || !out.SpeedChanged {
		t.Fatalf("Outcome = %+v, expected eat with speed change", out)
	}
	if next.Score != 1 {
		t.Errorf("Score = %d, expected 1", next.Score)
	}
	want := []Cell{{10, 9}, {9, 9}}
	if !slices.Equal(next.Snake, want) {
		t.Errorf("Snake = %v, expected %v", next.Snake, want)
	}
	if next.Interval != 145*time.Millisecond {
		t.Errorf("Interval = %v, expected 145ms", next.Interval)
	}
	if next.Occupies(next.Food) {
		t.Errorf("Food respawned on the snake at %v", next.Food)
	}
}

func TestAdvanceSpeedFloor(t *testing.T) {
	r := testRules(t)
	rng := rand.New(rand.NewSource(5))

	tests := []struct {
		name    string
		start   time.Duration
		want    time.Duration
		changed bool
	}{
		{"normal step", 100 * time.Millisecond, 95 * time.Millisecond, true},
		{"clamps to floor", 52 * time.Millisecond, 50 * time.Millisecond, true},
		{"at floor", 50 * time.Millisecond, 50 * time.Millisecond, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := stateAt(DirRight, true, Cell{X: 3, Y: 3})
			s.Food = Cell{X: 4, Y: 3}
			s.Interval = tt.start

			next, out := Advance(s, r, rng)
			if next.Interval != tt.want {
				t.Errorf("Interval = %v, expected %v", next.Interval, tt.want)
			}
			if out.SpeedChanged != tt.changed {
				t.Errorf("SpeedChanged = %v, expected %v", out.SpeedChanged, tt.changed)
			}
		})
	}
}

func TestAdvanceSpeedMonotonic(t *testing.T) {
	r := testRules(t)
	rng := rand.New(rand.NewSource(9))

	s := stateAt(DirRight, true, Cell{X: 0, Y: 0})
	prev := s.Interval
	for i := range 40 {
		s.Food = s.Head().Step(DirRight)
		s.Food = r.Grid.Wrap(s.Food)
		s.Snake = s.Snake[:1] // keep it short so it never bites itself
		s, _ = Advance(s, r, rng)
		if s.Interval > prev {
			t.Fatalf("tick %d: interval grew from %v to %v", i, prev, s.Interval)
		}
		if s.Interval < r.Speed.Min() {
			t.Fatalf("tick %d: interval %v below floor", i, s.Interval)
		}
		prev = s.Interval
	}
	if s.Interval != r.Speed.Min() {
		t.Errorf("after 40 foods interval = %v, expected floor %v", s.Interval, r.Speed.Min())
	}
}

func TestAdvanceBoardFull(t *testing.T) {
	r := Rules{
		Grid:     Grid{Cols: 2, Rows: 1, Box: 20},
		StartDir: DirRight,
		Speed:    config.DefaultSnakeConfig().Speed,
	}
	s := stateAt(DirRight, false, Cell{X: 0, Y: 0})
	s.Food = Cell{X: 1, Y: 0}

	next, out := Advance(s, r, rand.New(rand.NewSource(1)))

	if !out.Ate || !out.Died || out.Cause != CauseBoardFull {
		t.Fatalf("Outcome = %+v, expected eat then board-full", out)
	}
	if !next.GameOver || len(next.Snake) != 2 {
		t.Errorf("expected a full-length finished game, got %+v", next)
	}
}

func TestAdvanceDoesNotMutateInput(t *testing.T) {
	r := testRules(t)
	rng := rand.New(rand.NewSource(1))

	body := []Cell{{5, 5}, {4, 5}, {3, 5}}
	s := stateAt(DirRight, true, body...)
	before := slices.Clone(body)

	Advance(s, r, rng)

	if !slices.Equal(body, before) {
		t.Errorf("Advance mutated its input: %v -> %v", before, body)
	}
}

func TestAdvanceGameOverIsNoOp(t *testing.T) {
	r := testRules(t)
	s := stateAt(DirRight, true, Cell{X: 5, Y: 5})
	s.GameOver = true
	s.Cause = CauseWall

	next, out := Advance(s, r, rand.New(rand.NewSource(1)))
	if next.Head() != s.Head() || out != (Outcome{}) {
		t.Errorf("finished game should not advance, got head %v outcome %+v", next.Head(), out)
	}
}

func TestSteer(t *testing.T) {
	s := stateAt(DirRight, true, Cell{X: 5, Y: 5})

	s = Steer(s, DirLeft)
	if s.Pending != DirRight {
		t.Errorf("reverse should be rejected, pending = %v", s.Pending)
	}

	s = Steer(s, DirUp)
	s = Steer(s, DirDown)
	if s.Pending != DirDown {
		t.Errorf("last press should win, pending = %v", s.Pending)
	}

	// Pending becomes current only on the next tick
	if s.Direction != DirRight {
		t.Errorf("Direction changed before a tick: %v", s.Direction)
	}
}

func TestToggleWrap(t *testing.T) {
	s := stateAt(DirRight, true, Cell{X: 5, Y: 5})
	if s = ToggleWrap(s); s.Wrap {
		t.Error("ToggleWrap should turn wrap off")
	}
	if s = ToggleWrap(s); !s.Wrap {
		t.Error("ToggleWrap should turn wrap back on")
	}
}

func TestDirection(t *testing.T) {
	for _, d := range []Direction{DirLeft, DirUp, DirRight, DirDown} {
		if d.Opposite().Opposite() != d {
			t.Errorf("%v: Opposite is not an involution", d)
		}
		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		if dx != -ox || dy != -oy {
			t.Errorf("%v: opposite delta mismatch", d)
		}
		parsed, err := ParseDirection(d.String())
		if err != nil || parsed != d {
			t.Errorf("ParseDirection(%q) = %v, %v", d.String(), parsed, err)
		}
	}
	if _, err := ParseDirection("north"); err == nil {
		t.Error("expected error for unknown direction")
	}
}
