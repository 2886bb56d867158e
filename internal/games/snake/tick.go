package snake

import "math/rand"

// Outcome reports what happened during one tick so the caller can drive
// side effects (sound, HUD, rescheduling).
type Outcome struct {
	Ate          bool
	Died         bool
	Cause        DeathCause
	SpeedChanged bool
}

// Advance runs one tick. It never mutates s; the returned State owns a
// fresh snake slice. A finished game is returned unchanged.
func Advance(s State, r Rules, rng *rand.Rand) (State, Outcome) {
	if s.GameOver {
		return s, Outcome{}
	}

	s.Direction = s.Pending
	head := s.Head().Step(s.Direction)

	if s.Wrap {
		head = r.Grid.Wrap(head)
	} else if !r.Grid.Contains(head) {
		return die(s, CauseWall)
	}

	// The tail still counts: it has not moved yet
	if s.Occupies(head) {
		return die(s, CauseSelf)
	}

	var out Outcome
	grown := head == s.Food

	next := make([]Cell, 0, len(s.Snake)+1)
	next = append(next, head)
	if grown {
		next = append(next, s.Snake...)
	} else {
		next = append(next, s.Snake[:len(s.Snake)-1]...)
	}
	s.Snake = next

	if !grown {
		return s, out
	}

	out.Ate = true
	s.Score++
	if iv := r.Speed.NextInterval(s.Interval); iv != s.Interval {
		s.Interval = iv
		out.SpeedChanged = true
	}

	food, ok := SpawnFood(rng, r.Grid, s.Snake)
	s.Food = food
	if !ok {
		s.GameOver = true
		s.Cause = CauseBoardFull
		out.Died = true
		out.Cause = CauseBoardFull
	}
	return s, out
}

func die(s State, cause DeathCause) (State, Outcome) {
	s.GameOver = true
	s.Cause = cause
	return s, Outcome{Died: true, Cause: cause}
}
