package snake

import (
	"math/rand"
	"slices"
)

// maxFoodDraws bounds rejection sampling before falling back to an
// enumeration of the free cells.
const maxFoodDraws = 64

// SpawnFood picks a cell uniformly among those not covered by snake.
// It returns false when the snake fills the board.
func SpawnFood(rng *rand.Rand, g Grid, snake []Cell) (Cell, bool) {
	if len(snake) >= g.Cells() {
		return offBoard, false
	}

	for range maxFoodDraws {
		c := Cell{X: rng.Intn(g.Cols), Y: rng.Intn(g.Rows)}
		if !slices.Contains(snake, c) {
			return c, true
		}
	}

	// Crowded board: collect all empty cells
	taken := make(map[Cell]bool, len(snake))
	for _, seg := range snake {
		taken[seg] = true
	}
	free := make([]Cell, 0, g.Cells()-len(taken))
	for y := range g.Rows {
		for x := range g.Cols {
			c := Cell{X: x, Y: y}
			if !taken[c] {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return offBoard, false
	}
	return free[rng.Intn(len(free))], true
}
