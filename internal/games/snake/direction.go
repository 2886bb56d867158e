package snake

import "fmt"

// Direction represents the snake's movement direction.
type Direction int

const (
	DirLeft Direction = iota
	DirUp
	DirRight
	DirDown
)

// Delta returns the unit offset of one step in this direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirLeft:
		return -1, 0
	case DirUp:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	default:
		return 0, 0
	}
}

// Opposite returns the exact reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirUp:
		return DirDown
	case DirRight:
		return DirLeft
	case DirDown:
		return DirUp
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// ParseDirection converts a config name into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "left":
		return DirLeft, nil
	case "up":
		return DirUp, nil
	case "right":
		return DirRight, nil
	case "down":
		return DirDown, nil
	default:
		return 0, fmt.Errorf("snake: unknown direction %q", s)
	}
}
