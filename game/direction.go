package game

import "github.com/pkg/errors"

// Direction is one of the four cardinal movement directions.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Vector returns the unit step for the direction in screen coordinates,
// where Y grows downward: Up is (0,-1) and Down is (0,1).
func (d Direction) Vector() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

// IsOpposite reports whether other is the exact 180 degree reversal of d.
// Perpendicular directions are never opposite.
func (d Direction) IsOpposite(other Direction) bool {
	switch {
	case d == Up && other == Down:
		return true
	case d == Down && other == Up:
		return true
	case d == Left && other == Right:
		return true
	case d == Right && other == Left:
		return true
	}
	return false
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// ParseDirection converts a wire direction ("up", "down", "left" or "right")
// into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return 0, errors.Errorf("game: unknown direction %q", s)
}
