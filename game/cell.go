package game

import "fmt"

// Cell is a single board coordinate. X grows rightward and Y grows downward,
// so (0,0) is the top-left corner of the board.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Offset returns the neighboring cell one step away in the given direction.
func (c Cell) Offset(d Direction) Cell {
	dx, dy := d.Vector()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Contains reports whether the cell lies inside a board of the given size.
func Contains(c Cell, width, height int) bool {
	return c.X >= 0 && c.X < width && c.Y >= 0 && c.Y < height
}

func bodyContains(body []Cell, c Cell) bool {
	for _, b := range body {
		if b == c {
			return true
		}
	}
	return false
}
