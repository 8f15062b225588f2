package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDirectionVectors(t *testing.T) {
	tests := []struct {
		direction Direction
		dx, dy    int
	}{
		{Up, 0, -1},
		{Down, 0, 1},
		{Left, -1, 0},
		{Right, 1, 0},
	}
	for _, test := range tests {
		dx, dy := test.direction.Vector()
		require.Equal(t, test.dx, dx, "direction %s", test.direction)
		require.Equal(t, test.dy, dy, "direction %s", test.direction)
	}
}

func TestDirectionOpposites(t *testing.T) {
	opposite := map[Direction]Direction{
		Up:    Down,
		Down:  Up,
		Left:  Right,
		Right: Left,
	}
	all := []Direction{Up, Down, Left, Right}
	for _, d := range all {
		for _, other := range all {
			want := opposite[d] == other
			require.Equal(t, want, d.IsOpposite(other), "%s vs %s", d, other)
		}
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range []Direction{Up, Down, Left, Right} {
		parsed, err := ParseDirection(d.String())
		require.NoError(t, err)
		require.Equal(t, d, parsed)
	}

	_, err := ParseDirection("diagonal")
	require.Error(t, err)
	_, err = ParseDirection("")
	require.Error(t, err)
}

func TestDirectionString(t *testing.T) {
	require.Equal(t, "up", Up.String())
	require.Equal(t, "down", Down.String())
	require.Equal(t, "left", Left.String())
	require.Equal(t, "right", Right.String())
	require.Equal(t, "unknown", Direction(42).String())
}
