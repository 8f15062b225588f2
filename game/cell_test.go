package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCellOffset(t *testing.T) {
	c := Cell{X: 3, Y: 3}
	require.Equal(t, Cell{X: 3, Y: 2}, c.Offset(Up))
	require.Equal(t, Cell{X: 3, Y: 4}, c.Offset(Down))
	require.Equal(t, Cell{X: 2, Y: 3}, c.Offset(Left))
	require.Equal(t, Cell{X: 4, Y: 3}, c.Offset(Right))
}

func TestCellString(t *testing.T) {
	require.Equal(t, "(3,3)", Cell{X: 3, Y: 3}.String())
	require.Equal(t, "(-1,20)", Cell{X: -1, Y: 20}.String())
}

func TestContains(t *testing.T) {
	tests := []struct {
		cell Cell
		in   bool
	}{
		{Cell{X: 0, Y: 0}, true},
		{Cell{X: 23, Y: 19}, true},
		{Cell{X: 12, Y: 10}, true},
		{Cell{X: -1, Y: 0}, false},
		{Cell{X: 0, Y: -1}, false},
		{Cell{X: 24, Y: 0}, false},
		{Cell{X: 0, Y: 20}, false},
	}
	for _, test := range tests {
		require.Equal(t, test.in, Contains(test.cell, 24, 20), "cell %s", test.cell)
	}
}
