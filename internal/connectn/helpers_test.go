package connectn

import (
	"testing"

	"github.com/rocketscienceinc/connectn/internal/entity"
	"github.com/stretchr/testify/require"
)

// gridFromRows builds a square grid where '.' is empty and a digit is a player.
func gridFromRows(t *testing.T, rows ...string) *entity.Grid {
	t.Helper()

	grid, err := entity.NewGrid(len(rows))
	require.NoError(t, err)

	for row, line := range rows {
		require.Len(t, line, len(rows), "row %d", row)
		for col, ch := range line {
			if ch == '.' {
				continue
			}
			require.NoError(t, grid.Set(row, col, entity.Occupied(int(ch-'0'))))
		}
	}

	return grid
}

func emptyGrid(t *testing.T, n int) *entity.Grid {
	t.Helper()

	grid, err := entity.NewGrid(n)
	require.NoError(t, err)

	return grid
}
