package connectn

import (
	"testing"

	"github.com/rocketscienceinc/connectn/internal/apperror"
	"github.com/rocketscienceinc/connectn/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsAvailable(t *testing.T) {
	t.Run("Empty in-bounds cell is available", func(t *testing.T) {
		grid := emptyGrid(t, 15)

		available, err := IsAvailable(grid, entity.Coordinate{Row: 14, Col: 0})

		require.NoError(t, err)
		assert.True(t, available)
	})

	t.Run("Occupied cell is not available", func(t *testing.T) {
		// Given: (3, 4) is taken by player 1
		grid := emptyGrid(t, 15)
		require.NoError(t, grid.Set(3, 4, entity.Occupied(1)))

		// When: checking availability
		available, err := IsAvailable(grid, entity.Coordinate{Row: 3, Col: 4})

		// Then: it is reported as not available
		require.NoError(t, err)
		assert.False(t, available)
	})

	t.Run("Out of bounds fails rather than answering", func(t *testing.T) {
		grid := emptyGrid(t, 15)

		for _, coord := range []entity.Coordinate{{Row: 15, Col: 0}, {Row: 0, Col: 15}, {Row: -1, Col: 2}} {
			_, err := IsAvailable(grid, coord)

			assert.ErrorIs(t, err, apperror.ErrOutOfBounds, coord.String())
		}
	})
}

func TestValidateMove(t *testing.T) {
	grid := emptyGrid(t, 5)
	require.NoError(t, grid.Set(0, 0, entity.Occupied(0)))

	assert.NoError(t, ValidateMove(grid, entity.Coordinate{Row: 0, Col: 1}))
	assert.ErrorIs(t, ValidateMove(grid, entity.Coordinate{Row: 0, Col: 0}), apperror.ErrPositionTaken)
	assert.ErrorIs(t, ValidateMove(grid, entity.Coordinate{Row: 5, Col: 0}), apperror.ErrOutOfBounds)
}
