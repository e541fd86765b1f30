package connectn

import (
	"fmt"

	"github.com/rocketscienceinc/connectn/internal/apperror"
	"github.com/rocketscienceinc/connectn/internal/entity"
)

// IsAvailable reports whether coord is inside the grid and its cell is empty.
// An out-of-range coordinate is an error (ErrOutOfBounds), not a false answer.
func IsAvailable(grid *entity.Grid, coord entity.Coordinate) (bool, error) {
	cell, err := grid.Get(coord.Row, coord.Col)
	if err != nil {
		return false, err
	}

	return cell.IsEmpty(), nil
}

// ValidateMove - checks if the move is valid.
func ValidateMove(grid *entity.Grid, coord entity.Coordinate) error {
	available, err := IsAvailable(grid, coord)
	if err != nil {
		return err
	}

	if !available {
		return fmt.Errorf("%w: %s", apperror.ErrPositionTaken, coord)
	}

	return nil
}
