package entity

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/connectn/internal/apperror"
)

// Grid is a fixed-size square matrix of cells, stored row-major.
type Grid struct {
	size  int
	cells []Cell
}

// NewGrid creates an n×n grid with every cell empty.
func NewGrid(n int) (*Grid, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidSize, n)
	}

	return &Grid{
		size:  n,
		cells: make([]Cell, n*n),
	}, nil
}

func (that *Grid) Size() int {
	return that.size
}

// Contains reports whether (row, col) addresses a cell of the grid.
func (that *Grid) Contains(row, col int) bool {
	return row >= 0 && row < that.size && col >= 0 && col < that.size
}

func (that *Grid) Get(row, col int) (Cell, error) {
	if !that.Contains(row, col) {
		return EmptyCell, fmt.Errorf("%w: (%d, %d) on %dx%d grid", apperror.ErrOutOfBounds, row, col, that.size, that.size)
	}

	return that.cells[row*that.size+col], nil
}

// Set overwrites the cell unconditionally; occupancy is checked by the caller.
func (that *Grid) Set(row, col int, cell Cell) error {
	if !that.Contains(row, col) {
		return fmt.Errorf("%w: (%d, %d) on %dx%d grid", apperror.ErrOutOfBounds, row, col, that.size, that.size)
	}

	that.cells[row*that.size+col] = cell

	return nil
}

// IsFull reports whether no empty cell remains.
func (that *Grid) IsFull() bool {
	for _, cell := range that.cells {
		if cell.IsEmpty() {
			return false
		}
	}

	return true
}

type gridJSON struct {
	Size  int      `json:"size"`
	Cells [][]Cell `json:"cells"`
}

func (that *Grid) MarshalJSON() ([]byte, error) {
	rows := make([][]Cell, that.size)
	for row := range rows {
		rows[row] = that.cells[row*that.size : (row+1)*that.size]
	}

	return json.Marshal(gridJSON{Size: that.size, Cells: rows})
}

func (that *Grid) UnmarshalJSON(data []byte) error {
	var raw gridJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to unmarshal grid: %w", err)
	}

	grid, err := NewGrid(raw.Size)
	if err != nil {
		return fmt.Errorf("failed to unmarshal grid: %w", err)
	}

	if len(raw.Cells) != raw.Size {
		return fmt.Errorf("failed to unmarshal grid: %d rows for size %d", len(raw.Cells), raw.Size)
	}

	for row, cells := range raw.Cells {
		if len(cells) != raw.Size {
			return fmt.Errorf("failed to unmarshal grid: row %d has %d cells", row, len(cells))
		}
		copy(grid.cells[row*raw.Size:], cells)
	}

	*that = *grid

	return nil
}
