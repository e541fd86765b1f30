package entity

import (
	"encoding/json"
	"fmt"
)

// Cell is the state of one grid position: either empty or occupied by a player.
// The zero value is an empty cell.
type Cell int

const EmptyCell Cell = 0

// Occupied returns a cell held by the given player. Player ids are
// non-negative; a negative id panics.
func Occupied(player int) Cell {
	if player < 0 {
		panic(fmt.Sprintf("entity: negative player %d", player))
	}

	return Cell(player + 1)
}

func (that Cell) IsEmpty() bool {
	return that == EmptyCell
}

// Player returns the player occupying the cell, false for an empty cell.
func (that Cell) Player() (int, bool) {
	if that.IsEmpty() {
		return 0, false
	}
	return int(that) - 1, true
}

func (that Cell) String() string {
	if player, ok := that.Player(); ok {
		return fmt.Sprintf("%d", player)
	}
	return " "
}

// MarshalJSON encodes an empty cell as null and an occupied one as its player id.
func (that Cell) MarshalJSON() ([]byte, error) {
	player, ok := that.Player()
	if !ok {
		return []byte("null"), nil
	}
	return json.Marshal(player)
}

func (that *Cell) UnmarshalJSON(data []byte) error {
	var player *int
	if err := json.Unmarshal(data, &player); err != nil {
		return fmt.Errorf("failed to unmarshal cell: %w", err)
	}

	if player == nil {
		*that = EmptyCell
		return nil
	}

	if *player < 0 {
		return fmt.Errorf("failed to unmarshal cell: negative player %d", *player)
	}

	*that = Occupied(*player)
	return nil
}

// Coordinate addresses a grid cell as (row, col).
type Coordinate struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}
