package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/connectn/internal/apperror"
)

const (
	StatusOngoing = "ongoing"
	StatusWon     = "won"
	StatusTied    = "tied"

	NoPlayer = -1
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game is one session: the grid, the number of participants and whose turn it is.
type Game struct {
	ID      string `json:"id"`
	Grid    *Grid  `json:"grid"`
	Players int    `json:"players"`
	Turn    int    `json:"turn"`
	Status  string `json:"status"`
	Winner  int    `json:"winner"`
}

func NewGame(id string, size, players int) (*Game, error) {
	if players < 1 {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidPlayers, players)
	}

	grid, err := NewGrid(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create grid: %w", err)
	}

	return &Game{
		ID:      id,
		Grid:    grid,
		Players: players,
		Turn:    0,
		Status:  StatusOngoing,
		Winner:  NoPlayer,
	}, nil
}

// NextTurn advances the active player cyclically over [0, Players).
func (that *Game) NextTurn() {
	that.Turn = (that.Turn + 1) % that.Players
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWon() bool {
	return that.Status == StatusWon
}

func (that *Game) IsTied() bool {
	return that.Status == StatusTied
}

func (that *Game) IsFinished() bool {
	return that.IsWon() || that.IsTied()
}

// Validate checks that a game loaded from a snapshot can be played: it has a
// grid, at least one player, an active player in [0, Players) and no cell held
// by an unknown player.
func (that *Game) Validate() error {
	if that.Grid == nil {
		return fmt.Errorf("%w: game has no grid", apperror.ErrInvalidSize)
	}

	if that.Players < 1 {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidPlayers, that.Players)
	}

	if that.Turn < 0 || that.Turn >= that.Players {
		return fmt.Errorf("%w: turn %d is not in [0, %d)", apperror.ErrInvalidPlayers, that.Turn, that.Players)
	}

	size := that.Grid.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			cell, err := that.Grid.Get(row, col)
			if err != nil {
				return err
			}

			if player, ok := cell.Player(); ok && player >= that.Players {
				return fmt.Errorf("%w: cell (%d, %d) held by player %d", apperror.ErrInvalidPlayers, row, col, player)
			}
		}
	}

	return nil
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsOngoing():
		return nil
	case that.IsFinished():
		return apperror.ErrGameFinished
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}
