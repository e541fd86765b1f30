package console

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/rocketscienceinc/connectn/internal/apperror"
	"github.com/rocketscienceinc/connectn/internal/connectn"
	"github.com/rocketscienceinc/connectn/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_RenderBoard(t *testing.T) {
	// Given: a 3x3 game with two moves played
	game, err := entity.NewGame("123", 3, 2)
	require.NoError(t, err)
	require.NoError(t, game.Grid.Set(0, 1, entity.Occupied(0)))
	require.NoError(t, game.Grid.Set(2, 2, entity.Occupied(1)))

	var out bytes.Buffer
	renderer := NewRenderer(&out, false)

	// When: the board is rendered
	require.NoError(t, renderer.RenderBoard(game))

	// Then: indexes are zero-padded and cells show the player id
	expected := "   00 01 02 \n" +
		"00    0     \n" +
		"01          \n" +
		"02       1  \n" +
		"Player 0, please input your position.\n"
	assert.Equal(t, expected, out.String())
}

func TestRenderer_RenderRejection(t *testing.T) {
	testCases := map[string]error{
		"Position taken!": fmt.Errorf("move rejected: %w", apperror.ErrPositionTaken),
		"Out of range!":   fmt.Errorf("move rejected: %w", apperror.ErrOutOfBounds),
		`Please enter a row and a column, e.g. "7 7".`: apperror.ErrMalformedInput,
	}

	for want, rejection := range testCases {
		var out bytes.Buffer

		require.NoError(t, NewRenderer(&out, false).RenderRejection(rejection))

		assert.Equal(t, want+"\n", out.String())
	}
}

func TestRenderer_RenderOutcome(t *testing.T) {
	t.Run("Win", func(t *testing.T) {
		// Given: a won 5x5 game
		game, err := entity.NewGame("123", 5, 2)
		require.NoError(t, err)
		for col := 0; col < 5; col++ {
			require.NoError(t, game.Grid.Set(4, col, entity.Occupied(1)))
		}
		game.Status = entity.StatusWon
		game.Winner = 1

		run := connectn.Run{Player: 1, Origin: entity.Coordinate{Row: 4, Col: 0}, Direction: connectn.Horizontal, Length: 5}

		var out bytes.Buffer

		// When: the outcome is rendered
		require.NoError(t, NewRenderer(&out, false).RenderOutcome(game, run))

		// Then: the winner and the run direction are announced
		assert.Contains(t, out.String(), "04 1  1  1  1  1  \n")
		assert.Contains(t, out.String(), "Player 1 wins with a horizontal run!\n")
	})

	t.Run("Tie", func(t *testing.T) {
		game, err := entity.NewGame("123", 1, 2)
		require.NoError(t, err)
		require.NoError(t, game.Grid.Set(0, 0, entity.Occupied(0)))
		game.Status = entity.StatusTied

		var out bytes.Buffer

		require.NoError(t, NewRenderer(&out, false).RenderOutcome(game, connectn.Run{}))

		assert.Equal(t, "   00 \n00 0  \nIt's a tie!\n", out.String())
	})

	t.Run("Colour highlights the winning run", func(t *testing.T) {
		game, err := entity.NewGame("123", 5, 2)
		require.NoError(t, err)
		for row := 0; row < 5; row++ {
			require.NoError(t, game.Grid.Set(row, 2, entity.Occupied(0)))
		}
		game.Status = entity.StatusWon
		game.Winner = 0

		run := connectn.Run{Player: 0, Origin: entity.Coordinate{Row: 0, Col: 2}, Direction: connectn.Vertical, Length: 5}

		var plain, colored bytes.Buffer
		require.NoError(t, NewRenderer(&plain, false).RenderOutcome(game, run))
		require.NoError(t, NewRenderer(&colored, true).RenderOutcome(game, run))

		assert.NotContains(t, plain.String(), "\x1b[")
		assert.Contains(t, colored.String(), "\x1b[")
	})
}
