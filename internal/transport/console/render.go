package console

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/rocketscienceinc/connectn/internal/apperror"
	"github.com/rocketscienceinc/connectn/internal/connectn"
	"github.com/rocketscienceinc/connectn/internal/entity"
)

var playerAttributes = []color.Attribute{
	color.FgRed,
	color.FgBlue,
	color.FgGreen,
	color.FgYellow,
	color.FgMagenta,
	color.FgCyan,
}

// Renderer writes the board and game messages as text.
type Renderer struct {
	out      io.Writer
	colorize bool
}

func NewRenderer(out io.Writer, colorize bool) *Renderer {
	return &Renderer{
		out:      out,
		colorize: colorize,
	}
}

func (that *Renderer) RenderBoard(game *entity.Game) error {
	board, err := that.boardString(game.Grid, nil)
	if err != nil {
		return err
	}

	prompt := fmt.Sprintf("Player %s, please input your position.", that.playerMark(game.Turn, false))

	return that.write(board, prompt)
}

func (that *Renderer) RenderRejection(err error) error {
	var msg string

	switch {
	case errors.Is(err, apperror.ErrPositionTaken):
		msg = "Position taken!"
	case errors.Is(err, apperror.ErrOutOfBounds):
		msg = "Out of range!"
	case errors.Is(err, apperror.ErrMalformedInput):
		msg = `Please enter a row and a column, e.g. "7 7".`
	default:
		msg = err.Error()
	}

	return that.write(msg)
}

func (that *Renderer) RenderOutcome(game *entity.Game, run connectn.Run) error {
	var winning map[entity.Coordinate]bool

	if game.IsWon() {
		winning = make(map[entity.Coordinate]bool, run.Length)
		for _, coord := range run.Coordinates() {
			winning[coord] = true
		}
	}

	board, err := that.boardString(game.Grid, winning)
	if err != nil {
		return err
	}

	switch {
	case game.IsWon():
		return that.write(board, fmt.Sprintf("Player %s wins with a %s run!", that.playerMark(game.Winner, false), run.Direction.Name))
	case game.IsTied():
		return that.write(board, "It's a tie!")
	default:
		return that.write(board)
	}
}

// boardString formats the grid with zero-padded row and column indexes.
func (that *Renderer) boardString(grid *entity.Grid, highlight map[entity.Coordinate]bool) (string, error) {
	var sb strings.Builder

	size := grid.Size()

	sb.WriteString("   ")
	for col := 0; col < size; col++ {
		fmt.Fprintf(&sb, "%02d ", col)
	}
	sb.WriteByte('\n')

	for row := 0; row < size; row++ {
		fmt.Fprintf(&sb, "%02d ", row)
		for col := 0; col < size; col++ {
			cell, err := grid.Get(row, col)
			if err != nil {
				return "", fmt.Errorf("failed read cell: %w", err)
			}

			if player, ok := cell.Player(); ok {
				sb.WriteString(that.playerMark(player, highlight[entity.Coordinate{Row: row, Col: col}]))
			} else {
				sb.WriteByte(' ')
			}
			sb.WriteString("  ")
		}
		sb.WriteByte('\n')
	}

	return sb.String(), nil
}

func (that *Renderer) playerMark(player int, highlighted bool) string {
	c := color.New(playerAttributes[player%len(playerAttributes)], color.Bold)
	if highlighted {
		c.Add(color.ReverseVideo)
	}

	if that.colorize {
		c.EnableColor()
	} else {
		c.DisableColor()
	}

	return c.Sprint(player)
}

func (that *Renderer) write(lines ...string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(that.out, strings.TrimSuffix(line, "\n")); err != nil {
			return fmt.Errorf("failed write output: %w", err)
		}
	}

	return nil
}
