package connectn

import (
	"fmt"

	"github.com/rocketscienceinc/connectn/internal/entity"
)

// State is a turn controller state.
type State int

const (
	AwaitingMove State = iota
	MoveRejected
	MoveAccepted
	Won
	Tied
)

func (that State) String() string {
	switch that {
	case AwaitingMove:
		return "awaiting-move"
	case MoveRejected:
		return "move-rejected"
	case MoveAccepted:
		return "move-accepted"
	case Won:
		return "won"
	case Tied:
		return "tied"
	default:
		return fmt.Sprintf("state(%d)", int(that))
	}
}

// IsTerminal reports whether no further move can be submitted.
func (that State) IsTerminal() bool {
	return that == Won || that == Tied
}

// Controller drives one game from AwaitingMove to Won or Tied.
// MoveRejected and MoveAccepted are transient: they are returned from Submit
// but the controller never rests in them.
type Controller struct {
	game *entity.Game
	run  Run
}

func NewController(game *entity.Game) *Controller {
	controller := &Controller{game: game}
	if game.IsWon() {
		controller.run, _ = FindWinningRun(game.Grid)
	}

	return controller
}

func (that *Controller) Game() *entity.Game {
	return that.game
}

// ActivePlayer is the player expected to move next.
func (that *Controller) ActivePlayer() int {
	return that.game.Turn
}

// WinningRun returns the run that ended the game, if it was won.
func (that *Controller) WinningRun() (Run, bool) {
	return that.run, that.game.IsWon()
}

func (that *Controller) State() State {
	switch that.game.Status {
	case entity.StatusWon:
		return Won
	case entity.StatusTied:
		return Tied
	default:
		return AwaitingMove
	}
}

// Submit validates coord for the active player and applies it. On rejection
// it returns MoveRejected with the reason and the game is left untouched.
// Otherwise the result is Won, Tied or AwaitingMove for the next player.
func (that *Controller) Submit(coord entity.Coordinate) (State, error) {
	if err := that.game.ConfirmOngoingState(); err != nil {
		return that.State(), err
	}

	if err := ValidateMove(that.game.Grid, coord); err != nil {
		return that.Reject(err)
	}

	player := that.game.Turn
	if err := that.game.Grid.Set(coord.Row, coord.Col, entity.Occupied(player)); err != nil {
		return that.Reject(err)
	}

	return that.settle(), nil
}

// Reject records a move that never reached the grid, such as unparsable
// input. The active player keeps the turn.
func (that *Controller) Reject(reason error) (State, error) {
	return MoveRejected, fmt.Errorf("move rejected: %w", reason)
}

// settle runs the MoveAccepted transition: winner first, then tie, then the
// next player.
func (that *Controller) settle() State {
	if run, ok := FindWinningRun(that.game.Grid); ok {
		that.run = run
		that.game.Status = entity.StatusWon
		that.game.Winner = run.Player

		return Won
	}

	if IsTie(that.game.Grid) {
		that.game.Status = entity.StatusTied

		return Tied
	}

	that.game.NextTurn()

	return AwaitingMove
}
