package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/connectn/internal/apperror"
	"github.com/rocketscienceinc/connectn/internal/connectn"
	"github.com/rocketscienceinc/connectn/internal/entity"
)

var ErrInputClosed = errors.New("move input closed")

// MoveSource supplies the next parsed move. Errors wrapping
// apperror.ErrMalformedInput or apperror.ErrOutOfBounds are rejected moves;
// io.EOF ends the session.
type MoveSource interface {
	NextMove(ctx context.Context) (entity.Coordinate, error)
}

// Renderer presents the game; it only reads the grid.
type Renderer interface {
	RenderBoard(game *entity.Game) error
	RenderRejection(err error) error
	RenderOutcome(game *entity.Game, run connectn.Run) error
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo
	renderer Renderer
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, renderer Renderer) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game-manager"),

		gameRepo: gameRepo,
		renderer: renderer,
	}
}

// CreateGame starts a new game and stores its first snapshot.
func (that *GameManager) CreateGame(ctx context.Context, size, players int) (*entity.Game, error) {
	game, err := entity.NewGame(uuid.NewString(), size, players)
	if err != nil {
		return nil, fmt.Errorf("failed create game: %w", err)
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	that.logger.Info("game created", "gameID", game.ID, "size", size, "players", players)

	return game, nil
}

// ResumeGame loads an unfinished game from its snapshot.
func (that *GameManager) ResumeGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed get game by id: %w", err)
	}

	if err = game.ConfirmOngoingState(); err != nil {
		return nil, fmt.Errorf("failed resume game %s: %w", id, err)
	}

	if err = game.Validate(); err != nil {
		return nil, fmt.Errorf("failed resume game %s: %w", id, err)
	}

	that.logger.Info("game resumed", "gameID", game.ID, "turn", game.Turn)

	return game, nil
}

// Play runs the turn loop on moves from source until the game is won or tied.
// Rejected moves are reported and the same player is asked again. The game
// state reached so far is returned together with any error that stopped the
// loop early.
func (that *GameManager) Play(ctx context.Context, game *entity.Game, source MoveSource) (connectn.State, error) {
	log := that.logger.With("method", "Play", "gameID", game.ID)

	controller := connectn.NewController(game)

	for {
		if state := controller.State(); state.IsTerminal() {
			return state, that.finish(ctx, controller)
		}

		if err := ctx.Err(); err != nil {
			return controller.State(), fmt.Errorf("game interrupted: %w", err)
		}

		if err := that.renderer.RenderBoard(game); err != nil {
			return controller.State(), fmt.Errorf("failed render board: %w", err)
		}

		coord, err := source.NextMove(ctx)
		if err != nil {
			if !isRejection(err) {
				return controller.State(), inputError(err)
			}

			_, err = controller.Reject(err)
			log.Debug("move rejected", "player", controller.ActivePlayer(), "error", err)

			if err = that.renderer.RenderRejection(err); err != nil {
				return controller.State(), fmt.Errorf("failed render rejection: %w", err)
			}

			continue
		}

		player := controller.ActivePlayer()

		state, err := controller.Submit(coord)
		if state == connectn.MoveRejected {
			log.Debug("move rejected", "player", player, "coord", coord.String(), "error", err)

			if err = that.renderer.RenderRejection(err); err != nil {
				return controller.State(), fmt.Errorf("failed render rejection: %w", err)
			}

			continue
		}

		if err != nil {
			return controller.State(), fmt.Errorf("failed make turn: %w", err)
		}

		log.Debug("move accepted", "player", player, "coord", coord.String(), "state", state.String())

		if !state.IsTerminal() {
			if err = that.updateGame(ctx, game); err != nil {
				return state, err
			}
		}
	}
}

// finish shows the outcome and drops the snapshot of a finished game.
func (that *GameManager) finish(ctx context.Context, controller *connectn.Controller) error {
	game := controller.Game()
	log := that.logger.With("method", "finish", "gameID", game.ID)

	run, _ := controller.WinningRun()
	if err := that.renderer.RenderOutcome(game, run); err != nil {
		return fmt.Errorf("failed render outcome: %w", err)
	}

	that.deleteGame(ctx, game)

	log.Info("game finished", "status", game.Status, "winner", game.Winner)

	return nil
}

func (that *GameManager) updateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}

func (that *GameManager) deleteGame(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "deleteGame")

	if err := that.gameRepo.DeleteByID(ctx, game.ID); err != nil && !errors.Is(err, apperror.ErrGameNotFound) {
		log.Error("failed to delete game", "gameID", game.ID, "error", err)
	}
}

func isRejection(err error) bool {
	return errors.Is(err, apperror.ErrMalformedInput) || errors.Is(err, apperror.ErrOutOfBounds)
}

func inputError(err error) error {
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", ErrInputClosed, err)
	}

	return fmt.Errorf("failed read move: %w", err)
}
