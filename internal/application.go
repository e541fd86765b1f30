package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/connectn/internal/config"
	"github.com/rocketscienceinc/connectn/internal/entity"
	"github.com/rocketscienceinc/connectn/internal/repository"
	"github.com/rocketscienceinc/connectn/internal/repository/storage"
	"github.com/rocketscienceinc/connectn/internal/transport/console"
	"github.com/rocketscienceinc/connectn/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// Options are the per-run settings taken from the command line.
type Options struct {
	ResumeID string
	In       io.Reader
	Out      io.Writer
}

// RunApp - runs one game session on the console.
func RunApp(logger *slog.Logger, conf *config.Config, opts Options) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	gameRepo, closeRepo, err := newGameRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err := closeRepo(); err != nil {
			log.Error("could not close storage", "error", err)
		}
	}()

	renderer := console.NewRenderer(opts.Out, !conf.NoColor)
	gameManager := usecase.NewGameManager(logger, gameRepo, renderer)

	var game *entity.Game
	if opts.ResumeID != "" {
		game, err = gameManager.ResumeGame(ctx, opts.ResumeID)
	} else {
		game, err = gameManager.CreateGame(ctx, conf.BoardSize, conf.Players)
	}
	if err != nil {
		return fmt.Errorf("could not start game: %w", err)
	}

	if _, err = fmt.Fprintf(opts.Out, "Game %s\n", game.ID); err != nil {
		return fmt.Errorf("could not write output: %w", err)
	}

	reader := console.NewReader(opts.In, game.Grid.Size())

	state, err := gameManager.Play(ctx, game, reader)
	if errors.Is(err, usecase.ErrInputClosed) || errors.Is(err, context.Canceled) {
		log.Info("Session ended before the game finished", "gameID", game.ID, "state", state.String())
		return nil
	}
	if err != nil {
		return fmt.Errorf("game failed: %w", err)
	}

	return nil
}

func newGameRepository(ctx context.Context, conf *config.Config) (repository.GameRepository, func() error, error) {
	if conf.Storage != config.StorageRedis {
		return repository.NewMemoryGameRepository(), func() error { return nil }, nil
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedis(ctx, redisAddrString)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	return repository.NewGameRepository(redisStorage, conf.Redis.SnapshotTTL), redisStorage.Close, nil
}
