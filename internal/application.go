package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/connectfour/internal/config"
	"github.com/rocketscienceinc/connectfour/internal/engine"
	"github.com/rocketscienceinc/connectfour/internal/entity"
	"github.com/rocketscienceinc/connectfour/internal/linescan"
	"github.com/rocketscienceinc/connectfour/internal/pkg"
	"github.com/rocketscienceinc/connectfour/internal/repository"
	"github.com/rocketscienceinc/connectfour/internal/repository/storage"
	"github.com/rocketscienceinc/connectfour/internal/service"
	"github.com/rocketscienceinc/connectfour/internal/usecase"
)

// RunApp - runs the game on the given terminal streams until the players quit.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	console := service.NewConsoleService(logger, in, out)
	bot := service.NewBotService(conf.Seed)

	turnEngine, err := engine.New(
		logger,
		entity.NewGrid(),
		linescan.New(linescan.WithParallel(conf.ParallelScan)),
		buildPlayers(conf.Players, console, bot),
	)
	if err != nil {
		return fmt.Errorf("could not create turn engine: %w", err)
	}

	var checkpoints repository.CheckpointRepository
	if conf.Checkpoint.Enabled {
		redisClient, err := storage.New(ctx, conf.Checkpoint.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to checkpoint storage: %w", err)
		}

		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("could not close redis client", "error", err)
			}
		}()

		checkpoints = repository.NewCheckpointRepository(redisClient, conf.Checkpoint.TTL)
	}

	runner := usecase.NewMatchRunner(logger, out, turnEngine, console, checkpoints, pkg.GenerateSessionID())

	if conf.Checkpoint.ResumeID != "" {
		if err = runner.Resume(ctx, conf.Checkpoint.ResumeID); err != nil {
			return fmt.Errorf("could not resume session %s: %w", conf.Checkpoint.ResumeID, err)
		}
	}

	if err = runner.Run(ctx); err != nil {
		return fmt.Errorf("match failed: %w", err)
	}

	log.Info("application finished")

	return nil
}

func buildPlayers(players []config.Player, console, bot engine.MoveSource) []engine.Player {
	result := make([]engine.Player, 0, len(players))
	for i, player := range players {
		participant := entity.NewParticipant(i+1, player.Name, player.Marker, player.Kind)

		moves := console
		if participant.IsBot() {
			moves = bot
		}

		result = append(result, engine.Player{Participant: participant, Moves: moves})
	}

	return result
}
