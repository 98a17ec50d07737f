package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/rocketscienceinc/connectfour/internal/engine"
	"github.com/rocketscienceinc/connectfour/internal/entity"
)

type checkpointRepo interface {
	CreateOrUpdate(ctx context.Context, checkpoint *entity.Checkpoint) error
	GetByID(ctx context.Context, id string) (*entity.Checkpoint, error)
	DeleteByID(ctx context.Context, id string) error
}

type confirmer interface {
	Confirm(ctx context.Context, question string) (bool, error)
}

// MatchRunner drives the turn engine from the first move until the players quit.
type MatchRunner struct {
	logger *slog.Logger
	out    io.Writer

	engine      *engine.TurnEngine
	confirmer   confirmer
	checkpoints checkpointRepo

	sessionID string
}

// NewMatchRunner builds a runner; checkpoints may be nil to play without saving.
func NewMatchRunner(
	logger *slog.Logger,
	out io.Writer,
	turnEngine *engine.TurnEngine,
	confirmer confirmer,
	checkpoints checkpointRepo,
	sessionID string,
) *MatchRunner {
	return &MatchRunner{
		logger:      logger.With("component", "match"),
		out:         out,
		engine:      turnEngine,
		confirmer:   confirmer,
		checkpoints: checkpoints,
		sessionID:   sessionID,
	}
}

func (that *MatchRunner) SessionID() string {
	return that.sessionID
}

// Resume loads a saved game into the engine and keeps saving under the same id.
func (that *MatchRunner) Resume(ctx context.Context, id string) error {
	if that.checkpoints == nil {
		return fmt.Errorf("failed to resume %s: checkpoints are disabled", id)
	}

	checkpoint, err := that.checkpoints.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get checkpoint: %w", err)
	}

	if !checkpoint.Matches(that.engine.Participants()) {
		return fmt.Errorf("%w: %s", apperror.ErrCheckpointMismatch, id)
	}

	if err = that.engine.Restore(checkpoint.Grid, checkpoint.NextPlayer); err != nil {
		return fmt.Errorf("failed to restore checkpoint: %w", err)
	}

	that.sessionID = id
	that.logger.Info("game resumed", "session", id, "next", that.engine.Current().Name)

	return nil
}

// Run plays turns until the players decline a new game. An invalid move is retried by the
// same player; a move source failure ends the run with an error. Cancelling ctx ends it
// without one.
func (that *MatchRunner) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	that.printf("Welcome to connect four!\n")
	if that.checkpoints != nil {
		that.printf("Session %s\n", that.sessionID)
	}
	that.render()

	for {
		player := that.engine.Current()

		outcome, err := that.engine.ProcessTurn(ctx, player)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("interrupted", "reason", ctx.Err())
				return nil
			}

			return fmt.Errorf("failed to process turn: %w", err)
		}

		switch outcome.Status {
		case engine.StatusInvalidMove:
			that.printf("Invalid move by: %s\n", player.Marker)

		case engine.StatusContinue:
			that.printf("%s moved (row, column): (%d, %d)\n", player.Name, outcome.Row, outcome.Col)
			that.engine.Advance()
			that.render()
			that.saveCheckpoint(ctx)

		case engine.StatusWon, engine.StatusDrawn:
			that.render()
			that.announce(outcome)
			that.dropCheckpoint(ctx)

			next, err := that.engine.Conclude(ctx, that.confirmer)
			if err != nil {
				if ctx.Err() != nil {
					log.Info("interrupted", "reason", ctx.Err())
					return nil
				}

				return fmt.Errorf("failed to conclude game: %w", err)
			}

			if next.Status == engine.StatusExitRequested {
				that.printf("Game ended!\n")
				return nil
			}

			that.printf("Resetting game...\n")
			that.render()

		default:
			return fmt.Errorf("unexpected turn status: %s", outcome.Status)
		}
	}
}

func (that *MatchRunner) announce(outcome engine.Outcome) {
	if winner, ok := outcome.Winner(); ok {
		that.logger.Info("game won", "player", winner.Name, "marker", winner.Marker)
		that.printf("Player %s (%s) won!\n", winner.Name, winner.Marker)

		return
	}

	that.logger.Info("game drawn")
	that.printf("It's a draw!\n")
}

// saveCheckpoint never stops play; storage trouble is only logged.
func (that *MatchRunner) saveCheckpoint(ctx context.Context) {
	if that.checkpoints == nil {
		return
	}

	checkpoint := entity.NewCheckpoint(that.sessionID, that.engine.Grid(), that.engine.CurrentIndex(), that.engine.Participants())
	if err := that.checkpoints.CreateOrUpdate(ctx, checkpoint); err != nil {
		that.logger.Error("failed to save checkpoint", "session", that.sessionID, "error", err)
	}
}

func (that *MatchRunner) dropCheckpoint(ctx context.Context) {
	if that.checkpoints == nil {
		return
	}

	err := that.checkpoints.DeleteByID(ctx, that.sessionID)
	if err != nil && !errors.Is(err, apperror.ErrCheckpointNotFound) {
		that.logger.Error("failed to delete checkpoint", "session", that.sessionID, "error", err)
	}
}

func (that *MatchRunner) render() {
	that.printf("%s", that.engine.Grid())
}

func (that *MatchRunner) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}
