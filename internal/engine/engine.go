package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/rocketscienceinc/connectfour/internal/entity"
)

var (
	ErrNotEnoughPlayers = errors.New("at least two players are required")
	ErrDuplicateMarker  = errors.New("markers must be unique")
	ErrNoMoveSource     = errors.New("player has no move source")
	ErrInvalidIndex     = errors.New("player index out of range")
)

// MoveSource picks a column for a participant. Interactive sources block on input.
type MoveSource interface {
	ProvideMove(ctx context.Context, participant entity.Participant, grid *entity.Grid) (int, error)
}

// Confirmer answers the "new game?" question once a game is decided.
type Confirmer interface {
	Confirm(ctx context.Context, question string) (bool, error)
}

type winScanner interface {
	HasWon(participant entity.Participant, grid *entity.Grid) bool
}

// Player is a participant together with whatever picks its moves.
type Player struct {
	entity.Participant
	Moves MoveSource
}

// TurnEngine owns the grid and the rotation. It is not safe for concurrent turns.
type TurnEngine struct {
	logger  *slog.Logger
	grid    *entity.Grid
	scanner winScanner
	players []Player
	current int
}

func New(logger *slog.Logger, grid *entity.Grid, scanner winScanner, players []Player) (*TurnEngine, error) {
	if len(players) < 2 {
		return nil, ErrNotEnoughPlayers
	}

	seen := make(map[string]struct{}, len(players))
	for _, player := range players {
		if player.Moves == nil {
			return nil, fmt.Errorf("%w: %s", ErrNoMoveSource, player.Name)
		}

		if _, ok := seen[player.Marker]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateMarker, player.Marker)
		}
		seen[player.Marker] = struct{}{}
	}

	return &TurnEngine{
		logger:  logger.With("component", "engine"),
		grid:    grid,
		scanner: scanner,
		players: players,
	}, nil
}

func (that *TurnEngine) Grid() *entity.Grid {
	return that.grid
}

func (that *TurnEngine) Current() Player {
	return that.players[that.current]
}

func (that *TurnEngine) CurrentIndex() int {
	return that.current
}

func (that *TurnEngine) Participants() []entity.Participant {
	participants := make([]entity.Participant, 0, len(that.players))
	for _, player := range that.players {
		participants = append(participants, player.Participant)
	}

	return participants
}

// Advance hands the turn to the next player, wrapping around.
func (that *TurnEngine) Advance() {
	that.current = (that.current + 1) % len(that.players)
}

// ProcessTurn asks the player for a column, drops the piece and classifies the result.
// Only the mover is checked for a win: every earlier turn already ruled out the others.
func (that *TurnEngine) ProcessTurn(ctx context.Context, player Player) (Outcome, error) {
	log := that.logger.With("method", "ProcessTurn", "player", player.Name, "marker", player.Marker)

	col, err := player.Moves.ProvideMove(ctx, player.Participant, that.grid)
	if err != nil {
		return Outcome{}, fmt.Errorf("%w: %w", apperror.ErrMoveSource, err)
	}

	row, ok := that.grid.ApplyGravity(col)
	if !ok {
		log.Info("invalid move", "column", col)
		return Outcome{Status: StatusInvalidMove, Player: player.Participant, Col: col}, nil
	}

	if err = that.grid.Place(row, col, player.Participant); err != nil {
		return Outcome{}, fmt.Errorf("failed to place piece: %w", err)
	}

	log.Debug("piece placed", "row", row, "column", col)

	outcome := Outcome{Player: player.Participant, Row: row, Col: col}

	switch {
	case that.scanner.HasWon(player.Participant, that.grid):
		outcome.Status = StatusWon
	case that.grid.IsFull():
		outcome.Status = StatusDrawn
	default:
		outcome.Status = StatusContinue
	}

	log.Debug("turn finished", "status", outcome.Status)

	return outcome, nil
}

// Conclude asks whether to play again after a decided game and resets on yes.
func (that *TurnEngine) Conclude(ctx context.Context, confirmer Confirmer) (Outcome, error) {
	again, err := confirmer.Confirm(ctx, "Do you wish to start a new game?")
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to confirm new game: %w", err)
	}

	if !again {
		return Outcome{Status: StatusExitRequested}, nil
	}

	that.Reset()

	return Outcome{Status: StatusNewGameRequested}, nil
}

// Reset clears the grid and gives the first turn back to the first player.
func (that *TurnEngine) Reset() {
	that.logger.Info("resetting game")

	that.grid.Clear()
	that.current = 0
}

// Restore continues a saved game.
func (that *TurnEngine) Restore(grid *entity.Grid, next int) error {
	if next < 0 || next >= len(that.players) {
		return fmt.Errorf("%w: %d", ErrInvalidIndex, next)
	}

	if grid == nil {
		return errors.New("checkpoint has no grid")
	}

	*that.grid = *grid
	that.current = next

	return nil
}
