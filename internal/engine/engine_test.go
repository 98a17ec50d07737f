package engine

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/rocketscienceinc/connectfour/internal/entity"
	"github.com/rocketscienceinc/connectfour/internal/linescan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errKeyboardOnFire = errors.New("keyboard on fire")

type scriptedMoves struct {
	columns []int
	err     error
}

func (that *scriptedMoves) ProvideMove(_ context.Context, _ entity.Participant, _ *entity.Grid) (int, error) {
	if that.err != nil {
		return 0, that.err
	}

	if len(that.columns) == 0 {
		return 0, io.EOF
	}

	col := that.columns[0]
	that.columns = that.columns[1:]

	return col, nil
}

type fixedAnswer struct {
	answer bool
	err    error
	asked  int
}

func (that *fixedAnswer) Confirm(_ context.Context, _ string) (bool, error) {
	that.asked++
	return that.answer, that.err
}

func newTestEngine(t *testing.T, grid *entity.Grid, xMoves, oMoves []int) *TurnEngine {
	t.Helper()

	players := []Player{
		{Participant: entity.NewParticipant(1, "henk", "x", entity.KindHuman), Moves: &scriptedMoves{columns: xMoves}},
		{Participant: entity.NewParticipant(2, "bot", "o", entity.KindBot), Moves: &scriptedMoves{columns: oMoves}},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	turnEngine, err := New(logger, grid, linescan.New(), players)
	require.NoError(t, err)

	return turnEngine
}

func TestNew(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	moves := &scriptedMoves{}

	t.Run("Requires two players", func(t *testing.T) {
		players := []Player{{Participant: entity.NewParticipant(1, "a", "x", entity.KindHuman), Moves: moves}}

		_, err := New(logger, entity.NewGrid(), linescan.New(), players)

		assert.ErrorIs(t, err, ErrNotEnoughPlayers)
	})

	t.Run("Rejects duplicate markers", func(t *testing.T) {
		players := []Player{
			{Participant: entity.NewParticipant(1, "a", "x", entity.KindHuman), Moves: moves},
			{Participant: entity.NewParticipant(2, "b", "x", entity.KindBot), Moves: moves},
		}

		_, err := New(logger, entity.NewGrid(), linescan.New(), players)

		assert.ErrorIs(t, err, ErrDuplicateMarker)
	})

	t.Run("Rejects a player without a move source", func(t *testing.T) {
		players := []Player{
			{Participant: entity.NewParticipant(1, "a", "x", entity.KindHuman), Moves: moves},
			{Participant: entity.NewParticipant(2, "b", "o", entity.KindBot)},
		}

		_, err := New(logger, entity.NewGrid(), linescan.New(), players)

		assert.ErrorIs(t, err, ErrNoMoveSource)
	})
}

func TestTurnEngine_ProcessTurn(t *testing.T) {
	ctx := context.Background()

	t.Run("Places the piece and continues", func(t *testing.T) {
		// Given: a new engine
		turnEngine := newTestEngine(t, entity.NewGrid(), []int{3}, nil)
		player := turnEngine.Current()

		// When: player x drops into column 3
		outcome, err := turnEngine.ProcessTurn(ctx, player)
		require.NoError(t, err)

		// Then: the piece lands on the bottom row and the game goes on
		assert.Equal(t, Outcome{Status: StatusContinue, Player: player.Participant, Row: entity.Rows - 1, Col: 3}, outcome)
		assert.True(t, turnEngine.Grid().At(entity.Rows-1, 3).OwnedBy(player.Participant))
	})

	t.Run("Invalid column leaves the grid alone", func(t *testing.T) {
		// Given: a grid with a piece and a player choosing a column outside the grid
		grid := entity.NewGrid()
		require.NoError(t, grid.Place(entity.Rows-1, 0, entity.NewParticipant(2, "bot", "o", entity.KindBot)))
		before := *grid
		turnEngine := newTestEngine(t, grid, []int{entity.Cols}, nil)

		// When: processing the turn
		outcome, err := turnEngine.ProcessTurn(ctx, turnEngine.Current())
		require.NoError(t, err)

		// Then: the move is invalid, the grid unchanged and the turn not advanced
		assert.Equal(t, StatusInvalidMove, outcome.Status)
		assert.Equal(t, before, *grid)
		assert.Equal(t, 0, turnEngine.CurrentIndex())
	})

	t.Run("Full board rejects the move", func(t *testing.T) {
		// Given: a full board
		turnEngine := newTestEngine(t, entity.FullBoard(), []int{0}, nil)

		// When: processing the turn
		outcome, err := turnEngine.ProcessTurn(ctx, turnEngine.Current())
		require.NoError(t, err)

		// Then: it is an invalid move
		assert.Equal(t, StatusInvalidMove, outcome.Status)
	})

	t.Run("Fourth piece in a row wins", func(t *testing.T) {
		// Given: x has three on the bottom row
		grid := entity.NewGrid()
		x := entity.NewParticipant(1, "henk", "x", entity.KindHuman)
		for col := 0; col < 3; col++ {
			require.NoError(t, grid.Place(entity.Rows-1, col, x))
		}
		turnEngine := newTestEngine(t, grid, []int{3}, nil)

		// When: x drops into column 3
		outcome, err := turnEngine.ProcessTurn(ctx, turnEngine.Current())
		require.NoError(t, err)

		// Then: x won
		winner, ok := outcome.Winner()
		require.True(t, ok)
		assert.Equal(t, StatusWon, outcome.Status)
		assert.Equal(t, x, winner)
		assert.True(t, outcome.IsDecided())
	})

	t.Run("Last empty cell draws", func(t *testing.T) {
		// Given: a full board with the top left cell emptied
		grid := drawnBoardMinusTopLeft(t)
		turnEngine := newTestEngine(t, grid, []int{0}, nil)

		// When: x fills the last cell
		outcome, err := turnEngine.ProcessTurn(ctx, turnEngine.Current())
		require.NoError(t, err)

		// Then: the game is drawn
		assert.Equal(t, StatusDrawn, outcome.Status)
		_, ok := outcome.Winner()
		assert.False(t, ok)
	})

	t.Run("Move source failure is surfaced", func(t *testing.T) {
		// Given: a player whose input fails
		turnEngine := newTestEngine(t, entity.NewGrid(), nil, nil)
		player := turnEngine.Current()
		player.Moves = &scriptedMoves{err: errKeyboardOnFire}

		// When: processing the turn
		_, err := turnEngine.ProcessTurn(ctx, player)

		// Then: the error is tagged as a move source failure and the grid is empty
		require.ErrorIs(t, err, apperror.ErrMoveSource)
		assert.ErrorIs(t, err, errKeyboardOnFire)
		assert.Equal(t, *entity.NewGrid(), *turnEngine.Grid())
	})
}

func TestTurnEngine_Advance(t *testing.T) {
	turnEngine := newTestEngine(t, entity.NewGrid(), nil, nil)

	assert.Equal(t, "x", turnEngine.Current().Marker)
	turnEngine.Advance()
	assert.Equal(t, "o", turnEngine.Current().Marker)
	turnEngine.Advance()
	assert.Equal(t, "x", turnEngine.Current().Marker)
}

func TestTurnEngine_Conclude(t *testing.T) {
	ctx := context.Background()

	t.Run("Yes clears the grid and rewinds the rotation", func(t *testing.T) {
		// Given: a played board with o to move
		turnEngine := newTestEngine(t, entity.FullBoard(), nil, nil)
		turnEngine.Advance()
		confirmer := &fixedAnswer{answer: true}

		// When: the players want another game
		outcome, err := turnEngine.Conclude(ctx, confirmer)
		require.NoError(t, err)

		// Then: a new game starts with x on an empty board
		assert.Equal(t, StatusNewGameRequested, outcome.Status)
		assert.Equal(t, *entity.NewGrid(), *turnEngine.Grid())
		assert.Equal(t, 0, turnEngine.CurrentIndex())
		assert.Equal(t, 1, confirmer.asked)
	})

	t.Run("No requests exit", func(t *testing.T) {
		turnEngine := newTestEngine(t, entity.FullBoard(), nil, nil)

		outcome, err := turnEngine.Conclude(ctx, &fixedAnswer{answer: false})
		require.NoError(t, err)

		assert.Equal(t, StatusExitRequested, outcome.Status)
		assert.True(t, turnEngine.Grid().IsFull())
	})

	t.Run("Prompt failure is returned", func(t *testing.T) {
		turnEngine := newTestEngine(t, entity.NewGrid(), nil, nil)

		_, err := turnEngine.Conclude(ctx, &fixedAnswer{err: io.EOF})

		assert.ErrorIs(t, err, io.EOF)
	})
}

func TestTurnEngine_Restore(t *testing.T) {
	turnEngine := newTestEngine(t, entity.NewGrid(), nil, nil)
	saved := entity.HorizontalRun(entity.NewParticipant(2, "bot", "o", entity.KindBot), 2)

	require.NoError(t, turnEngine.Restore(saved, 1))
	assert.Equal(t, *saved, *turnEngine.Grid())
	assert.Equal(t, "o", turnEngine.Current().Marker)

	assert.ErrorIs(t, turnEngine.Restore(saved, 2), ErrInvalidIndex)
}

// drawnBoardMinusTopLeft rebuilds the four-marker draw tiling with x and o so that
// dropping x into column 0 completes it without a line.
func drawnBoardMinusTopLeft(t *testing.T) *entity.Grid {
	t.Helper()

	x := entity.NewParticipant(1, "henk", "x", entity.KindHuman)
	o := entity.NewParticipant(2, "bot", "o", entity.KindBot)

	// pairs of columns swap colour every two rows: no four in any direction
	pattern := [entity.Rows]string{
		"xxooxxo",
		"ooxxoox",
		"xxooxxo",
		"ooxxoox",
		"xxooxxo",
		"ooxxoox",
	}

	grid := entity.NewGrid()
	for row := entity.Rows - 1; row >= 0; row-- {
		for col := 0; col < entity.Cols; col++ {
			if row == 0 && col == 0 {
				continue
			}

			participant := o
			if pattern[row][col] == 'x' {
				participant = x
			}
			require.NoError(t, grid.Place(row, col, participant))
		}
	}

	return grid
}
