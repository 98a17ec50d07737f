package linescan

import (
	"testing"

	"github.com/rocketscienceinc/connectfour/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestScanner_HasWon(t *testing.T) {
	boards := map[string]*entity.Grid{
		AxisHorizontal:        entity.HorizontalRun(playerX, 4),
		AxisVertical:          entity.VerticalRun(playerX, 4),
		AxisDiagonalDownRight: entity.DiagonalDownRightRun(playerX, 4),
		AxisDiagonalDownLeft:  entity.DiagonalDownLeftRun(playerX, 4),
	}

	for _, parallel := range []bool{false, true} {
		scanner := New(WithParallel(parallel))

		for axis, grid := range boards {
			// When: scanning a board won along one axis
			won := scanner.HasWon(playerX, grid)

			// Then: the mover wins and the other participant does not
			assert.True(t, won, "axis %s, parallel %v", axis, parallel)
			assert.False(t, scanner.HasWon(playerO, grid), "axis %s, parallel %v", axis, parallel)
		}

		assert.False(t, scanner.HasWon(playerX, entity.NewGrid()))
		for _, participant := range entity.FullBoardParticipants() {
			assert.False(t, scanner.HasWon(participant, entity.FullBoard()))
		}
	}
}

func TestScanner_WinningAxis(t *testing.T) {
	scanner := New()

	axis, won := scanner.WinningAxis(playerX, entity.DiagonalDownLeftRun(playerX, 4))
	assert.True(t, won)
	assert.Equal(t, AxisDiagonalDownLeft, axis)

	axis, won = scanner.WinningAxis(playerX, entity.HorizontalRun(playerX, 3))
	assert.False(t, won)
	assert.Empty(t, axis)
}

func TestScanner_Idempotent(t *testing.T) {
	// Given: a won board and a scanner
	grid := entity.VerticalRun(playerX, 4)
	before := *grid
	scanner := New()

	// When: scanning twice
	first := scanner.HasWon(playerX, grid)
	second := scanner.HasWon(playerX, grid)

	// Then: the answers agree and the board is untouched
	assert.Equal(t, first, second)
	assert.Equal(t, before, *grid)
}

func TestScanner_WithStrategies(t *testing.T) {
	// Given: a scanner limited to the horizontal axis
	scanner := New(WithStrategies(Horizontal{}))

	// Then: vertical wins go unnoticed
	assert.False(t, scanner.HasWon(playerX, entity.VerticalRun(playerX, 4)))
	assert.True(t, scanner.HasWon(playerX, entity.HorizontalRun(playerX, 4)))
}
