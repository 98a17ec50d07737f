package linescan

import "github.com/rocketscienceinc/connectfour/internal/entity"

const WinThreshold = 4

const (
	AxisHorizontal        = "horizontal"
	AxisVertical          = "vertical"
	AxisDiagonalDownRight = "diagonal-down-right"
	AxisDiagonalDownLeft  = "diagonal-down-left"
)

// Strategy checks a single axis for a run of WinThreshold cells owned by a participant.
type Strategy interface {
	Axis() string
	HasWon(participant entity.Participant, grid *entity.Grid) bool
}

// AllStrategies returns one strategy per axis.
func AllStrategies() []Strategy {
	return []Strategy{
		Horizontal{},
		Vertical{},
		DiagonalDownRight{},
		DiagonalDownLeft{},
	}
}

type Horizontal struct{}

func (Horizontal) Axis() string { return AxisHorizontal }

func (Horizontal) HasWon(participant entity.Participant, grid *entity.Grid) bool {
	for row := 0; row < grid.Rows(); row++ {
		count := 0
		for col := 0; col < grid.Cols(); col++ {
			if !grid.At(row, col).OwnedBy(participant) {
				count = 0
				continue
			}

			count++
			if count >= WinThreshold {
				return true
			}
		}
	}

	return false
}

type Vertical struct{}

func (Vertical) Axis() string { return AxisVertical }

func (Vertical) HasWon(participant entity.Participant, grid *entity.Grid) bool {
	for col := 0; col < grid.Cols(); col++ {
		count := 0
		for row := 0; row < grid.Rows(); row++ {
			if !grid.At(row, col).OwnedBy(participant) {
				count = 0
				continue
			}

			count++
			if count >= WinThreshold {
				return true
			}
		}
	}

	return false
}

type DiagonalDownRight struct{}

func (DiagonalDownRight) Axis() string { return AxisDiagonalDownRight }

func (d DiagonalDownRight) HasWon(participant entity.Participant, grid *entity.Grid) bool {
	return anyWindow(participant, grid, d.starts(grid), 1, 1)
}

// starts keeps every window of WinThreshold cells stepping (+1, +1) inside the grid.
func (DiagonalDownRight) starts(grid *entity.Grid) []cell {
	var starts []cell
	for row := 0; row <= grid.Rows()-WinThreshold; row++ {
		for col := 0; col <= grid.Cols()-WinThreshold; col++ {
			starts = append(starts, cell{row: row, col: col})
		}
	}

	return starts
}

// DiagonalDownLeft walks from the lower left towards the upper right, which covers the
// same lines as walking down and to the left.
type DiagonalDownLeft struct{}

func (DiagonalDownLeft) Axis() string { return AxisDiagonalDownLeft }

func (d DiagonalDownLeft) HasWon(participant entity.Participant, grid *entity.Grid) bool {
	return anyWindow(participant, grid, d.starts(grid), -1, 1)
}

// starts keeps every window of WinThreshold cells stepping (-1, +1) inside the grid.
func (DiagonalDownLeft) starts(grid *entity.Grid) []cell {
	var starts []cell
	for row := WinThreshold - 1; row < grid.Rows(); row++ {
		for col := 0; col <= grid.Cols()-WinThreshold; col++ {
			starts = append(starts, cell{row: row, col: col})
		}
	}

	return starts
}

type cell struct {
	row int
	col int
}

func anyWindow(participant entity.Participant, grid *entity.Grid, starts []cell, dRow, dCol int) bool {
	for _, start := range starts {
		if window(participant, grid, start, dRow, dCol) {
			return true
		}
	}

	return false
}

// window stops at the first cell the participant does not own.
func window(participant entity.Participant, grid *entity.Grid, start cell, dRow, dCol int) bool {
	for i := 0; i < WinThreshold; i++ {
		if !grid.At(start.row+i*dRow, start.col+i*dCol).OwnedBy(participant) {
			return false
		}
	}

	return true
}
