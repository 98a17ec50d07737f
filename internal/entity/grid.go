package entity

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
)

const (
	Rows = 6
	Cols = 7
)

var (
	ErrInvalidCell  = errors.New("invalid cell index")
	ErrFloatingCell = errors.New("occupied cell above an empty one")
	ErrGridShape    = errors.New("grid must be 6x7")
	ErrInvalidMark  = errors.New("marker must be a single character")
)

// Grid is the board. Row 0 is the top, row Rows-1 the bottom.
type Grid struct {
	cells [Rows][Cols]Cell
}

func NewGrid() *Grid {
	return &Grid{}
}

func (that *Grid) Rows() int { return Rows }
func (that *Grid) Cols() int { return Cols }

// At returns the cell at (row, col). Out of range coordinates read as empty.
func (that *Grid) At(row, col int) Cell {
	if !inBounds(row, col) {
		return Cell{}
	}

	return that.cells[row][col]
}

func (that *Grid) IsValidMove(col int) bool {
	return col >= 0 && col < Cols && !that.IsColumnFull(col) && !that.IsFull()
}

// ApplyGravity locates the landing row for col without writing to it.
func (that *Grid) ApplyGravity(col int) (int, bool) {
	if !that.IsValidMove(col) {
		return 0, false
	}

	for row := Rows - 1; row >= 0; row-- {
		if that.cells[row][col].IsEmpty() {
			return row, true
		}
	}

	// unreachable: IsValidMove already rejected a full column
	return 0, false
}

// Place writes the participant into a cell located by ApplyGravity.
func (that *Grid) Place(row, col int, participant Participant) error {
	if !inBounds(row, col) {
		return fmt.Errorf("%w: (%d, %d)", ErrInvalidCell, row, col)
	}

	if !that.cells[row][col].IsEmpty() {
		return apperror.ErrCellOccupied
	}

	that.cells[row][col] = OccupiedBy(participant)

	return nil
}

// IsFull only looks at the top row; gravity keeps every column packed from the bottom.
func (that *Grid) IsFull() bool {
	for col := 0; col < Cols; col++ {
		if that.cells[0][col].IsEmpty() {
			return false
		}
	}

	return true
}

func (that *Grid) IsColumnFull(col int) bool {
	if col < 0 || col >= Cols {
		return false
	}

	for row := 0; row < Rows; row++ {
		if that.cells[row][col].IsEmpty() {
			return false
		}
	}

	return true
}

// LegalColumns lists every column that currently accepts a piece.
func (that *Grid) LegalColumns() []int {
	columns := make([]int, 0, Cols)
	for col := 0; col < Cols; col++ {
		if that.IsValidMove(col) {
			columns = append(columns, col)
		}
	}

	return columns
}

func (that *Grid) Clear() {
	that.cells = [Rows][Cols]Cell{}
}

func (that *Grid) String() string {
	var sb strings.Builder

	border := func() {
		sb.WriteString(" ")
		for col := 0; col < Cols; col++ {
			sb.WriteString(" - ")
		}
		sb.WriteString("\n")
	}

	sb.WriteString(" ")
	for col := 0; col < Cols; col++ {
		fmt.Fprintf(&sb, " %d ", col)
	}
	sb.WriteString("\n")

	border()
	for row := 0; row < Rows; row++ {
		sb.WriteString("|")
		for col := 0; col < Cols; col++ {
			marker := that.cells[row][col].Marker
			if marker == EmptyMarker {
				marker = " "
			}
			fmt.Fprintf(&sb, " %s ", marker)
		}
		sb.WriteString("|\n")
	}
	border()

	return sb.String()
}

type gridJSON struct {
	Cells [][]Cell `json:"cells"`
}

func (that *Grid) MarshalJSON() ([]byte, error) {
	cells := make([][]Cell, Rows)
	for row := range cells {
		cells[row] = that.cells[row][:]
	}

	return json.Marshal(gridJSON{Cells: cells})
}

// UnmarshalJSON rejects boards that gravity could not have produced.
func (that *Grid) UnmarshalJSON(data []byte) error {
	var decoded gridJSON
	if err := json.Unmarshal(data, &decoded); err != nil {
		return fmt.Errorf("failed to unmarshal grid: %w", err)
	}

	if len(decoded.Cells) != Rows {
		return fmt.Errorf("%w: got %d rows", ErrGridShape, len(decoded.Cells))
	}

	var cells [Rows][Cols]Cell
	for row, line := range decoded.Cells {
		if len(line) != Cols {
			return fmt.Errorf("%w: row %d has %d columns", ErrGridShape, row, len(line))
		}

		for col, cell := range line {
			if !cell.IsEmpty() && utf8.RuneCountInString(cell.Marker) != 1 {
				return fmt.Errorf("%w: %q at (%d, %d)", ErrInvalidMark, cell.Marker, row, col)
			}

			if row > 0 && !cells[row-1][col].IsEmpty() && cell.IsEmpty() {
				return fmt.Errorf("%w: (%d, %d)", ErrFloatingCell, row-1, col)
			}

			cells[row][col] = cell
		}
	}

	that.cells = cells

	return nil
}

func inBounds(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}
