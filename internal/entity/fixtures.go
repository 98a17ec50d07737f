package entity

// The constructors below build deterministic boards for test scenarios. They write cells
// directly and ignore gravity.

// DrawMarkers tile FullBoard so that no marker has two equal neighbours on any axis.
var DrawMarkers = [4]string{"x", "o", "v", "@"}

func FullBoardParticipants() []Participant {
	participants := make([]Participant, 0, len(DrawMarkers))
	for i, marker := range DrawMarkers {
		participants = append(participants, NewParticipant(i+1, marker, marker, KindBot))
	}

	return participants
}

// FullBoard fills cell (r, c) with DrawMarkers[2*(r%2)+(c%2)].
func FullBoard() *Grid {
	participants := FullBoardParticipants()

	grid := NewGrid()
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			grid.cells[row][col] = OccupiedBy(participants[2*(row%2)+(col%2)])
		}
	}

	return grid
}

// HorizontalRun places n cells along the bottom row starting at column 0.
func HorizontalRun(participant Participant, n int) *Grid {
	return run(participant, n, func(i int) (int, int) { return Rows - 1, i })
}

// VerticalRun places n cells down the last column starting at row 0.
func VerticalRun(participant Participant, n int) *Grid {
	return run(participant, n, func(i int) (int, int) { return i, Cols - 1 })
}

// DiagonalDownRightRun places n cells at (0,0), (1,1), ...
func DiagonalDownRightRun(participant Participant, n int) *Grid {
	return run(participant, n, func(i int) (int, int) { return i, i })
}

// DiagonalDownLeftRun places n cells at (Rows-1,0), (Rows-2,1), ...
func DiagonalDownLeftRun(participant Participant, n int) *Grid {
	return run(participant, n, func(i int) (int, int) { return Rows - 1 - i, i })
}

func run(participant Participant, n int, at func(i int) (int, int)) *Grid {
	grid := NewGrid()
	for i := 0; i < n; i++ {
		row, col := at(i)
		if inBounds(row, col) {
			grid.cells[row][col] = OccupiedBy(participant)
		}
	}

	return grid
}
