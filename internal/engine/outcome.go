package engine

import "github.com/rocketscienceinc/connectfour/internal/entity"

type Status string

const (
	StatusContinue         Status = "continue"
	StatusInvalidMove      Status = "invalid_move"
	StatusWon              Status = "won"
	StatusDrawn            Status = "drawn"
	StatusExitRequested    Status = "exit_requested"
	StatusNewGameRequested Status = "new_game_requested"
)

// Outcome is produced fresh by every turn. Row is only meaningful once a piece landed.
type Outcome struct {
	Status Status
	Player entity.Participant
	Row    int
	Col    int
}

// IsDecided is true when the game just ended, won or drawn.
func (that Outcome) IsDecided() bool {
	return that.Status == StatusWon || that.Status == StatusDrawn
}

// Winner returns the mover of a won game.
func (that Outcome) Winner() (entity.Participant, bool) {
	if that.Status != StatusWon {
		return entity.Participant{}, false
	}

	return that.Player, true
}
