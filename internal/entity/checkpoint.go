package entity

import "time"

// Checkpoint is the in-flight game: the board and whose turn comes next.
// It is dropped once the game is decided.
type Checkpoint struct {
	ID           string        `json:"id"`
	Grid         *Grid         `json:"grid"`
	NextPlayer   int           `json:"next_player"`
	Participants []Participant `json:"participants"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

func NewCheckpoint(id string, grid *Grid, nextPlayer int, participants []Participant) *Checkpoint {
	return &Checkpoint{
		ID:           id,
		Grid:         grid,
		NextPlayer:   nextPlayer,
		Participants: participants,
		UpdatedAt:    time.Now().UTC(),
	}
}

// Matches reports whether the checkpoint was written for the same roster.
func (that *Checkpoint) Matches(participants []Participant) bool {
	if len(that.Participants) != len(participants) {
		return false
	}

	for i, participant := range participants {
		if that.Participants[i].ID != participant.ID || that.Participants[i].Marker != participant.Marker {
			return false
		}
	}

	return true
}
