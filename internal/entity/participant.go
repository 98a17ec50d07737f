package entity

const (
	KindHuman = "human"
	KindBot   = "bot"
)

// Participant is a seat at the board. Its marker is what lands in the grid cells.
type Participant struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Marker string `json:"marker"`
	Kind   string `json:"kind"`
}

func NewParticipant(id int, name, marker, kind string) Participant {
	return Participant{
		ID:     id,
		Name:   name,
		Marker: marker,
		Kind:   kind,
	}
}

func (that Participant) IsBot() bool {
	return that.Kind == KindBot
}

func (that Participant) String() string {
	return that.Marker
}
