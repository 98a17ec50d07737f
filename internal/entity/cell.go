package entity

const EmptyMarker = ""

// Cell is either empty (the zero value) or occupied by a participant.
type Cell struct {
	OwnerID int    `json:"owner_id,omitempty"`
	Marker  string `json:"marker,omitempty"`
}

func OccupiedBy(participant Participant) Cell {
	return Cell{
		OwnerID: participant.ID,
		Marker:  participant.Marker,
	}
}

func (that Cell) IsEmpty() bool {
	return that.Marker == EmptyMarker
}

// OwnedBy compares by identity and marker, so a copied participant still matches.
func (that Cell) OwnedBy(participant Participant) bool {
	return !that.IsEmpty() && that.OwnerID == participant.ID && that.Marker == participant.Marker
}
