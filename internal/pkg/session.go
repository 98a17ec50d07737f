package pkg

import "github.com/google/uuid"

// GenerateSessionID - generates a new unique id for a checkpointed session.
func GenerateSessionID() string {
	return uuid.NewString()
}
