package engine

import "github.com/google/uuid"

// generateID returns a random ID for sessions; it only shows up in logs.
func generateID() string {
	return uuid.NewString()
}
