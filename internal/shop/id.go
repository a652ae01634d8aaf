package shop

import "github.com/google/uuid"

// newSessionID returns a random id used to tell sessions apart in logs.
func newSessionID() string {
	return uuid.NewString()
}
