package uid

import "github.com/google/uuid"

// UUID generates version 7 UUID strings, which sort by creation time.
type UUID struct{}

// NewUUID returns a UUID generator.
func NewUUID() *UUID { return &UUID{} }

// Generate returns a new UUID string. If version 7 generation fails (the
// random source is exhausted) it degrades to version 4.
func (*UUID) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
