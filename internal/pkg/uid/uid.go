// Package uid provides identifier generators used across the application:
// snowflake numbers for database rows, UUIDs for tokens and correlation
// IDs, and object IDs for distributed-safe string keys.
package uid

// NumberID generates unique numeric identifiers.
type NumberID interface {
	// Generate returns a new unique int64 identifier.
	Generate() int64
}

// StringID generates unique string identifiers.
type StringID interface {
	// Generate returns a new unique string identifier.
	Generate() string
}
