package hash

// Hash abstracts one-way hashing so callers can swap algorithms.
type Hash interface {
	// Hash hashes plaintext and returns the encoded digest.
	Hash(plaintext string) ([]byte, error)
	// Verify returns true when plaintext matches the hashed value.
	Verify(hashed, plaintext string) bool
}
