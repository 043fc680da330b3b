package hash

import "golang.org/x/crypto/bcrypt"

// Bcrypt is the default password hasher.
type Bcrypt struct {
	cost   int
	pepper string
}

// NewBcrypt returns a bcrypt hasher. An out-of-range cost falls back to
// bcrypt.DefaultCost.
func NewBcrypt(cost int, pepper string) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{cost: cost, pepper: pepper}
}

// Hash returns the bcrypt digest of plaintext plus the pepper.
func (b *Bcrypt) Hash(plaintext string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(plaintext+b.pepper), b.cost)
}

// Verify reports whether plaintext matches the stored digest.
func (b *Bcrypt) Verify(hashed, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext+b.pepper)) == nil
}
