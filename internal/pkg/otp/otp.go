package otp

import (
	"fmt"
	"math/rand/v2"
)

// Digits is the length of generated codes.
const Digits = 6

// Generator produces short-lived numeric codes for email delivery.
type Generator interface {
	// Generate returns a fresh numeric code.
	Generate() string
}

// Numeric implements Generator with uniformly distributed decimal codes.
//
// Codes are zero-padded, so "000000" through "999999" are all valid
// outputs. The source is not cryptographically strong; codes are
// single-use and expire within minutes.
type Numeric struct {
	intN func(int) int
}

// NewNumeric returns a Numeric code generator.
func NewNumeric() *Numeric {
	return &Numeric{intN: rand.IntN}
}

// Generate returns a fresh six-digit code.
func (n *Numeric) Generate() string {
	return fmt.Sprintf("%0*d", Digits, n.intN(1000000))
}
