package clock

import "time"

// Clocker reads the current time. Code that needs "now" takes this instead of
// calling time.Now, so tests can pin the clock.
type Clocker interface {
	Now() time.Time
}

// New returns the system clock.
func New() Clocker {
	return systemClock{}
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
