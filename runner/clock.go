package runner

import "time"

// Clock abstracts wall-clock time so tests can substitute a scripted source
// and assert structural properties instead of timing numbers.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real wall clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
