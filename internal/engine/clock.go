package engine

import "time"

// Clock abstracts time.Now() to allow deterministic testing.
// It is used by the calendar generator and the console to determine "today".
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock always reports the same instant. The --today flag uses it.
type FixedClock struct {
	Time time.Time
}

// Now returns the pinned instant.
func (c FixedClock) Now() time.Time {
	return c.Time
}
