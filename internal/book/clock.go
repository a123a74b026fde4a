package book

import "time"

// Clock abstracts time.Now() to allow deterministic testing.
// It determines "today" for the upcoming-birthday window and the
// reference year for calendar generation.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}
