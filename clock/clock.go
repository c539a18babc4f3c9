// Package clock provides the injectable game clock and the frame-sampled
// task scheduler the update loop runs delayed effects on.
package clock

import "time"

// Clock supplies the current game time. The real implementation reads the
// monotonic system clock; tests advance a manual one explicitly.
type Clock interface {
	Now() time.Time
}

// Monotonic is the real clock.
type Monotonic struct{}

// NewMonotonic returns a clock backed by the system's monotonic time.
func NewMonotonic() Monotonic {
	return Monotonic{}
}

func (Monotonic) Now() time.Time {
	return time.Now()
}

// Manual is a test clock that only moves when told to.
type Manual struct {
	now time.Time
}

// NewManual returns a manual clock starting at the given instant.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

func (m *Manual) Now() time.Time {
	return m.now
}

// Advance moves the clock forward by d.
func (m *Manual) Advance(d time.Duration) {
	m.now = m.now.Add(d)
}
