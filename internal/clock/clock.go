// Package clock provides an abstraction for time operations to improve testability.
// Code that measures elapsed time takes a Clock so tests can control it.
package clock

import "time"

// Clock is an interface for time operations.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
	// Since returns the time elapsed since t.
	Since(t time.Time) time.Duration
}

// RealClock implements Clock using the actual system time.
type RealClock struct{}

// Now returns the current time from the system clock.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Since returns the time elapsed since t on the system clock.
func (RealClock) Since(t time.Time) time.Duration {
	return time.Since(t)
}

// Ensure RealClock implements Clock.
var _ Clock = RealClock{}
