package clock

import (
	"context"
	"time"
)

// Clock is an interface around the parts of the standard library that
// deal with time. Retry loops and caches obtain the time and wait
// through this interface, so that unit tests can control both.
type Clock interface {
	// Return the current time of day. Equivalent to time.Now().
	Now() time.Time

	// Create a Context object that automatically cancels after a
	// certain amount of time has passed. Equivalent to
	// context.WithTimeout().
	NewContextWithTimeout(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc)

	// Create a channel that publishes the time of day at a point of
	// time in the future. Unlike time.NewTimer(), this function
	// returns the channel directly to allow Timer to be an
	// interface.
	NewTimer(d time.Duration) (Timer, <-chan time.Time)
}

// Timer is an interface around time.Timer.
type Timer interface {
	Stop() bool
}
