package util

import (
	"log"
)

// ErrorLogger may be used to report errors that cannot be returned to
// the caller directly, such as a failure to close a stream that was
// invalidated by a newer one, or a failure to clean up after an
// aborted upload. Implementations may decide to log, redirect or
// discard them.
type ErrorLogger interface {
	Log(err error)
}

type defaultErrorLogger struct{}

func (defaultErrorLogger) Log(err error) {
	log.Print(err)
}

// DefaultErrorLogger writes errors using Go's standard logging package.
var DefaultErrorLogger ErrorLogger = defaultErrorLogger{}
