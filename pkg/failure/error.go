package failure

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/status"
)

// Error is a terminal error. It carries the path or URL of the
// resource for which the failure occurred, so that operators can
// distinguish failures of different objects.
//
// Error implements GRPCStatus(), meaning status.Code() and
// status.Convert() can be used on it like on any other error in this
// code base.
type Error struct {
	Kind    Kind
	Message string
	Path    string
	Err     error

	// Set if Message already contains the text of Err.
	causeInMessage bool
}

// New creates a terminal error of a given kind.
func New(kind Kind, path, message string) *Error {
	return &Error{Kind: kind, Message: message, Path: path}
}

// Newf creates a terminal error of a given kind, using a format string.
func Newf(kind Kind, path, format string, args ...interface{}) *Error {
	return New(kind, path, fmt.Sprintf(format, args...))
}

// Wrap creates a terminal error of a given kind that has an underlying
// cause.
func Wrap(err error, kind Kind, path, message string) *Error {
	return &Error{Kind: kind, Message: message, Path: path, Err: err}
}

// Wrapf is identical to Wrap, except that it uses a format string.
func Wrapf(err error, kind Kind, path, format string, args ...interface{}) *Error {
	return Wrap(err, kind, path, fmt.Sprintf(format, args...))
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = fmt.Sprintf("%s (path: %s)", msg, e.Path)
	}
	if e.Err != nil && !e.causeInMessage {
		msg = fmt.Sprintf("%s: %s", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// GRPCStatus converts the error to a gRPC status, using the code that
// corresponds to the kind of the error.
func (e *Error) GRPCStatus() *status.Status {
	return status.New(e.Kind.Code(), e.Error())
}

// KindOf returns the kind of the outermost terminal error in the chain
// of err. The boolean is false if err contains no terminal error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return Unclassified, false
}

// IsKind returns whether err contains a terminal error of one of the
// provided kinds.
func IsKind(err error, kinds ...Kind) bool {
	kind, ok := KindOf(err)
	if !ok {
		return false
	}
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// IsNotFound returns whether err reports the absence of a resource,
// either through a classified NotFound error or through a raw
// not-found failure that was passed through unchanged.
func IsNotFound(err error) bool {
	if IsKind(err, NotFound) {
		return true
	}
	var raw *RawFailure
	return errors.As(err, &raw) && (raw.Kind == RawNotFound || (raw.Kind == RawStatus && raw.StatusCode == 404))
}

// ExecutionError wraps a failure that occurred while an action was
// executed on behalf of the caller by another component, such as a
// loader function invoked by a cache. It is the only wrapper that
// Classify() looks through.
type ExecutionError struct {
	Err error
}

func (e *ExecutionError) Error() string {
	return "Execution failed: " + e.Err.Error()
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}
