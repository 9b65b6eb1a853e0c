package failure

import (
	"errors"
	"fmt"
)

// Classify decides whether a failure is terminal. Terminal failures
// are returned in mapped form and must not be retried. Non-terminal
// failures are returned in the form that should be reported once the
// retry budget is exhausted.
//
// At most one ExecutionError is unwrapped before classification. Path
// is used for failures that don't carry a path of their own.
func Classify(err error, path string) (error, bool) {
	if err == nil {
		return nil, false
	}
	cause := err
	if executionErr, ok := cause.(*ExecutionError); ok {
		cause = executionErr.Err
	}

	// Errors that are already part of the taxonomy are terminal
	// by definition.
	var terminal *Error
	if errors.As(cause, &terminal) {
		return terminal, true
	}
	var raw *RawFailure
	if !errors.As(cause, &raw) {
		return err, false
	}
	if raw.Path != "" {
		path = raw.Path
	}

	switch raw.Kind {
	case RawNotFound, RawFileSystem:
		return raw, true
	case RawStatus:
		var kind Kind
		var label string
		switch raw.StatusCode {
		case 400:
			kind, label = BadRequest, "Bad request for resource"
		case 401:
			kind, label = Unauthorized, "Unauthorized"
		case 403:
			kind, label = AccessDenied, "Access Denied"
		case 404:
			kind, label = NotFound, "Not Found"
		default:
			return Wrapf(raw, Resource, path, "Request failed with status code %d", raw.StatusCode), false
		}
		return &Error{
			Kind:    kind,
			Message: fmt.Sprintf("%s. Detail: %s. Original message: %s", label, raw.Message, err.Error()),
			Path:    path,
			Err:     raw,

			causeInMessage: true,
		}, true
	case RawClient:
		return Wrap(raw, Transport, path, "Object store client failure"), true
	case RawOther:
		return err, false
	default:
		panic(fmt.Sprintf("Unknown raw failure kind %d", raw.Kind))
	}
}
