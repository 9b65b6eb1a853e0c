package failure

import (
	"fmt"
)

// RawKind enumerates the variants of RawFailure.
type RawKind int

const (
	// RawOther is a failure without any further information, such
	// as a connection reset. These failures are retried.
	RawOther RawKind = iota
	// RawStatus is a failure for which the remote service returned
	// a status code.
	RawStatus
	// RawClient is a failure of the client library, where no
	// request could be issued or no status code was obtained.
	RawClient
	// RawNotFound indicates that the resource is truly absent, as
	// reported by a filesystem-like backend.
	RawNotFound
	// RawFileSystem is a structural filesystem error, such as
	// attempting to read a directory as a file.
	RawFileSystem
)

// RawFailure is produced by the boundary between this module and a
// transport, such as an object storage SDK. It is the input of
// Classify(), which is a single switch over its kind.
type RawFailure struct {
	Kind       RawKind
	StatusCode int
	Message    string
	Path       string
	Err        error
}

// NewStatusFailure creates a RawFailure for a status code returned by
// a remote service.
func NewStatusFailure(statusCode int, message, path string, err error) *RawFailure {
	return &RawFailure{Kind: RawStatus, StatusCode: statusCode, Message: message, Path: path, Err: err}
}

// NewClientFailure creates a RawFailure for an error that a client
// library raised without obtaining a status code.
func NewClientFailure(path string, err error) *RawFailure {
	return &RawFailure{Kind: RawClient, Message: err.Error(), Path: path, Err: err}
}

// NewNotFoundFailure creates a RawFailure that indicates the resource
// does not exist.
func NewNotFoundFailure(path string, err error) *RawFailure {
	return &RawFailure{Kind: RawNotFound, Message: err.Error(), Path: path, Err: err}
}

// NewFileSystemFailure creates a RawFailure for a structural
// filesystem error.
func NewFileSystemFailure(path string, err error) *RawFailure {
	return &RawFailure{Kind: RawFileSystem, Message: err.Error(), Path: path, Err: err}
}

// NewOtherFailure creates a RawFailure that carries no information
// beyond the underlying error.
func NewOtherFailure(path string, err error) *RawFailure {
	return &RawFailure{Kind: RawOther, Message: err.Error(), Path: path, Err: err}
}

func (f *RawFailure) Error() string {
	msg := f.Message
	if f.Kind == RawStatus {
		msg = fmt.Sprintf("status code %d: %s", f.StatusCode, f.Message)
	}
	if f.Path == "" {
		return msg
	}
	return f.Path + ": " + msg
}

func (f *RawFailure) Unwrap() error {
	return f.Err
}
