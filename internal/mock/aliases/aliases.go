package aliases

import (
	"io"
)

// This file contains aliases for some of the interfaces provided by the
// Go standard library, so that mockgen can emit mocks for them in the
// same way as for interfaces declared in this module.

// ReadCloser is an alias of io.ReadCloser.
type ReadCloser = io.ReadCloser

// WriteCloser is an alias of io.WriteCloser.
type WriteCloser = io.WriteCloser
