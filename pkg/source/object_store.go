package source

import (
	"context"
	"io"
)

// ListPage is a single page of results returned by ObjectStore.List().
type ListPage struct {
	// Keys of the objects matching the prefix.
	Keys []string
	// If a delimiter is provided, keys sharing a prefix up to the
	// first delimiter following the prefix are rolled up into a
	// single entry in CommonPrefixes.
	CommonPrefixes []string
	// Non-empty if more results are available.
	NextContinuationToken string
}

// ObjectStore provides access to a collection of objects, such as
// those stored in an S3 or GCS bucket. Implementations report failures
// as *failure.RawFailure, leaving classification and retrying to the
// caller.
type ObjectStore interface {
	// GetRange returns the contents of an object within a given
	// range. The range may be FullRange().
	GetRange(ctx context.Context, location Location, r RequestRange) (io.ReadCloser, error)
	GetAttributes(ctx context.Context, location Location) (Attributes, error)
	Put(ctx context.Context, location Location, body io.ReadSeeker, size int64) error
	// Delete a set of objects. Objects that do not exist are
	// ignored.
	Delete(ctx context.Context, bucket string, keys []string) error
	List(ctx context.Context, bucket, prefix, delimiter, continuationToken string, maxKeys int) (ListPage, error)
}
