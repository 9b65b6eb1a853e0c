package source

import (
	"context"
	"io"
)

// StreamSource provides access to a resource as a byte stream.
//
// A StreamSource supports only a single stream at a time. Opening a
// stream closes the stream returned previously, and further reads from
// that stream fail. StreamSources are not safe for concurrent use.
type StreamSource interface {
	// Name of the source, which is the URL of its reference.
	Name() string
	Reference() Reference

	// Open a stream that reads the entire resource.
	Open(ctx context.Context) (io.ReadCloser, error)
	// OpenFrom opens a stream that reads from a given offset until
	// the end of the resource.
	OpenFrom(ctx context.Context, start int64) (io.ReadCloser, error)
	// OpenRange opens a stream that reads from a given offset,
	// providing at least minLength bytes if the resource is large
	// enough.
	OpenRange(ctx context.Context, start, minLength int64) (io.ReadCloser, error)

	Metadata(ctx context.Context) (*Metadata, error)
	// Exists returns whether the resource exists, either as an
	// object or as a directory.
	Exists(ctx context.Context) (bool, error)
	IsDirectory(ctx context.Context) (bool, error)

	// Delete the resource. Deleting a resource that does not exist
	// is not an error.
	Delete(ctx context.Context) error
	// DeleteDirectory deletes all objects contained in the
	// resource, when interpreted as a directory.
	DeleteDirectory(ctx context.Context) error
	// Create returns a writer that replaces the contents of the
	// resource. The data is stored when the writer is closed.
	Create(ctx context.Context) (Writer, error)
	// Copy the contents of the resource to another source. Nothing
	// is stored at the destination if reading fails.
	Copy(ctx context.Context, destination StreamSource) error
	// List returns the URLs of the direct children of the
	// resource, when interpreted as a directory.
	List(ctx context.Context) ([]string, error)
	// Walk returns the URLs of all objects contained in the
	// resource, when interpreted as a directory, at any depth.
	Walk(ctx context.Context) ([]string, error)
}

// Writer of the contents of a StreamSource.
type Writer interface {
	io.WriteCloser
	// Abort discards all data written, leaving the contents of
	// the resource unchanged. Calling Close after Abort fails.
	Abort()
}
