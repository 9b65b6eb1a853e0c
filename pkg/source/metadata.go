package source

import (
	"fmt"
	"time"
)

// Attributes of an object, as returned by an ObjectStore.
type Attributes struct {
	Length       int64
	LastModified time.Time
	ETag         string
	ContentType  string
}

// Metadata of a StreamSource.
type Metadata struct {
	Name         string
	Length       int64
	LastModified time.Time
	ETag         string
	ContentType  string

	// Fields inherited from the reference through which the source
	// was opened.
	LinkLastModified *time.Time
	ChrSubset        []string
}

func newMetadata(reference Reference, attributes Attributes) *Metadata {
	return &Metadata{
		Name:             reference.URL,
		Length:           attributes.Length,
		LastModified:     attributes.LastModified,
		ETag:             attributes.ETag,
		ContentType:      attributes.ContentType,
		LinkLastModified: reference.LinkLastModified,
		ChrSubset:        reference.ChrSubset,
	}
}

// UniqueID returns a string that changes whenever the contents of the
// source change. It can be used to key caches of data derived from the
// source.
func (m *Metadata) UniqueID() string {
	lastModified := m.LastModified
	if m.LinkLastModified != nil && m.LinkLastModified.After(lastModified) {
		lastModified = *m.LinkLastModified
	}
	return fmt.Sprintf("%s-%d-%d", m.Name, lastModified.UnixMilli(), m.Length)
}
