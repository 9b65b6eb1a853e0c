package source

import (
	"time"
)

// Reference to a resource that may be opened as a stream. References
// to resources that were resolved through a link file point to the
// reference of the link file through Parent.
type Reference struct {
	URL              string
	Parent           *Reference
	ChrSubset        []string
	LinkLastModified *time.Time
}

// NewReference creates a Reference to a resource that was not
// resolved through a link.
func NewReference(url string) Reference {
	return Reference{URL: url}
}

// OriginalReference returns the reference at the root of the chain of
// links.
func (r Reference) OriginalReference() Reference {
	for r.Parent != nil {
		r = *r.Parent
	}
	return r
}

func (r Reference) String() string {
	return r.URL
}
