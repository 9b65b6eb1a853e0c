package source_test

import (
	"testing"
	"time"

	"github.com/gorpipe/gor-source/pkg/source"
	"github.com/stretchr/testify/require"
)

func TestReference(t *testing.T) {
	link := source.NewReference("s3://bucket/links/chr1.gorz.link")
	resolved := source.Reference{URL: "s3://bucket/data/chr1.gorz", Parent: &link}
	require.Equal(t, link, resolved.OriginalReference())
	require.Equal(t, link, link.OriginalReference())
}

func TestMetadataUniqueID(t *testing.T) {
	metadata := source.Metadata{
		Name:         "s3://bucket/chr1.gorz",
		Length:       1234,
		LastModified: time.Unix(1000, 0),
	}
	require.Equal(t, "s3://bucket/chr1.gorz-1000000-1234", metadata.UniqueID())

	// Links that are newer than the object they point to cause the
	// identifier to change.
	linkLastModified := time.Unix(2000, 0)
	metadata.LinkLastModified = &linkLastModified
	require.Equal(t, "s3://bucket/chr1.gorz-2000000-1234", metadata.UniqueID())
}
