package source_test

import (
	"testing"

	"github.com/gorpipe/gor-source/pkg/failure"
	"github.com/gorpipe/gor-source/pkg/source"
	"github.com/stretchr/testify/require"
)

func TestParseLocation(t *testing.T) {
	for _, tc := range []struct {
		url      string
		scheme   string
		location source.Location
	}{
		{"s3://my-bucket/data/chr1.gorz", "s3", source.Location{Bucket: "my-bucket", Key: "data/chr1.gorz"}},
		{"s3://my-bucket/data/weird?name#.gorz", "s3", source.Location{Bucket: "my-bucket", Key: "data/weird?name#.gorz"}},
		{"gs://my-bucket/dir/", "gs", source.Location{Bucket: "my-bucket", Key: "dir/"}},
		{"https://example.com:8443/files/a.gorz?sig=x", "https", source.Location{Bucket: "https://example.com:8443", Key: "files/a.gorz?sig=x"}},
		{"file:///data/a.gorz", "file", source.Location{Key: "/data/a.gorz"}},
		{"/data/a.gorz", "file", source.Location{Key: "/data/a.gorz"}},
		{"relative/a.gorz", "file", source.Location{Key: "relative/a.gorz"}},
	} {
		t.Run(tc.url, func(t *testing.T) {
			scheme, location, err := source.ParseLocation(tc.url)
			require.NoError(t, err)
			require.Equal(t, tc.scheme, scheme)
			require.Equal(t, tc.location, location)
		})
	}

	t.Run("String", func(t *testing.T) {
		require.Equal(t, "my-bucket/data/chr1.gorz", source.Location{Bucket: "my-bucket", Key: "data/chr1.gorz"}.String())
		require.Equal(t, "https://example.com/a.gorz", source.Location{Bucket: "https://example.com", Key: "a.gorz"}.String())
		require.Equal(t, "/data/a.gorz", source.Location{Key: "/data/a.gorz"}.String())
	})

	t.Run("DirectoryPrefix", func(t *testing.T) {
		require.Equal(t, "dir/", source.Location{Bucket: "b", Key: "dir"}.DirectoryPrefix())
		require.Equal(t, "dir/", source.Location{Bucket: "b", Key: "dir/"}.DirectoryPrefix())
		require.Equal(t, "", source.Location{Bucket: "b"}.DirectoryPrefix())
	})

	t.Run("Invalid", func(t *testing.T) {
		_, _, err := source.ParseLocation("s3:///key")
		require.True(t, failure.IsKind(err, failure.BadRequest))
		_, _, err = source.ParseLocation("ftp://host/file")
		require.True(t, failure.IsKind(err, failure.BadRequest))
	})
}
