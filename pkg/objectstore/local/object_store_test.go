package local_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorpipe/gor-source/pkg/failure"
	"github.com/gorpipe/gor-source/pkg/objectstore/local"
	"github.com/gorpipe/gor-source/pkg/source"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, contents string) {
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o777))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o666))
}

func TestObjectStoreGetRange(t *testing.T) {
	ctx := context.Background()
	root := filepath.ToSlash(t.TempDir())
	writeFile(t, root+"/file.gor", "0123456789")
	objectStore := local.NewObjectStore()

	for name, tc := range map[string]struct {
		r        source.RequestRange
		expected string
	}{
		"FullRange":  {source.FullRange(), "0123456789"},
		"Partial":    {source.RangeFromFirstLength(2, 3), "234"},
		"ToEnd":      {source.RangeFromFirstLength(7, source.ToEnd), "789"},
		"PastLength": {source.RangeFromFirstLength(8, 100), "89"},
	} {
		t.Run(name, func(t *testing.T) {
			r, err := objectStore.GetRange(ctx, source.Location{Key: root + "/file.gor"}, tc.r)
			require.NoError(t, err)
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			require.NoError(t, r.Close())
			require.Equal(t, tc.expected, string(data))
		})
	}

	t.Run("NotFound", func(t *testing.T) {
		_, err := objectStore.GetRange(ctx, source.Location{Key: root + "/missing.gor"}, source.FullRange())
		var raw *failure.RawFailure
		require.ErrorAs(t, err, &raw)
		require.Equal(t, failure.RawNotFound, raw.Kind)
		require.True(t, failure.IsNotFound(err))
	})

	t.Run("Directory", func(t *testing.T) {
		_, err := objectStore.GetRange(ctx, source.Location{Key: root}, source.FullRange())
		var raw *failure.RawFailure
		require.ErrorAs(t, err, &raw)
		require.Equal(t, failure.RawFileSystem, raw.Kind)

		_, terminal := failure.Classify(err, "")
		require.True(t, terminal)
	})
}

func TestObjectStoreGetAttributes(t *testing.T) {
	ctx := context.Background()
	root := filepath.ToSlash(t.TempDir())
	writeFile(t, root+"/file.gor", "0123456789")
	objectStore := local.NewObjectStore()

	attributes, err := objectStore.GetAttributes(ctx, source.Location{Key: root + "/file.gor"})
	require.NoError(t, err)
	require.Equal(t, int64(10), attributes.Length)
	require.False(t, attributes.LastModified.IsZero())

	_, err = objectStore.GetAttributes(ctx, source.Location{Key: root + "/missing.gor"})
	require.True(t, failure.IsNotFound(err))
}

func TestObjectStorePutAndDelete(t *testing.T) {
	ctx := context.Background()
	root := filepath.ToSlash(t.TempDir())
	objectStore := local.NewObjectStore()
	location := source.Location{Key: root + "/sub/dir/out.gor"}

	require.NoError(t, objectStore.Put(ctx, location, strings.NewReader("Hello"), 5))
	data, err := os.ReadFile(root + "/sub/dir/out.gor")
	require.NoError(t, err)
	require.Equal(t, "Hello", string(data))

	// No temporary files should be left behind.
	entries, err := os.ReadDir(root + "/sub/dir")
	require.NoError(t, err)
	require.Len(t, entries, 1)

	require.NoError(t, objectStore.Delete(ctx, "", []string{location.Key, root + "/missing.gor"}))
	_, err = os.Stat(root + "/sub/dir/out.gor")
	require.True(t, os.IsNotExist(err))
}

func TestObjectStoreList(t *testing.T) {
	ctx := context.Background()
	root := filepath.ToSlash(t.TempDir())
	writeFile(t, root+"/dir/a.gor", "a")
	writeFile(t, root+"/dir/b.gor", "b")
	writeFile(t, root+"/dir/sub/c.gor", "c")
	writeFile(t, root+"/dirty.gor", "d")
	objectStore := local.NewObjectStore()

	t.Run("Delimiter", func(t *testing.T) {
		page, err := objectStore.List(ctx, "", root+"/dir/", "/", "", 1000)
		require.NoError(t, err)
		require.Equal(t, source.ListPage{
			Keys:           []string{root + "/dir/a.gor", root + "/dir/b.gor"},
			CommonPrefixes: []string{root + "/dir/sub/"},
		}, page)
	})

	t.Run("Recursive", func(t *testing.T) {
		page, err := objectStore.List(ctx, "", root+"/dir/", "", "", 1000)
		require.NoError(t, err)
		require.Equal(t, source.ListPage{
			Keys: []string{root + "/dir/a.gor", root + "/dir/b.gor", root + "/dir/sub/c.gor"},
		}, page)
	})

	t.Run("Paginated", func(t *testing.T) {
		page, err := objectStore.List(ctx, "", root+"/dir/", "", "", 2)
		require.NoError(t, err)
		require.Equal(t, source.ListPage{
			Keys:                  []string{root + "/dir/a.gor", root + "/dir/b.gor"},
			NextContinuationToken: root + "/dir/b.gor",
		}, page)

		page, err = objectStore.List(ctx, "", root+"/dir/", "", page.NextContinuationToken, 2)
		require.NoError(t, err)
		require.Equal(t, source.ListPage{
			Keys: []string{root + "/dir/sub/c.gor"},
		}, page)
	})

	t.Run("MissingDirectory", func(t *testing.T) {
		page, err := objectStore.List(ctx, "", root+"/missing/", "/", "", 1000)
		require.NoError(t, err)
		require.Equal(t, source.ListPage{}, page)
	})
}
