package eviction_test

import (
	"sort"
	"testing"

	"github.com/gorpipe/gor-source/pkg/eviction"
	"github.com/gorpipe/gor-source/pkg/random"
	"github.com/stretchr/testify/require"
)

func TestRRSet(t *testing.T) {
	set := eviction.NewRRSet[string](random.NewSeededSingleThreadedGenerator(1))
	keys := []string{
		"s3://bucket/a.gorz", "s3://bucket/b.gorz", "s3://bucket/c.gorz",
		"s3://bucket/d.gorz", "s3://bucket/e.gorz", "s3://bucket/f.gorz",
	}
	for _, key := range keys {
		set.Insert(key)
	}

	// Touching has no effect, as Random Replacement does not
	// respect any order.
	set.Touch("s3://bucket/a.gorz")

	set.Delete("s3://bucket/c.gorz")
	set.Delete("s3://bucket/missing.gorz")
	require.Equal(t, 5, set.Len())

	// All remaining keys should be returned exactly once. Peeking
	// should not remove them.
	var extracted []string
	for set.Len() > 0 {
		key := set.Peek()
		require.Equal(t, key, set.Peek())
		extracted = append(extracted, key)
		set.Remove()
	}
	sort.Strings(extracted)
	require.Equal(t, []string{
		"s3://bucket/a.gorz", "s3://bucket/b.gorz",
		"s3://bucket/d.gorz", "s3://bucket/e.gorz", "s3://bucket/f.gorz",
	}, extracted)

	// Keys that have been removed may be inserted again.
	set.Insert("s3://bucket/a.gorz")
	require.Equal(t, "s3://bucket/a.gorz", set.Peek())
}
