package eviction_test

import (
	"testing"

	"github.com/gorpipe/gor-source/pkg/eviction"
	"github.com/stretchr/testify/require"
)

func TestLRUSet(t *testing.T) {
	set := eviction.NewLRUSet[string]()
	keys := []string{
		"genomes/chr1.gorz", "genomes/chr2.gorz", "genomes/chr3.gorz",
		"genomes/chr4.gorz", "genomes/chrX.gorz",
	}
	for _, key := range keys {
		set.Insert(key)
	}
	require.Equal(t, 5, set.Len())

	// Touched keys should be removed last, in the order in which
	// they were touched.
	set.Touch("genomes/chr2.gorz")
	set.Touch("genomes/chr1.gorz")

	// Deleted keys are never returned.
	set.Delete("genomes/chr4.gorz")
	set.Delete("genomes/unknown.gorz")
	require.Equal(t, 4, set.Len())

	for _, key := range []string{
		"genomes/chr3.gorz", "genomes/chrX.gorz",
		"genomes/chr2.gorz", "genomes/chr1.gorz",
	} {
		require.Equal(t, key, set.Peek())
		require.Equal(t, key, set.Peek())
		set.Remove()
	}
	require.Equal(t, 0, set.Len())
}

func TestLRUSetDuplicateInsert(t *testing.T) {
	set := eviction.NewLRUSet[string]()
	set.Insert("bucket/key")
	require.Panics(t, func() { set.Insert("bucket/key") })
}
