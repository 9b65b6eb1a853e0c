package eviction_test

import (
	"testing"

	"github.com/gorpipe/gor-source/pkg/eviction"
	"github.com/stretchr/testify/require"
)

func TestFIFOSet(t *testing.T) {
	set := eviction.NewFIFOSet[string]()
	for _, key := range []string{"a/1.gorz", "a/2.gorz", "a/3.gorz", "a/4.gorz"} {
		set.Insert(key)
	}

	// Touching has no effect, as only the insertion order is
	// respected.
	set.Touch("a/1.gorz")

	// Deleting and reinserting a key moves it to the back.
	set.Delete("a/2.gorz")
	set.Insert("a/2.gorz")
	set.Delete("a/3.gorz")
	require.Equal(t, 3, set.Len())

	for _, key := range []string{"a/1.gorz", "a/4.gorz", "a/2.gorz"} {
		require.Equal(t, key, set.Peek())
		require.Equal(t, key, set.Peek())
		set.Remove()
	}
	require.Equal(t, 0, set.Len())
}
