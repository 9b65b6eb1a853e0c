package eviction

// Set of keys that need to be retained according to a cache
// replacement policy. Sets are used by caches to decide which entry to
// discard once they are full. This set does not permit concurrent
// access.
type Set[T comparable] interface {
	// Insert a key into the set. The key may not already be present
	// within the set.
	Insert(key T)

	// Touch indicates that the entry corresponding with the key was
	// recently used. For Least Recently Used (LRU) this moves the
	// key to the back of the queue. For First In First Out (FIFO)
	// this has no effect.
	//
	// The key must be present within the set.
	Touch(key T)

	// Peek at the key that needs to be removed from the cache
	// first. This function may not be called on empty sets.
	Peek() T

	// Remove the key that was last returned by Peek().
	Remove()

	// Delete a key from the set, regardless of its position. This
	// is used when entries are invalidated explicitly. Deleting a
	// key that is not present is a no-op.
	Delete(key T)

	// Len returns the number of keys in the set.
	Len() int
}
