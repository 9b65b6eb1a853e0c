package eviction

type fifoSet[T comparable] struct {
	// Keys in insertion order. Keys that have been deleted
	// explicitly remain in the queue until they reach the front,
	// unless they are reinserted in the meantime.
	queue   []fifoEntry[T]
	present map[T]uint64
	next    uint64
}

type fifoEntry[T comparable] struct {
	key        T
	generation uint64
}

// NewFIFOSet creates a new cache replacement set that implements the
// First In First Out (FIFO) policy.
//
// https://en.wikipedia.org/wiki/Cache_replacement_policies#First_in_first_out_(FIFO)
func NewFIFOSet[T comparable]() Set[T] {
	return &fifoSet[T]{
		present: map[T]uint64{},
	}
}

func (s *fifoSet[T]) Insert(key T) {
	if _, ok := s.present[key]; ok {
		panic("Attempted to insert key into cache replacement set twice")
	}
	s.next++
	s.present[key] = s.next
	s.queue = append(s.queue, fifoEntry[T]{key: key, generation: s.next})
}

func (fifoSet[T]) Touch(key T) {}

// skipDeleted discards entries at the front of the queue that no
// longer correspond to a key in the set.
func (s *fifoSet[T]) skipDeleted() {
	for {
		front := s.queue[0]
		if generation, ok := s.present[front.key]; ok && generation == front.generation {
			return
		}
		s.queue = s.queue[1:]
	}
}

func (s *fifoSet[T]) Peek() T {
	s.skipDeleted()
	return s.queue[0].key
}

func (s *fifoSet[T]) Remove() {
	s.skipDeleted()
	delete(s.present, s.queue[0].key)
	s.queue = s.queue[1:]
}

func (s *fifoSet[T]) Delete(key T) {
	delete(s.present, key)
}

func (s *fifoSet[T]) Len() int {
	return len(s.present)
}
