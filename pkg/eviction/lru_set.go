package eviction

type lruSet[T comparable] struct {
	// Circular doubly linked list, ordered from least to most
	// recently used. The head element does not hold a key.
	head lruElement[T]

	elements map[T]*lruElement[T]
}

// NewLRUSet creates a new cache replacement set that implements the
// Least Recently Used (LRU) policy.
//
// https://en.wikipedia.org/wiki/Cache_replacement_policies#Least_recently_used_(LRU)
func NewLRUSet[T comparable]() Set[T] {
	s := &lruSet[T]{
		elements: map[T]*lruElement[T]{},
	}
	s.head.older = &s.head
	s.head.newer = &s.head
	return s
}

func (s *lruSet[T]) pushNewest(e *lruElement[T]) {
	e.older = s.head.older
	e.newer = &s.head
	e.older.newer = e
	e.newer.older = e
}

func (s *lruSet[T]) Insert(key T) {
	if _, ok := s.elements[key]; ok {
		panic("Attempted to insert key into cache replacement set twice")
	}
	e := &lruElement[T]{key: key}
	s.pushNewest(e)
	s.elements[key] = e
}

func (s *lruSet[T]) Touch(key T) {
	e := s.elements[key]
	e.unlink()
	s.pushNewest(e)
}

func (s *lruSet[T]) Peek() T {
	return s.head.newer.key
}

func (s *lruSet[T]) Remove() {
	e := s.head.newer
	e.unlink()
	delete(s.elements, e.key)
}

func (s *lruSet[T]) Delete(key T) {
	if e, ok := s.elements[key]; ok {
		e.unlink()
		delete(s.elements, key)
	}
}

func (s *lruSet[T]) Len() int {
	return len(s.elements)
}

type lruElement[T comparable] struct {
	older *lruElement[T]
	newer *lruElement[T]
	key   T
}

func (e *lruElement[T]) unlink() {
	e.older.newer = e.newer
	e.newer.older = e.older
	e.older = nil
	e.newer = nil
}
