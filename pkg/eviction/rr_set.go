package eviction

import (
	"github.com/gorpipe/gor-source/pkg/random"
)

type rrSet[T comparable] struct {
	generator random.SingleThreadedGenerator
	elements  []T
	indices   map[T]int
}

// NewRRSet creates a new cache replacement set that implements the
// Random Replacement (RR) policy.
//
// https://en.wikipedia.org/wiki/Cache_replacement_policies#Random_replacement_(RR)
func NewRRSet[T comparable](generator random.SingleThreadedGenerator) Set[T] {
	return &rrSet[T]{
		generator: generator,
		indices:   map[T]int{},
	}
}

func (s *rrSet[T]) set(index int, key T) {
	s.elements[index] = key
	s.indices[key] = index
}

func (s *rrSet[T]) Insert(key T) {
	if _, ok := s.indices[key]; ok {
		panic("Attempted to insert key into cache replacement set twice")
	}
	// Insert the key into a random location in the list, opening
	// up space by moving an existing key to the end of the list.
	index := s.generator.IntN(len(s.elements) + 1)
	s.elements = append(s.elements, key)
	if index != len(s.elements)-1 {
		s.set(len(s.elements)-1, s.elements[index])
	}
	s.set(index, key)
}

func (rrSet[T]) Touch(key T) {}

func (s *rrSet[T]) Peek() T {
	return s.elements[len(s.elements)-1]
}

func (s *rrSet[T]) Remove() {
	last := len(s.elements) - 1
	delete(s.indices, s.elements[last])
	s.elements = s.elements[:last]
}

func (s *rrSet[T]) Delete(key T) {
	index, ok := s.indices[key]
	if !ok {
		return
	}
	last := len(s.elements) - 1
	if index != last {
		s.set(index, s.elements[last])
	}
	delete(s.indices, key)
	s.elements = s.elements[:last]
}

func (s *rrSet[T]) Len() int {
	return len(s.elements)
}
