package aoc

import (
	"fmt"
	"math/bits"
)

// BitSet is a fixed capacity set of small non-negative integers.
type BitSet struct {
	words []uint
	cap   int
	n     int
}

// NewBitSet returns an empty set that can hold 0 <= i < capacity.
func NewBitSet(capacity int) *BitSet {
	return &BitSet{
		words: make([]uint, (capacity+bits.UintSize-1)/bits.UintSize),
		cap:   capacity,
	}
}

func (s *BitSet) loc(i int) (word int, mask uint) {
	if i < 0 || i >= s.cap {
		panic(fmt.Sprintf("BitSet: index %d out of range [0, %d)", i, s.cap))
	}
	return i / bits.UintSize, 1 << (uint(i) % bits.UintSize)
}

// Insert adds i to the set.
func (s *BitSet) Insert(i int) {
	w, m := s.loc(i)
	if s.words[w]&m == 0 {
		s.words[w] |= m
		s.n++
	}
}

// Remove removes i from the set.
func (s *BitSet) Remove(i int) {
	w, m := s.loc(i)
	if s.words[w]&m != 0 {
		s.words[w] &^= m
		s.n--
	}
}

// Contains reports whether i is in the set.
func (s *BitSet) Contains(i int) bool {
	w, m := s.loc(i)
	return s.words[w]&m != 0
}

// Len returns the number of members.
func (s *BitSet) Len() int { return s.n }

// Cap returns the capacity the set was created with.
func (s *BitSet) Cap() int { return s.cap }

// Zero removes every member, keeping the backing words for reuse.
func (s *BitSet) Zero() {
	clear(s.words)
	s.n = 0
}
