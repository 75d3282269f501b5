package aoc

import (
	"container/heap"
)

type Stack[T any] struct {
	s []T
}

func (s *Stack[T]) Push(v T) {
	s.s = append(s.s, v)
}

func (s *Stack[T]) Pop() (T, bool) {
	if len(s.s) == 0 {
		var zero T
		return zero, false
	}
	v := s.s[len(s.s)-1]
	s.s = s.s[:len(s.s)-1]
	return v, true
}

func (s *Stack[T]) Len() int {
	return len(s.s)
}

// PQ is a priority queue that pops the element for which less reports
// true against every other element first.
type PQ[T any] struct {
	pq pq[T]
}

// NewPQ returns an empty queue ordered by less.
func NewPQ[T any](less func(a, b T) bool) *PQ[T] {
	return &PQ[T]{
		pq: pq[T]{
			less: less,
		},
	}
}

func (pq *PQ[T]) Push(v T) {
	heap.Push(&pq.pq, v)
}

func (pq *PQ[T]) Pop() (T, bool) {
	if pq.pq.Len() == 0 {
		var zero T
		return zero, false
	}
	return heap.Pop(&pq.pq).(T), true
}

func (pq *PQ[T]) Len() int {
	return pq.pq.Len()
}

type pq[T any] struct {
	q    []T
	less func(a, b T) bool
}

func (pq pq[T]) Len() int { return len(pq.q) }

func (pq pq[T]) Less(i, j int) bool {
	return pq.less(pq.q[i], pq.q[j])
}

func (pq pq[T]) Swap(i, j int) {
	pq.q[i], pq.q[j] = pq.q[j], pq.q[i]
}

func (pq *pq[T]) Push(x any) {
	pq.q = append(pq.q, x.(T))
}

func (pq *pq[T]) Pop() any {
	old := pq.q
	n := len(old)
	item := old[n-1]
	var zero T
	old[n-1] = zero // avoid memory leak
	pq.q = old[0 : n-1]
	return item
}

func NewQueue[T any](in ...T) Queue[T] {
	return Queue[T]{
		q: in,
	}
}

type Queue[T any] struct {
	q []T
}

func (q *Queue[T]) Len() int {
	return len(q.q)
}

func (q *Queue[T]) Push(v T) {
	q.q = append(q.q, v)
}

func (q *Queue[T]) Pop() (T, bool) {
	if len(q.q) == 0 {
		var zero T
		return zero, false
	}
	v := q.q[0]
	q.q = q.q[1:]
	return v, true
}
