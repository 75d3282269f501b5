package aoc

// Edge is a move out of a search state.
type Edge[S any] struct {
	To   S
	Cost int // cost of taking the edge, >= 0
	H    int // admissible estimate of the remaining cost from To
}

// Node is an entry in the A* open set.
type Node[S any] struct {
	State S
	G     int // cost so far
	F     int // G + heuristic
}

// nodeLess orders by F, preferring the deeper node (larger G) on ties.
func nodeLess[S any](a, b Node[S]) bool {
	if a.F != b.F {
		return a.F < b.F
	}
	return a.G > b.G
}

// SearchGraph is the caller side of AStar.
type SearchGraph[S any] interface {
	IsGoal(s S) bool
	// Edges appends the moves out of s to out and returns it.
	Edges(s S, out []Edge[S]) []Edge[S]
}

// ClosedSet holds the states whose optimal cost is final.
type ClosedSet[S any] interface {
	Contains(s S) bool
	Insert(s S)
}

// ParentSet records the best known cost and predecessor of states.
type ParentSet[S any] interface {
	Get(s S) (g int, ok bool)
	Insert(s S, g int, parent S)
}

// AStar runs a best-first search from start and returns the first goal
// state popped off the open set together with its cost. The result is a
// shortest path only if every edge cost is non-negative and every H is
// admissible; neither is checked.
//
// ok is false if the reachable state space is exhausted without reaching
// a goal.
func AStar[S comparable](start Node[S], g SearchGraph[S], parents ParentSet[S], closed ClosedSet[S]) (goal S, cost int, ok bool) {
	open := NewPQ(nodeLess[S])
	open.Push(start)
	var edges []Edge[S]
	for {
		cur, more := open.Pop()
		if !more {
			break
		}
		if closed.Contains(cur.State) {
			continue // stale
		}
		if g.IsGoal(cur.State) {
			return cur.State, cur.G, true
		}
		edges = g.Edges(cur.State, edges[:0])
		for _, e := range edges {
			if e.To == cur.State || closed.Contains(e.To) {
				continue
			}
			ng := cur.G + e.Cost
			if old, seen := parents.Get(e.To); seen && old <= ng {
				continue
			}
			parents.Insert(e.To, ng, cur.State)
			open.Push(Node[S]{State: e.To, G: ng, F: ng + e.H})
		}
		closed.Insert(cur.State)
	}
	var zero S
	return zero, 0, false
}

// BFS walks the unweighted graph defined by next from start and returns
// the first state for which isGoal is true along with its distance in
// edges. next appends the neighbours of a state to its second argument.
func BFS[S comparable](start S, isGoal func(S) bool, next func(S, []S) []S) (goal S, steps int, ok bool) {
	type item struct {
		s S
		d int
	}
	seen := map[S]bool{start: true}
	q := NewQueue(item{start, 0})
	var buf []S
	for it, more := q.Pop(); more; it, more = q.Pop() {
		if isGoal(it.s) {
			return it.s, it.d, true
		}
		buf = next(it.s, buf[:0])
		for _, n := range buf {
			if seen[n] {
				continue
			}
			seen[n] = true
			q.Push(item{n, it.d + 1})
		}
	}
	var zero S
	return zero, 0, false
}

// ClosedMap is a ClosedSet backed by a map.
type ClosedMap[S comparable] map[S]struct{}

func (m ClosedMap[S]) Contains(s S) bool {
	_, ok := m[s]
	return ok
}

func (m ClosedMap[S]) Insert(s S) {
	m[s] = struct{}{}
}

// IndexedSet is a ClosedSet over a BitSet for state spaces that can be
// numbered densely up front.
type IndexedSet[S any] struct {
	bits  *BitSet
	index func(S) int
}

// NewIndexedSet returns a set for states whose index lies in [0, capacity).
func NewIndexedSet[S any](capacity int, index func(S) int) *IndexedSet[S] {
	return &IndexedSet[S]{
		bits:  NewBitSet(capacity),
		index: index,
	}
}

func (s *IndexedSet[S]) Contains(v S) bool { return s.bits.Contains(s.index(v)) }
func (s *IndexedSet[S]) Insert(v S)        { s.bits.Insert(s.index(v)) }
func (s *IndexedSet[S]) Len() int          { return s.bits.Len() }

// NoParents is a ParentSet that records nothing. Use it when only the
// cost of the goal matters.
type NoParents[S any] struct{}

func (NoParents[S]) Get(S) (int, bool) { return 0, false }
func (NoParents[S]) Insert(S, int, S)  {}

type parentEntry[S any] struct {
	g      int
	parent S
}

// ParentMap is a ParentSet that supports path reconstruction.
type ParentMap[S comparable] struct {
	m map[S]parentEntry[S]
}

func NewParentMap[S comparable]() *ParentMap[S] {
	return &ParentMap[S]{m: make(map[S]parentEntry[S])}
}

func (p *ParentMap[S]) Get(s S) (int, bool) {
	e, ok := p.m[s]
	return e.g, ok
}

func (p *ParentMap[S]) Insert(s S, g int, parent S) {
	p.m[s] = parentEntry[S]{g: g, parent: parent}
}

// Path returns the states from the search start to goal, inclusive.
func (p *ParentMap[S]) Path(goal S) []S {
	path := []S{goal}
	for cur := goal; len(path) <= len(p.m); {
		e, ok := p.m[cur]
		if !ok {
			break
		}
		cur = e.parent
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
