package aoc

import (
	"cmp"
	"slices"

	"golang.org/x/exp/maps"
)

// Merge decides the weight kept when an edge is added between two nodes
// that are already connected.
type Merge func(old, next int) int

var (
	// KeepLongest keeps the heavier of two parallel edges.
	KeepLongest Merge = func(old, next int) int { return max(old, next) }
	// KeepShortest keeps the lighter of two parallel edges.
	KeepShortest Merge = func(old, next int) int { return min(old, next) }
)

// Graph is a weighted graph keyed by node. Edges[a][b] is the weight of
// the arc a→b; undirected edges are stored in both directions.
type Graph[K comparable] struct {
	Nodes map[K]bool
	Edges map[K]map[K]int
}

func (g *Graph[K]) AddNode(a K) {
	InitMap(&g.Nodes)
	g.Nodes[a] = true
}

// AddArc adds the directed arc a→b, combining with an existing arc via
// merge.
func (g *Graph[K]) AddArc(a, b K, dist int, merge Merge) {
	InitMap(&g.Edges)
	g.AddNode(a)
	g.AddNode(b)
	if g.Edges[a] == nil {
		g.Edges[a] = make(map[K]int)
	}
	if old, ok := g.Edges[a][b]; ok {
		dist = merge(old, dist)
	}
	g.Edges[a][b] = dist
}

// AddEdge adds the undirected edge a–b.
func (g *Graph[K]) AddEdge(a, b K, dist int, merge Merge) {
	g.AddArc(a, b, dist, merge)
	g.AddArc(b, a, dist, merge)
}

func (g *Graph[K]) RemoveNode(a K) {
	for e := range g.Edges[a] {
		delete(g.Edges[e], a)
	}
	for _, e := range g.Edges {
		delete(e, a)
	}
	delete(g.Edges, a)
	delete(g.Nodes, a)
}

// Degree returns the number of arcs leaving a.
func (g *Graph[K]) Degree(a K) int {
	return len(g.Edges[a])
}

// Sole returns the only neighbour of a and the weight of the arc to it.
// ok is false unless a has exactly one outgoing arc.
func (g *Graph[K]) Sole(a K) (b K, dist int, ok bool) {
	if len(g.Edges[a]) != 1 {
		return b, 0, false
	}
	for k, v := range g.Edges[a] {
		b, dist = k, v
	}
	return b, dist, true
}

// HasArc reports whether the arc a→b exists.
func (g *Graph[K]) HasArc(a, b K) bool {
	_, ok := g.Edges[a][b]
	return ok
}

// Neighbors returns the targets of the arcs leaving a in ascending order.
func Neighbors[K cmp.Ordered](g *Graph[K], a K) []K {
	ks := maps.Keys(g.Edges[a])
	slices.Sort(ks)
	return ks
}

func InitMap[K comparable, V any](m *map[K]V) {
	if *m == nil {
		*m = make(map[K]V)
	}
}
