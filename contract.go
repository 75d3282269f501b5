package aoc

import (
	"fmt"
	"slices"

	"golang.org/x/exp/maps"
	"tailscale.com/util/deephash"
)

// RawGraph is a graph of densely numbered cells that Contract can walk.
type RawGraph interface {
	// Len is the number of cells. Cells are numbered 0..Len()-1.
	Len() int
	// Steps appends the moves from cell to cells not in closed and
	// returns the number of open neighbours of cell, closed or not.
	Steps(cell int, closed *BitSet, out []Step) ([]Step, int)
}

// Step is a move between two cells, or a whole corridor once walked.
type Step struct {
	To       int
	Cost     int
	Forward  bool // usable from the origin towards To
	Backward bool // usable from To back to the origin
}

// Arc is an outgoing edge in a Contracted graph.
type Arc struct {
	To, Weight int
}

// Contracted is a graph of junctions produced by Contract. Nodes are
// numbered 0..len(Adj)-1.
type Contracted struct {
	Start, End int
	Adj        [][]Arc
	// Cost is the weight of the corridors folded into Start and End. It is
	// included in the results of LongestPath and LongestPathStack.
	Cost int
	// Cells maps a node to the raw cell it was built from.
	Cells []int

	onPath *BitSet
}

// Arcs returns the number of arcs in c.
func (c *Contracted) Arcs() int {
	n := 0
	for _, a := range c.Adj {
		n += len(a)
	}
	return n
}

// Fingerprint hashes the structure of c.
func (c *Contracted) Fingerprint() deephash.Sum {
	v := struct {
		Start, End, Cost int
		Adj              [][]Arc
		Cells            []int
	}{c.Start, c.End, c.Cost, c.Adj, c.Cells}
	return deephash.Hash(&v)
}

// Contract collapses the corridors of raw between start and end into
// weighted edges between junctions, cells whose number of open neighbours
// is not two. It returns the undirected graph, which ignores the Forward
// and Backward flags of the steps, and the directed graph, which honours
// them. Parallel edges between the same junctions are combined with merge.
func Contract(raw RawGraph, start, end int, merge Merge) (undirected, directed *Contracted, err error) {
	if start == end {
		return nil, nil, fmt.Errorf("%w: cell %d", ErrDegenerate, start)
	}
	c := &contractor{
		raw:      raw,
		end:      end,
		closed:   NewBitSet(raw.Len()),
		explored: NewBitSet(raw.Len()),
		ids:      make(map[int]int),
	}
	startID, endID := c.id(start), c.id(end)
	var und, dir Graph[int]
	und.AddNode(startID)
	und.AddNode(endID)

	q := NewQueue(start)
	c.explored.Insert(start)
	var steps []Step
	for cell, ok := q.Pop(); ok; cell, ok = q.Pop() {
		id := c.id(cell)
		c.closed.Insert(cell)
		var degree int
		steps, degree = c.walk(cell, steps[:0])
		if cell != start && degree < 2 && (len(steps) == 0 || steps[0].To != end) {
			continue // dead end
		}
		for _, s := range steps {
			to := c.id(s.To)
			if s.To != end && !c.explored.Contains(s.To) {
				q.Push(s.To)
				c.explored.Insert(s.To)
			}
			und.AddEdge(id, to, s.Cost, merge)
			if s.Forward {
				dir.AddArc(id, to, s.Cost, merge)
			}
			if s.Backward {
				dir.AddArc(to, id, s.Cost, merge)
			}
		}
	}

	pruneStubs(&und, &dir, startID, endID)
	nodes := maps.Keys(und.Nodes)
	slices.Sort(nodes)
	undirected = c.build(&und, nodes, fold(&und, &und, startID, endID))
	directed = c.build(&dir, nodes, fold(&und, &dir, startID, endID))
	return undirected, directed, nil
}

type contractor struct {
	raw      RawGraph
	end      int
	closed   *BitSet // expanded junctions and walked corridor cells
	explored *BitSet // junctions queued for expansion
	ids      map[int]int
	cells    []int // by id
	scratch  []Step
}

// id returns the node id of cell, allocating one on first use.
func (c *contractor) id(cell int) int {
	if id, ok := c.ids[cell]; ok {
		return id
	}
	id := len(c.cells)
	c.ids[cell] = id
	c.cells = append(c.cells, cell)
	return id
}

// walk follows every step out of the junction at cell through the
// corridor behind it and appends the resulting corridor steps to out.
// It also returns the number of open neighbours of cell.
func (c *contractor) walk(cell int, out []Step) ([]Step, int) {
	out, degree := c.raw.Steps(cell, c.closed, out)
	kept := out[:0]
	for _, cur := range out {
		ok := true
		for cur.To != c.end {
			var n int
			c.scratch, n = c.raw.Steps(cur.To, c.closed, c.scratch[:0])
			if n != 2 {
				break
			}
			c.closed.Insert(cur.To)
			if len(c.scratch) == 0 {
				ok = false // looped back into walked cells
				break
			}
			next := c.scratch[len(c.scratch)-1]
			cur = Step{
				To:       next.To,
				Cost:     cur.Cost + next.Cost,
				Forward:  cur.Forward && next.Forward,
				Backward: cur.Backward && next.Backward,
			}
		}
		if ok {
			kept = append(kept, cur)
		}
	}
	return kept, degree
}

// pruneStubs removes nodes other than start and end that have at most one
// neighbour, repeating until none are left.
func pruneStubs(und, dir *Graph[int], start, end int) {
	for pruned := true; pruned; {
		pruned = false
		for n := range und.Nodes {
			if n == start || n == end || und.Degree(n) > 1 {
				continue
			}
			und.RemoveNode(n)
			dir.RemoveNode(n)
			pruned = true
		}
	}
}

type folding struct {
	start, end int
	cost       int
	drop       map[int]bool
}

// fold moves start and end onto their neighbour when und gives them
// exactly one. g is the graph the result is for; the arc that the fold
// skips over must exist in g and its weight in g is what Cost gains. An
// endpoint is never folded into the other.
func fold(und, g *Graph[int], start, end int) folding {
	f := folding{start: start, end: end, drop: map[int]bool{}}
	if b, _, ok := und.Sole(start); ok && b != end && g.HasArc(start, b) {
		f.start, f.cost = b, f.cost+g.Edges[start][b]
		f.drop[start] = true
	}
	if b, _, ok := und.Sole(end); ok && b != start && g.HasArc(b, end) {
		f.end, f.cost = b, f.cost+g.Edges[b][end]
		f.drop[end] = true
	}
	return f
}

func (c *contractor) build(g *Graph[int], nodes []int, f folding) *Contracted {
	remap := make(map[int]int, len(nodes))
	out := &Contracted{Cost: f.cost}
	for _, n := range nodes {
		if f.drop[n] {
			continue
		}
		remap[n] = len(out.Cells)
		out.Cells = append(out.Cells, c.cells[n])
	}
	out.Adj = make([][]Arc, len(out.Cells))
	for _, n := range nodes {
		from, ok := remap[n]
		if !ok {
			continue
		}
		for _, to := range Neighbors(g, n) {
			if t, ok := remap[to]; ok {
				out.Adj[from] = append(out.Adj[from], Arc{To: t, Weight: g.Edges[n][to]})
			}
		}
	}
	out.Start, out.End = remap[f.start], remap[f.end]
	return out
}
