package aoc

// LongestPath returns the weight of the heaviest simple path from c.Start
// to c.End, plus c.Cost. ok is false if End cannot be reached.
//
// The search is exhaustive and so exponential in the number of junctions;
// it is meant for graphs that Contract has already shrunk.
func (c *Contracted) LongestPath() (cost int, ok bool) {
	onPath := c.resetPath()
	best := -1
	var visit func(n, g int)
	visit = func(n, g int) {
		if n == c.End {
			best = max(best, g)
			return
		}
		onPath.Insert(n)
		defer onPath.Remove(n)
		for _, a := range c.Adj[n] {
			if !onPath.Contains(a.To) {
				visit(a.To, g+a.Weight)
			}
		}
	}
	visit(c.Start, 0)
	if best < 0 {
		return 0, false
	}
	return c.Cost + best, true
}

// LongestPathStack is LongestPath without recursion. Every frame carries
// its depth; before a frame is expanded, the nodes of the current path at
// that depth or deeper are taken off the path.
func (c *Contracted) LongestPathStack() (cost int, ok bool) {
	type frame struct {
		node, g, depth int
	}
	onPath := c.resetPath()
	var open, path Stack[frame]
	open.Push(frame{node: c.Start})
	best := -1
	for cur, more := open.Pop(); more; cur, more = open.Pop() {
		if cur.node == c.End {
			best = max(best, cur.g)
			continue
		}
		for path.Len() > cur.depth {
			f, _ := path.Pop()
			onPath.Remove(f.node)
		}
		onPath.Insert(cur.node)
		path.Push(cur)
		for _, a := range c.Adj[cur.node] {
			if onPath.Contains(a.To) {
				continue
			}
			open.Push(frame{node: a.To, g: cur.g + a.Weight, depth: cur.depth + 1})
		}
	}
	if best < 0 {
		return 0, false
	}
	return c.Cost + best, true
}

// resetPath returns the on-path set of c, emptied.
func (c *Contracted) resetPath() *BitSet {
	if c.onPath == nil || c.onPath.Cap() != len(c.Adj) {
		c.onPath = NewBitSet(len(c.Adj))
	} else {
		c.onPath.Zero()
	}
	return c.onPath
}
