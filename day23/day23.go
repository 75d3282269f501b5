// Command day23 finds the longest hike through a maze of paths and slopes.
package main

import (
	_ "embed"
	"fmt"

	"github.com/sirupsen/logrus"
	"tailscale.com/util/deephash"

	aoc "github.com/maisem/aoc2023"
)

func main() {
	aoc.Run(23, source, newSolver())
}

//go:embed day23.go
var source []byte

type solver struct {
	*aoc.Puzzle

	// contracted holds both graphs of every maze seen, by grid hash. P1
	// and P2 run on copies of the solver and share it.
	contracted map[deephash.Sum]graphs
}

type graphs struct {
	undirected, directed *aoc.Contracted
}

func newSolver() *solver {
	return &solver{contracted: make(map[deephash.Sum]graphs)}
}

/*
want=94

#.#####################
#.......#########...###
#######.#########.#.###
###.....#.>.>.###.#.###
###v#####.#v#.###.#.###
###.>...#.#.#.....#...#
###v###.#.#.#########.#
###...#.#.#.......#...#
#####.#.#.#######.#.###
#.....#.#.#.......#...#
#.#####.#.#.#########v#
#.#...#...#...###...>.#
#.#.#v#######v###.###v#
#...#.>.#...>.>.#.###.#
#####v#.#.###v#.#.###.#
#.....#...#...#.#.#...#
#.#########.###.#.#.###
#...###...#...#...#.###
###.###.#.###v#####v###
#...#...#.#.>.>.#.>.###
#.###.###.#.###.#.#v###
#.....###...###...#...#
#####################.#
*/
func (s solver) P1() (int, error) {
	_, directed, err := s.contract()
	if err != nil {
		return 0, err
	}
	return longest(directed)
}

// want=154
func (s solver) P2() (int, error) {
	undirected, _, err := s.contract()
	if err != nil {
		return 0, err
	}
	return longest(undirected)
}

func (s solver) contract() (undirected, directed *aoc.Contracted, err error) {
	m, err := aoc.ParseSlopeMaze(s.Input())
	if err != nil {
		return nil, nil, err
	}
	key := m.Grid.Hash()
	if g, ok := s.contracted[key]; ok {
		return g.undirected, g.directed, nil
	}
	steps, err := reachable(m)
	if err != nil {
		return nil, nil, err
	}
	start, end := m.Cells()
	undirected, directed, err = aoc.Contract(m, start, end, aoc.KeepLongest)
	if err != nil {
		return nil, nil, err
	}
	for i, c := range []*aoc.Contracted{undirected, directed} {
		s.Log.WithFields(logrus.Fields{
			"directed":    i == 1,
			"nodes":       len(c.Adj),
			"arcs":        c.Arcs(),
			"fingerprint": c.Fingerprint(),
		}).Debug("contracted")
	}
	s.Debugf("shortest walk ignoring slopes: %d steps", steps)
	s.contracted[key] = graphs{undirected, directed}
	return undirected, directed, nil
}

// reachable reports the length of the shortest walk from start to end
// ignoring slopes, or ErrNoPath if there is none.
func reachable(m *aoc.SlopeMaze) (int, error) {
	_, steps, ok := aoc.BFS(m.Start, func(p aoc.Pt) bool { return p == m.End }, m.Open)
	if !ok {
		return 0, fmt.Errorf("%w: %v to %v", aoc.ErrNoPath, m.Start, m.End)
	}
	return steps, nil
}

func longest(c *aoc.Contracted) (int, error) {
	n, ok := c.LongestPath()
	if !ok {
		return 0, fmt.Errorf("%w: no simple path honours the slopes", aoc.ErrNoPath)
	}
	return n, nil
}
