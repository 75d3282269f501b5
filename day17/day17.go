// Command day17 finds the least heat loss path of a crucible across a city
// block map.
package main

import (
	_ "embed"
	"fmt"

	"github.com/sirupsen/logrus"

	aoc "github.com/maisem/aoc2023"
)

func main() {
	aoc.Run(17, source, &solver{})
}

//go:embed day17.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

/*
want=102

2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533
*/
func (s solver) P1() (int, error) {
	return s.solve(Variant{MinRun: 0, MaxRun: 3})
}

// want=94
func (s solver) P2() (int, error) {
	return s.solve(Variant{MinRun: 4, MaxRun: 10})
}

func (s solver) solve(v Variant) (int, error) {
	g, err := parseCity(s.Input())
	if err != nil {
		return 0, err
	}
	c := newCrucible(g, v)
	closed := c.closedSet()
	cost, ok := c.minHeatLoss(aoc.NoParents[State]{}, closed)
	if !ok {
		return 0, fmt.Errorf("%w: %v", aoc.ErrNoPath, c.goal)
	}
	s.Log.WithFields(logrus.Fields{
		"min":    v.MinRun,
		"max":    v.MaxRun,
		"closed": closed.Len(),
	}).Debug("search done")
	return cost, nil
}

// parseCity reads a grid of single digit heat loss values.
func parseCity(input []byte) (aoc.Grid[int], error) {
	g, err := aoc.ParseGrid(input)
	if err != nil {
		return nil, err
	}
	return aoc.MapGrid(g, func(p aoc.Pt, c byte) (int, error) {
		d, err := aoc.Digit(c)
		if err != nil {
			return 0, fmt.Errorf("%w at %v", err, p)
		}
		return d, nil
	})
}

// State is where the crucible is, which way it faces and how many blocks
// it has moved in that direction.
type State struct {
	Pos aoc.Pt
	Dir aoc.Direction
	Run int
}

// Variant bounds the straight runs of a crucible. It must move at least
// MinRun blocks before turning or stopping, and at most MaxRun blocks
// before turning. MaxRun <= 0 means no upper bound.
type Variant struct {
	MinRun, MaxRun int
}

func (v Variant) bounded() bool { return v.MaxRun > 0 }

type crucible struct {
	grid aoc.Grid[int]
	goal aoc.Pt
	v    Variant
}

func newCrucible(g aoc.Grid[int], v Variant) *crucible {
	size := g.Size()
	return &crucible{
		grid: g,
		goal: aoc.Pt{X: size.X - 1, Y: size.Y - 1},
		v:    v,
	}
}

// start is the top left block facing right. With a run of zero both right
// and down are legal first moves.
func (c *crucible) start() aoc.Node[State] {
	return aoc.Node[State]{
		State: State{Dir: aoc.Right},
		F:     aoc.Pt{}.MDist(c.goal),
	}
}

func (c *crucible) IsGoal(s State) bool {
	return s.Pos == c.goal && s.Run >= c.v.MinRun
}

func (c *crucible) Edges(s State, out []aoc.Edge[State]) []aoc.Edge[State] {
	if !c.v.bounded() || s.Run < c.v.MaxRun {
		out = c.move(s, s.Dir, s.Run+1, out)
	}
	if s.Run == 0 || s.Run >= c.v.MinRun {
		out = c.move(s, s.Dir.TurnLeft(), 1, out)
		out = c.move(s, s.Dir.TurnRight(), 1, out)
	}
	return out
}

func (c *crucible) move(s State, d aoc.Direction, run int, out []aoc.Edge[State]) []aoc.Edge[State] {
	p := s.Pos.Move(d)
	heat, ok := c.grid.AtOk(p)
	if !ok {
		return out
	}
	return append(out, aoc.Edge[State]{
		To:   State{Pos: p, Dir: d, Run: run},
		Cost: heat,
		H:    p.MDist(c.goal),
	})
}

// closedSet returns a dense closed set when runs are bounded and a map
// otherwise.
func (c *crucible) closedSet() interface {
	aoc.ClosedSet[State]
	Len() int
} {
	if !c.v.bounded() {
		return closedMap{aoc.ClosedMap[State]{}}
	}
	size := c.grid.Size()
	runs := c.v.MaxRun + 1
	return aoc.NewIndexedSet(size.X*size.Y*4*runs, func(s State) int {
		return (c.grid.Index(s.Pos)*4+int(s.Dir))*runs + s.Run
	})
}

type closedMap struct {
	aoc.ClosedMap[State]
}

func (m closedMap) Len() int { return len(m.ClosedMap) }

func (c *crucible) minHeatLoss(parents aoc.ParentSet[State], closed aoc.ClosedSet[State]) (int, bool) {
	_, cost, ok := aoc.AStar[State](c.start(), c, parents, closed)
	return cost, ok
}
