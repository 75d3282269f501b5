package aoc

import "fmt"

// SlopeMaze is a grid of walls (#), floor (.) and slopes (^ > v <). A
// slope can only be left in the direction it points.
type SlopeMaze struct {
	Grid       Grid[byte]
	Start, End Pt
}

// ParseSlopeMaze reads a maze whose start is the first floor cell of the
// top row and whose end is the first floor cell of the bottom row.
func ParseSlopeMaze(input []byte) (*SlopeMaze, error) {
	g, err := ParseGrid(input)
	if err != nil {
		return nil, err
	}
	for y, row := range g {
		for x, c := range row {
			if _, ok := slopeDir(c); !ok && c != '#' && c != '.' {
				return nil, fmt.Errorf("%w: %q at %v", ErrBadCell, c, Pt{x, y})
			}
		}
	}
	m := &SlopeMaze{Grid: g}
	var ok bool
	if m.Start, ok = firstFloor(g, 0); !ok {
		return nil, ErrNoStart
	}
	if m.End, ok = firstFloor(g, len(g)-1); !ok {
		return nil, ErrNoEnd
	}
	if m.Start == m.End {
		return nil, fmt.Errorf("%w: %v", ErrDegenerate, m.Start)
	}
	return m, nil
}

func firstFloor(g Grid[byte], y int) (Pt, bool) {
	for x, c := range g[y] {
		if c == '.' {
			return Pt{x, y}, true
		}
	}
	return Pt{}, false
}

func slopeDir(c byte) (Direction, bool) {
	switch c {
	case '^':
		return Up, true
	case '>':
		return Right, true
	case 'v':
		return Down, true
	case '<':
		return Left, true
	}
	return 0, false
}

// passable reports whether a cell of kind c may be left heading d.
func passable(c byte, d Direction) bool {
	if c == '.' {
		return true
	}
	sd, ok := slopeDir(c)
	return ok && sd == d
}

// Len implements RawGraph.
func (m *SlopeMaze) Len() int {
	size := m.Grid.Size()
	return size.X * size.Y
}

// Steps implements RawGraph.
func (m *SlopeMaze) Steps(cell int, closed *BitSet, out []Step) ([]Step, int) {
	p := m.Grid.PtAt(cell)
	cur := m.Grid.At(p)
	degree := 0
	for _, d := range Directions {
		np := p.Move(d)
		c, ok := m.Grid.AtOk(np)
		if !ok || c == '#' {
			continue
		}
		degree++
		next := m.Grid.Index(np)
		if closed.Contains(next) {
			continue
		}
		out = append(out, Step{
			To:       next,
			Cost:     1,
			Forward:  passable(cur, d),
			Backward: passable(c, d.Reverse()),
		})
	}
	return out, degree
}

// Cells returns the start and end cell indexes.
func (m *SlopeMaze) Cells() (start, end int) {
	return m.Grid.Index(m.Start), m.Grid.Index(m.End)
}

// Open appends the non-wall neighbours of p to out, ignoring slopes.
func (m *SlopeMaze) Open(p Pt, out []Pt) []Pt {
	for _, d := range Directions {
		np := p.Move(d)
		if c, ok := m.Grid.AtOk(np); ok && c != '#' {
			out = append(out, np)
		}
	}
	return out
}
