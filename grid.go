package aoc

import (
	"bytes"
	"fmt"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

type Grid[T any] [][]T

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if !g.InBounds(p) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

func (g Grid[T]) InBounds(p Pt) bool {
	return len(g) > 0 && p.X >= 0 && p.Y >= 0 && p.X < len(g[0]) && p.Y < len(g)
}

func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// Index returns the row-major index of p.
func (g Grid[T]) Index(p Pt) int {
	return p.Y*len(g[0]) + p.X
}

// PtAt is the inverse of Index.
func (g Grid[T]) PtAt(i int) Pt {
	w := len(g[0])
	return Pt{i % w, i / w}
}

// Hash returns a digest of the contents of g.
func (g Grid[T]) Hash() deephash.Sum {
	return deephash.Hash(&g)
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

// ParseGrid splits input into rows of bytes. Trailing blank lines are
// ignored; the remaining rows must be non-empty and of equal length.
func ParseGrid(input []byte) (Grid[byte], error) {
	input = bytes.ReplaceAll(input, []byte("\r\n"), []byte("\n"))
	lines := bytes.Split(bytes.TrimRight(input, "\n"), []byte("\n"))
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	g := make(Grid[byte], len(lines))
	for y, l := range lines {
		if len(l) != len(lines[0]) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(l), len(lines[0]))
		}
		g[y] = l
	}
	return g, nil
}

// MapGrid converts every cell of g with f, stopping at the first error.
func MapGrid[T, U any](g Grid[T], f func(Pt, T) (U, error)) (Grid[U], error) {
	size := g.Size()
	out := MakeGrid[U](size.X, size.Y)
	for y, row := range g {
		for x, v := range row {
			p := Pt{x, y}
			u, err := f(p, v)
			if err != nil {
				return nil, err
			}
			out.Set(p, u)
		}
	}
	return out, nil
}

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists every Direction clockwise from Up.
var Directions = [...]Direction{Up, Right, Down, Left}

func (d Direction) Turn(right bool) Direction {
	switch d {
	case Up:
		if right {
			return Right
		}
		return Left
	case Right:
		if right {
			return Down
		}
		return Up
	case Down:
		if right {
			return Left
		}
		return Right
	case Left:
		if right {
			return Up
		}
		return Down
	}
	panic(fmt.Sprintf("bad direction %d", int(d)))
}

func (d Direction) TurnLeft() Direction  { return d.Turn(false) }
func (d Direction) TurnRight() Direction { return d.Turn(true) }

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction { return d.Turn(true).Turn(true) }

func (d Direction) String() string {
	switch d {
	case Left:
		return "<"
	case Right:
		return ">"
	case Up:
		return "^"
	case Down:
		return "v"
	}
	return ""
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

// Move returns the point one step from p in direction d.
func (p Pt2[T]) Move(d Direction) Pt2[T] {
	switch d {
	case Up:
		p.Y--
	case Right:
		p.X++
	case Down:
		p.Y++
	case Left:
		p.X--
	default:
		panic(fmt.Sprintf("bad direction %d", int(d)))
	}
	return p
}

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return AbsDiff[T](a.X, b.X) + AbsDiff[T](a.Y, b.Y)
}

func (p Pt2[T]) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
