package aoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGrid(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Pt
		wantErr error
	}{
		{name: "square", in: "ab\ncd\n", want: Pt{2, 2}},
		{name: "no trailing newline", in: "abc\ndef", want: Pt{3, 2}},
		{name: "crlf", in: "ab\r\ncd\r\n\r\n", want: Pt{2, 2}},
		{name: "empty", in: "", wantErr: ErrEmptyGrid},
		{name: "only newlines", in: "\n\n", wantErr: ErrEmptyGrid},
		{name: "ragged", in: "abc\nde\n", wantErr: ErrNonRectangular},
		{name: "blank row", in: "ab\n\ncd\n", wantErr: ErrNonRectangular},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ParseGrid([]byte(tt.in))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, g.Size())
		})
	}
}

func TestGridIndex(t *testing.T) {
	g := MakeGrid[int](4, 3)
	seen := map[int]bool{}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			p := Pt{x, y}
			i := g.Index(p)
			assert.False(t, seen[i], "duplicate index %d", i)
			seen[i] = true
			assert.Equal(t, p, g.PtAt(i))
		}
	}
	assert.Len(t, seen, 12)
}

func TestGridHash(t *testing.T) {
	a, err := ParseGrid([]byte("#.#\n#.#\n"))
	require.NoError(t, err)
	b, err := ParseGrid([]byte("#.#\r\n#.#\r\n"))
	require.NoError(t, err)
	assert.Equal(t, a.Hash(), b.Hash())

	b.Set(Pt{1, 1}, '^')
	assert.NotEqual(t, a.Hash(), b.Hash())
}

func TestMapGrid(t *testing.T) {
	g, err := ParseGrid([]byte("12\n34\n"))
	require.NoError(t, err)
	ints, err := MapGrid(g, func(_ Pt, c byte) (int, error) { return Digit(c) })
	require.NoError(t, err)
	assert.Equal(t, Grid[int]{{1, 2}, {3, 4}}, ints)

	g, err = ParseGrid([]byte("1x\n34\n"))
	require.NoError(t, err)
	_, err = MapGrid(g, func(_ Pt, c byte) (int, error) { return Digit(c) })
	assert.ErrorIs(t, err, ErrBadCell)
}

func TestDirection(t *testing.T) {
	for _, d := range Directions {
		assert.Equal(t, d, d.TurnLeft().TurnRight(), "%v", d)
		assert.Equal(t, d, d.Reverse().Reverse(), "%v", d)
		assert.NotEqual(t, d, d.Reverse(), "%v", d)
		p := Pt{5, 5}
		assert.Equal(t, p, p.Move(d).Move(d.Reverse()), "%v", d)
		assert.Equal(t, 1, p.MDist(p.Move(d)))
	}
	assert.Equal(t, Right, Up.TurnRight())
	assert.Equal(t, Left, Up.TurnLeft())
	assert.Panics(t, func() { Direction(4).Turn(true) })
	assert.Panics(t, func() { Pt{}.Move(Direction(-1)) })
}
