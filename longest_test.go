package aoc

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// undirected builds a Contracted from undirected weighted edges.
func undirected(n, start, end, cost int, edges [][3]int) *Contracted {
	c := &Contracted{Start: start, End: end, Cost: cost, Adj: make([][]Arc, n)}
	for _, e := range edges {
		c.Adj[e[0]] = append(c.Adj[e[0]], Arc{To: e[1], Weight: e[2]})
		c.Adj[e[1]] = append(c.Adj[e[1]], Arc{To: e[0], Weight: e[2]})
	}
	return c
}

func TestLongestPath(t *testing.T) {
	tests := []struct {
		name   string
		c      *Contracted
		want   int
		wantOK bool
	}{
		{
			name: "diamond",
			c: undirected(4, 0, 3, 0, [][3]int{
				{0, 1, 1}, {0, 2, 5}, {1, 3, 10}, {2, 3, 1}, {1, 2, 1},
			}),
			want:   16,
			wantOK: true,
		},
		{
			name: "folded cost",
			c: undirected(4, 0, 3, 4, [][3]int{
				{0, 1, 1}, {0, 2, 5}, {1, 3, 10}, {2, 3, 1}, {1, 2, 1},
			}),
			want:   20,
			wantOK: true,
		},
		{
			name:   "single node",
			c:      undirected(1, 0, 0, 9, nil),
			want:   9,
			wantOK: true,
		},
		{
			name:   "unreachable",
			c:      undirected(3, 0, 2, 0, [][3]int{{0, 1, 4}}),
			wantOK: false,
		},
		{
			name: "directed",
			c: &Contracted{Start: 0, End: 2, Adj: [][]Arc{
				{{To: 1, Weight: 2}},
				{{To: 2, Weight: 3}},
				{{To: 0, Weight: 100}},
			}},
			want:   5,
			wantOK: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.c.LongestPath()
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
			got, ok = tt.c.LongestPathStack()
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestLongestPathStackAgrees(t *testing.T) {
	r := rand.New(rand.NewSource(23))
	for i := 0; i < 50; i++ {
		n := 2 + r.Intn(8)
		var edges [][3]int
		for a := 0; a < n; a++ {
			for b := a + 1; b < n; b++ {
				if r.Intn(3) == 0 {
					edges = append(edges, [3]int{a, b, 1 + r.Intn(9)})
				}
			}
		}
		c := undirected(n, 0, n-1, 0, edges)
		want, wantOK := c.LongestPath()
		got, ok := c.LongestPathStack()
		require.Equal(t, wantOK, ok, "graph %d: %v", i, edges)
		assert.Equal(t, want, got, "graph %d: %v", i, edges)

		// A second run reuses the on-path set.
		again, _ := c.LongestPath()
		assert.Equal(t, want, again)
	}
}
