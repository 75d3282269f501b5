package aoc

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSample(t *testing.T) {
	tests := []struct {
		comment string
		want    sample
		wantOK  bool
	}{
		{
			comment: `/*
want=1

some-input
*/`,
			want: sample{
				want: "1",
				input: `some-input
`,
			},
			wantOK: true,
		},
		{
			comment: `/*
want=1234

multi-line-input
other-line
other-line-2
*/`,
			want: sample{
				want: "1234",
				input: `multi-line-input
other-line
other-line-2
`,
			},
			wantOK: true,
		},
		{
			comment: `// want=154`,
			want:    sample{want: "154"},
			wantOK:  true,
		},
		{
			comment: `// P1 solves part one.`,
		},
	}

	for _, tt := range tests {
		got, ok := parseSample(tt.comment)
		assert.Equal(t, tt.wantOK, ok, "%q", tt.comment)
		assert.Equal(t, tt.want, got, "%q", tt.comment)
	}
}

const sumSource = `package main

/*
want=6

1
2
3
*/
func (s solver) P1() (int, error) { return 0, nil }

// want=3
func (s solver) P2() (int, error) { return 0, nil }
`

type sumSolver struct {
	*Puzzle
}

func (s sumSolver) nums() ([]int, error) {
	var out []int
	for _, f := range bytes.Fields(s.Input()) {
		n, err := strconv.Atoi(string(f))
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func (s sumSolver) P1() (int, error) {
	nums, err := s.nums()
	if err != nil {
		return 0, err
	}
	s.Debugf("summing %d numbers", len(nums))
	return Sum(nums...), nil
}

func (s sumSolver) P2() (int, error) {
	nums, err := s.nums()
	return len(nums), err
}

func TestExtractSamples(t *testing.T) {
	samples, err := extractSamples([]byte(sumSource))
	require.NoError(t, err)
	assert.Equal(t, map[string]sample{
		"P1": {want: "6", input: "1\n2\n3\n"},
		"P2": {want: "3", input: "1\n2\n3\n"},
	}, samples)

	_, err = extractSamples([]byte("not go"))
	assert.Error(t, err)
}

func TestExtractParts(t *testing.T) {
	parts, err := extractParts(&sumSolver{})
	require.NoError(t, err)
	require.Len(t, parts, 2)
	assert.Equal(t, 1, parts[0].Part)
	assert.Equal(t, "P2", parts[1].Name)

	_, err = extractParts(&struct{ *Puzzle }{})
	assert.Error(t, err)
}

func testRun(t *testing.T, cfg config, input string) (string, error) {
	t.Helper()
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.DebugLevel)
	cfg.inputPath = filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(cfg.inputPath, []byte(input), 0644))
	var out bytes.Buffer
	err := run(&out, logrus.NewEntry(l), cfg, 1, []byte(sumSource), &sumSolver{})
	return out.String(), err
}

func TestRun(t *testing.T) {
	got, err := testRun(t, config{}, "10\n20\n")
	require.NoError(t, err)
	assert.Equal(t, "Part 1: 30\nPart 2: 2\n", got)

	got, err = testRun(t, config{skipSample: true}, "5\n")
	require.NoError(t, err)
	assert.Equal(t, "Part 1: 5\nPart 2: 1\n", got)

	got, err = testRun(t, config{onlySample: true}, "")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRunErrors(t *testing.T) {
	got, err := testRun(t, config{}, "10\nx\n")
	assert.Error(t, err)
	assert.Empty(t, got, "nothing is printed unless every part succeeds")

	var out bytes.Buffer
	l := logrus.New()
	l.SetOutput(io.Discard)
	bad := []byte("package main\n\n// want=7\nfunc (s solver) P1() (int, error) { return 0, nil }\n")
	err = run(&out, logrus.NewEntry(l), config{onlySample: true}, 1, bad, &sumSolver{})
	assert.ErrorIs(t, err, ErrSampleMismatch)

	err = run(&out, logrus.NewEntry(l), config{}, 1, nil, sumSolver{})
	assert.Error(t, err)

	err = run(&out, logrus.NewEntry(l), config{skipSample: true, inputPath: filepath.Join(t.TempDir(), "missing")}, 1, nil, &sumSolver{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}
