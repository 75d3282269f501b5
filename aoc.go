// Package aoc holds the grid, graph and search helpers shared by the
// Advent of Code solvers in this module, and the runner they start from.
// (forked from maisem/aoc, itself forked from bradfitz/aoc)
package aoc

import (
	"errors"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"os"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		return sample{want: m[1], input: m[2]}, true
	}
	return sample{}, false
}

// extractSamples returns the samples documented on the functions of src,
// keyed by function name. A sample without input reuses the input of the
// one declared before it.
func extractSamples(src []byte) (map[string]sample, error) {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "solver.go", src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing source to extract samples: %w", err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if !ok {
				continue
			}
			if s.input == "" {
				s.input = lastInput
			}
			samples[fd.Name.Name] = s
			lastInput = s.input
			break
		}
	}
	return samples, nil
}

// Puzzle is what a solver sees of the runner. Solvers embed a *Puzzle
// field named Puzzle, which Run fills in.
type Puzzle struct {
	Day        int
	SampleMode bool
	Log        *logrus.Entry

	input []byte
}

// Input returns the puzzle input, or the sample input of the running part
// in sample mode.
func (p *Puzzle) Input() []byte {
	return p.input
}

// NewPuzzle returns a Puzzle that serves input. Run builds its own; this
// is for driving a solver directly.
func NewPuzzle(day int, input []byte, log *logrus.Entry) *Puzzle {
	return &Puzzle{Day: day, Log: log, input: input}
}

func (p *Puzzle) Debugf(format string, args ...any) {
	p.Log.Debugf(format, args...)
}

type partSolver struct {
	fn   func() (int, error)
	Part int
	Name string
}

var partRx = regexp.MustCompile(`^P(\d+)$`)

// extractParts finds the methods of x named P1, P2, ... and returns them
// ordered by part. They must have the signature func() (int, error).
func extractParts(x any) ([]partSolver, error) {
	v := reflect.ValueOf(x)
	vt := v.Type()
	var parts []partSolver
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		m := partRx.FindStringSubmatch(mn)
		if m == nil {
			continue
		}
		fn, ok := v.Method(i).Interface().(func() (int, error))
		if !ok {
			return nil, fmt.Errorf("solver: %s has type %v; want func() (int, error)", mn, v.Method(i).Type())
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, err
		}
		parts = append(parts, partSolver{fn: fn, Part: n, Name: mn})
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("solver: %T has no P<n> methods", x)
	}
	slices.SortFunc(parts, func(a, b partSolver) int { return a.Part - b.Part })
	return parts, nil
}

var (
	flagDebug      bool
	flagOnlySample bool
	flagSkipSample bool
	flagProfile    bool
	flagInput      string
)

func init() {
	flag.BoolVar(&flagOnlySample, "sample", false, "only run the samples")
	flag.BoolVar(&flagSkipSample, "skip-sample", false, "skip the samples")
	flag.BoolVar(&flagDebug, "debug", false, "log debug output to stderr")
	flag.BoolVar(&flagProfile, "profile", false, "write a CPU profile to the working directory")
	flag.StringVar(&flagInput, "input", "input.txt", "puzzle input file")
}

var initFlags = sync.OnceFunc(flag.Parse)

type config struct {
	inputPath  string
	onlySample bool
	skipSample bool
}

func newLogger(debug bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if debug {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}

// Run solves every part of slvr for the given day, checking the samples
// embedded in src first, and prints one "Part N: answer" line per part once
// all of them are solved. Any failure is fatal.
func Run(day int, src []byte, slvr any) {
	initFlags()
	log := newLogger(flagDebug).WithField("day", day)

	var prof interface{ Stop() }
	if flagProfile {
		prof = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet)
	}
	err := run(os.Stdout, log, config{
		inputPath:  flagInput,
		onlySample: flagOnlySample,
		skipSample: flagSkipSample,
	}, day, src, slvr)
	if prof != nil {
		prof.Stop()
	}
	if err != nil {
		log.Fatal(err)
	}
}

// ErrSampleMismatch is returned when a part disagrees with its sample.
var ErrSampleMismatch = errors.New("aoc: sample answer mismatch")

func run(w io.Writer, log *logrus.Entry, cfg config, day int, src []byte, slvr any) error {
	v := reflect.ValueOf(slvr)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("solver: got %T; want pointer to struct", slvr)
	}
	p := NewPuzzle(day, nil, log)
	field := v.Elem().FieldByName("Puzzle")
	if !field.IsValid() || field.Type() != reflect.TypeOf(p) {
		return fmt.Errorf("solver: %T needs a Puzzle field of type *aoc.Puzzle", slvr)
	}
	// Set before the methods are bound; value receivers copy the struct.
	field.Set(reflect.ValueOf(p))
	parts, err := extractParts(slvr)
	if err != nil {
		return err
	}

	if !cfg.skipSample {
		samples, err := extractSamples(src)
		if err != nil {
			return err
		}
		p.SampleMode = true
		for _, ps := range parts {
			s, ok := samples[ps.Name]
			if !ok {
				log.WithField("part", ps.Part).Warn("no sample")
				continue
			}
			p.input = []byte(s.input)
			p.Log = log.WithFields(logrus.Fields{"part": ps.Part, "sample": true})
			t0 := time.Now()
			got, err := ps.fn()
			if err != nil {
				return fmt.Errorf("part %d sample: %w", ps.Part, err)
			}
			if strconv.Itoa(got) != s.want {
				return fmt.Errorf("%w: part %d: got %d, want %s", ErrSampleMismatch, ps.Part, got, s.want)
			}
			p.Log.WithField("took", time.Since(t0).Round(time.Microsecond)).Info("sample ok")
		}
	}
	if cfg.onlySample {
		return nil
	}

	input, err := os.ReadFile(cfg.inputPath)
	if err != nil {
		return err
	}
	p.SampleMode = false
	p.input = input
	answers := make([]int, len(parts))
	for i, ps := range parts {
		p.Log = log.WithField("part", ps.Part)
		t0 := time.Now()
		if answers[i], err = ps.fn(); err != nil {
			return fmt.Errorf("part %d: %w", ps.Part, err)
		}
		p.Log.WithField("took", time.Since(t0).Round(time.Microsecond)).Debug("solved")
	}
	for i, ps := range parts {
		fmt.Fprintf(w, "Part %d: %d\n", ps.Part, answers[i])
	}
	return nil
}
