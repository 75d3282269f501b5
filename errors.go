package aoc

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or an empty first row.
	ErrEmptyGrid = errors.New("aoc: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("aoc: all rows must have the same length")
	// ErrBadCell indicates a cell the solver does not know how to decode.
	ErrBadCell = errors.New("aoc: unrecognized cell")
	// ErrNoStart indicates the input has no start marker.
	ErrNoStart = errors.New("aoc: no start")
	// ErrNoEnd indicates the input has no end marker.
	ErrNoEnd = errors.New("aoc: no end")
	// ErrDegenerate indicates start and end are the same cell.
	ErrDegenerate = errors.New("aoc: start and end coincide")
	// ErrNoPath indicates the goal cannot be reached.
	ErrNoPath = errors.New("aoc: no path to goal")
)
