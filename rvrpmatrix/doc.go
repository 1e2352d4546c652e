// Package rvrpmatrix implements per-profile distance/time lookup
// tables: a (possibly time-sliced) pair of dense integer tables
// indexed by (src, dst, slice).
//
// A lookup Time(src, dst, now)/Distance(src, dst, now) selects the
// slice covering now: slice = clamp((now-start)/discreteness). If the
// matrix carries only a single slice, that slice is used regardless of
// now. Requests beyond EndTime return Unroutable, which callers must
// treat as infeasible — see rvrpeval.
//
// Tables are stored as dense []int64, linearized as
// slice*n*n + src*n + dst, mirroring the teacher's matrix/dense.go
// cache-friendly layout and tsp/two_opt.go's w[i*n+j] prefetch idiom.
package rvrpmatrix

import "errors"

// Unroutable is the sentinel distance/time value meaning "no route
// exists for this (src, dst, now)". Evaluators must treat it as
// infeasible, never as a numeric cost.
const Unroutable int64 = -1

var (
	// ErrNonSquare indicates a supplied table is not n×n.
	ErrNonSquare = errors.New("rvrpmatrix: table is not square")

	// ErrDimensionMismatch indicates distance and time tables disagree in shape.
	ErrDimensionMismatch = errors.New("rvrpmatrix: distance/time table dimension mismatch")

	// ErrOutOfRange indicates a src/dst index outside [0, n).
	ErrOutOfRange = errors.New("rvrpmatrix: index out of range")

	// ErrEmptyProfile indicates a Matrix was constructed without a profile name.
	ErrEmptyProfile = errors.New("rvrpmatrix: empty profile name")

	// ErrNoSlices indicates a time-sliced matrix was built with zero slices.
	ErrNoSlices = errors.New("rvrpmatrix: no time slices supplied")
)
