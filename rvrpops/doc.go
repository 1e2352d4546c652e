// Package rvrpops implements the local-search operators that mutate an
// already-built Tour in place: two intra-track operators (2-opt,
// 3-opt) and three inter-track operators (swap, replace/relocate,
// cross). Every operator re-evaluates candidate Tracks through
// rvrpeval.Problem and only commits a change that strictly improves
// the affected Route(s) under rvrpmodel.State.Less.
//
// Grounded on
// original_source/routing/local_search/operators/intra_operators.cpp
// and inter_operators.cpp, adapted from in-place C++ track mutation +
// RvrpProblem::get_state to Go's explicit clone-evaluate-restore
// pattern (track.Jobs is swapped to a candidate slice, evaluated, then
// restored before trying the next candidate).
package rvrpops

import (
	"errors"
	"time"
)

// ErrDifferentStorage is returned by every inter-Track operator when
// its two Tracks are bound to different Storages — jobs never move
// across depots.
var ErrDifferentStorage = errors.New("rvrpops: tracks bound to different storages")

// deadlineExceeded reports whether deadline is set and has passed. A
// zero deadline means "no deadline" (run to a local optimum).
func deadlineExceeded(deadline time.Time) bool {
	return !deadline.IsZero() && !deadline.After(time.Now())
}

func cloneJobs[T any](in []T) []T {
	return append(make([]T, 0, len(in)), in...)
}
