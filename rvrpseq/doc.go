// Package rvrpseq implements the pure sequence-mutation primitives
// shared by every operator in rvrpops: Insert, Swap (segment reversal,
// circular-orientation aware), ThreeOptExchange (the seven 3-opt
// reconnection variants), Cross (range splice between two sequences),
// and ReplacePoint (move a single element between two sequences).
//
// Every function here returns a new slice (or, where explicitly noted,
// mutates in place) and never touches feasibility — that is the
// evaluator's job (rvrpeval). These are adapted from the teacher's
// tsp/two_opt.go (reverseArcInPlace) and tsp/three_opt.go (reconnection
// enumeration), generalized from integer tour indices over a closed
// Hamiltonian cycle to job-pointer slices over a depot-scoped Track,
// which is never closed back on itself by these primitives (Track
// closure, when CircleTrack is set, is the evaluator's concern).
package rvrpseq

import "errors"

var (
	// ErrIndexOutOfRange indicates a position argument fell outside [0, len(seq)].
	ErrIndexOutOfRange = errors.New("rvrpseq: index out of range")

	// ErrInvalidRange indicates a start/end pair did not satisfy start <= end.
	ErrInvalidRange = errors.New("rvrpseq: invalid range")
)
