// Package rvrpmodel defines the core entities of a Rich Vehicle Routing
// Problem: Point, Window, Cost, Job, Storage, Courier, Track, Route,
// State, and Tour.
//
// Design goals:
//   - Identity by value where the spec demands it: Job by JobID,
//     Storage/Courier by Name, regardless of pointer identity.
//   - Read-mostly after construction: Jobs, Storages, and Couriers are
//     built once by the caller and mutated afterward only through the
//     engine's migration of a Job between a Storage and a Track.
//   - Deterministic cost: State.Cost is a fixed-point decimal so that
//     tour hashing (see rvrpimprove) is reproducible across platforms.
package rvrpmodel

import "errors"

// Validation / shape errors shared by every package that inspects the
// data model. Do not wrap with fmt.Errorf where a sentinel suffices.
var (
	// ErrEmptyJobID indicates a Job was constructed without an identity.
	ErrEmptyJobID = errors.New("rvrpmodel: empty job id")

	// ErrEmptyStorageName indicates a Storage was constructed without a name.
	ErrEmptyStorageName = errors.New("rvrpmodel: empty storage name")

	// ErrEmptyCourierName indicates a Courier was constructed without a name.
	ErrEmptyCourierName = errors.New("rvrpmodel: empty courier name")

	// ErrDimensionMismatch indicates a load/capacity vector has the wrong length.
	ErrDimensionMismatch = errors.New("rvrpmodel: load vector dimension mismatch")

	// ErrNoWindows indicates a Job was constructed with an empty time-window list.
	ErrNoWindows = errors.New("rvrpmodel: job has no time windows")

	// ErrInvalidWindow indicates a Window's end precedes its start.
	ErrInvalidWindow = errors.New("rvrpmodel: window end precedes start")

	// ErrUnknownStorage is returned when an operation references a Storage
	// not present in the Tour.
	ErrUnknownStorage = errors.New("rvrpmodel: unknown storage")
)
