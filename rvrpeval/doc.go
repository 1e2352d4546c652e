// Package rvrpeval implements the route evaluator: the single source
// of truth for feasibility and cost of any Route plan. Every other
// package (rvrpconstruct, rvrpinsert, rvrpops, rvrpimprove) calls
// Problem.Evaluate or the incremental Go*/End helpers rather than
// re-implementing the simulation.
//
// The evaluator walks a Route from its Courier's start Point, through
// each Track (depot visit, reload, jobs, optional depot return), to
// the Courier's end Point, accumulating a running rvrpmodel.State and
// rejecting the plan at the first constraint violation: skills,
// capacity, max distance, work-time window, or an unreachable time
// window on a Job or Storage.
//
// Grounded on original_source/routing/local_search/problem.cpp
// (RvrpProblem::get_state/go_job/go_storage/waiting/validate_courier),
// adapted: the waiting predicate is a non-chained interval test, and
// the fixed per-route start cost is applied exactly once inside
// Evaluate (see spec Open Questions, resolved in SPEC_FULL.md §4.C).
package rvrpeval

import "errors"

// Sentinel infeasibility reasons. Callers treat any of these (or the
// generic ErrInfeasible) as "no result"; the candidate is discarded
// and search continues. These are never panics.
var (
	// ErrInfeasible is the generic infeasibility sentinel.
	ErrInfeasible = errors.New("rvrpeval: infeasible")

	// ErrSkillMismatch indicates the courier lacks a required skill.
	ErrSkillMismatch = errors.New("rvrpeval: skill mismatch")

	// ErrCapacityExceeded indicates the cumulative load would exceed courier capacity.
	ErrCapacityExceeded = errors.New("rvrpeval: capacity exceeded")

	// ErrMaxDistanceExceeded indicates cumulative distance would exceed the courier's max distance.
	ErrMaxDistanceExceeded = errors.New("rvrpeval: max distance exceeded")

	// ErrWorkWindowExceeded indicates the courier's work-time window would be violated.
	ErrWorkWindowExceeded = errors.New("rvrpeval: work window exceeded")

	// ErrWindowUnreachable indicates no time window (job or storage) can still be reached.
	ErrWindowUnreachable = errors.New("rvrpeval: time window unreachable")

	// ErrUnroutable indicates the matrix reported no route for a required leg.
	ErrUnroutable = errors.New("rvrpeval: unroutable matrix entry")

	// ErrStorageNotPermitted indicates a Track's Storage is not among the courier's permitted depots.
	ErrStorageNotPermitted = errors.New("rvrpeval: storage not permitted for courier")

	// ErrUnknownProfile indicates no matrix was registered for the courier's profile.
	ErrUnknownProfile = errors.New("rvrpeval: unknown matrix profile")
)
