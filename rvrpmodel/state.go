package rvrpmodel

import "github.com/shopspring/decimal"

// State is the cost 4-tuple carried along routes: travel time in
// seconds, distance in meters, monetary cost, and an optional
// cumulative load vector (nil outside of per-track simulation, since
// load is reset at every depot visit and is not a route-wide
// quantity).
//
// Cost is a fixed-point decimal.Decimal rather than a bare float so
// that State equality, ordering, and the tabu hash (see rvrpimprove)
// are exactly reproducible across platforms — the spec explicitly
// flags float-rounding nondeterminism as a hazard for tabu hashing.
type State struct {
	TravelTime int64
	Distance   int64
	Cost       decimal.Decimal
	Load       []int64
}

// ZeroState returns the additive identity State.
func ZeroState() State {
	return State{Cost: decimal.Zero}
}

// Add returns s + rhs. Load vectors are summed element-wise only when
// both are non-nil and of equal length; otherwise the result carries
// a nil Load, since Load is a per-track quantity that callers must
// manage explicitly rather than accumulate across additions.
func (s State) Add(rhs State) State {
	out := State{
		TravelTime: s.TravelTime + rhs.TravelTime,
		Distance:   s.Distance + rhs.Distance,
		Cost:       s.Cost.Add(rhs.Cost),
	}
	if s.Load != nil && rhs.Load != nil && len(s.Load) == len(rhs.Load) {
		out.Load = make([]int64, len(s.Load))
		for i := range s.Load {
			out.Load[i] = s.Load[i] + rhs.Load[i]
		}
	}
	return out
}

// Sub returns s - rhs, mirroring Add's Load handling.
func (s State) Sub(rhs State) State {
	out := State{
		TravelTime: s.TravelTime - rhs.TravelTime,
		Distance:   s.Distance - rhs.Distance,
		Cost:       s.Cost.Sub(rhs.Cost),
	}
	if s.Load != nil && rhs.Load != nil && len(s.Load) == len(rhs.Load) {
		out.Load = make([]int64, len(s.Load))
		for i := range s.Load {
			out.Load[i] = s.Load[i] - rhs.Load[i]
		}
	}
	return out
}

// Less implements the lexicographic ordering used throughout the
// engine: travel time dominates, then monetary cost, then distance.
// This tie-break is deliberate and must stay the sole decision
// function for every operator, insertion, and acceptance rule.
func (s State) Less(rhs State) bool {
	if s.TravelTime != rhs.TravelTime {
		return s.TravelTime < rhs.TravelTime
	}
	if cmp := s.Cost.Cmp(rhs.Cost); cmp != 0 {
		return cmp < 0
	}
	return s.Distance < rhs.Distance
}

// WithLoad returns a copy of s carrying the given load vector.
func (s State) WithLoad(load []int64) State {
	s.Load = load
	return s
}

// CostCents returns the monetary cost scaled to an integer number of
// cents, the fixed-point representation the tabu hash uses (see
// rvrpimprove.TourHash) to guarantee platform-stable hashing.
func (s State) CostCents() int64 {
	return s.Cost.Mul(decimal.New(100, 0)).Round(0).IntPart()
}
