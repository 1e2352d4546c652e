package rvrpmodel

// Route is bound to exactly one Courier and holds an ordered sequence
// of Tracks, a cached State, a start timestamp, and a CircleTrack flag
// that forces each Track to end back at its own depot.
//
// Route.State is a cache: it is recomputed by the evaluator on every
// mutation and must never be trusted across an edit without
// revalidation (see rvrpeval.Problem.Evaluate).
type Route struct {
	Courier     *Courier
	Tracks      []*Track
	State       State
	StartTime   int64
	CircleTrack bool
}

// NewRoute constructs an empty Route for courier.
func NewRoute(courier *Courier, startTime int64, circleTrack bool) *Route {
	return &Route{
		Courier:     courier,
		StartTime:   startTime,
		CircleTrack: circleTrack,
		State:       ZeroState(),
	}
}

// Clone returns a defensive deep-enough copy of the Route: a fresh
// Tracks slice of fresh *Track clones, ready for an operator to mutate
// without affecting the original. Job pointers are shared (Jobs are
// read-only after construction).
func (r *Route) Clone() *Route {
	clone := &Route{
		Courier:     r.Courier,
		State:       r.State,
		StartTime:   r.StartTime,
		CircleTrack: r.CircleTrack,
		Tracks:      make([]*Track, len(r.Tracks)),
	}
	for i, t := range r.Tracks {
		clone.Tracks[i] = t.Clone()
	}
	return clone
}

// AssignedJobs counts jobs across all Tracks of this Route.
func (r *Route) AssignedJobs() int {
	n := 0
	for _, t := range r.Tracks {
		n += len(t.Jobs)
	}
	return n
}

// RemoveEmptyTracks drops Tracks with zero Jobs, in place.
func (r *Route) RemoveEmptyTracks() {
	out := r.Tracks[:0]
	for _, t := range r.Tracks {
		if len(t.Jobs) > 0 {
			out = append(out, t)
		}
	}
	r.Tracks = out
}
