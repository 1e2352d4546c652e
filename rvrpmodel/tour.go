package rvrpmodel

// Tour is the set of Routes plus all Storages. It carries no behavior
// of its own beyond aggregation and simple counting; construction and
// improvement live in rvrpconstruct, rvrpinsert, and rvrpimprove.
type Tour struct {
	Routes   []*Route
	Storages []*Storage
}

// NewTour constructs a Tour with one empty Route per courier, in
// courier order.
func NewTour(storages []*Storage, couriers []*Courier, startTime int64, circleTrack bool) *Tour {
	t := &Tour{Storages: append([]*Storage(nil), storages...)}
	t.Routes = make([]*Route, len(couriers))
	for i, c := range couriers {
		t.Routes[i] = NewRoute(c, startTime, circleTrack)
	}
	return t
}

// State returns the sum of every Route's cached State.
func (t *Tour) State() State {
	s := ZeroState()
	for _, r := range t.Routes {
		s = s.Add(r.State)
	}
	return s
}

// AssignedJobs counts jobs assigned across every Route.
func (t *Tour) AssignedJobs() int {
	n := 0
	for _, r := range t.Routes {
		n += r.AssignedJobs()
	}
	return n
}

// UnassignedJobs counts jobs still sitting in any Storage's unassigned list.
func (t *Tour) UnassignedJobs() int {
	n := 0
	for _, s := range t.Storages {
		n += len(s.UnassignedJobs)
	}
	return n
}

// FindStorage returns the Storage with the given name, or nil.
func (t *Tour) FindStorage(name string) *Storage {
	for _, s := range t.Storages {
		if s.Name == name {
			return s
		}
	}
	return nil
}
