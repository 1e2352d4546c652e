package rvrpmodel

// Storage is a depot: an identity, a load/service duration, required
// skills, a location, a work-time window, and the list of Jobs still
// unassigned to any Track. Jobs may only be served via their owning
// Storage — they are never transferable to another depot.
type Storage struct {
	Name           string
	Load           int64 // service duration in seconds for visiting the depot itself
	Skills         []string
	Location       Point
	WorkTime       Window
	UnassignedJobs []*Job
}

// NewStorage validates and constructs a Storage.
func NewStorage(name string, load int64, skills []string, location Point, workTime Window, unassigned []*Job) (*Storage, error) {
	if name == "" {
		return nil, ErrEmptyStorageName
	}
	return &Storage{
		Name:           name,
		Load:           load,
		Skills:         append([]string(nil), skills...),
		Location:       location,
		WorkTime:       workTime,
		UnassignedJobs: append([]*Job(nil), unassigned...),
	}, nil
}

// SkillSet returns the Storage's required skills as a set, for cheap
// subset checks against a Courier's capabilities.
func (s *Storage) SkillSet() map[string]struct{} {
	set := make(map[string]struct{}, len(s.Skills))
	for _, sk := range s.Skills {
		set[sk] = struct{}{}
	}
	return set
}

// RemoveUnassigned removes job from the unassigned list by identity
// and reports whether it was present.
func (s *Storage) RemoveUnassigned(job *Job) bool {
	for i, j := range s.UnassignedJobs {
		if j.Equal(job) {
			s.UnassignedJobs = append(s.UnassignedJobs[:i], s.UnassignedJobs[i+1:]...)
			return true
		}
	}
	return false
}

// ReturnUnassigned puts job back onto the Storage's unassigned list.
// It is a no-op if the job is already present, preserving the
// invariant that each Job appears at most once across the tour.
func (s *Storage) ReturnUnassigned(job *Job) {
	for _, j := range s.UnassignedJobs {
		if j.Equal(job) {
			return
		}
	}
	s.UnassignedJobs = append(s.UnassignedJobs, job)
}
