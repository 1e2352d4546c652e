package rvrpmodel

// Job is a unit of work bound to exactly one Storage. Identity is by
// JobID; two Jobs are equal iff their JobID matches, regardless of
// pointer identity or any other field.
type Job struct {
	JobID       string
	Delay       int64    // service time in seconds
	Priority    int      // 0 is highest priority
	Value       []int64  // multidimensional load vector, nonnegative
	Skills      []string // required skill tags
	Location    Point
	TimeWindows []Window // nonempty; at least one admissible arrival window
}

// NewJob validates and constructs a Job.
func NewJob(jobID string, delay int64, priority int, value []int64, skills []string, location Point, windows []Window) (*Job, error) {
	if jobID == "" {
		return nil, ErrEmptyJobID
	}
	if len(windows) == 0 {
		return nil, ErrNoWindows
	}
	return &Job{
		JobID:       jobID,
		Delay:       delay,
		Priority:    priority,
		Value:       value,
		Skills:      append([]string(nil), skills...),
		Location:    location,
		TimeWindows: append([]Window(nil), windows...),
	}, nil
}

// Equal reports whether two Jobs share the same identity.
func (j *Job) Equal(other *Job) bool {
	if j == nil || other == nil {
		return j == other
	}
	return j.JobID == other.JobID
}

// HasSkills reports whether the Job's required skills are a subset of
// the given capability set.
func (j *Job) HasSkills(capabilities map[string]struct{}) bool {
	for _, s := range j.Skills {
		if _, ok := capabilities[s]; !ok {
			return false
		}
	}
	return true
}
