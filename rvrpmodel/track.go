package rvrpmodel

// Track is a single depot visit: one stop at Storage followed by its
// Jobs, in order, optionally returning to the same Storage (see
// Route.CircleTrack). A Track is defined by its Storage — jobs never
// move across storages.
type Track struct {
	Storage *Storage
	Jobs    []*Job
}

// NewTrack constructs an empty Track bound to storage.
func NewTrack(storage *Storage) *Track {
	return &Track{Storage: storage}
}

// NewTrackWithJob constructs a single-job Track.
func NewTrackWithJob(job *Job, storage *Storage) *Track {
	return &Track{Storage: storage, Jobs: []*Job{job}}
}

// Clone returns a value-independent copy of the Track: a fresh Jobs
// slice pointing at the same Job values (Jobs are read-only after
// construction, so sharing pointers across clones is safe).
func (t *Track) Clone() *Track {
	return &Track{
		Storage: t.Storage,
		Jobs:    append([]*Job(nil), t.Jobs...),
	}
}

// IndexOf returns the position of job within the Track, or -1.
func (t *Track) IndexOf(job *Job) int {
	for i, j := range t.Jobs {
		if j.Equal(job) {
			return i
		}
	}
	return -1
}
