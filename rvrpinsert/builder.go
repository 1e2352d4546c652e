package rvrpinsert

import (
	"github.com/DmitryPl/rvrp-go/rvrpeval"
	"github.com/DmitryPl/rvrp-go/rvrpmodel"
	"github.com/DmitryPl/rvrp-go/rvrpseq"
)

// Builder performs priority-tiered best-insertion over a Tour.
type Builder struct {
	Problem *rvrpeval.Problem
	// IgnorePriority disables tiering: every unassigned Job is eligible
	// on every sweep, regardless of Job.Priority.
	IgnorePriority bool
}

// NewBuilder constructs a Builder over problem.
func NewBuilder(problem *rvrpeval.Problem, ignorePriority bool) *Builder {
	return &Builder{Problem: problem, IgnorePriority: ignorePriority}
}

// RouteFilter reports whether route should be considered for
// insertion. A nil filter considers every Route.
type RouteFilter func(route *rvrpmodel.Route) bool

type placementKind int

const (
	placeIntoTrack placementKind = iota
	placeNewTrack
)

type placement struct {
	kind     placementKind
	routeIdx int
	trackIdx int // placeIntoTrack: which Track; placeNewTrack: insertion position among Tracks
	jobIdx   int // placeIntoTrack: position within the Track's Jobs
	delta    rvrpmodel.State
}

// InsertAll repeatedly inserts the single cheapest feasible placement
// across every unassigned Job, advancing priority tiers as each tier
// is exhausted, until no Job at any remaining tier can be placed. It
// reports whether at least one Job was inserted.
func (b *Builder) InsertAll(tour *rvrpmodel.Tour, filter RouteFilter) (bool, error) {
	anyInserted := false
	maxPriority := 0
	if !b.IgnorePriority {
		maxPriority = maxPriorityOf(tour)
	}

	current := 0
	for {
		changed, err := b.insertBest(tour, current, filter)
		if err != nil {
			return anyInserted, err
		}
		if changed {
			anyInserted = true
			continue
		}
		if b.IgnorePriority || current >= maxPriority {
			break
		}
		current++
	}
	return anyInserted, nil
}

func maxPriorityOf(tour *rvrpmodel.Tour) int {
	max := 0
	for _, storage := range tour.Storages {
		for _, job := range storage.UnassignedJobs {
			if job.Priority > max {
				max = job.Priority
			}
		}
	}
	return max
}

// insertBest finds and commits the single cheapest placement among all
// unassigned Jobs at currentPriority, mirroring insert_best.
func (b *Builder) insertBest(tour *rvrpmodel.Tour, currentPriority int, filter RouteFilter) (bool, error) {
	var best *placement
	var bestStorage *rvrpmodel.Storage
	var bestJobIdx int

	for _, storage := range tour.Storages {
		for ji, job := range storage.UnassignedJobs {
			if !b.IgnorePriority && job.Priority != currentPriority {
				continue
			}
			p, err := b.bestPlacementForJob(tour, job, storage, filter)
			if err != nil {
				return false, err
			}
			if p == nil {
				continue
			}
			if best == nil || p.delta.Less(best.delta) {
				best, bestStorage, bestJobIdx = p, storage, ji
			}
		}
	}

	if best == nil {
		return false, nil
	}

	job := bestStorage.UnassignedJobs[bestJobIdx]
	route := tour.Routes[best.routeIdx]

	switch best.kind {
	case placeNewTrack:
		route.Tracks = insertTrackAt(route.Tracks, best.trackIdx, rvrpmodel.NewTrackWithJob(job, bestStorage))
	case placeIntoTrack:
		track := route.Tracks[best.trackIdx]
		newJobs, err := rvrpseq.Insert(best.jobIdx, job, track.Jobs)
		if err != nil {
			return false, err
		}
		track.Jobs = newJobs
	}

	newState, err := b.Problem.Evaluate(route)
	if err != nil {
		return false, err
	}
	route.State = newState
	bestStorage.RemoveUnassigned(job)
	return true, nil
}

// bestPlacementForJob scores every insert-into-track and insert-new-track
// candidate for job across every eligible Route, returning the one with
// the smallest resulting State delta, mirroring choose_best.
func (b *Builder) bestPlacementForJob(tour *rvrpmodel.Tour, job *rvrpmodel.Job, storage *rvrpmodel.Storage, filter RouteFilter) (*placement, error) {
	var best *placement

	for ri, route := range tour.Routes {
		if filter != nil && !filter(route) {
			continue
		}
		courier := route.Courier
		if rvrpeval.ValidateStorage(storage, courier) != nil {
			continue
		}
		if rvrpeval.ValidateJobSkills(job, courier) != nil {
			continue
		}

		for ti, track := range route.Tracks {
			if track.Storage != storage {
				continue
			}
			for k := 0; k <= len(track.Jobs); k++ {
				clone := route.Clone()
				newJobs, err := rvrpseq.Insert(k, job, clone.Tracks[ti].Jobs)
				if err != nil {
					continue
				}
				clone.Tracks[ti].Jobs = newJobs
				newState, err := b.Problem.Evaluate(clone)
				if err != nil {
					continue
				}
				delta := newState.Sub(route.State)
				if best == nil || delta.Less(best.delta) {
					best = &placement{kind: placeIntoTrack, routeIdx: ri, trackIdx: ti, jobIdx: k, delta: delta}
				}
			}
		}

		positions := 1
		if len(route.Tracks) > 0 {
			positions = len(route.Tracks) + 1
		}
		for p := 0; p < positions; p++ {
			clone := route.Clone()
			clone.Tracks = insertTrackAt(clone.Tracks, p, rvrpmodel.NewTrackWithJob(job, storage))
			newState, err := b.Problem.Evaluate(clone)
			if err != nil {
				continue
			}
			delta := newState.Sub(route.State)
			if best == nil || delta.Less(best.delta) {
				best = &placement{kind: placeNewTrack, routeIdx: ri, trackIdx: p, delta: delta}
			}
		}
	}

	return best, nil
}

func insertTrackAt(tracks []*rvrpmodel.Track, idx int, t *rvrpmodel.Track) []*rvrpmodel.Track {
	out := make([]*rvrpmodel.Track, 0, len(tracks)+1)
	out = append(out, tracks[:idx]...)
	out = append(out, t)
	out = append(out, tracks[idx:]...)
	return out
}
