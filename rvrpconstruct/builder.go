package rvrpconstruct

import (
	"sort"

	"github.com/DmitryPl/rvrp-go/rvrpeval"
	"github.com/DmitryPl/rvrp-go/rvrpmodel"
)

// Builder grows a Tour's Routes from scratch using the greedy
// construction algorithm, consulting Problem for every feasibility and
// cost decision.
type Builder struct {
	Problem *rvrpeval.Problem
}

// NewBuilder constructs a Builder over problem.
func NewBuilder(problem *rvrpeval.Problem) *Builder {
	return &Builder{Problem: problem}
}

// BuildTour fills every empty Route in tour with Tracks, greedily,
// until no Courier can reach any further unassigned Job.
func (b *Builder) BuildTour(tour *rvrpmodel.Tour) error {
	for _, route := range tour.Routes {
		if err := b.buildRoute(route); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) buildRoute(route *rvrpmodel.Route) error {
	courier := route.Courier
	if _, err := b.Problem.MatrixFor(courier); err != nil {
		return err
	}

	currPoint := courier.StartLocation.MatrixID
	cum := rvrpeval.StartState(courier)

	for {
		track, newCum, newLoad, newPoint, ok, err := b.initTrack(currPoint, cum, route)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		cum, currPoint = newCum, newPoint

		for {
			newCum2, newLoad2, newPoint2, ok2, err2 := b.chooseJob(currPoint, cum, newLoad, track, route)
			if err2 != nil {
				return err2
			}
			if !ok2 {
				break
			}
			cum, newLoad, currPoint = newCum2, newLoad2, newPoint2
		}

		if route.CircleTrack {
			seg, err := b.Problem.ReturnToStorage(cum, currPoint, track.Storage, route)
			if err != nil {
				return err
			}
			cum = addSeg(cum, seg)
			currPoint = track.Storage.Location.MatrixID
		}

		route.Tracks = append(route.Tracks, track)
	}

	if len(route.Tracks) == 0 {
		route.State = rvrpmodel.ZeroState()
		return nil
	}

	segEnd, err := b.Problem.End(cum, currPoint, route)
	if err != nil {
		return err
	}
	final := addSeg(cum, segEnd)
	final.Load = nil
	route.State = final
	return nil
}

// initTrack tries each of the Courier's depots, nearest first, opening
// the first one that both admits a visit and has at least one
// reachable Job, mirroring RvrpProblem::init_track.
func (b *Builder) initTrack(currPoint int, cum rvrpmodel.State, route *rvrpmodel.Route) (*rvrpmodel.Track, rvrpmodel.State, []int64, int, bool, error) {
	courier := route.Courier
	for _, storage := range b.sortedStorages(currPoint, cum, route) {
		if rvrpeval.ValidateStorage(storage, courier) != nil {
			continue
		}
		seg, next, err := b.Problem.GoStorage(cum, currPoint, storage, route)
		if err != nil {
			continue
		}
		track := rvrpmodel.NewTrack(storage)
		afterStorage := addSeg(cum, seg)
		load := make([]int64, len(courier.Capacity))

		newCum, newLoad, newPoint, ok, err := b.chooseJob(next, afterStorage, load, track, route)
		if err != nil {
			return nil, rvrpmodel.State{}, nil, 0, false, err
		}
		if ok {
			return track, newCum, newLoad, newPoint, true, nil
		}
	}
	return nil, rvrpmodel.State{}, nil, 0, false, nil
}

// chooseJob scans storage's remaining UnassignedJobs for the cheapest
// one (by resulting cumulative State) that is feasible now and leaves
// the Courier able to eventually finish the Route, mirroring
// RvrpProblem::choose_job. On success it commits the Job onto track
// and removes it from the Storage's unassigned list.
func (b *Builder) chooseJob(currPoint int, cum rvrpmodel.State, load []int64, track *rvrpmodel.Track, route *rvrpmodel.Route) (rvrpmodel.State, []int64, int, bool, error) {
	storage := track.Storage
	bestIdx := -1
	var bestCum rvrpmodel.State
	var bestLoad []int64
	var bestPoint int
	haveBest := false

	for i, job := range storage.UnassignedJobs {
		seg, next, err := b.Problem.GoJob(cum, load, currPoint, job, storage, route)
		if err != nil {
			continue
		}
		newLoad := addLoad(load, job.Value)
		newCum := addSeg(cum, seg)
		if err := b.Problem.ValidateCourier(newCum.WithLoad(newLoad), route); err != nil {
			continue
		}
		if haveBest && !newCum.Less(bestCum) {
			continue
		}
		if !b.canFinish(newCum, newLoad, next, storage, route) {
			continue
		}

		bestIdx, bestCum, bestLoad, bestPoint = i, newCum, newLoad, next
		haveBest = true
	}

	if bestIdx == -1 {
		return rvrpmodel.State{}, nil, 0, false, nil
	}
	job := storage.UnassignedJobs[bestIdx]
	track.Jobs = append(track.Jobs, job)
	storage.RemoveUnassigned(job)
	return bestCum, bestLoad, bestPoint, true, nil
}

// canFinish probes whether, from cum/currPoint, the Route could still
// close out (CircleTrack return, then the final leg) without
// committing any of the probed state.
func (b *Builder) canFinish(cum rvrpmodel.State, load []int64, currPoint int, storage *rvrpmodel.Storage, route *rvrpmodel.Route) bool {
	if route.CircleTrack {
		seg, err := b.Problem.ReturnToStorage(cum, currPoint, storage, route)
		if err != nil {
			return false
		}
		cum = addSeg(cum, seg)
		currPoint = storage.Location.MatrixID
		if err := b.Problem.ValidateCourier(cum.WithLoad(load), route); err != nil {
			return false
		}
	}
	segEnd, err := b.Problem.End(cum, currPoint, route)
	if err != nil {
		return false
	}
	final := addSeg(cum, segEnd)
	return b.Problem.ValidateCourier(final, route) == nil
}

// sortedStorages returns the Courier's depots that still have
// unassigned Jobs, ordered by ascending travel time from currPoint,
// mirroring RvrpProblem::sorted_storages.
func (b *Builder) sortedStorages(currPoint int, cum rvrpmodel.State, route *rvrpmodel.Route) []*rvrpmodel.Storage {
	courier := route.Courier
	matrix, err := b.Problem.MatrixFor(courier)
	if err != nil {
		return nil
	}
	now := route.StartTime + cum.TravelTime

	type candidate struct {
		travelTime int64
		storage    *rvrpmodel.Storage
	}
	candidates := make([]candidate, 0, len(courier.Storages))
	for _, storage := range courier.Storages {
		if len(storage.UnassignedJobs) == 0 {
			continue
		}
		candidates = append(candidates, candidate{
			travelTime: matrix.Time(currPoint, storage.Location.MatrixID, now),
			storage:    storage,
		})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].travelTime < candidates[j].travelTime
	})

	out := make([]*rvrpmodel.Storage, len(candidates))
	for i, c := range candidates {
		out[i] = c.storage
	}
	return out
}

// addSeg adds a travel-only segment (no Load) to cum, leaving cum's
// own Load untouched — callers track Load explicitly alongside cum
// rather than through State.Add, which only sums Load when both
// operands already carry one of equal length.
func addSeg(cum, seg rvrpmodel.State) rvrpmodel.State {
	return rvrpmodel.State{
		TravelTime: cum.TravelTime + seg.TravelTime,
		Distance:   cum.Distance + seg.Distance,
		Cost:       cum.Cost.Add(seg.Cost),
	}
}

func addLoad(load, value []int64) []int64 {
	out := make([]int64, len(load))
	copy(out, load)
	for i := range value {
		if i < len(out) {
			out[i] += value[i]
		}
	}
	return out
}
