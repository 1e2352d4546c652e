package rvrpops

import (
	"time"

	"github.com/DmitryPl/rvrp-go/rvrpeval"
	"github.com/DmitryPl/rvrp-go/rvrpmodel"
	"github.com/DmitryPl/rvrp-go/rvrpseq"
)

// TwoOpt repeatedly reverses the best-improving job segment within
// track, re-evaluating route after every candidate, until no segment
// reversal improves route.State or deadline passes. It reports whether
// any improvement was committed.
func TwoOpt(problem *rvrpeval.Problem, route *rvrpmodel.Route, track *rvrpmodel.Track, deadline time.Time) bool {
	improved := false

	for {
		roundJobs := cloneJobs(track.Jobs)
		bestState := route.State
		bestJobs := roundJobs
		changed := false
		size := len(roundJobs)

		for i := 0; i < size; i++ {
			for j := i + 1; j < size; j++ {
				candidate, err := rvrpseq.Swap(roundJobs, i, j, false)
				if err != nil {
					continue
				}
				track.Jobs = candidate
				newState, err := problem.Evaluate(route)
				track.Jobs = roundJobs
				if err != nil {
					continue
				}
				if newState.Less(bestState) {
					changed = true
					bestState = newState
					bestJobs = candidate
				}
			}
		}

		if !changed {
			track.Jobs = roundJobs
			break
		}
		track.Jobs = bestJobs
		route.State = bestState
		improved = true
		if deadlineExceeded(deadline) {
			break
		}
	}

	return improved
}

// ThreeOpt repeatedly applies the best-improving three-edge
// reconnection within track, across every reconnection variant, until
// no reconnection improves route.State or deadline passes.
func ThreeOpt(problem *rvrpeval.Problem, route *rvrpmodel.Route, track *rvrpmodel.Track, deadline time.Time) bool {
	improved := false
	variants := rvrpseq.AllThreeOptVariants()

	for {
		roundJobs := cloneJobs(track.Jobs)
		bestState := route.State
		bestJobs := roundJobs
		changed := false
		size := len(roundJobs)

		for i := 0; i < size; i++ {
			for j := i + 1; j < size; j++ {
				for k := j + 1; k < size; k++ {
					for _, variant := range variants {
						candidate, err := rvrpseq.ThreeOptExchange(roundJobs, i, j, k, variant)
						if err != nil {
							continue
						}
						track.Jobs = candidate
						newState, err := problem.Evaluate(route)
						track.Jobs = roundJobs
						if err != nil {
							continue
						}
						if newState.Less(bestState) {
							changed = true
							bestState = newState
							bestJobs = candidate
						}
					}
				}
			}
		}

		if !changed {
			track.Jobs = roundJobs
			break
		}
		track.Jobs = bestJobs
		route.State = bestState
		improved = true
		if deadlineExceeded(deadline) {
			break
		}
	}

	return improved
}
