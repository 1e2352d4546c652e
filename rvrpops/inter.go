package rvrpops

import (
	"time"

	"github.com/DmitryPl/rvrp-go/rvrpeval"
	"github.com/DmitryPl/rvrp-go/rvrpmodel"
	"github.com/DmitryPl/rvrp-go/rvrpseq"
)

// InterSwap repeatedly exchanges the best-improving pair of jobs
// between two same-Storage Tracks in different Routes, until no
// exchange improves the combined State or deadline passes.
func InterSwap(problem *rvrpeval.Problem, route1 *rvrpmodel.Route, track1 *rvrpmodel.Track, route2 *rvrpmodel.Route, track2 *rvrpmodel.Track, deadline time.Time) (bool, error) {
	if track1.Storage != track2.Storage {
		return false, ErrDifferentStorage
	}

	improved := false
	for {
		jobs1 := cloneJobs(track1.Jobs)
		jobs2 := cloneJobs(track2.Jobs)
		bestState1, bestState2 := route1.State, route2.State
		bestCombined := bestState1.Add(bestState2)
		bestI, bestJ := -1, -1
		changed := false

		for i := range jobs1 {
			for j := range jobs2 {
				cand1 := cloneJobs(jobs1)
				cand2 := cloneJobs(jobs2)
				cand1[i], cand2[j] = cand2[j], cand1[i]

				track1.Jobs, track2.Jobs = cand1, cand2
				s1, err1 := problem.Evaluate(route1)
				s2, err2 := problem.Evaluate(route2)
				track1.Jobs, track2.Jobs = jobs1, jobs2
				if err1 != nil || err2 != nil {
					continue
				}

				combined := s1.Add(s2)
				if combined.Less(bestCombined) {
					changed = true
					bestCombined = combined
					bestState1, bestState2 = s1, s2
					bestI, bestJ = i, j
				}
			}
		}

		if !changed {
			track1.Jobs, track2.Jobs = jobs1, jobs2
			break
		}
		jobs1[bestI], jobs2[bestJ] = jobs2[bestJ], jobs1[bestI]
		track1.Jobs, track2.Jobs = jobs1, jobs2
		route1.State, route2.State = bestState1, bestState2
		improved = true
		if deadlineExceeded(deadline) {
			break
		}
	}

	return improved, nil
}

// InterReplace repeatedly relocates the best-improving single job
// between two same-Storage Tracks, alternating direction, until
// neither direction improves the combined State or deadline passes.
func InterReplace(problem *rvrpeval.Problem, route1 *rvrpmodel.Route, track1 *rvrpmodel.Track, route2 *rvrpmodel.Route, track2 *rvrpmodel.Track, deadline time.Time) (bool, error) {
	if track1.Storage != track2.Storage {
		return false, ErrDifferentStorage
	}

	result := false
	for {
		changed1 := relocateBest(problem, route1, track1, route2, track2)
		if deadlineExceeded(deadline) {
			return result || changed1, nil
		}
		changed2 := relocateBest(problem, route2, track2, route1, track1)
		result = result || changed1 || changed2
		if !(changed1 || changed2) || deadlineExceeded(deadline) {
			break
		}
	}
	return result, nil
}

// relocateBest moves the single best-improving job from src into dst,
// trying every destination position, mirroring uns_inter_replace.
func relocateBest(problem *rvrpeval.Problem, dstRoute *rvrpmodel.Route, dst *rvrpmodel.Track, srcRoute *rvrpmodel.Route, src *rvrpmodel.Track) bool {
	dstJobs := cloneJobs(dst.Jobs)
	srcJobs := cloneJobs(src.Jobs)
	bestDstState, bestSrcState := dstRoute.State, srcRoute.State
	bestCombined := bestDstState.Add(bestSrcState)
	var bestDstJobs, bestSrcJobs []*rvrpmodel.Job
	changed := false

	for i := 0; i <= len(dstJobs); i++ {
		for j := range srcJobs {
			candDst, candSrc, err := rvrpseq.ReplacePoint(dstJobs, srcJobs, i, j)
			if err != nil {
				continue
			}
			dst.Jobs, src.Jobs = candDst, candSrc
			dstState, err1 := problem.Evaluate(dstRoute)
			srcState, err2 := problem.Evaluate(srcRoute)
			dst.Jobs, src.Jobs = dstJobs, srcJobs
			if err1 != nil || err2 != nil {
				continue
			}

			combined := dstState.Add(srcState)
			if combined.Less(bestCombined) {
				changed = true
				bestCombined = combined
				bestDstState, bestSrcState = dstState, srcState
				bestDstJobs, bestSrcJobs = candDst, candSrc
			}
		}
	}

	if !changed {
		dst.Jobs, src.Jobs = dstJobs, srcJobs
		return false
	}
	dst.Jobs, src.Jobs = bestDstJobs, bestSrcJobs
	dstRoute.State, srcRoute.State = bestDstState, bestSrcState
	return true
}

// InterCross splices a contiguous job range from each of two
// same-Storage Tracks into the other, committing the first
// improvement found (first-improvement, not best-improvement, per
// inter_cross's early return).
func InterCross(problem *rvrpeval.Problem, route1 *rvrpmodel.Route, track1 *rvrpmodel.Track, route2 *rvrpmodel.Route, track2 *rvrpmodel.Track, deadline time.Time) (bool, error) {
	if track1.Storage != track2.Storage {
		return false, ErrDifferentStorage
	}

	jobs1 := cloneJobs(track1.Jobs)
	jobs2 := cloneJobs(track2.Jobs)
	state := route1.State.Add(route2.State)
	size1, size2 := len(jobs1), len(jobs2)

	for i1 := 0; i1 < size1; i1++ {
		for i2 := i1; i2 < size1; i2++ {
			for i3 := 0; i3 < size2; i3++ {
				for i4 := i3; i4 < size2; i4++ {
					cand1, cand2, err := rvrpseq.Cross(jobs1, jobs2, i1, i2, i3, i4)
					if err != nil {
						continue
					}
					track1.Jobs, track2.Jobs = cand1, cand2
					s1, err1 := problem.Evaluate(route1)
					s2, err2 := problem.Evaluate(route2)
					if err1 != nil || err2 != nil {
						track1.Jobs, track2.Jobs = jobs1, jobs2
						continue
					}

					combined := s1.Add(s2)
					if combined.Less(state) {
						route1.State, route2.State = s1, s2
						return true, nil
					}
					track1.Jobs, track2.Jobs = jobs1, jobs2
					if deadlineExceeded(deadline) {
						return false, nil
					}
				}
			}
		}
	}

	return false, nil
}
