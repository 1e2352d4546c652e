package rvrpimprove

import (
	"time"

	"github.com/DmitryPl/rvrp-go/rvrpinsert"
	"github.com/DmitryPl/rvrp-go/rvrpmodel"
	"github.com/DmitryPl/rvrp-go/rvrpops"
	"github.com/DmitryPl/rvrp-go/rvrpruin"
)

func deadlineExceeded(deadline time.Time) bool {
	return !deadline.IsZero() && time.Now().After(deadline)
}

func cloneRoutes(routes []*rvrpmodel.Route) []*rvrpmodel.Route {
	out := make([]*rvrpmodel.Route, len(routes))
	for i, r := range routes {
		out[i] = r.Clone()
	}
	return out
}

// ruinStepSize computes how many jobs random ruin should remove this
// round: a baseline of assigned/10, growing with consecutive fails
// toward assigned/6.67, floored at 5 so small tours still get ruined.
func ruinStepSize(assigned, fail, maxFails int) int {
	if maxFails <= 0 {
		maxFails = 1
	}
	delta := (float64(assigned)/6.67 - float64(assigned)/10) / float64(maxFails)
	n := assigned/10 + int(delta*float64(fail))
	if n < 5 {
		n = 5
	}
	return n
}

func (im *Improver) checkContinue(phases int, deadline time.Time) bool {
	if deadlineExceeded(deadline) {
		return false
	}
	return phases == 0 || im.phase+1 < phases
}

// Improve runs ruin-and-recreate until maxFails consecutive rounds
// fail to beat the best tour found, phases rounds have elapsed (0:
// unbounded), or workTime has passed (0: unbounded). postThreeOpt and
// postCross enable post-optimization passes (3-opt and cross-exchange)
// once a round produces no improvement at all.
func (im *Improver) Improve(tour *rvrpmodel.Tour, workTime time.Duration, maxFails, phases int, postThreeOpt, postCross bool) {
	start := time.Now()
	var deadline time.Time
	if workTime > 0 {
		deadline = start.Add(workTime)
	}

	im.CheckBlock(tour)
	im.continuousImprove(tour, maxFails, phases, postThreeOpt, postCross, deadline)

	im.Metrics.ImproveFinished(time.Since(start))
	im.Metrics.SetTourJobCounts(tour.AssignedJobs(), tour.UnassignedJobs())
	im.Logger.Info("improve finished",
		"phase", im.phase,
		"assigned", tour.AssignedJobs(),
		"unassigned", tour.UnassignedJobs(),
		"elapsed", time.Since(start))
}

func (im *Improver) continuousImprove(tour *rvrpmodel.Tour, maxFails, phases int, postThreeOpt, postCross bool, deadline time.Time) {
	bestRoutes := cloneRoutes(tour.Routes)
	bestState := tour.State()
	bestJobs := tour.AssignedJobs()
	fail := 0

	for fail < maxFails && im.checkContinue(phases, deadline) {
		im.improveTour(tour, phases, postThreeOpt, postCross, deadline)

		newState := tour.State()
		newJobs := tour.AssignedJobs()
		if newJobs > bestJobs || (newState.Less(bestState) && newJobs >= bestJobs) {
			im.Logger.Info("tour improved", "jobs", newJobs, "travel_time", newState.TravelTime)
			bestState = newState
			bestJobs = newJobs
			bestRoutes = cloneRoutes(tour.Routes)
			fail = 0
		} else {
			fail++
		}

		if !(fail < maxFails && im.checkContinue(phases, deadline)) {
			break
		}

		tour.Routes = cloneRoutes(bestRoutes)
		num := ruinStepSize(tour.AssignedJobs(), fail, maxFails)
		removed := rvrpruin.RandomRuin(tour, num, im.Rand)
		im.Metrics.RuinPerformed(removed)

		builder := rvrpinsert.NewBuilder(im.Problem, im.IgnorePriority)
		if _, err := builder.InsertAll(tour, nil); err != nil {
			im.Logger.Warn("recreate insert failed", "err", err)
		}
	}

	tour.Routes = bestRoutes
}

func (im *Improver) improveTour(tour *rvrpmodel.Tour, phases int, postThreeOpt, postCross bool, deadline time.Time) {
	changed := true
	postIntra := false
	postInter := false
	lastHope := postThreeOpt || postCross

	for (changed || lastHope) && im.checkContinue(phases, deadline) {
		if !changed && lastHope {
			postIntra = postThreeOpt
			postInter = postCross
		}

		changed = false
		vr := im.Rand.Intn(2) == 0

		if vr && im.intraImprove(tour, postIntra, deadline) {
			changed = true
			if deadlineExceeded(deadline) {
				break
			}
		}
		if im.interImprove(tour, postInter, deadline) {
			changed = true
			if deadlineExceeded(deadline) {
				break
			}
		}
		if !vr && im.intraImprove(tour, postIntra, deadline) {
			changed = true
			if deadlineExceeded(deadline) {
				break
			}
		}

		builder := rvrpinsert.NewBuilder(im.Problem, im.IgnorePriority)
		inserted, err := builder.InsertAll(tour, nil)
		if err != nil {
			im.Logger.Warn("insert during improve failed", "err", err)
		}
		if inserted {
			changed = true
			if deadlineExceeded(deadline) {
				break
			}
		}

		im.updatePhase(tour)

		if postInter || postIntra {
			postIntra = false
			postInter = false
			lastHope = changed
		}
	}
}

func (im *Improver) intraImprove(tour *rvrpmodel.Tour, postThreeOpt bool, deadline time.Time) bool {
	result := false
	if deadlineExceeded(deadline) {
		return false
	}

	for _, route := range tour.Routes {
		if deadlineExceeded(deadline) {
			break
		}
		if !postThreeOpt && !im.CheckRoute(route) {
			continue
		}

		routeCopy := route.Clone()
		status := false
		for _, track := range routeCopy.Tracks {
			var trackChanged bool
			if !postThreeOpt {
				trackChanged = rvrpops.TwoOpt(im.Problem, routeCopy, track, deadline)
			} else {
				trackChanged = rvrpops.ThreeOpt(im.Problem, routeCopy, track, deadline)
			}
			if trackChanged {
				status = true
			}
		}

		routeChanged := false
		if status {
			routeChanged = im.getFromCopy(tour, route, routeCopy)
			if routeChanged {
				result = true
			}
		}
		im.MarkRoute(routeChanged, route)
	}

	return result
}

func (im *Improver) interImprove(tour *rvrpmodel.Tour, postCross bool, deadline time.Time) bool {
	result := false
	if deadlineExceeded(deadline) {
		return false
	}

	n := len(tour.Routes)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if i != j {
				if im.improveDouble(tour, tour.Routes[i], tour.Routes[j], postCross, deadline) {
					result = true
				}
			} else if im.improveOne(tour, tour.Routes[i], postCross, deadline) {
				result = true
			}
		}
	}

	for _, route := range tour.Routes {
		route.RemoveEmptyTracks()
	}
	return result
}

func (im *Improver) improveDouble(tour *rvrpmodel.Tour, route1, route2 *rvrpmodel.Route, postCross bool, deadline time.Time) bool {
	result := false
	if deadlineExceeded(deadline) {
		return false
	}

	route1Copy := route1.Clone()
	route2Copy := route2.Clone()

outer:
	for k := range route1Copy.Tracks {
		for l := range route2Copy.Tracks {
			if !postCross && !im.CheckRoute(route1) && !im.CheckRoute(route2) {
				continue
			}
			track1 := route1Copy.Tracks[k]
			track2 := route2Copy.Tracks[l]

			if !postCross {
				if changed, err := rvrpops.InterSwap(im.Problem, route1Copy, track1, route2Copy, track2, deadline); err == nil && changed {
					if im.getFromCopyPair(tour, route1, route1Copy, route2, route2Copy) {
						result = true
					}
					if deadlineExceeded(deadline) {
						break outer
					}
				}
				if changed, err := rvrpops.InterReplace(im.Problem, route1Copy, track1, route2Copy, track2, deadline); err == nil && changed {
					if im.getFromCopyPair(tour, route1, route1Copy, route2, route2Copy) {
						result = true
					}
					if deadlineExceeded(deadline) {
						break outer
					}
				}
			} else {
				if changed, err := rvrpops.InterCross(im.Problem, route1Copy, track1, route2Copy, track2, deadline); err == nil && changed {
					if im.getFromCopyPair(tour, route1, route1Copy, route2, route2Copy) {
						result = true
					}
					if deadlineExceeded(deadline) {
						break outer
					}
				}
			}
		}
	}

	im.MarkRoute(result, route1, route2)
	return result
}

func (im *Improver) improveOne(tour *rvrpmodel.Tour, route *rvrpmodel.Route, postCross bool, deadline time.Time) bool {
	result := false
	if deadlineExceeded(deadline) {
		return false
	}

	routeCopy := route.Clone()

outer:
	for k := range routeCopy.Tracks {
		for l := k + 1; l < len(routeCopy.Tracks); l++ {
			if !postCross && !im.CheckRoute(route) {
				continue
			}
			track1 := routeCopy.Tracks[k]
			track2 := routeCopy.Tracks[l]

			if !postCross {
				if changed, err := rvrpops.InterSwap(im.Problem, routeCopy, track1, routeCopy, track2, deadline); err == nil && changed {
					if im.getFromCopy(tour, route, routeCopy) {
						result = true
					}
					if deadlineExceeded(deadline) {
						break outer
					}
				}
				if changed, err := rvrpops.InterReplace(im.Problem, routeCopy, track1, routeCopy, track2, deadline); err == nil && changed {
					if im.getFromCopy(tour, route, routeCopy) {
						result = true
					}
					if deadlineExceeded(deadline) {
						break outer
					}
				}
			} else {
				if changed, err := rvrpops.InterCross(im.Problem, routeCopy, track1, routeCopy, track2, deadline); err == nil && changed {
					if im.getFromCopy(tour, route, routeCopy) {
						result = true
					}
					if deadlineExceeded(deadline) {
						break outer
					}
				}
			}
		}
	}

	im.MarkRoute(result, route)
	return result
}
