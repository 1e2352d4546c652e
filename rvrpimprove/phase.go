package rvrpimprove

import (
	"math/rand"

	"github.com/DmitryPl/rvrp-go/rvrpeval"
	"github.com/DmitryPl/rvrp-go/rvrplog"
	"github.com/DmitryPl/rvrp-go/rvrpmetrics"
	"github.com/DmitryPl/rvrp-go/rvrpmodel"
	"github.com/DmitryPl/rvrp-go/rvrpruin"
)

// tourHash is the tabu key: assigned/unassigned job counts plus the
// State 3-tuple with Cost scaled to integer cents, so the hash is
// exactly reproducible across platforms.
type tourHash struct {
	assigned   int
	unassigned int
	travelTime int64
	distance   int64
	costCents  int64
}

// TourHash computes tour's current tabu key.
func TourHash(tour *rvrpmodel.Tour) tourHash {
	state := tour.State()
	return tourHash{
		assigned:   tour.AssignedJobs(),
		unassigned: tour.UnassignedJobs(),
		travelTime: state.TravelTime,
		distance:   state.Distance,
		costCents:  state.CostCents(),
	}
}

// Improver holds the per-courier phase flags and tabu set that gate
// and de-duplicate improvement attempts across calls to Improve. Reuse
// one Improver across an Engine's lifetime so phase history survives
// between Improve calls; Engine.AddJob/RemoveJob reset it via
// SetZeros.
type Improver struct {
	Problem        *rvrpeval.Problem
	IgnorePriority bool
	Rand           *rand.Rand
	Logger         *rvrplog.Logger
	Metrics        *rvrpmetrics.Collector

	phase         int
	previousPhase map[string]bool
	currentPhase  map[string]bool
	tabu          map[tourHash]struct{}
}

// NewImprover constructs an Improver. A zero seed is treated as
// rvrpruin's default seed; a nil logger/metrics collector is replaced
// with a no-op implementation.
func NewImprover(problem *rvrpeval.Problem, ignorePriority bool, seed int64, logger *rvrplog.Logger, metrics *rvrpmetrics.Collector) *Improver {
	if logger == nil {
		logger = rvrplog.Noop()
	}
	if metrics == nil {
		metrics = rvrpmetrics.NewNoop()
	}
	return &Improver{
		Problem:        problem,
		IgnorePriority: ignorePriority,
		Rand:           rvrpruin.NewRNG(seed),
		Logger:         logger,
		Metrics:        metrics,
		previousPhase:  make(map[string]bool),
		currentPhase:   make(map[string]bool),
		tabu:           make(map[tourHash]struct{}),
	}
}

// CheckBlock ensures every Route's Courier has phase entries,
// defaulting newly seen couriers to current=false, previous=true (so
// they are eligible for improvement on the very first phase).
func (im *Improver) CheckBlock(tour *rvrpmodel.Tour) {
	for _, route := range tour.Routes {
		name := route.Courier.Name
		if _, ok := im.currentPhase[name]; !ok {
			im.currentPhase[name] = false
		}
		if _, ok := im.previousPhase[name]; !ok {
			im.previousPhase[name] = true
		}
	}
}

// SetZeros resets every Courier's phase flags to current=false,
// previous=true and clears the tabu set, matching the invalidation
// required after a Tour's job set changes out from under the
// Improver (see Engine.AddJob/RemoveJob).
func (im *Improver) SetZeros(tour *rvrpmodel.Tour) {
	im.CheckBlock(tour)
	im.tabu = make(map[tourHash]struct{})
	for _, route := range tour.Routes {
		im.currentPhase[route.Courier.Name] = false
		im.previousPhase[route.Courier.Name] = true
	}
}

// CheckRoute reports whether route is eligible for non-post-phase
// improvement: its Courier's route changed on the current or previous
// phase. Pairs of routes are gated by the caller, which combines the
// two routes' CheckRoute results.
func (im *Improver) CheckRoute(route *rvrpmodel.Route) bool {
	name := route.Courier.Name
	return im.previousPhase[name] || im.currentPhase[name]
}

// MarkRoute records whether the given routes changed during the
// current phase, without downgrading an already-true flag.
func (im *Improver) MarkRoute(value bool, routes ...*rvrpmodel.Route) {
	for _, route := range routes {
		name := route.Courier.Name
		if !im.currentPhase[name] {
			im.currentPhase[name] = value
		}
	}
}

// updatePhase advances to the next phase: records the current tour
// hash in the tabu set, rolls currentPhase into previousPhase, and
// resets currentPhase's existing entries to false.
func (im *Improver) updatePhase(tour *rvrpmodel.Tour) {
	im.phase++
	im.Metrics.PhaseRan()
	im.saveTour(tour)

	previous := make(map[string]bool, len(im.currentPhase))
	for name, v := range im.currentPhase {
		previous[name] = v
	}
	im.previousPhase = previous
	for name := range im.currentPhase {
		im.currentPhase[name] = false
	}
}

func (im *Improver) saveTour(tour *rvrpmodel.Tour) {
	im.tabu[TourHash(tour)] = struct{}{}
}

// checkTour reports whether tour's state, with delta (old - new)
// subtracted from its current total, would land on a hash NOT yet in
// the tabu set: it returns true when the proposed tour is new and
// false when it is tabu. Subtracting delta this way evaluates the *proposed*
// total state without requiring the candidate route's mutation to be
// committed first.
func (im *Improver) checkTour(tour *rvrpmodel.Tour, delta rvrpmodel.State) bool {
	proposed := tour.State().Sub(delta)
	key := tourHash{
		assigned:   tour.AssignedJobs(),
		unassigned: tour.UnassignedJobs(),
		travelTime: proposed.TravelTime,
		distance:   proposed.Distance,
		costCents:  proposed.CostCents(),
	}
	if _, seen := im.tabu[key]; seen {
		im.Metrics.TabuRejected()
		return false
	}
	return true
}

// getFromCopy commits routeCopy onto route if doing so would not
// produce an already-tabu tour.
func (im *Improver) getFromCopy(tour *rvrpmodel.Tour, route, routeCopy *rvrpmodel.Route) bool {
	delta := route.State.Sub(routeCopy.State)
	if !im.checkTour(tour, delta) {
		return false
	}
	route.Tracks = routeCopy.Tracks
	route.State = routeCopy.State
	return true
}

// getFromCopyPair commits both route copies at once, if either commit
// alone would clear the tabu check (mirroring get_from_copy's
// short-circuiting OR across the pair).
func (im *Improver) getFromCopyPair(tour *rvrpmodel.Tour, route1, route1Copy, route2, route2Copy *rvrpmodel.Route) bool {
	delta1 := route1.State.Sub(route1Copy.State)
	if !im.checkTour(tour, delta1) {
		delta2 := route2.State.Sub(route2Copy.State)
		if !im.checkTour(tour, delta2) {
			return false
		}
	}
	route1.Tracks = route1Copy.Tracks
	route1.State = route1Copy.State
	route2.Tracks = route2Copy.Tracks
	route2.State = route2Copy.State
	return true
}
