package rvrpeval

import (
	"fmt"

	"github.com/DmitryPl/rvrp-go/rvrpmatrix"
	"github.com/DmitryPl/rvrp-go/rvrpmodel"
	"github.com/shopspring/decimal"
)

// Problem is the route evaluator: a set of matrices keyed by courier
// profile, plus the simulation/validation methods every other package
// calls rather than re-implementing feasibility checks.
type Problem struct {
	Matrices map[string]*rvrpmatrix.Matrix
}

// NewProblem constructs a Problem over the given profile->matrix map.
func NewProblem(matrices map[string]*rvrpmatrix.Matrix) *Problem {
	return &Problem{Matrices: matrices}
}

// MatrixFor returns the matrix registered for courier's profile.
func (p *Problem) MatrixFor(courier *rvrpmodel.Courier) (*rvrpmatrix.Matrix, error) {
	m, ok := p.Matrices[courier.Profile]
	if !ok {
		return nil, fmt.Errorf("rvrpeval: profile %q: %w", courier.Profile, ErrUnknownProfile)
	}
	return m, nil
}

// Evaluate is the single source of truth for a Route's feasibility and
// cost: it re-simulates the Courier from start to end across every
// Track, rejecting at the first violated constraint. The returned
// State never carries a Load vector — load is a per-track quantity,
// cleared before the final State is returned.
func (p *Problem) Evaluate(route *rvrpmodel.Route) (rvrpmodel.State, error) {
	courier := route.Courier
	matrix, err := p.MatrixFor(courier)
	if err != nil {
		return rvrpmodel.State{}, err
	}
	capSet := courier.SkillSet()

	cum := StartState(courier)
	currPoint := courier.StartLocation.MatrixID

	for _, track := range route.Tracks {
		if len(track.Jobs) == 0 {
			continue
		}
		if !courier.Permits(track.Storage) {
			return rvrpmodel.State{}, fmt.Errorf("rvrpeval: track storage %q: %w", track.Storage.Name, ErrStorageNotPermitted)
		}

		load := make([]int64, len(courier.Capacity)) // a depot visit reloads

		segStorage, next, err := p.goStorage(cum, currPoint, track.Storage, courier, matrix, route.StartTime, capSet)
		if err != nil {
			return rvrpmodel.State{}, err
		}
		cum = addSegment(cum, segStorage, load)
		currPoint = next
		if err := p.ValidateCourier(cum.WithLoad(load), route); err != nil {
			return rvrpmodel.State{}, err
		}

		for _, job := range track.Jobs {
			segJob, nextJob, err := p.goJob(cum, load, currPoint, job, track.Storage, courier, matrix, route.StartTime, capSet)
			if err != nil {
				return rvrpmodel.State{}, err
			}
			load = addLoad(load, job.Value)
			cum = addSegment(cum, segJob, load)
			currPoint = nextJob
			if err := p.ValidateCourier(cum.WithLoad(load), route); err != nil {
				return rvrpmodel.State{}, err
			}
		}

		if route.CircleTrack {
			segReturn, err := p.returnToStorage(cum, currPoint, track.Storage, courier, matrix, route.StartTime)
			if err != nil {
				return rvrpmodel.State{}, err
			}
			cum = addSegment(cum, segReturn, load)
			currPoint = track.Storage.Location.MatrixID
			if err := p.ValidateCourier(cum.WithLoad(load), route); err != nil {
				return rvrpmodel.State{}, err
			}
		}
	}

	segEnd, err := p.end(cum, currPoint, courier, matrix, route.StartTime)
	if err != nil {
		return rvrpmodel.State{}, err
	}
	final := cum.Add(segEnd)
	if err := p.ValidateCourier(final, route); err != nil {
		return rvrpmodel.State{}, err
	}
	final.Load = nil
	return final, nil
}

// StartState returns the State a Route begins from: zero travel,
// distance and load, with courier's fixed Cost.Start applied exactly
// once. Both Evaluate and rvrpconstruct's greedy builder start from
// this same State, so the two never disagree about the starting cost.
func StartState(courier *rvrpmodel.Courier) rvrpmodel.State {
	return rvrpmodel.State{Cost: decimal.NewFromFloat(courier.Cost.Start)}
}

// addSegment adds a travel segment (no Load field set on seg) to cum,
// carrying load forward explicitly since State.Add only sums Load
// when both operands already share it.
func addSegment(cum, seg rvrpmodel.State, load []int64) rvrpmodel.State {
	out := rvrpmodel.State{
		TravelTime: cum.TravelTime + seg.TravelTime,
		Distance:   cum.Distance + seg.Distance,
		Cost:       cum.Cost.Add(seg.Cost),
		Load:       load,
	}
	return out
}

func addLoad(load []int64, value []int64) []int64 {
	out := make([]int64, len(load))
	copy(out, load)
	for i := range value {
		if i < len(out) {
			out[i] += value[i]
		}
	}
	return out
}

// goStorage travels from currPoint to storage's location, adds the
// depot's service time, and waits for storage.WorkTime to admit
// arrival. It does not validate courier-wide constraints beyond
// window reachability — capacity/time/distance are re-checked by the
// caller against the resulting cumulative state.
func (p *Problem) goStorage(cum rvrpmodel.State, currPoint int, storage *rvrpmodel.Storage, courier *rvrpmodel.Courier, matrix *rvrpmatrix.Matrix, startTime int64, capSet map[string]struct{}) (rvrpmodel.State, int, error) {
	if !hasSkills(storage.Skills, capSet) {
		return rvrpmodel.State{}, 0, fmt.Errorf("rvrpeval: storage %q: %w", storage.Name, ErrSkillMismatch)
	}
	now := startTime + cum.TravelTime
	tt := matrix.Time(currPoint, storage.Location.MatrixID, now)
	d := matrix.Distance(currPoint, storage.Location.MatrixID, now)
	if tt == rvrpmatrix.Unroutable || d == rvrpmatrix.Unroutable {
		return rvrpmodel.State{}, 0, fmt.Errorf("rvrpeval: to storage %q: %w", storage.Name, ErrUnroutable)
	}
	tt += storage.Load

	wait, ok := waiting(startTime+cum.TravelTime+tt, []rvrpmodel.Window{storage.WorkTime})
	if !ok {
		return rvrpmodel.State{}, 0, fmt.Errorf("rvrpeval: storage %q: %w", storage.Name, ErrWindowUnreachable)
	}
	tt += wait

	seg := rvrpmodel.State{
		TravelTime: tt,
		Distance:   d,
		Cost:       travelCost(tt, d, courier.Cost),
	}
	return seg, storage.Location.MatrixID, nil
}

// goJob travels from currPoint to job's location, adds service delay,
// and waits for one of job's TimeWindows. Like goStorage, it does not
// validate courier-wide constraints — callers re-check the resulting
// cumulative state with ValidateCourier.
func (p *Problem) goJob(cum rvrpmodel.State, load []int64, currPoint int, job *rvrpmodel.Job, storage *rvrpmodel.Storage, courier *rvrpmodel.Courier, matrix *rvrpmatrix.Matrix, startTime int64, capSet map[string]struct{}) (rvrpmodel.State, int, error) {
	if !job.HasSkills(capSet) {
		return rvrpmodel.State{}, 0, fmt.Errorf("rvrpeval: job %q: %w", job.JobID, ErrSkillMismatch)
	}
	now := startTime + cum.TravelTime
	travel := matrix.Time(currPoint, job.Location.MatrixID, now)
	d := matrix.Distance(currPoint, job.Location.MatrixID, now)
	if travel == rvrpmatrix.Unroutable || d == rvrpmatrix.Unroutable {
		return rvrpmodel.State{}, 0, fmt.Errorf("rvrpeval: job %q: %w", job.JobID, ErrUnroutable)
	}
	tt := travel + job.Delay

	wait, ok := waiting(startTime+cum.TravelTime+tt, job.TimeWindows)
	if !ok {
		return rvrpmodel.State{}, 0, fmt.Errorf("rvrpeval: job %q: %w", job.JobID, ErrWindowUnreachable)
	}
	tt += wait

	seg := rvrpmodel.State{
		TravelTime: tt,
		Distance:   d,
		Cost:       travelCost(tt, d, courier.Cost),
	}
	return seg, job.Location.MatrixID, nil
}

// returnToStorage prices a CircleTrack's return leg: travel only, no
// second service and no reload, per spec §4.C step 2d.
func (p *Problem) returnToStorage(cum rvrpmodel.State, currPoint int, storage *rvrpmodel.Storage, courier *rvrpmodel.Courier, matrix *rvrpmatrix.Matrix, startTime int64) (rvrpmodel.State, error) {
	now := startTime + cum.TravelTime
	tt := matrix.Time(currPoint, storage.Location.MatrixID, now)
	d := matrix.Distance(currPoint, storage.Location.MatrixID, now)
	if tt == rvrpmatrix.Unroutable || d == rvrpmatrix.Unroutable {
		return rvrpmodel.State{}, fmt.Errorf("rvrpeval: return to storage %q: %w", storage.Name, ErrUnroutable)
	}
	return rvrpmodel.State{
		TravelTime: tt,
		Distance:   d,
		Cost:       travelCost(tt, d, courier.Cost),
	}, nil
}

// end prices the final leg to the courier's end location.
func (p *Problem) end(cum rvrpmodel.State, currPoint int, courier *rvrpmodel.Courier, matrix *rvrpmatrix.Matrix, startTime int64) (rvrpmodel.State, error) {
	now := startTime + cum.TravelTime
	tt := matrix.Time(currPoint, courier.EndLocation.MatrixID, now)
	d := matrix.Distance(currPoint, courier.EndLocation.MatrixID, now)
	if tt == rvrpmatrix.Unroutable || d == rvrpmatrix.Unroutable {
		return rvrpmodel.State{}, fmt.Errorf("rvrpeval: to end location: %w", ErrUnroutable)
	}
	return rvrpmodel.State{
		TravelTime: tt,
		Distance:   d,
		Cost:       travelCost(tt, d, courier.Cost),
	}, nil
}

// ValidateCourier checks a cumulative State against the courier's
// work-time window, max distance, and capacity. cum.Load, if set, is
// checked component-wise against courier.Capacity.
func (p *Problem) ValidateCourier(cum rvrpmodel.State, route *rvrpmodel.Route) error {
	courier := route.Courier
	absTime := route.StartTime + cum.TravelTime
	if !courier.WorkTime.Contains(absTime) {
		return ErrWorkWindowExceeded
	}
	if courier.MaxDistance != 0 && cum.Distance > courier.MaxDistance {
		return ErrMaxDistanceExceeded
	}
	if cum.Load != nil && !courier.FitsCapacity(cum.Load) {
		return ErrCapacityExceeded
	}
	return nil
}

// hasSkills reports whether required is a subset of capSet, the same
// rule rvrpmodel.Job.HasSkills applies, reused here for Storage.Skills
// which carries no such method of its own.
func hasSkills(required []string, capSet map[string]struct{}) bool {
	for _, s := range required {
		if _, ok := capSet[s]; !ok {
			return false
		}
	}
	return true
}

// travelCost prices a travel_time/distance segment under cost.
func travelCost(travelTime, distance int64, cost rvrpmodel.Cost) decimal.Decimal {
	return decimal.NewFromFloat(float64(travelTime)*cost.Second + float64(distance)*cost.Meter)
}

// GoJob is the exported incremental stepping function used by the
// greedy constructor (rvrpconstruct) to try appending a single job
// without materializing a full candidate Route.
func (p *Problem) GoJob(cum rvrpmodel.State, load []int64, currPoint int, job *rvrpmodel.Job, storage *rvrpmodel.Storage, route *rvrpmodel.Route) (rvrpmodel.State, int, error) {
	matrix, err := p.MatrixFor(route.Courier)
	if err != nil {
		return rvrpmodel.State{}, 0, err
	}
	return p.goJob(cum, load, currPoint, job, storage, route.Courier, matrix, route.StartTime, route.Courier.SkillSet())
}

// GoStorage is the exported incremental stepping function for
// traveling to and reloading at a depot.
func (p *Problem) GoStorage(cum rvrpmodel.State, currPoint int, storage *rvrpmodel.Storage, route *rvrpmodel.Route) (rvrpmodel.State, int, error) {
	matrix, err := p.MatrixFor(route.Courier)
	if err != nil {
		return rvrpmodel.State{}, 0, err
	}
	return p.goStorage(cum, currPoint, storage, route.Courier, matrix, route.StartTime, route.Courier.SkillSet())
}

// ReturnToStorage is the exported incremental stepping function for a
// CircleTrack's depot-return leg.
func (p *Problem) ReturnToStorage(cum rvrpmodel.State, currPoint int, storage *rvrpmodel.Storage, route *rvrpmodel.Route) (rvrpmodel.State, error) {
	matrix, err := p.MatrixFor(route.Courier)
	if err != nil {
		return rvrpmodel.State{}, err
	}
	return p.returnToStorage(cum, currPoint, storage, route.Courier, matrix, route.StartTime)
}

// End is the exported incremental stepping function for the final leg
// to the courier's end location.
func (p *Problem) End(cum rvrpmodel.State, currPoint int, route *rvrpmodel.Route) (rvrpmodel.State, error) {
	matrix, err := p.MatrixFor(route.Courier)
	if err != nil {
		return rvrpmodel.State{}, err
	}
	return p.end(cum, currPoint, route.Courier, matrix, route.StartTime)
}
