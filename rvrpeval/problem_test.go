package rvrpeval

import (
	"testing"

	"github.com/DmitryPl/rvrp-go/rvrpmatrix"
	"github.com/DmitryPl/rvrp-go/rvrpmodel"
	"github.com/stretchr/testify/require"
)

// newFixture builds a two-point world: matrix index 0 is the depot and
// the courier's start/end location, matrix index 1 is a single job.
// distance(0,1)=100m, time(0,1)=50s, symmetric.
func newFixture(t *testing.T) (*Problem, *rvrpmodel.Courier, *rvrpmodel.Storage, *rvrpmodel.Job) {
	t.Helper()
	wide := rvrpmodel.Window{Start: 0, End: 1_000_000}

	matrix, err := rvrpmatrix.NewMatrix("car",
		[][]int64{{0, 100}, {100, 0}},
		[][]int64{{0, 50}, {50, 0}},
	)
	require.NoError(t, err)

	storage := &rvrpmodel.Storage{
		Name:     "depot",
		Location: rvrpmodel.Point{MatrixID: 0},
		WorkTime: wide,
	}
	job := &rvrpmodel.Job{
		JobID:       "j1",
		Value:       []int64{5},
		Location:    rvrpmodel.Point{MatrixID: 1},
		TimeWindows: []rvrpmodel.Window{wide},
	}
	courier := &rvrpmodel.Courier{
		Name:          "c1",
		Profile:       "car",
		Cost:          rvrpmodel.Cost{Second: 1},
		Capacity:      []int64{10},
		WorkTime:      wide,
		StartLocation: rvrpmodel.Point{MatrixID: 0},
		EndLocation:   rvrpmodel.Point{MatrixID: 0},
		Storages:      []*rvrpmodel.Storage{storage},
	}

	p := NewProblem(map[string]*rvrpmatrix.Matrix{"car": matrix})
	return p, courier, storage, job
}

func newRoute(courier *rvrpmodel.Courier, storage *rvrpmodel.Storage, job *rvrpmodel.Job) *rvrpmodel.Route {
	route := rvrpmodel.NewRoute(courier, 1000, false)
	route.Tracks = []*rvrpmodel.Track{rvrpmodel.NewTrackWithJob(job, storage)}
	return route
}

// TestEvaluateFeasibleRoute covers the spec's S1 scenario: a simple
// feasible single-job route accumulates travel time, distance and
// cost along the depot -> job -> end chain.
func TestEvaluateFeasibleRoute(t *testing.T) {
	p, courier, storage, job := newFixture(t)
	route := newRoute(courier, storage, job)

	state, err := p.Evaluate(route)
	require.NoError(t, err)
	require.Equal(t, int64(100), state.TravelTime)
	require.Equal(t, int64(200), state.Distance)
	require.Equal(t, int64(10000), state.CostCents())
	require.Nil(t, state.Load)
}

// TestEvaluateWaitsForJobWindow covers S1's waiting branch: a job whose
// window opens after the courier would otherwise arrive costs extra
// wait folded into TravelTime, not an error.
func TestEvaluateWaitsForJobWindow(t *testing.T) {
	p, courier, storage, job := newFixture(t)
	job.TimeWindows = []rvrpmodel.Window{{Start: 1200, End: 1_000_000}}
	route := newRoute(courier, storage, job)

	state, err := p.Evaluate(route)
	require.NoError(t, err)
	// arrival at job without waiting would be startTime(1000)+travel(50)=1050;
	// window opens at 1200, so 150s of waiting is folded in.
	require.Equal(t, int64(50+150+50), state.TravelTime)
}

// TestEvaluateRejectsCapacityOverflow covers S2: a job whose load
// exceeds the courier's capacity is rejected with ErrCapacityExceeded.
func TestEvaluateRejectsCapacityOverflow(t *testing.T) {
	p, courier, storage, job := newFixture(t)
	job.Value = []int64{20}
	route := newRoute(courier, storage, job)

	_, err := p.Evaluate(route)
	require.ErrorIs(t, err, ErrCapacityExceeded)
}

// TestEvaluateRejectsSkillMismatch covers S3: a job requiring a skill
// the courier lacks is rejected with ErrSkillMismatch.
func TestEvaluateRejectsSkillMismatch(t *testing.T) {
	p, courier, storage, job := newFixture(t)
	job.Skills = []string{"refrigerated"}
	route := newRoute(courier, storage, job)

	_, err := p.Evaluate(route)
	require.ErrorIs(t, err, ErrSkillMismatch)
}

// TestEvaluateRejectsUnpermittedStorage rejects a track whose depot is
// outside the courier's permitted Storages list.
func TestEvaluateRejectsUnpermittedStorage(t *testing.T) {
	p, courier, storage, job := newFixture(t)
	courier.Storages = nil
	route := newRoute(courier, storage, job)

	_, err := p.Evaluate(route)
	require.ErrorIs(t, err, ErrStorageNotPermitted)
}

// TestEvaluateRejectsUnknownProfile rejects a courier whose profile has
// no registered matrix.
func TestEvaluateRejectsUnknownProfile(t *testing.T) {
	p, courier, storage, job := newFixture(t)
	courier.Profile = "truck"
	route := newRoute(courier, storage, job)

	_, err := p.Evaluate(route)
	require.ErrorIs(t, err, ErrUnknownProfile)
}

// TestEvaluateCircleTrackAddsReturnLeg covers the CircleTrack branch:
// the route prices a return trip to the depot with no second service
// charge before heading to the courier's end location.
func TestEvaluateCircleTrackAddsReturnLeg(t *testing.T) {
	p, courier, storage, job := newFixture(t)
	storage.Load = 30 // service time at the depot; must not be charged twice
	route := newRoute(courier, storage, job)
	route.CircleTrack = true

	state, err := p.Evaluate(route)
	require.NoError(t, err)
	// depot(0->0)=0 +service 30, job(0->1)=50, return(1->0)=50, end(0->0)=0
	require.Equal(t, int64(0+30+50+50+0), state.TravelTime)
	require.Equal(t, int64(100+100+0), state.Distance)
}
