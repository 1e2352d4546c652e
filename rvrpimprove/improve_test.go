package rvrpimprove

import (
	"testing"
	"time"

	"github.com/DmitryPl/rvrp-go/rvrpeval"
	"github.com/DmitryPl/rvrp-go/rvrpmatrix"
	"github.com/DmitryPl/rvrp-go/rvrpmodel"
	"github.com/stretchr/testify/require"
)

// twoRouteTour mirrors rvrpops' twoRouteWorld fixture but wraps the
// result in a Tour, with each Courier deliberately assigned the Job
// that is actually closer to the other Courier's start location.
func twoRouteTour(t *testing.T) (*rvrpeval.Problem, *rvrpmodel.Tour) {
	t.Helper()
	wide := rvrpmodel.Window{Start: 0, End: 1_000_000}
	positions := []int64{0, 5, 50, 6, 49} // 0=depot, 1=jobA, 2=jobB, 3=c1 start/end, 4=c2 start/end
	n := len(positions)
	dist := make([][]int64, n)
	for i := range dist {
		dist[i] = make([]int64, n)
		for j := range dist[i] {
			d := positions[i] - positions[j]
			if d < 0 {
				d = -d
			}
			dist[i][j] = d
		}
	}
	matrix, err := rvrpmatrix.NewMatrix("car", dist, dist)
	require.NoError(t, err)

	storage := &rvrpmodel.Storage{Name: "d", Location: rvrpmodel.Point{MatrixID: 0}, WorkTime: wide}
	courier1 := &rvrpmodel.Courier{
		Name: "c1", Profile: "car", Cost: rvrpmodel.Cost{Second: 1}, Capacity: []int64{100},
		WorkTime: wide, StartLocation: rvrpmodel.Point{MatrixID: 3}, EndLocation: rvrpmodel.Point{MatrixID: 3},
		Storages: []*rvrpmodel.Storage{storage},
	}
	courier2 := &rvrpmodel.Courier{
		Name: "c2", Profile: "car", Cost: rvrpmodel.Cost{Second: 1}, Capacity: []int64{100},
		WorkTime: wide, StartLocation: rvrpmodel.Point{MatrixID: 4}, EndLocation: rvrpmodel.Point{MatrixID: 4},
		Storages: []*rvrpmodel.Storage{storage},
	}
	jobA := &rvrpmodel.Job{JobID: "jobA", Value: []int64{1}, Location: rvrpmodel.Point{MatrixID: 1}, TimeWindows: []rvrpmodel.Window{wide}}
	jobB := &rvrpmodel.Job{JobID: "jobB", Value: []int64{1}, Location: rvrpmodel.Point{MatrixID: 2}, TimeWindows: []rvrpmodel.Window{wide}}

	problem := rvrpeval.NewProblem(map[string]*rvrpmatrix.Matrix{"car": matrix})

	route1 := rvrpmodel.NewRoute(courier1, 0, false)
	track1 := rvrpmodel.NewTrack(storage)
	track1.Jobs = []*rvrpmodel.Job{jobB}
	route1.Tracks = []*rvrpmodel.Track{track1}
	state1, err := problem.Evaluate(route1)
	require.NoError(t, err)
	route1.State = state1

	route2 := rvrpmodel.NewRoute(courier2, 0, false)
	track2 := rvrpmodel.NewTrack(storage)
	track2.Jobs = []*rvrpmodel.Job{jobA}
	route2.Tracks = []*rvrpmodel.Track{track2}
	state2, err := problem.Evaluate(route2)
	require.NoError(t, err)
	route2.State = state2

	tour := &rvrpmodel.Tour{
		Routes:   []*rvrpmodel.Route{route1, route2},
		Storages: []*rvrpmodel.Storage{storage},
	}
	return problem, tour
}

func TestImproveNeverWorsensCombinedState(t *testing.T) {
	problem, tour := twoRouteTour(t)
	initial := tour.State()

	im := NewImprover(problem, true, 42, nil, nil)
	im.Improve(tour, 0, 3, 0, false, false)

	require.False(t, initial.Less(tour.State()), "improve must never worsen the tour")
	require.Equal(t, 2, tour.AssignedJobs())
}

func TestImproveIsDeterministicForFixedSeed(t *testing.T) {
	problem1, tour1 := twoRouteTour(t)
	problem2, tour2 := twoRouteTour(t)

	NewImprover(problem1, true, 7, nil, nil).Improve(tour1, 0, 3, 0, false, false)
	NewImprover(problem2, true, 7, nil, nil).Improve(tour2, 0, 3, 0, false, false)

	require.Equal(t, tour1.State(), tour2.State())
	require.Equal(t, tour1.Routes[0].Tracks[0].Jobs[0].JobID, tour2.Routes[0].Tracks[0].Jobs[0].JobID)
}

func TestImproveRespectsWorkTimeDeadline(t *testing.T) {
	problem, tour := twoRouteTour(t)
	im := NewImprover(problem, true, 1, nil, nil)
	im.Improve(tour, time.Nanosecond, 5, 0, false, false)
	// Deadline effectively already passed: nothing should have run long
	// enough to panic or hang, and the tour stays feasible.
	require.Equal(t, 2, tour.AssignedJobs())
}

func TestSetZerosClearsTabuAndPhaseFlags(t *testing.T) {
	problem, tour := twoRouteTour(t)
	im := NewImprover(problem, true, 1, nil, nil)
	im.CheckBlock(tour)
	im.saveTour(tour)
	require.NotEmpty(t, im.tabu)

	im.SetZeros(tour)
	require.Empty(t, im.tabu)
	for _, route := range tour.Routes {
		require.True(t, im.previousPhase[route.Courier.Name])
		require.False(t, im.currentPhase[route.Courier.Name])
	}
}

func TestCheckTourRejectsRepeatedHash(t *testing.T) {
	_, tour := twoRouteTour(t)
	im := NewImprover(nil, true, 1, nil, nil)
	im.saveTour(tour)

	require.False(t, im.checkTour(tour, rvrpmodel.ZeroState()))
}

func TestRuinStepSizeFloorsAtFive(t *testing.T) {
	require.Equal(t, 5, ruinStepSize(3, 0, 5))
	require.Greater(t, ruinStepSize(1000, 0, 5), 5)
}
