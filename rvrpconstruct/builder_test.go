package rvrpconstruct

import (
	"testing"

	"github.com/DmitryPl/rvrp-go/rvrpeval"
	"github.com/DmitryPl/rvrp-go/rvrpmatrix"
	"github.com/DmitryPl/rvrp-go/rvrpmodel"
	"github.com/stretchr/testify/require"
)

// newWorld builds a three-point world: 0 is the depot/courier
// start+end, 1 and 2 are jobs 10m/10s and 20m/20s away respectively.
func newWorld(t *testing.T) (*rvrpeval.Problem, *rvrpmodel.Tour) {
	t.Helper()
	wide := rvrpmodel.Window{Start: 0, End: 1_000_000}

	matrix, err := rvrpmatrix.NewMatrix("car",
		[][]int64{{0, 10, 20}, {10, 0, 10}, {20, 10, 0}},
		[][]int64{{0, 10, 20}, {10, 0, 10}, {20, 10, 0}},
	)
	require.NoError(t, err)

	jobNear := &rvrpmodel.Job{JobID: "near", Value: []int64{1}, Location: rvrpmodel.Point{MatrixID: 1}, TimeWindows: []rvrpmodel.Window{wide}}
	jobFar := &rvrpmodel.Job{JobID: "far", Value: []int64{1}, Location: rvrpmodel.Point{MatrixID: 2}, TimeWindows: []rvrpmodel.Window{wide}}

	storage := &rvrpmodel.Storage{
		Name:           "depot",
		Location:       rvrpmodel.Point{MatrixID: 0},
		WorkTime:       wide,
		UnassignedJobs: []*rvrpmodel.Job{jobFar, jobNear}, // deliberately out of distance order
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

	problem := rvrpeval.NewProblem(map[string]*rvrpmatrix.Matrix{"car": matrix})
	tour := rvrpmodel.NewTour([]*rvrpmodel.Storage{storage}, []*rvrpmodel.Courier{courier}, 1000, false)
	return problem, tour
}

func TestBuildTourAssignsAllReachableJobs(t *testing.T) {
	problem, tour := newWorld(t)
	builder := NewBuilder(problem)

	require.NoError(t, builder.BuildTour(tour))
	require.Equal(t, 2, tour.AssignedJobs())
	require.Equal(t, 0, tour.UnassignedJobs())

	route := tour.Routes[0]
	require.Len(t, route.Tracks, 1)
	require.Equal(t, "near", route.Tracks[0].Jobs[0].JobID, "nearest job is chosen first")

	state, err := problem.Evaluate(route)
	require.NoError(t, err)
	require.Equal(t, route.State.TravelTime, state.TravelTime)
	require.True(t, route.State.Cost.Equal(state.Cost))
}

func TestBuildTourLeavesUnreachableJobsUnassigned(t *testing.T) {
	problem, tour := newWorld(t)
	courier := tour.Routes[0].Courier
	courier.Capacity = []int64{1}                        // only one job per depot visit
	courier.WorkTime = rvrpmodel.Window{Start: 0, End: 1035} // too short for a second depot round-trip

	builder := NewBuilder(problem)
	require.NoError(t, builder.BuildTour(tour))

	require.Equal(t, 1, tour.AssignedJobs())
	require.Equal(t, 1, tour.UnassignedJobs())
}

func TestBuildTourFailsForCourierWithNoMatrix(t *testing.T) {
	problem, tour := newWorld(t)
	tour.Routes[0].Courier.Profile = "unknown"

	builder := NewBuilder(problem)
	err := builder.BuildTour(tour)
	require.ErrorIs(t, err, rvrpeval.ErrUnknownProfile)
}
