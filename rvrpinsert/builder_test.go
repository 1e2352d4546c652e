package rvrpinsert

import (
	"testing"

	"github.com/DmitryPl/rvrp-go/rvrpeval"
	"github.com/DmitryPl/rvrp-go/rvrpmatrix"
	"github.com/DmitryPl/rvrp-go/rvrpmodel"
	"github.com/stretchr/testify/require"
)

func newInsertWorld(t *testing.T) (*rvrpeval.Problem, *rvrpmodel.Tour, *rvrpmodel.Storage) {
	t.Helper()
	wide := rvrpmodel.Window{Start: 0, End: 1_000_000}

	matrix, err := rvrpmatrix.NewMatrix("car",
		[][]int64{{0, 10, 20}, {10, 0, 10}, {20, 10, 0}},
		[][]int64{{0, 10, 20}, {10, 0, 10}, {20, 10, 0}},
	)
	require.NoError(t, err)

	storage := &rvrpmodel.Storage{
		Name:     "depot",
		Location: rvrpmodel.Point{MatrixID: 0},
		WorkTime: wide,
	}
	courier := &rvrpmodel.Courier{
		Name:          "c1",
		Profile:       "car",
		Capacity:      []int64{10},
		WorkTime:      wide,
		StartLocation: rvrpmodel.Point{MatrixID: 0},
		EndLocation:   rvrpmodel.Point{MatrixID: 0},
		Storages:      []*rvrpmodel.Storage{storage},
	}

	problem := rvrpeval.NewProblem(map[string]*rvrpmatrix.Matrix{"car": matrix})
	tour := rvrpmodel.NewTour([]*rvrpmodel.Storage{storage}, []*rvrpmodel.Courier{courier}, 1000, false)
	route := tour.Routes[0]
	state, err := problem.Evaluate(route)
	require.NoError(t, err)
	route.State = state
	return problem, tour, storage
}

func TestInsertAllPlacesJobIntoEmptyRoute(t *testing.T) {
	problem, tour, storage := newInsertWorld(t)
	job := &rvrpmodel.Job{JobID: "j1", Value: []int64{1}, Location: rvrpmodel.Point{MatrixID: 1}, TimeWindows: []rvrpmodel.Window{{Start: 0, End: 1_000_000}}}
	storage.UnassignedJobs = []*rvrpmodel.Job{job}

	builder := NewBuilder(problem, true)
	changed, err := builder.InsertAll(tour, nil)
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, 1, tour.AssignedJobs())
	require.Equal(t, 0, tour.UnassignedJobs())
	require.Equal(t, "j1", tour.Routes[0].Tracks[0].Jobs[0].JobID)
}

func TestInsertAllRespectsPriorityTiers(t *testing.T) {
	problem, tour, storage := newInsertWorld(t)
	wide := []rvrpmodel.Window{{Start: 0, End: 1_000_000}}
	low := &rvrpmodel.Job{JobID: "low-priority", Priority: 5, Value: []int64{1}, Location: rvrpmodel.Point{MatrixID: 1}, TimeWindows: wide}
	high := &rvrpmodel.Job{JobID: "high-priority", Priority: 0, Value: []int64{1}, Location: rvrpmodel.Point{MatrixID: 2}, TimeWindows: wide}
	storage.UnassignedJobs = []*rvrpmodel.Job{low, high}

	builder := NewBuilder(problem, false)

	// At tier 0 only the high-priority job is eligible.
	changed, err := builder.insertBest(tour, 0, nil)
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, 1, tour.AssignedJobs())
	require.Equal(t, "high-priority", tour.Routes[0].Tracks[0].Jobs[0].JobID)

	// Nothing left at tier 0.
	changed, err = builder.insertBest(tour, 0, nil)
	require.NoError(t, err)
	require.False(t, changed)

	// Advancing to tier 5 places the low-priority job.
	changed, err = builder.insertBest(tour, 5, nil)
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, 2, tour.AssignedJobs())
}

func TestInsertAllSkipsUnpermittedStorage(t *testing.T) {
	problem, tour, storage := newInsertWorld(t)
	tour.Routes[0].Courier.Storages = nil // no longer permits storage
	storage.UnassignedJobs = []*rvrpmodel.Job{
		{JobID: "j1", Value: []int64{1}, Location: rvrpmodel.Point{MatrixID: 1}, TimeWindows: []rvrpmodel.Window{{Start: 0, End: 1_000_000}}},
	}

	builder := NewBuilder(problem, true)
	changed, err := builder.InsertAll(tour, nil)
	require.NoError(t, err)
	require.False(t, changed)
	require.Equal(t, 1, tour.UnassignedJobs())
}
