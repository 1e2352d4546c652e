package rvrpengine

import (
	"testing"

	"github.com/DmitryPl/rvrp-go/rvrpmatrix"
	"github.com/DmitryPl/rvrp-go/rvrpmodel"
	"github.com/stretchr/testify/require"
)

func newEngineWorld(t *testing.T) (*Engine, *rvrpmodel.Storage, *rvrpmodel.Job, *rvrpmodel.Job) {
	t.Helper()
	wide := rvrpmodel.Window{Start: 0, End: 1_000_000}
	positions := []int64{0, 10, 20}
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
	jobNear := &rvrpmodel.Job{JobID: "near", Value: []int64{1}, Location: rvrpmodel.Point{MatrixID: 1}, TimeWindows: []rvrpmodel.Window{wide}}
	jobFar := &rvrpmodel.Job{JobID: "far", Value: []int64{1}, Location: rvrpmodel.Point{MatrixID: 2}, TimeWindows: []rvrpmodel.Window{wide}}
	storage.UnassignedJobs = []*rvrpmodel.Job{jobNear, jobFar}

	courier := &rvrpmodel.Courier{
		Name: "c", Profile: "car", Cost: rvrpmodel.Cost{Second: 1}, Capacity: []int64{100},
		WorkTime: wide, StartLocation: rvrpmodel.Point{MatrixID: 0}, EndLocation: rvrpmodel.Point{MatrixID: 0},
		Storages: []*rvrpmodel.Storage{storage},
	}

	engine := NewEngine([]*rvrpmodel.Storage{storage}, []*rvrpmodel.Courier{courier}, map[string]*rvrpmatrix.Matrix{"car": matrix}, 0, false, true, 0, nil, nil)
	return engine, storage, jobNear, jobFar
}

func TestBuildTourAssignsJobsAndTracksState(t *testing.T) {
	engine, _, _, _ := newEngineWorld(t)
	require.NoError(t, engine.BuildTour())
	require.Equal(t, 2, engine.AssignedJobs())
	require.Equal(t, 0, engine.UnassignedJobs())
	require.True(t, engine.GetState().TravelTime > 0)
}

func TestRouteIDsAreStableAndUnique(t *testing.T) {
	engine, _, _, _ := newEngineWorld(t)
	route := engine.Tour.Routes[0]
	id1, ok := engine.RouteID(route)
	require.True(t, ok)
	id2, ok := engine.RouteID(route)
	require.True(t, ok)
	require.Equal(t, id1, id2)

	other := &rvrpmodel.Route{}
	_, ok = engine.RouteID(other)
	require.False(t, ok)
}

func TestRemoveJobDropsFromAssignedTrack(t *testing.T) {
	engine, storage, jobNear, _ := newEngineWorld(t)
	require.NoError(t, engine.BuildTour())
	require.Equal(t, 2, engine.AssignedJobs())

	engine.RemoveJob(jobNear, storage)
	require.Equal(t, 1, engine.AssignedJobs())
	for _, route := range engine.Tour.Routes {
		for _, track := range route.Tracks {
			require.Equal(t, -1, track.IndexOf(jobNear))
		}
	}
}

func TestAddJobMakesItAvailableForInsertion(t *testing.T) {
	engine, storage, jobNear, jobFar := newEngineWorld(t)
	storage.UnassignedJobs = []*rvrpmodel.Job{jobNear}
	require.NoError(t, engine.BuildTour())
	require.Equal(t, 1, engine.AssignedJobs())

	engine.AddJob(jobFar, storage)
	require.Equal(t, 1, engine.UnassignedJobs())
}

func TestAddJobIgnoresUnknownStorage(t *testing.T) {
	engine, _, _, jobFar := newEngineWorld(t)
	other := &rvrpmodel.Storage{Name: "other"}
	engine.AddJob(jobFar, other)
	require.Equal(t, 2, engine.UnassignedJobs())
}
