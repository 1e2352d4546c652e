package rvrpruin

import (
	"math/rand"

	"github.com/DmitryPl/rvrp-go/rvrpeval"
	"github.com/DmitryPl/rvrp-go/rvrpmatrix"
	"github.com/DmitryPl/rvrp-go/rvrpmodel"
)

// RandomRuin removes up to number Jobs from uniformly random nonempty
// Tracks across tour, returning each Job to its Storage's unassigned
// list. number is capped at the Tour's total assigned Jobs. Every
// Track left empty is dropped. Mirrors MadrichEngine::random_ruin.
func RandomRuin(tour *rvrpmodel.Tour, number int, rng *rand.Rand) int {
	if n := tour.AssignedJobs(); number > n {
		number = n
	}

	removed := 0
	for i := 0; i < number; i++ {
		if !ruinOneRandom(tour, rng) {
			break
		}
		removed++
	}
	for _, route := range tour.Routes {
		route.RemoveEmptyTracks()
	}
	return removed
}

// ruinOneRandom removes a single randomly chosen Job, retrying on
// routes/tracks that turn out empty. It returns false only when the
// Tour genuinely has no Routes left to sample.
func ruinOneRandom(tour *rvrpmodel.Tour, rng *rand.Rand) bool {
	for {
		if len(tour.Routes) == 0 {
			return false
		}
		route := tour.Routes[rng.Intn(len(tour.Routes))]
		if len(route.Tracks) == 0 {
			continue
		}
		track := route.Tracks[rng.Intn(len(route.Tracks))]
		if len(track.Jobs) == 0 {
			route.RemoveEmptyTracks()
			continue
		}

		idx := rng.Intn(len(track.Jobs))
		job := track.Jobs[idx]
		track.Jobs = append(track.Jobs[:idx], track.Jobs[idx+1:]...)
		track.Storage.ReturnUnassigned(job)
		return true
	}
}

// RadialRuin removes a uniformly random seed Job plus every Job in the
// Tour within radius seconds of travel time from the seed's location
// (measured through each Route's own Courier profile matrix), returns
// them all to their Storages' unassigned lists, and drops any Track
// left empty. Mirrors MadrichEngine::radial_ruin. It returns the
// number of Jobs removed.
func RadialRuin(tour *rvrpmodel.Tour, radius int64, problem *rvrpeval.Problem, rng *rand.Rand) int {
	if tour.AssignedJobs() == 0 {
		return 0
	}

	seedTrack, seedJob, seedIdx, ok := pickSeedJob(tour, rng)
	if !ok {
		return 0
	}
	matrixID := seedJob.Location.MatrixID
	seedTrack.Jobs = append(seedTrack.Jobs[:seedIdx], seedTrack.Jobs[seedIdx+1:]...)
	seedTrack.Storage.ReturnUnassigned(seedJob)
	removed := 1

	for _, route := range tour.Routes {
		matrix, err := problem.MatrixFor(route.Courier)
		if err != nil {
			continue
		}
		now := route.StartTime
		for _, track := range route.Tracks {
			kept := track.Jobs[:0]
			for _, job := range track.Jobs {
				tt := matrix.Time(matrixID, job.Location.MatrixID, now)
				if tt == rvrpmatrix.Unroutable || tt > radius {
					kept = append(kept, job)
					continue
				}
				track.Storage.ReturnUnassigned(job)
				removed++
			}
			track.Jobs = kept
		}
	}

	for _, route := range tour.Routes {
		route.RemoveEmptyTracks()
	}
	return removed
}

// pickSeedJob picks a uniformly random assigned Job, retrying on
// routes/tracks that turn out empty.
func pickSeedJob(tour *rvrpmodel.Tour, rng *rand.Rand) (*rvrpmodel.Track, *rvrpmodel.Job, int, bool) {
	for {
		if len(tour.Routes) == 0 {
			return nil, nil, 0, false
		}
		route := tour.Routes[rng.Intn(len(tour.Routes))]
		if len(route.Tracks) == 0 {
			continue
		}
		track := route.Tracks[rng.Intn(len(route.Tracks))]
		if len(track.Jobs) == 0 {
			route.RemoveEmptyTracks()
			continue
		}

		idx := rng.Intn(len(track.Jobs))
		return track, track.Jobs[idx], idx, true
	}
}
