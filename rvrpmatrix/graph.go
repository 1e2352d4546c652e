package rvrpmatrix

import (
	"fmt"
	"math"

	"github.com/DmitryPl/rvrp-go/core"
	"github.com/DmitryPl/rvrp-go/dijkstra"
)

// BuildFromGraph derives a single-slice Matrix for profile by running
// Dijkstra from every point in pointIDs over distanceGraph and
// timeGraph independently. Point i in the resulting Matrix corresponds
// to pointIDs[i], matching the MatrixID convention every rvrpmodel
// Point carries.
//
// Real-world routing data rarely ships as a dense matrix: map
// providers and self-hosted road networks hand back a sparse weighted
// graph instead, and the solver needs an all-pairs table. This adapts
// the teacher's dijkstra package (originally a general-purpose
// single-source shortest path routine) into that all-pairs role, one
// call per point, mirroring how rvrpmatrix.CloseMetric already adapts
// the teacher's Floyd-Warshall for the same "fill in a sparse profile"
// purpose.
//
// Unreachable pairs are recorded as Unroutable. distanceGraph and
// timeGraph must both be weighted and contain every ID in pointIDs.
func BuildFromGraph(profile string, distanceGraph, timeGraph *core.Graph, pointIDs []string) (*Matrix, error) {
	n := len(pointIDs)
	distance := make([][]int64, n)
	travelTime := make([][]int64, n)
	for i, source := range pointIDs {
		distRow, err := shortestRow(distanceGraph, source, pointIDs)
		if err != nil {
			return nil, fmt.Errorf("rvrpmatrix: distance graph: %w", err)
		}
		distance[i] = distRow

		timeRow, err := shortestRow(timeGraph, source, pointIDs)
		if err != nil {
			return nil, fmt.Errorf("rvrpmatrix: time graph: %w", err)
		}
		travelTime[i] = timeRow
	}
	return NewMatrix(profile, distance, travelTime)
}

func shortestRow(g *core.Graph, source string, pointIDs []string) ([]int64, error) {
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(source))
	if err != nil {
		return nil, err
	}
	row := make([]int64, len(pointIDs))
	for i, id := range pointIDs {
		d, ok := dist[id]
		if !ok || d < 0 || d == math.MaxInt64 {
			row[i] = Unroutable
			continue
		}
		row[i] = d
	}
	return row, nil
}
