package rvrpmatrix

import "fmt"

// Matrix is a named profile plus time-sliced distance (meters) and
// travel-time (seconds) tables.
type Matrix struct {
	Profile       string
	n             int     // table dimension (number of matrix points)
	slices        int     // number of time slices
	discreteness  int64   // seconds per slice; 0 means "not time-dependent"
	startTime     int64   // absolute start of the first slice
	endTime       int64   // absolute end of matrix validity
	distance      []int64 // linearized slice*n*n + src*n + dst
	travelTime    []int64
}

// NewMatrix builds a single-slice (non time-dependent) Matrix from two
// n×n tables.
func NewMatrix(profile string, distance, travelTime [][]int64) (*Matrix, error) {
	return NewTimeSlicedMatrix(profile, [][][]int64{distance}, [][][]int64{travelTime}, 0, 0, 0)
}

// NewTimeSlicedMatrix builds a Matrix from a list of per-slice n×n
// tables. discreteness is the seconds covered by each slice;
// startTime is the absolute time the first slice begins; endTime is
// the absolute time after which all lookups are Unroutable.
func NewTimeSlicedMatrix(profile string, distance, travelTime [][][]int64, discreteness, startTime, endTime int64) (*Matrix, error) {
	if profile == "" {
		return nil, ErrEmptyProfile
	}
	if len(distance) == 0 || len(travelTime) == 0 {
		return nil, ErrNoSlices
	}
	if len(distance) != len(travelTime) {
		return nil, ErrDimensionMismatch
	}
	n := len(distance[0])
	for _, table := range [][][]int64{distance, travelTime} {
		for _, slice := range table {
			if len(slice) != n {
				return nil, ErrNonSquare
			}
			for _, row := range slice {
				if len(row) != n {
					return nil, ErrNonSquare
				}
			}
		}
	}

	m := &Matrix{
		Profile:      profile,
		n:            n,
		slices:       len(distance),
		discreteness: discreteness,
		startTime:    startTime,
		endTime:      endTime,
		distance:     make([]int64, len(distance)*n*n),
		travelTime:   make([]int64, len(distance)*n*n),
	}
	for s, slice := range distance {
		for i, row := range slice {
			copy(m.distance[s*n*n+i*n:s*n*n+i*n+n], row)
		}
	}
	for s, slice := range travelTime {
		for i, row := range slice {
			copy(m.travelTime[s*n*n+i*n:s*n*n+i*n+n], row)
		}
	}
	return m, nil
}

// sliceIndex selects the slice covering now, clamped to [0, slices).
// Returns (0, false) if now is beyond EndTime (when EndTime is set).
func (m *Matrix) sliceIndex(now int64) (int, bool) {
	if m.endTime > 0 && now > m.endTime {
		return 0, false
	}
	if m.discreteness <= 0 || m.slices == 1 {
		return 0, true
	}
	idx := (now - m.startTime) / m.discreteness
	if idx < 0 {
		idx = 0
	}
	if idx >= int64(m.slices) {
		idx = int64(m.slices - 1)
	}
	return int(idx), true
}

// Distance returns the distance in meters from src to dst at time now,
// or Unroutable if the request falls beyond the matrix's validity or
// the indices are out of range.
func (m *Matrix) Distance(src, dst int, now int64) int64 {
	return m.lookup(m.distance, src, dst, now)
}

// Time returns the travel time in seconds from src to dst at time now,
// or Unroutable under the same conditions as Distance.
func (m *Matrix) Time(src, dst int, now int64) int64 {
	return m.lookup(m.travelTime, src, dst, now)
}

func (m *Matrix) lookup(table []int64, src, dst int, now int64) int64 {
	if src < 0 || dst < 0 || src >= m.n || dst >= m.n {
		return Unroutable
	}
	slice, ok := m.sliceIndex(now)
	if !ok {
		return Unroutable
	}
	v := table[slice*m.n*m.n+src*m.n+dst]
	if v < 0 {
		return Unroutable
	}
	return v
}

// Size returns the matrix's point dimension n.
func (m *Matrix) Size() int { return m.n }

// String renders the profile and shape for diagnostics.
func (m *Matrix) String() string {
	return fmt.Sprintf("rvrpmatrix.Matrix{profile=%s, n=%d, slices=%d}", m.Profile, m.n, m.slices)
}
