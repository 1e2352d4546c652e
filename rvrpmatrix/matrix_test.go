package rvrpmatrix

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func square(vals [][]int64) [][]int64 { return vals }

func TestNewMatrixSingleSlice(t *testing.T) {
	dist := square([][]int64{{0, 10}, {10, 0}})
	tt := square([][]int64{{0, 5}, {5, 0}})
	m, err := NewMatrix("driver", dist, tt)
	require.NoError(t, err)
	require.Equal(t, int64(10), m.Distance(0, 1, 0))
	require.Equal(t, int64(5), m.Time(0, 1, 12345))
}

func TestTimeSlicedMatrixSelectsSlice(t *testing.T) {
	slice0 := [][]int64{{0, 1}, {1, 0}}
	slice1 := [][]int64{{0, 2}, {2, 0}}
	m, err := NewTimeSlicedMatrix("driver", [][][]int64{slice0, slice1}, [][][]int64{slice0, slice1}, 900, 0, 10000)
	require.NoError(t, err)
	require.Equal(t, int64(1), m.Distance(0, 1, 0))
	require.Equal(t, int64(2), m.Distance(0, 1, 900))
	require.Equal(t, int64(2), m.Distance(0, 1, 5000)) // clamps to last slice
}

func TestUnroutableBeyondEndTime(t *testing.T) {
	slice0 := [][]int64{{0, 1}, {1, 0}}
	m, err := NewTimeSlicedMatrix("driver", [][][]int64{slice0}, [][][]int64{slice0}, 900, 0, 1000)
	require.NoError(t, err)
	require.Equal(t, Unroutable, m.Distance(0, 1, 1001))
}

func TestOutOfRangeIsUnroutable(t *testing.T) {
	m, err := NewMatrix("driver", square([][]int64{{0, 1}, {1, 0}}), square([][]int64{{0, 1}, {1, 0}}))
	require.NoError(t, err)
	require.Equal(t, Unroutable, m.Distance(5, 0, 0))
}

func TestCloseMetricFillsGaps(t *testing.T) {
	// 0->1 direct, 1->2 direct, 0->2 unroutable: closure should route via 1.
	dist := [][]int64{
		{0, 5, -1},
		{5, 0, 3},
		{-1, 3, 0},
	}
	m, err := NewMatrix("driver", dist, dist)
	require.NoError(t, err)
	require.Equal(t, Unroutable, m.Distance(0, 2, 0))

	require.NoError(t, CloseMetric(m))
	require.Equal(t, int64(8), m.Distance(0, 2, 0))
	require.Equal(t, int64(8), m.Distance(2, 0, 0))
}

func TestRejectsNonSquareAndMismatch(t *testing.T) {
	_, err := NewMatrix("driver", square([][]int64{{0, 1, 2}, {1, 0, 1}}), square([][]int64{{0, 1}, {1, 0}}))
	require.Error(t, err)

	_, err = NewTimeSlicedMatrix("driver", nil, nil, 0, 0, 0)
	require.ErrorIs(t, err, ErrNoSlices)

	_, err = NewMatrix("", square([][]int64{{0}}), square([][]int64{{0}}))
	require.ErrorIs(t, err, ErrEmptyProfile)
}
