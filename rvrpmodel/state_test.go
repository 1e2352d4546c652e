package rvrpmodel

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestStateAddSub(t *testing.T) {
	a := State{TravelTime: 10, Distance: 100, Cost: decimal.NewFromFloat(5.5), Load: []int64{1, 2}}
	b := State{TravelTime: 5, Distance: 50, Cost: decimal.NewFromFloat(2.5), Load: []int64{1, 1}}

	sum := a.Add(b)
	require.Equal(t, int64(15), sum.TravelTime)
	require.Equal(t, int64(150), sum.Distance)
	require.True(t, sum.Cost.Equal(decimal.NewFromFloat(8.0)))
	require.Equal(t, []int64{2, 3}, sum.Load)

	diff := sum.Sub(b)
	require.Equal(t, a.TravelTime, diff.TravelTime)
	require.Equal(t, a.Distance, diff.Distance)
	require.True(t, diff.Cost.Equal(a.Cost))
}

func TestStateLessOrdering(t *testing.T) {
	// travel time dominates
	require.True(t, State{TravelTime: 1, Cost: decimal.NewFromInt(100)}.Less(State{TravelTime: 2, Cost: decimal.NewFromInt(0)}))
	// then cost
	require.True(t, State{TravelTime: 1, Cost: decimal.NewFromInt(1)}.Less(State{TravelTime: 1, Cost: decimal.NewFromInt(2)}))
	// then distance
	require.True(t, State{TravelTime: 1, Cost: decimal.NewFromInt(1), Distance: 1}.Less(State{TravelTime: 1, Cost: decimal.NewFromInt(1), Distance: 2}))
}

func TestStateCostCents(t *testing.T) {
	s := State{Cost: decimal.NewFromFloat(12.345)}
	require.Equal(t, int64(1235), s.CostCents()) // rounds to nearest cent
}

func TestWindowContainsAndParse(t *testing.T) {
	w, err := ParseWindow("2026-01-01T08:00:00Z", "2026-01-01T10:00:00Z")
	require.NoError(t, err)
	require.True(t, w.Contains(w.Start))
	require.True(t, w.Contains(w.End))
	require.False(t, w.Contains(w.End+1))

	_, err = ParseWindow("2026-01-01T10:00:00Z", "2026-01-01T08:00:00Z")
	require.ErrorIs(t, err, ErrInvalidWindow)
}
