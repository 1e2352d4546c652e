package rvrpeval

import "github.com/DmitryPl/rvrp-go/rvrpmodel"

// waitSingle returns the seconds the courier must wait, from an
// absolute arrival time, for window to open. If arrival already falls
// within window, it returns (0, true). If window's start has already
// passed arrival's point of no return (i.e. arrival is after
// window.End), it returns (0, false): unreachable via this window.
//
// The predicate is a straightforward chained interval test
// (window.Start <= arrival && arrival <= window.End) — the spec's
// first Open Question flags that a left-associative chained
// comparison in the original source is almost certainly a bug; this
// implementation uses Go's short-circuit && explicitly, avoiding that
// hazard entirely.
func waitSingle(arrival int64, window rvrpmodel.Window) (int64, bool) {
	if window.Contains(arrival) {
		return 0, true
	}
	delta := window.Start - arrival
	if delta > 0 {
		return delta, true
	}
	return 0, false
}

// waiting computes the minimal nonnegative wait across every window in
// windows so that arrival+wait falls within at least one of them. If
// arrival already lies within any window, it returns 0. If no window
// can still be reached, it returns (0, false) — the caller must treat
// this as infeasible per spec §4.C.
func waiting(arrival int64, windows []rvrpmodel.Window) (int64, bool) {
	best := int64(-1)
	for _, w := range windows {
		wait, ok := waitSingle(arrival, w)
		if !ok {
			continue
		}
		if wait == 0 {
			return 0, true
		}
		if best == -1 || wait < best {
			best = wait
		}
	}
	if best == -1 {
		return 0, false
	}
	return best, true
}
