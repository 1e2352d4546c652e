package rvrpseq

import "github.com/DmitryPl/rvrp-go/rvrpmodel"

// Swap reverses the segment seq[x..y] (inclusive, 0 <= x <= y <
// len(seq)), mirroring the teacher's reverseArcInPlace but operating on
// a Track's job list rather than a closed tour. It allows the
// "circular" orientation used by 2-opt on a Track that returns to its
// depot (CircleTrack): when circular is true and x > y, the segment
// wraps around the end of the slice instead of returning an error.
//
// Swap returns a new slice; the input is left untouched.
func Swap(seq []*rvrpmodel.Job, x, y int, circular bool) ([]*rvrpmodel.Job, error) {
	n := len(seq)
	if n == 0 {
		return append([]*rvrpmodel.Job(nil), seq...), nil
	}
	if x < 0 || x >= n || y < 0 || y >= n {
		return nil, ErrIndexOutOfRange
	}
	out := append([]*rvrpmodel.Job(nil), seq...)

	if x <= y {
		reverseInPlace(out, x, y)
		return out, nil
	}
	if !circular {
		return nil, ErrInvalidRange
	}
	// Circular: reverse the wrap-around segment [x..n-1] + [0..y] by
	// walking inward from both logical ends.
	length := (n - x) + (y + 1)
	for i := 0; i < length/2; i++ {
		li := (x + i) % n
		ri := (y - i + n) % n
		out[li], out[ri] = out[ri], out[li]
	}
	return out, nil
}

// reverseInPlace reverses out[i..j] inclusive via the classic
// half-length swap sweep.
func reverseInPlace(out []*rvrpmodel.Job, i, j int) {
	for i < j {
		out[i], out[j] = out[j], out[i]
		i++
		j--
	}
}
