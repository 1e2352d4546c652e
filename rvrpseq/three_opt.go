package rvrpseq

import "github.com/DmitryPl/rvrp-go/rvrpmodel"

// ThreeOptVariant selects one of the seven distinct reconnections of a
// 3-opt move, following the teacher's {S1,S1R,S2,S2R}\{identity}
// enumeration (tsp/three_opt.go), where S1=seq[i:j] and S2=seq[j:k]
// with a fixed prefix seq[:i] and suffix seq[k:].
type ThreeOptVariant uint8

const (
	// VariantS1RS2 reverses S1 only: prefix + rev(S1) + S2 + suffix.
	VariantS1RS2 ThreeOptVariant = iota
	// VariantS1S2R reverses S2 only: prefix + S1 + rev(S2) + suffix.
	VariantS1S2R
	// VariantS1RS2R reverses both: prefix + rev(S1) + rev(S2) + suffix.
	VariantS1RS2R
	// VariantS2S1 swaps the segments without reversal: prefix + S2 + S1 + suffix.
	VariantS2S1
	// VariantS2RS1 swaps with S2 reversed: prefix + rev(S2) + S1 + suffix.
	VariantS2RS1
	// VariantS2S1R swaps with S1 reversed: prefix + S2 + rev(S1) + suffix.
	VariantS2S1R
	// VariantS2RS1R swaps with both reversed: prefix + rev(S2) + rev(S1) + suffix.
	VariantS2RS1R
)

// ThreeOptExchange reconnects seq at cut points 0 <= i < j < k <=
// len(seq) using the given variant and returns a new sequence of the
// same length. Internal arcs within S1/S2 are preserved by the
// reversal; only the three boundary arcs change, matching the
// teacher's Δ computation shape (the delta itself is the evaluator's
// concern — this function only rearranges job pointers).
func ThreeOptExchange(seq []*rvrpmodel.Job, i, j, k int, variant ThreeOptVariant) ([]*rvrpmodel.Job, error) {
	n := len(seq)
	if i < 0 || i >= j || j >= k || k > n {
		return nil, ErrInvalidRange
	}
	prefix := seq[:i]
	s1 := seq[i:j]
	s2 := seq[j:k]
	suffix := seq[k:]

	out := make([]*rvrpmodel.Job, 0, n)
	out = append(out, prefix...)

	switch variant {
	case VariantS1RS2:
		out = appendReversed(out, s1)
		out = append(out, s2...)
	case VariantS1S2R:
		out = append(out, s1...)
		out = appendReversed(out, s2)
	case VariantS1RS2R:
		out = appendReversed(out, s1)
		out = appendReversed(out, s2)
	case VariantS2S1:
		out = append(out, s2...)
		out = append(out, s1...)
	case VariantS2RS1:
		out = appendReversed(out, s2)
		out = append(out, s1...)
	case VariantS2S1R:
		out = append(out, s2...)
		out = appendReversed(out, s1)
	case VariantS2RS1R:
		out = appendReversed(out, s2)
		out = appendReversed(out, s1)
	default:
		return nil, ErrInvalidRange
	}
	out = append(out, suffix...)
	return out, nil
}

func appendReversed(dst, seg []*rvrpmodel.Job) []*rvrpmodel.Job {
	for idx := len(seg) - 1; idx >= 0; idx-- {
		dst = append(dst, seg[idx])
	}
	return dst
}

// AllThreeOptVariants lists every reconnection a caller should try for
// a given (i,j,k) triple, in the teacher's canonical scan order.
func AllThreeOptVariants() []ThreeOptVariant {
	return []ThreeOptVariant{
		VariantS1RS2, VariantS1S2R, VariantS1RS2R,
		VariantS2S1, VariantS2RS1, VariantS2S1R, VariantS2RS1R,
	}
}
