package rvrpseq

import "github.com/DmitryPl/rvrp-go/rvrpmodel"

// Cross splices the contiguous range seq1[i1:i2] with seq2[i3:i4],
// returning the two new sequences with those ranges exchanged
// in place of each other. Ranges may differ in length; the
// surrounding prefix/suffix of each sequence is preserved.
func Cross(seq1, seq2 []*rvrpmodel.Job, i1, i2, i3, i4 int) ([]*rvrpmodel.Job, []*rvrpmodel.Job, error) {
	if i1 < 0 || i1 > i2 || i2 > len(seq1) {
		return nil, nil, ErrInvalidRange
	}
	if i3 < 0 || i3 > i4 || i4 > len(seq2) {
		return nil, nil, ErrInvalidRange
	}
	range1 := seq1[i1:i2]
	range2 := seq2[i3:i4]

	out1 := make([]*rvrpmodel.Job, 0, len(seq1)-len(range1)+len(range2))
	out1 = append(out1, seq1[:i1]...)
	out1 = append(out1, range2...)
	out1 = append(out1, seq1[i2:]...)

	out2 := make([]*rvrpmodel.Job, 0, len(seq2)-len(range2)+len(range1))
	out2 = append(out2, seq2[:i3]...)
	out2 = append(out2, range1...)
	out2 = append(out2, seq2[i4:]...)

	return out1, out2, nil
}
