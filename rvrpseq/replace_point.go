package rvrpseq

import "github.com/DmitryPl/rvrp-go/rvrpmodel"

// ReplacePoint moves the single element at seq2[j] into seq1 at
// position i, returning both resulting sequences. This is the
// relocate primitive behind rvrpops's inter-replace operator.
func ReplacePoint(seq1, seq2 []*rvrpmodel.Job, i, j int) ([]*rvrpmodel.Job, []*rvrpmodel.Job, error) {
	if j < 0 || j >= len(seq2) {
		return nil, nil, ErrIndexOutOfRange
	}
	if i < 0 || i > len(seq1) {
		return nil, nil, ErrIndexOutOfRange
	}
	job := seq2[j]

	newSeq2, err := RemoveAt(j, seq2)
	if err != nil {
		return nil, nil, err
	}
	newSeq1, err := Insert(i, job, seq1)
	if err != nil {
		return nil, nil, err
	}
	return newSeq1, newSeq2, nil
}
