package rvrpseq

import "github.com/DmitryPl/rvrp-go/rvrpmodel"

// Insert returns a new sequence with job placed at position place
// (0 <= place <= len(seq)), shifting the suffix right. place==len(seq)
// appends at the end.
func Insert(place int, job *rvrpmodel.Job, seq []*rvrpmodel.Job) ([]*rvrpmodel.Job, error) {
	if place < 0 || place > len(seq) {
		return nil, ErrIndexOutOfRange
	}
	out := make([]*rvrpmodel.Job, 0, len(seq)+1)
	out = append(out, seq[:place]...)
	out = append(out, job)
	out = append(out, seq[place:]...)
	return out, nil
}

// RemoveAt returns a new sequence with the element at index removed.
func RemoveAt(index int, seq []*rvrpmodel.Job) ([]*rvrpmodel.Job, error) {
	if index < 0 || index >= len(seq) {
		return nil, ErrIndexOutOfRange
	}
	out := make([]*rvrpmodel.Job, 0, len(seq)-1)
	out = append(out, seq[:index]...)
	out = append(out, seq[index+1:]...)
	return out, nil
}
