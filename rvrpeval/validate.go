package rvrpeval

import "github.com/DmitryPl/rvrp-go/rvrpmodel"

// ValidateStorage reports whether storage is one of courier's permitted
// depots and courier's skills satisfy storage's requirements. Callers
// (rvrpconstruct, rvrpinsert) use this to prune candidates before
// paying for a full Go* simulation step.
func ValidateStorage(storage *rvrpmodel.Storage, courier *rvrpmodel.Courier) error {
	if !courier.Permits(storage) {
		return ErrStorageNotPermitted
	}
	if !hasSkills(storage.Skills, courier.SkillSet()) {
		return ErrSkillMismatch
	}
	return nil
}

// ValidateJobSkills reports whether courier's skills satisfy job's
// required skills, independent of any travel/time feasibility.
func ValidateJobSkills(job *rvrpmodel.Job, courier *rvrpmodel.Courier) error {
	if !job.HasSkills(courier.SkillSet()) {
		return ErrSkillMismatch
	}
	return nil
}
