// Package rvrpruin implements the ruin half of ruin-and-recreate:
// random ruin (uniformly remove jobs from random nonempty Tracks) and
// radial ruin (remove a seed job plus every job within a travel-time
// radius of it). Both leave their Jobs on the owning Storage's
// unassigned list and clear any Track left empty afterward.
//
// Grounded on original_source/routing/local_search/ruin.cpp
// (MadrichEngine::random_ruin/radial_ruin/replace_job). RNG determinism
// is grounded on tsp/rng.go's rngFromSeed/deriveRNG SplitMix64 stream
// derivation: a fixed seed reproduces a ruin sequence exactly.
package rvrpruin

import "math/rand"

// defaultSeed is the fixed "zero" seed used when callers pass seed==0,
// matching tsp/rng.go's policy.
const defaultSeed int64 = 1

// NewRNG returns a deterministic *rand.Rand. seed==0 selects
// defaultSeed so a caller never accidentally gets Go's own
// time-seeded global source.
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}
