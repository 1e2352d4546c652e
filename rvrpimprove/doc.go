// Package rvrpimprove orchestrates ruin-and-recreate improvement over
// a built Tour: phase-gated local search (rvrpops), best-insertion
// recreate (rvrpinsert), and random ruin (rvrpruin), guarded by a tabu
// set of previously seen tour hashes so the search never re-commits a
// tour it has already tried.
//
// Grounded on original_source/routing/local_search/engine.cpp (phase
// bookkeeping, tabu hashing, get_from_copy commit rule) and
// improve_tour.cpp (the continuous_improve/improve_tour/intra_improve/
// inter_improve control loops). Every identifier here is a direct
// rename of the corresponding MadrichEngine member.
package rvrpimprove
