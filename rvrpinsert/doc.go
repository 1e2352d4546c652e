// Package rvrpinsert implements priority-tiered best-insertion: given a
// Tour with some Routes already built and some Jobs still unassigned,
// repeatedly insert the single cheapest feasible placement — either
// into an existing Track bound to the Job's Storage, or as a brand new
// Track — until no further Job at the current priority tier can be
// placed, then advance to the next tier.
//
// Grounded on original_source/routing/local_search/insert_best.cpp
// (MadrichEngine::unassigned_insert/insert_best/choose_best/insert_job/insert_track).
// Every candidate placement is scored by re-evaluating the whole
// candidate Route through rvrpeval.Problem and taking the resulting
// State delta against the Route's current State — the same rule
// insert_job/insert_track use (`state - route.state`).
package rvrpinsert
