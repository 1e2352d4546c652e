// Package rvrpconstruct implements the greedy tour constructor: for
// each Courier, repeatedly open the nearest reachable depot that still
// has an unassigned Job, then greedily grow that Track one cheapest
// feasible Job at a time until no further Job can be added without
// breaking feasibility or the ability to eventually return to the
// Courier's end location.
//
// Grounded on original_source/routing/local_search/problem.cpp
// (RvrpProblem::init_route/init_track/choose_job/sorted_storages). All
// feasibility and cost decisions are delegated to rvrpeval.Problem —
// this package only sequences candidate Storages and Jobs.
package rvrpconstruct
