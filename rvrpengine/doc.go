// Package rvrpengine provides Engine, the single entry point that
// wires together rvrpconstruct, rvrpinsert, rvrpimprove, and rvrpruin
// over one Tour. It is a renamed, idiomatic-Go MadrichEngine
// (original_source/routing/local_search/engine.h): the same
// BuildTour/Improve/AddJob/RemoveJob/AssignedJobs/UnassignedJobs/
// GetState surface, with job/courier/storage identity staying
// string-based and a google/uuid identifier per Route added purely for
// log/metric correlation.
package rvrpengine
