// Package core defines Graph, a minimal weighted adjacency structure:
// just enough vertex/edge bookkeeping for dijkstra to run over, and
// for rvrpmatrix.BuildFromGraph to build one from road-network data.
//
// Trimmed from the teacher's far larger core package (multigraph
// views, cloning, adjacency-matrix conversion, degree queries,
// concurrency-safety wrappers): none of that surface is reachable from
// any routing component, so only vertex/edge construction and
// adjacency queries survive here.
package core
