// Package rvrpmetrics provides the Prometheus instrumentation for
// rvrpimprove's control loops, grounded on
// Sternrassler-eve-o-provit/backend/internal/metrics's promauto usage.
// Unlike that package's bare global vars, metrics here live on a
// Collector value so a program can run more than one Engine (or test)
// without double-registering against the default registry.
//
// Collector is nil-safe: every method is a no-op on a nil receiver, so
// callers that don't care about observability can pass a nil *Collector
// and pay nothing beyond the pointer check. NewNoop() instead returns
// real instruments registered on a private registry.
package rvrpmetrics
