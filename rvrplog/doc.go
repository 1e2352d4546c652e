// Package rvrplog provides the structured logging used by the
// rvrpimprove and rvrpengine packages. It wraps go.uber.org/zap
// rather than a hand-rolled key-value writer, grounded on
// other_examples' allocation-engine wiring of a *zap.Logger into an
// optimization loop.
//
// Every call site logs key-value pairs through Logger.Info/Warn/Error,
// mirroring the Debug/Info/Warn/Error shape of
// Sternrassler-eve-o-provit/backend/pkg/logger, and a Noop() logger
// discards everything for tests, matching that package's NewNoop().
package rvrplog
