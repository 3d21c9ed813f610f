// Package sink defines where accepted log records go.
//
// A Sink receives (path, level, values...) for every record that
// passed its logger's threshold. Dispatch is a synchronous call chain
// from the log call to the sink; there is no queueing or batching, so
// a slow sink blocks its caller. A sink that panics propagates the
// panic to the log call site.
//
// Built-in sinks:
//
//   - Stream writes a "<timestamp> <path>] <LEVEL>" prefixed line to
//     an io.Writer pair, routing ERROR and worse to the error writer.
//   - Capture stores records in memory for tests and inspection.
//   - Multi fans a record out to several child sinks.
//   - Zap forwards records into a zap.Logger.
//   - Func adapts a bare callback.
//
// Sinks that hold resources implement io.Closer; sinks that memoize
// environment state implement EnvAware and are invalidated through
// the registry's EnvChanged.
package sink
