package logger

import (
	"github.com/Philipp01105/treelog/core"
	"github.com/Philipp01105/treelog/sink"
)

// Lazy defers construction of a record's values until the level is
// known to be enabled. A log call whose single value is a Lazy (or a
// bare func() []interface{}) invokes it exactly once on acceptance
// and forwards the returned slice, flattened; when the record is
// filtered out the thunk is never called.
type Lazy func() []interface{}

// Logger is one handle for a logger path. Handles are created lazily
// by a Registry, cached for the life of the process, and never
// destroyed. A handle with no private sinks emits through its
// registry's default sink chain.
type Logger struct {
	path     string
	registry *Registry
	sinks    []sink.Sink
}

// Path returns the handle's logger path
func (l *Logger) Path() string {
	return l.path
}

// Enabled reports whether a record at the given level would be
// emitted, for callers who want to guard expensive work explicitly
// instead of using the Lazy convention.
func (l *Logger) Enabled(level core.Level) bool {
	return level >= l.registry.levels.Resolve(l.path)
}

// Log emits one record at the given level, if the resolved threshold
// for this path accepts it.
func (l *Logger) Log(level core.Level, values ...interface{}) {
	if level < l.registry.levels.Resolve(l.path) {
		return
	}

	values = expand(values)

	sinks := l.sinks
	if sinks == nil {
		sinks = l.registry.defaultSinks()
	}
	for _, s := range sinks {
		s.Emit(l.path, level, values...)
	}
}

// expand applies the deferred-argument convention: a single Lazy
// value is invoked now and its result replaces the value list.
func expand(values []interface{}) []interface{} {
	if len(values) != 1 {
		return values
	}
	switch thunk := values[0].(type) {
	case Lazy:
		return thunk()
	case func() []interface{}:
		return thunk()
	}
	return values
}

// Trace logs values at TRACE
func (l *Logger) Trace(values ...interface{}) {
	l.Log(core.TraceLevel, values...)
}

// Debug logs values at DEBUG
func (l *Logger) Debug(values ...interface{}) {
	l.Log(core.DebugLevel, values...)
}

// Info logs values at INFO
func (l *Logger) Info(values ...interface{}) {
	l.Log(core.InfoLevel, values...)
}

// Warn logs values at WARN
func (l *Logger) Warn(values ...interface{}) {
	l.Log(core.WarnLevel, values...)
}

// Error logs values at ERROR
func (l *Logger) Error(values ...interface{}) {
	l.Log(core.ErrorLevel, values...)
}

// Fatal logs values at FATAL. The facade never exits the process;
// FATAL is the most severe rank, nothing more.
func (l *Logger) Fatal(values ...interface{}) {
	l.Log(core.FatalLevel, values...)
}

// Sink adapts the handle into a sink, so one logger's accepted
// records can feed another logger's own threshold and sink chain.
// The incoming record's path is discarded; re-dispatch happens under
// this handle's path.
func (l *Logger) Sink() sink.Sink {
	return sink.Func(func(_ string, level core.Level, values ...interface{}) {
		l.Log(level, values...)
	})
}
