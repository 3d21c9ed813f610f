package sink

import (
	"github.com/Philipp01105/treelog/core"
)

// Sink receives accepted log records. Emit is invoked once per
// accepted record per configured sink, synchronously on the caller's
// goroutine; a slow sink blocks its caller.
//
// Sinks may additionally implement io.Closer to release resources,
// and EnvAware to be told about environment changes.
type Sink interface {
	Emit(path string, level core.Level, values ...interface{})
}

// EnvAware is an optional interface for sinks whose behavior depends
// on memoized environment state. EnvChanged receives the variable
// name that may have changed, or the empty string for all of them.
type EnvAware interface {
	EnvChanged(name string)
}

// Func adapts a plain callback to the Sink interface
type Func func(path string, level core.Level, values ...interface{})

// Emit calls the callback
func (f Func) Emit(path string, level core.Level, values ...interface{}) {
	f(path, level, values...)
}
