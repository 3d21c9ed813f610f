package logger

import (
	"io"
	"sync"

	"go.uber.org/multierr"

	"github.com/Philipp01105/treelog/core"
	"github.com/Philipp01105/treelog/resolver"
	"github.com/Philipp01105/treelog/sink"
)

// Registry owns the handle table, the level resolver, and the
// process-wide default sink chain. Constructing isolated registries
// is cheap, which keeps tests independent of global state.
type Registry struct {
	levels *resolver.State

	mu      sync.RWMutex
	loggers map[string]*Logger
	private []*Logger
	sinks   []sink.Sink
}

// Option configures a Registry during construction
type Option func(*Registry)

// WithSinks sets the default sink chain
func WithSinks(sinks ...sink.Sink) Option {
	return func(r *Registry) {
		r.sinks = sinks
	}
}

// WithResolver substitutes the level resolver, usually one built
// with a fake environment.
func WithResolver(s *resolver.State) Option {
	return func(r *Registry) {
		r.levels = s
	}
}

// NewRegistry creates a registry. Without options it resolves levels
// from the process environment and emits through a single stream
// sink on stdout/stderr.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		loggers: make(map[string]*Logger),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.levels == nil {
		r.levels = resolver.New()
	}
	if r.sinks == nil {
		r.sinks = []sink.Sink{sink.NewStream(sink.StreamConfig{})}
	}
	return r
}

// Get returns the handle for a path, creating it on first request.
// Idempotent: the same *Logger comes back for the same path for the
// life of the registry.
func (r *Registry) Get(path string) *Logger {
	r.mu.RLock()
	l, ok := r.loggers[path]
	r.mu.RUnlock()
	if ok {
		return l
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if l, ok := r.loggers[path]; ok {
		return l
	}
	l = &Logger{path: path, registry: r}
	r.loggers[path] = l
	return l
}

// NewLogger creates an unregistered handle with a private sink list,
// bypassing the default chain. Unlike Get it returns a fresh handle
// on every call.
func (r *Registry) NewLogger(path string, sinks ...sink.Sink) *Logger {
	l := &Logger{path: path, registry: r, sinks: sinks}
	r.mu.Lock()
	r.private = append(r.private, l)
	r.mu.Unlock()
	return l
}

// SetLevel configures an explicit level for a path
func (r *Registry) SetLevel(path string, level core.Level) error {
	return r.levels.SetLevel(path, level)
}

// ResetLevels clears all explicitly configured levels. Env-derived
// levels survive until EnvChanged.
func (r *Registry) ResetLevels() {
	r.levels.ResetLevels()
}

// Resolve returns the effective minimum severity for a path
func (r *Registry) Resolve(path string) core.Level {
	return r.levels.Resolve(path)
}

// SetSinks replaces the default sink chain. Handles created with a
// private sink list are unaffected.
func (r *Registry) SetSinks(sinks ...sink.Sink) {
	r.mu.Lock()
	r.sinks = sinks
	r.mu.Unlock()
}

func (r *Registry) defaultSinks() []sink.Sink {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sinks
}

// EnvChanged notifies the resolver and every env-aware sink that one
// tracked environment variable (or all, with the empty string) may
// have changed.
func (r *Registry) EnvChanged(name string) {
	r.levels.EnvChanged(name)
	for _, s := range r.allSinks() {
		if ea, ok := s.(sink.EnvAware); ok {
			ea.EnvChanged(name)
		}
	}
}

// Close closes every closable sink known to the registry
func (r *Registry) Close() error {
	var err error
	for _, s := range r.allSinks() {
		if c, ok := s.(io.Closer); ok {
			err = multierr.Append(err, c.Close())
		}
	}
	return err
}

// allSinks snapshots the default chain plus every handle's private
// sinks.
func (r *Registry) allSinks() []sink.Sink {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]sink.Sink, 0, len(r.sinks))
	out = append(out, r.sinks...)
	for _, l := range r.private {
		out = append(out, l.sinks...)
	}
	return out
}
