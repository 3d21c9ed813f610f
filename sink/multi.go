package sink

import (
	"io"

	"go.uber.org/multierr"

	"github.com/Philipp01105/treelog/core"
)

// Multi fans one record out to multiple sinks in order
type Multi struct {
	sinks []Sink
}

// NewMulti creates a fan-out sink
func NewMulti(sinks ...Sink) *Multi {
	return &Multi{sinks: sinks}
}

// Emit forwards the record to every child sink
func (m *Multi) Emit(path string, level core.Level, values ...interface{}) {
	for _, s := range m.sinks {
		s.Emit(path, level, values...)
	}
}

// EnvChanged forwards the notification to every env-aware child
func (m *Multi) EnvChanged(name string) {
	for _, s := range m.sinks {
		if ea, ok := s.(EnvAware); ok {
			ea.EnvChanged(name)
		}
	}
}

// Close closes every child sink that supports closing, combining
// their errors.
func (m *Multi) Close() error {
	var err error
	for _, s := range m.sinks {
		if c, ok := s.(io.Closer); ok {
			err = multierr.Append(err, c.Close())
		}
	}
	return err
}
