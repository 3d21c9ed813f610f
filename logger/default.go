package logger

import (
	"sync"

	"github.com/Philipp01105/treelog/core"
)

var (
	defaultRegistry *Registry
	defaultMu       sync.RWMutex
)

func init() {
	// The default registry reads the process environment and writes
	// through a stream sink on stdout/stderr
	defaultRegistry = NewRegistry()
}

// Default returns the process-wide registry
func Default() *Registry {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultRegistry
}

// SetDefault replaces the process-wide registry
func SetDefault(r *Registry) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultRegistry = r
}

// Package-level convenience functions using the default registry

// GetLogger returns the default registry's handle for a path. The
// empty path names the root logger.
func GetLogger(path string) *Logger {
	return Default().Get(path)
}

// SetLevel configures an explicit level for a path on the default
// registry.
func SetLevel(path string, level core.Level) error {
	return Default().SetLevel(path, level)
}

// ResetLevels clears the default registry's configured levels
func ResetLevels() {
	Default().ResetLevels()
}

// EnvChanged notifies the default registry of an environment change
func EnvChanged(name string) {
	Default().EnvChanged(name)
}
