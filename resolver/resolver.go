package resolver

import (
	"os"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/Philipp01105/treelog/core"
)

// DefaultLevelVar names the environment variable that overrides the
// INFO fallback with another severity name.
const DefaultLevelVar = "DEFAULT_LOG_LEVEL"

// ErrInvalidLevel is returned by SetLevel for a severity outside the
// six defined ranks. The configured table is left unmodified.
var ErrInvalidLevel = errors.New("treelog: invalid level")

// Getenv looks up one environment variable. It exists as a seam so
// tests can substitute a fake environment and count reads.
type Getenv func(string) string

// State owns the three level sources and the memoized resolution
// cache. One process-wide instance backs the default registry;
// isolated instances are cheap to construct for tests.
//
// Precedence, most to least specific:
//
//  1. exact configured entry, then exact env entry
//  2. wildcard entries ("p.*"), longest prefix first, configured
//     before env at each prefix
//  3. ancestor walk, nearest ancestor first, configured before env
//     at each ancestor (the empty root path is the last ancestor)
//  4. the default level
//
// A wildcard entry applies to strict descendants of its prefix only,
// never to the prefix path itself.
type State struct {
	mu         sync.RWMutex
	getenv     Getenv
	configured map[string]core.Level
	env        map[string]core.Level // nil until derived
	def        core.Level
	defValid   bool
	cache      map[string]core.Level
}

// Option configures a State during construction
type Option func(*State)

// WithGetenv substitutes the environment lookup function
func WithGetenv(fn Getenv) Option {
	return func(s *State) {
		s.getenv = fn
	}
}

// New creates a State reading the process environment. The env table
// and default level are derived lazily on first Resolve.
func New(opts ...Option) *State {
	s := &State{
		getenv:     os.Getenv,
		configured: make(map[string]core.Level),
		cache:      make(map[string]core.Level),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Resolve returns the effective minimum severity for a path.
// Deterministic given current table state; memoized until the next
// mutation.
func (s *State) Resolve(path string) core.Level {
	s.mu.RLock()
	if l, ok := s.cache[path]; ok {
		s.mu.RUnlock()
		return l
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	// Another goroutine may have filled the entry between the locks
	if l, ok := s.cache[path]; ok {
		return l
	}
	l := s.resolveLocked(path)
	s.cache[path] = l
	return l
}

func (s *State) resolveLocked(path string) core.Level {
	s.deriveEnvLocked()

	if l, ok := s.lookupLocked(path); ok {
		return l
	}

	segments := core.Segments(path)

	// Wildcard pass: "foo.*" covers foo.bar and foo.bar.baz but not
	// foo itself, so the path's own segment count is excluded.
	for k := len(segments) - 1; k >= 0; k-- {
		if l, ok := s.lookupLocked(core.Wildcard(segments, k)); ok {
			return l
		}
	}

	// Ancestor walk, immediate parent up to the implicit root
	for k := len(segments) - 1; k >= 0; k-- {
		if l, ok := s.lookupLocked(core.Prefix(segments, k)); ok {
			return l
		}
	}

	return s.defaultLevelLocked()
}

// lookupLocked checks both tables at a single path granularity;
// configured always dominates env at the same granularity.
func (s *State) lookupLocked(key string) (core.Level, bool) {
	if l, ok := s.configured[key]; ok {
		return l, true
	}
	if l, ok := s.env[key]; ok {
		return l, true
	}
	return 0, false
}

// deriveEnvLocked computes the env table once, keeping it until an
// EnvChanged notification. Severities are visited from FATAL down to
// TRACE so that when several variables list the same path, the most
// verbose assignment, applied last, wins: DEBUG=foo plus TRACE=foo
// enables foo at TRACE.
func (s *State) deriveEnvLocked() {
	if s.env != nil {
		return
	}
	table := make(map[string]core.Level)
	for i := len(core.Levels) - 1; i >= 0; i-- {
		level := core.Levels[i]
		v := s.getenv(level.String())
		if v == "" {
			continue
		}
		for _, target := range strings.Split(v, ",") {
			if target == "" {
				continue
			}
			table[target] = level
		}
	}
	s.env = table
}

func (s *State) defaultLevelLocked() core.Level {
	if !s.defValid {
		if l, ok := core.ParseLevel(s.getenv(DefaultLevelVar)); ok {
			s.def = l
		} else {
			s.def = core.InfoLevel
		}
		s.defValid = true
	}
	return s.def
}

// DefaultLevel returns the current fallback severity, deriving it
// from the environment if needed.
func (s *State) DefaultLevel() core.Level {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.defaultLevelLocked()
}

// SetLevel configures an explicit level for a path. Configured
// entries take precedence over env entries at the same granularity.
// Setting the value already configured is a no-op and keeps the
// cache warm.
func (s *State) SetLevel(path string, level core.Level) error {
	if !level.Valid() {
		return errors.Wrapf(ErrInvalidLevel, "cannot set %q to %d", path, level)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if current, ok := s.configured[path]; ok && current == level {
		return nil
	}
	s.configured[path] = level
	clear(s.cache)
	return nil
}

// ResetLevels clears the configured table and the cache. The
// env-derived table and default level survive; use EnvChanged to
// invalidate those.
func (s *State) ResetLevels() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.configured)
	clear(s.cache)
}

// EnvChanged tells the resolver that one tracked environment
// variable (or, with the empty string, all of them) may have changed.
// Affected derivations and the cache are invalidated; untracked
// names are ignored.
func (s *State) EnvChanged(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case name == "":
		s.env = nil
		s.defValid = false
	case name == DefaultLevelVar:
		s.defValid = false
	case isLevelVar(name):
		s.env = nil
	default:
		return
	}
	clear(s.cache)
}

func isLevelVar(name string) bool {
	for _, level := range core.Levels {
		if name == level.String() {
			return true
		}
	}
	return false
}
