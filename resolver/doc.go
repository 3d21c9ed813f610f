// Package resolver computes the effective minimum severity for a
// logger path.
//
// Three sources feed a resolution, in decreasing precedence at any
// single path granularity: levels configured through SetLevel, levels
// derived from the environment, and the default level. Granularity
// beats source: a configured or env entry on a nearer ancestor always
// wins over entries on a farther one, and wildcard entries sit
// between exact matches and the ancestor walk.
//
// The environment contributes one variable per severity name (TRACE
// through FATAL), each holding a comma-separated list of paths to
// enable at that severity, plus DEFAULT_LOG_LEVEL naming the fallback
// severity. All environment reads are performed once and memoized;
// EnvChanged invalidates them.
//
// Resolutions are memoized per path. Any mutation — a SetLevel that
// changes a value, ResetLevels, EnvChanged — clears the whole memo.
// Writes are expected to be rare, so wholesale invalidation is
// preferred over tracking which paths a mutation could affect.
package resolver
