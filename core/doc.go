// Package core defines the shared types used across treelog.
//
// It provides the Level type for severity filtering, helpers for
// working with dotted logger paths, and the Clock time source.
//
// Levels are numbered 1 (TRACE) through 6 (FATAL) and compare
// numerically. Each level's canonical uppercase name is also the name
// of the environment variable that enables paths at that level, so
// Level.String serves both output formatting and configuration
// lookup.
//
// Logger paths are dot-separated hierarchical identifiers. The empty
// string is the implicit root path; every other path descends from
// it. Paths are otherwise opaque: no character validation is applied.
// The Segments, Prefix, and Wildcard helpers exist for the resolver's
// ancestor walk and wildcard matching.
package core
