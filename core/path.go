package core

import "strings"

// Separator is the hierarchy separator in logger paths.
// "foo.bar.baz" is a descendant of "foo.bar" and "foo"; the empty
// string is the implicit root path.
const Separator = "."

// WildcardSuffix marks a configured path that applies to all strict
// descendants of its prefix but not to the prefix path itself.
const WildcardSuffix = ".*"

// Segments splits a logger path into its components. The root path
// has zero segments.
func Segments(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, Separator)
}

// Prefix joins the first k segments back into a sub-path. k = 0
// yields the root path.
func Prefix(segments []string, k int) string {
	if k <= 0 {
		return ""
	}
	return strings.Join(segments[:k], Separator)
}

// Wildcard returns the wildcard key covering strict descendants of
// the sub-path formed by the first k segments. The root wildcard is
// the bare "*".
func Wildcard(segments []string, k int) string {
	if k <= 0 {
		return "*"
	}
	return strings.Join(segments[:k], Separator) + WildcardSuffix
}

// IsWildcard reports whether a configured path is a wildcard key
func IsWildcard(path string) bool {
	return path == "*" || strings.HasSuffix(path, WildcardSuffix)
}
