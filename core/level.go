package core

import "strings"

// Level represents the severity rank of a log record
type Level int8

const (
	// TraceLevel for very fine-grained tracing output
	TraceLevel Level = iota + 1
	// DebugLevel for detailed debugging information
	DebugLevel
	// InfoLevel for general informational messages (default)
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
	// FatalLevel for unrecoverable errors
	FatalLevel
)

// Levels lists all valid levels, least severe first
var Levels = [...]Level{TraceLevel, DebugLevel, InfoLevel, WarnLevel, ErrorLevel, FatalLevel}

// String returns the canonical uppercase name of the level. The same
// name doubles as the environment variable holding the level's
// enabled path list.
func (l Level) String() string {
	switch l {
	case TraceLevel:
		return "TRACE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether the level is one of the six defined ranks
func (l Level) Valid() bool {
	return l >= TraceLevel && l <= FatalLevel
}

// ParseLevel converts a string to a Level. The second return value is
// false when the string names no known level.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return TraceLevel, true
	case "DEBUG":
		return DebugLevel, true
	case "INFO":
		return InfoLevel, true
	case "WARN", "WARNING":
		return WarnLevel, true
	case "ERROR":
		return ErrorLevel, true
	case "FATAL":
		return FatalLevel, true
	default:
		return 0, false
	}
}
