package sink

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/spf13/cast"

	"github.com/Philipp01105/treelog/core"
)

// NoDateVar names the environment variable that suppresses record
// timestamps when set to a truthy value.
const NoDateVar = "LOG_NO_DATE"

// TimeFormat is the record timestamp layout
const TimeFormat = "2006-01-02 15:04:05.000"

// Stream writes formatted records to a pair of writers. Records at
// ERROR or worse route to the error writer, everything else to the
// standard writer. Each record is prefixed with
// "<timestamp> <path>] <LEVEL>"; the timestamp part is dropped when
// LOG_NO_DATE is truthy.
type Stream struct {
	out    io.Writer
	err    io.Writer
	clock  core.Clock
	getenv func(string) string

	mu          sync.Mutex
	noDate      bool
	noDateValid bool
}

// StreamConfig holds configuration for a stream sink
type StreamConfig struct {
	// Out receives records below ERROR (default: os.Stdout)
	Out io.Writer
	// Err receives records at ERROR and FATAL (default: os.Stderr)
	Err io.Writer
	// Clock is the timestamp source (default: time.Now)
	Clock core.Clock
	// Getenv is the environment lookup (default: os.Getenv)
	Getenv func(string) string
}

// NewStream creates a stream sink
func NewStream(cfg StreamConfig) *Stream {
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.Err == nil {
		cfg.Err = os.Stderr
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.Getenv == nil {
		cfg.Getenv = os.Getenv
	}
	return &Stream{
		out:    cfg.Out,
		err:    cfg.Err,
		clock:  cfg.Clock,
		getenv: cfg.Getenv,
	}
}

// Emit formats and writes one record
func (s *Stream) Emit(path string, level core.Level, values ...interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	s.formatPrefix(buf, path, level)
	for _, v := range values {
		buf.WriteByte(' ')
		fmt.Fprint(buf, v)
	}
	buf.WriteByte('\n')

	w := s.out
	if level >= core.ErrorLevel {
		w = s.err
	}

	s.mu.Lock()
	w.Write(buf.Bytes())
	s.mu.Unlock()
}

func (s *Stream) formatPrefix(buf *bytes.Buffer, path string, level core.Level) {
	if !s.suppressDate() {
		buf.Write(s.clock().AppendFormat(buf.AvailableBuffer(), TimeFormat))
		buf.WriteByte(' ')
	}
	buf.WriteString(path)
	buf.WriteString("] ")
	buf.WriteString(level.String())
}

// suppressDate reads LOG_NO_DATE once and memoizes the answer until
// the next EnvChanged.
func (s *Stream) suppressDate() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.noDateValid {
		s.noDate = truthy(s.getenv(NoDateVar))
		s.noDateValid = true
	}
	return s.noDate
}

// EnvChanged invalidates the memoized LOG_NO_DATE flag
func (s *Stream) EnvChanged(name string) {
	if name != "" && name != NoDateVar {
		return
	}
	s.mu.Lock()
	s.noDateValid = false
	s.mu.Unlock()
}

// truthy follows the "any truthy or parseable-nonzero value" rule:
// "1", "true" and any nonzero integer count, "" and "0" and "false"
// do not.
func truthy(v string) bool {
	return cast.ToBool(v) || cast.ToInt(v) != 0
}
