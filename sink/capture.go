package sink

import (
	"sync"

	"github.com/Philipp01105/treelog/core"
)

// Record is one captured log record
type Record struct {
	Path   string
	Level  core.Level
	Values []interface{}
}

// Capture stores accepted records in memory. It exists for tests and
// for hosts that inspect log output programmatically.
type Capture struct {
	mu      sync.Mutex
	records []Record
}

// NewCapture creates an empty capture sink
func NewCapture() *Capture {
	return &Capture{}
}

// Emit appends one record. The values slice is copied so later
// mutation by the caller cannot corrupt the capture.
func (c *Capture) Emit(path string, level core.Level, values ...interface{}) {
	copied := make([]interface{}, len(values))
	copy(copied, values)

	c.mu.Lock()
	c.records = append(c.records, Record{Path: path, Level: level, Values: copied})
	c.mu.Unlock()
}

// Records returns a snapshot of everything captured so far
func (c *Capture) Records() []Record {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Record, len(c.records))
	copy(out, c.records)
	return out
}

// Len returns the number of captured records
func (c *Capture) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.records)
}

// Reset discards all captured records
func (c *Capture) Reset() {
	c.mu.Lock()
	c.records = c.records[:0]
	c.mu.Unlock()
}
