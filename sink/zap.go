package sink

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Philipp01105/treelog/core"
)

// Zap forwards accepted records to a zap.Logger, so treelog's
// hierarchical filtering can front an existing zap pipeline. The
// record values are rendered into the message; the logger path
// travels as a "logger" field.
type Zap struct {
	logger *zap.Logger
}

// NewZap creates a zap adapter sink
func NewZap(logger *zap.Logger) *Zap {
	return &Zap{logger: logger}
}

// Emit logs one record through the wrapped zap.Logger
func (z *Zap) Emit(path string, level core.Level, values ...interface{}) {
	// Sprintln gives consistent space separation regardless of
	// operand types; the trailing newline is zap's job to add
	msg := strings.TrimSuffix(fmt.Sprintln(values...), "\n")
	z.logger.Log(zapLevel(level), msg, zap.String("logger", path))
}

// Close flushes buffered records
func (z *Zap) Close() error {
	return z.logger.Sync()
}

// zapLevel maps treelog levels onto zapcore levels. TRACE collapses
// into Debug (zap has no finer level), and FATAL maps to Error
// because this facade never terminates the process on behalf of the
// caller, while zap's own Fatal would.
func zapLevel(level core.Level) zapcore.Level {
	switch level {
	case core.TraceLevel, core.DebugLevel:
		return zapcore.DebugLevel
	case core.InfoLevel:
		return zapcore.InfoLevel
	case core.WarnLevel:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
