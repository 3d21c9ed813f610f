package sink

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/Philipp01105/treelog/core"
)

func fixedClock() time.Time {
	return time.Date(2024, 5, 4, 10, 30, 0, 0, time.UTC)
}

func newTestStream(vars map[string]string) (*Stream, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	s := NewStream(StreamConfig{
		Out:    &out,
		Err:    &errOut,
		Clock:  fixedClock,
		Getenv: func(key string) string { return vars[key] },
	})
	return s, &out, &errOut
}

func TestStream_Prefix(t *testing.T) {
	s, out, _ := newTestStream(nil)

	s.Emit("foo.bar", core.InfoLevel, "a", "b")

	want := "2024-05-04 10:30:00.000 foo.bar] INFO a b\n"
	if got := out.String(); got != want {
		t.Errorf("Emit wrote %q, want %q", got, want)
	}
}

func TestStream_RootPath(t *testing.T) {
	s, out, _ := newTestStream(map[string]string{NoDateVar: "1"})

	s.Emit("", core.WarnLevel, "boot")

	want := "] WARN boot\n"
	if got := out.String(); got != want {
		t.Errorf("Emit wrote %q, want %q", got, want)
	}
}

func TestStream_NoDate(t *testing.T) {
	s, out, _ := newTestStream(map[string]string{NoDateVar: "1"})

	s.Emit("foo", core.InfoLevel, "hello")

	want := "foo] INFO hello\n"
	if got := out.String(); got != want {
		t.Errorf("Emit wrote %q, want %q", got, want)
	}
}

func TestStream_SeverityRouting(t *testing.T) {
	tests := []struct {
		level   core.Level
		toError bool
	}{
		{core.TraceLevel, false},
		{core.DebugLevel, false},
		{core.InfoLevel, false},
		{core.WarnLevel, false},
		{core.ErrorLevel, true},
		{core.FatalLevel, true},
	}

	for _, tt := range tests {
		s, out, errOut := newTestStream(nil)
		s.Emit("foo", tt.level, "x")

		if tt.toError {
			if errOut.Len() == 0 || out.Len() != 0 {
				t.Errorf("%v record not routed to error writer", tt.level)
			}
		} else {
			if out.Len() == 0 || errOut.Len() != 0 {
				t.Errorf("%v record not routed to standard writer", tt.level)
			}
		}
	}
}

func TestStream_NoValues(t *testing.T) {
	s, out, _ := newTestStream(map[string]string{NoDateVar: "1"})

	s.Emit("foo", core.InfoLevel)

	want := "foo] INFO\n"
	if got := out.String(); got != want {
		t.Errorf("Emit wrote %q, want %q", got, want)
	}
}

func TestStream_EnvChanged(t *testing.T) {
	vars := map[string]string{}
	s, out, _ := newTestStream(vars)

	s.Emit("foo", core.InfoLevel, "with date")
	if !strings.HasPrefix(out.String(), "2024-05-04") {
		t.Fatalf("expected dated output, got %q", out.String())
	}

	// The flag is memoized: flipping the variable alone changes nothing
	vars[NoDateVar] = "1"
	out.Reset()
	s.Emit("foo", core.InfoLevel, "still dated")
	if !strings.HasPrefix(out.String(), "2024-05-04") {
		t.Errorf("flag re-read without EnvChanged, got %q", out.String())
	}

	s.EnvChanged(NoDateVar)
	out.Reset()
	s.Emit("foo", core.InfoLevel, "bare")
	if got := out.String(); got != "foo] INFO bare\n" {
		t.Errorf("Emit wrote %q after EnvChanged, want undated line", got)
	}
}

func TestStream_EnvChangedUnrelatedName(t *testing.T) {
	vars := map[string]string{}
	s, out, _ := newTestStream(vars)

	s.Emit("foo", core.InfoLevel, "x")
	vars[NoDateVar] = "1"
	s.EnvChanged("DEBUG")

	out.Reset()
	s.Emit("foo", core.InfoLevel, "x")
	if !strings.HasPrefix(out.String(), "2024-05-04") {
		t.Errorf("unrelated EnvChanged invalidated the date flag, got %q", out.String())
	}
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"1", true},
		{"true", true},
		{"TRUE", true},
		{"2", true},
		{"-1", true},
		{"banana", false},
	}

	for _, tt := range tests {
		if got := truthy(tt.in); got != tt.want {
			t.Errorf("truthy(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
