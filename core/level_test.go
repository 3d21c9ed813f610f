package core

import "testing"

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{TraceLevel, "TRACE"},
		{DebugLevel, "DEBUG"},
		{InfoLevel, "INFO"},
		{WarnLevel, "WARN"},
		{ErrorLevel, "ERROR"},
		{FatalLevel, "FATAL"},
		{Level(0), "UNKNOWN"},
		{Level(7), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestLevel_Valid(t *testing.T) {
	for _, l := range Levels {
		if !l.Valid() {
			t.Errorf("Level %v should be valid", l)
		}
	}
	if Level(0).Valid() {
		t.Error("Level(0) should not be valid")
	}
	if Level(7).Valid() {
		t.Error("Level(7) should not be valid")
	}
	if Level(-1).Valid() {
		t.Error("Level(-1) should not be valid")
	}
}

func TestLevel_Ordering(t *testing.T) {
	// Comparison is numeric, least to most severe
	prev := Level(0)
	for _, l := range Levels {
		if l <= prev {
			t.Errorf("Levels not strictly increasing: %v after %v", l, prev)
		}
		prev = l
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in    string
		want  Level
		valid bool
	}{
		{"TRACE", TraceLevel, true},
		{"trace", TraceLevel, true},
		{"Debug", DebugLevel, true},
		{"INFO", InfoLevel, true},
		{"WARN", WarnLevel, true},
		{"WARNING", WarnLevel, true},
		{"error", ErrorLevel, true},
		{"FATAL", FatalLevel, true},
		{" info ", InfoLevel, true},
		{"", 0, false},
		{"VERBOSE", 0, false},
		{"3", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseLevel(tt.in)
		if ok != tt.valid {
			t.Errorf("ParseLevel(%q) ok = %v, want %v", tt.in, ok, tt.valid)
			continue
		}
		if tt.valid && got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
