package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDisabledLoggerDiscards(t *testing.T) {
	l, err := New(Config{Enabled: false})
	if err != nil {
		t.Fatal(err)
	}
	// No file, no panic.
	l.Log(LevelError, "dropped", nil)
	l.Warnf("also dropped")
	if err := l.Close(); err != nil {
		t.Errorf("Close on disabled logger: %v", err)
	}
}

func TestNilLoggerIsSafe(t *testing.T) {
	var l *Logger
	l.Log(LevelError, "nothing", nil)
	l.Debugf("nothing")
	if err := l.Close(); err != nil {
		t.Errorf("Close on nil logger: %v", err)
	}
}

func TestLevelFilter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pv.log")
	l, err := New(Config{Enabled: true, Level: LevelWarn, FilePath: path})
	if err != nil {
		t.Fatal(err)
	}

	l.Debugf("too quiet")
	l.Warnf("loud enough")
	l.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if strings.Contains(out, "too quiet") {
		t.Error("debug entry written despite warn level")
	}
	if !strings.Contains(out, "loud enough") {
		t.Error("warn entry missing")
	}
}

func TestFieldsSortedAndQuoted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pv.log")
	l, err := New(Config{Enabled: true, Level: LevelDebug, FilePath: path})
	if err != nil {
		t.Fatal(err)
	}

	l.Log(LevelInfo, "event dropped", map[string]interface{}{
		"window": 42,
		"kind":   "MappingNotify",
	})
	l.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	line := string(data)
	if !strings.Contains(line, `kind="MappingNotify" window=42`) {
		t.Errorf("fields not sorted/quoted as expected: %q", line)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"WARN", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"info", LevelInfo},
		{"garbage", LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
