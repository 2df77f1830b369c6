package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if result := tt.level.String(); result != tt.expected {
			t.Errorf("Level(%d).String() = '%s', expected '%s'", tt.level, result, tt.expected)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"Warning", LevelWarn},
		{"error", LevelError},
		{"unknown", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		if result := ParseLevel(tt.input); result != tt.expected {
			t.Errorf("ParseLevel('%s') = %d, expected %d", tt.input, result, tt.expected)
		}
	}
}

func newBufLogger(level Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return New(Config{Level: level, Output: &buf, Prefix: "test"}), &buf
}

func TestLoggerLevels(t *testing.T) {
	logger, buf := newBufLogger(LevelWarn)

	logger.Debug("debug")
	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error")

	output := buf.String()
	if strings.Contains(output, "[DEBUG]") || strings.Contains(output, "[INFO]") {
		t.Errorf("expected debug and info to be filtered out, got: %s", output)
	}
	if !strings.Contains(output, "[WARN] test: warn") {
		t.Errorf("expected warn line with prefix, got: %s", output)
	}
	if !strings.Contains(output, "[ERROR]") {
		t.Error("expected ERROR in output")
	}
}

func TestLoggerFormat(t *testing.T) {
	logger, buf := newBufLogger(LevelInfo)
	logger.Info("formatted %s %d", "test", 42)

	if !strings.Contains(buf.String(), "formatted test 42") {
		t.Errorf("expected formatted message, got: %s", buf.String())
	}
}

func TestLoggerFieldsSorted(t *testing.T) {
	logger, buf := newBufLogger(LevelInfo)

	logger.WithFields(map[string]any{
		"zeta":  1,
		"alpha": "a",
	}).WithComponent("table").Info("render")

	want := "render {alpha=a, component=table, zeta=1}"
	if !strings.Contains(buf.String(), want) {
		t.Errorf("expected %q in output, got: %s", want, buf.String())
	}
}

func TestLoggerWithFieldDoesNotLeak(t *testing.T) {
	logger, buf := newBufLogger(LevelInfo)

	_ = logger.WithField("key", "value")
	logger.Info("plain")

	if strings.Contains(buf.String(), "key=value") {
		t.Errorf("expected parent logger to stay field-free, got: %s", buf.String())
	}
}

func TestLoggerSetLevelAndOutput(t *testing.T) {
	logger, buf := newBufLogger(LevelError)

	logger.Info("should not appear")
	if buf.Len() != 0 {
		t.Error("expected no output at error level")
	}
	if logger.Enabled(LevelInfo) {
		t.Error("expected info to be disabled")
	}

	logger.SetLevel(LevelInfo)
	logger.Info("should appear")
	if buf.Len() == 0 {
		t.Error("expected output after SetLevel")
	}

	var other bytes.Buffer
	logger.SetOutput(&other)
	logger.Info("to other")
	if !strings.Contains(other.String(), "to other") {
		t.Error("expected output to the new writer")
	}
}

func TestLoggerDisableEnable(t *testing.T) {
	logger, buf := newBufLogger(LevelInfo)

	logger.Disable()
	logger.Info("should not appear")
	if buf.Len() != 0 {
		t.Error("expected no output when disabled")
	}

	logger.Enable()
	logger.Info("should appear")
	if buf.Len() == 0 {
		t.Error("expected output when enabled")
	}
}

func TestNullAndDefault(t *testing.T) {
	n := Null()
	n.Warn("nothing")
	if n.Enabled(LevelError) {
		t.Error("null logger must be disabled")
	}

	if Default() == nil {
		t.Fatal("Default() returned nil")
	}

	logger, buf := newBufLogger(LevelInfo)
	prev := Default()
	SetDefault(logger)
	defer SetDefault(prev)

	Default().Info("via default")
	if !strings.Contains(buf.String(), "via default") {
		t.Error("expected SetDefault to replace the process logger")
	}
}
