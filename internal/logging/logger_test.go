package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// restoreLogger puts the package logger back after a test replaced it.
func restoreLogger(t *testing.T) {
	t.Helper()
	original := GetLogger()
	t.Cleanup(func() {
		mu.Lock()
		defaultLogger = original
		mu.Unlock()
		slog.SetDefault(original)
	})
}

func TestSetupLogger(t *testing.T) {
	restoreLogger(t)

	testCases := []struct {
		name      string
		level     LogLevel
		shouldLog map[slog.Level]bool
	}{
		{
			name:  "Debug level",
			level: LevelDebug,
			shouldLog: map[slog.Level]bool{
				slog.LevelDebug: true,
				slog.LevelInfo:  true,
				slog.LevelWarn:  true,
				slog.LevelError: true,
			},
		},
		{
			name:  "Warn level",
			level: LevelWarn,
			shouldLog: map[slog.Level]bool{
				slog.LevelDebug: false,
				slog.LevelInfo:  false,
				slog.LevelWarn:  true,
				slog.LevelError: true,
			},
		},
		{
			name:  "Upper case level is accepted",
			level: LogLevel("ERROR"),
			shouldLog: map[slog.Level]bool{
				slog.LevelDebug: false,
				slog.LevelInfo:  false,
				slog.LevelWarn:  false,
				slog.LevelError: true,
			},
		},
		{
			name:  "Empty level defaults to Info",
			level: LogLevel(""),
			shouldLog: map[slog.Level]bool{
				slog.LevelDebug: false,
				slog.LevelInfo:  true,
				slog.LevelWarn:  true,
				slog.LevelError: true,
			},
		},
		{
			name:  "Invalid level defaults to Info",
			level: LogLevel("invalid"),
			shouldLog: map[slog.Level]bool{
				slog.LevelDebug: false,
				slog.LevelInfo:  true,
				slog.LevelWarn:  true,
				slog.LevelError: true,
			},
		},
	}

	logFuncs := map[slog.Level]func(string, ...any){
		slog.LevelDebug: Debug,
		slog.LevelInfo:  Info,
		slog.LevelWarn:  Warn,
		slog.LevelError: Error,
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			if logger := SetupLogger(&buf, tc.level); logger == nil {
				t.Fatal("SetupLogger returned nil")
			}

			for level, logFunc := range logFuncs {
				buf.Reset()
				logFunc("test message", "key", "value")
				output := buf.String()

				didLog := strings.Contains(output, "test message")
				if didLog != tc.shouldLog[level] {
					t.Errorf("level %s: expected logged=%v, got output %q", level, tc.shouldLog[level], output)
				}
				if didLog && !strings.Contains(output, "key=value") {
					t.Errorf("Expected key-value pair in output, got: %s", output)
				}
			}
		})
	}
}

func TestDiscard(t *testing.T) {
	restoreLogger(t)

	Discard()
	// Nothing to assert on the output; the logger must simply stay usable.
	Error("dropped", "key", "value")
	if GetLogger() == nil {
		t.Fatal("GetLogger() returned nil after Discard")
	}
}

func TestMaskSensitive(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Empty string", input: "", expected: "<not set>"},
		{name: "Short string", input: "abc", expected: "<set>"},
		{name: "Exactly 4 characters", input: "abcd", expected: "<set>"},
		{name: "Token-like string", input: "ghp_2Dn5j8fk39Dkf0s", expected: "ghp_...***"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if result := MaskSensitive(tc.input); result != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, result)
			}
		})
	}
}
