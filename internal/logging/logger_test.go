package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

var (
	_ Logger = (*ZerologAdapter)(nil)
	_ Logger = (*StdLoggerAdapter)(nil)
	_ Logger = NopLogger{}
)

// decodeLine parses the single JSON line an adapter wrote into buf.
func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("not a JSON log line: %v\n%s", err, buf.String())
	}
	return entry
}

func TestFieldConstructors(t *testing.T) {
	cause := errors.New("buffer exhausted")
	tests := []struct {
		name  string
		field Field
		key   string
		value any
	}{
		{"String", String("op", "div"), "op", "div"},
		{"Int", Int("bytes", 32), "bytes", 32},
		{"Uint64", Uint64("limit", 1<<40), "limit", uint64(1 << 40)},
		{"Float64", Float64("ratio", 0.5), "ratio", 0.5},
		{"Err", Err(cause), "error", cause},
		{"Err nil", Err(nil), "error", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.field.Key != tt.key {
				t.Errorf("Key = %q, want %q", tt.field.Key, tt.key)
			}
			if tt.field.Value != tt.value {
				t.Errorf("Value = %v, want %v", tt.field.Value, tt.value)
			}
		})
	}
}

func TestZerologAdapterEmitsStructuredLines(t *testing.T) {
	t.Run("Info carries component and fields", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf, "bigint.alloc")
		logger.Info("buffer allocated", Int("bytes", 32))

		entry := decodeLine(t, &buf)
		if entry["component"] != "bigint.alloc" {
			t.Errorf("component = %v, want bigint.alloc", entry["component"])
		}
		if entry["message"] != "buffer allocated" {
			t.Errorf("message = %v", entry["message"])
		}
		if entry["bytes"] != float64(32) {
			t.Errorf("bytes = %v, want 32", entry["bytes"])
		}
		if _, ok := entry["time"]; !ok {
			t.Error("missing timestamp")
		}
	})

	t.Run("Error attaches the cause", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf, "bigint.alloc")
		logger.Error("allocation failed", errors.New("out of arena"), Int("bytes", 1024))

		entry := decodeLine(t, &buf)
		if entry["level"] != "error" {
			t.Errorf("level = %v, want error", entry["level"])
		}
		if entry["error"] != "out of arena" {
			t.Errorf("error = %v, want out of arena", entry["error"])
		}
	})

	t.Run("Warn and Debug carry their levels", func(t *testing.T) {
		for _, tc := range []struct {
			level string
			emit  func(Logger)
		}{
			{"warn", func(l Logger) { l.Warn("buffer oversized") }},
			{"debug", func(l Logger) { l.Debug("buffer freed") }},
		} {
			var buf bytes.Buffer
			tc.emit(NewLogger(&buf, "bigint.alloc"))
			if entry := decodeLine(t, &buf); entry["level"] != tc.level {
				t.Errorf("level = %v, want %s", entry["level"], tc.level)
			}
		}
	})

	t.Run("Printf formats into the message", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf, "bigint")
		logger.Printf("freed %d of %d buffers", 3, 4)

		if entry := decodeLine(t, &buf); entry["message"] != "freed 3 of 4 buffers" {
			t.Errorf("message = %v", entry["message"])
		}
	})

	t.Run("Println joins its arguments", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf, "bigint")
		logger.Println("allocator", "swapped")

		entry := decodeLine(t, &buf)
		if msg, _ := entry["message"].(string); strings.TrimSpace(msg) != "allocator swapped" {
			t.Errorf("message = %q", msg)
		}
	})
}

// TestFieldRendering drives one field of every supported dynamic type
// through the adapter and checks the rendered JSON value.
func TestFieldRendering(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		want  any
	}{
		{"string", String("op", "sqrt"), "sqrt"},
		{"int", Int("sz", 8), float64(8)},
		{"int64", Field{Key: "delta", Value: int64(-1 << 40)}, float64(-1 << 40)},
		{"uint64", Uint64("cap", 1<<50), float64(1 << 50)},
		{"float64", Float64("load", 0.75), 0.75},
		{"error", Field{Key: "cause", Value: errors.New("divide by zero")}, "divide by zero"},
		{"fallback interface", Field{Key: "shape", Value: []int{2, 1}}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(&buf, "bigint")
			logger.Info("op done", tt.field)

			entry := decodeLine(t, &buf)
			got, ok := entry[tt.field.Key]
			if !ok {
				t.Fatalf("field %q missing: %s", tt.field.Key, buf.String())
			}
			if tt.want != nil && got != tt.want {
				t.Errorf("%s = %v, want %v", tt.field.Key, got, tt.want)
			}
		})
	}
}

func TestNewZerologAdapter(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewZerologAdapter(zerolog.New(&buf).Level(zerolog.DebugLevel))
	adapter.Debug("buffer allocated")
	if entry := decodeLine(t, &buf); entry["message"] != "buffer allocated" {
		t.Errorf("message = %v", entry["message"])
	}
}

func TestNewDefaultLogger(t *testing.T) {
	if NewDefaultLogger() == nil {
		t.Fatal("NewDefaultLogger returned nil")
	}
}

func TestNewLeveledLogger(t *testing.T) {
	t.Run("suppresses below the configured level", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLeveledLogger(&buf, "bigint.alloc", "warn")

		logger.Debug("quiet")
		logger.Info("quiet too")
		logger.Warn("loud")

		output := buf.String()
		if strings.Contains(output, "quiet") {
			t.Errorf("below-level messages must be suppressed, got: %s", output)
		}
		if !strings.Contains(output, "loud") {
			t.Errorf("warn message missing, got: %s", output)
		}
	})

	t.Run("disabled level yields a silent logger", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLeveledLogger(&buf, "bigint.alloc", "disabled")

		logger.Error("should not appear", errors.New("x"))
		if buf.Len() != 0 {
			t.Errorf("disabled logger wrote output: %s", buf.String())
		}
	})

	t.Run("unparseable level yields a silent logger", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLeveledLogger(&buf, "bigint.alloc", "shouting")

		logger.Warn("should not appear")
		if buf.Len() != 0 {
			t.Errorf("fallback logger wrote output: %s", buf.String())
		}
	})
}

func TestStdLoggerAdapter(t *testing.T) {
	newAdapter := func() (*StdLoggerAdapter, *bytes.Buffer) {
		var buf bytes.Buffer
		return NewStdLoggerAdapter(log.New(&buf, "", 0)), &buf
	}

	t.Run("levels map to bracketed prefixes", func(t *testing.T) {
		tests := []struct {
			prefix string
			emit   func(Logger)
		}{
			{"[DEBUG]", func(l Logger) { l.Debug("trace", Int("bit", 7)) }},
			{"[INFO]", func(l Logger) { l.Info("buffer allocated", Int("bytes", 16)) }},
			{"[WARN]", func(l Logger) { l.Warn("buffer oversized") }},
		}
		for _, tt := range tests {
			adapter, buf := newAdapter()
			tt.emit(adapter)
			if !strings.HasPrefix(buf.String(), tt.prefix) {
				t.Errorf("want prefix %s, got: %s", tt.prefix, buf.String())
			}
		}
	})

	t.Run("fields render as key=value", func(t *testing.T) {
		adapter, buf := newAdapter()
		adapter.Info("buffer allocated", Int("bytes", 16), String("kind", "zeroed"))

		output := buf.String()
		for _, want := range []string{"bytes=16", "kind=zeroed"} {
			if !strings.Contains(output, want) {
				t.Errorf("output missing %q: %s", want, output)
			}
		}
	})

	t.Run("Error includes the cause", func(t *testing.T) {
		adapter, buf := newAdapter()
		adapter.Error("allocation failed", errors.New("out of arena"))

		output := buf.String()
		if !strings.HasPrefix(output, "[ERROR]") || !strings.Contains(output, "out of arena") {
			t.Errorf("unexpected error line: %s", output)
		}
	})

	t.Run("Printf and Println pass through", func(t *testing.T) {
		adapter, buf := newAdapter()
		adapter.Printf("freed %d buffers", 2)
		adapter.Println("allocator", "swapped")

		output := buf.String()
		if !strings.Contains(output, "freed 2 buffers") {
			t.Errorf("Printf output missing: %s", output)
		}
		if !strings.Contains(output, "allocator swapped") {
			t.Errorf("Println output missing: %s", output)
		}
	})
}

// NopLogger must swallow every call without panicking.
func TestNopLogger(t *testing.T) {
	var logger Logger = NopLogger{}
	logger.Debug("a", String("k", "v"))
	logger.Info("b")
	logger.Warn("c")
	logger.Error("d", errors.New("ignored"))
	logger.Printf("%d", 1)
	logger.Println("x")
}
