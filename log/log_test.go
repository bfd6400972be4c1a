package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestLogger_Make_DefaultConfiguration(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf)

	if logger.config.level != LevelInfo {
		t.Errorf("expected default level Info, got %v", logger.config.level)
	}

	if logger.config.caller {
		t.Error("expected caller info disabled by default")
	}

	if logger.config.format != FormatText {
		t.Errorf("expected default format text, got %v", logger.config.format)
	}
}

func TestLogger_Make_WithLevel_FiltersMessages(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithLevel(LevelDebug))

	logger.Debug("debug message")

	if !strings.Contains(buf.String(), "debug message") {
		t.Error("debug message not logged after setting level to Debug")
	}

	buf.Reset()

	logger2 := Make(&buf, WithLevel(LevelError))
	logger2.Info("info message")

	if buf.Len() > 0 {
		t.Error("info message logged when level is Error")
	}

	logger2.Error("error message")

	if !strings.Contains(buf.String(), "error message") {
		t.Error("error message not logged at Error level")
	}
}

func TestLogger_Make_WithFormat_SetsOutputFormat(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer

		logger := Make(&buf, WithFormat(FormatJSON), WithPretty(false))
		logger.Info("test message", slog.String("key", "value"))

		var result map[string]any
		if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
			t.Fatalf("failed to parse JSON output: %v", err)
		}

		if result["msg"] != "test message" {
			t.Errorf("expected msg=test message, got %v", result["msg"])
		}

		if result["key"] != "value" {
			t.Errorf("expected key=value, got %v", result["key"])
		}
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer

		logger := Make(&buf, WithFormat(FormatText), WithPretty(false))
		logger.Info("test message", slog.String("key", "value"))

		output := buf.String()
		if !strings.Contains(output, "msg=") {
			t.Errorf("expected key=value text output, got: %s", output)
		}

		if !strings.Contains(output, "key=value") {
			t.Errorf("expected attribute in text output, got: %s", output)
		}
	})
}

func TestLogger_Trace_RendersAsTrace(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithLevel(LevelTrace), WithPretty(false))
	logger.Trace("trace message")

	output := buf.String()
	if !strings.Contains(output, "TRACE") {
		t.Errorf("expected TRACE level label, got: %s", output)
	}

	if strings.Contains(output, "DEBUG-4") {
		t.Errorf("trace level rendered with slog default label: %s", output)
	}
}

func TestLogger_Trace_DiscardedAtDefaultLevel(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf)
	logger.Trace("trace message")

	if buf.Len() > 0 {
		t.Errorf("trace message logged at default level: %s", buf.String())
	}
}

func TestLogger_Wrap_OverridesConfiguration(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithLevel(LevelError))
	wrapped := logger.Wrap(WithLevel(LevelDebug))

	wrapped.Debug("debug message")

	if !strings.Contains(buf.String(), "debug message") {
		t.Error("wrapped logger did not apply overridden level")
	}

	buf.Reset()

	// The original logger must be unaffected.
	logger.Debug("hidden message")

	if buf.Len() > 0 {
		t.Error("Wrap mutated the original logger configuration")
	}
}

func TestLogger_With_IncludesAttributes(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithPretty(false)).
		With(slog.String("component", "lexer"))

	logger.Info("scanning")

	if !strings.Contains(buf.String(), "component=lexer") {
		t.Errorf("expected attached attribute, got: %s", buf.String())
	}
}

func TestLogger_ZeroValue_IsNoOp(t *testing.T) {
	var logger Logger

	// Must not panic.
	logger.Info("ignored")
	logger.Error("ignored")

	if logger.Level() != DefaultLevel {
		t.Errorf("expected zero logger Level() = default, got %v", logger.Level())
	}

	if logger.Format() != DefaultFormat {
		t.Errorf("expected zero logger Format() = default, got %v", logger.Format())
	}

	if wrapped := logger.Wrap(WithLevel(LevelTrace)); wrapped.Logger != nil {
		t.Error("expected Wrap on zero logger to remain zero")
	}
}

func TestLogger_Pretty_ContainsANSI(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithPretty(true), WithFormat(FormatText))
	logger.Info("colorful")

	if !strings.Contains(buf.String(), "\033[") {
		t.Errorf("expected ANSI escapes in pretty output, got: %q", buf.String())
	}
}

func TestLogger_ConcurrentUse(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithPretty(true))

	done := make(chan struct{})

	for range 8 {
		go func() {
			defer func() { done <- struct{}{} }()

			for range 50 {
				logger.Info("concurrent message")
			}
		}()
	}

	for range 8 {
		<-done
	}

	if !strings.Contains(buf.String(), "concurrent message") {
		t.Error("expected concurrent messages to be written")
	}
}
