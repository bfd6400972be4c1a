package log

import (
	"slices"
	"strings"
	"testing"
	"time"
)

func TestConfig_WithLevel_SetsLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    Level
		expected Level
	}{
		{"trace", LevelTrace, LevelTrace},
		{"debug", LevelDebug, LevelDebug},
		{"info", LevelInfo, LevelInfo},
		{"warn", LevelWarn, LevelWarn},
		{"error", LevelError, LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := apply(config{}, WithLevel(tt.level))

			if c.level != tt.expected {
				t.Errorf("expected level %v, got %v", tt.expected, c.level)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Level
	}{
		{"trace lowercase", "trace", LevelTrace},
		{"trace uppercase", "TRACE", LevelTrace},
		{"debug", "debug", LevelDebug},
		{"info", "INFO", LevelInfo},
		{"warn", "warn", LevelWarn},
		{"error", "Error", LevelError},
		{"offset", "WARN+1", LevelWarn + 1},
		{"unknown falls back to default", "verbose", DefaultLevel},
		{"empty falls back to default", "", DefaultLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Format
	}{
		{"json", "json", FormatJSON},
		{"json mixed case", " JSON ", FormatJSON},
		{"text", "text", FormatText},
		{"unknown falls back to default", "xml", DefaultFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseFormat(tt.input); got != tt.expected {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLevels_EnumeratesAll(t *testing.T) {
	got := slices.Collect(Levels())
	want := []string{"trace", "debug", "info", "warn", "error"}

	if !slices.Equal(got, want) {
		t.Errorf("Levels() = %v, want %v", got, want)
	}
}

func TestFormats_EnumeratesAll(t *testing.T) {
	got := slices.Collect(Formats())
	want := []string{"text", "json"}

	if !slices.Equal(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}
}

func TestMakeFormatTimeFunc(t *testing.T) {
	ref := time.Date(2024, time.March, 14, 15, 9, 26, 535897932, time.UTC)

	tests := []struct {
		name     string
		layout   string
		contains string
	}{
		{"named rfc3339", "RFC3339", "2024-03-14T15:09:26"},
		{"named kitchen", "kitchen", "3:09PM"},
		{"custom layout verbatim", "2006/01/02", "2024/03/14"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format := makeFormatTimeFunc(tt.layout)

			if got := format(ref); !strings.Contains(got, tt.contains) {
				t.Errorf(
					"format(%q) with layout %q = %q, want containing %q",
					ref, tt.layout, got, tt.contains,
				)
			}
		})
	}

	t.Run("empty disables timestamps", func(t *testing.T) {
		format := makeFormatTimeFunc("  ")

		if got := format(ref); got != "" {
			t.Errorf("expected empty result for blank layout, got %q", got)
		}
	})

	t.Run("none disables timestamps", func(t *testing.T) {
		format := makeFormatTimeFunc("none")

		if got := format(ref); got != "" {
			t.Errorf("expected empty result for layout none, got %q", got)
		}
	})
}
