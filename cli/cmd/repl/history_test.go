package repl

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func testHistory(t *testing.T) *History {
	t.Helper()

	return NewHistory(filepath.Join(t.TempDir(), baseHistory))
}

func TestHistoryLoadMissing(t *testing.T) {
	h := testHistory(t)

	if err := h.Load(); err != nil {
		t.Fatalf("Load() on missing file: %v", err)
	}

	if h.Len() != 0 {
		t.Errorf("Len() = %d, want 0", h.Len())
	}
}

func TestHistoryWriteAndGet(t *testing.T) {
	h := testHistory(t)

	writes := []HistoryEntry{
		{Line: "x = 1", Mode: modeEval},
		{Line: "list", Mode: modeCtrl},
		{Line: "x + 1", Mode: modeEval},
	}

	for _, w := range writes {
		if _, err := h.WriteWithMode(w.Line, w.Mode); err != nil {
			t.Fatalf("WriteWithMode(%q) error: %v", w.Line, err)
		}
	}

	if h.Len() != len(writes) {
		t.Fatalf("Len() = %d, want %d", h.Len(), len(writes))
	}

	for i, want := range writes {
		got, err := h.GetEntry(i)
		if err != nil {
			t.Fatalf("GetEntry(%d) error: %v", i, err)
		}

		if got != want {
			t.Errorf("GetEntry(%d) = %+v, want %+v", i, got, want)
		}
	}
}

func TestHistoryTrimsInput(t *testing.T) {
	h := testHistory(t)

	if _, err := h.WriteWithMode("  x = 1  ", modeEval); err != nil {
		t.Fatalf("WriteWithMode() error: %v", err)
	}

	entry, err := h.GetEntry(0)
	if err != nil {
		t.Fatalf("GetEntry(0) error: %v", err)
	}

	if entry.Line != "x = 1" {
		t.Errorf("entry line = %q, want %q", entry.Line, "x = 1")
	}
}

func TestHistoryBlankWriteIgnored(t *testing.T) {
	h := testHistory(t)

	n, err := h.WriteWithMode("   ", modeEval)
	if err != nil {
		t.Fatalf("WriteWithMode() error: %v", err)
	}

	if n != 0 || h.Len() != 0 {
		t.Errorf("blank write recorded: n=%d len=%d", n, h.Len())
	}
}

func TestHistoryConsecutiveDuplicate(t *testing.T) {
	h := testHistory(t)

	for i := 0; i < 3; i++ {
		if _, err := h.WriteWithMode("x + 1", modeEval); err != nil {
			t.Fatalf("WriteWithMode() error: %v", err)
		}
	}

	if h.Len() != 1 {
		t.Errorf("Len() = %d, want 1", h.Len())
	}
}

func TestHistoryDuplicateMovesToEnd(t *testing.T) {
	h := testHistory(t)

	for _, line := range []string{"first", "second", "first"} {
		if _, err := h.WriteWithMode(line, modeEval); err != nil {
			t.Fatalf("WriteWithMode(%q) error: %v", line, err)
		}
	}

	want := []string{"second", "first"}

	entries := h.Entries()
	if len(entries) != len(want) {
		t.Fatalf("Len() = %d, want %d", len(entries), len(want))
	}

	for i, line := range want {
		if entries[i].Line != line {
			t.Errorf("entry[%d] = %q, want %q", i, entries[i].Line, line)
		}
	}

	// The dedup rewrites the file; a fresh load observes the same order.
	reloaded := NewHistory(h.path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	for i, line := range want {
		entry, err := reloaded.GetEntry(i)
		if err != nil {
			t.Fatalf("GetEntry(%d) error: %v", i, err)
		}

		if entry.Line != line {
			t.Errorf("reloaded entry[%d] = %q, want %q", i, entry.Line, line)
		}
	}
}

func TestHistorySameLineDistinctModes(t *testing.T) {
	h := testHistory(t)

	if _, err := h.WriteWithMode("help", modeEval); err != nil {
		t.Fatalf("WriteWithMode() error: %v", err)
	}

	if _, err := h.WriteWithMode("help", modeCtrl); err != nil {
		t.Fatalf("WriteWithMode() error: %v", err)
	}

	if h.Len() != 2 {
		t.Errorf("Len() = %d, want 2", h.Len())
	}
}

func TestHistoryPersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), baseHistory)

	h := NewHistory(path)

	writes := []HistoryEntry{
		{Line: "y = 2 * 3", Mode: modeEval},
		{Line: "edit", Mode: modeCtrl},
	}

	for _, w := range writes {
		if _, err := h.WriteWithMode(w.Line, w.Mode); err != nil {
			t.Fatalf("WriteWithMode(%q) error: %v", w.Line, err)
		}
	}

	reloaded := NewHistory(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if reloaded.Len() != len(writes) {
		t.Fatalf("reloaded Len() = %d, want %d", reloaded.Len(), len(writes))
	}

	for i, want := range writes {
		got, err := reloaded.GetEntry(i)
		if err != nil {
			t.Fatalf("GetEntry(%d) error: %v", i, err)
		}

		if got != want {
			t.Errorf("reloaded entry[%d] = %+v, want %+v", i, got, want)
		}
	}
}

func TestHistoryLegacyLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), baseHistory)

	content := "x = 1\nE:x + 1\nC:list\n\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	h := NewHistory(path)
	if err := h.Load(); err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	want := []HistoryEntry{
		{Line: "x = 1", Mode: modeEval},
		{Line: "x + 1", Mode: modeEval},
		{Line: "list", Mode: modeCtrl},
	}

	if h.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", h.Len(), len(want))
	}

	for i, w := range want {
		got, err := h.GetEntry(i)
		if err != nil {
			t.Fatalf("GetEntry(%d) error: %v", i, err)
		}

		if got != w {
			t.Errorf("entry[%d] = %+v, want %+v", i, got, w)
		}
	}
}

func TestHistoryGetEntryOutOfBounds(t *testing.T) {
	h := testHistory(t)

	if _, err := h.WriteWithMode("x", modeEval); err != nil {
		t.Fatalf("WriteWithMode() error: %v", err)
	}

	for _, i := range []int{-1, 1, 100} {
		if _, err := h.GetEntry(i); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("GetEntry(%d) error = %v, want ErrOutOfBounds", i, err)
		}
	}
}

func TestHistoryEntriesCopy(t *testing.T) {
	h := testHistory(t)

	if _, err := h.WriteWithMode("original", modeEval); err != nil {
		t.Fatalf("WriteWithMode() error: %v", err)
	}

	entries := h.Entries()
	entries[0].Line = "mutated"

	got, err := h.GetEntry(0)
	if err != nil {
		t.Fatalf("GetEntry(0) error: %v", err)
	}

	if got.Line != "original" {
		t.Errorf("Entries() exposes internal state: %q", got.Line)
	}
}
