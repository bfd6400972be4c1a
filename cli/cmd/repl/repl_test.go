package repl

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ardnew/arith/lang"
	"github.com/ardnew/arith/log"
)

func testLogger() log.Logger {
	return log.Make(io.Discard)
}

// testModel builds a model with a fresh environment and a history file in
// a temp directory.
func testModel(t *testing.T) model {
	t.Helper()

	histPath := filepath.Join(t.TempDir(), baseHistory)

	return newModel(
		context.Background(),
		lang.NewEnvironment(),
		NewHistory(histPath),
		testLogger(),
	)
}

func TestExecuteInputDefinesBinding(t *testing.T) {
	m := testModel(t)
	m.input.SetValue("x = 41 + 1")

	m, _ = m.executeInput()

	binding, ok := m.env.Lookup("x")
	if !ok {
		t.Fatal("binding x not defined")
	}

	if binding.Value.Num != 42 {
		t.Errorf("x = %v, want 42", binding.Value.Num)
	}

	if got := m.input.Value(); got != "" {
		t.Errorf("input not cleared: %q", got)
	}

	if m.history.Len() != 1 {
		t.Errorf("history length = %d, want 1", m.history.Len())
	}
}

func TestExecuteInputEvalError(t *testing.T) {
	m := testModel(t)
	m.input.SetValue("nope + 1")

	m, cmd := m.executeInput()
	if cmd == nil {
		t.Error("executeInput() returned nil command, want error output")
	}

	// Failed input still lands in history for recall and correction.
	if m.history.Len() != 1 {
		t.Errorf("history length = %d, want 1", m.history.Len())
	}

	if _, ok := m.env.Lookup("nope"); ok {
		t.Error("error evaluation defined a binding")
	}
}

func TestExecuteInputEmpty(t *testing.T) {
	m := testModel(t)
	m.input.SetValue("   ")

	m, cmd := m.executeInput()
	if cmd != nil {
		t.Error("executeInput() on blank input returned a command")
	}

	if m.history.Len() != 0 {
		t.Errorf("history length = %d, want 0", m.history.Len())
	}
}

func TestExecuteInputRecordsMode(t *testing.T) {
	m := testModel(t)
	m.mode = modeCtrl
	m.input.SetValue("help")

	m, _ = m.executeInput()

	entry, err := m.history.GetEntry(0)
	if err != nil {
		t.Fatalf("GetEntry(0) error: %v", err)
	}

	if entry.Mode != modeCtrl {
		t.Errorf("entry mode = %v, want modeCtrl", entry.Mode)
	}

	if entry.Line != "help" {
		t.Errorf("entry line = %q, want %q", entry.Line, "help")
	}
}

func TestToggleModePreservesInput(t *testing.T) {
	m := testModel(t)
	m.input.SetValue("1 + 2")
	m.input.SetCursor(5)

	m, _ = m.toggleMode()

	if m.mode != modeCtrl {
		t.Fatalf("mode = %v, want modeCtrl", m.mode)
	}

	if got := m.input.Value(); got != "" {
		t.Errorf("ctrl input = %q, want empty", got)
	}

	m, _ = m.toggleMode()

	if m.mode != modeEval {
		t.Fatalf("mode = %v, want modeEval", m.mode)
	}

	if got := m.input.Value(); got != "1 + 2" {
		t.Errorf("restored input = %q, want %q", got, "1 + 2")
	}
}

func TestHandleTabCompletes(t *testing.T) {
	m := testModel(t)
	m.input.SetValue("sq")
	m.input.SetCursor(2)
	refreshMatches(&m, false)

	if len(m.matches) == 0 {
		t.Fatal("no matches for sq")
	}

	want := m.matches[0].Str

	m, _ = m.handleTab()

	if got := m.input.Value(); got != want {
		t.Errorf("input after tab = %q, want %q", got, want)
	}
}

func TestEditDeclinedKeepsSession(t *testing.T) {
	m := testModel(t)

	updated, cmd := m.Update(editDeclinedMsg{})

	um, ok := updated.(model)
	if !ok {
		t.Fatalf("Update() returned %T, want model", updated)
	}

	if um.quitting {
		t.Error("declined edit terminated the session")
	}

	if cmd == nil {
		t.Error("declined edit produced no notice")
	}
}

func TestEditAppliedShowsOutput(t *testing.T) {
	m := testModel(t)

	_, cmd := m.Update(editAppliedMsg{output: "42"})
	if cmd == nil {
		t.Error("applied edit produced no notice")
	}
}

func TestListBindings(t *testing.T) {
	m := testModel(t)

	err := lang.EvalString(context.Background(), "area(r) = PI * r * r\nx = 2", m.env)
	if err != nil {
		t.Fatalf("EvalString() error: %v", err)
	}

	out := m.listBindings()

	for _, want := range []string{"area", "x", "PI", "(r) ->"} {
		if !strings.Contains(out, want) {
			t.Errorf("listBindings() missing %q:\n%s", want, out)
		}
	}
}
