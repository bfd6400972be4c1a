package cmd

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestFmtNativeCanonicalizes(t *testing.T) {
	dir := t.TempDir()
	path := writeSourceFile(t, dir, "prog.ar", "x=1+2*3\nx")

	out, err := captureStdout(t, func() error {
		cmd := fmtNative{Source: path, Indent: 2}

		return cmd.Run(context.Background())
	})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if want := "x = 1 + 2 * 3\nx\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestFmtNativeIndentsBlocks(t *testing.T) {
	dir := t.TempDir()
	path := writeSourceFile(t, dir, "loop.ar", "from 0 to 3 as i{i}")

	out, err := captureStdout(t, func() error {
		cmd := fmtNative{Source: path, Indent: 4}

		return cmd.Run(context.Background())
	})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if want := "from 0 to 3 as i {\n    i\n}\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestFmtNativeStdin(t *testing.T) {
	replaceStdin(t, "y  =  sin( PI )")

	out, err := captureStdout(t, func() error {
		cmd := fmtNative{Source: stdinSource, Indent: 2}

		return cmd.Run(context.Background())
	})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if want := "y = sin(PI)\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestFmtNativeParseError(t *testing.T) {
	dir := t.TempDir()
	path := writeSourceFile(t, dir, "bad.ar", "x = ")

	out, err := captureStdout(t, func() error {
		cmd := fmtNative{Source: path, Indent: 2}

		return cmd.Run(context.Background())
	})
	if err == nil {
		t.Error("Run() = nil, want parse error")
	}

	if out != "" {
		t.Errorf("output = %q, want empty", out)
	}
}

func TestFmtMissingFile(t *testing.T) {
	cmd := fmtNative{
		Source: filepath.Join(t.TempDir(), "missing.ar"),
		Indent: 2,
	}

	err := cmd.Run(context.Background())
	if !errors.Is(err, ErrNoSource) {
		t.Errorf("Run() = %v, want %v", err, ErrNoSource)
	}
}

func TestFmtJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeSourceFile(t, dir, "prog.ar", "x = 1")

	out, err := captureStdout(t, func() error {
		cmd := fmtJSON{Source: path, Indent: 2}

		return cmd.Run(context.Background())
	})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	for _, want := range []string{`"statements"`, `"kind"`, `"assign"`, `"x"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFmtYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeSourceFile(t, dir, "prog.ar", "x = 1")

	out, err := captureStdout(t, func() error {
		cmd := fmtYAML{Source: path, Indent: 2}

		return cmd.Run(context.Background())
	})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	for _, want := range []string{"statements:", "kind:", "assign"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFmtAST(t *testing.T) {
	dir := t.TempDir()
	path := writeSourceFile(t, dir, "prog.ar", "x = 1")

	out, err := captureStdout(t, func() error {
		cmd := fmtAST{Source: path}

		return cmd.Run(context.Background())
	})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if !strings.Contains(out, "Assign: x") {
		t.Errorf("output missing %q:\n%s", "Assign: x", out)
	}
}

func TestFmtIdempotent(t *testing.T) {
	dir := t.TempDir()
	source := "area(r)=PI*r*r\nfrom 1 to 3 as n{area(n)}"
	path := writeSourceFile(t, dir, "prog.ar", source)

	first, err := captureStdout(t, func() error {
		cmd := fmtNative{Source: path, Indent: 2}

		return cmd.Run(context.Background())
	})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	// Formatting already canonical source must be a fixed point.
	canon := writeSourceFile(t, dir, "canon.ar", first)

	second, err := captureStdout(t, func() error {
		cmd := fmtNative{Source: canon, Indent: 2}

		return cmd.Run(context.Background())
	})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if first != second {
		t.Errorf("second pass = %q, want %q", second, first)
	}
}
