package cmd

import (
	"context"
	"runtime"
	"strings"
	"testing"

	"github.com/ardnew/arith/pkg"
)

func TestVersion(t *testing.T) {
	out, err := captureStdout(t, func() error {
		cmd := Version{}

		return cmd.Run(context.Background())
	})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	want := pkg.Name + " " + strings.TrimSpace(pkg.Version) + "\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestVersionVerbose(t *testing.T) {
	out, err := captureStdout(t, func() error {
		cmd := Version{Verbose: true}

		return cmd.Run(context.Background())
	})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	for _, want := range []string{
		pkg.Name,
		strings.TrimSpace(pkg.Version),
		runtime.GOOS + "/" + runtime.GOARCH,
		runtime.Version(),
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
}
