package cmd

import (
	"context"
	"io"
	"log/slog"

	"github.com/ardnew/arith/cli/cmd/repl"
	"github.com/ardnew/arith/log"
)

// Repl starts an interactive evaluation session.
//
// Any sources given are evaluated into the session environment before the
// first prompt, so their bindings are available interactively.
type Repl struct {
	Source []string `arg:"" help:"Source file(s) evaluated before the first prompt." name:"source" optional:"" type:"string"`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	ktx := kongContextFrom(ctx)

	cacheDir, ok := ktx.Model.Vars()[CacheIdentifier]
	if !ok {
		panic("internal error: cache directory undefined")
	}

	log.TraceContext(ctx, "starting interactive session",
		slog.Int("preload_count", len(r.Source)),
		slog.String("cache_dir", cacheDir),
	)

	var initial io.Reader

	// initial must stay a true nil interface when nothing is readable.
	if src := NewSourceFiles(r.Source); src != nil {
		initial = src
	}

	return repl.Run(ctx, initial, cacheDir, log.Default())
}
