package cmd

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/ardnew/arith/lang"
	"github.com/ardnew/arith/log"
)

// Run evaluates source programs.
//
// All sources are concatenated in command-line order and evaluated as one
// program in a single environment, so names bound by earlier files are
// visible to later ones. Without sources it reads from stdin.
type Run struct {
	Source []string `arg:"" help:"Source file(s), or '-' for stdin." name:"source" optional:"" type:"string"`

	MaxCallDepth int `default:"100" help:"Maximum nesting of function calls before evaluation aborts."`
}

// Run executes the run command.
func (r *Run) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	sources := r.Source
	if len(sources) == 0 {
		sources = []string{stdinSource}
	}

	input := NewSourceFiles(sources)
	if input == nil {
		return ErrNoSource.
			With(slog.String("sources", strings.Join(sources, ", ")))
	}

	log.TraceContext(ctx, "evaluating sources",
		slog.Int("count", len(sources)),
		slog.Int("max_call_depth", r.MaxCallDepth),
	)

	opts := []lang.Option{
		lang.WithOutput(os.Stdout),
		lang.WithLogger(log.Default()),
	}

	if r.MaxCallDepth > 0 {
		opts = append(opts, lang.WithMaxCallDepth(r.MaxCallDepth))
	}

	return lang.EvalReader(ctx, input, lang.NewEnvironment(), opts...)
}
