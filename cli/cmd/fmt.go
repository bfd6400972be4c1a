package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/ardnew/arith/lang"
	"github.com/ardnew/arith/lang/ast"
)

// Fmt parses a source program and rewrites it in a selected representation.
//
// The default representation is the language's own canonical form, which is
// also what the formatter produces for every other well-formed rendering of
// the same program.
type Fmt struct {
	Native fmtNative `cmd:"" default:"withargs" help:"Rewrite source in canonical form."`
	JSON   fmtJSON   `cmd:"" help:"Render the syntax tree as JSON."`
	YAML   fmtYAML   `cmd:"" help:"Render the syntax tree as YAML."`
	AST    fmtAST    `cmd:"" help:"Print the syntax tree in structural form."`
}

type fmtNative struct {
	Source string `arg:"" default:"-" help:"Source file, or '-' for stdin." optional:""`

	Indent int `default:"2" help:"Spaces per block nesting level."`
}

// Run executes the fmt command with native output.
func (f *fmtNative) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	prog, err := parseSource(ctx, f.Source)
	if err != nil {
		return err
	}

	return prog.Format(ctx, os.Stdout, f.Indent)
}

type fmtJSON struct {
	Source string `arg:"" default:"-" help:"Source file, or '-' for stdin." optional:""`

	Indent int `default:"2" help:"Spaces per JSON nesting level."`
}

// Run executes the fmt command with JSON output.
func (f *fmtJSON) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	prog, err := parseSource(ctx, f.Source)
	if err != nil {
		return err
	}

	return prog.FormatJSON(ctx, os.Stdout, f.Indent)
}

type fmtYAML struct {
	Source string `arg:"" default:"-" help:"Source file, or '-' for stdin." optional:""`

	Indent int `default:"2" help:"Spaces per YAML nesting level."`
}

// Run executes the fmt command with YAML output.
func (f *fmtYAML) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	prog, err := parseSource(ctx, f.Source)
	if err != nil {
		return err
	}

	return prog.FormatYAML(ctx, os.Stdout, f.Indent)
}

type fmtAST struct {
	Source string `arg:"" default:"-" help:"Source file, or '-' for stdin." optional:""`
}

// Run executes the fmt command with structural output.
func (f *fmtAST) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	prog, err := parseSource(ctx, f.Source)
	if err != nil {
		return err
	}

	prog.Print(ctx, os.Stdout)

	return nil
}

// sourceReader opens path for reading, or wraps stdin when path is "-".
func sourceReader(path string) (io.ReadCloser, error) {
	if path == stdinSource {
		return io.NopCloser(os.Stdin), nil
	}

	return os.Open(path)
}

// parseSource parses the program at path into a syntax tree.
func parseSource(ctx context.Context, path string) (*ast.Program, error) {
	source, err := sourceReader(path)
	if err != nil {
		return nil, ErrNoSource.Wrap(err).With(slog.String("path", path))
	}

	defer source.Close()

	prog, err := lang.ParseReader(ctx, source)
	if err != nil {
		return nil, lang.WrapError(err).With(slog.String("path", path))
	}

	return prog, nil
}
