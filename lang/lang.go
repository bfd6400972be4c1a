package lang

import (
	"context"
	"io"

	"github.com/klauspost/readahead"

	"github.com/ardnew/arith/lang/ast"
)

// ParseString parses source as a complete program.
//
// Results are memoized by content hash, so parsing the same source again
// returns the cached program. Callers must treat the returned program as
// read-only.
func ParseString(ctx context.Context, source string) (*ast.Program, error) {
	return parseStringCached(ctx, source)
}

// ParseReader reads all of r and parses it as a complete program. Reads
// pass through an asynchronous buffer that prefetches the underlying
// source while earlier chunks are consumed.
func ParseReader(ctx context.Context, r io.Reader) (*ast.Program, error) {
	buf := readahead.NewReader(r)
	defer buf.Close()

	data, err := io.ReadAll(buf)
	if err != nil {
		return nil, ErrReadInput.Wrap(err)
	}

	return parseStringCached(ctx, string(data))
}

// EvalString parses source and evaluates it against env.
func EvalString(ctx context.Context, source string, env *Environment, opts ...Option) error {
	prog, err := ParseString(ctx, source)
	if err != nil {
		return err
	}

	return Evaluate(ctx, prog, env, opts...)
}

// EvalReader parses everything from r and evaluates it against env.
func EvalReader(ctx context.Context, r io.Reader, env *Environment, opts ...Option) error {
	prog, err := ParseReader(ctx, r)
	if err != nil {
		return err
	}

	return Evaluate(ctx, prog, env, opts...)
}
