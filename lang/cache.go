package lang

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/zeebo/xxh3"

	"github.com/ardnew/arith/lang/ast"
	"github.com/ardnew/arith/lang/lexer"
	"github.com/ardnew/arith/lang/parser"
	"github.com/ardnew/arith/lang/token"
)

// parseCache memoizes parse results keyed by the xxh3 hash of the source.
// Cached programs are shared across callers and must be treated as
// read-only.
//
//nolint:gochecknoglobals
var parseCache sync.Map // map[uint64]*parseState

type parseState struct {
	once sync.Once
	prog *ast.Program
	err  error
}

func parseStringCached(ctx context.Context, source string) (*ast.Program, error) {
	if err := ctx.Err(); err != nil {
		return nil, WrapError(err)
	}

	key := xxh3.Hash([]byte(source))

	entry, _ := parseCache.LoadOrStore(key, &parseState{})
	state, _ := entry.(*parseState)

	state.once.Do(func() {
		prog, err := parser.ParseString(source)
		if err != nil {
			state.err = decorate(err, source)

			return
		}

		state.prog = prog
	})

	return state.prog, state.err
}

// decorate attaches a caret snippet to lex and syntax errors that carry a
// valid source position.
func decorate(err error, source string) error {
	var pos token.Position

	var (
		lexErr *lexer.Error
		synErr *parser.Error
	)

	switch {
	case errors.As(err, &synErr):
		pos = synErr.Pos

	case errors.As(err, &lexErr):
		pos = lexErr.Pos
	}

	if !pos.IsValid() {
		return err
	}

	snippet := token.Snippet(source, pos)
	if snippet == "" {
		return err
	}

	return WrapError(err).With(slog.String("snippet", snippet))
}

// ClearParseCache discards all memoized parse results.
func ClearParseCache() {
	parseCache.Range(func(key, _ any) bool {
		parseCache.Delete(key)

		return true
	})
}
