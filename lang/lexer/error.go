package lexer

import (
	"log/slog"

	"github.com/ardnew/arith/lang/token"
)

// Error describes a lexical error and where in the input it occurred.
type Error struct {
	Msg string
	Pos token.Position
}

// Error implements the error interface.
func (e *Error) Error() string {
	return "lex error at " + e.Pos.String() + ": " + e.Msg
}

// LogValue implements [slog.LogValuer] for structured error logging.
func (e *Error) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("msg", e.Msg),
		slog.Int("line", e.Pos.Line),
		slog.Int("column", e.Pos.Column),
	)
}
