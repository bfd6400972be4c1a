package parser

import (
	"log/slog"

	"github.com/ardnew/arith/lang/token"
)

// Error describes a grammar violation and where in the input it occurred.
type Error struct {
	Msg   string
	Found token.Token // the offending token, zero when not applicable
	Pos   token.Position
}

// expected builds the standard "expected X, found Y" error at the found
// token's position.
func expected(want string, found token.Token) *Error {
	return &Error{
		Msg:   "expected " + want + ", found " + found.String(),
		Found: found,
		Pos:   found.Pos,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return "syntax error at " + e.Pos.String() + ": " + e.Msg
}

// LogValue implements [slog.LogValuer] for structured error logging.
func (e *Error) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("msg", e.Msg),
		slog.Int("line", e.Pos.Line),
		slog.Int("column", e.Pos.Column),
	)
}
