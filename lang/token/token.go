// Package token defines the lexical tokens of the arith language and the
// source positions attached to them.
package token

import "strconv"

// Kind classifies a lexical token.
//
//go:generate go tool stringer --linecomment --type Kind --output kind_string.go
type Kind int

const (
	EOF    Kind = iota // end of input
	Ident              // identifier
	Number             // number

	// Keywords.
	From // from
	To   // to
	As   // as
	With // with
	Step // step
	For  // for
	In   // in

	// Operators.
	Plus   // +
	Minus  // -
	Star   // *
	Slash  // /
	Assign // =

	// Punctuation.
	LParen   // (
	RParen   // )
	LBracket // [
	RBracket // ]
	LBrace   // {
	RBrace   // }
	Comma    // ,
)

// Token is a single lexical unit of source text.
type Token struct {
	Kind Kind
	Lit  string
	Pos  Position
}

// String renders the token for diagnostics, quoting the literal for kinds
// that carry one.
func (t Token) String() string {
	switch t.Kind {
	case EOF:
		return t.Kind.String()
	case Ident, Number:
		return t.Kind.String() + " " + strconv.Quote(t.Lit)
	default:
		return strconv.Quote(t.Lit)
	}
}

var keywords = map[string]Kind{
	"from": From,
	"to":   To,
	"as":   As,
	"with": With,
	"step": Step,
	"for":  For,
	"in":   In,
}

// Lookup maps an identifier to its keyword kind, or [Ident] if it is not a
// keyword. Only exact matches are keywords.
func Lookup(ident string) Kind {
	if k, ok := keywords[ident]; ok {
		return k
	}

	return Ident
}
