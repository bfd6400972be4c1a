// Package lexer turns arith source text into a stream of tokens.
//
// Whitespace separates tokens and is otherwise ignored. A '#' begins a
// comment that runs to the end of its line. Number literals accept '_'
// digit separators and a leading decimal point (".5" scans as "0.5" would);
// they have no exponent or sign forms. Prefix minus is left to the parser.
package lexer

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/ardnew/arith/lang/token"
)

// Lexer scans source text one token at a time.
//
// The zero value is empty and yields only EOF; use [New] or [NewString] to
// scan real input.
type Lexer struct {
	input []rune
	pos   int
	line  int
	col   int
}

// New constructs a Lexer over source.
func New(source []rune) *Lexer {
	return &Lexer{input: source, line: 1, col: 1}
}

// NewString constructs a Lexer over source.
func NewString(source string) *Lexer {
	return New([]rune(source))
}

// Next scans and returns the next token. At end of input it returns a token
// of kind [token.EOF], and keeps doing so if called again.
func (l *Lexer) Next() (token.Token, error) {
	l.skipSpaceAndComments()

	pos := l.position()

	if l.eof() {
		return token.Token{Kind: token.EOF, Pos: pos}, nil
	}

	ch := l.peek()

	switch {
	case isIdentStart(ch):
		return l.scanIdent(pos), nil
	case isDigit(ch), ch == '.' && isDigit(l.peekAt(1)):
		return l.scanNumber(pos)
	}

	l.advance()

	var kind token.Kind

	switch ch {
	case '+':
		kind = token.Plus
	case '-':
		kind = token.Minus
	case '*':
		kind = token.Star
	case '/':
		kind = token.Slash
	case '=':
		kind = token.Assign
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case '[':
		kind = token.LBracket
	case ']':
		kind = token.RBracket
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	case ',':
		kind = token.Comma
	default:
		return token.Token{}, &Error{
			Msg: "unrecognized character " + strconv.Quote(string(ch)),
			Pos: pos,
		}
	}

	return token.Token{Kind: kind, Lit: string(ch), Pos: pos}, nil
}

// Tokens scans all remaining input, returning every token through the
// trailing EOF, or the tokens scanned so far and the first error.
func (l *Lexer) Tokens() ([]token.Token, error) {
	var toks []token.Token

	for {
		tok, err := l.Next()
		if err != nil {
			return toks, err
		}

		toks = append(toks, tok)

		if tok.Kind == token.EOF {
			return toks, nil
		}
	}
}

func (l *Lexer) scanIdent(pos token.Position) token.Token {
	start := l.pos

	for !l.eof() && isIdentPart(l.peek()) {
		l.advance()
	}

	lit := string(l.input[start:l.pos])

	return token.Token{Kind: token.Lookup(lit), Lit: lit, Pos: pos}
}

// scanNumber consumes digits, '_' separators, and at most one decimal
// point. The returned literal has separators stripped so it parses directly
// with [strconv.ParseFloat].
func (l *Lexer) scanNumber(pos token.Position) (token.Token, error) {
	var lit strings.Builder

	dot := false

	for !l.eof() {
		switch ch := l.peek(); {
		case isDigit(ch):
			lit.WriteRune(ch)
		case ch == '_':
			// separator, dropped
		case ch == '.':
			if dot {
				return token.Token{}, &Error{
					Msg: "malformed number: multiple decimal points",
					Pos: l.position(),
				}
			}

			dot = true

			lit.WriteRune(ch)
		default:
			return token.Token{Kind: token.Number, Lit: lit.String(), Pos: pos}, nil
		}

		l.advance()
	}

	return token.Token{Kind: token.Number, Lit: lit.String(), Pos: pos}, nil
}

func (l *Lexer) peek() rune {
	if l.eof() {
		return 0
	}

	return l.input[l.pos]
}

func (l *Lexer) peekAt(n int) rune {
	if l.pos+n >= len(l.input) {
		return 0
	}

	return l.input[l.pos+n]
}

func (l *Lexer) advance() {
	if l.eof() {
		return
	}

	if l.input[l.pos] == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}

	l.pos++
}

func (l *Lexer) eof() bool {
	return l.pos >= len(l.input)
}

func (l *Lexer) position() token.Position {
	return token.Position{
		Offset: l.pos,
		Line:   l.line,
		Column: l.col,
	}
}

func (l *Lexer) skipSpaceAndComments() {
	for !l.eof() {
		switch {
		case unicode.IsSpace(l.peek()):
			l.advance()
		case l.peek() == '#':
			l.skipLineComment()
		default:
			return
		}
	}
}

func (l *Lexer) skipLineComment() {
	for !l.eof() && l.peek() != '\n' {
		l.advance()
	}

	if !l.eof() {
		l.advance() // skip '\n'
	}
}

func isIdentStart(ch rune) bool {
	return ch == '_' || ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z'
}

func isIdentPart(ch rune) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
