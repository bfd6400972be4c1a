// Package parser builds arith syntax trees from token streams.
package parser

import (
	"errors"
	"strconv"

	"github.com/ardnew/arith/lang/ast"
	"github.com/ardnew/arith/lang/lexer"
	"github.com/ardnew/arith/lang/token"
)

// parser consumes a lexer's token stream with one token of lookahead.
type parser struct {
	lx  *lexer.Lexer
	tok token.Token
}

// Parse drains lx and returns the parsed program. The first lexical or
// grammar violation aborts the parse.
func Parse(lx *lexer.Lexer) (*ast.Program, error) {
	p := &parser{lx: lx}
	if err := p.next(); err != nil {
		return nil, err
	}

	prog := &ast.Program{}

	for p.tok.Kind != token.EOF {
		s, err := p.statement()
		if err != nil {
			return nil, err
		}

		prog.Stmts = append(prog.Stmts, s)
	}

	return prog, nil
}

// ParseString parses source text directly.
func ParseString(source string) (*ast.Program, error) {
	return Parse(lexer.NewString(source))
}

func (p *parser) statement() (ast.Stmt, error) {
	switch p.tok.Kind {
	case token.From:
		return p.rangeLoop()

	case token.For:
		return p.eachLoop()
	}

	pos := p.tok.Pos

	expr, err := p.expression(0)
	if err != nil {
		return nil, err
	}

	if p.tok.Kind != token.Assign {
		return &ast.ExprStmt{X: expr}, nil
	}

	if err := p.next(); err != nil {
		return nil, err
	}

	value, err := p.expression(0)
	if err != nil {
		return nil, err
	}

	return p.binding(expr, value, pos)
}

// binding reinterprets the expression on the left of '=' as a bind target:
// a name, a function signature, or a destructuring pattern.
func (p *parser) binding(target, value ast.Expr, pos token.Position) (ast.Stmt, error) {
	switch t := target.(type) {
	case *ast.Ident:
		return &ast.Assign{Name: t.Name, Value: value, Pos: pos}, nil

	case *ast.Call:
		params := make([]string, len(t.Args))

		for i, arg := range t.Args {
			id, ok := arg.(*ast.Ident)
			if !ok {
				return nil, &Error{
					Msg: "function parameters must be plain identifiers",
					Pos: arg.Position(),
				}
			}

			params[i] = id.Name
		}

		return &ast.FuncDecl{Name: t.Name, Params: params, Body: value, Pos: pos}, nil

	case *ast.List:
		names := make([]string, len(t.Elems))

		for i, elem := range t.Elems {
			id, ok := elem.(*ast.Ident)
			if !ok {
				return nil, &Error{
					Msg: "destructuring targets must be plain identifiers",
					Pos: elem.Position(),
				}
			}

			names[i] = id.Name
		}

		return &ast.Destructure{Names: names, Value: value, Pos: pos}, nil
	}

	return nil, &Error{Msg: "cannot assign to this expression", Pos: pos}
}

// rangeLoop parses: from expr to expr as ident [with step expr] { stmt* }.
func (p *parser) rangeLoop() (ast.Stmt, error) {
	pos := p.tok.Pos

	if err := p.next(); err != nil { // consume 'from'
		return nil, err
	}

	from, err := p.expression(0)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.To); err != nil {
		return nil, err
	}

	to, err := p.expression(0)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.As); err != nil {
		return nil, err
	}

	name, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}

	var step ast.Expr

	if p.tok.Kind == token.With {
		if err := p.next(); err != nil {
			return nil, err
		}

		if _, err := p.expect(token.Step); err != nil {
			return nil, err
		}

		step, err = p.expression(0)
		if err != nil {
			return nil, err
		}
	}

	body, err := p.block()
	if err != nil {
		return nil, err
	}

	return &ast.RangeLoop{
		From: from,
		To:   to,
		Var:  name.Lit,
		Step: step,
		Body: body,
		Pos:  pos,
	}, nil
}

// eachLoop parses: for ident in expr { stmt* }.
func (p *parser) eachLoop() (ast.Stmt, error) {
	pos := p.tok.Pos

	if err := p.next(); err != nil { // consume 'for'
		return nil, err
	}

	name, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.In); err != nil {
		return nil, err
	}

	source, err := p.expression(0)
	if err != nil {
		return nil, err
	}

	body, err := p.block()
	if err != nil {
		return nil, err
	}

	return &ast.EachLoop{Var: name.Lit, Source: source, Body: body, Pos: pos}, nil
}

func (p *parser) block() ([]ast.Stmt, error) {
	if _, err := p.expect(token.LBrace); err != nil {
		return nil, err
	}

	var body []ast.Stmt

	for p.tok.Kind != token.RBrace {
		if p.tok.Kind == token.EOF {
			return nil, expected(token.RBrace.String(), p.tok)
		}

		s, err := p.statement()
		if err != nil {
			return nil, err
		}

		body = append(body, s)
	}

	if err := p.next(); err != nil { // consume '}'
		return nil, err
	}

	return body, nil
}

// expression implements precedence climbing: it parses operands joined by
// infix operators whose precedence is at least minPrec, associating left.
func (p *parser) expression(minPrec int) (ast.Expr, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}

	for {
		prec := precedence(p.tok.Kind)
		if prec == 0 || prec < minPrec {
			return left, nil
		}

		op := binaryOp(p.tok.Kind)

		if err := p.next(); err != nil {
			return nil, err
		}

		right, err := p.expression(prec + 1)
		if err != nil {
			return nil, err
		}

		left = &ast.Binary{Op: op, X: left, Y: right}
	}
}

// unary parses prefix minus, which binds tighter than any infix operator.
func (p *parser) unary() (ast.Expr, error) {
	if p.tok.Kind != token.Minus {
		return p.primary()
	}

	pos := p.tok.Pos

	if err := p.next(); err != nil {
		return nil, err
	}

	x, err := p.unary()
	if err != nil {
		return nil, err
	}

	return &ast.Unary{Op: ast.OpNeg, X: x, Pos: pos}, nil
}

func (p *parser) primary() (ast.Expr, error) {
	tok := p.tok

	switch tok.Kind {
	case token.Number:
		if err := p.next(); err != nil {
			return nil, err
		}

		// Out-of-range literals saturate to infinity rather than fail.
		v, err := strconv.ParseFloat(tok.Lit, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, &Error{
				Msg: "malformed number " + strconv.Quote(tok.Lit),
				Pos: tok.Pos,
			}
		}

		return &ast.Number{Value: v, Pos: tok.Pos}, nil

	case token.Ident:
		if err := p.next(); err != nil {
			return nil, err
		}

		if p.tok.Kind == token.LParen {
			return p.call(tok)
		}

		return &ast.Ident{Name: tok.Lit, Pos: tok.Pos}, nil

	case token.LParen:
		if err := p.next(); err != nil {
			return nil, err
		}

		// Parentheses group; they never build values.
		inner, err := p.expression(0)
		if err != nil {
			return nil, err
		}

		if _, err := p.expect(token.RParen); err != nil {
			return nil, err
		}

		return inner, nil

	case token.LBracket:
		return p.list(tok)
	}

	return nil, expected("expression", tok)
}

// call parses the argument list of name(...); the opening paren is the
// current token.
func (p *parser) call(name token.Token) (ast.Expr, error) {
	if err := p.next(); err != nil { // consume '('
		return nil, err
	}

	var args []ast.Expr

	if p.tok.Kind != token.RParen {
		for {
			arg, err := p.expression(0)
			if err != nil {
				return nil, err
			}

			args = append(args, arg)

			if p.tok.Kind != token.Comma {
				break
			}

			if err := p.next(); err != nil {
				return nil, err
			}
		}
	}

	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}

	return &ast.Call{Name: name.Lit, Args: args, Pos: name.Pos}, nil
}

// list parses a bracketed literal; the opening bracket is the current
// token.
func (p *parser) list(open token.Token) (ast.Expr, error) {
	if err := p.next(); err != nil { // consume '['
		return nil, err
	}

	var elems []ast.Expr

	if p.tok.Kind != token.RBracket {
		for {
			elem, err := p.expression(0)
			if err != nil {
				return nil, err
			}

			elems = append(elems, elem)

			if p.tok.Kind != token.Comma {
				break
			}

			if err := p.next(); err != nil {
				return nil, err
			}
		}
	}

	if _, err := p.expect(token.RBracket); err != nil {
		return nil, err
	}

	return &ast.List{Elems: elems, Pos: open.Pos}, nil
}

// expect consumes and returns the current token when it has the given
// kind, and fails the parse otherwise.
func (p *parser) expect(kind token.Kind) (token.Token, error) {
	if p.tok.Kind != kind {
		return token.Token{}, expected(kind.String(), p.tok)
	}

	tok := p.tok

	return tok, p.next()
}

func (p *parser) next() error {
	tok, err := p.lx.Next()
	if err != nil {
		return err
	}

	p.tok = tok

	return nil
}

func precedence(k token.Kind) int {
	switch k {
	case token.Plus, token.Minus:
		return 1

	case token.Star, token.Slash:
		return 2

	default:
		return 0
	}
}

func binaryOp(k token.Kind) ast.Op {
	switch k {
	case token.Plus:
		return ast.OpAdd

	case token.Minus:
		return ast.OpSub

	case token.Star:
		return ast.OpMul

	default:
		return ast.OpDiv
	}
}
