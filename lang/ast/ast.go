// Package ast defines the syntax tree for arith programs: a flat list of
// statements over a small expression grammar.
package ast

import (
	"iter"

	"github.com/ardnew/arith/lang/token"
)

// Node is implemented by every syntax tree node.
type Node interface {
	// Position reports where the node begins in its source input.
	Position() token.Position
}

// Expr is implemented by all expression nodes.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by all statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

// Program is one parsed source unit: its statements in source order.
type Program struct {
	Stmts []Stmt
}

// All returns an iterator over the program's statements.
func (p *Program) All() iter.Seq[Stmt] {
	return func(yield func(Stmt) bool) {
		for _, s := range p.Stmts {
			if !yield(s) {
				return
			}
		}
	}
}

// Position reports the position of the first statement, or the zero
// position for an empty program.
func (p *Program) Position() token.Position {
	if len(p.Stmts) == 0 {
		return token.Position{}
	}

	return p.Stmts[0].Position()
}

// Op identifies an arithmetic operator.
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	// OpNeg is prefix minus. It binds tighter than any infix operator.
	OpNeg
)

// String returns the operator's source spelling.
func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"

	case OpSub, OpNeg:
		return "-"

	case OpMul:
		return "*"

	case OpDiv:
		return "/"

	default:
		return "?"
	}
}

// Number is a numeric literal.
type Number struct {
	Value float64
	Pos   token.Position
}

// Ident is a reference to a bound name.
type Ident struct {
	Name string
	Pos  token.Position
}

// Unary is a prefix operator applied to one operand.
type Unary struct {
	Op  Op
	X   Expr
	Pos token.Position
}

// Binary is an infix operator applied to two operands.
type Binary struct {
	Op   Op
	X, Y Expr
}

// Call applies a named function to its arguments.
type Call struct {
	Name string
	Args []Expr
	Pos  token.Position
}

// List is a bracketed sequence of element expressions.
type List struct {
	Elems []Expr
	Pos   token.Position
}

// Assign binds the value of an expression to a name.
type Assign struct {
	Name  string
	Value Expr
	Pos   token.Position
}

// Destructure binds the elements of a list-valued expression to a
// bracketed sequence of names, in order.
type Destructure struct {
	Names []string
	Value Expr
	Pos   token.Position
}

// FuncDecl binds a name to a function of its parameters over a single
// expression body.
type FuncDecl struct {
	Name   string
	Params []string
	Body   Expr
	Pos    token.Position
}

// ExprStmt evaluates an expression for its printed value.
type ExprStmt struct {
	X Expr
}

// RangeLoop steps a counter from one bound toward (and excluding) another,
// running its body once per value. Step is nil when the source omitted the
// with-step clause; the counter then advances by one.
type RangeLoop struct {
	From Expr
	To   Expr
	Var  string
	Step Expr
	Body []Stmt
	Pos  token.Position
}

// EachLoop binds a variable to successive elements of a list, running its
// body once per element.
type EachLoop struct {
	Var    string
	Source Expr
	Body   []Stmt
	Pos    token.Position
}

func (x *Number) Position() token.Position { return x.Pos }
func (x *Ident) Position() token.Position  { return x.Pos }
func (x *Unary) Position() token.Position  { return x.Pos }
func (x *Binary) Position() token.Position { return x.X.Position() }
func (x *Call) Position() token.Position   { return x.Pos }
func (x *List) Position() token.Position   { return x.Pos }

func (s *Assign) Position() token.Position      { return s.Pos }
func (s *Destructure) Position() token.Position { return s.Pos }
func (s *FuncDecl) Position() token.Position    { return s.Pos }
func (s *ExprStmt) Position() token.Position    { return s.X.Position() }
func (s *RangeLoop) Position() token.Position   { return s.Pos }
func (s *EachLoop) Position() token.Position    { return s.Pos }

func (*Number) exprNode() {}
func (*Ident) exprNode()  {}
func (*Unary) exprNode()  {}
func (*Binary) exprNode() {}
func (*Call) exprNode()   {}
func (*List) exprNode()   {}

func (*Assign) stmtNode()      {}
func (*Destructure) stmtNode() {}
func (*FuncDecl) stmtNode()    {}
func (*ExprStmt) stmtNode()    {}
func (*RangeLoop) stmtNode()   {}
func (*EachLoop) stmtNode()    {}
