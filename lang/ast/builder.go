package ast

// Builder provides a programmatic API for constructing syntax trees
// without parsing source text. This is useful for generating arith
// programs programmatically or for testing.
//
// Example:
//
//	b := ast.NewBuilder()
//	prog := b.Program(
//	    b.Assign("x", b.Binary(OpAdd, b.Number(1), b.Number(2))),
//	    b.Expr(b.Ident("x")),
//	)
//
// Nodes built this way carry zero positions.
type Builder struct{}

// NewBuilder creates a new syntax tree builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Program assembles statements into a [Program].
func (b *Builder) Program(stmts ...Stmt) *Program {
	return &Program{Stmts: stmts}
}

// Number creates a numeric literal.
func (b *Builder) Number(v float64) *Number {
	return &Number{Value: v}
}

// Ident creates a name reference.
func (b *Builder) Ident(name string) *Ident {
	return &Ident{Name: name}
}

// Neg creates a prefix negation.
func (b *Builder) Neg(x Expr) *Unary {
	return &Unary{Op: OpNeg, X: x}
}

// Binary creates an infix operation.
func (b *Builder) Binary(op Op, x, y Expr) *Binary {
	return &Binary{Op: op, X: x, Y: y}
}

// Call creates a function application.
func (b *Builder) Call(name string, args ...Expr) *Call {
	return &Call{Name: name, Args: args}
}

// List creates a list literal.
func (b *Builder) List(elems ...Expr) *List {
	return &List{Elems: elems}
}

// Assign creates a variable binding statement.
func (b *Builder) Assign(name string, value Expr) *Assign {
	return &Assign{Name: name, Value: value}
}

// Destructure creates a list-unpacking binding statement.
func (b *Builder) Destructure(names []string, value Expr) *Destructure {
	return &Destructure{Names: names, Value: value}
}

// Func creates a function declaration statement.
func (b *Builder) Func(name string, params []string, body Expr) *FuncDecl {
	return &FuncDecl{Name: name, Params: params, Body: body}
}

// Expr creates a bare expression statement.
func (b *Builder) Expr(x Expr) *ExprStmt {
	return &ExprStmt{X: x}
}

// Range creates a counted loop without an explicit step.
func (b *Builder) Range(from, to Expr, name string, body ...Stmt) *RangeLoop {
	return &RangeLoop{From: from, To: to, Var: name, Body: body}
}

// RangeStep creates a counted loop with an explicit step.
func (b *Builder) RangeStep(from, to, step Expr, name string, body ...Stmt) *RangeLoop {
	return &RangeLoop{From: from, To: to, Var: name, Step: step, Body: body}
}

// Each creates a list-element loop.
func (b *Builder) Each(name string, source Expr, body ...Stmt) *EachLoop {
	return &EachLoop{Var: name, Source: source, Body: body}
}
