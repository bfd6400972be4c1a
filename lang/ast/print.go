package ast

import (
	"context"
	"io"
	"strings"
)

func writer(w io.Writer) func(eol string, item ...string) {
	return func(eol string, item ...string) {
		_, err := io.WriteString(w, strings.Join(item, ": ")+eol)
		if err != nil {
			panic(err)
		}
	}
}

// Print writes an indented tree representation of the program, one node
// per line. It is a debugging aid, not a formatter; use [Program.Format]
// to reproduce source text.
func (p *Program) Print(ctx context.Context, w io.Writer) {
	p.PrintIndent(ctx, w, 0)
}

// PrintIndent writes the tree representation starting at the given indent
// level.
func (p *Program) PrintIndent(ctx context.Context, w io.Writer, indent int) {
	if len(p.Stmts) == 0 {
		writer(w)("\n", strings.Repeat("  ", indent)+"(empty)")

		return
	}

	for _, s := range p.Stmts {
		printStmt(ctx, w, s, indent)
	}
}

func printStmt(ctx context.Context, w io.Writer, s Stmt, indent int) {
	prefix := strings.Repeat("  ", indent)
	put := writer(w)

	switch t := s.(type) {
	case *Assign:
		put("\n", prefix+"Assign", t.Name)
		printExpr(ctx, w, t.Value, indent+1)

	case *Destructure:
		put("\n", prefix+"Destructure", strings.Join(t.Names, ", "))
		printExpr(ctx, w, t.Value, indent+1)

	case *FuncDecl:
		put("\n", prefix+"Func", t.Name+"("+strings.Join(t.Params, ", ")+")")
		printExpr(ctx, w, t.Body, indent+1)

	case *ExprStmt:
		printExpr(ctx, w, t.X, indent)

	case *RangeLoop:
		put("\n", prefix+"Range", t.Var)
		put(":\n", prefix+"  From")
		printExpr(ctx, w, t.From, indent+2)
		put(":\n", prefix+"  To")
		printExpr(ctx, w, t.To, indent+2)

		if t.Step != nil {
			put(":\n", prefix+"  Step")
			printExpr(ctx, w, t.Step, indent+2)
		}

		put(":\n", prefix+"  Body")
		printBody(ctx, w, t.Body, indent+2)

	case *EachLoop:
		put("\n", prefix+"Each", t.Var)
		put(":\n", prefix+"  In")
		printExpr(ctx, w, t.Source, indent+2)
		put(":\n", prefix+"  Body")
		printBody(ctx, w, t.Body, indent+2)
	}
}

func printBody(ctx context.Context, w io.Writer, body []Stmt, indent int) {
	if len(body) == 0 {
		writer(w)("\n", strings.Repeat("  ", indent)+"(empty)")

		return
	}

	for _, s := range body {
		printStmt(ctx, w, s, indent)
	}
}

func printExpr(ctx context.Context, w io.Writer, e Expr, indent int) {
	prefix := strings.Repeat("  ", indent)
	put := writer(w)

	switch x := e.(type) {
	case *Number:
		put("\n", prefix+"Number", formatFloat(x.Value))

	case *Ident:
		put("\n", prefix+"Ident", x.Name)

	case *Unary:
		put("\n", prefix+"Unary", x.Op.String())
		printExpr(ctx, w, x.X, indent+1)

	case *Binary:
		put("\n", prefix+"Binary", x.Op.String())
		printExpr(ctx, w, x.X, indent+1)
		printExpr(ctx, w, x.Y, indent+1)

	case *Call:
		put("\n", prefix+"Call", x.Name)

		for _, arg := range x.Args {
			printExpr(ctx, w, arg, indent+1)
		}

	case *List:
		put("\n", prefix+"List")

		if len(x.Elems) == 0 {
			put("\n", prefix+"  (empty)")
		}

		for _, elem := range x.Elems {
			printExpr(ctx, w, elem, indent+1)
		}
	}
}
