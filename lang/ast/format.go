package ast

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// DefaultIndent is the indentation width used by [Program.Format] when the
// caller does not supply a positive one.
const DefaultIndent = 2

// Format writes the program in canonical arith syntax: one statement per
// line, loop bodies indented by indent spaces per nesting level, operators
// spaced, and parentheses only where grouping changes the parse.
func (p *Program) Format(_ context.Context, w io.Writer, indent int) error {
	if indent < 1 {
		indent = DefaultIndent
	}

	for _, s := range p.Stmts {
		if err := formatStmt(w, s, indent, 0); err != nil {
			return err
		}

		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	return nil
}

// FormatJSON writes the program as JSON to the writer.
func (p *Program) FormatJSON(_ context.Context, w io.Writer, indent int) error {
	var (
		jsonData []byte
		err      error
	)

	if indent > 0 {
		jsonData, err = json.MarshalIndent(p, "", strings.Repeat(" ", indent))
	} else {
		jsonData, err = json.Marshal(p)
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(jsonData))

	return err
}

// FormatYAML writes the program as YAML to the writer.
func (p *Program) FormatYAML(ctx context.Context, w io.Writer, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	yamlData, err := yaml.MarshalContext(ctx, p.ToMap(), opts...)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(w, string(yamlData))

	return err
}

func formatStmt(w io.Writer, s Stmt, indent, depth int) error {
	switch t := s.(type) {
	case *Assign:
		if _, err := fmt.Fprint(w, t.Name, " = "); err != nil {
			return err
		}

		return formatExpr(w, t.Value, 0)

	case *Destructure:
		out := "[" + strings.Join(t.Names, ", ") + "] = "
		if _, err := fmt.Fprint(w, out); err != nil {
			return err
		}

		return formatExpr(w, t.Value, 0)

	case *FuncDecl:
		out := t.Name + "(" + strings.Join(t.Params, ", ") + ") = "
		if _, err := fmt.Fprint(w, out); err != nil {
			return err
		}

		return formatExpr(w, t.Body, 0)

	case *ExprStmt:
		return formatExpr(w, t.X, 0)

	case *RangeLoop:
		if _, err := fmt.Fprint(w, "from "); err != nil {
			return err
		}

		if err := formatExpr(w, t.From, 0); err != nil {
			return err
		}

		if _, err := fmt.Fprint(w, " to "); err != nil {
			return err
		}

		if err := formatExpr(w, t.To, 0); err != nil {
			return err
		}

		if _, err := fmt.Fprint(w, " as ", t.Var); err != nil {
			return err
		}

		if t.Step != nil {
			if _, err := fmt.Fprint(w, " with step "); err != nil {
				return err
			}

			if err := formatExpr(w, t.Step, 0); err != nil {
				return err
			}
		}

		return formatBody(w, t.Body, indent, depth)

	case *EachLoop:
		if _, err := fmt.Fprint(w, "for ", t.Var, " in "); err != nil {
			return err
		}

		if err := formatExpr(w, t.Source, 0); err != nil {
			return err
		}

		return formatBody(w, t.Body, indent, depth)

	default:
		_, err := fmt.Fprint(w, "<unknown>")

		return err
	}
}

func formatBody(w io.Writer, body []Stmt, indent, depth int) error {
	if _, err := fmt.Fprint(w, " {"); err != nil {
		return err
	}

	for _, s := range body {
		pad := strings.Repeat(" ", (depth+1)*indent)
		if _, err := fmt.Fprint(w, "\n", pad); err != nil {
			return err
		}

		if err := formatStmt(w, s, indent, depth+1); err != nil {
			return err
		}
	}

	_, err := fmt.Fprint(w, "\n", strings.Repeat(" ", depth*indent), "}")

	return err
}

// formatExpr writes e, parenthesizing it when its operator binds looser
// than the surrounding context prec requires.
func formatExpr(w io.Writer, e Expr, prec int) error {
	switch x := e.(type) {
	case *Number:
		_, err := fmt.Fprint(w, formatFloat(x.Value))

		return err

	case *Ident:
		_, err := fmt.Fprint(w, x.Name)

		return err

	case *Unary:
		if _, err := fmt.Fprint(w, x.Op.String()); err != nil {
			return err
		}

		return formatExpr(w, x.X, x.Op.precedence())

	case *Binary:
		p := x.Op.precedence()

		if p < prec {
			if _, err := fmt.Fprint(w, "("); err != nil {
				return err
			}
		}

		if err := formatExpr(w, x.X, p); err != nil {
			return err
		}

		if _, err := fmt.Fprint(w, " ", x.Op.String(), " "); err != nil {
			return err
		}

		// Left associativity: the right operand needs parens at equal
		// precedence.
		if err := formatExpr(w, x.Y, p+1); err != nil {
			return err
		}

		if p < prec {
			if _, err := fmt.Fprint(w, ")"); err != nil {
				return err
			}
		}

		return nil

	case *Call:
		if _, err := fmt.Fprint(w, x.Name, "("); err != nil {
			return err
		}

		for i, arg := range x.Args {
			if i > 0 {
				if _, err := fmt.Fprint(w, ", "); err != nil {
					return err
				}
			}

			if err := formatExpr(w, arg, 0); err != nil {
				return err
			}
		}

		_, err := fmt.Fprint(w, ")")

		return err

	case *List:
		if _, err := fmt.Fprint(w, "["); err != nil {
			return err
		}

		for i, elem := range x.Elems {
			if i > 0 {
				if _, err := fmt.Fprint(w, ", "); err != nil {
					return err
				}
			}

			if err := formatExpr(w, elem, 0); err != nil {
				return err
			}
		}

		_, err := fmt.Fprint(w, "]")

		return err

	default:
		_, err := fmt.Fprint(w, "<unknown>")

		return err
	}
}

func (op Op) precedence() int {
	switch op {
	case OpAdd, OpSub:
		return 1

	case OpMul, OpDiv:
		return 2

	case OpNeg:
		return 3

	default:
		return 0
	}
}

// formatFloat renders a float in the canonical form shared with printed
// values: shortest decimal representation, no exponent.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
