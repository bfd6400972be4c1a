package ast

import "encoding/json"

// MarshalJSON implements json.Marshaler for Program.
func (p *Program) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ToMap())
}

// ToMap converts the program to a native Go map structure suitable for
// encoding as JSON or YAML. Every node becomes a map carrying a "kind" key
// naming its node type.
func (p *Program) ToMap() map[string]any {
	stmts := make([]any, len(p.Stmts))
	for i, s := range p.Stmts {
		stmts[i] = stmtToMap(s)
	}

	return map[string]any{"statements": stmts}
}

func stmtToMap(s Stmt) map[string]any {
	switch t := s.(type) {
	case *Assign:
		return map[string]any{
			"kind":  "assign",
			"name":  t.Name,
			"value": exprToMap(t.Value),
		}

	case *Destructure:
		return map[string]any{
			"kind":  "destructure",
			"names": t.Names,
			"value": exprToMap(t.Value),
		}

	case *FuncDecl:
		return map[string]any{
			"kind":   "func",
			"name":   t.Name,
			"params": t.Params,
			"body":   exprToMap(t.Body),
		}

	case *ExprStmt:
		return map[string]any{
			"kind": "expr",
			"expr": exprToMap(t.X),
		}

	case *RangeLoop:
		m := map[string]any{
			"kind": "range",
			"from": exprToMap(t.From),
			"to":   exprToMap(t.To),
			"var":  t.Var,
			"body": bodyToSlice(t.Body),
		}

		if t.Step != nil {
			m["step"] = exprToMap(t.Step)
		}

		return m

	case *EachLoop:
		return map[string]any{
			"kind": "each",
			"var":  t.Var,
			"in":   exprToMap(t.Source),
			"body": bodyToSlice(t.Body),
		}

	default:
		return map[string]any{"kind": "unknown"}
	}
}

func exprToMap(e Expr) map[string]any {
	switch x := e.(type) {
	case *Number:
		return map[string]any{
			"kind":  "number",
			"value": x.Value,
		}

	case *Ident:
		return map[string]any{
			"kind": "ident",
			"name": x.Name,
		}

	case *Unary:
		return map[string]any{
			"kind": "unary",
			"op":   x.Op.String(),
			"x":    exprToMap(x.X),
		}

	case *Binary:
		return map[string]any{
			"kind": "binary",
			"op":   x.Op.String(),
			"x":    exprToMap(x.X),
			"y":    exprToMap(x.Y),
		}

	case *Call:
		args := make([]any, len(x.Args))
		for i, arg := range x.Args {
			args[i] = exprToMap(arg)
		}

		return map[string]any{
			"kind": "call",
			"name": x.Name,
			"args": args,
		}

	case *List:
		elems := make([]any, len(x.Elems))
		for i, elem := range x.Elems {
			elems[i] = exprToMap(elem)
		}

		return map[string]any{
			"kind":  "list",
			"elems": elems,
		}

	default:
		return map[string]any{"kind": "unknown"}
	}
}

func bodyToSlice(body []Stmt) []any {
	stmts := make([]any, len(body))
	for i, s := range body {
		stmts[i] = stmtToMap(s)
	}

	return stmts
}
