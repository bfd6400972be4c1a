package ast

import (
	"encoding/json"
	"testing"
)

func TestProgram_ToMap(t *testing.T) {
	b := NewBuilder()
	prog := b.Program(
		b.RangeStep(b.Number(0), b.Number(10), b.Number(2), "i",
			b.Expr(b.Call("sin", b.Ident("i")))),
		b.Range(b.Number(0), b.Number(3), "j"),
	)

	m := prog.ToMap()

	stmts, ok := m["statements"].([]any)
	if !ok {
		t.Fatalf("expected statements slice, got %T", m["statements"])
	}

	if len(stmts) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(stmts))
	}

	loop, ok := stmts[0].(map[string]any)
	if !ok {
		t.Fatalf("expected statement map, got %T", stmts[0])
	}

	if loop["kind"] != "range" {
		t.Errorf("expected kind range, got %v", loop["kind"])
	}

	if loop["var"] != "i" {
		t.Errorf("expected var i, got %v", loop["var"])
	}

	if _, ok := loop["step"]; !ok {
		t.Error("expected explicit step to be present")
	}

	body, ok := loop["body"].([]any)
	if !ok || len(body) != 1 {
		t.Fatalf("expected 1 body statement, got %v", loop["body"])
	}

	call := body[0].(map[string]any)["expr"].(map[string]any)
	if call["kind"] != "call" || call["name"] != "sin" {
		t.Errorf("expected sin call, got %v", call)
	}

	if _, ok := stmts[1].(map[string]any)["step"]; ok {
		t.Error("expected omitted step to be absent")
	}
}

func TestProgram_MarshalJSON_RoundTrip(t *testing.T) {
	b := NewBuilder()
	prog := b.Program(b.Destructure([]string{"a", "b"},
		b.List(b.Number(1.5), b.Neg(b.Number(2)))))

	data, err := json.Marshal(prog)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}

	stmts := decoded["statements"].([]any)
	destr := stmts[0].(map[string]any)

	if destr["kind"] != "destructure" {
		t.Errorf("expected kind destructure, got %v", destr["kind"])
	}

	names := destr["names"].([]any)
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("expected names [a b], got %v", names)
	}

	elems := destr["value"].(map[string]any)["elems"].([]any)
	if len(elems) != 2 {
		t.Fatalf("expected 2 list elements, got %d", len(elems))
	}

	first := elems[0].(map[string]any)
	if first["kind"] != "number" || first["value"] != 1.5 {
		t.Errorf("expected number 1.5, got %v", first)
	}
}
