package lang

import (
	"math"
	"slices"
	"testing"

	"github.com/ardnew/arith/lang/ast"
)

func TestNewEnvironment_Constants(t *testing.T) {
	env := NewEnvironment()

	tests := []struct {
		name string
		want float64
	}{
		{name: "PI", want: math.Pi},
		{name: "TAU", want: 2 * math.Pi},
		{name: "PHI", want: 1.618033988749894},
	}

	for _, tt := range tests {
		b, ok := env.Lookup(tt.name)
		if !ok {
			t.Fatalf("expected %s to be bound", tt.name)
		}

		if b.IsFunc() {
			t.Fatalf("expected %s to be a value binding", tt.name)
		}

		if b.Value.Num != tt.want {
			t.Fatalf("expected %s = %v, got %v", tt.name, tt.want, b.Value.Num)
		}
	}
}

func TestNewEnvironment_Isolated(t *testing.T) {
	first := NewEnvironment()
	first.Define("PI", ValueBinding(NumberValue(3)))
	first.Define("x", ValueBinding(NumberValue(1)))

	second := NewEnvironment()

	b, ok := second.Lookup("PI")
	if !ok || b.Value.Num != math.Pi {
		t.Fatalf("expected fresh environment PI = %v, got %v", math.Pi, b.Value.Num)
	}

	if _, ok := second.Lookup("x"); ok {
		t.Fatal("expected x to be unbound in a fresh environment")
	}
}

func TestEnvironment_DefineReplaces(t *testing.T) {
	env := NewEnvironment()

	env.Define("x", ValueBinding(NumberValue(1)))
	env.Define("x", ValueBinding(NumberValue(2)))

	b, ok := env.Lookup("x")
	if !ok || b.Value.Num != 2 {
		t.Fatalf("expected x = 2, got %v", b.Value)
	}

	// A function definition replaces a value binding under the same name.
	env.Define("x", FuncBinding(&Function{Params: nil, Body: &ast.Number{Value: 1}}))

	b, ok = env.Lookup("x")
	if !ok || !b.IsFunc() {
		t.Fatal("expected x to be a function binding")
	}
}

func TestEnvironment_ScopeShadowing(t *testing.T) {
	env := NewEnvironment()
	env.Define("i", ValueBinding(NumberValue(99)))

	env.PushScope("i", NumberValue(0))

	b, ok := env.Lookup("i")
	if !ok || b.Value.Num != 0 {
		t.Fatalf("expected shadowed i = 0, got %v", b.Value)
	}

	env.PushScope("i", NumberValue(1))

	b, _ = env.Lookup("i")
	if b.Value.Num != 1 {
		t.Fatalf("expected innermost i = 1, got %v", b.Value)
	}

	env.PopScope()

	b, _ = env.Lookup("i")
	if b.Value.Num != 0 {
		t.Fatalf("expected i = 0 after pop, got %v", b.Value)
	}

	env.PopScope()

	b, _ = env.Lookup("i")
	if b.Value.Num != 99 {
		t.Fatalf("expected global i = 99 after pops, got %v", b.Value)
	}
}

func TestEnvironment_ScopedDefineStaysGlobal(t *testing.T) {
	env := NewEnvironment()

	env.PushScope("i", NumberValue(0))
	env.Define("total", ValueBinding(NumberValue(10)))
	env.PopScope()

	b, ok := env.Lookup("total")
	if !ok || b.Value.Num != 10 {
		t.Fatalf("expected total = 10 after scope pop, got %v", b.Value)
	}

	if _, ok := env.Lookup("i"); ok {
		t.Fatal("expected loop variable to be unbound after scope pop")
	}
}

func TestEnvironment_PushCall(t *testing.T) {
	env := NewEnvironment()
	env.Define("y", ValueBinding(NumberValue(10)))

	env.PushCall([]string{"a", "b"}, []Value{NumberValue(1), NumberValue(2)})

	a, _ := env.Lookup("a")
	b, _ := env.Lookup("b")

	if a.Value.Num != 1 || b.Value.Num != 2 {
		t.Fatalf("expected a = 1, b = 2, got %v, %v", a.Value, b.Value)
	}

	// Names not bound by the frame fall through to globals.
	y, ok := env.Lookup("y")
	if !ok || y.Value.Num != 10 {
		t.Fatalf("expected y = 10 through call frame, got %v", y.Value)
	}

	env.PopScope()

	if _, ok := env.Lookup("a"); ok {
		t.Fatal("expected parameter to be unbound after call returns")
	}
}

func TestEnvironment_PopEmptyScope(t *testing.T) {
	env := NewEnvironment()

	env.PopScope() // must not panic

	if _, ok := env.Lookup("PI"); !ok {
		t.Fatal("expected constants to survive a stray pop")
	}
}

func TestEnvironment_Names(t *testing.T) {
	env := NewEnvironment()
	env.Define("alpha", ValueBinding(NumberValue(1)))
	env.Define("zed", ValueBinding(NumberValue(2)))

	names := env.Names()

	if !slices.IsSorted(names) {
		t.Fatalf("expected sorted names, got %v", names)
	}

	for _, want := range []string{"PHI", "PI", "TAU", "alpha", "zed"} {
		if !slices.Contains(names, want) {
			t.Fatalf("expected names to contain %q, got %v", want, names)
		}
	}

	// Shadow frames do not contribute names.
	env.PushScope("i", NumberValue(0))

	if slices.Contains(env.Names(), "i") {
		t.Fatal("expected shadow frame bindings to be excluded from Names")
	}
}
