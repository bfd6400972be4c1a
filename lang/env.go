package lang

// This file defines the Environment that evaluation binds names into. The
// base environment of built-in constants is lazily initialized once per
// process and cloned into every new Environment so programs may rebind
// built-in names without affecting each other.

import (
	"maps"
	"slices"
	"sync"

	"github.com/ardnew/arith/lang/ast"
)

// Function is a user-declared function: parameter names over a single body
// expression.
type Function struct {
	Params []string
	Body   ast.Expr
}

// Binding is one Environment entry: a value, or a function when Fn is set.
type Binding struct {
	Value Value
	Fn    *Function
}

// IsFunc reports whether the binding names a function.
func (b Binding) IsFunc() bool { return b.Fn != nil }

// ValueBinding wraps a value as a Binding.
func ValueBinding(v Value) Binding { return Binding{Value: v} }

// FuncBinding wraps a function as a Binding.
func FuncBinding(fn *Function) Binding { return Binding{Fn: fn} }

// Environment holds the bindings a program evaluates against: one global
// table plus a stack of shadow frames for loop variables and call
// parameters. It is not safe for concurrent use.
type Environment struct {
	global map[string]Binding
	frames []map[string]Value
}

// Private singleton cache.
//
//nolint:gochecknoglobals
var (
	baseEnvOnce sync.Once
	baseEnv     map[string]Binding
)

// makeBaseEnv returns a clone of the lazily-initialized, process-scoped
// table of built-in constant bindings. The returned map can be safely
// mutated by the caller without affecting the shared cache.
func makeBaseEnv() map[string]Binding {
	baseEnvOnce.Do(func() {
		baseEnv = make(map[string]Binding, len(builtinConsts))
		for name, v := range builtinConsts {
			baseEnv[name] = ValueBinding(NumberValue(v))
		}
	})

	return maps.Clone(baseEnv)
}

// NewEnvironment returns an empty environment preloaded with the built-in
// constants.
func NewEnvironment() *Environment {
	return &Environment{global: makeBaseEnv()}
}

// Define binds name in the global table, replacing any previous binding of
// either form. Definitions always target the global table; shadow frames
// are only ever created by loops and calls.
func (env *Environment) Define(name string, b Binding) {
	env.global[name] = b
}

// Lookup resolves name against the innermost shadow frame that binds it,
// falling back to the global table.
func (env *Environment) Lookup(name string) (Binding, bool) {
	for i := len(env.frames) - 1; i >= 0; i-- {
		if v, ok := env.frames[i][name]; ok {
			return ValueBinding(v), true
		}
	}

	b, ok := env.global[name]

	return b, ok
}

// PushScope pushes a shadow frame binding a single name, as one loop
// iteration requires.
func (env *Environment) PushScope(name string, v Value) {
	env.frames = append(env.frames, map[string]Value{name: v})
}

// PushCall pushes a shadow frame binding each parameter to its argument.
// Callers must ensure the slices have equal length.
func (env *Environment) PushCall(params []string, args []Value) {
	frame := make(map[string]Value, len(params))
	for i, p := range params {
		frame[p] = args[i]
	}

	env.frames = append(env.frames, frame)
}

// PopScope removes the most recent shadow frame, restoring whatever the
// frame's names were bound to before.
func (env *Environment) PopScope() {
	if len(env.frames) > 0 {
		env.frames = env.frames[:len(env.frames)-1]
	}
}

// Names returns the sorted names bound in the global table, built-in
// constants included.
func (env *Environment) Names() []string {
	return slices.Sorted(maps.Keys(env.global))
}
