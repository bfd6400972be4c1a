package lang

import (
	"log/slog"
	"maps"
	"math"
	"slices"
	"strconv"
	"sync"
)

// builtin is a native function entry: its parameter count and its
// implementation over already-evaluated arguments.
type builtin struct {
	arity int
	apply func(args []Value) (Value, error)
}

// builtinConsts are the named constants preloaded into every Environment.
// PHI carries the literal the language has always printed for the golden
// ratio; it differs from the nearest float in the last digit.
//
//nolint:gochecknoglobals
var builtinConsts = map[string]float64{
	"PI":  math.Pi,
	"TAU": 2 * math.Pi,
	"PHI": 1.618033988749894,
}

// builtinFuncs are the native functions. All follow IEEE semantics and
// never fail on domain edges: sqrt(-1) is NaN, ln(0) is -Inf.
//
//nolint:gochecknoglobals
var builtinFuncs = map[string]builtin{
	"sin":   unary(math.Sin),
	"cos":   unary(math.Cos),
	"tan":   unary(math.Tan),
	"asin":  unary(math.Asin),
	"acos":  unary(math.Acos),
	"atan":  unary(math.Atan),
	"sqrt":  unary(math.Sqrt),
	"abs":   unary(math.Abs),
	"floor": unary(math.Floor),
	"ceil":  unary(math.Ceil),
	"ln":    unary(math.Log),
	"log":   unary(math.Log), // natural log, same as ln
	"exp":   unary(math.Exp),
	"pow": {
		arity: 2,
		apply: applyPow,
	},
}

// unary adapts a float function into a builtin that maps elementwise over
// lists, recursing into nested lists.
func unary(fn func(float64) float64) builtin {
	return builtin{
		arity: 1,
		apply: func(args []Value) (Value, error) {
			return mapUnary(fn, args[0]), nil
		},
	}
}

func mapUnary(fn func(float64) float64, v Value) Value {
	if v.Kind == KindNumber {
		return NumberValue(fn(v.Num))
	}

	elems := make([]Value, len(v.List))
	for i, e := range v.List {
		elems[i] = mapUnary(fn, e)
	}

	return ListValue(elems)
}

func applyPow(args []Value) (Value, error) {
	if args[0].Kind != KindNumber || args[1].Kind != KindNumber {
		return Value{}, ErrType.
			Wrap(NewError("pow operands must be numbers")).
			With(
				slog.String("base", args[0].Kind.String()),
				slog.String("exponent", args[1].Kind.String()),
			)
	}

	return NumberValue(math.Pow(args[0].Num, args[1].Num)), nil
}

// BuiltinNames returns the sorted names of every built-in function and
// constant. The list is computed once and shared; callers must not modify
// it.
//
//nolint:gochecknoglobals
var BuiltinNames = sync.OnceValue(
	func() []string {
		names := slices.Collect(maps.Keys(builtinFuncs))
		names = slices.AppendSeq(names, maps.Keys(builtinConsts))
		slices.Sort(names)

		return names
	},
)

// BuiltinArity reports the parameter count of a built-in function, or
// false for names that are not built-in functions. Constants are not
// functions and report false.
func BuiltinArity(name string) (int, bool) {
	b, ok := builtinFuncs[name]

	return b.arity, ok
}

// callBuiltin applies a built-in function to evaluated arguments.
func callBuiltin(name string, b builtin, args []Value) (Value, error) {
	if len(args) != b.arity {
		return Value{}, ErrArity.
			Wrap(NewError("wrong number of arguments for " + strconv.Quote(name) +
				": expected " + strconv.Itoa(b.arity) +
				", got " + strconv.Itoa(len(args)))).
			With(
				slog.String("function", name),
				slog.Int("expected", b.arity),
				slog.Int("got", len(args)),
			)
	}

	return b.apply(args)
}
