package lang

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/ardnew/arith/lang/ast"
	"github.com/ardnew/arith/log"
)

// DefaultMaxCallDepth is the default maximum user-function call depth.
// The language has no conditionals, so recursion can never terminate; the
// guard turns runaway recursion into an error instead of a stack overflow.
// Users may modify this before evaluating to change the default.
//
//nolint:gochecknoglobals
var DefaultMaxCallDepth = 100

// Evaluator walks a program's statements against an Environment.
type Evaluator struct {
	out          io.Writer
	logger       log.Logger
	maxCallDepth int
	depth        int
}

// Option configures evaluation behavior.
type Option func(*Evaluator)

// WithOutput sets the writer that bare expression statements print to.
// The default is os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(ev *Evaluator) {
		ev.out = w
	}
}

// WithLogger sets the structured logger for trace-level debugging.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(ev *Evaluator) {
		ev.logger = logger
	}
}

// WithMaxCallDepth overrides [DefaultMaxCallDepth] for one evaluation.
func WithMaxCallDepth(depth int) Option {
	return func(ev *Evaluator) {
		ev.maxCallDepth = depth
	}
}

func applyDefaults(ev *Evaluator) {
	ev.out = os.Stdout
	ev.maxCallDepth = DefaultMaxCallDepth
}

func applyOptions(ev *Evaluator, opts ...Option) {
	for _, opt := range opts {
		opt(ev)
	}
}

// Evaluate runs prog's statements in order against env. The first failing
// statement aborts evaluation; env keeps every binding made before the
// failure. Bare expression statement values print to the output writer,
// one per line, in canonical form.
//
// The context is checked between statements and between loop iterations.
func Evaluate(
	ctx context.Context,
	prog *ast.Program,
	env *Environment,
	opts ...Option,
) error {
	ev := &Evaluator{}

	applyDefaults(ev)
	applyOptions(ev, opts...)

	ev.logger.TraceContext(
		ctx,
		"evaluate start",
		slog.Int("statements", len(prog.Stmts)),
	)

	for _, s := range prog.Stmts {
		if err := ctx.Err(); err != nil {
			return WrapError(err)
		}

		if err := ev.statement(ctx, s, env); err != nil {
			return err
		}
	}

	return nil
}

func (ev *Evaluator) statement(ctx context.Context, s ast.Stmt, env *Environment) error {
	switch t := s.(type) {
	case *ast.Assign:
		v, err := ev.expression(ctx, t.Value, env)
		if err != nil {
			return err
		}

		env.Define(t.Name, ValueBinding(v))

		ev.logger.TraceContext(
			ctx,
			"bind value",
			slog.String("name", t.Name),
			slog.String("kind", v.Kind.String()),
		)

		return nil

	case *ast.Destructure:
		return ev.destructure(ctx, t, env)

	case *ast.FuncDecl:
		env.Define(t.Name, FuncBinding(&Function{Params: t.Params, Body: t.Body}))

		ev.logger.TraceContext(
			ctx,
			"bind function",
			slog.String("name", t.Name),
			slog.Int("params", len(t.Params)),
		)

		return nil

	case *ast.ExprStmt:
		v, err := ev.expression(ctx, t.X, env)
		if err != nil {
			return err
		}

		if _, err := fmt.Fprintln(ev.out, v); err != nil {
			return ErrWriteOutput.Wrap(err)
		}

		return nil

	case *ast.RangeLoop:
		return ev.rangeLoop(ctx, t, env)

	case *ast.EachLoop:
		return ev.eachLoop(ctx, t, env)

	default:
		return NewError(fmt.Sprintf("unsupported statement %T", s))
	}
}

func (ev *Evaluator) destructure(ctx context.Context, t *ast.Destructure, env *Environment) error {
	v, err := ev.expression(ctx, t.Value, env)
	if err != nil {
		return err
	}

	if v.Kind != KindList {
		return ErrType.
			Wrap(NewError("cannot destructure a " + v.Kind.String())).
			With(slog.String("kind", v.Kind.String()))
	}

	if len(v.List) != len(t.Names) {
		return ErrArity.
			Wrap(NewError("wrong number of values to destructure: expected " +
				strconv.Itoa(len(t.Names)) + ", got " + strconv.Itoa(len(v.List)))).
			With(
				slog.Int("expected", len(t.Names)),
				slog.Int("got", len(v.List)),
			)
	}

	for i, name := range t.Names {
		env.Define(name, ValueBinding(v.List[i]))
	}

	ev.logger.TraceContext(ctx, "bind values", slog.Int("names", len(t.Names)))

	return nil
}

// rangeLoop evaluates the bounds and step once, then steps the counter
// toward the exclusive upper bound in the direction of the step's sign.
func (ev *Evaluator) rangeLoop(ctx context.Context, t *ast.RangeLoop, env *Environment) error {
	from, err := ev.loopNumber(ctx, t.From, env, "loop bound")
	if err != nil {
		return err
	}

	to, err := ev.loopNumber(ctx, t.To, env, "loop bound")
	if err != nil {
		return err
	}

	step := 1.0
	if t.Step != nil {
		step, err = ev.loopNumber(ctx, t.Step, env, "loop step")
		if err != nil {
			return err
		}
	}

	if step == 0 {
		return ErrZeroStep.Wrap(NewError("step must not be zero"))
	}

	var count int

	for v := from; (step > 0 && v < to) || (step < 0 && v > to); v += step {
		if err := ctx.Err(); err != nil {
			return WrapError(err)
		}

		if err := ev.runBody(ctx, t.Var, NumberValue(v), t.Body, env); err != nil {
			return err
		}

		count++
	}

	ev.logger.TraceContext(
		ctx,
		"loop done",
		slog.String("var", t.Var),
		slog.Int("iterations", count),
	)

	return nil
}

func (ev *Evaluator) eachLoop(ctx context.Context, t *ast.EachLoop, env *Environment) error {
	src, err := ev.expression(ctx, t.Source, env)
	if err != nil {
		return err
	}

	if src.Kind != KindList {
		return ErrType.
			Wrap(NewError("cannot iterate a " + src.Kind.String())).
			With(slog.String("kind", src.Kind.String()))
	}

	for _, elem := range src.List {
		if err := ctx.Err(); err != nil {
			return WrapError(err)
		}

		if err := ev.runBody(ctx, t.Var, elem, t.Body, env); err != nil {
			return err
		}
	}

	ev.logger.TraceContext(
		ctx,
		"loop done",
		slog.String("var", t.Var),
		slog.Int("iterations", len(src.List)),
	)

	return nil
}

// runBody executes one loop iteration with name bound in a fresh shadow
// frame, popped again even when the body fails.
func (ev *Evaluator) runBody(
	ctx context.Context,
	name string,
	v Value,
	body []ast.Stmt,
	env *Environment,
) error {
	env.PushScope(name, v)
	defer env.PopScope()

	for _, s := range body {
		if err := ev.statement(ctx, s, env); err != nil {
			return err
		}
	}

	return nil
}

// loopNumber evaluates a loop header expression that must yield a number.
func (ev *Evaluator) loopNumber(
	ctx context.Context,
	e ast.Expr,
	env *Environment,
	what string,
) (float64, error) {
	v, err := ev.expression(ctx, e, env)
	if err != nil {
		return 0, err
	}

	if v.Kind != KindNumber {
		return 0, ErrType.
			Wrap(NewError(what + " must be a number")).
			With(slog.String("kind", v.Kind.String()))
	}

	return v.Num, nil
}

func (ev *Evaluator) expression(ctx context.Context, e ast.Expr, env *Environment) (Value, error) {
	switch x := e.(type) {
	case *ast.Number:
		return NumberValue(x.Value), nil

	case *ast.Ident:
		b, ok := env.Lookup(x.Name)
		if !ok {
			if _, isBuiltin := builtinFuncs[x.Name]; isBuiltin {
				return Value{}, errFuncAsValue(x.Name)
			}

			return Value{}, ErrUndefined.
				Wrap(NewError("undefined name " + strconv.Quote(x.Name))).
				With(slog.String("name", x.Name))
		}

		if b.IsFunc() {
			return Value{}, errFuncAsValue(x.Name)
		}

		return b.Value, nil

	case *ast.Unary:
		v, err := ev.expression(ctx, x.X, env)
		if err != nil {
			return Value{}, err
		}

		if v.Kind != KindNumber {
			return Value{}, ErrType.Wrap(NewError("cannot negate a list"))
		}

		return NumberValue(-v.Num), nil

	case *ast.Binary:
		left, err := ev.expression(ctx, x.X, env)
		if err != nil {
			return Value{}, err
		}

		right, err := ev.expression(ctx, x.Y, env)
		if err != nil {
			return Value{}, err
		}

		if left.Kind != KindNumber || right.Kind != KindNumber {
			return Value{}, ErrType.
				Wrap(NewError("cannot apply " + strconv.Quote(x.Op.String()) + " to a list")).
				With(slog.String("op", x.Op.String()))
		}

		return NumberValue(applyOp(x.Op, left.Num, right.Num)), nil

	case *ast.Call:
		return ev.call(ctx, x, env)

	case *ast.List:
		elems := make([]Value, len(x.Elems))

		for i, el := range x.Elems {
			v, err := ev.expression(ctx, el, env)
			if err != nil {
				return Value{}, err
			}

			elems[i] = v
		}

		return ListValue(elems), nil

	default:
		return Value{}, NewError(fmt.Sprintf("unsupported expression %T", e))
	}
}

// call evaluates arguments left to right, then applies the named user
// function or built-in. User definitions shadow built-ins.
func (ev *Evaluator) call(ctx context.Context, x *ast.Call, env *Environment) (Value, error) {
	args := make([]Value, len(x.Args))

	for i, arg := range x.Args {
		v, err := ev.expression(ctx, arg, env)
		if err != nil {
			return Value{}, err
		}

		args[i] = v
	}

	b, ok := env.Lookup(x.Name)
	if !ok {
		if bi, isBuiltin := builtinFuncs[x.Name]; isBuiltin {
			return callBuiltin(x.Name, bi, args)
		}

		return Value{}, ErrUndefined.
			Wrap(NewError("undefined function " + strconv.Quote(x.Name))).
			With(slog.String("name", x.Name))
	}

	if !b.IsFunc() {
		return Value{}, ErrType.
			Wrap(NewError(strconv.Quote(x.Name) + " is not a function")).
			With(slog.String("name", x.Name))
	}

	if len(args) != len(b.Fn.Params) {
		return Value{}, ErrArity.
			Wrap(NewError("wrong number of arguments for " + strconv.Quote(x.Name) +
				": expected " + strconv.Itoa(len(b.Fn.Params)) +
				", got " + strconv.Itoa(len(args)))).
			With(
				slog.String("function", x.Name),
				slog.Int("expected", len(b.Fn.Params)),
				slog.Int("got", len(args)),
			)
	}

	if ev.depth >= ev.maxCallDepth {
		return Value{}, ErrMaxDepth.
			Wrap(NewError("while calling " + strconv.Quote(x.Name))).
			With(
				slog.String("function", x.Name),
				slog.Int("depth", ev.depth),
			)
	}

	ev.depth++
	defer func() { ev.depth-- }()

	env.PushCall(b.Fn.Params, args)
	defer env.PopScope()

	return ev.expression(ctx, b.Fn.Body, env)
}

func errFuncAsValue(name string) error {
	return ErrType.
		Wrap(NewError(strconv.Quote(name) + " is a function, not a value")).
		With(slog.String("name", name))
}

// applyOp applies a binary operator with IEEE semantics: division by zero
// yields an infinity or NaN, never an error.
func applyOp(op ast.Op, x, y float64) float64 {
	switch op {
	case ast.OpAdd:
		return x + y

	case ast.OpSub:
		return x - y

	case ast.OpMul:
		return x * y

	default:
		return x / y
	}
}
