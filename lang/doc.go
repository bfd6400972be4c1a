// Package lang implements a small expression-oriented language for
// numeric computation: a lexer, a recursive descent parser, and a tree
// walking evaluator over a mutable environment.
//
// # Philosophy
//
// Every value is an IEEE 754 double or a list of values. There are no
// strings, no booleans, and no conditionals. Arithmetic follows IEEE
// semantics, so 1 / 0 is an infinity rather than an error. A bare
// expression statement prints its value, which makes a source file double
// as a calculator session.
//
// No parser generator. No generated code. The grammar is simple enough
// for a hand-written recursive descent parser with precedence climbing.
//
// # Grammar
//
// Informal EBNF:
//
//	Program     → Statement* EOF
//	Statement   → Assign | Destructure | FuncDecl | RangeLoop | EachLoop | Expression
//	Assign      → Identifier '=' Expression
//	Destructure → '[' Identifier (',' Identifier)* ']' '=' Expression
//	FuncDecl    → Identifier '(' Params? ')' '=' Expression
//	RangeLoop   → 'from' Expression 'to' Expression 'as' Identifier ('with' 'step' Expression)? Block
//	EachLoop    → 'for' Identifier 'in' Expression Block
//	Block       → '{' Statement* '}'
//	Expression  → precedence climbing over '+' '-' '*' '/', unary '-'
//	Primary     → Number | Identifier | Call | List | '(' Expression ')'
//
// Parentheses group; only brackets build lists. Comments run from '#' to
// end of line.
//
// # Example
//
//	# Bare expressions print their value.
//	1 + 2 * 3
//
//	# Assignment binds a global name.
//	r = 2.5
//	area = PI * r * r
//
//	# Functions are single-expression declarations.
//	hyp(a, b) = sqrt(a * a + b * b)
//	hyp(3, 4)
//
//	# Range loops exclude the upper bound.
//	from 0 to 10 as i with step 2 {
//	  i * i
//	}
//
//	# Lists, element iteration, and destructuring.
//	[lo, hi] = [0.5, 2]
//	for x in [lo, 1, hi] {
//	  sin(x)
//	}
//
// # Scoping
//
// Assignment always binds in the single global scope, last writer wins.
// Only loop variables and function parameters shadow: each loop iteration
// and each call pushes a fresh frame, and lookup walks frames innermost
// first before falling back to globals. When the frame pops, the prior
// binding is visible again.
//
// Built-in constants (PI, TAU, PHI) pre-populate the global scope and may
// be rebound. Built-in functions (sin, sqrt, pow, ...) are consulted only
// when no user binding exists, so user definitions shadow them.
package lang
