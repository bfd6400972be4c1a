package lang

import (
	"strconv"
	"strings"
)

// Kind discriminates the two value forms.
type Kind int

const (
	// KindNumber is a 64-bit floating point number.
	KindNumber Kind = iota

	// KindList is an ordered sequence of values, possibly nested.
	KindList
)

// String returns a short name for the kind, used in diagnostics.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"

	case KindList:
		return "list"

	default:
		return "unknown"
	}
}

// Value is the result of evaluating an expression: a number or a list.
// The zero value is the number 0.
type Value struct {
	Kind Kind
	Num  float64
	List []Value
}

// NumberValue wraps a float as a Value.
func NumberValue(f float64) Value {
	return Value{Kind: KindNumber, Num: f}
}

// ListValue wraps elements as a list Value.
func ListValue(elems []Value) Value {
	return Value{Kind: KindList, List: elems}
}

// String renders the value in canonical printed form: numbers in their
// shortest decimal representation without an exponent, lists bracketed
// with ", " separators. Arithmetic that escapes the float range prints as
// +Inf, -Inf, or NaN.
func (v Value) String() string {
	if v.Kind == KindNumber {
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	}

	parts := make([]string, len(v.List))
	for i, e := range v.List {
		parts[i] = e.String()
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
