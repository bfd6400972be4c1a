package repl

import (
	"context"
	"strings"
	"testing"

	"github.com/ardnew/arith/lang"
)

func TestDetectFunctionCall(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		cursor     int
		wantName   string
		wantIndex  int
		wantInCall bool
	}{
		{
			name:       "no call",
			input:      "radius",
			cursor:     6,
			wantName:   "",
			wantIndex:  0,
			wantInCall: false,
		},
		{
			name:       "open paren",
			input:      "pow(",
			cursor:     4,
			wantName:   "pow",
			wantIndex:  0,
			wantInCall: true,
		},
		{
			name:       "first arg",
			input:      "pow(2",
			cursor:     5,
			wantName:   "pow",
			wantIndex:  0,
			wantInCall: true,
		},
		{
			name:       "second arg",
			input:      "pow(2,",
			cursor:     6,
			wantName:   "pow",
			wantIndex:  1,
			wantInCall: true,
		},
		{
			name:       "second arg with value",
			input:      "pow(2, 8",
			cursor:     8,
			wantName:   "pow",
			wantIndex:  1,
			wantInCall: true,
		},
		{
			name:       "nested call counts one arg",
			input:      "pow(sin(1), ",
			cursor:     12,
			wantName:   "pow",
			wantIndex:  1,
			wantInCall: true,
		},
		{
			name:       "cursor inside nested call",
			input:      "pow(sin(1), 4)",
			cursor:     8,
			wantName:   "sin",
			wantIndex:  0,
			wantInCall: true,
		},
		{
			name:       "grouping paren is not a call",
			input:      "(1 + 2",
			cursor:     6,
			wantName:   "",
			wantIndex:  0,
			wantInCall: false,
		},
		{
			name:       "list literal is not a call",
			input:      "[1, 2",
			cursor:     5,
			wantName:   "",
			wantIndex:  0,
			wantInCall: false,
		},
		{
			name:       "list argument commas ignored",
			input:      "pow([1, 2], ",
			cursor:     12,
			wantName:   "pow",
			wantIndex:  1,
			wantInCall: true,
		},
		{
			name:       "closed call",
			input:      "pow(2, 8)",
			cursor:     9,
			wantName:   "",
			wantIndex:  0,
			wantInCall: false,
		},
		{
			name:       "underscore name",
			input:      "area_of(3",
			cursor:     9,
			wantName:   "area_of",
			wantIndex:  0,
			wantInCall: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detectFunctionCall(tt.input, tt.cursor)

			if got.name != tt.wantName {
				t.Errorf("detectFunctionCall().name = %q, want %q", got.name, tt.wantName)
			}
			if got.argIndex != tt.wantIndex {
				t.Errorf("detectFunctionCall().argIndex = %d, want %d", got.argIndex, tt.wantIndex)
			}
			if got.inCall != tt.wantInCall {
				t.Errorf("detectFunctionCall().inCall = %v, want %v", got.inCall, tt.wantInCall)
			}
		})
	}
}

func TestGetSignature(t *testing.T) {
	source := `add(x, y) = x + y
scale(v, factor, offset) = v * factor + offset
value = 3
sqrt = 9`

	env := lang.NewEnvironment()
	if err := lang.EvalString(context.Background(), source, env); err != nil {
		t.Fatalf("EvalString() error: %v", err)
	}

	tests := []struct {
		name          string
		funcName      string
		wantSignature string
		wantParams    []string
	}{
		{
			name:          "session function",
			funcName:      "add",
			wantSignature: "add(x, y)",
			wantParams:    []string{"x", "y"},
		},
		{
			name:          "session function three params",
			funcName:      "scale",
			wantSignature: "scale(v, factor, offset)",
			wantParams:    []string{"v", "factor", "offset"},
		},
		{
			name:          "value binding is not a function",
			funcName:      "value",
			wantSignature: "",
			wantParams:    nil,
		},
		{
			name:          "builtin unary",
			funcName:      "sin",
			wantSignature: "sin(x)",
			wantParams:    []string{"x"},
		},
		{
			name:          "builtin pow",
			funcName:      "pow",
			wantSignature: "pow(base, exponent)",
			wantParams:    []string{"base", "exponent"},
		},
		{
			name:          "shadowed builtin hides hint",
			funcName:      "sqrt",
			wantSignature: "",
			wantParams:    nil,
		},
		{
			name:          "unknown name",
			funcName:      "doesnotexist",
			wantSignature: "",
			wantParams:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotSig, gotParams := getSignature(env, tt.funcName)

			if gotSig != tt.wantSignature {
				t.Errorf("getSignature().signature = %q, want %q", gotSig, tt.wantSignature)
			}

			if len(gotParams) != len(tt.wantParams) {
				t.Errorf("getSignature().params length = %d, want %d", len(gotParams), len(tt.wantParams))

				return
			}

			for i := range gotParams {
				if gotParams[i] != tt.wantParams[i] {
					t.Errorf("getSignature().params[%d] = %q, want %q", i, gotParams[i], tt.wantParams[i])
				}
			}
		})
	}
}

func TestFormatSignature(t *testing.T) {
	if got, want := formatSignature("f", nil), "f()"; got != want {
		t.Errorf("formatSignature() = %q, want %q", got, want)
	}

	if got, want := formatSignature("pow", []string{"base", "exponent"}), "pow(base, exponent)"; got != want {
		t.Errorf("formatSignature() = %q, want %q", got, want)
	}
}

func TestRenderSignatureHint(t *testing.T) {
	tests := []struct {
		name       string
		signature  string
		params     []string
		currentArg int
	}{
		{"no params", "f()", nil, 0},
		{"first param", "add(x, y)", []string{"x", "y"}, 0},
		{"second param", "add(x, y)", []string{"x", "y"}, 1},
		{"beyond last param", "add(x, y)", []string{"x", "y"}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderSignatureHint(tt.signature, tt.params, tt.currentArg)
			if got == "" {
				t.Fatalf("renderSignatureHint(%q) = empty", tt.signature)
			}

			// Styled output still contains the plain name characters.
			name := tt.signature[:strings.Index(tt.signature, "(")]
			if !strings.Contains(got, name) {
				t.Errorf("hint %q missing name %q", got, name)
			}
		})
	}

	if got := renderSignatureHint("", nil, 0); got != "" {
		t.Errorf("renderSignatureHint(empty) = %q, want empty", got)
	}
}
