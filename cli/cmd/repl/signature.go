package repl

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/arith/lang"
)

// builtinSignatures names the parameters of every built-in function for
// display in signature hints. The set mirrors the evaluator's built-ins.
var builtinSignatures = map[string][]string{
	"sin":   {"x"},
	"cos":   {"x"},
	"tan":   {"x"},
	"asin":  {"x"},
	"acos":  {"x"},
	"atan":  {"x"},
	"sqrt":  {"x"},
	"abs":   {"x"},
	"floor": {"x"},
	"ceil":  {"x"},
	"ln":    {"x"},
	"log":   {"x"},
	"exp":   {"x"},
	"pow":   {"base", "exponent"},
}

// Styles for parameter hints.
var (
	signatureStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	signatureNameStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("6")).
				Bold(true)
	currentParamStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("11")).
				Bold(true)
	signatureSeparatorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// functionCall represents a detected function call in the input.
type functionCall struct {
	name     string // called function name
	argIndex int    // current argument index (0-based)
	inCall   bool   // true if cursor is inside the argument list
}

// isNameRune reports whether the rune can appear in a function name.
func isNameRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

// detectFunctionCall analyzes the input to determine if the cursor is
// inside a function call's argument list. It returns the function name,
// current argument index, and whether we're inside a call.
func detectFunctionCall(input string, cursor int) functionCall {
	if cursor > len(input) {
		cursor = len(input)
	}

	// Scan backward from cursor to find the opening paren of a call.
	// Track nested parens so we find the correct one.
	parenDepth := 0
	openParenPos := -1

	for i := cursor - 1; i >= 0; i-- {
		ch, size := utf8.DecodeLastRuneInString(input[:i+1])

		switch ch {
		case ')':
			parenDepth++
		case '(':
			if parenDepth == 0 {
				openParenPos = i

				goto foundOpenParen
			}

			parenDepth--
		}

		// Move to start of this rune
		if i > 0 {
			i -= (size - 1)
		}
	}

foundOpenParen:
	if openParenPos == -1 {
		return functionCall{inCall: false}
	}

	// Extract the name immediately before the '('. A paren without a name
	// prefix is grouping, not a call.
	nameEnd := openParenPos
	nameStart := openParenPos

	for nameStart > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:nameStart])
		if !isNameRune(r) {
			break
		}

		nameStart -= size
	}

	funcName := input[nameStart:nameEnd]
	if funcName == "" {
		return functionCall{inCall: false}
	}

	// Count arguments by counting commas at depth 0 in the argument list.
	argIndex := 0
	depth := 0

	for i := openParenPos + 1; i < cursor; i++ {
		ch, size := utf8.DecodeRuneInString(input[i:])

		switch ch {
		case '(', '[':
			depth++
		case ')', ']':
			depth--
		case ',':
			if depth == 0 {
				argIndex++
			}
		}

		i += size - 1
	}

	return functionCall{
		name:     funcName,
		argIndex: argIndex,
		inCall:   true,
	}
}

// getSignature retrieves the signature for a function name. Session
// definitions shadow built-ins, same as call resolution; a shadowing
// non-function binding therefore hides any hint. Returns an empty
// signature when the name is not a known function.
func getSignature(
	env *lang.Environment,
	funcName string,
) (signature string, params []string) {
	if binding, ok := env.Lookup(funcName); ok {
		if !binding.IsFunc() {
			return "", nil
		}

		return formatSignature(funcName, binding.Fn.Params), binding.Fn.Params
	}

	if params, ok := builtinSignatures[funcName]; ok {
		return formatSignature(funcName, params), params
	}

	return "", nil
}

// formatSignature formats a function signature with parameter names.
func formatSignature(name string, params []string) string {
	return name + "(" + strings.Join(params, ", ") + ")"
}

// renderSignatureHint renders the function signature with the current
// parameter highlighted.
func renderSignatureHint(
	signature string,
	params []string,
	currentArgIdx int,
) string {
	if signature == "" {
		return ""
	}

	// Parse signature: "funcName(param1, param2, ...)"
	openParen := strings.Index(signature, "(")
	if openParen == -1 {
		return signatureStyle.Render(signature)
	}

	funcName := signature[:openParen]

	if len(params) == 0 {
		return signatureNameStyle.Render(funcName) +
			signatureStyle.Render("()")
	}

	var b strings.Builder

	b.WriteString(signatureNameStyle.Render(funcName))
	b.WriteString(signatureStyle.Render("("))

	for i, param := range params {
		if i > 0 {
			b.WriteString(signatureSeparatorStyle.Render(", "))
		}

		if currentArgIdx == i {
			b.WriteString(currentParamStyle.Render(param))
		} else {
			b.WriteString(signatureStyle.Render(param))
		}
	}

	b.WriteString(signatureStyle.Render(")"))

	return b.String()
}
