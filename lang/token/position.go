package token

import (
	"strconv"
	"strings"
)

// Position locates a token within its source input.
type Position struct {
	Offset int // rune offset from the start of input
	Line   int // 1-based line number
	Column int // 1-based column number, counted in runes
}

// IsValid reports whether the position has been set.
func (p Position) IsValid() bool { return p.Line > 0 }

// String renders the position in the "line N, column M" form used by
// diagnostics.
func (p Position) String() string {
	return "line " + strconv.Itoa(p.Line) + ", column " + strconv.Itoa(p.Column)
}

// Snippet renders the source line containing pos with a caret marking its
// column, for inclusion beneath an error message:
//
//	  3 | x = 1 +
//	            ^
//
// It returns the empty string when pos does not fall within source.
func Snippet(source string, pos Position) string {
	if source == "" || pos.Line <= 0 {
		return ""
	}

	lines := strings.Split(source, "\n")
	if pos.Line > len(lines) {
		return ""
	}

	num := strconv.Itoa(pos.Line)

	var b strings.Builder

	b.WriteString("  ")
	b.WriteString(num)
	b.WriteString(" | ")
	b.WriteString(lines[pos.Line-1])
	b.WriteRune('\n')

	// +5 accounts for: 2 leading spaces + " | " (3 chars)
	pad := len(num) + 5
	if pos.Column > 0 {
		pad += pos.Column - 1
	}

	b.WriteString(strings.Repeat(" ", pad))
	b.WriteString("^\n")

	return b.String()
}
