package repl

import (
	"bytes"
	"context"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/arith/lang"
	"github.com/ardnew/arith/lang/ast"
)

// ctrlCommands are the available control-mode commands.
var ctrlCommands = []string{"help", "list", "edit", "clear", "quit"}

// keywords are the language keywords offered as completions.
var keywords = []string{"from", "to", "as", "with", "step", "for", "in"}

// previewWidth caps the rendered length of binding previews.
const previewWidth = 40

// isWordBoundary reports whether the rune delimits a word for completion
// purposes. Identifiers contain only letters, digits, and underscores, so
// every operator and bracket is a boundary; in particular '-' is the minus
// operator, never part of a name.
func isWordBoundary(r rune) bool {
	switch r {
	case ' ', '\t', '.', '#',
		'(', ')', '[', ']', '{', '}',
		'+', '-', '*', '/',
		'=', ',':
		return true
	}

	return false
}

// wordBounds returns the word at the cursor position and its byte
// boundaries within input. The word is empty when the cursor sits on a
// boundary (after a space, an operator, start of line).
func wordBounds(input string, cursor int) (word string, start, end int) {
	if cursor > len(input) {
		cursor = len(input)
	}

	// Walk backward from cursor to find word start.
	start = cursor

	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:start])
		if isWordBoundary(r) {
			break
		}

		start -= size
	}

	// Walk forward from cursor to find word end.
	end = cursor

	for end < len(input) {
		r, size := utf8.DecodeRuneInString(input[end:])
		if isWordBoundary(r) {
			break
		}

		end += size
	}

	word = input[start:end]

	return word, start, end
}

// completionCandidates returns every completable name: language keywords,
// built-in functions and constants, and the session's bindings. Names
// already listed once are not repeated when a binding shadows a built-in.
func completionCandidates(env *lang.Environment) []string {
	seen := make(map[string]struct{})

	var names []string

	add := func(list []string) {
		for _, name := range list {
			if _, dup := seen[name]; dup {
				continue
			}

			seen[name] = struct{}{}
			names = append(names, name)
		}
	}

	add(keywords)
	add(lang.BuiltinNames())
	add(env.Names())

	return names
}

// computeMatches calculates the fuzzy match results for the word at the
// cursor. It returns the matches (ranked best-first), the candidate list,
// and the word boundaries. An empty word yields no matches so the hint
// line stays visible.
func (m model) computeMatches() (
	matches fuzzy.Matches,
	candidates []string,
	wordStart, wordEnd int,
) {
	input := m.input.Value()
	cursor := m.input.Position()

	word, ws, we := wordBounds(input, cursor)
	wordStart, wordEnd = ws, we

	if m.mode == modeCtrl {
		candidates = ctrlCommands
	} else {
		candidates = completionCandidates(m.env)
	}

	if word == "" || len(candidates) == 0 {
		return nil, nil, wordStart, wordEnd
	}

	matches = fuzzy.Find(word, candidates)

	return matches, candidates, wordStart, wordEnd
}

// isCallable reports whether name would accept a call's argument list:
// either a session-defined function or, when unshadowed, a built-in.
func (m model) isCallable(name string) bool {
	if binding, ok := m.env.Lookup(name); ok {
		return binding.IsFunc()
	}

	_, ok := lang.BuiltinArity(name)

	return ok
}

// renderCandidateBar builds the single-line completion bar, ellipsized to
// fit within the given terminal width. Each candidate is rendered with its
// matched characters highlighted. The selected candidate (when tabbing)
// uses the selected style.
func renderCandidateBar(
	matches fuzzy.Matches,
	suggIdx int,
	tabActive bool,
	width int,
	callable func(string) bool,
) string {
	if len(matches) == 0 || width <= 0 {
		return ""
	}

	const sep = "  "

	sepWidth := lipgloss.Width(sep)
	ellipsis := hintStyle.Render("...")
	ellipsisWidth := lipgloss.Width(ellipsis)

	var b strings.Builder

	used := 0

	for i, match := range matches {
		selected := tabActive && i == suggIdx
		rendered := renderCandidate(match, selected, callable(match.Str))
		candidateWidth := lipgloss.Width(rendered)

		entryWidth := candidateWidth
		if i > 0 {
			entryWidth += sepWidth
		}

		// Check if adding this candidate would exceed width.
		if used+entryWidth+ellipsisWidth > width && i > 0 {
			b.WriteString(sep)
			b.WriteString(ellipsis)

			break
		}

		if i > 0 {
			b.WriteString(sep)
		}

		b.WriteString(rendered)

		used += entryWidth

		// If this is the last candidate, no need to reserve ellipsis space.
		if i == len(matches)-1 {
			break
		}
	}

	return b.String()
}

// renderCandidate renders a single candidate with matched characters
// highlighted. Callables are displayed with a "()" suffix.
func renderCandidate(match fuzzy.Match, selected, callable bool) string {
	baseStyle := suggestionStyle
	highlightStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("4")).
		Bold(true)

	if selected {
		baseStyle = selectedStyle
		highlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4")).
			Bold(true)
	}

	matchSet := make(map[int]bool, len(match.MatchedIndexes))
	for _, idx := range match.MatchedIndexes {
		matchSet[idx] = true
	}

	var b strings.Builder

	for i, r := range match.Str {
		ch := string(r)
		if matchSet[i] {
			b.WriteString(highlightStyle.Render(ch))
		} else {
			b.WriteString(baseStyle.Render(ch))
		}
	}

	// The suffix is display-only, never inserted by completion.
	if callable {
		b.WriteString(baseStyle.Render("()"))
	}

	return b.String()
}

// formatPreview generates a one-line preview of a binding: the value for
// variables, the parameter list and body for functions.
func formatPreview(binding lang.Binding) string {
	if !binding.IsFunc() {
		return truncatePreview(binding.Value.String())
	}

	body := formatBodyPreview(binding.Fn.Body)

	return "(" + strings.Join(binding.Fn.Params, ", ") + ") -> " +
		truncatePreview(body)
}

// formatBodyPreview renders a function body as source text.
func formatBodyPreview(body ast.Expr) string {
	b := ast.NewBuilder()
	prog := b.Program(b.Expr(body))

	var buf bytes.Buffer
	if err := prog.Format(context.Background(), &buf, ast.DefaultIndent); err != nil {
		return "<unprintable>"
	}

	return strings.TrimSpace(buf.String())
}

func truncatePreview(s string) string {
	if len(s) > previewWidth {
		return s[:previewWidth-3] + "..."
	}

	return s
}
