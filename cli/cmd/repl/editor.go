package repl

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/ardnew/arith/lang"
	"github.com/ardnew/arith/log"
)

const defaultEditor = "vi"

// editCommand implements [tea.ExecCommand] for the scratch-buffer
// edit-evaluate-retry loop. It opens the user's editor on an empty buffer,
// then evaluates the result into the session environment. On failure the
// user is prompted to re-edit the same buffer; declining abandons it.
type editCommand struct {
	env     *lang.Environment
	ctxFunc func() context.Context
	logger  log.Logger
	output  string
	applied bool
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
}

// SetStdin sets the stdin reader for the command.
func (c *editCommand) SetStdin(r io.Reader) { c.stdin = r }

// SetStdout sets the stdout writer for the command.
func (c *editCommand) SetStdout(w io.Writer) { c.stdout = w }

// SetStderr sets the stderr writer for the command.
func (c *editCommand) SetStderr(w io.Writer) { c.stderr = w }

// Run executes the edit-evaluate-retry loop. An empty buffer cancels the
// edit. A buffer that fails to parse or evaluate is offered again; if the
// user declines, Run returns [ErrEditDeclined]. Statements that evaluated
// before a failure keep their bindings, exactly as at the prompt.
func (c *editCommand) Run() error {
	ctx := c.ctxFunc()

	f, err := os.CreateTemp(os.TempDir(), "arith-repl-*.ar")
	if err != nil {
		return err
	}

	tmpPath := f.Name()

	defer os.Remove(tmpPath)

	if err := f.Chmod(0o600); err != nil {
		f.Close()

		return err
	}

	f.Close()

	content := ""

	for {
		if err := os.WriteFile(tmpPath, []byte(content), 0o600); err != nil {
			return err
		}

		if err := runEditor(ctx, c.stdin, c.stdout, c.stderr, tmpPath); err != nil {
			return err
		}

		data, err := os.ReadFile(tmpPath)
		if err != nil {
			return err
		}

		// An emptied buffer cancels the edit.
		if strings.TrimSpace(string(data)) == "" {
			return nil
		}

		var out bytes.Buffer

		evalErr := lang.EvalString(ctx, string(data), c.env,
			lang.WithOutput(&out),
			lang.WithLogger(c.logger),
		)
		c.logger.TraceContext(
			ctx,
			"editor buffer evaluated",
			slog.Int("content_length", len(data)),
			slog.Bool("success", evalErr == nil),
		)

		if evalErr == nil {
			c.output = strings.TrimRight(out.String(), "\n")
			c.applied = true

			return nil
		}

		fmt.Fprintf(c.stderr, "\nError: %s\n", evalErr)
		fmt.Fprint(c.stdout, "Re-edit? [Y/n] ")

		scanner := bufio.NewScanner(c.stdin)
		if !scanner.Scan() {
			return ErrEditDeclined
		}

		response := strings.TrimSpace(strings.ToLower(scanner.Text()))
		if response == "n" || response == "no" {
			return ErrEditDeclined
		}

		content = string(data)
	}
}

// runEditor launches the user's editor on the given file path and waits
// for it to exit.
func runEditor(
	ctx context.Context,
	stdin io.Reader,
	stdout io.Writer,
	stderr io.Writer,
	path string,
) error {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = defaultEditor
	}

	cmd := exec.CommandContext(ctx, editor, path)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	return cmd.Run()
}
