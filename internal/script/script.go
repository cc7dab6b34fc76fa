// Package script drives a todo.Controller from line-oriented commands.
//
// Each non-blank line is one command:
//
//	add <text>                 add an item; text is taken verbatim
//	complete <id> | done <id>  move an item to the complete list
//	return <id>   | undo <id>  move a completed item back
//	delete <id>   | rm <id>    delete an incomplete item
//	show          | list       print the board
//
// Lines starting with # are comments.
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"todolist/internal/output"
	"todolist/internal/todo"
)

// ErrUsage marks malformed lines: unknown commands or missing arguments.
var ErrUsage = errors.New("usage")

// LineError wraps the failure of a single line.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// Runner executes commands against a controller.
type Runner struct {
	ctrl *todo.Controller
	out  io.Writer
	log  *log.Logger
}

// NewRunner returns a Runner writing "show" output to out.
// A nil logger discards output.
func NewRunner(ctrl *todo.Controller, out io.Writer, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
	}
	return &Runner{ctrl: ctrl, out: out, log: logger}
}

// Run executes every line of r and stops at the first failing one.
// The returned error is a *LineError.
func (r *Runner) Run(in io.Reader) error {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	n := 0
	for sc.Scan() {
		n++
		if err := r.Exec(sc.Text()); err != nil {
			return &LineError{Line: n, Err: err}
		}
	}
	return sc.Err()
}

// Exec executes a single line.
func (r *Runner) Exec(line string) error {
	line = strings.TrimSuffix(line, "\r")
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil
	}

	name, rest := splitCommand(line)
	switch name {
	case "add":
		id := r.ctrl.Add(rest)
		r.log.Debug("item added", "id", id)
		return nil
	case "complete", "done":
		return r.withID(name, rest, r.ctrl.Complete)
	case "return", "undo":
		return r.withID(name, rest, r.ctrl.Return)
	case "delete", "rm":
		return r.withID(name, rest, r.ctrl.Delete)
	case "show", "list":
		output.FormatBoard(r.out, r.ctrl)
		return nil
	default:
		return fmt.Errorf("%w: unknown command: %s", ErrUsage, name)
	}
}

func (r *Runner) withID(name, arg string, op func(todo.ItemID) error) error {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return fmt.Errorf("%w: %s requires an item id", ErrUsage, name)
	}
	id, err := todo.ParseItemID(arg)
	if err != nil {
		return err
	}
	if err := op(id); err != nil {
		return err
	}
	r.log.Debug("item "+name, "id", id)
	return nil
}

// splitCommand splits off the leading command word. Text after the single
// separating space is returned untouched so "add" keeps it verbatim.
func splitCommand(line string) (name, rest string) {
	line = strings.TrimLeft(line, " \t")
	i := strings.IndexAny(line, " \t")
	if i < 0 {
		return strings.ToLower(line), ""
	}
	return strings.ToLower(line[:i]), line[i+1:]
}
