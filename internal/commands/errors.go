package commands

import (
	"errors"
	"fmt"
	"io"

	"todolist/internal/exitcode"
	"todolist/internal/script"
	"todolist/internal/service"
	"todolist/internal/todo"
)

// reportError prints err in the "error: ..." form and returns its exit code.
// Item, script and list-name problems are user errors; anything else came
// from the backend.
func reportError(errOut io.Writer, err error) int {
	var invalid *todo.InvalidIDError
	switch {
	case errors.Is(err, todo.ErrNotFound),
		errors.As(err, &invalid),
		errors.Is(err, script.ErrUsage),
		errors.Is(err, service.ErrListNotFound),
		errors.Is(err, service.ErrAmbiguousList):
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	default:
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}
}
