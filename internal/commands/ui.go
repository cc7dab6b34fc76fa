package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"todolist/internal/config"
	"todolist/internal/exitcode"
	"todolist/internal/service"
	"todolist/internal/todo"
	"todolist/internal/tui"
)

func init() {
	Register(&UICmd{})
}

// UICmd implements the interactive ui command.
// Running todolist with no arguments dispatches here.
type UICmd struct{}

func (c *UICmd) Name() string      { return "ui" }
func (c *UICmd) Aliases() []string { return nil }
func (c *UICmd) Synopsis() string  { return "Start the interactive list" }
func (c *UICmd) Usage() string     { return "todolist ui [common flags]" }
func (c *UICmd) NeedsAuth() bool   { return false }

func (c *UICmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *UICmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	opts := tui.Options{Title: cfg.Settings.UI.Title, Logger: cfg.Log()}
	if err := tui.Run(ctx, todo.NewController(), opts, os.Stdin, out); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	return exitcode.Success
}
