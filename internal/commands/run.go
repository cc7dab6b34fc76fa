package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"todolist/internal/config"
	"todolist/internal/exitcode"
	"todolist/internal/output"
	"todolist/internal/script"
	"todolist/internal/service"
	"todolist/internal/todo"
)

func init() {
	Register(&RunCmd{})
}

// RunCmd implements the run command.
type RunCmd struct {
	// In replaces stdin (for testing).
	In io.Reader
}

func (c *RunCmd) Name() string      { return "run" }
func (c *RunCmd) Aliases() []string { return []string{"exec"} }
func (c *RunCmd) Synopsis() string  { return "Run a script and print the board" }
func (c *RunCmd) Usage() string     { return "todolist run [common flags] [<script>|-]" }
func (c *RunCmd) NeedsAuth() bool   { return false }

func (c *RunCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RunCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	ctrl, code := runScript(cfg, c.In, args, out, errOut)
	if code != exitcode.Success {
		return code
	}

	if !cfg.Quiet {
		output.FormatBoard(out, ctrl)
	}
	return exitcode.Success
}

// runScript replays a script into a fresh controller.
// "show" lines write to out; failures are reported on errOut.
func runScript(cfg *config.Config, stdin io.Reader, args []string, out, errOut io.Writer) (*todo.Controller, int) {
	if len(args) > 1 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[1])
		return nil, exitcode.UserError
	}

	in, closeIn, err := openScript(args, stdin)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return nil, exitcode.UserError
	}
	defer closeIn()

	ctrl := todo.NewController()
	if err := script.NewRunner(ctrl, out, cfg.Log()).Run(in); err != nil {
		var lineErr *script.LineError
		if errors.As(err, &lineErr) {
			return nil, reportError(errOut, err)
		}
		fmt.Fprintf(errOut, "error: failed to read script: %v\n", err)
		return nil, exitcode.UserError
	}

	inc, comp := ctrl.Len()
	cfg.Log().Debug("script finished", "incomplete", inc, "complete", comp)
	return ctrl, exitcode.Success
}

// openScript opens the script named by args. No argument or "-" means stdin.
func openScript(args []string, stdin io.Reader) (io.Reader, func(), error) {
	if stdin == nil {
		stdin = os.Stdin
	}
	if len(args) == 0 || args[0] == "-" {
		return stdin, func() {}, nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open script: %w", err)
	}
	return f, func() { f.Close() }, nil
}
