package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todolist/internal/config"
	"todolist/internal/exitcode"
	"todolist/internal/output"
	"todolist/internal/publish"
	"todolist/internal/service"
)

func init() {
	Register(&PushCmd{})
}

// PushCmd implements the push command.
type PushCmd struct {
	listName string
	create   bool

	// In replaces stdin (for testing).
	In io.Reader
}

// SetListName sets the list name (for testing).
func (c *PushCmd) SetListName(name string) {
	c.listName = name
}

// SetCreate sets the --create flag (for testing).
func (c *PushCmd) SetCreate(create bool) {
	c.create = create
}

func (c *PushCmd) Name() string      { return "push" }
func (c *PushCmd) Aliases() []string { return nil }
func (c *PushCmd) Synopsis() string  { return "Run a script and export the board to Google Tasks" }
func (c *PushCmd) Usage() string {
	return "todolist push [common flags] [--list <list-name>] [--create] [<script>|-]"
}
func (c *PushCmd) NeedsAuth() bool { return true }

func (c *PushCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.listName, "list", "", "")
	fs.StringVar(&c.listName, "l", "", "")
	fs.BoolVar(&c.create, "create", false, "")
}

func (c *PushCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	ctrl, code := runScript(cfg, c.In, args, out, errOut)
	if code != exitcode.Success {
		return code
	}

	// Flags win over config.toml
	target := publish.Target{
		List:   cfg.Settings.Push.List,
		Create: c.create || cfg.Settings.Push.CreateMissing,
	}
	if c.listName != "" {
		target.List = c.listName
	}

	res, err := publish.New(svc, cfg.Log()).Publish(ctx, ctrl, target)
	if err != nil {
		if res.Created > 0 {
			cfg.Log().Warn("push incomplete", "list", res.List.Title, "created", res.Created)
		}
		return reportError(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "pushed %d items (%d completed) to %s\n", res.Created, res.Completed, output.DisplayText(res.List.Title))
	}
	return exitcode.Success
}
