package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"todolist/internal/config"
	"todolist/internal/exitcode"
	"todolist/internal/output"
	"todolist/internal/service"
)

func init() {
	Register(&ListsCmd{})
}

// ListsCmd prints the Google Tasks lists that push can target.
type ListsCmd struct{}

func (c *ListsCmd) Name() string      { return "lists" }
func (c *ListsCmd) Aliases() []string { return nil }
func (c *ListsCmd) Synopsis() string  { return "Print Google Tasks lists" }
func (c *ListsCmd) Usage() string     { return "todolist lists [common flags]" }
func (c *ListsCmd) NeedsAuth() bool   { return true }

func (c *ListsCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ListsCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	lists, err := svc.ListLists(ctx)
	if err != nil {
		return reportError(errOut, err)
	}

	target := cfg.Settings.Push.List
	for _, list := range lists {
		title := output.DisplayText(list.Title)
		if list.IsDefault {
			title += " [default]"
		}
		if target != "" && strings.EqualFold(strings.TrimSpace(list.Title), strings.TrimSpace(target)) {
			title += " [push]"
		}
		fmt.Fprintln(out, title)
	}

	return exitcode.Success
}
