package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"remind/internal/config"
	"remind/internal/exitcode"
	"remind/internal/output"
	"remind/internal/service"
	"remind/internal/tasklist"
)

func init() {
	Register(&ShowCmd{})
}

// ShowCmd prints every task in the task file.
type ShowCmd struct{}

func (c *ShowCmd) Name() string      { return "show" }
func (c *ShowCmd) Aliases() []string { return []string{"ls"} }
func (c *ShowCmd) Synopsis() string  { return "Print all tasks" }
func (c *ShowCmd) Usage() string     { return "remind show" }
func (c *ShowCmd) NeedsAuth() bool   { return false }

func (c *ShowCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ShowCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	list, code := loadTasks(cfg, errOut)
	if code != exitcode.Success {
		return code
	}

	if list.Size() == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no tasks found")
		}
		return exitcode.Success
	}
	for i, t := range tasklist.All(list) {
		output.FormatTask(out, i+1, t)
	}
	return exitcode.Success
}
