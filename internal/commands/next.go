package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"remind/internal/config"
	"remind/internal/exitcode"
	"remind/internal/output"
	"remind/internal/schedule"
	"remind/internal/service"
	"remind/internal/task"
)

func init() {
	Register(&NextCmd{})
}

// NextCmd prints the first alert moment after a given time.
type NextCmd struct {
	after string
}

// SetAfter sets the query moment as if --after were given (for testing).
func (c *NextCmd) SetAfter(after string) {
	c.after = after
}

func (c *NextCmd) Name() string      { return "next" }
func (c *NextCmd) Aliases() []string { return nil }
func (c *NextCmd) Synopsis() string  { return "Print the next alert after a moment (default 0)" }
func (c *NextCmd) Usage() string     { return "remind next [<time> | --after <time>]" }
func (c *NextCmd) NeedsAuth() bool   { return false }

// RegisterFlags adds --after, which also takes negative moments that would
// otherwise parse as flags.
func (c *NextCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.after, "after", "", "")
}

func (c *NextCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	moment := c.after
	switch {
	case len(args) > 1:
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[1])
		return exitcode.UserError
	case len(args) == 1 && moment != "":
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	case len(args) == 1:
		moment = args[0]
	}

	after := 0
	if moment != "" {
		var err error
		if after, err = parseMoment(moment); err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
	}

	list, code := loadTasks(cfg, errOut)
	if code != exitcode.Success {
		return code
	}

	at, due := schedule.Next(list, after)
	if at == task.NoTime {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no upcoming alerts")
		}
		return exitcode.Success
	}
	output.FormatNext(out, at, due)
	return exitcode.Success
}
