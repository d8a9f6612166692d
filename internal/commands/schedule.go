package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math"

	"remind/internal/config"
	"remind/internal/exitcode"
	"remind/internal/output"
	"remind/internal/schedule"
	"remind/internal/service"
)

func init() {
	Register(&ScheduleCmd{})
}

// ScheduleCmd prints every alert inside a window.
type ScheduleCmd struct {
	from  int
	to    int
	limit int
}

// SetWindow sets the window bounds (for testing).
func (c *ScheduleCmd) SetWindow(from, to int) {
	c.from, c.to = from, to
}

// SetLimit sets the alert cap (for testing).
func (c *ScheduleCmd) SetLimit(limit int) {
	c.limit = limit
}

func (c *ScheduleCmd) Name() string      { return "schedule" }
func (c *ScheduleCmd) Aliases() []string { return nil }
func (c *ScheduleCmd) Synopsis() string  { return "Print alerts after --from up to --to" }
func (c *ScheduleCmd) Usage() string     { return "remind schedule [--from <time>] [--to <time>] [--limit <n>]" }
func (c *ScheduleCmd) NeedsAuth() bool   { return false }

func (c *ScheduleCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.from, "from", 0, "")
	fs.IntVar(&c.to, "to", math.MaxInt, "")
	fs.IntVar(&c.limit, "limit", schedule.DefaultLimit, "")
}

func (c *ScheduleCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}
	if c.to <= c.from {
		fmt.Fprintf(errOut, "error: empty window: --to %d must be greater than --from %d\n", c.to, c.from)
		return exitcode.UserError
	}

	list, code := loadTasks(cfg, errOut)
	if code != exitcode.Success {
		return code
	}

	limit := alertLimit(c.limit)
	alerts, more := schedule.Upcoming(list, c.from, c.to, limit)
	if len(alerts) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no alerts in window")
		}
		return exitcode.Success
	}
	for _, a := range alerts {
		output.FormatAlert(out, a)
	}
	if more {
		fmt.Fprintf(errOut, "warning: showing the first %d alerts (raise --limit or narrow the window)\n", limit)
	}
	return exitcode.Success
}
