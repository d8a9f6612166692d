package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"remind/internal/config"
	"remind/internal/exitcode"
	"remind/internal/schedule"
	"remind/internal/service"
)

func init() {
	Register(&PushCmd{})
}

// PushCmd exports the alerts of a window to Google Tasks, one remote task
// per alert.
type PushCmd struct {
	listName string
	after    int
	until    int
	limit    int
}

// SetListName sets the list name (for testing).
func (c *PushCmd) SetListName(name string) {
	c.listName = name
}

// SetWindow sets the window bounds (for testing).
func (c *PushCmd) SetWindow(after, until int) {
	c.after, c.until = after, until
}

// SetLimit sets the most alerts one push may create (for testing).
func (c *PushCmd) SetLimit(limit int) {
	c.limit = limit
}

func (c *PushCmd) Name() string      { return "push" }
func (c *PushCmd) Aliases() []string { return nil }
func (c *PushCmd) Synopsis() string  { return "Export alerts to Google Tasks" }
func (c *PushCmd) Usage() string {
	return "remind push [--list <list-name>] [--after <time>] [--until <time>] [--limit <n>]"
}
func (c *PushCmd) NeedsAuth() bool { return true }

func (c *PushCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.listName, "list", "", "")
	fs.StringVar(&c.listName, "l", "", "")
	fs.IntVar(&c.after, "after", 0, "")
	fs.IntVar(&c.until, "until", math.MaxInt, "")
	fs.IntVar(&c.limit, "limit", schedule.DefaultLimit, "")
}

func (c *PushCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}
	if c.until <= c.after {
		fmt.Fprintf(errOut, "error: empty window: --until %d must be greater than --after %d\n", c.until, c.after)
		return exitcode.UserError
	}

	tasks, code := loadTasks(cfg, errOut)
	if code != exitcode.Success {
		return code
	}
	limit := alertLimit(c.limit)
	alerts, more := schedule.Upcoming(tasks, c.after, c.until, limit)
	if more {
		fmt.Fprintf(errOut, "error: window holds more than %d alerts (raise --limit or narrow the window)\n", limit)
		return exitcode.UserError
	}
	if len(alerts) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "nothing to push")
		}
		return exitcode.Success
	}

	listName := c.listName
	if listName == "" {
		listName = cfg.ExportList()
	}
	list, code := resolveExportList(ctx, svc, listName, errOut)
	if code != exitcode.Success {
		return code
	}

	batch := uuid.New()
	log := cfg.Logger(errOut)
	log.Debug("pushing alerts", "list", list.ID, "alerts", len(alerts), "batch", batch)

	for i, a := range alerts {
		remote := exportTask(a, batch)
		if err := svc.CreateTask(ctx, list.ID, remote); err != nil {
			fmt.Fprintf(errOut, "error: backend error after %d of %d alerts: %v\n", i, len(alerts), err)
			return exitcode.BackendError
		}
		log.Debug("pushed alert", "at", a.At, "title", remote.Title)
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "pushed %d alerts to %s\n", len(alerts), list.Title)
	}
	return exitcode.Success
}

// exportTask describes one alert as a remote task due at the alert's Unix
// moment.
func exportTask(a schedule.Alert, batch uuid.UUID) service.Task {
	return service.Task{
		Title: a.Task.Title(),
		Notes: fmt.Sprintf("%s\nremind batch %s", a.Task, batch),
		Due:   time.Unix(int64(a.At), 0).UTC(),
	}
}

// resolveExportList finds the named list, or the default list for "".
func resolveExportList(ctx context.Context, svc service.Service, name string, errOut io.Writer) (service.List, int) {
	if name == "" {
		list, err := svc.DefaultList(ctx)
		if err != nil {
			fmt.Fprintf(errOut, "error: backend error: %v\n", err)
			return service.List{}, exitcode.BackendError
		}
		return list, exitcode.Success
	}

	list, err := svc.ResolveList(ctx, name)
	if err != nil {
		switch {
		case strings.Contains(err.Error(), "not found"):
			fmt.Fprintf(errOut, "error: list not found: %s\n", name)
			return service.List{}, exitcode.UserError
		case strings.Contains(err.Error(), "ambiguous"):
			fmt.Fprintf(errOut, "error: ambiguous list name: %s\n", name)
			return service.List{}, exitcode.UserError
		}
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return service.List{}, exitcode.BackendError
	}
	return list, exitcode.Success
}
