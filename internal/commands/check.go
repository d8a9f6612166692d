package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"

	"remind/internal/config"
	"remind/internal/exitcode"
	"remind/internal/service"
	"remind/internal/taskfile"
)

func init() {
	Register(&CheckCmd{})
}

// CheckCmd validates the task file and reports every rejected entry.
type CheckCmd struct{}

func (c *CheckCmd) Name() string      { return "check" }
func (c *CheckCmd) Aliases() []string { return nil }
func (c *CheckCmd) Synopsis() string  { return "Validate the task file" }
func (c *CheckCmd) Usage() string     { return "remind check" }
func (c *CheckCmd) NeedsAuth() bool   { return false }

func (c *CheckCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *CheckCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	path := cfg.TasksPath()
	file, err := taskfile.Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(errOut, "error: task file not found: %s\n", path)
		} else {
			fmt.Fprintf(errOut, "error: %v\n", err)
		}
		return exitcode.UserError
	}

	list, err := file.Build(nil)
	if list == nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	rejected := unjoin(err)
	for _, e := range rejected {
		fmt.Fprintf(errOut, "error: %v\n", e)
	}
	if len(rejected) > 0 {
		return exitcode.UserError
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "ok: %d tasks\n", list.Size())
	}
	return exitcode.Success
}
