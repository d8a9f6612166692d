package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"remind/internal/config"
	"remind/internal/exitcode"
	"remind/internal/service"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "remind help" }
func (c *HelpCmd) NeedsAuth() bool   { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintln(out, strings.Join(DefaultRegistry.Usage(), "\n"))
	fmt.Fprint(out, helpFooter)
	return exitcode.Success
}

const helpFooter = `
Running remind with no command runs show.

Common flags:
  --config <dir>   Override config directory
  --file <path>    Task file (default: $REMIND_TASKS or <config>/tasks.yaml)
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
