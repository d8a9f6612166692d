// Package cli parses the remind command line and dispatches to commands.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"remind/internal/commands"
	"remind/internal/config"
	"remind/internal/exitcode"
	"remind/internal/service"
)

// defaultCommand runs when remind is invoked without arguments.
const defaultCommand = "show"

// ServiceFactory creates a Service from config.
// It is only called for commands that need auth.
type ServiceFactory func(ctx context.Context, cfg *config.Config) (service.Service, error)

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  ServiceFactory
}

// NewDispatcher creates a new dispatcher with the given registry and service factory.
func NewDispatcher(registry *commands.Registry, factory ServiceFactory) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		factory:  factory,
	}
}

// commonFlags are accepted by every command.
type commonFlags struct {
	configDir string
	file      string
	quiet     bool
	debug     bool
}

func (f *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.configDir, "config", "", "")
	fs.StringVar(&f.file, "file", "", "")
	fs.BoolVar(&f.quiet, "quiet", false, "")
	fs.BoolVar(&f.debug, "debug", false, "")
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	name := defaultCommand
	if len(args) > 0 {
		name, args = args[0], args[1:]
	}

	// Flags require a command.
	if strings.HasPrefix(name, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", name)
		return exitcode.UserError
	}

	cmd, ok := d.registry.Find(name)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", name)
		return exitcode.UserError
	}
	return d.dispatch(ctx, cmd, args, out, errOut)
}

func (d *Dispatcher) dispatch(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var common commonFlags
	common.register(fs)
	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(errOut, "error: %s\n", flagError(err))
		return exitcode.UserError
	}

	// A leading "-" left over means the flag came after a positional arg.
	positional := fs.Args()
	if len(positional) > 0 && strings.HasPrefix(positional[0], "-") {
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", positional[0])
		return exitcode.UserError
	}

	cfg, err := config.New(common.configDir)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}
	cfg.File = common.file
	cfg.Quiet = common.quiet
	cfg.Debug = common.debug

	var svc service.Service
	if cmd.NeedsAuth() {
		var code int
		if svc, code = d.service(ctx, cfg, errOut); code != exitcode.Success {
			return code
		}
	}

	cfg.Logger(errOut).Debug("dispatch", "command", cmd.Name(), "config", cfg.Dir, "args", positional)
	return cmd.Run(ctx, cfg, svc, positional, out, errOut)
}

// service builds the backend for commands that need auth. Without a factory
// it only runs the credential pre-flight checks and returns a nil Service.
func (d *Dispatcher) service(ctx context.Context, cfg *config.Config, errOut io.Writer) (service.Service, int) {
	if d.factory == nil {
		if !cfg.HasOAuthClient() {
			fmt.Fprintf(errOut, "error: oauth_client.json not found in %s\n", cfg.Dir)
			return nil, exitcode.AuthError
		}
		if !cfg.HasToken() {
			fmt.Fprintln(errOut, "error: not logged in (run: remind login)")
			return nil, exitcode.AuthError
		}
		return nil, exitcode.Success
	}

	svc, err := d.factory(ctx, cfg)
	if err != nil {
		msg := err.Error()
		if strings.Contains(msg, "token") || strings.Contains(msg, "oauth") || strings.Contains(msg, "auth") {
			fmt.Fprintf(errOut, "error: auth error: %s\n", msg)
			return nil, exitcode.AuthError
		}
		fmt.Fprintf(errOut, "error: backend error: %s\n", msg)
		return nil, exitcode.BackendError
	}
	return svc, exitcode.Success
}

// flagError rewrites flag package errors into remind's wording.
func flagError(err error) string {
	msg := err.Error()
	switch {
	case strings.HasPrefix(msg, "flag needs an argument: "):
		return msg
	case strings.HasPrefix(msg, "flag provided but not defined: "):
		return "unknown flag: " + strings.TrimPrefix(msg, "flag provided but not defined: ")
	}
	return msg
}
