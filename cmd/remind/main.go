// Package main is the entry point for the remind CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"remind/internal/backend/googletasks"
	"remind/internal/cli"
	"remind/internal/commands"
	"remind/internal/config"
	"remind/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	factory := func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		return googletasks.New(ctx, cfg)
	}
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
