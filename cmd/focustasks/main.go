// Package main is the entry point for the focustasks CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"focustasks/internal/cli"
	"focustasks/internal/commands"
	"focustasks/internal/config"
	"focustasks/internal/service"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Open the configured slot and restore the list
	factory := func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		svc, err := service.Open(cfg, cli.NewLogger(cfg, os.Stderr))
		if err != nil {
			return nil, err
		}
		return svc, nil
	}

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	// Run and exit with code
	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}
