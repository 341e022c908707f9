// Package cli parses the command line and dispatches to commands.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"focustasks/internal/commands"
	"focustasks/internal/config"
	"focustasks/internal/exitcode"
	"focustasks/internal/service"
)

// ServiceFactory opens the task service for a resolved config.
// Used to inject the storage backend during dispatch.
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

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		return d.dispatch(ctx, "list", nil, out, errOut)
	}

	// Flags require a command.
	if strings.HasPrefix(args[0], "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", args[0])
		return exitcode.UserError
	}

	return d.dispatch(ctx, args[0], args[1:], out, errOut)
}

func (d *Dispatcher) dispatch(ctx context.Context, cmdName string, args []string, out, errOut io.Writer) int {
	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}
	return d.dispatchCommand(ctx, cmd, args, out, errOut)
}

// commonFlags are accepted by every command.
type commonFlags struct {
	configDir string
	quiet     bool
	debug     bool
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.configDir, "config", "", "")
	fs.BoolVar(&c.quiet, "quiet", false, "")
	fs.BoolVar(&c.debug, "debug", false, "")
}

func (c *commonFlags) resolve() (*config.Config, error) {
	cfg, err := config.New(c.configDir)
	if err != nil {
		return nil, err
	}
	cfg.Quiet = c.quiet
	cfg.Debug = c.debug
	return cfg, nil
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var common commonFlags
	common.register(fs)
	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(errOut, "error: %s\n", flagErrorMessage(err))
		return exitcode.UserError
	}

	// A leading "-" left over means a flag after "--" or a bare "-".
	positional := fs.Args()
	if len(positional) > 0 && strings.HasPrefix(positional[0], "-") {
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", positional[0])
		return exitcode.UserError
	}

	cfg, err := common.resolve()
	if err != nil {
		fmt.Fprintf(errOut, "error: config error: %s\n", err)
		return exitcode.UserError
	}

	if !cmd.NeedsStore() {
		return cmd.Run(ctx, cfg, nil, positional, out, errOut)
	}

	svc, code := d.openService(ctx, cfg, errOut)
	if svc == nil {
		return code
	}
	defer svc.Close()

	return cmd.Run(ctx, cfg, svc, positional, out, errOut)
}

func (d *Dispatcher) openService(ctx context.Context, cfg *config.Config, errOut io.Writer) (service.Service, int) {
	if d.factory == nil {
		fmt.Fprintln(errOut, "error: storage error: no storage configured")
		return nil, exitcode.StorageError
	}
	svc, err := d.factory(ctx, cfg)
	if err != nil {
		fmt.Fprintf(errOut, "error: storage error: %s\n", err)
		return nil, exitcode.StorageError
	}
	return svc, exitcode.Success
}

// flagErrorMessage rewrites flag package errors into the CLI's wording.
func flagErrorMessage(err error) string {
	msg := err.Error()
	if rest, ok := strings.CutPrefix(msg, "flag needs an argument:"); ok {
		return "flag needs an argument: " + strings.TrimSpace(rest)
	}
	if rest, ok := strings.CutPrefix(msg, "flag provided but not defined:"); ok {
		return "unknown flag: " + strings.TrimSpace(rest)
	}
	return msg
}
