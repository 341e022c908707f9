package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"focustasks/internal/config"
	"focustasks/internal/exitcode"
	"focustasks/internal/service"
	"focustasks/internal/task"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Create a task at the top of the list" }
func (c *AddCmd) Usage() string     { return "focustasks add <title...>" }
func (c *AddCmd) NeedsStore() bool  { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: title required")
		return exitcode.UserError
	}

	// Join args to form title
	title := strings.Join(args, " ")

	_, err := svc.Add(title)
	if err != nil {
		var dup *task.DuplicateTitleError
		switch {
		case errors.Is(err, task.ErrEmptyTitle):
			fmt.Fprintln(errOut, "error: title required")
		case errors.As(err, &dup):
			fmt.Fprintf(errOut, "error: task already exists: %s\n", dup.Existing.Title)
		default:
			fmt.Fprintf(errOut, "error: %v\n", err)
		}
		return exitcode.UserError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
