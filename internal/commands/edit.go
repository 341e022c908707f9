package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"focustasks/internal/config"
	"focustasks/internal/exitcode"
	"focustasks/internal/service"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd implements the edit command: enter edit mode and commit in one step.
// A blank title is stored as the placeholder. Duplicate titles are allowed.
type EditCmd struct{}

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return []string{"rename"} }
func (c *EditCmd) Synopsis() string  { return "Rename a task" }
func (c *EditCmd) Usage() string     { return "focustasks edit <n> <title...>" }
func (c *EditCmd) NeedsStore() bool  { return true }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	num, err := ParseTaskRef(args)
	if err != nil {
		reportRefError(errOut, err)
		return exitcode.UserError
	}
	if len(args) < 2 {
		fmt.Fprintln(errOut, "error: title required")
		return exitcode.UserError
	}

	t, err := findTaskByNumber(svc, num)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	svc.BeginEdit(t.ID)
	if _, ok := svc.CommitEdit(t.ID, strings.Join(args[1:], " ")); !ok {
		fmt.Fprintf(errOut, "error: %v\n", errOutOfRange(num))
		return exitcode.UserError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
