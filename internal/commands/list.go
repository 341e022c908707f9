package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"focustasks/internal/config"
	"focustasks/internal/exitcode"
	"focustasks/internal/output"
	"focustasks/internal/service"
	"focustasks/internal/task"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `focustasks` (no args) and `focustasks list`.
type ListCmd struct {
	openOnly bool
	doneOnly bool
}

// SetFilter sets the open/done filters (for testing).
func (c *ListCmd) SetFilter(openOnly, doneOnly bool) {
	c.openOnly = openOnly
	c.doneOnly = doneOnly
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string     { return "focustasks list [--open | --done]" }
func (c *ListCmd) NeedsStore() bool  { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.openOnly, "open", false, "")
	fs.BoolVar(&c.doneOnly, "done", false, "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}
	if c.openOnly && c.doneOnly {
		fmt.Fprintln(errOut, "error: cannot use both --open and --done")
		return exitcode.UserError
	}

	editingID, isEditing := svc.Editing()
	editing := func(t task.Task) bool { return isEditing && t.ID == editingID }

	// Numbers always refer to positions in the full list, so filtered
	// output keeps them stable for done/edit/rm.
	shown := 0
	for i, t := range svc.Tasks() {
		if (c.openOnly && t.IsDone) || (c.doneOnly && !t.IsDone) {
			continue
		}
		if editing(t) {
			output.FormatEditing(out, i+1, t)
		} else {
			output.FormatTask(out, i+1, t)
		}
		shown++
	}

	if shown == 0 && !cfg.Quiet {
		fmt.Fprintln(out, output.EmptyMessage)
	}
	return exitcode.Success
}
