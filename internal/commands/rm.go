package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"focustasks/internal/config"
	"focustasks/internal/exitcode"
	"focustasks/internal/service"
)

func init() {
	Register(&RmCmd{})
}

// RmCmd implements the rm command.
type RmCmd struct{}

func (c *RmCmd) Name() string      { return "rm" }
func (c *RmCmd) Aliases() []string { return []string{"delete"} }
func (c *RmCmd) Synopsis() string  { return "Delete tasks" }
func (c *RmCmd) Usage() string     { return "focustasks rm <n|a-b>..." }
func (c *RmCmd) NeedsStore() bool  { return true }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	// Every reference is checked before anything is removed.
	nums, err := ParseTaskRefs(args, len(svc.Tasks()))
	if err != nil {
		reportRefError(errOut, err)
		return exitcode.UserError
	}

	indices := make([]int, 0, len(nums))
	for _, num := range nums {
		indices = append(indices, num-1)
	}

	svc.Delete(indices)

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
