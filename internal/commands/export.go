package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"focustasks/internal/config"
	"focustasks/internal/exitcode"
	"focustasks/internal/service"
	"focustasks/internal/storage"
	"focustasks/internal/task"
)

func init() {
	Register(&ExportCmd{})
}

// ExportCmd prints the whole list in the persisted JSON form or as YAML.
type ExportCmd struct {
	format string
}

// SetFormat sets the output format (for testing).
func (c *ExportCmd) SetFormat(format string) {
	c.format = format
}

func (c *ExportCmd) Name() string      { return "export" }
func (c *ExportCmd) Aliases() []string { return nil }
func (c *ExportCmd) Synopsis() string  { return "Print all tasks as JSON or YAML" }
func (c *ExportCmd) Usage() string     { return "focustasks export [--format json|yaml]" }
func (c *ExportCmd) NeedsStore() bool  { return true }

func (c *ExportCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.format, "format", "json", "")
}

// yamlTask keeps the YAML keys aligned with the JSON snapshot.
type yamlTask struct {
	ID     string `yaml:"id"`
	Title  string `yaml:"title"`
	IsDone bool   `yaml:"isDone"`
}

func (c *ExportCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	tasks := svc.Tasks()

	var data []byte
	var err error
	switch c.format {
	case "", "json":
		data, err = storage.Encode(tasks)
		if err == nil {
			data = append(data, '\n')
		}
	case "yaml":
		data, err = yaml.Marshal(toYAML(tasks))
	default:
		fmt.Fprintf(errOut, "error: unknown format: %s\n", c.format)
		return exitcode.UserError
	}
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	if _, err := out.Write(data); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	return exitcode.Success
}

func toYAML(tasks []task.Task) []yamlTask {
	out := make([]yamlTask, len(tasks))
	for i, t := range tasks {
		out[i] = yamlTask{ID: t.ID.String(), Title: t.Title, IsDone: t.IsDone}
	}
	return out
}
