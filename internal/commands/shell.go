package commands

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"focustasks/internal/config"
	"focustasks/internal/exitcode"
	"focustasks/internal/output"
	"focustasks/internal/service"
	"focustasks/internal/task"
)

// Prompt is printed before each line unless --quiet is set.
const Prompt = "> "

func init() {
	Register(&ShellCmd{})
}

// ShellCmd runs an interactive session against one open list.
// Each input line is one event; the list is re-rendered after every change.
//
// `edit <n>` without a title enters edit mode and the next line is the new
// title ("." cancels). Blank lines are ignored, and exit or quit ends the
// session even while editing.
type ShellCmd struct {
	// In is the input stream. Defaults to os.Stdin.
	In io.Reader

	// Registry resolves command names. Defaults to DefaultRegistry.
	Registry *Registry
}

func (c *ShellCmd) Name() string      { return "shell" }
func (c *ShellCmd) Aliases() []string { return nil }
func (c *ShellCmd) Synopsis() string  { return "Interactive session" }
func (c *ShellCmd) Usage() string     { return "focustasks shell" }
func (c *ShellCmd) NeedsStore() bool  { return true }

func (c *ShellCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ShellCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	in := c.In
	if in == nil {
		in = os.Stdin
	}
	registry := c.Registry
	if registry == nil {
		registry = DefaultRegistry
	}

	s := &session{
		cfg:      cfg,
		svc:      svc,
		registry: registry,
		out:      out,
		errOut:   errOut,
	}
	unsubscribe := svc.Subscribe(s.render)
	defer unsubscribe()

	s.render(svc.Tasks())

	scanner := bufio.NewScanner(in)
	for {
		if ctx.Err() != nil {
			return exitcode.Success
		}
		if !cfg.Quiet {
			fmt.Fprint(out, Prompt)
		}
		if !scanner.Scan() {
			break
		}
		if done := s.handle(ctx, scanner.Text()); done {
			return exitcode.Success
		}
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(errOut, "error: read input: %v\n", err)
		return exitcode.UserError
	}
	return exitcode.Success
}

type session struct {
	cfg      *config.Config
	svc      service.Service
	registry *Registry
	out      io.Writer
	errOut   io.Writer
}

// render is the store subscriber that redraws the list.
func (s *session) render(tasks []task.Task) {
	editingID, isEditing := s.svc.Editing()
	output.FormatList(s.out, tasks, func(t task.Task) bool {
		return isEditing && t.ID == editingID
	}, true)
}

// handle processes one input line. Returns true when the session should end.
func (s *session) handle(ctx context.Context, line string) bool {
	if id, editing := s.svc.Editing(); editing {
		switch strings.TrimSpace(line) {
		case "":
			return false
		case ".":
			s.svc.CancelEdit()
			fmt.Fprintln(s.out, "edit cancelled")
			return false
		case "exit", "quit":
			s.svc.CancelEdit()
			return true
		}
		if _, ok := s.svc.CommitEdit(id, line); !ok {
			fmt.Fprintln(s.errOut, "error: task no longer exists")
		}
		return false
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	name, args := fields[0], fields[1:]
	switch name {
	case "exit", "quit":
		return true
	}

	cmd, ok := s.registry.Find(name)
	if !ok {
		fmt.Fprintf(s.errOut, "error: unknown command: %s\n", name)
		return false
	}
	if cmd.Name() == "shell" {
		fmt.Fprintln(s.errOut, "error: already in shell")
		return false
	}
	if cmd.Name() == "edit" && len(args) == 1 {
		s.beginEdit(args)
		return false
	}

	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cmd.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(s.errOut, "error: %v\n", err)
		return false
	}

	var svc service.Service
	if cmd.NeedsStore() {
		svc = s.svc
	}
	cmd.Run(ctx, s.cfg, svc, fs.Args(), s.out, s.errOut)
	return false
}

func (s *session) beginEdit(args []string) {
	num, err := ParseTaskRef(args)
	if err != nil {
		reportRefError(s.errOut, err)
		return
	}
	t, err := findTaskByNumber(s.svc, num)
	if err != nil {
		fmt.Fprintf(s.errOut, "error: %v\n", err)
		return
	}
	s.svc.BeginEdit(t.ID)
	fmt.Fprintf(s.out, "editing %d: %s (enter new title, \".\" to cancel)\n", num, t.Title)
}
