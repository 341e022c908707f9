// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"focustasks/internal/task"
)

const (
	// EditMarker flags the task in edit mode.
	EditMarker = "  (editing)"

	// EmptyMessage is printed for an empty list.
	EmptyMessage = "no tasks found"
)

// FormatTask formats a task line.
// Format: "{N:>4}  [{x| }] {TITLE}\n" (4-wide right-aligned number, two spaces, checkbox, title)
func FormatTask(w io.Writer, num int, t task.Task) {
	fmt.Fprintf(w, "%4d  %s %s\n", num, checkbox(t.IsDone), displayTitle(t.Title))
}

// FormatEditing formats the line of the task in edit mode.
func FormatEditing(w io.Writer, num int, t task.Task) {
	fmt.Fprintf(w, "%4d  %s %s%s\n", num, checkbox(t.IsDone), displayTitle(t.Title), EditMarker)
}

// FormatList writes every task numbered from 1, marking the one being edited.
// Nothing is written for an empty list unless showEmpty is set.
func FormatList(w io.Writer, tasks []task.Task, editing func(task.Task) bool, showEmpty bool) {
	if len(tasks) == 0 {
		if showEmpty {
			fmt.Fprintln(w, EmptyMessage)
		}
		return
	}
	for i, t := range tasks {
		if editing != nil && editing(t) {
			FormatEditing(w, i+1, t)
			continue
		}
		FormatTask(w, i+1, t)
	}
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

// displayTitle normalizes a task title for display.
// - Empty or whitespace-only titles become the placeholder
// - Newlines are replaced with spaces
func displayTitle(title string) string {
	// Replace newlines with spaces
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	// Trim and check for empty
	if strings.TrimSpace(title) == "" {
		return task.Placeholder
	}
	return title
}
