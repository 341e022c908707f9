// Package task holds the task model and the in-memory task store.
package task

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
)

// Placeholder replaces a title that is empty after an edit.
const Placeholder = "Untitled"

// Task is a single to-do item.
type Task struct {
	ID     uuid.UUID `json:"id" yaml:"id"`
	Title  string    `json:"title" yaml:"title"`
	IsDone bool      `json:"isDone" yaml:"isDone"`
}

// New creates an open task with a fresh ID and a normalized title.
func New(title string) Task {
	return Task{
		ID:    uuid.New(),
		Title: Normalize(title),
	}
}

// Normalize collapses every whitespace run to a single space and trims the ends.
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// FoldKey returns the comparison key used for duplicate detection:
// the normalized title, case-folded.
func FoldKey(s string) string {
	// Casers keep state, so build one per call.
	return cases.Fold().String(Normalize(s))
}

// Repair returns a copy of tasks in which every ID is unique and non-nil and
// every title is normalized and non-empty. A nil or repeated ID is replaced
// with a fresh one; a blank title becomes Placeholder. The second result is
// the number of tasks that changed.
func Repair(tasks []Task) ([]Task, int) {
	out := make([]Task, len(tasks))
	seen := make(map[uuid.UUID]struct{}, len(tasks))
	fixed := 0
	for i, t := range tasks {
		orig := t
		if _, dup := seen[t.ID]; dup || t.ID == uuid.Nil {
			t.ID = uuid.New()
		}
		seen[t.ID] = struct{}{}
		t.Title = Normalize(t.Title)
		if t.Title == "" {
			t.Title = Placeholder
		}
		if t != orig {
			fixed++
		}
		out[i] = t
	}
	return out, fixed
}
