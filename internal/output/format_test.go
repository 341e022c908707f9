package output_test

import (
	"bytes"
	"testing"

	"focustasks/internal/output"
	"focustasks/internal/task"
	"focustasks/internal/testutil"
)

func TestFormatTask_Open(t *testing.T) {
	var buf bytes.Buffer
	output.FormatTask(&buf, 1, task.Task{Title: "Buy milk"})
	if buf.String() != "   1  [ ] Buy milk\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestFormatTask_Done(t *testing.T) {
	var buf bytes.Buffer
	output.FormatTask(&buf, 12, task.Task{Title: "Buy milk", IsDone: true})
	if buf.String() != "  12  [x] Buy milk\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestFormatTask_NewlinesInTitle(t *testing.T) {
	var buf bytes.Buffer
	output.FormatTask(&buf, 1, task.Task{Title: "a\nb"})
	if buf.String() != "   1  [ ] a b\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestFormatList_Empty(t *testing.T) {
	var buf bytes.Buffer
	output.FormatList(&buf, nil, nil, true)
	if buf.String() != "no tasks found\n" {
		t.Errorf("unexpected output %q", buf.String())
	}

	buf.Reset()
	output.FormatList(&buf, nil, nil, false)
	if buf.String() != "" {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestFormatList_Mixed(t *testing.T) {
	editing := task.Task{Title: "   "}
	editing.ID[0] = 1
	tasks := []task.Task{
		{Title: "Buy milk"},
		{Title: "Walk the dog", IsDone: true},
		editing,
	}

	var buf bytes.Buffer
	output.FormatList(&buf, tasks, func(tk task.Task) bool { return tk.ID == editing.ID }, true)
	testutil.GoldenString(t, "list_mixed", buf.String())
}
