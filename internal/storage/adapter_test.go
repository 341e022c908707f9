package storage_test

import (
	"testing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"focustasks/internal/storage"
	"focustasks/internal/task"
	"focustasks/internal/testutil"
)

func newTestLogger() (*log.Logger, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(log.DebugLevel)
	return logger, hook
}

func warnings(hook *test.Hook) []*log.Entry {
	var out []*log.Entry
	for _, e := range hook.AllEntries() {
		if e.Level == log.WarnLevel {
			out = append(out, e)
		}
	}
	return out
}

func TestAdapterLoad_Absent(t *testing.T) {
	logger, hook := newTestLogger()
	a := storage.NewAdapter(testutil.NewMemorySlot("tasksData"), logger)

	got := a.Load()
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil list, got %#v", got)
	}
	if n := len(warnings(hook)); n != 0 {
		t.Errorf("expected no warnings, got %d", n)
	}
}

func TestAdapterLoad_Stored(t *testing.T) {
	original := []task.Task{task.New("A"), task.New("B")}
	data, err := storage.Encode(original)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	a := storage.NewAdapter(testutil.NewMemorySlotWith("tasksData", data), nil)
	got := a.Load()
	if len(got) != 2 || got[0] != original[0] || got[1] != original[1] {
		t.Errorf("expected %+v, got %+v", original, got)
	}
}

func TestAdapterLoad_DecodeFailure(t *testing.T) {
	logger, hook := newTestLogger()
	a := storage.NewAdapter(testutil.NewMemorySlotWith("tasksData", []byte("{broken")), logger)

	got := a.Load()
	if len(got) != 0 {
		t.Errorf("expected empty list, got %d tasks", len(got))
	}

	warns := warnings(hook)
	if len(warns) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(warns))
	}
	if warns[0].Data["slot"] != "tasksData" {
		t.Errorf("expected slot field, got %v", warns[0].Data["slot"])
	}
	if _, ok := warns[0].Data[log.ErrorKey]; !ok {
		t.Error("expected error field")
	}
}

const damagedSnapshot = `[
	{"id":"6f1c2a5e-1b0d-4c7e-9a52-0c3e8f1d2b4a","title":"   ","isDone":false},
	{"id":"6f1c2a5e-1b0d-4c7e-9a52-0c3e8f1d2b4a","title":"b","isDone":false},
	{"id":"00000000-0000-0000-0000-000000000000","title":"  c  d ","isDone":true}
]`

func TestAdapterLoad_RepairsRecords(t *testing.T) {
	logger, hook := newTestLogger()
	a := storage.NewAdapter(testutil.NewMemorySlotWith("tasksData", []byte(damagedSnapshot)), logger)

	got := a.Load()
	if len(got) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(got))
	}

	first := uuid.MustParse("6f1c2a5e-1b0d-4c7e-9a52-0c3e8f1d2b4a")
	if got[0].ID != first {
		t.Errorf("expected first task to keep its id, got %s", got[0].ID)
	}
	if got[0].Title != task.Placeholder {
		t.Errorf("expected %q, got %q", task.Placeholder, got[0].Title)
	}
	if got[1].ID == first || got[1].ID == uuid.Nil {
		t.Errorf("expected repeated id to be replaced, got %s", got[1].ID)
	}
	if got[2].ID == uuid.Nil {
		t.Error("expected nil id to be replaced")
	}
	if got[2].Title != "c d" || !got[2].IsDone {
		t.Errorf("unexpected third task %+v", got[2])
	}

	warns := warnings(hook)
	if len(warns) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(warns))
	}
	if warns[0].Data["repaired"] != 3 {
		t.Errorf("expected repaired=3, got %v", warns[0].Data["repaired"])
	}
}

func TestAdapterLoad_RepairedIDsAddressOneTask(t *testing.T) {
	a := storage.NewAdapter(testutil.NewMemorySlotWith("tasksData", []byte(damagedSnapshot)), nil)
	store := task.NewStore(a.Load())
	tasks := store.Tasks()

	if _, ok := store.Toggle(tasks[1].ID); !ok {
		t.Fatal("expected toggle to find task 2")
	}
	after := store.Tasks()
	if after[0].IsDone || !after[1].IsDone {
		t.Errorf("expected only task 2 toggled, got %+v", after)
	}

	if !store.BeginEdit(tasks[2].ID) {
		t.Fatal("expected begin edit to find task 3")
	}
	if id, ok := store.Editing(); !ok || id != tasks[2].ID {
		t.Errorf("expected editing %s, got %s (%v)", tasks[2].ID, id, ok)
	}
}

func TestAdapterLoad_ReadFailure(t *testing.T) {
	logger, hook := newTestLogger()
	slot := testutil.NewMemorySlot("tasksData")
	slot.ReadErr = testutil.ErrInjected

	got := storage.NewAdapter(slot, logger).Load()
	if len(got) != 0 {
		t.Errorf("expected empty list, got %d tasks", len(got))
	}
	if n := len(warnings(hook)); n != 1 {
		t.Errorf("expected 1 warning, got %d", n)
	}
}

func TestAdapterSave_WriteFailureSwallowed(t *testing.T) {
	logger, hook := newTestLogger()
	slot := testutil.NewMemorySlot("tasksData")
	slot.WriteErr = testutil.ErrInjected

	storage.NewAdapter(slot, logger).Save([]task.Task{task.New("A")})

	if slot.Writes() != 0 {
		t.Errorf("expected no successful writes, got %d", slot.Writes())
	}
	if n := len(warnings(hook)); n != 1 {
		t.Errorf("expected 1 warning, got %d", n)
	}
}

func TestAdapterSave_EncodeFailureSkipsWrite(t *testing.T) {
	logger, hook := newTestLogger()
	slot := testutil.NewMemorySlot("tasksData")
	a := storage.NewAdapter(slot, logger)
	a.SetEncoder(func([]task.Task) ([]byte, error) {
		return nil, testutil.ErrInjected
	})

	a.Save([]task.Task{task.New("A")})

	if slot.Writes() != 0 {
		t.Errorf("expected write skipped, got %d writes", slot.Writes())
	}
	warns := warnings(hook)
	if len(warns) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(warns))
	}
	if warns[0].Message != "save tasks: encode failed, write skipped" {
		t.Errorf("unexpected warning %q", warns[0].Message)
	}
}

func TestAdapterAttach_WritesOnEveryMutation(t *testing.T) {
	slot := testutil.NewMemorySlot("tasksData")
	a := storage.NewAdapter(slot, nil)
	store := task.NewStore(a.Load())
	detach := a.Attach(store)

	b, _ := store.Add("B")
	store.Add("A")
	store.Toggle(b.ID)
	store.BeginEdit(b.ID)
	store.CommitEdit(b.ID, "B2")
	store.Delete([]int{0})

	if slot.Writes() != 5 {
		t.Errorf("expected 5 writes, got %d", slot.Writes())
	}

	got, err := storage.Decode(slot.Data())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].Title != "B2" || !got[0].IsDone || got[0].ID != b.ID {
		t.Errorf("unexpected snapshot %+v", got)
	}

	detach()
	store.Add("C")
	if slot.Writes() != 5 {
		t.Errorf("expected no writes after detach, got %d", slot.Writes())
	}
}

func TestAdapter_RestartRestoresList(t *testing.T) {
	slot := testutil.NewMemorySlot("tasksData")

	first := storage.NewAdapter(slot, nil)
	store := task.NewStore(first.Load())
	first.Attach(store)
	store.Add("B")
	store.Add("A")

	second := storage.NewAdapter(slot, nil)
	restored := task.NewStore(second.Load())

	want := store.Tasks()
	got := restored.Tasks()
	if len(got) != len(want) {
		t.Fatalf("expected %d tasks, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("task %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}
