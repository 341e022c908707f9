package storage

import (
	"io"

	log "github.com/sirupsen/logrus"

	"focustasks/internal/task"
)

// Adapter loads the task list from a slot at startup and writes a full
// snapshot after every change. Failures are logged and never returned:
// a broken slot degrades to an empty or unsaved list.
type Adapter struct {
	slot   Slot
	logger log.FieldLogger
	encode func([]task.Task) ([]byte, error)
}

// NewAdapter creates an adapter over slot. A nil logger discards output.
func NewAdapter(slot Slot, logger log.FieldLogger) *Adapter {
	if logger == nil {
		l := log.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	return &Adapter{slot: slot, logger: logger, encode: Encode}
}

func (a *Adapter) entry() *log.Entry {
	return a.logger.WithField("slot", a.slot.Name())
}

// Load returns the stored list, or an empty list if the slot is absent,
// unreadable, or undecodable.
func (a *Adapter) Load() []task.Task {
	data, ok, err := a.slot.Read()
	if err != nil {
		a.entry().WithError(err).Warn("load tasks: read failed, starting empty")
		return []task.Task{}
	}
	if !ok {
		a.entry().Debug("load tasks: slot empty")
		return []task.Task{}
	}

	tasks, err := Decode(data)
	if err != nil {
		a.entry().WithError(err).Warn("load tasks: decode failed, starting empty")
		return []task.Task{}
	}
	tasks, fixed := task.Repair(tasks)
	if fixed > 0 {
		a.entry().WithField("repaired", fixed).Warn("load tasks: repaired invalid ids or titles")
	}
	a.entry().WithField("count", len(tasks)).Debug("load tasks")
	return tasks
}

// Save writes the full list to the slot.
func (a *Adapter) Save(tasks []task.Task) {
	data, err := a.encode(tasks)
	if err != nil {
		a.entry().WithError(err).Warn("save tasks: encode failed, write skipped")
		return
	}
	if err := a.slot.Write(data); err != nil {
		a.entry().WithError(err).Warn("save tasks: write failed")
		return
	}
	a.entry().WithField("count", len(tasks)).Debug("save tasks")
}

// Attach saves a snapshot after every change to store.
// The returned function detaches the adapter.
func (a *Adapter) Attach(store *task.Store) func() {
	return store.Subscribe(a.Save)
}
