// Package service wires the task store to its durable slot and exposes the
// interface the presentation layer works against.
package service

import (
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"focustasks/internal/config"
	"focustasks/internal/storage"
	"focustasks/internal/task"
)

// Service is everything a front end needs: read the list, watch it, and send
// the user's events. Commands never open or write slots themselves.
type Service interface {
	// Tasks returns the list in display order.
	Tasks() []task.Task

	// Subscribe calls fn with the new list after every change.
	// The returned function cancels the subscription.
	Subscribe(fn func([]task.Task)) func()

	// Add creates a task at the front of the list.
	// Returns task.ErrEmptyTitle or a *task.DuplicateTitleError without changing anything.
	Add(title string) (task.Task, error)

	// Toggle flips the done flag. Returns false if the task does not exist.
	Toggle(id uuid.UUID) (task.Task, bool)

	// BeginEdit enters edit mode for a task without changing it.
	BeginEdit(id uuid.UUID) bool

	// Editing returns the task in edit mode, if any.
	Editing() (uuid.UUID, bool)

	// CommitEdit renames a task and leaves edit mode. A blank title becomes task.Placeholder.
	CommitEdit(id uuid.UUID, title string) (task.Task, bool)

	// CancelEdit leaves edit mode.
	CancelEdit()

	// Delete removes the tasks at the given 0-based positions.
	Delete(indices []int) int

	// Close releases the storage backend.
	Close() error
}

// Local is a Service backed by an in-process store and a durable slot.
type Local struct {
	*task.Store
	slot storage.Slot
}

var _ Service = (*Local)(nil)

// Open opens the slot backend named in cfg and restores the saved list.
func Open(cfg *config.Config, logger log.FieldLogger) (*Local, error) {
	slot, err := OpenSlot(cfg)
	if err != nil {
		return nil, err
	}
	if logger != nil {
		logger.WithFields(log.Fields{"backend": cfg.Backend, "dir": cfg.Dir}).Debug("slot opened")
	}
	return NewLocal(slot, logger), nil
}

// OpenSlot opens the slot backend named in cfg. The slot name comes from
// cfg.Slot, which config.New defaults to config.DefaultSlot.
func OpenSlot(cfg *config.Config) (storage.Slot, error) {
	var (
		slot storage.Slot
		err  error
	)
	switch cfg.Backend {
	case config.BackendFile, "":
		slot, err = storage.NewFileSlot(cfg.Dir, cfg.Slot)
	case config.BackendBolt:
		slot, err = storage.OpenBoltSlot(cfg.Dir, cfg.Slot)
	default:
		return nil, fmt.Errorf("unknown backend: %s", cfg.Backend)
	}
	if err != nil {
		return nil, err
	}
	return slot, nil
}

// NewLocal restores the list from slot and saves it back after every change.
func NewLocal(slot storage.Slot, logger log.FieldLogger) *Local {
	adapter := storage.NewAdapter(slot, logger)
	store := task.NewStore(adapter.Load())
	adapter.Attach(store)
	return &Local{
		Store: store,
		slot:  slot,
	}
}

// Close implements Service.
func (l *Local) Close() error {
	return l.slot.Close()
}
