package storage

import "focustasks/internal/task"

// SetEncoder replaces the snapshot encoder used by Save.
func (a *Adapter) SetEncoder(fn func([]task.Task) ([]byte, error)) {
	a.encode = fn
}
