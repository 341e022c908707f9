// Package testutil provides testing utilities.
package testutil

import (
	"errors"
	"sync"
)

// ErrInjected is a generic failure for error injection.
var ErrInjected = errors.New("injected failure")

// MemorySlot is an in-memory storage slot for testing.
type MemorySlot struct {
	mu      sync.Mutex
	name    string
	data    []byte
	present bool
	writes  int
	closed  bool

	// Error injection for testing
	ReadErr  error
	WriteErr error
}

// NewMemorySlot creates an empty slot.
func NewMemorySlot(name string) *MemorySlot {
	return &MemorySlot{name: name}
}

// NewMemorySlotWith creates a slot that already holds data.
func NewMemorySlotWith(name string, data []byte) *MemorySlot {
	m := NewMemorySlot(name)
	m.data = append([]byte(nil), data...)
	m.present = true
	return m
}

// Name implements storage.Slot.
func (m *MemorySlot) Name() string { return m.name }

// Read implements storage.Slot.
func (m *MemorySlot) Read() ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ReadErr != nil {
		return nil, false, m.ReadErr
	}
	if !m.present {
		return nil, false, nil
	}
	return append([]byte(nil), m.data...), true, nil
}

// Write implements storage.Slot.
func (m *MemorySlot) Write(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.data = append([]byte(nil), data...)
	m.present = true
	m.writes++
	return nil
}

// Close implements storage.Slot.
func (m *MemorySlot) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Data returns the last written value.
func (m *MemorySlot) Data() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]byte(nil), m.data...)
}

// Writes returns the number of successful writes.
func (m *MemorySlot) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// Closed reports whether Close was called.
func (m *MemorySlot) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}
