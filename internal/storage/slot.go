package storage

import (
	"errors"
	"strings"
)

// ErrInvalidSlotName is returned for blank or path-like slot names.
var ErrInvalidSlotName = errors.New("invalid slot name")

// Slot is a single named, durable value. Writes overwrite the previous value.
type Slot interface {
	// Name returns the slot name.
	Name() string

	// Read returns the stored value. ok is false if nothing was ever written.
	Read() (data []byte, ok bool, err error)

	// Write replaces the stored value.
	Write(data []byte) error

	// Close releases the backing resources.
	Close() error
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return ErrInvalidSlotName
	}
	return nil
}
