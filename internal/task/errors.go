package task

import (
	"errors"
	"fmt"
)

// ErrEmptyTitle is returned by Add when the title is blank after normalization.
// Nothing is added.
var ErrEmptyTitle = errors.New("title required")

// ErrDuplicateTitle matches any *DuplicateTitleError.
var ErrDuplicateTitle = errors.New("task already exists")

// DuplicateTitleError reports an add rejected because an equivalent title exists.
type DuplicateTitleError struct {
	Title    string // normalized title that was rejected
	Existing Task   // task it collides with
}

func (e *DuplicateTitleError) Error() string {
	return fmt.Sprintf("%s: %s", ErrDuplicateTitle, e.Title)
}

func (e *DuplicateTitleError) Is(target error) bool {
	return target == ErrDuplicateTitle
}
