package task

import (
	"sort"

	"github.com/google/uuid"
)

// Store is an ordered, observable list of tasks. New tasks go to the front.
//
// Store is not safe for concurrent use. Every method runs to completion on the
// caller's goroutine, and subscribers are called synchronously before the
// mutating method returns.
type Store struct {
	tasks   []Task
	editing uuid.UUID
	subs    []*subscription
}

type subscription struct {
	fn func([]Task)
}

// NewStore creates a store holding a repaired copy of initial.
func NewStore(initial []Task) *Store {
	s := &Store{}
	if len(initial) > 0 {
		s.tasks, _ = Repair(initial)
	}
	return s
}

// Tasks returns a copy of the list in display order.
func (s *Store) Tasks() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Len returns the number of tasks.
func (s *Store) Len() int { return len(s.tasks) }

// Subscribe registers fn to be called with a copy of the list after every change.
// The returned function removes the subscription.
func (s *Store) Subscribe(fn func([]Task)) func() {
	sub := &subscription{fn: fn}
	s.subs = append(s.subs, sub)
	return func() {
		for i, existing := range s.subs {
			if existing == sub {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) notify() {
	// Copy so a subscriber may unsubscribe while being notified.
	subs := append([]*subscription(nil), s.subs...)
	for _, sub := range subs {
		sub.fn(s.Tasks())
	}
}

// Index returns the position of the task with the given ID, or -1.
func (s *Store) Index(id uuid.UUID) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Add normalizes rawTitle and inserts a new task at the front.
// Returns ErrEmptyTitle for a blank title and a *DuplicateTitleError if an
// equivalent title already exists; the list is unchanged in both cases.
func (s *Store) Add(rawTitle string) (Task, error) {
	title := Normalize(rawTitle)
	if title == "" {
		return Task{}, ErrEmptyTitle
	}

	key := FoldKey(title)
	for _, t := range s.tasks {
		if FoldKey(t.Title) == key {
			return Task{}, &DuplicateTitleError{Title: title, Existing: t}
		}
	}

	t := New(title)
	s.tasks = append([]Task{t}, s.tasks...)
	s.notify()
	return t, nil
}

// Toggle flips the completion flag of the task with the given ID.
// Returns false if no such task exists.
func (s *Store) Toggle(id uuid.UUID) (Task, bool) {
	i := s.Index(id)
	if i < 0 {
		return Task{}, false
	}
	s.tasks[i].IsDone = !s.tasks[i].IsDone
	s.notify()
	return s.tasks[i], true
}

// BeginEdit puts the task with the given ID into edit mode.
// Data is not touched.
func (s *Store) BeginEdit(id uuid.UUID) bool {
	if s.Index(id) < 0 {
		return false
	}
	s.editing = id
	return true
}

// Editing returns the ID of the task in edit mode, if any.
func (s *Store) Editing() (uuid.UUID, bool) {
	return s.editing, s.editing != uuid.Nil
}

// CancelEdit leaves edit mode without changing anything.
func (s *Store) CancelEdit() {
	s.editing = uuid.Nil
}

// CommitEdit sets the title of the task with the given ID and leaves edit mode.
// A title that is blank after normalization becomes Placeholder. Unlike Add,
// duplicates are not rejected here.
func (s *Store) CommitEdit(id uuid.UUID, rawTitle string) (Task, bool) {
	s.editing = uuid.Nil

	i := s.Index(id)
	if i < 0 {
		return Task{}, false
	}

	title := Normalize(rawTitle)
	if title == "" {
		title = Placeholder
	}
	if s.tasks[i].Title != title {
		s.tasks[i].Title = title
		s.notify()
	}
	return s.tasks[i], true
}

// Delete removes the tasks at the given 0-based positions and returns how many
// were removed. Out-of-range and repeated positions are ignored.
func (s *Store) Delete(indices []int) int {
	drop := make(map[int]struct{}, len(indices))
	for _, i := range indices {
		if i >= 0 && i < len(s.tasks) {
			drop[i] = struct{}{}
		}
	}
	if len(drop) == 0 {
		return 0
	}

	positions := make([]int, 0, len(drop))
	for i := range drop {
		positions = append(positions, i)
	}
	sort.Ints(positions)

	kept := make([]Task, 0, len(s.tasks)-len(positions))
	next := 0
	for i, t := range s.tasks {
		if next < len(positions) && positions[next] == i {
			next++
			if t.ID == s.editing {
				s.editing = uuid.Nil
			}
			continue
		}
		kept = append(kept, t)
	}
	s.tasks = kept
	s.notify()
	return len(positions)
}
