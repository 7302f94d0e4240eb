package task

import (
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Persister writes the full task collection to durable storage. The store
// calls it after every successful mutation with a snapshot of the collection.
type Persister interface {
	SaveTasks(tasks []Task) error
}

// Store owns the in-memory task collection, ordered newest first. All
// operations are synchronous and total: blank text and unknown IDs are
// no-ops, never errors.
type Store struct {
	tasks  []Task
	nextID int
	db     Persister
	logger *log.Logger
}

// NewStore builds a store around previously loaded tasks. The next ID is
// seeded past the largest loaded ID so IDs stay unique across restarts.
func NewStore(tasks []Task, db Persister, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	nextID := 1
	for _, t := range tasks {
		if t.ID >= nextID {
			nextID = t.ID + 1
		}
	}
	return &Store{
		tasks:  append([]Task(nil), tasks...),
		nextID: nextID,
		db:     db,
		logger: logger.WithPrefix("store"),
	}
}

// Tasks returns a snapshot of the collection in store order.
func (s *Store) Tasks() []Task {
	return append([]Task(nil), s.tasks...)
}

func (s *Store) Len() int {
	return len(s.tasks)
}

// Add creates a task and prepends it to the collection. It returns nil
// without touching the collection when text trims to empty.
func (s *Store) Add(text string, priority Priority, category Category, due *Date, notes string) *Task {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if !priority.Valid() {
		priority = PriorityMedium
	}
	if !category.Valid() {
		category = CategoryPersonal
	}
	t := Task{
		ID:        s.nextID,
		Text:      text,
		Completed: false,
		Priority:  priority,
		Category:  category,
		Due:       due,
		CreatedAt: time.Now(),
		Notes:     notes,
	}
	s.nextID++
	s.tasks = append([]Task{t}, s.tasks...)
	s.logger.Debug("added task", "id", t.ID)
	s.persist()
	return &t
}

// Toggle flips the completed flag of the matching task.
func (s *Store) Toggle(id int) bool {
	return s.mutate(id, func(t *Task) {
		t.Completed = !t.Completed
	})
}

// Remove deletes the matching task.
func (s *Store) Remove(id int) bool {
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			s.logger.Debug("removed task", "id", id)
			s.persist()
			return true
		}
	}
	return false
}

// EditText replaces the task's text; blank replacements are ignored.
func (s *Store) EditText(id int, text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	return s.mutate(id, func(t *Task) {
		t.Text = text
	})
}

func (s *Store) SetPriority(id int, priority Priority) bool {
	if !priority.Valid() {
		return false
	}
	return s.mutate(id, func(t *Task) {
		t.Priority = priority
	})
}

func (s *Store) SetCategory(id int, category Category) bool {
	if !category.Valid() {
		return false
	}
	return s.mutate(id, func(t *Task) {
		t.Category = category
	})
}

// SetDue replaces the due date; nil clears it.
func (s *Store) SetDue(id int, due *Date) bool {
	return s.mutate(id, func(t *Task) {
		t.Due = due
	})
}

func (s *Store) SetNotes(id int, notes string) bool {
	return s.mutate(id, func(t *Task) {
		t.Notes = notes
	})
}

// ClearCompleted removes every completed task, preserving the order of the
// survivors. It reports whether anything was removed.
func (s *Store) ClearCompleted() bool {
	kept := s.tasks[:0]
	removed := 0
	for _, t := range s.tasks {
		if t.Completed {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	if removed == 0 {
		return false
	}
	s.tasks = kept
	s.logger.Debug("cleared completed tasks", "removed", removed)
	s.persist()
	return true
}

func (s *Store) mutate(id int, fn func(*Task)) bool {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			fn(&s.tasks[i])
			s.persist()
			return true
		}
	}
	return false
}

// persist writes the collection through the Persister. Failures are logged
// and otherwise ignored; the in-memory state stays authoritative for the
// session.
func (s *Store) persist() {
	if s.db == nil {
		return
	}
	if err := s.db.SaveTasks(s.Tasks()); err != nil {
		s.logger.Error("persist failed", "err", err)
	}
}
