package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type persistRecorder struct {
	calls int
	last  []Task
}

func (p *persistRecorder) SaveTasks(tasks []Task) error {
	p.calls++
	p.last = tasks
	return nil
}

func TestAdd(t *testing.T) {
	rec := &persistRecorder{}
	s := NewStore(nil, rec, nil)

	added := s.Add("Buy milk", PriorityHigh, CategoryShopping, nil, "")

	assert.NotNil(t, added)
	tasks := s.Tasks()
	assert.Len(t, tasks, 1)
	assert.Equal(t, "Buy milk", tasks[0].Text)
	assert.Equal(t, PriorityHigh, tasks[0].Priority)
	assert.Equal(t, CategoryShopping, tasks[0].Category)
	assert.False(t, tasks[0].Completed)
	assert.Nil(t, tasks[0].Due)
	assert.Equal(t, 1, rec.calls)
}

func TestAdd_BlankTextIsNoOp(t *testing.T) {
	rec := &persistRecorder{}
	s := NewStore(nil, rec, nil)

	assert.Nil(t, s.Add("", PriorityMedium, CategoryPersonal, nil, ""))
	assert.Nil(t, s.Add("   \t ", PriorityMedium, CategoryPersonal, nil, ""))
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, rec.calls)
}

func TestAdd_PrependsNewestFirst(t *testing.T) {
	s := NewStore(nil, nil, nil)

	s.Add("first", PriorityMedium, CategoryPersonal, nil, "")
	s.Add("second", PriorityMedium, CategoryPersonal, nil, "")

	tasks := s.Tasks()
	assert.Equal(t, "second", tasks[0].Text)
	assert.Equal(t, "first", tasks[1].Text)
}

func TestAdd_UniqueIDs(t *testing.T) {
	s := NewStore(nil, nil, nil)

	seen := map[int]bool{}
	for i := 0; i < 100; i++ {
		added := s.Add("x", PriorityMedium, CategoryPersonal, nil, "")
		assert.False(t, seen[added.ID])
		seen[added.ID] = true
	}
}

func TestNewStore_SeedsNextIDPastLoaded(t *testing.T) {
	loaded := []Task{
		{ID: 7, Text: "old", CreatedAt: time.Now()},
		{ID: 3, Text: "older", CreatedAt: time.Now()},
	}
	s := NewStore(loaded, nil, nil)

	added := s.Add("new", PriorityMedium, CategoryPersonal, nil, "")

	assert.Equal(t, 8, added.ID)
}

func TestToggle_IsInvolution(t *testing.T) {
	s := NewStore(nil, nil, nil)
	added := s.Add("walk dog", PriorityMedium, CategoryHealth, nil, "")

	assert.True(t, s.Toggle(added.ID))
	assert.True(t, s.Tasks()[0].Completed)

	assert.True(t, s.Toggle(added.ID))
	assert.False(t, s.Tasks()[0].Completed)
}

func TestToggle_UnknownIDIsNoOp(t *testing.T) {
	rec := &persistRecorder{}
	s := NewStore(nil, rec, nil)

	assert.False(t, s.Toggle(42))
	assert.Equal(t, 0, rec.calls)
}

func TestRemove(t *testing.T) {
	s := NewStore(nil, nil, nil)
	added := s.Add("ephemeral", PriorityMedium, CategoryPersonal, nil, "")

	assert.True(t, s.Remove(added.ID))
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Remove(added.ID))
}

func TestEditText(t *testing.T) {
	s := NewStore(nil, nil, nil)
	added := s.Add("tpyo", PriorityMedium, CategoryPersonal, nil, "")

	assert.True(t, s.EditText(added.ID, "typo"))
	assert.Equal(t, "typo", s.Tasks()[0].Text)

	assert.False(t, s.EditText(added.ID, "  "))
	assert.Equal(t, "typo", s.Tasks()[0].Text)
}

func TestSetters(t *testing.T) {
	s := NewStore(nil, nil, nil)
	added := s.Add("report", PriorityMedium, CategoryPersonal, nil, "")
	due := NewDate(2024, time.June, 1)

	assert.True(t, s.SetPriority(added.ID, PriorityHigh))
	assert.True(t, s.SetCategory(added.ID, CategoryWork))
	assert.True(t, s.SetDue(added.ID, &due))
	assert.True(t, s.SetNotes(added.ID, "for friday"))

	got := s.Tasks()[0]
	assert.Equal(t, PriorityHigh, got.Priority)
	assert.Equal(t, CategoryWork, got.Category)
	assert.Equal(t, &due, got.Due)
	assert.Equal(t, "for friday", got.Notes)

	assert.True(t, s.SetDue(added.ID, nil))
	assert.Nil(t, s.Tasks()[0].Due)
}

func TestClearCompleted_PreservesOrder(t *testing.T) {
	loaded := []Task{
		{ID: 1, Text: "A", Completed: true},
		{ID: 2, Text: "B"},
		{ID: 3, Text: "C", Completed: true},
	}
	rec := &persistRecorder{}
	s := NewStore(loaded, rec, nil)

	assert.True(t, s.ClearCompleted())

	tasks := s.Tasks()
	assert.Len(t, tasks, 1)
	assert.Equal(t, "B", tasks[0].Text)
	assert.Equal(t, 1, rec.calls)

	assert.False(t, s.ClearCompleted())
	assert.Equal(t, 1, rec.calls)
}

func TestPersistSnapshot(t *testing.T) {
	rec := &persistRecorder{}
	s := NewStore(nil, rec, nil)

	added := s.Add("snapshot", PriorityMedium, CategoryPersonal, nil, "")
	s.Toggle(added.ID)

	assert.Equal(t, 2, rec.calls)
	assert.Len(t, rec.last, 1)
	assert.True(t, rec.last[0].Completed)
}
