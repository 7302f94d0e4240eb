package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"taskdeck/internal/task"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "taskdeck.db"), nil)
	assert.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLoadTasks_EmptyDatabase(t *testing.T) {
	s := openTemp(t)

	assert.Empty(t, s.LoadTasks())
}

func TestSaveTasks_RoundTrip(t *testing.T) {
	s := openTemp(t)
	due := task.NewDate(2024, time.June, 1)
	tasks := []task.Task{
		{
			ID:        2,
			Text:      "Buy milk",
			Priority:  task.PriorityHigh,
			Category:  task.CategoryShopping,
			Due:       &due,
			CreatedAt: time.Date(2024, time.May, 30, 9, 0, 0, 0, time.UTC),
			Notes:     "semi-skimmed",
		},
		{
			ID:        1,
			Text:      "File taxes",
			Completed: true,
			Priority:  task.PriorityMedium,
			Category:  task.CategoryPersonal,
			CreatedAt: time.Date(2024, time.May, 29, 9, 0, 0, 0, time.UTC),
		},
	}

	assert.NoError(t, s.SaveTasks(tasks))
	assert.Equal(t, tasks, s.LoadTasks())
}

func TestSaveTasks_OverwritesWholeValue(t *testing.T) {
	s := openTemp(t)

	assert.NoError(t, s.SaveTasks([]task.Task{{ID: 1, Text: "a"}, {ID: 2, Text: "b"}}))
	assert.NoError(t, s.SaveTasks([]task.Task{{ID: 2, Text: "b"}}))

	loaded := s.LoadTasks()
	assert.Len(t, loaded, 1)
	assert.Equal(t, "b", loaded[0].Text)
}

func TestLoadTasks_MalformedValueYieldsEmpty(t *testing.T) {
	s := openTemp(t)

	assert.NoError(t, s.set(keyTasks, "{definitely not json"))
	assert.Empty(t, s.LoadTasks())
}

func TestDarkMode_DefaultsToLight(t *testing.T) {
	s := openTemp(t)

	assert.False(t, s.LoadDarkMode())
}

func TestDarkMode_RoundTrip(t *testing.T) {
	s := openTemp(t)

	assert.NoError(t, s.SaveDarkMode(true))
	assert.True(t, s.LoadDarkMode())

	assert.NoError(t, s.SaveDarkMode(false))
	assert.False(t, s.LoadDarkMode())
}

func TestDarkMode_MalformedValueYieldsLight(t *testing.T) {
	s := openTemp(t)

	assert.NoError(t, s.set(keyDarkMode, "maybe"))
	assert.False(t, s.LoadDarkMode())
}

func TestPersistenceSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskdeck.db")

	s, err := Open(path, nil)
	assert.NoError(t, err)
	assert.NoError(t, s.SaveTasks([]task.Task{{ID: 1, Text: "durable"}}))
	assert.NoError(t, s.SaveDarkMode(true))
	assert.NoError(t, s.Close())

	s2, err := Open(path, nil)
	assert.NoError(t, err)
	defer s2.Close()

	loaded := s2.LoadTasks()
	assert.Len(t, loaded, 1)
	assert.Equal(t, "durable", loaded[0].Text)
	assert.True(t, s2.LoadDarkMode())
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := Open("", nil)
	assert.Error(t, err)
}
