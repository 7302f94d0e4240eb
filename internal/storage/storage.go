// Package storage persists application state in a local SQLite database
// used as a key-value store: each key holds one JSON value that is
// overwritten whole on every save.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite"

	"taskdeck/internal/task"
)

const (
	keyTasks    = "tasks"
	keyDarkMode = "darkMode"
)

type Store struct {
	db     *sql.DB
	logger *log.Logger
}

func Open(dbPath string, logger *log.Logger) (*Store, error) {
	if dbPath == "" {
		return nil, errors.New("db path is empty")
	}
	if logger == nil {
		logger = log.Default()
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, err
	}
	dsn := sqliteDSN(dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db, logger: logger.WithPrefix("storage")}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	const ddl = `
CREATE TABLE IF NOT EXISTS kv (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`
	_, err := s.db.Exec(ddl)
	return err
}

// LoadTasks reads the persisted collection. An absent or malformed value
// yields an empty collection, never an error: startup must always succeed.
func (s *Store) LoadTasks() []task.Task {
	raw, ok := s.get(keyTasks)
	if !ok {
		return nil
	}
	var tasks []task.Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		s.logger.Warn("discarding malformed task data", "err", err)
		return nil
	}
	return tasks
}

// SaveTasks overwrites the persisted collection with a full snapshot.
func (s *Store) SaveTasks(tasks []task.Task) error {
	if tasks == nil {
		tasks = []task.Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return err
	}
	return s.set(keyTasks, string(data))
}

// LoadDarkMode reads the theme preference, defaulting to light.
func (s *Store) LoadDarkMode() bool {
	raw, ok := s.get(keyDarkMode)
	if !ok {
		return false
	}
	var dark bool
	if err := json.Unmarshal([]byte(raw), &dark); err != nil {
		s.logger.Warn("discarding malformed theme preference", "err", err)
		return false
	}
	return dark
}

func (s *Store) SaveDarkMode(dark bool) error {
	data, err := json.Marshal(dark)
	if err != nil {
		return err
	}
	return s.set(keyDarkMode, string(data))
}

func (s *Store) get(key string) (string, bool) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?;`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false
	}
	if err != nil {
		s.logger.Warn("read failed", "key", key, "err", err)
		return "", false
	}
	return value, true
}

func (s *Store) set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value;`,
		key, value)
	return err
}

func sqliteDSN(path string) string {
	if strings.HasPrefix(path, "file:") {
		return path
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		path = abs
	}
	u := url.URL{
		Scheme: "file",
		Path:   path,
	}
	q := u.Query()
	q.Set("mode", "rwc")
	q.Set("_pragma", "busy_timeout(5000)")
	u.RawQuery = q.Encode()
	return u.String()
}
