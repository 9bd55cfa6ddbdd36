// Package history provides a JSON file-based implementation of HistoryRepository.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/termhere/termhere/internal/domain"
)

const (
	// lockTimeout bounds how long a call waits for a concurrent
	// invocation to release the lock file.
	lockTimeout = 2 * time.Second

	lockRetryInterval = 10 * time.Millisecond
)

// storeData represents the JSON file structure.
type storeData struct {
	Entries []domain.HistoryEntry `json:"entries"`
}

// Store implements domain.HistoryRepository using a JSON file guarded by a
// lock file, so concurrent invocations serialize their updates.
type Store struct {
	path     string
	lockPath string
}

// New creates a new Store for the given file path.
// The file does not need to exist; it will be created on first write.
func New(path string) *Store {
	return &Store{
		path:     path,
		lockPath: path + ".lock",
	}
}

// DefaultPath returns the history file location:
// $XDG_DATA_HOME/termhere/history.json, with ~/.local/share as fallback.
func DefaultPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return domain.HistoryPath(dataHome)
}

// Ensure Store implements domain.HistoryRepository.
var _ domain.HistoryRepository = (*Store)(nil)

// Touch records that path was opened at now, capped to limit entries.
func (s *Store) Touch(path string, now time.Time, limit int) error {
	return s.withLockWrite(func(data *storeData) error {
		data.Entries = domain.TouchHistory(data.Entries, path, now, limit)
		return nil
	})
}

// List returns entries ordered most recently opened first.
func (s *Store) List() ([]domain.HistoryEntry, error) {
	var entries []domain.HistoryEntry
	err := s.withLock(func(data *storeData) error {
		entries = data.Entries
		return nil
	})
	return entries, err
}

// Clear removes all entries.
func (s *Store) Clear() error {
	return s.withLockWrite(func(data *storeData) error {
		data.Entries = nil
		return nil
	})
}

// withLock executes fn holding the lock file.
func (s *Store) withLock(fn func(*storeData) error) error {
	if err := s.acquireLock(); err != nil {
		return err
	}
	defer s.releaseLock()

	data := s.read()
	return fn(data)
}

// withLockWrite executes fn holding the lock file and persists the result.
func (s *Store) withLockWrite(fn func(*storeData) error) error {
	if err := s.acquireLock(); err != nil {
		return err
	}
	defer s.releaseLock()

	data := s.read()
	if err := fn(data); err != nil {
		return err
	}

	return s.write(data)
}

// acquireLock creates the lock file exclusively, retrying until lockTimeout.
// Exclusive create is the portable equivalent of flock across the three
// supported platforms.
func (s *Store) acquireLock() error {
	if err := os.MkdirAll(filepath.Dir(s.lockPath), 0o750); err != nil {
		return fmt.Errorf("create lock directory: %w", err)
	}

	deadline := time.Now().Add(lockTimeout)
	for {
		f, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
		if err == nil {
			return f.Close()
		}
		if !os.IsExist(err) {
			return fmt.Errorf("open lock file: %w", err)
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("acquire lock: %s is still held", s.lockPath)
		}
		time.Sleep(lockRetryInterval)
	}
}

func (s *Store) releaseLock() {
	_ = os.Remove(s.lockPath)
}

// read loads the store file. A missing or corrupt file yields an empty
// store: history is a disposable cache and must never block an open.
func (s *Store) read() *storeData {
	content, err := os.ReadFile(s.path)
	if err != nil {
		return &storeData{}
	}

	var data storeData
	if err := json.Unmarshal(content, &data); err != nil {
		return &storeData{}
	}

	return &data
}

func (s *Store) write(data *storeData) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal history data: %w", err)
	}

	// Write to temp file first, then rename for atomicity
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
