// Package storage persists timers as a small JSON document.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/atomicstack/pomotree/internal/logging"
	"github.com/atomicstack/pomotree/internal/timer"
)

const (
	appName    = "rusty-pomodoro"
	dbFileName = "db.json"
	filePerm   = 0o644
	dirPerm    = 0o755
	tmpSuffix  = ".tmp"
)

// DefaultPath returns the store location under the system temp directory.
func DefaultPath() string {
	return filepath.Join(os.TempDir(), appName, dbFileName)
}

type document struct {
	AppName string        `json:"app_name"`
	Timers  []timer.Timer `json:"timers"`
}

// Store is the JSON backed list of timers. Every mutation is written through.
type Store struct {
	path string
	doc  document
}

// Open loads the store at path, creating parent directories as needed. A
// missing file yields an empty store; an unreadable document is logged and
// replaced by an empty one on the next save.
func Open(path string) (*Store, error) {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}
	s := &Store{path: path, doc: document{AppName: appName}}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("read store %s: %w", path, err)
	case len(data) == 0:
		return s, nil
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		logging.Warn("timer store unreadable, starting empty", fmt.Errorf("%s: %w", path, err))
		return s, nil
	}
	if doc.AppName == "" {
		doc.AppName = appName
	}
	s.doc = doc
	return s, nil
}

// Path returns the file backing the store.
func (s *Store) Path() string {
	return s.path
}

// Timers returns a copy of the stored timers in insertion order.
func (s *Store) Timers() []timer.Timer {
	out := make([]timer.Timer, len(s.doc.Timers))
	copy(out, s.doc.Timers)
	return out
}

// Add appends a timer and saves.
func (s *Store) Add(t timer.Timer) error {
	s.doc.Timers = append(s.doc.Timers, t)
	return s.save()
}

// Find returns the last timer stored under name.
func (s *Store) Find(name string) (timer.Timer, bool) {
	idx := s.lastIndex(name)
	if idx < 0 {
		return timer.Timer{}, false
	}
	return s.doc.Timers[idx], true
}

// RemoveByName deletes the last timer stored under name. It reports whether
// anything was removed; nothing is written when no timer matched.
func (s *Store) RemoveByName(name string) (bool, error) {
	idx := s.lastIndex(name)
	if idx < 0 {
		return false, nil
	}
	s.doc.Timers = append(s.doc.Timers[:idx], s.doc.Timers[idx+1:]...)
	if err := s.save(); err != nil {
		return false, err
	}
	return true, nil
}

// RemoveAll deletes every timer and saves.
func (s *Store) RemoveAll() (int, error) {
	n := len(s.doc.Timers)
	s.doc.Timers = nil
	return n, s.save()
}

func (s *Store) lastIndex(name string) int {
	for i := len(s.doc.Timers) - 1; i >= 0; i-- {
		if s.doc.Timers[i].Name == name {
			return i
		}
	}
	return -1
}

// save writes to a sibling temp file and renames it over the store so a
// crash never leaves a truncated document.
func (s *Store) save() error {
	doc := s.doc
	if doc.Timers == nil {
		doc.Timers = []timer.Timer{}
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	tmp := s.path + tmpSuffix
	if err := os.WriteFile(tmp, data, filePerm); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace store: %w", err)
	}
	return nil
}
