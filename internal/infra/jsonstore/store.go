// Package jsonstore provides a JSON file-based implementation of
// domain.TaskRepository.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jbw/roadmap/internal/domain"
)

// Store implements domain.TaskRepository using a single JSON file
// mapping task id → task. The file does not need to exist; a missing
// file reads as an empty collection.
type Store struct {
	path string
}

// New creates a new Store for the given file path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Get retrieves a task by ID. Returns (nil, nil) when the task does
// not exist.
func (s *Store) Get(id string) (*domain.Task, error) {
	tasks, err := s.read()
	if err != nil {
		return nil, err
	}
	return tasks[id], nil
}

// List retrieves tasks matching the filter, ordered by
// (priority rank, milestone, id).
func (s *Store) List(filter domain.TaskFilter) ([]*domain.Task, error) {
	all, err := s.read()
	if err != nil {
		return nil, err
	}

	tasks := make([]*domain.Task, 0, len(all))
	for _, t := range all {
		if filter.Matches(t) {
			tasks = append(tasks, t)
		}
	}
	domain.SortTasks(tasks)
	return tasks, nil
}

// All returns the full id → task mapping.
func (s *Store) All() (map[string]*domain.Task, error) {
	return s.read()
}

// Save persists the task by rewriting the whole collection. The
// in-memory task is untouched if the write fails, so the caller may
// retry.
func (s *Store) Save(task *domain.Task) error {
	tasks, err := s.read()
	if err != nil {
		return err
	}
	tasks[task.ID] = task
	return s.write(tasks)
}

// SaveAll persists the mapping as the whole collection. An empty map
// writes an empty JSON object, not nothing.
func (s *Store) SaveAll(tasks map[string]*domain.Task) error {
	if tasks == nil {
		tasks = map[string]*domain.Task{}
	}
	for id, t := range tasks {
		t.ID = id
	}
	return s.write(tasks)
}

// read loads and normalizes the full collection. A missing file is an
// empty collection, not an error; malformed JSON is surfaced as-is.
func (s *Store) read() (map[string]*domain.Task, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]*domain.Task{}, nil
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}

	var tasks map[string]*domain.Task
	if err := json.Unmarshal(content, &tasks); err != nil {
		return nil, fmt.Errorf("parse store file: %w", err)
	}
	if tasks == nil {
		tasks = map[string]*domain.Task{}
	}

	// The map key is authoritative for the ID.
	for id, t := range tasks {
		t.ID = id
		t.Normalize()
	}

	return tasks, nil
}

// write serializes the full collection, overwriting the file via a
// temp-file-then-rename so a failed write never truncates the store.
func (s *Store) write(tasks map[string]*domain.Task) error {
	for _, t := range tasks {
		t.Normalize()
	}

	content, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

// Ensure Store implements TaskRepository.
var _ domain.TaskRepository = (*Store)(nil)
