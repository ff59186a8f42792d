// Package jsonfile persists tasks as a single JSON array on disk. The whole
// store is held in memory and rewritten atomically (temp file + rename) on
// every mutation, which is plenty for a single-user task list.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"smartodo/internal/model"
	"smartodo/internal/task/repository"
	pkgLog "smartodo/pkg/log"
)

type Store struct {
	l    pkgLog.Logger
	path string

	mu    sync.RWMutex
	tasks []model.Task
}

var _ repository.Repository = (*Store)(nil)

// New opens (or initializes) the store at path. A missing file reads as an
// empty store; it is created on the first write.
func New(path string, l pkgLog.Logger) (*Store, error) {
	s := &Store{l: l, path: path}
	if err := s.load(); err != nil {
		return nil, fmt.Errorf("jsonfile: load %s: %w", path, err)
	}
	s.l.Infof(context.Background(), "jsonfile: opened store %s with %d tasks", path, len(s.tasks))
	return s, nil
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, &s.tasks)
}

// persist rewrites the file. Callers must hold the write lock.
func (s *Store) persist() error {
	data, err := json.MarshalIndent(s.tasks, "", "  ")
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *Store) Create(ctx context.Context, task model.Task) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC().Format(time.RFC3339)
	task.ID = uuid.NewString()
	task.CreatedAt = now
	task.UpdatedAt = now

	s.tasks = append(s.tasks, task)
	if err := s.persist(); err != nil {
		s.tasks = s.tasks[:len(s.tasks)-1]
		return model.Task{}, err
	}
	return task, nil
}

func (s *Store) Get(_ context.Context, id string) (model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return model.Task{}, repository.ErrNotFound
}

func (s *Store) List(_ context.Context, opt repository.ListOptions) ([]model.Task, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []model.Task
	for _, t := range s.tasks {
		if opt.Category != "" && t.Category != opt.Category {
			continue
		}
		if opt.Completed != nil && t.Completed != *opt.Completed {
			continue
		}
		if opt.DueBefore != "" {
			// ISO dates compare correctly as strings; undated tasks
			// never match a due-before filter.
			if t.DueDate == "" || t.DueDate > opt.DueBefore {
				continue
			}
		}
		matched = append(matched, t)
	}

	total := len(matched)
	if opt.Offset > 0 {
		if opt.Offset >= total {
			return nil, total, nil
		}
		matched = matched[opt.Offset:]
	}
	if opt.Limit > 0 && len(matched) > opt.Limit {
		matched = matched[:opt.Limit]
	}
	return matched, total, nil
}

func (s *Store) Update(ctx context.Context, id string, opt repository.UpdateOptions) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}

		prev := s.tasks[i]
		applyUpdate(&s.tasks[i], opt)
		s.tasks[i].UpdatedAt = time.Now().UTC().Format(time.RFC3339)

		if err := s.persist(); err != nil {
			s.tasks[i] = prev
			return model.Task{}, err
		}
		return s.tasks[i], nil
	}
	return model.Task{}, repository.ErrNotFound
}

func applyUpdate(t *model.Task, opt repository.UpdateOptions) {
	if opt.Title != nil {
		t.Title = *opt.Title
	}
	if opt.Details != nil {
		t.Details = *opt.Details
	}
	if opt.DueDate != nil {
		t.DueDate = *opt.DueDate
		// A moved due date is a new deadline; reminders fire again.
		t.RemindedToday = false
		t.RemindedThreeDay = false
	}
	if opt.StartTime != nil {
		t.StartTime = *opt.StartTime
	}
	if opt.EndTime != nil {
		t.EndTime = *opt.EndTime
	}
	if opt.Category != nil {
		t.Category = *opt.Category
	}
	if opt.Completed != nil {
		t.Completed = *opt.Completed
	}
	if opt.RemindedToday != nil {
		t.RemindedToday = *opt.RemindedToday
	}
	if opt.RemindedThreeDay != nil {
		t.RemindedThreeDay = *opt.RemindedThreeDay
	}
}

func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		prev := s.tasks
		s.tasks = append(append([]model.Task{}, s.tasks[:i]...), s.tasks[i+1:]...)
		if err := s.persist(); err != nil {
			s.tasks = prev
			return err
		}
		return nil
	}
	return repository.ErrNotFound
}

func (s *Store) All(_ context.Context) ([]model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out, nil
}

func (s *Store) Append(_ context.Context, tasks []model.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC().Format(time.RFC3339)
	prev := s.tasks
	for _, t := range tasks {
		if t.ID == "" {
			t.ID = uuid.NewString()
		}
		if t.CreatedAt == "" {
			t.CreatedAt = now
		}
		t.UpdatedAt = now
		s.tasks = append(s.tasks, t)
	}
	if err := s.persist(); err != nil {
		s.tasks = prev
		return err
	}
	return nil
}

func (s *Store) ReplaceAll(_ context.Context, tasks []model.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC().Format(time.RFC3339)
	for i := range tasks {
		if tasks[i].ID == "" {
			tasks[i].ID = uuid.NewString()
		}
		if tasks[i].CreatedAt == "" {
			tasks[i].CreatedAt = now
		}
		if tasks[i].UpdatedAt == "" {
			tasks[i].UpdatedAt = now
		}
	}

	prev := s.tasks
	s.tasks = tasks
	if err := s.persist(); err != nil {
		s.tasks = prev
		return err
	}
	return nil
}
