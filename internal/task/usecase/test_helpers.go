package usecase

import (
	"context"
	"fmt"

	"smartodo/internal/model"
	"smartodo/internal/task/repository"
)

// mock dependencies shared by the usecase tests

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockRepo is an in-memory Repository without persistence.
type mockRepo struct {
	tasks    []model.Task
	failNext bool
	seq      int
}

var _ repository.Repository = (*mockRepo)(nil)

func (m *mockRepo) fail() error {
	if m.failNext {
		m.failNext = false
		return fmt.Errorf("store unavailable")
	}
	return nil
}

func (m *mockRepo) Create(_ context.Context, t model.Task) (model.Task, error) {
	if err := m.fail(); err != nil {
		return model.Task{}, err
	}
	m.seq++
	t.ID = fmt.Sprintf("task-%d", m.seq)
	t.CreatedAt = "2024-06-10T00:00:00Z"
	t.UpdatedAt = t.CreatedAt
	m.tasks = append(m.tasks, t)
	return t, nil
}

func (m *mockRepo) Get(_ context.Context, id string) (model.Task, error) {
	for _, t := range m.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return model.Task{}, repository.ErrNotFound
}

func (m *mockRepo) List(_ context.Context, opt repository.ListOptions) ([]model.Task, int, error) {
	if err := m.fail(); err != nil {
		return nil, 0, err
	}
	var out []model.Task
	for _, t := range m.tasks {
		if opt.Category != "" && t.Category != opt.Category {
			continue
		}
		if opt.Completed != nil && t.Completed != *opt.Completed {
			continue
		}
		out = append(out, t)
	}
	return out, len(out), nil
}

func (m *mockRepo) Update(_ context.Context, id string, opt repository.UpdateOptions) (model.Task, error) {
	if err := m.fail(); err != nil {
		return model.Task{}, err
	}
	for i := range m.tasks {
		if m.tasks[i].ID != id {
			continue
		}
		if opt.Title != nil {
			m.tasks[i].Title = *opt.Title
		}
		if opt.Completed != nil {
			m.tasks[i].Completed = *opt.Completed
		}
		if opt.DueDate != nil {
			m.tasks[i].DueDate = *opt.DueDate
		}
		if opt.Category != nil {
			m.tasks[i].Category = *opt.Category
		}
		return m.tasks[i], nil
	}
	return model.Task{}, repository.ErrNotFound
}

func (m *mockRepo) Delete(_ context.Context, id string) error {
	for i := range m.tasks {
		if m.tasks[i].ID == id {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *mockRepo) All(_ context.Context) ([]model.Task, error) {
	if err := m.fail(); err != nil {
		return nil, err
	}
	return append([]model.Task{}, m.tasks...), nil
}

func (m *mockRepo) Append(_ context.Context, tasks []model.Task) error {
	if err := m.fail(); err != nil {
		return err
	}
	m.tasks = append(m.tasks, tasks...)
	return nil
}

func (m *mockRepo) ReplaceAll(_ context.Context, tasks []model.Task) error {
	if err := m.fail(); err != nil {
		return err
	}
	m.tasks = tasks
	return nil
}
