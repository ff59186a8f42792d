package reminder

import (
	"context"
	"testing"
	"time"

	"smartodo/internal/model"
	"smartodo/internal/task/repository"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any)                  {}
func (nopLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Info(ctx context.Context, args ...any)                   {}
func (nopLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (nopLogger) Warn(ctx context.Context, args ...any)                   {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (nopLogger) Error(ctx context.Context, args ...any)                  {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) DPanic(ctx context.Context, args ...any)                 {}
func (nopLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Panic(ctx context.Context, args ...any)                  {}
func (nopLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Fatal(ctx context.Context, args ...any)                  {}
func (nopLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type memRepo struct {
	tasks []model.Task
}

func (m *memRepo) Create(_ context.Context, t model.Task) (model.Task, error) { return t, nil }

func (m *memRepo) Get(_ context.Context, id string) (model.Task, error) {
	for _, t := range m.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return model.Task{}, repository.ErrNotFound
}

func (m *memRepo) List(_ context.Context, _ repository.ListOptions) ([]model.Task, int, error) {
	return m.tasks, len(m.tasks), nil
}

func (m *memRepo) Update(_ context.Context, id string, opt repository.UpdateOptions) (model.Task, error) {
	for i := range m.tasks {
		if m.tasks[i].ID != id {
			continue
		}
		if opt.RemindedToday != nil {
			m.tasks[i].RemindedToday = *opt.RemindedToday
		}
		if opt.RemindedThreeDay != nil {
			m.tasks[i].RemindedThreeDay = *opt.RemindedThreeDay
		}
		return m.tasks[i], nil
	}
	return model.Task{}, repository.ErrNotFound
}

func (m *memRepo) Delete(_ context.Context, _ string) error               { return nil }
func (m *memRepo) All(_ context.Context) ([]model.Task, error)            { return m.tasks, nil }
func (m *memRepo) Append(_ context.Context, tasks []model.Task) error     { return nil }
func (m *memRepo) ReplaceAll(_ context.Context, tasks []model.Task) error { return nil }

type fired struct {
	taskID string
	kind   Kind
}

type fakeNotifier struct {
	fired []fired
}

func (f *fakeNotifier) Notify(_ context.Context, t model.Task, kind Kind) error {
	f.fired = append(f.fired, fired{taskID: t.ID, kind: kind})
	return nil
}

func TestScan(t *testing.T) {
	now := time.Date(2024, 6, 10, 8, 0, 0, 0, time.Local)

	tests := []struct {
		name  string
		tasks []model.Task
		want  []fired
	}{
		{
			name: "due today fires due_today",
			tasks: []model.Task{
				{ID: "a", Title: "开会", DueDate: "2024-06-10"},
			},
			want: []fired{{taskID: "a", kind: KindDueToday}},
		},
		{
			name: "due in three days fires advance reminder",
			tasks: []model.Task{
				{ID: "b", Title: "交作业", DueDate: "2024-06-13"},
			},
			want: []fired{{taskID: "b", kind: KindDueThreeDay}},
		},
		{
			name: "other dates are silent",
			tasks: []model.Task{
				{ID: "c", DueDate: "2024-06-11"},
				{ID: "d", DueDate: "2024-06-20"},
				{ID: "e", DueDate: "2024-06-09"}, // overdue, no retro-reminder
			},
			want: nil,
		},
		{
			name: "completed and undated tasks are skipped",
			tasks: []model.Task{
				{ID: "f", DueDate: "2024-06-10", Completed: true},
				{ID: "g"},
			},
			want: nil,
		},
		{
			name: "already-reminded tasks do not re-fire",
			tasks: []model.Task{
				{ID: "h", DueDate: "2024-06-10", RemindedToday: true},
				{ID: "i", DueDate: "2024-06-13", RemindedThreeDay: true},
			},
			want: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := &memRepo{tasks: tc.tasks}
			notifier := &fakeNotifier{}
			s := NewScanner(nopLogger{}, repo, time.Minute, notifier)

			s.scan(context.Background(), now)

			if len(notifier.fired) != len(tc.want) {
				t.Fatalf("fired %v, want %v", notifier.fired, tc.want)
			}
			for i, want := range tc.want {
				if notifier.fired[i] != want {
					t.Errorf("fired[%d] = %v, want %v", i, notifier.fired[i], want)
				}
			}
		})
	}
}

func TestScan_FiresOncePerTask(t *testing.T) {
	now := time.Date(2024, 6, 10, 8, 0, 0, 0, time.Local)
	repo := &memRepo{tasks: []model.Task{
		{ID: "a", Title: "开会", DueDate: "2024-06-10"},
	}}
	notifier := &fakeNotifier{}
	s := NewScanner(nopLogger{}, repo, time.Minute, notifier)

	s.scan(context.Background(), now)
	s.scan(context.Background(), now)
	s.scan(context.Background(), now.Add(2*time.Hour))

	if len(notifier.fired) != 1 {
		t.Fatalf("fired %d times, want exactly once", len(notifier.fired))
	}
}

func TestScan_ThreeDayThenDueDay(t *testing.T) {
	repo := &memRepo{tasks: []model.Task{
		{ID: "a", Title: "交作业", DueDate: "2024-06-13"},
	}}
	notifier := &fakeNotifier{}
	s := NewScanner(nopLogger{}, repo, time.Minute, notifier)

	s.scan(context.Background(), time.Date(2024, 6, 10, 8, 0, 0, 0, time.Local))
	s.scan(context.Background(), time.Date(2024, 6, 13, 8, 0, 0, 0, time.Local))

	want := []fired{
		{taskID: "a", kind: KindDueThreeDay},
		{taskID: "a", kind: KindDueToday},
	}
	if len(notifier.fired) != len(want) {
		t.Fatalf("fired %v, want %v", notifier.fired, want)
	}
	for i := range want {
		if notifier.fired[i] != want[i] {
			t.Errorf("fired[%d] = %v, want %v", i, notifier.fired[i], want[i])
		}
	}
}

func TestMessage(t *testing.T) {
	got := message(model.Task{Title: "开会", StartTime: "14:00", EndTime: "16:00"}, KindDueToday)
	want := "⏰ 任务提醒: 开会 (今天到期) 14:00-16:00"
	if got != want {
		t.Errorf("message() = %q, want %q", got, want)
	}

	got = message(model.Task{Title: "交作业"}, KindDueThreeDay)
	want = "⏰ 任务提醒: 交作业 (3天后到期)"
	if got != want {
		t.Errorf("message() = %q, want %q", got, want)
	}
}
