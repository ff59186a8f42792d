// Package reminder scans the task store on an interval and fires one-shot
// due-date notifications: once when a task is 3 days out, once on the due
// day itself. Fired reminders are recorded on the task so restarts do not
// re-notify.
package reminder

import (
	"context"
	"time"

	"smartodo/internal/model"
	"smartodo/internal/task/repository"
	"smartodo/pkg/datemath"
	"smartodo/pkg/log"
)

// Scanner periodically checks stored tasks against the wall clock.
type Scanner struct {
	l         log.Logger
	repo      repository.Repository
	notifiers []Notifier
	interval  time.Duration
}

func NewScanner(l log.Logger, repo repository.Repository, interval time.Duration, notifiers ...Notifier) *Scanner {
	return &Scanner{
		l:         l,
		repo:      repo,
		notifiers: notifiers,
		interval:  interval,
	}
}

// Run scans immediately, then on every tick until ctx is canceled.
func (s *Scanner) Run(ctx context.Context) {
	s.l.Infof(ctx, "reminder scanner started, interval %s", s.interval)

	s.scan(ctx, time.Now())

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.l.Infof(context.Background(), "reminder scanner stopped")
			return
		case now := <-ticker.C:
			s.scan(ctx, now)
		}
	}
}

// scan fires pending reminders for the given instant. Exported behavior is
// per-day: a task due on now's date triggers the due-today reminder, a task
// due exactly 3 days out triggers the advance reminder. Each fires at most
// once per task.
func (s *Scanner) scan(ctx context.Context, now time.Time) {
	tasks, err := s.repo.All(ctx)
	if err != nil {
		s.l.Errorf(ctx, "reminder scan: read store: %v", err)
		return
	}

	today := now.Format("2006-01-02")
	threeDay := datemath.AddDays(now, 3).Format("2006-01-02")

	flag := func(b bool) *bool { return &b }

	for _, t := range tasks {
		if t.Completed || t.DueDate == "" {
			continue
		}

		switch {
		case t.DueDate == today && !t.RemindedToday:
			if _, err := s.repo.Update(ctx, t.ID, repository.UpdateOptions{RemindedToday: flag(true)}); err != nil {
				s.l.Errorf(ctx, "reminder scan: mark %s reminded: %v", t.ID, err)
				continue
			}
			s.notify(ctx, t, KindDueToday)

		case t.DueDate == threeDay && !t.RemindedThreeDay:
			if _, err := s.repo.Update(ctx, t.ID, repository.UpdateOptions{RemindedThreeDay: flag(true)}); err != nil {
				s.l.Errorf(ctx, "reminder scan: mark %s reminded: %v", t.ID, err)
				continue
			}
			s.notify(ctx, t, KindDueThreeDay)
		}
	}
}

func (s *Scanner) notify(ctx context.Context, t model.Task, kind Kind) {
	for _, n := range s.notifiers {
		if err := n.Notify(ctx, t, kind); err != nil {
			s.l.Errorf(ctx, "reminder notify %s: %v", t.ID, err)
		}
	}
}
