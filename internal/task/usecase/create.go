package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"smartodo/internal/model"
	"smartodo/internal/task"
	"smartodo/pkg/taskparse"
)

// Create parses free-form text into a structured draft and persists it.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateInput) (task.CreateOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return task.CreateOutput{}, task.ErrEmptyInput
	}

	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}

	draft := uc.parseDraft(input.Text, now)
	uc.l.Infof(ctx, "Create: parsed %q -> title=%q category=%s due=%v",
		input.Text, draft.Title, draft.Category, draft.DueDate)

	created, err := uc.repo.Create(ctx, model.FromDraft(draft))
	if err != nil {
		return task.CreateOutput{}, fmt.Errorf("persist parsed task: %w", err)
	}
	return task.CreateOutput{Task: created}, nil
}

func (uc *implUseCase) parseDraft(text string, now time.Time) taskparse.Draft {
	if uc.parseCache == nil {
		return taskparse.Parse(text, now)
	}

	key := now.Format("2006-01-02") + "|" + text
	if draft, ok := uc.parseCache.Get(key); ok {
		return draft
	}
	draft := taskparse.Parse(text, now)
	uc.parseCache.Add(key, draft)
	return draft
}
