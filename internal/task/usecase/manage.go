package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"smartodo/internal/task"
	"smartodo/internal/task/repository"
	"smartodo/pkg/taskparse"
)

func (uc *implUseCase) List(ctx context.Context, input task.ListInput) (task.ListOutput, error) {
	if input.Category != "" {
		if _, ok := taskparse.ParseCategory(input.Category); !ok {
			return task.ListOutput{}, task.ErrBadCategory
		}
	}

	tasks, total, err := uc.repo.List(ctx, repository.ListOptions{
		Category:  input.Category,
		Completed: input.Completed,
		DueBefore: input.DueBefore,
		Limit:     input.Limit,
		Offset:    input.Offset,
	})
	if err != nil {
		return task.ListOutput{}, fmt.Errorf("list tasks: %w", err)
	}

	return task.ListOutput{
		Tasks:  tasks,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}

func (uc *implUseCase) Detail(ctx context.Context, id string) (task.CreateOutput, error) {
	t, err := uc.repo.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return task.CreateOutput{}, task.ErrNotFound
	}
	if err != nil {
		return task.CreateOutput{}, fmt.Errorf("get task: %w", err)
	}
	return task.CreateOutput{Task: t}, nil
}

func (uc *implUseCase) Update(ctx context.Context, input task.UpdateInput) (task.UpdateOutput, error) {
	if err := validateUpdate(input); err != nil {
		return task.UpdateOutput{}, err
	}

	updated, err := uc.repo.Update(ctx, input.ID, repository.UpdateOptions{
		Title:     input.Title,
		Details:   input.Details,
		DueDate:   input.DueDate,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Category:  input.Category,
		Completed: input.Completed,
	})
	if errors.Is(err, repository.ErrNotFound) {
		return task.UpdateOutput{}, task.ErrNotFound
	}
	if err != nil {
		return task.UpdateOutput{}, fmt.Errorf("update task: %w", err)
	}
	return task.UpdateOutput{Task: updated}, nil
}

func validateUpdate(input task.UpdateInput) error {
	if input.Category != nil {
		if _, ok := taskparse.ParseCategory(*input.Category); !ok {
			return task.ErrBadCategory
		}
	}
	if input.DueDate != nil && *input.DueDate != "" {
		if _, err := time.Parse("2006-01-02", *input.DueDate); err != nil {
			return task.ErrBadDateFormat
		}
	}
	for _, tod := range []*string{input.StartTime, input.EndTime} {
		if tod != nil && *tod != "" {
			if _, err := time.Parse("15:04", *tod); err != nil {
				return task.ErrBadTimeFormat
			}
		}
	}
	return nil
}

func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	err := uc.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return task.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}
