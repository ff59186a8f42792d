package usecase

import (
	"context"

	"smartodo/internal/task"
)

// BatchUpdate applies each item independently; a failed item is recorded and
// the rest of the batch proceeds.
func (uc *implUseCase) BatchUpdate(ctx context.Context, items []task.BatchUpdateItem) (task.BatchUpdateOutput, error) {
	out := task.BatchUpdateOutput{
		Results: make([]task.BatchUpdateResult, 0, len(items)),
	}

	for _, item := range items {
		update := item.Update
		update.ID = item.ID

		result, err := uc.Update(ctx, update)
		if err != nil {
			uc.l.Warnf(ctx, "BatchUpdate: item %s failed: %v", item.ID, err)
			out.Results = append(out.Results, task.BatchUpdateResult{ID: item.ID, Error: err.Error()})
			out.Failed++
			continue
		}

		t := result.Task
		out.Results = append(out.Results, task.BatchUpdateResult{ID: item.ID, Task: &t})
		out.Succeeded++
	}

	return out, nil
}
