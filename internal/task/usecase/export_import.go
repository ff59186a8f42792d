package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/tidwall/gjson"

	"smartodo/internal/model"
	"smartodo/internal/task"
)

// exportDocument is the portable envelope written by Export and accepted
// back by Import.
type exportDocument struct {
	ExportedAt string       `json:"exported_at"`
	Count      int          `json:"count"`
	Tasks      []model.Task `json:"tasks"`
}

func (uc *implUseCase) Export(ctx context.Context) (task.ExportOutput, error) {
	tasks, err := uc.repo.All(ctx)
	if err != nil {
		return task.ExportOutput{}, fmt.Errorf("read store for export: %w", err)
	}

	doc, err := json.MarshalIndent(exportDocument{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(tasks),
		Tasks:      tasks,
	}, "", "  ")
	if err != nil {
		return task.ExportOutput{}, fmt.Errorf("marshal export: %w", err)
	}

	return task.ExportOutput{Document: doc, Count: len(tasks)}, nil
}

// Import accepts either a bare task array or a full export envelope; gjson
// keeps the shape detection tolerant of extra fields and ordering. Items
// that fail to decode as tasks are skipped with a warning rather than
// aborting the whole import.
func (uc *implUseCase) Import(ctx context.Context, input task.ImportInput) (task.ImportOutput, error) {
	if !gjson.ValidBytes(input.Document) {
		return task.ImportOutput{}, task.ErrBadImport
	}

	root := gjson.ParseBytes(input.Document)
	items := root
	if !root.IsArray() {
		items = root.Get("tasks")
		if !items.IsArray() {
			return task.ImportOutput{}, task.ErrBadImport
		}
	}

	var tasks []model.Task
	for _, item := range items.Array() {
		var t model.Task
		if err := json.Unmarshal([]byte(item.Raw), &t); err != nil {
			uc.l.Warnf(ctx, "Import: skipping undecodable item: %v", err)
			continue
		}
		if t.Title == "" && t.Description == "" {
			uc.l.Warnf(ctx, "Import: skipping item with no title or description")
			continue
		}
		tasks = append(tasks, t)
	}

	if input.Replace {
		if err := uc.repo.ReplaceAll(ctx, tasks); err != nil {
			return task.ImportOutput{}, fmt.Errorf("replace store: %w", err)
		}
	} else if err := uc.repo.Append(ctx, tasks); err != nil {
		return task.ImportOutput{}, fmt.Errorf("append to store: %w", err)
	}

	uc.l.Infof(ctx, "Import: stored %d tasks (replace=%v)", len(tasks), input.Replace)
	return task.ImportOutput{Count: len(tasks)}, nil
}
