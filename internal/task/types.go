package task

import (
	"time"

	"smartodo/internal/model"
)

// CreateInput is the input for creating a task from free-form text.
type CreateInput struct {
	Text string    // natural language task description
	Now  time.Time // reference instant for relative dates; zero means wall clock
}

// CreateOutput is the result of task creation.
type CreateOutput struct {
	Task model.Task
}

// ListInput filters the task listing. Zero values mean "no filter".
type ListInput struct {
	Category  string
	Completed *bool
	DueBefore string // "2006-01-02", inclusive
	Limit     int
	Offset    int
}

// ListOutput is a page of tasks.
type ListOutput struct {
	Tasks  []model.Task
	Total  int
	Limit  int
	Offset int
}

// UpdateInput is a partial update; nil fields are left untouched.
type UpdateInput struct {
	ID        string
	Title     *string
	Details   *string
	DueDate   *string // "2006-01-02", empty string clears
	StartTime *string // "15:04", empty string clears
	EndTime   *string
	Category  *string
	Completed *bool
}

// UpdateOutput is the updated task.
type UpdateOutput struct {
	Task model.Task
}

// BatchUpdateItem is one entry of a batch update request.
type BatchUpdateItem struct {
	ID     string
	Update UpdateInput
}

// BatchUpdateResult reports the outcome for a single batch item.
type BatchUpdateResult struct {
	ID    string
	Error string // empty on success
	Task  *model.Task
}

// BatchUpdateOutput aggregates per-item results; the batch itself never
// fails part-way, failed items are reported and the rest proceed.
type BatchUpdateOutput struct {
	Results   []BatchUpdateResult
	Succeeded int
	Failed    int
}

// ExportOutput is the full store as a portable JSON document.
type ExportOutput struct {
	Document []byte
	Count    int
}

// ImportInput carries a raw JSON document to import.
type ImportInput struct {
	Document []byte
	Replace  bool // true swaps the store wholesale, false appends
}

// ImportOutput reports how many tasks were imported.
type ImportOutput struct {
	Count int
}
