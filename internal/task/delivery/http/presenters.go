package http

import (
	"errors"
	"time"

	"smartodo/internal/model"
	"smartodo/internal/task"
)

// --- Request DTOs ---

type createReq struct {
	Text string `json:"text" binding:"required,min=1,max=2000"`
	Now  string `json:"now"  binding:"omitempty"` // RFC3339 reference instant, defaults to wall clock
}

func (r createReq) validate() error {
	if r.Now != "" {
		if _, err := time.Parse(time.RFC3339, r.Now); err != nil {
			return errors.New("now must be RFC3339")
		}
	}
	return nil
}

func (r createReq) toInput() task.CreateInput {
	input := task.CreateInput{Text: r.Text}
	if r.Now != "" {
		input.Now, _ = time.Parse(time.RFC3339, r.Now)
	}
	return input
}

// ---

type listReq struct {
	Category  string `form:"category"`
	Completed *bool  `form:"completed"`
	DueBefore string `form:"due_before"`
	Limit     int    `form:"limit"`
	Offset    int    `form:"offset"`
}

func (r listReq) validate() error {
	if r.DueBefore != "" {
		if _, err := time.Parse("2006-01-02", r.DueBefore); err != nil {
			return errors.New("due_before must be YYYY-MM-DD")
		}
	}
	return nil
}

func (r listReq) toInput() task.ListInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	return task.ListInput{
		Category:  r.Category,
		Completed: r.Completed,
		DueBefore: r.DueBefore,
		Limit:     limit,
		Offset:    offset,
	}
}

// ---

type updateReq struct {
	ID        string  `json:"-"` // populated from URI param
	Title     *string `json:"title"      binding:"omitempty,max=255"`
	Details   *string `json:"details"    binding:"omitempty,max=2000"`
	DueDate   *string `json:"due_date"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Category  *string `json:"category"`
	Completed *bool   `json:"completed"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() task.UpdateInput {
	return task.UpdateInput{
		ID:        r.ID,
		Title:     r.Title,
		Details:   r.Details,
		DueDate:   r.DueDate,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Category:  r.Category,
		Completed: r.Completed,
	}
}

// ---

type batchItemReq struct {
	ID string `json:"id" binding:"required"`
	updateReq
}

type batchUpdateReq struct {
	Items []batchItemReq `json:"items" binding:"required,min=1,max=100,dive"`
}

func (r batchUpdateReq) toInput() []task.BatchUpdateItem {
	items := make([]task.BatchUpdateItem, len(r.Items))
	for i, item := range r.Items {
		items[i] = task.BatchUpdateItem{
			ID:     item.ID,
			Update: item.updateReq.toInput(),
		}
	}
	return items
}

// --- Response DTOs ---

type taskResp struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Details     string   `json:"details"`
	DueDate     string   `json:"due_date,omitempty"`
	StartTime   string   `json:"start_time,omitempty"`
	EndTime     string   `json:"end_time,omitempty"`
	Category    string   `json:"category"`
	Links       []string `json:"links,omitempty"`
	Completed   bool     `json:"completed"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Details:     t.Details,
		DueDate:     t.DueDate,
		StartTime:   t.StartTime,
		EndTime:     t.EndTime,
		Category:    t.Category,
		Links:       t.Links,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

type createResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newCreateResp(out task.CreateOutput) createResp {
	return createResp{Task: newTaskResp(out.Task)}
}

type listResp struct {
	Tasks  []taskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{
		Tasks:  tasks,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type updateResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newUpdateResp(out task.UpdateOutput) updateResp {
	return updateResp{Task: newTaskResp(out.Task)}
}

type batchItemResp struct {
	ID    string    `json:"id"`
	Error string    `json:"error,omitempty"`
	Task  *taskResp `json:"task,omitempty"`
}

type batchUpdateResp struct {
	Results   []batchItemResp `json:"results"`
	Succeeded int             `json:"succeeded"`
	Failed    int             `json:"failed"`
}

func (h *handler) newBatchUpdateResp(out task.BatchUpdateOutput) batchUpdateResp {
	results := make([]batchItemResp, len(out.Results))
	for i, r := range out.Results {
		results[i] = batchItemResp{ID: r.ID, Error: r.Error}
		if r.Task != nil {
			resp := newTaskResp(*r.Task)
			results[i].Task = &resp
		}
	}
	return batchUpdateResp{
		Results:   results,
		Succeeded: out.Succeeded,
		Failed:    out.Failed,
	}
}

type importResp struct {
	Imported int `json:"imported"`
}

func (h *handler) newImportResp(out task.ImportOutput) importResp {
	return importResp{Imported: out.Count}
}
