package model

import "smartodo/pkg/taskparse"

// Environment names the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Task is a persisted task record: a parsed draft plus identity, lifecycle
// timestamps and the reminder flags the scanner maintains.
type Task struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`          // raw input, verbatim
	Details     string   `json:"details"`              // input with links removed
	DueDate     string   `json:"due_date,omitempty"`   // "2006-01-02", empty when unresolved
	StartTime   string   `json:"start_time,omitempty"` // "15:04"
	EndTime     string   `json:"end_time,omitempty"`
	Category    string   `json:"category"`
	Links       []string `json:"links,omitempty"`

	Completed        bool `json:"completed"`
	RemindedToday    bool `json:"reminded_today"`
	RemindedThreeDay bool `json:"reminded_three_day"`

	CreatedAt string `json:"created_at"` // RFC3339
	UpdatedAt string `json:"updated_at"`
}

// FromDraft converts a parse result into a Task. Identity and timestamps are
// assigned by the repository on create.
func FromDraft(d taskparse.Draft) Task {
	t := Task{
		Title:       d.Title,
		Description: d.Description,
		Details:     d.Details,
		Category:    string(d.Category),
		Links:       d.Links,
	}
	if d.DueDate != nil {
		t.DueDate = d.DueDate.Format("2006-01-02")
	}
	if d.StartTime != nil {
		t.StartTime = d.StartTime.String()
	}
	if d.EndTime != nil {
		t.EndTime = d.EndTime.String()
	}
	return t
}
