package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyInput    = errors.New("input text is empty")
	ErrNotFound      = errors.New("task not found")
	ErrBadCategory   = errors.New("unknown category")
	ErrBadDateFormat = errors.New("date must be YYYY-MM-DD")
	ErrBadTimeFormat = errors.New("time must be HH:MM")
	ErrBadImport     = errors.New("import document is not a task list")
)
