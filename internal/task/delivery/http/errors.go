package http

import (
	"errors"

	"smartodo/internal/task"
	pkgErrors "smartodo/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unknown errors render as a generic 500 so internals never leak to clients.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrEmptyInput):
		return pkgErrors.NewHTTPError(400, "text must not be empty")
	case errors.Is(err, task.ErrBadCategory):
		return pkgErrors.NewHTTPError(400, "category must be one of study, work, personal, other")
	case errors.Is(err, task.ErrBadDateFormat):
		return pkgErrors.NewHTTPError(400, "due_date must be YYYY-MM-DD")
	case errors.Is(err, task.ErrBadTimeFormat):
		return pkgErrors.NewHTTPError(400, "start_time and end_time must be HH:MM")
	case errors.Is(err, task.ErrBadImport):
		return pkgErrors.NewHTTPError(400, "document must be a task array or an export envelope")
	case errors.Is(err, task.ErrNotFound):
		return pkgErrors.NewHTTPError(404, "task not found")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
