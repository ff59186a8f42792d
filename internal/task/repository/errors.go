package repository

import "errors"

// ErrNotFound is returned when no task with the given id exists.
var ErrNotFound = errors.New("task not found in store")
