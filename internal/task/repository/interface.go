package repository

import (
	"context"

	"smartodo/internal/model"
)

// Repository is the interface for task persistence.
type Repository interface {
	Create(ctx context.Context, task model.Task) (model.Task, error)
	Get(ctx context.Context, id string) (model.Task, error)
	// List returns the matching page and the total match count before
	// pagination.
	List(ctx context.Context, opt ListOptions) ([]model.Task, int, error)
	Update(ctx context.Context, id string, opt UpdateOptions) (model.Task, error)
	Delete(ctx context.Context, id string) error

	// All returns every stored task in insertion order.
	All(ctx context.Context) ([]model.Task, error)

	// Append adds tasks preserving their ids; ReplaceAll swaps the whole
	// store. Both serve the import path.
	Append(ctx context.Context, tasks []model.Task) error
	ReplaceAll(ctx context.Context, tasks []model.Task) error
}
