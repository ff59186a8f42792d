package task

import "context"

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Create parses free-form text into a task draft and persists it.
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)

	List(ctx context.Context, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, id string) (CreateOutput, error)
	Update(ctx context.Context, input UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, id string) error

	// BatchUpdate applies partial updates item by item, continuing past
	// per-item failures.
	BatchUpdate(ctx context.Context, items []BatchUpdateItem) (BatchUpdateOutput, error)

	Export(ctx context.Context) (ExportOutput, error)
	Import(ctx context.Context, input ImportInput) (ImportOutput, error)
}
