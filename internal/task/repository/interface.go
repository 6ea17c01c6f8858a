package repository

import (
	"context"

	"todo-manager/internal/task"
)

// Repository persists the full task sequence as one unit.
type Repository interface {
	// Load returns the stored sequence in insertion order. A missing or
	// unreadable snapshot yields an empty sequence, not an error.
	Load(ctx context.Context) ([]task.Task, error)
	// Save replaces the stored sequence.
	Save(ctx context.Context, tasks []task.Task) error
}
