package task

import "context"

// UseCase is the task store: it owns the ordered task list and the derived category set.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// Load replaces in-memory state with what the repository holds. Call once at startup.
	// Storage errors are logged and leave the store empty.
	Load(ctx context.Context)

	Add(ctx context.Context, input AddInput) (Task, error)
	Get(ctx context.Context, id int64) (Task, error)
	Edit(ctx context.Context, input EditInput) (Task, error)
	ToggleComplete(ctx context.Context, id int64) (Task, error)
	Delete(ctx context.Context, id int64) error
	// ClearCompleted removes every completed task and returns how many were removed.
	ClearCompleted(ctx context.Context) (int, error)

	// List returns matching tasks in insertion order. It never fails; unknown
	// categories yield an empty slice.
	List(ctx context.Context, filter Filter) []Task
	// Categories returns the distinct non-empty categories, sorted ascending.
	Categories(ctx context.Context) []string

	// Schedule creates a calendar event for a task's due date.
	Schedule(ctx context.Context, id int64) (ScheduleOutput, error)
}
