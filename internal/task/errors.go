package task

import "errors"

// Domain-specific errors for the task package.
var (
	// ErrEmptyText is the validation failure for add and edit.
	ErrEmptyText    = errors.New("task text is empty")
	ErrTaskNotFound = errors.New("task not found")

	ErrNoDueDate         = errors.New("task has no due date")
	ErrSchedulerDisabled = errors.New("calendar scheduling is not configured")
)
