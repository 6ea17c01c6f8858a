package usecase

import (
	"context"
	"strings"

	"todo-manager/internal/task"
)

// Add creates a pending task. The category comes from the first #tag in the text.
func (uc *implUseCase) Add(ctx context.Context, input task.AddInput) (task.Task, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return task.Task{}, task.ErrEmptyText
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	t := task.Task{
		ID:       uc.nextID(),
		Text:     text,
		Category: task.CategoryFromText(text),
	}
	if input.DueAt != nil {
		due := *input.DueAt
		t.DueAt = &due
	}

	uc.tasks = append(uc.tasks, t)
	uc.addCategory(t.Category)
	uc.persist(ctx, "Add")

	return t.Clone(), nil
}
