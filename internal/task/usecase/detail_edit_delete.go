package usecase

import (
	"context"
	"slices"
	"strings"

	"todo-manager/internal/task"
)

// Get returns a single task. Returns ErrTaskNotFound when absent.
func (uc *implUseCase) Get(ctx context.Context, id int64) (task.Task, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	i := uc.indexOf(id)
	if i < 0 {
		return task.Task{}, task.ErrTaskNotFound
	}
	return uc.tasks[i].Clone(), nil
}

// Edit overwrites text, due date and category. The id is checked before the text.
func (uc *implUseCase) Edit(ctx context.Context, input task.EditInput) (task.Task, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	i := uc.indexOf(input.ID)
	if i < 0 {
		return task.Task{}, task.ErrTaskNotFound
	}

	text := strings.TrimSpace(input.Text)
	if text == "" {
		return task.Task{}, task.ErrEmptyText
	}

	t := &uc.tasks[i]
	t.Text = text
	t.Category = task.NormalizeCategory(input.Category)
	t.DueAt = nil
	if input.DueAt != nil {
		due := *input.DueAt
		t.DueAt = &due
	}

	uc.recomputeCategories()
	uc.persist(ctx, "Edit")

	return t.Clone(), nil
}

// ToggleComplete flips the completed flag.
func (uc *implUseCase) ToggleComplete(ctx context.Context, id int64) (task.Task, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	i := uc.indexOf(id)
	if i < 0 {
		return task.Task{}, task.ErrTaskNotFound
	}

	uc.tasks[i].Completed = !uc.tasks[i].Completed
	uc.persist(ctx, "ToggleComplete")

	return uc.tasks[i].Clone(), nil
}

// Delete removes a task. Returns ErrTaskNotFound when absent.
func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	i := uc.indexOf(id)
	if i < 0 {
		return task.ErrTaskNotFound
	}

	uc.tasks = slices.Delete(uc.tasks, i, i+1)
	uc.recomputeCategories()
	uc.persist(ctx, "Delete")
	return nil
}

// ClearCompleted drops every completed task and reports how many went.
func (uc *implUseCase) ClearCompleted(ctx context.Context) (int, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	before := len(uc.tasks)
	uc.tasks = slices.DeleteFunc(uc.tasks, func(t task.Task) bool { return t.Completed })
	removed := before - len(uc.tasks)

	uc.recomputeCategories()
	uc.persist(ctx, "ClearCompleted")

	if removed > 0 {
		uc.l.Infof(ctx, "uc.ClearCompleted: removed %d tasks", removed)
	}
	return removed, nil
}
