package usecase

import (
	"context"
	"slices"

	"todo-manager/internal/task"
)

// List returns tasks matching filter in insertion order.
func (uc *implUseCase) List(ctx context.Context, filter task.Filter) []task.Task {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	out := make([]task.Task, 0, len(uc.tasks))
	for _, t := range uc.tasks {
		if filter.Match(t) {
			out = append(out, t.Clone())
		}
	}
	return out
}

// Categories returns the category set sorted ascending.
func (uc *implUseCase) Categories(ctx context.Context) []string {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	out := make([]string, 0, len(uc.categories))
	for c := range uc.categories {
		out = append(out, c)
	}
	slices.Sort(out)
	return out
}
