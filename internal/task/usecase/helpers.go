package usecase

import (
	"context"

	"todo-manager/internal/task"
)

// indexOf returns the position of the task with id, or -1.
func (uc *implUseCase) indexOf(id int64) int {
	for i := range uc.tasks {
		if uc.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// nextID derives an id from the current time in milliseconds, bumped past the
// last issued id so ids stay unique within the same millisecond and after restarts.
func (uc *implUseCase) nextID() int64 {
	id := uc.now().UnixMilli()
	if id <= uc.lastID {
		id = uc.lastID + 1
	}
	uc.lastID = id
	return id
}

// addCategory unions a single category into the set.
func (uc *implUseCase) addCategory(category string) {
	if category != "" {
		uc.categories[category] = struct{}{}
	}
}

// recomputeCategories rebuilds the set from the current tasks.
func (uc *implUseCase) recomputeCategories() {
	clear(uc.categories)
	for _, t := range uc.tasks {
		uc.addCategory(t.Category)
	}
}

// persist writes the full list. A failed write leaves the in-memory change in
// place; it is logged and the next mutation writes the list again.
// Saving ignores caller cancellation.
func (uc *implUseCase) persist(ctx context.Context, op string) {
	snapshot := make([]task.Task, len(uc.tasks))
	for i, t := range uc.tasks {
		snapshot[i] = t.Clone()
	}
	if err := uc.repo.Save(context.WithoutCancel(ctx), snapshot); err != nil {
		uc.l.Warnf(ctx, "uc.%s Save (continuing in memory): %v", op, err)
	}
}
