package usecase

import (
	"context"

	"todo-manager/internal/task"
)

// Load replaces the in-memory list with the persisted one. A repository error
// is logged and the store starts empty, running in memory until a save succeeds.
func (uc *implUseCase) Load(ctx context.Context) {
	tasks, err := uc.repo.Load(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Load Load (starting empty): %v", err)
		tasks = nil
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if tasks == nil {
		tasks = []task.Task{}
	}
	uc.tasks = tasks
	uc.lastID = 0
	for _, t := range tasks {
		if t.ID > uc.lastID {
			uc.lastID = t.ID
		}
	}
	uc.recomputeCategories()

	uc.l.Infof(ctx, "uc.Load: restored %d tasks, %d categories", len(uc.tasks), len(uc.categories))
}
