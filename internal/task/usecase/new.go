package usecase

import (
	"sync"
	"time"

	"todo-manager/internal/task"
	"todo-manager/internal/task/repository"
	"todo-manager/pkg/log"
)

// implUseCase is the private implementation of task.UseCase.
// mu serializes every operation so each one runs to completion, persist included,
// before the next starts.
type implUseCase struct {
	mu         sync.Mutex
	tasks      []task.Task
	categories map[string]struct{}
	lastID     int64

	repo     repository.Repository
	calendar Calendar
	calOpts  CalendarOptions
	now      func() time.Time
	l        log.Logger
}

// New creates a task UseCase with an empty list. cal may be nil, which disables Schedule.
func New(l log.Logger, repo repository.Repository, cal Calendar, calOpts CalendarOptions) *implUseCase {
	if calOpts.EventDuration <= 0 {
		calOpts.EventDuration = DefaultEventDuration
	}
	return &implUseCase{
		tasks:      []task.Task{},
		categories: make(map[string]struct{}),
		repo:       repo,
		calendar:   cal,
		calOpts:    calOpts,
		now:        time.Now,
		l:          l,
	}
}

var _ task.UseCase = (*implUseCase)(nil)
