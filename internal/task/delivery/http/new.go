package http

import (
	"time"

	"todo-manager/internal/task"
	"todo-manager/pkg/duedate"
	"todo-manager/pkg/log"
)

type handler struct {
	l      log.Logger
	uc     task.UseCase
	parser *duedate.Parser
	now    func() time.Time
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase, parser *duedate.Parser) *handler {
	return &handler{
		l:      l,
		uc:     uc,
		parser: parser,
		now:    time.Now,
	}
}
