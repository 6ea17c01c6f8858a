package kv

import (
	"fmt"

	"todo-manager/internal/task/repository"
	"todo-manager/pkg/kvstore"
	"todo-manager/pkg/log"
)

// DefaultKey is the slot the task list lives under.
const DefaultKey = "tasks"

type implRepository struct {
	store kvstore.Store
	key   string
	l     log.Logger
}

// New creates a Repository that keeps the whole task list as JSON under key.
func New(store kvstore.Store, key string, l log.Logger) repository.Repository {
	if store == nil {
		panic("task/repository/kv: store is required")
	}
	if key == "" {
		key = DefaultKey
	}
	return &implRepository{store: store, key: key, l: l}
}

// dsn returns a method-scoped prefix for log lines.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/kv.%s", method)
}
