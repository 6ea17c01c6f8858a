package kv

import (
	"context"
	"encoding/json"
	"fmt"

	"todo-manager/internal/task"
	repo "todo-manager/internal/task/repository"
)

// Load reads the snapshot. Absent or undecodable snapshots are logged and treated as empty.
func (r *implRepository) Load(ctx context.Context) ([]task.Task, error) {
	raw, ok, err := r.store.Get(ctx, r.key)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Load"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToLoad, err)
	}
	if !ok || raw == "" {
		r.l.Infof(ctx, "%s: no snapshot under %q, starting empty", r.dsn("Load"), r.key)
		return []task.Task{}, nil
	}

	var records []record
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		r.l.Warnf(ctx, "%s: snapshot under %q is not valid, starting empty: %v", r.dsn("Load"), r.key, err)
		return []task.Task{}, nil
	}

	tasks := make([]task.Task, 0, len(records))
	seen := make(map[int64]struct{}, len(records))
	for i, rec := range records {
		t, ok := rec.toTask()
		if !ok {
			r.l.Warnf(ctx, "%s: task %d has unreadable datetime %q, dropping due date", r.dsn("Load"), rec.ID, rec.Datetime)
		}
		if t.ID <= 0 || t.Text == "" {
			r.l.Warnf(ctx, "%s: skipping record %d (id %d): missing id or text", r.dsn("Load"), i, rec.ID)
			continue
		}
		if _, dup := seen[t.ID]; dup {
			r.l.Warnf(ctx, "%s: skipping record %d: duplicate id %d", r.dsn("Load"), i, rec.ID)
			continue
		}
		seen[t.ID] = struct{}{}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// Save writes the whole sequence in one Set call.
func (r *implRepository) Save(ctx context.Context, tasks []task.Task) error {
	records := make([]record, len(tasks))
	for i, t := range tasks {
		records[i] = toRecord(t)
	}

	raw, err := json.Marshal(records)
	if err != nil {
		r.l.Errorf(ctx, "%s encode: %v", r.dsn("Save"), err)
		return fmt.Errorf("%w: %v", repo.ErrFailedToSave, err)
	}
	if err := r.store.Set(ctx, r.key, string(raw)); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Save"), err)
		return fmt.Errorf("%w: %v", repo.ErrFailedToSave, err)
	}
	return nil
}
