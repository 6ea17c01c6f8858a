package kv

import (
	"strings"
	"time"

	"todo-manager/internal/task"
)

// datetimeLocalLayout is what the browser's datetime-local input produced in
// snapshots written by a browser client.
const datetimeLocalLayout = "2006-01-02T15:04"

// record is the persisted shape of a task.
type record struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Datetime  string `json:"datetime"`
	Category  string `json:"category"`
	Completed bool   `json:"completed"`
}

func toRecord(t task.Task) record {
	rec := record{
		ID:        t.ID,
		Text:      t.Text,
		Category:  t.Category,
		Completed: t.Completed,
	}
	if t.DueAt != nil {
		rec.Datetime = t.DueAt.Format(time.RFC3339Nano)
	}
	return rec
}

// toTask converts a record back, trimming text and normalizing the category.
// ok is false when the datetime is present but unreadable; the task is still
// returned, without a due date.
func (rec record) toTask() (t task.Task, ok bool) {
	t = task.Task{
		ID:        rec.ID,
		Text:      strings.TrimSpace(rec.Text),
		Category:  task.NormalizeCategory(rec.Category),
		Completed: rec.Completed,
	}
	if rec.Datetime == "" {
		return t, true
	}
	for _, layout := range []string{time.RFC3339Nano, datetimeLocalLayout} {
		if due, err := time.Parse(layout, rec.Datetime); err == nil {
			t.DueAt = &due
			return t, true
		}
	}
	return t, false
}
