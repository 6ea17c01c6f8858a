package task

import "time"

// --- Task Domain Model ---

// Task is a single to-do item. IDs are immutable once assigned.
type Task struct {
	ID        int64
	Text      string
	DueAt     *time.Time // nil means no due date
	Category  string     // always lowercase, may be empty
	Completed bool
}

// Clone returns a copy that shares no memory with t.
func (t Task) Clone() Task {
	if t.DueAt != nil {
		due := *t.DueAt
		t.DueAt = &due
	}
	return t
}

// Filter selects tasks for List. The three reserved values below select by
// completion state; any other value is an exact category match.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterCompleted Filter = "completed"
	FilterPending   Filter = "pending"
)

// Match reports whether t passes the filter. An empty filter behaves like FilterAll.
func (f Filter) Match(t Task) bool {
	switch f {
	case FilterAll, "":
		return true
	case FilterCompleted:
		return t.Completed
	case FilterPending:
		return !t.Completed
	default:
		return t.Category == string(f)
	}
}

// --- UseCase Inputs ---

type AddInput struct {
	Text  string
	DueAt *time.Time
}

// EditInput overwrites every editable field. A nil DueAt clears the due date,
// an empty Category clears the category.
type EditInput struct {
	ID       int64
	Text     string
	DueAt    *time.Time
	Category string
}

// --- UseCase Outputs ---

type ScheduleOutput struct {
	Task      Task
	EventID   string
	EventLink string
}
