package http

import (
	"time"

	"todo-manager/internal/task"
	"todo-manager/pkg/response"
)

// --- Request DTOs ---

type addReq struct {
	Text  string `json:"text"`
	DueAt string `json:"due_at" binding:"max=64"`
}

func (r addReq) toInput(due *time.Time) task.AddInput {
	return task.AddInput{
		Text:  r.Text,
		DueAt: due,
	}
}

// ---

type listReq struct {
	Filter string `form:"filter"`
}

func (r listReq) toFilter() task.Filter {
	if r.Filter == "" {
		return task.FilterAll
	}
	return task.Filter(r.Filter)
}

// ---

type editReq struct {
	ID       int64  `json:"-"` // populated from URI param
	Text     string `json:"text"`
	DueAt    string `json:"due_at"   binding:"max=64"`
	Category string `json:"category" binding:"max=100"`
}

func (r editReq) toInput(due *time.Time) task.EditInput {
	return task.EditInput{
		ID:       r.ID,
		Text:     r.Text,
		DueAt:    due,
		Category: r.Category,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID            int64              `json:"id"`
	Text          string             `json:"text"`
	DueAt         *time.Time         `json:"due_at"`
	DueLabel      *response.DateTime `json:"due_label,omitempty"`
	Category      string             `json:"category"`
	CategoryLabel string             `json:"category_label,omitempty"`
	Completed     bool               `json:"completed"`
}

func newTaskResp(t task.Task) taskResp {
	resp := taskResp{
		ID:            t.ID,
		Text:          t.Text,
		DueAt:         t.DueAt,
		Category:      t.Category,
		CategoryLabel: task.CategoryLabel(t.Category),
		Completed:     t.Completed,
	}
	if t.DueAt != nil {
		label := response.DateTime(*t.DueAt)
		resp.DueLabel = &label
	}
	return resp
}

type itemResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newItemResp(t task.Task) itemResp {
	return itemResp{Task: newTaskResp(t)}
}

type listResp struct {
	Filter string     `json:"filter"`
	Tasks  []taskResp `json:"tasks"`
	Total  int        `json:"total"`
}

func (h *handler) newListResp(filter task.Filter, tasks []task.Task) listResp {
	items := make([]taskResp, len(tasks))
	for i, t := range tasks {
		items[i] = newTaskResp(t)
	}
	return listResp{
		Filter: string(filter),
		Tasks:  items,
		Total:  len(items),
	}
}

type categoryResp struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type categoriesResp struct {
	Categories []categoryResp `json:"categories"`
}

func (h *handler) newCategoriesResp(categories []string) categoriesResp {
	items := make([]categoryResp, len(categories))
	for i, c := range categories {
		items[i] = categoryResp{Value: c, Label: task.CategoryLabel(c)}
	}
	return categoriesResp{Categories: items}
}

type clearResp struct {
	Removed int `json:"removed"`
}

type scheduleResp struct {
	Task      taskResp `json:"task"`
	EventID   string   `json:"event_id"`
	EventLink string   `json:"event_link"`
}

func (h *handler) newScheduleResp(out task.ScheduleOutput) scheduleResp {
	return scheduleResp{
		Task:      newTaskResp(out.Task),
		EventID:   out.EventID,
		EventLink: out.EventLink,
	}
}
