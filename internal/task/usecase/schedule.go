package usecase

import (
	"context"
	"fmt"

	"todo-manager/internal/task"
	"todo-manager/pkg/gcalendar"
)

// Schedule creates a calendar event spanning the task's due date. The task itself is not modified.
func (uc *implUseCase) Schedule(ctx context.Context, id int64) (task.ScheduleOutput, error) {
	if uc.calendar == nil {
		return task.ScheduleOutput{}, task.ErrSchedulerDisabled
	}

	// Copy under the lock; the calendar call happens outside it.
	t, err := uc.Get(ctx, id)
	if err != nil {
		return task.ScheduleOutput{}, err
	}
	if t.DueAt == nil {
		return task.ScheduleOutput{}, task.ErrNoDueDate
	}

	req := gcalendar.CreateEventRequest{
		CalendarID: uc.calOpts.CalendarID,
		Summary:    t.Text,
		StartTime:  *t.DueAt,
		EndTime:    t.DueAt.Add(uc.calOpts.EventDuration),
		Timezone:   uc.calOpts.Timezone,
	}
	if t.Category != "" {
		req.Description = fmt.Sprintf("Category: %s", task.CategoryLabel(t.Category))
	}

	event, err := uc.calendar.CreateEvent(ctx, req)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Schedule CreateEvent: %v", err)
		return task.ScheduleOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Schedule: task %d scheduled as event %s", t.ID, event.ID)
	return task.ScheduleOutput{
		Task:      t,
		EventID:   event.ID,
		EventLink: event.HtmlLink,
	}, nil
}
