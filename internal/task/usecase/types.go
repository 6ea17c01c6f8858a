package usecase

import (
	"context"
	"time"

	"todo-manager/pkg/gcalendar"
)

// DefaultEventDuration is used for calendar events when none is configured.
const DefaultEventDuration = 30 * time.Minute

// Calendar is the subset of the calendar client Schedule needs.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// CalendarOptions configures events created by Schedule.
type CalendarOptions struct {
	CalendarID    string
	Timezone      string
	EventDuration time.Duration
}
