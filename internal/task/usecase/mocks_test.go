package usecase

import (
	"context"
	"errors"

	"todo-manager/internal/task"
	"todo-manager/pkg/gcalendar"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockRepo records every Save and can be told to fail.
type mockRepo struct {
	stored   []task.Task
	saves    int
	loadErr  error
	failSave bool
}

func (m *mockRepo) Load(ctx context.Context) ([]task.Task, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return append([]task.Task(nil), m.stored...), nil
}

func (m *mockRepo) Save(ctx context.Context, tasks []task.Task) error {
	m.saves++
	if m.failSave {
		return errors.New("quota exceeded")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	m.stored = append([]task.Task(nil), tasks...)
	return nil
}

type mockCalendar struct {
	req  gcalendar.CreateEventRequest
	fail bool
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.req = req
	if m.fail {
		return nil, errors.New("cal error")
	}
	return &gcalendar.Event{ID: "evt-1", HtmlLink: "http://cal.link/evt-1"}, nil
}
