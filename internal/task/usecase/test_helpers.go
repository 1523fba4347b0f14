package usecase

import (
	"context"

	"quick-capture/internal/model"
	"quick-capture/internal/task/repository"
	"quick-capture/pkg/gcalendar"
)

// mockLogger is a no-op logger for tests.
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

// mockRepo implements repository.Repository with pluggable behavior.
type mockRepo struct {
	createFn func(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error)
	getFn    func(ctx context.Context, opt repository.GetOneTaskOptions) (model.Task, error)
	listFn   func(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, int, error)
	updateFn func(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error)
	deleteFn func(ctx context.Context, id string) error

	created []model.Task
}

func (m *mockRepo) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	if m.createFn != nil {
		return m.createFn(ctx, opt)
	}
	t := opt.Task
	t.ID = "task-1"
	m.created = append(m.created, t)
	return t, nil
}

func (m *mockRepo) GetOneTask(ctx context.Context, opt repository.GetOneTaskOptions) (model.Task, error) {
	if m.getFn != nil {
		return m.getFn(ctx, opt)
	}
	return model.Task{}, repository.ErrNotFound
}

func (m *mockRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, int, error) {
	if m.listFn != nil {
		return m.listFn(ctx, opt)
	}
	return nil, 0, nil
}

func (m *mockRepo) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, opt)
	}
	return opt.Task, nil
}

func (m *mockRepo) DeleteTask(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return repository.ErrNotFound
}

// mockCalendar records the last create/delete calls and returns canned data.
type mockCalendar struct {
	req     *gcalendar.CreateEventRequest
	event   *gcalendar.Event
	err     error
	deleted []string
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.req = &req
	if m.err != nil {
		return nil, m.err
	}
	if m.event != nil {
		return m.event, nil
	}
	return &gcalendar.Event{ID: "event-1", HtmlLink: "https://calendar.google.com/event-1"}, nil
}

func (m *mockCalendar) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	m.deleted = append(m.deleted, eventID)
	return m.err
}
