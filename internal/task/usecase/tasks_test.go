package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quick-capture/internal/model"
	"quick-capture/internal/task"
	"quick-capture/internal/task/repository"
)

func TestListAppliesDefaults(t *testing.T) {
	var gotOpt repository.ListTasksOptions
	repo := &mockRepo{
		listFn: func(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, int, error) {
			gotOpt = opt
			return []model.Task{{ID: "task-1"}}, 1, nil
		},
	}
	uc := newTestUseCase(repo, nil)

	out, err := uc.List(context.Background(), task.ListTasksInput{Offset: -3})
	require.NoError(t, err)

	assert.Equal(t, defaultListLimit, gotOpt.Limit)
	assert.Equal(t, 0, gotOpt.Offset)
	assert.Equal(t, 1, out.Total)
	assert.Equal(t, defaultListLimit, out.Limit)
	require.Len(t, out.Tasks, 1)
}

func TestListPassesFilters(t *testing.T) {
	var gotOpt repository.ListTasksOptions
	repo := &mockRepo{
		listFn: func(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, int, error) {
			gotOpt = opt
			return nil, 0, nil
		},
	}
	uc := newTestUseCase(repo, nil)

	_, err := uc.List(context.Background(), task.ListTasksInput{
		Project: "Work",
		Label:   "urgent",
		Limit:   5,
		Offset:  10,
	})
	require.NoError(t, err)

	assert.Equal(t, "Work", gotOpt.Project)
	assert.Equal(t, "urgent", gotOpt.Label)
	assert.Equal(t, 5, gotOpt.Limit)
	assert.Equal(t, 10, gotOpt.Offset)
}

func TestDetailFound(t *testing.T) {
	repo := &mockRepo{
		getFn: func(ctx context.Context, opt repository.GetOneTaskOptions) (model.Task, error) {
			return model.Task{ID: opt.ID, Title: "found"}, nil
		},
	}
	uc := newTestUseCase(repo, nil)

	out, err := uc.Detail(context.Background(), "task-9")
	require.NoError(t, err)
	assert.Equal(t, "task-9", out.Task.ID)
	assert.Equal(t, "found", out.Task.Title)
}

func TestDetailNotFound(t *testing.T) {
	uc := newTestUseCase(&mockRepo{}, nil)

	_, err := uc.Detail(context.Background(), "missing")
	assert.ErrorIs(t, err, task.ErrTaskNotFound)
}

func TestUpdatePartial(t *testing.T) {
	repo := &mockRepo{
		getFn: func(ctx context.Context, opt repository.GetOneTaskOptions) (model.Task, error) {
			return model.Task{
				ID:       opt.ID,
				Title:    "old title",
				Priority: 3,
				Project:  "Home",
				Labels:   []string{"a"},
			}, nil
		},
	}
	uc := newTestUseCase(repo, nil)

	title := "new title"
	prio := 1
	out, err := uc.Update(context.Background(), task.UpdateTaskInput{
		ID:       "task-1",
		Title:    &title,
		Priority: &prio,
	})
	require.NoError(t, err)

	assert.Equal(t, "new title", out.Task.Title)
	assert.Equal(t, 1, out.Task.Priority)
	// Untouched fields survive.
	assert.Equal(t, "Home", out.Task.Project)
	assert.Equal(t, []string{"a"}, out.Task.Labels)
}

func TestUpdateNotFound(t *testing.T) {
	uc := newTestUseCase(&mockRepo{}, nil)

	title := "x"
	_, err := uc.Update(context.Background(), task.UpdateTaskInput{ID: "missing", Title: &title})
	assert.ErrorIs(t, err, task.ErrTaskNotFound)
}

func TestDeleteNotFound(t *testing.T) {
	uc := newTestUseCase(&mockRepo{}, nil)

	err := uc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, task.ErrTaskNotFound)
}

func TestDeleteFound(t *testing.T) {
	repo := &mockRepo{
		getFn: func(ctx context.Context, opt repository.GetOneTaskOptions) (model.Task, error) {
			return model.Task{ID: opt.ID}, nil
		},
		deleteFn: func(ctx context.Context, id string) error { return nil },
	}
	uc := newTestUseCase(repo, nil)

	assert.NoError(t, uc.Delete(context.Background(), "task-1"))
}

func TestDeleteRemovesCalendarEvent(t *testing.T) {
	repo := &mockRepo{
		getFn: func(ctx context.Context, opt repository.GetOneTaskOptions) (model.Task, error) {
			return model.Task{ID: opt.ID, CalendarEventID: "event-7"}, nil
		},
		deleteFn: func(ctx context.Context, id string) error { return nil },
	}
	cal := &mockCalendar{}
	uc := newTestUseCase(repo, cal)

	require.NoError(t, uc.Delete(context.Background(), "task-1"))
	assert.Equal(t, []string{"event-7"}, cal.deleted)
}
