package usecase

import (
	"context"
	"errors"

	"quick-capture/internal/task"
	"quick-capture/internal/task/repository"
)

const defaultListLimit = 20

func (uc *implUseCase) List(ctx context.Context, input task.ListTasksInput) (task.ListTasksOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	tasks, total, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		Project: input.Project,
		Label:   input.Label,
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.List.ListTasks: %v", err)
		return task.ListTasksOutput{}, err
	}

	return task.ListTasksOutput{
		Tasks:  tasks,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

func (uc *implUseCase) Detail(ctx context.Context, id string) (task.DetailTaskOutput, error) {
	t, err := uc.repo.GetOneTask(ctx, repository.GetOneTaskOptions{ID: id})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.DetailTaskOutput{}, task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "task.usecase.Detail.GetOneTask: %v", err)
		return task.DetailTaskOutput{}, err
	}

	return task.DetailTaskOutput{Task: t}, nil
}

func (uc *implUseCase) Update(ctx context.Context, input task.UpdateTaskInput) (task.UpdateTaskOutput, error) {
	existing, err := uc.repo.GetOneTask(ctx, repository.GetOneTaskOptions{ID: input.ID})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.UpdateTaskOutput{}, task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "task.usecase.Update.GetOneTask: %v", err)
		return task.UpdateTaskOutput{}, err
	}

	if input.Title != nil {
		existing.Title = *input.Title
	}
	if input.ScheduledDate != nil {
		existing.ScheduledDate = input.ScheduledDate
	}
	if input.Deadline != nil {
		existing.Deadline = input.Deadline
	}
	if input.Time != nil {
		existing.Time = input.Time
	}
	if input.Priority != nil {
		existing.Priority = *input.Priority
	}
	if input.Project != nil {
		existing.Project = *input.Project
	}
	if input.Labels != nil {
		existing.Labels = input.Labels
	}

	updated, err := uc.repo.UpdateTask(ctx, repository.UpdateTaskOptions{Task: existing})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Update.UpdateTask: %v", err)
		return task.UpdateTaskOutput{}, err
	}

	return task.UpdateTaskOutput{Task: updated}, nil
}

// Delete removes the task and, best effort, its mirrored calendar event.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.repo.GetOneTask(ctx, repository.GetOneTaskOptions{ID: id})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "task.usecase.Delete.GetOneTask: %v", err)
		return err
	}

	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "task.usecase.Delete.DeleteTask: %v", err)
		return err
	}

	if uc.calClient != nil && existing.CalendarEventID != "" {
		if err := uc.calClient.DeleteEvent(ctx, uc.calendarID, existing.CalendarEventID); err != nil {
			uc.l.Warnf(ctx, "task.usecase.Delete.DeleteEvent: %v", err)
		}
	}

	return nil
}
