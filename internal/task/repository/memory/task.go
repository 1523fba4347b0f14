package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"quick-capture/internal/model"
	"quick-capture/internal/task/repository"
	"quick-capture/pkg/quickparse"
)

func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	t := opt.Task
	t.ID = uuid.NewString()

	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now

	// Defensive copies so callers can't mutate stored state.
	t.Labels = append([]string(nil), t.Labels...)
	t.Annotations = append([]quickparse.Annotation(nil), t.Annotations...)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.tasks[t.ID] = t
	r.order = append(r.order, t.ID)

	return t, nil
}

func (r *implRepository) GetOneTask(ctx context.Context, opt repository.GetOneTaskOptions) (model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tasks[opt.ID]
	if !ok {
		return model.Task{}, repository.ErrNotFound
	}

	return t, nil
}

func (r *implRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Newest first.
	filtered := make([]model.Task, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		t := r.tasks[r.order[i]]
		if !matches(t, opt) {
			continue
		}
		filtered = append(filtered, t)
	}

	total := len(filtered)

	offset := opt.Offset
	if offset > total {
		offset = total
	}
	filtered = filtered[offset:]

	if opt.Limit > 0 && opt.Limit < len(filtered) {
		filtered = filtered[:opt.Limit]
	}

	return filtered, total, nil
}

func (r *implRepository) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	t := opt.Task

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.tasks[t.ID]
	if !ok {
		return model.Task{}, repository.ErrNotFound
	}

	t.CreatedAt = stored.CreatedAt
	t.UpdatedAt = time.Now().UTC()
	t.Labels = append([]string(nil), t.Labels...)
	t.Annotations = append([]quickparse.Annotation(nil), t.Annotations...)

	r.tasks[t.ID] = t

	return t, nil
}

func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[id]; !ok {
		return repository.ErrNotFound
	}

	delete(r.tasks, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return nil
}

func matches(t model.Task, opt repository.ListTasksOptions) bool {
	if opt.Project != "" && t.Project != opt.Project {
		return false
	}
	if opt.Label != "" {
		found := false
		for _, l := range t.Labels {
			if l == opt.Label {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
