package repository

import "quick-capture/internal/model"

// CreateTaskOptions holds parameters for inserting a new Task. ID and
// timestamps are assigned by the store.
type CreateTaskOptions struct {
	Task model.Task
}

// UpdateTaskOptions holds the full replacement record for an existing Task.
// ID selects the record; CreatedAt is preserved and UpdatedAt reassigned by
// the store.
type UpdateTaskOptions struct {
	Task model.Task
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
type GetOneTaskOptions struct {
	ID string
}

// ListTasksOptions holds filter and pagination parameters for listing Tasks.
// Results are ordered newest first.
type ListTasksOptions struct {
	Project string
	Label   string
	Limit   int
	Offset  int
}
