package task

import (
	"time"

	"quick-capture/internal/model"
	"quick-capture/pkg/quickparse"
)

// --- UseCase Inputs ---

type CaptureInput struct {
	Input    string
	Language string // optional, falls back to the configured default

	// ReferenceTime pins "tomorrow" and friends for reproducible captures.
	// Nil means now.
	ReferenceTime *time.Time
}

type ParseInput struct {
	Input         string
	Language      string
	ReferenceTime *time.Time
}

type ListTasksInput struct {
	Project string
	Label   string
	Limit   int
	Offset  int
}

// UpdateTaskInput is a partial update. Nil pointer fields are left
// unchanged; a non-nil Labels slice replaces the stored labels.
type UpdateTaskInput struct {
	ID            string
	Title         *string
	ScheduledDate *time.Time
	Deadline      *time.Time
	Time          *quickparse.TimeOfDay
	Priority      *int
	Project       *string
	Labels        []string
}

// --- UseCase Outputs ---

type CaptureOutput struct {
	Task model.Task
}

type ParseOutput struct {
	Language string
	Result   quickparse.ParsedTask
}

type ListTasksOutput struct {
	Tasks  []model.Task
	Total  int
	Limit  int
	Offset int
}

type DetailTaskOutput struct {
	Task model.Task
}

type UpdateTaskOutput struct {
	Task model.Task
}
