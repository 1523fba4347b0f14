package model

import (
	"time"

	"quick-capture/pkg/quickparse"
)

// Task is a captured task: the raw input the user typed plus everything the
// parser extracted from it.
type Task struct {
	ID       string
	Input    string // raw text exactly as captured
	Language string // language the input was parsed with

	Title         string
	ScheduledDate *time.Time
	Deadline      *time.Time
	Time          *quickparse.TimeOfDay
	Priority      int // 0 = none, 1 (highest) .. 4
	Project       string
	Labels        []string
	Recurring     *quickparse.RecurringPattern
	Annotations   []quickparse.Annotation

	// Set when the capture was mirrored into Google Calendar.
	CalendarEventID string
	CalendarLink    string

	CreatedAt time.Time
	UpdatedAt time.Time
}
