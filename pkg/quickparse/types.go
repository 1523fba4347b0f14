package quickparse

import "time"

// AnnotationType classifies what a recognized substring contributed to the
// parsed task. Values are stable and safe to expose to API consumers.
type AnnotationType string

const (
	AnnotationScheduledDate AnnotationType = "scheduledDate"
	AnnotationDeadline      AnnotationType = "deadline"
	AnnotationTime          AnnotationType = "time"
	AnnotationPriority      AnnotationType = "priority"
	AnnotationProject       AnnotationType = "project"
	AnnotationLabel         AnnotationType = "label"
	AnnotationRecurring     AnnotationType = "recurring"
)

// Annotation links a byte range of the ORIGINAL input to the field it was
// parsed into. Ranges always index the original string, never the parser's
// shrinking working copy, so UI highlighting stays correct.
type Annotation struct {
	Start int            `json:"start"`
	End   int            `json:"end"`
	Text  string         `json:"text"`
	Type  AnnotationType `json:"type"`
}

// TimeOfDay is a wall-clock hour/minute pair without a date.
type TimeOfDay struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// Frequency is the base unit of a recurrence pattern.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// RecurringPattern describes how a task repeats.
//
// Interval is always >= 1; NewRecurringPattern and the parser clamp smaller
// values. DayOfMonth may be negative to count from the end of the month,
// WeekOfMonth may be negative to count from the last week. Zero means unset
// for both.
type RecurringPattern struct {
	Frequency   Frequency      `json:"frequency"`
	Interval    int            `json:"interval"`
	DaysOfWeek  []time.Weekday `json:"days_of_week,omitempty"`
	DayOfMonth  int            `json:"day_of_month,omitempty"`
	WeekOfMonth int            `json:"week_of_month,omitempty"`
}

// NewRecurringPattern builds a pattern with the interval clamped to >= 1.
func NewRecurringPattern(freq Frequency, interval int) RecurringPattern {
	if interval < 1 {
		interval = 1
	}
	return RecurringPattern{Frequency: freq, Interval: interval}
}

// normalized returns a defensive copy with the interval clamped and the
// weekday slice detached from any shared template.
func (p RecurringPattern) normalized() RecurringPattern {
	if p.Interval < 1 {
		p.Interval = 1
	}
	if len(p.DaysOfWeek) > 0 {
		days := make([]time.Weekday, len(p.DaysOfWeek))
		copy(days, p.DaysOfWeek)
		p.DaysOfWeek = days
	}
	return p
}

// ParsedTask is the structured result of parsing one input string.
// It is never mutated after Parse returns.
//
// Priority zero means "no priority found"; set values run 1 (highest) to 4.
// Project holds only the first marker even when several are present, while
// Labels keeps every match in order of appearance, duplicates included.
type ParsedTask struct {
	OriginalInput string            `json:"original_input"`
	Title         string            `json:"title"`
	ScheduledDate *time.Time        `json:"scheduled_date,omitempty"`
	Deadline      *time.Time        `json:"deadline,omitempty"`
	Time          *TimeOfDay        `json:"time,omitempty"`
	Priority      int               `json:"priority,omitempty"`
	Project       string            `json:"project,omitempty"`
	Labels        []string          `json:"labels,omitempty"`
	Recurring     *RecurringPattern `json:"recurring,omitempty"`
	Annotations   []Annotation      `json:"annotations,omitempty"`
}
