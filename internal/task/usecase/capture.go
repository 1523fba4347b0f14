package usecase

import (
	"context"
	"strings"
	"time"

	"quick-capture/internal/model"
	"quick-capture/internal/task"
	"quick-capture/internal/task/repository"
	"quick-capture/pkg/gcalendar"
	"quick-capture/pkg/quickparse"
)

// Capture parses the input, stores the resulting task, and mirrors dated
// tasks into the calendar when a client is configured. Calendar failures are
// logged and ignored so a flaky calendar never loses a capture.
func (uc *implUseCase) Capture(ctx context.Context, input task.CaptureInput) (task.CaptureOutput, error) {
	if strings.TrimSpace(input.Input) == "" {
		return task.CaptureOutput{}, task.ErrEmptyInput
	}

	lang, parser, err := uc.parserFor(input.Language)
	if err != nil {
		return task.CaptureOutput{}, err
	}

	parsed := parser.Parse(input.Input, uc.referenceTime(input.ReferenceTime))

	m := taskFromParsed(parsed, lang)
	uc.mirrorToCalendar(ctx, &m)

	created, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{Task: m})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Capture.CreateTask: %v", err)
		return task.CaptureOutput{}, err
	}

	return task.CaptureOutput{Task: created}, nil
}

func taskFromParsed(parsed quickparse.ParsedTask, lang string) model.Task {
	return model.Task{
		Input:         parsed.OriginalInput,
		Language:      lang,
		Title:         parsed.Title,
		ScheduledDate: parsed.ScheduledDate,
		Deadline:      parsed.Deadline,
		Time:          parsed.Time,
		Priority:      parsed.Priority,
		Project:       parsed.Project,
		Labels:        parsed.Labels,
		Recurring:     parsed.Recurring,
		Annotations:   parsed.Annotations,
	}
}

// mirrorToCalendar creates a calendar event for tasks with a scheduled date.
// Tasks without a time of day become all-day events.
func (uc *implUseCase) mirrorToCalendar(ctx context.Context, m *model.Task) {
	if uc.calClient == nil || m.ScheduledDate == nil {
		return
	}

	summary := m.Title
	if summary == "" {
		summary = m.Input
	}

	req := gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     summary,
		Description: m.Input,
		Timezone:    uc.cal.Location.String(),
	}

	start := *m.ScheduledDate
	if m.Time != nil {
		start = start.Add(time.Duration(m.Time.Hour)*time.Hour + time.Duration(m.Time.Minute)*time.Minute)
		req.StartTime = start
		req.EndTime = start.Add(time.Hour)
	} else {
		req.StartTime = start
		req.EndTime = start.AddDate(0, 0, 1)
		req.AllDay = true
	}

	event, err := uc.calClient.CreateEvent(ctx, req)
	if err != nil {
		uc.l.Warnf(ctx, "task.usecase.Capture.CreateEvent: %v", err)
		return
	}

	m.CalendarEventID = event.ID
	m.CalendarLink = event.HtmlLink
}
