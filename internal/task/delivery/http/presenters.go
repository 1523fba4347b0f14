package http

import (
	"time"

	"quick-capture/internal/model"
	"quick-capture/internal/task"
	"quick-capture/pkg/quickparse"
	"quick-capture/pkg/response"
)

// --- Request DTOs ---

type captureReq struct {
	Input    string `json:"input"    binding:"required,min=1,max=2000"`
	Language string `json:"language" binding:"omitempty,max=16"`

	// RFC3339; pins relative date resolution for reproducible captures.
	ReferenceTime *time.Time `json:"reference_time"`
}

func (r captureReq) toInput() task.CaptureInput {
	return task.CaptureInput{
		Input:         r.Input,
		Language:      r.Language,
		ReferenceTime: r.ReferenceTime,
	}
}

type parseReq struct {
	Input         string     `json:"input"    binding:"required,min=1,max=2000"`
	Language      string     `json:"language" binding:"omitempty,max=16"`
	ReferenceTime *time.Time `json:"reference_time"`
}

func (r parseReq) toInput() task.ParseInput {
	return task.ParseInput{
		Input:         r.Input,
		Language:      r.Language,
		ReferenceTime: r.ReferenceTime,
	}
}

type updateReq struct {
	ID            string                `json:"-"` // populated from URI param
	Title         *string               `json:"title"          binding:"omitempty,max=500"`
	ScheduledDate *time.Time            `json:"scheduled_date"`
	Deadline      *time.Time            `json:"deadline"`
	Time          *quickparse.TimeOfDay `json:"time"`
	Priority      *int                  `json:"priority"       binding:"omitempty,min=0,max=4"`
	Project       *string               `json:"project"        binding:"omitempty,max=255"`
	Labels        []string              `json:"labels"`
}

func (r updateReq) toInput() task.UpdateTaskInput {
	return task.UpdateTaskInput{
		ID:            r.ID,
		Title:         r.Title,
		ScheduledDate: r.ScheduledDate,
		Deadline:      r.Deadline,
		Time:          r.Time,
		Priority:      r.Priority,
		Project:       r.Project,
		Labels:        r.Labels,
	}
}

type listReq struct {
	Project string `form:"project"`
	Label   string `form:"label"`
	Limit   int    `form:"limit"`
	Offset  int    `form:"offset"`
}

func (r listReq) toInput() task.ListTasksInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
	return task.ListTasksInput{
		Project: r.Project,
		Label:   r.Label,
		Limit:   limit,
		Offset:  r.Offset,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID            string                       `json:"id"`
	Input         string                       `json:"input"`
	Language      string                       `json:"language"`
	Title         string                       `json:"title"`
	ScheduledDate *response.Date               `json:"scheduled_date,omitempty"`
	Deadline      *response.Date               `json:"deadline,omitempty"`
	Time          *quickparse.TimeOfDay        `json:"time,omitempty"`
	Priority      int                          `json:"priority,omitempty"`
	Project       string                       `json:"project,omitempty"`
	Labels        []string                     `json:"labels,omitempty"`
	Recurring     *quickparse.RecurringPattern `json:"recurring,omitempty"`
	Annotations   []quickparse.Annotation      `json:"annotations,omitempty"`

	CalendarEventID string `json:"calendar_event_id,omitempty"`
	CalendarLink    string `json:"calendar_link,omitempty"`

	CreatedAt response.DateTime `json:"created_at"`
	UpdatedAt response.DateTime `json:"updated_at"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:              t.ID,
		Input:           t.Input,
		Language:        t.Language,
		Title:           t.Title,
		ScheduledDate:   newDate(t.ScheduledDate),
		Deadline:        newDate(t.Deadline),
		Time:            t.Time,
		Priority:        t.Priority,
		Project:         t.Project,
		Labels:          t.Labels,
		Recurring:       t.Recurring,
		Annotations:     t.Annotations,
		CalendarEventID: t.CalendarEventID,
		CalendarLink:    t.CalendarLink,
		CreatedAt:       response.DateTime(t.CreatedAt),
		UpdatedAt:       response.DateTime(t.UpdatedAt),
	}
}

type parseResp struct {
	Language string                `json:"language"`
	Result   quickparse.ParsedTask `json:"result"`
}

func newParseResp(out task.ParseOutput) parseResp {
	return parseResp{
		Language: out.Language,
		Result:   out.Result,
	}
}

type listResp struct {
	Tasks  []taskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func newListResp(out task.ListTasksOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{
		Tasks:  tasks,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type languagesResp struct {
	Languages []string `json:"languages"`
}

// newDate wraps a midnight-anchored date for date-only rendering.
func newDate(t *time.Time) *response.Date {
	if t == nil {
		return nil
	}
	d := response.Date(*t)
	return &d
}
