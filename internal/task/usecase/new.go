package usecase

import (
	"context"
	"sort"
	"time"

	"quick-capture/internal/task"
	"quick-capture/internal/task/repository"
	"quick-capture/pkg/gcalendar"
	pkgLog "quick-capture/pkg/log"
	"quick-capture/pkg/quickparse"
)

// CalendarClient mirrors captured tasks into an external calendar.
//
//go:generate mockery --name CalendarClient
type CalendarClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

// Config wires the parser and optional calendar mirroring into the use case.
type Config struct {
	// Languages maps language codes to their configs. Codes are matched
	// case-insensitively.
	Languages       map[string]*quickparse.LanguageConfig
	DefaultLanguage string

	// Calendar controls how relative dates resolve (timezone, week start).
	Calendar quickparse.Calendar

	// CalendarClient is optional. Nil disables calendar mirroring.
	CalendarClient CalendarClient
	CalendarID     string
}

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository

	parsers     map[string]*quickparse.Parser
	codes       []string // sorted language codes, for Languages()
	defaultLang string
	cal         quickparse.Calendar

	calClient  CalendarClient
	calendarID string

	now func() time.Time
}

var _ task.UseCase = &implUseCase{}

func New(l pkgLog.Logger, repo repository.Repository, cfg Config) *implUseCase {
	parsers := make(map[string]*quickparse.Parser, len(cfg.Languages))
	codes := make([]string, 0, len(cfg.Languages))
	for code, lang := range cfg.Languages {
		parsers[code] = quickparse.NewWithCalendar(lang, cfg.Calendar)
		codes = append(codes, code)
	}
	sort.Strings(codes)

	return &implUseCase{
		l:           l,
		repo:        repo,
		parsers:     parsers,
		codes:       codes,
		defaultLang: cfg.DefaultLanguage,
		cal:         cfg.Calendar,
		calClient:   cfg.CalendarClient,
		calendarID:  cfg.CalendarID,
		now:         time.Now,
	}
}
