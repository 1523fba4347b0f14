package quickparse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Sunday noon, so "next monday" style cases are one day ahead and weekday
// resolution strictly in the future is observable.
var testRef = time.Date(2025, 10, 19, 12, 0, 0, 0, time.UTC)

func testCalendar() Calendar {
	return Calendar{Location: time.UTC, WeekStart: time.Monday}
}

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func dayAt(y int, m time.Month, d, hh, mm int) *time.Time {
	t := time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
	return &t
}

func clock(h, m int) *TimeOfDay {
	return &TimeOfDay{Hour: h, Minute: m}
}

type parseCase struct {
	name  string
	input string

	title     string
	scheduled *time.Time
	deadline  *time.Time
	time      *TimeOfDay
	priority  int
	project   string
	labels    []string
	recurring *RecurringPattern
}

func runParseCases(t *testing.T, lang *LanguageConfig, cases []parseCase) {
	t.Helper()
	p := NewWithCalendar(lang, testCalendar())

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := p.Parse(tc.input, testRef)

			assert.Equal(t, tc.input, got.OriginalInput)
			assert.Equal(t, tc.title, got.Title)
			assert.Equal(t, tc.scheduled, got.ScheduledDate)
			assert.Equal(t, tc.deadline, got.Deadline)
			assert.Equal(t, tc.time, got.Time)
			assert.Equal(t, tc.priority, got.Priority)
			assert.Equal(t, tc.project, got.Project)
			assert.Equal(t, tc.labels, got.Labels)
			assert.Equal(t, tc.recurring, got.Recurring)

			assertAnnotationsConsistent(t, got)
		})
	}
}

// Every annotation must point back into the original input, carry the exact
// substring it covers, and never overlap another annotation.
func assertAnnotationsConsistent(t *testing.T, task ParsedTask) {
	t.Helper()
	covered := make([]bool, len(task.OriginalInput))
	for _, a := range task.Annotations {
		require.True(t, a.Start >= 0 && a.Start < a.End && a.End <= len(task.OriginalInput),
			"annotation range [%d,%d) out of bounds", a.Start, a.End)
		assert.Equal(t, task.OriginalInput[a.Start:a.End], a.Text)
		for i := a.Start; i < a.End; i++ {
			require.False(t, covered[i], "annotations overlap at byte %d", i)
			covered[i] = true
		}
	}
}

func TestParseEnglish(t *testing.T) {
	runParseCases(t, English(), []parseCase{
		{
			name:      "full example",
			input:     "Meeting tomorrow 14:00 p1 @Work #important",
			title:     "Meeting",
			scheduled: day(2025, time.October, 20),
			time:      clock(14, 0),
			priority:  1,
			project:   "Work",
			labels:    []string{"important"},
		},
		{
			name:     "deadline keyword with weekday",
			input:    "Submit report by Friday",
			title:    "Submit report",
			deadline: day(2025, time.October, 24),
		},
		{
			name:      "interval recurrence",
			input:     "Water plants every 3 days",
			title:     "Water plants",
			recurring: &RecurringPattern{Frequency: FrequencyDaily, Interval: 3},
		},
		{
			name:      "weekly recurrence on weekday",
			input:     "Team meeting every Monday",
			title:     "Team meeting",
			recurring: &RecurringPattern{Frequency: FrequencyWeekly, Interval: 1, DaysOfWeek: []time.Weekday{time.Monday}},
		},
		{
			name:     "symbols only give empty title",
			input:    "p1 @Work #urgent",
			title:    "",
			priority: 1,
			project:  "Work",
			labels:   []string{"urgent"},
		},
		{
			name:    "first project wins but all are consumed",
			input:   "Fix login bug @Backend @Frontend",
			title:   "Fix login bug",
			project: "Backend",
		},
		{
			name:   "labels keep duplicates in order",
			input:  "Sort inbox #mail #admin #mail",
			title:  "Sort inbox",
			labels: []string{"mail", "admin", "mail"},
		},
		{
			name:      "weekday with trailing time",
			input:     "Call John friday at 5pm",
			title:     "Call John",
			scheduled: day(2025, time.October, 24),
			time:      clock(17, 0),
		},
		{
			name:      "scheduled day with deadline time",
			input:     "Report monday by 5pm",
			title:     "Report",
			scheduled: day(2025, time.October, 20),
			deadline:  dayAt(2025, time.October, 20, 17, 0),
		},
		{
			name:      "month day without year rolls forward",
			input:     "Pay rent oct 5",
			title:     "Pay rent",
			scheduled: day(2026, time.October, 5),
		},
		{
			name:      "month day with year",
			input:     "Renew passport jan 15, 2026",
			title:     "Renew passport",
			scheduled: day(2026, time.January, 15),
		},
		{
			name:      "iso date",
			input:     "Ship release 2025-12-01",
			title:     "Ship release",
			scheduled: day(2025, time.December, 1),
		},
		{
			name:      "slash date is month first",
			input:     "Dentist 12/1",
			title:     "Dentist",
			scheduled: day(2025, time.December, 1),
		},
		{
			name:      "next weekday is strictly future",
			input:     "Buy milk next monday",
			title:     "Buy milk",
			scheduled: day(2025, time.October, 20),
		},
		{
			name:      "every other day",
			input:     "Stretch every other day",
			title:     "Stretch",
			recurring: &RecurringPattern{Frequency: FrequencyDaily, Interval: 2},
		},
		{
			name:  "weekday recurrence",
			input: "Standup every weekday",
			title: "Standup",
			recurring: &RecurringPattern{
				Frequency: FrequencyWeekly,
				Interval:  1,
				DaysOfWeek: []time.Weekday{
					time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
				},
			},
		},
		{
			name:     "double bang priority",
			input:    "Fix prod issue !!",
			title:    "Fix prod issue",
			priority: 2,
		},
		{
			name:     "triple bang priority",
			input:    "Server down!!! investigate",
			title:    "Server down investigate",
			priority: 1,
		},
		{
			name:  "four bangs are not a priority",
			input: "so cool!!!!",
			title: "so cool!!!!",
		},
		{
			name:  "bare time literal",
			input: "Call mom at 9am",
			title: "Call mom",
			time:  clock(9, 0),
		},
		{
			name:  "invalid clock does not mask a later time",
			input: "ref 99:99 call at 5:00",
			title: "ref 99:99 call",
			time:  clock(5, 0),
		},
		{
			name:      "day after tomorrow",
			input:     "Dentist day after tomorrow",
			title:     "Dentist",
			scheduled: day(2025, time.October, 21),
		},
		{
			name:      "next week",
			input:     "Plan sprint next week",
			title:     "Plan sprint",
			scheduled: day(2025, time.October, 26),
		},
		{
			name:     "deadline keyword with relative date",
			input:    "Submit draft by tomorrow",
			title:    "Submit draft",
			deadline: day(2025, time.October, 20),
		},
		{
			name:  "plain text stays untouched",
			input: "   Buy   groceries  ",
			title: "Buy groceries",
		},
		{
			name:  "empty input",
			input: "",
			title: "",
		},
	})
}

func TestParseGerman(t *testing.T) {
	runParseCases(t, German(), []parseCase{
		{
			name:      "relative date with time",
			input:     "Zahnarzt morgen um 15:30",
			title:     "Zahnarzt",
			scheduled: day(2025, time.October, 20),
			time:      clock(15, 30),
		},
		{
			name:     "deadline with day and month",
			input:    "Bericht bis zum 5. märz",
			title:    "Bericht",
			deadline: day(2026, time.March, 5),
		},
		{
			name:      "weekly recurrence",
			input:     "Müll rausbringen jeden Montag",
			title:     "Müll rausbringen",
			recurring: &RecurringPattern{Frequency: FrequencyWeekly, Interval: 1, DaysOfWeek: []time.Weekday{time.Monday}},
		},
		{
			name:      "interval recurrence",
			input:     "Steuern alle 2 Wochen",
			title:     "Steuern",
			recurring: &RecurringPattern{Frequency: FrequencyWeekly, Interval: 2},
		},
		{
			name:      "day after tomorrow",
			input:     "Anruf übermorgen",
			title:     "Anruf",
			scheduled: day(2025, time.October, 21),
		},
		{
			name:      "weekday with time span",
			input:     "Treffen Montag 14:00",
			title:     "Treffen",
			scheduled: day(2025, time.October, 20),
			time:      clock(14, 0),
		},
		{
			name:      "uhr time form",
			input:     "Anstoß um 18 Uhr",
			title:     "Anstoß",
			time:      clock(18, 0),
		},
		{
			name:      "next week",
			input:     "Projektplan nächste Woche",
			title:     "Projektplan",
			scheduled: day(2025, time.October, 26),
		},
	})
}

func TestParseFrench(t *testing.T) {
	runParseCases(t, French(), []parseCase{
		{
			name:      "relative date with h-time",
			input:     "Appeler Marie demain à 14h30",
			title:     "Appeler Marie",
			scheduled: day(2025, time.October, 20),
			time:      clock(14, 30),
		},
		{
			name:     "deadline with day and month",
			input:    "Rapport avant le 15 mars",
			title:    "Rapport",
			deadline: day(2026, time.March, 15),
		},
		{
			name:      "daily recurrence",
			input:     "Gym tous les jours",
			title:     "Gym",
			recurring: &RecurringPattern{Frequency: FrequencyDaily, Interval: 1},
		},
		{
			name:      "weekday with prochain",
			input:     "Réunion lundi prochain",
			title:     "Réunion",
			scheduled: day(2025, time.October, 20),
		},
		{
			name:      "bare weekday",
			input:     "Courses samedi",
			title:     "Courses",
			scheduled: day(2025, time.October, 25),
		},
		{
			name:      "interval recurrence",
			input:     "Arroser toutes les 2 semaines",
			title:     "Arroser",
			recurring: &RecurringPattern{Frequency: FrequencyWeekly, Interval: 2},
		},
		{
			name:  "hour only h-time",
			input: "Dîner à 20h",
			title: "Dîner",
			time:  clock(20, 0),
		},
	})
}

func TestParseSpanish(t *testing.T) {
	runParseCases(t, Spanish(), []parseCase{
		{
			name:      "day de month span",
			input:     "Comprar regalos el 24 de diciembre",
			title:     "Comprar regalos",
			scheduled: day(2025, time.December, 24),
		},
		{
			name:     "deadline with day and month",
			input:    "Pagar alquiler para el 15 marzo",
			title:    "Pagar alquiler",
			deadline: day(2026, time.March, 15),
		},
		{
			name:      "daily recurrence",
			input:     "Gimnasio todos los días",
			title:     "Gimnasio",
			recurring: &RecurringPattern{Frequency: FrequencyDaily, Interval: 1},
		},
		{
			name:      "interval recurrence with accent",
			input:     "Regar plantas cada 3 días",
			title:     "Regar plantas",
			recurring: &RecurringPattern{Frequency: FrequencyDaily, Interval: 3},
		},
		{
			name:      "tomorrow with time",
			input:     "Llamar mañana a las 10:00",
			title:     "Llamar",
			scheduled: day(2025, time.October, 20),
			time:      clock(10, 0),
		},
		{
			name:      "scheduled day with deadline time",
			input:     "Informe lunes para las 17:00",
			title:     "Informe",
			scheduled: day(2025, time.October, 20),
			deadline:  dayAt(2025, time.October, 20, 17, 0),
		},
		{
			name:      "pasado manana",
			input:     "Dentista pasado mañana",
			title:     "Dentista",
			scheduled: day(2025, time.October, 21),
		},
	})
}

func TestParseAnnotationRanges(t *testing.T) {
	p := NewWithCalendar(English(), testCalendar())
	got := p.Parse("Meeting tomorrow 14:00 p1 @Work #important", testRef)

	want := map[AnnotationType]Annotation{
		AnnotationPriority:      {Start: 23, End: 25, Text: "p1", Type: AnnotationPriority},
		AnnotationProject:       {Start: 26, End: 31, Text: "@Work", Type: AnnotationProject},
		AnnotationLabel:         {Start: 32, End: 42, Text: "#important", Type: AnnotationLabel},
		AnnotationTime:          {Start: 17, End: 22, Text: "14:00", Type: AnnotationTime},
		AnnotationScheduledDate: {Start: 8, End: 16, Text: "tomorrow", Type: AnnotationScheduledDate},
	}

	require.Len(t, got.Annotations, len(want))
	for _, a := range got.Annotations {
		assert.Equal(t, want[a.Type], a)
	}
}

// Repeated markers must annotate distinct occurrences of the same text.
func TestParseAnnotationRepeatedText(t *testing.T) {
	p := NewWithCalendar(English(), testCalendar())
	got := p.Parse("x #a #a", testRef)

	assert.Equal(t, []string{"a", "a"}, got.Labels)
	require.Len(t, got.Annotations, 2)
	assert.Equal(t, Annotation{Start: 2, End: 4, Text: "#a", Type: AnnotationLabel}, got.Annotations[0])
	assert.Equal(t, Annotation{Start: 5, End: 7, Text: "#a", Type: AnnotationLabel}, got.Annotations[1])
}

func TestParseWithoutLanguage(t *testing.T) {
	p := NewWithCalendar(nil, testCalendar())
	got := p.Parse("Meeting tomorrow 14:00 p1 @Work", testRef)

	assert.Equal(t, "Meeting tomorrow 14:00 p1 @Work", got.Title)
	assert.Nil(t, got.ScheduledDate)
	assert.Nil(t, got.Time)
	assert.Zero(t, got.Priority)
	assert.Empty(t, got.Project)
	assert.Empty(t, got.Annotations)
}

// The parser shares no mutable state, so concurrent use of one instance must
// be safe. Run with -race.
func TestParseConcurrent(t *testing.T) {
	p := NewWithCalendar(English(), testCalendar())
	done := make(chan ParsedTask, 8)

	for i := 0; i < 8; i++ {
		go func() {
			done <- p.Parse("Review PR tomorrow 9am @Work #code", testRef)
		}()
	}
	for i := 0; i < 8; i++ {
		got := <-done
		assert.Equal(t, "Review PR", got.Title)
		assert.Equal(t, day(2025, time.October, 20), got.ScheduledDate)
		assert.Equal(t, clock(9, 0), got.Time)
	}
}
