package quickparse

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	cases := []struct {
		code string
		want *LanguageConfig
	}{
		{"en", English()},
		{"English", English()},
		{"de", German()},
		{"deutsch", German()},
		{"FR", French()},
		{"français", French()},
		{"es", Spanish()},
		{"español", Spanish()},
	}
	for _, tc := range cases {
		got, ok := Lookup(tc.code)
		assert.True(t, ok, tc.code)
		assert.Same(t, tc.want, got, tc.code)
	}

	_, ok := Lookup("klingon")
	assert.False(t, ok)
}

func TestNewLanguageRejectsBadTemplate(t *testing.T) {
	_, err := NewLanguage(LanguageSpec{
		Code:          "xx",
		TimeTemplates: []string{`(?P<hour>\d{1,2`},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "time template")
}

// A language with empty tables must never panic; unrecognized constructs
// just end up in the title.
func TestParseWithEmptyLanguage(t *testing.T) {
	lang, err := NewLanguage(LanguageSpec{Code: "xx"})
	require.NoError(t, err)

	p := NewWithCalendar(lang, testCalendar())
	got := p.Parse("Meeting tomorrow at 14:00", testRef)

	assert.Equal(t, "Meeting tomorrow at 14:00", got.Title)
	assert.Nil(t, got.ScheduledDate)
	assert.Nil(t, got.Deadline)
	assert.Nil(t, got.Time)
	assert.Nil(t, got.Recurring)
}

// Impossible calendar dates are dropped rather than rolled over.
func TestParseRejectsOverflowingDate(t *testing.T) {
	p := NewWithCalendar(English(), testCalendar())
	got := p.Parse("Meet feb 31", testRef)

	assert.Nil(t, got.ScheduledDate)
	assert.Equal(t, "Meet feb 31", got.Title)
}

const testLanguageYAML = `
code: it
relative_dates:
  - keyword: oggi
    kind: today
  - keyword: domani
    kind: tomorrow
  - keyword: dopodomani
    kind: day_after_tomorrow
  - keyword: lunedì prossimo
    kind: next_weekday
    weekday: monday
  - keyword: fra tre giorni
    kind: days_offset
    days: 3
recurrences:
  - keyword: ogni giorno
    frequency: daily
  - keyword: ogni lunedì
    frequency: weekly
    days_of_week: [monday]
deadline_keywords: [entro il, entro]
time_templates:
  - '(?:alle\s+)?(?P<hour>\d{1,2}):(?P<minute>\d{2})'
interval_templates:
  - 'ogni\s+(?P<count>\d+)\s+(?P<unit>giorni|settimane)'
interval_units:
  giorni: daily
  settimane: weekly
recurrence_indicators: [ogni]
weekdays:
  lunedì: monday
  martedì: tuesday
  venerdì: friday
months:
  gennaio: 1
  marzo: 3
  dicembre: 12
today_words: [oggi, domani]
connectors: [alle, il]
date_infixes: [di]
`

func writeLanguageFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lang.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadLanguageFile(t *testing.T) {
	lang, err := LoadLanguageFile(writeLanguageFile(t, testLanguageYAML))
	require.NoError(t, err)
	assert.Equal(t, "it", lang.Code())

	p := NewWithCalendar(lang, testCalendar())

	got := p.Parse("Chiamare Luca domani alle 14:00", testRef)
	assert.Equal(t, "Chiamare Luca", got.Title)
	assert.Equal(t, day(2025, time.October, 20), got.ScheduledDate)
	assert.Equal(t, clock(14, 0), got.Time)

	got = p.Parse("Palestra ogni 2 settimane", testRef)
	assert.Equal(t, "Palestra", got.Title)
	assert.Equal(t, &RecurringPattern{Frequency: FrequencyWeekly, Interval: 2}, got.Recurring)

	got = p.Parse("Pagare entro il 15 marzo", testRef)
	assert.Equal(t, "Pagare", got.Title)
	assert.Equal(t, day(2026, time.March, 15), got.Deadline)

	got = p.Parse("Ripasso fra tre giorni", testRef)
	assert.Equal(t, "Ripasso", got.Title)
	assert.Equal(t, day(2025, time.October, 22), got.ScheduledDate)
}

func TestLoadLanguageFileErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadLanguageFile(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := LoadLanguageFile(writeLanguageFile(t, "code: [broken"))
		assert.Error(t, err)
	})

	t.Run("unknown modifier kind", func(t *testing.T) {
		_, err := LoadLanguageFile(writeLanguageFile(t, `
code: xx
relative_dates:
  - keyword: soon
    kind: someday
`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "someday")
	})

	t.Run("unknown weekday", func(t *testing.T) {
		_, err := LoadLanguageFile(writeLanguageFile(t, `
code: xx
weekdays:
  blursday: blursday
`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "blursday")
	})

	t.Run("month out of range", func(t *testing.T) {
		_, err := LoadLanguageFile(writeLanguageFile(t, `
code: xx
months:
  tredicembre: 13
`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "out of range")
	})

	t.Run("unknown frequency", func(t *testing.T) {
		_, err := LoadLanguageFile(writeLanguageFile(t, `
code: xx
recurrences:
  - keyword: sometimes
    frequency: sporadic
`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sporadic")
	})
}
