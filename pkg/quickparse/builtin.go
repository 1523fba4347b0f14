package quickparse

import (
	"fmt"
	"time"
)

// Built-in languages are compiled once at package load and shared; they are
// immutable, so handing the same pointer to every caller is safe.
var (
	english = mustLanguage(englishSpec())
	german  = mustLanguage(germanSpec())
	french  = mustLanguage(frenchSpec())
	spanish = mustLanguage(spanishSpec())
)

// English returns the built-in English configuration.
func English() *LanguageConfig { return english }

// German returns the built-in German configuration.
func German() *LanguageConfig { return german }

// French returns the built-in French configuration.
func French() *LanguageConfig { return french }

// Spanish returns the built-in Spanish configuration.
func Spanish() *LanguageConfig { return spanish }

// Languages lists the built-in configurations.
func Languages() []*LanguageConfig {
	return []*LanguageConfig{english, german, french, spanish}
}

// nextWeekdayEntries expands a phrase template ("next %s", "%s prochain")
// over every weekday name into relative-date entries.
func nextWeekdayEntries(format string, names map[string]time.Weekday) []RelativeDateEntry {
	out := make([]RelativeDateEntry, 0, len(names))
	for name, wd := range names {
		out = append(out, RelativeDateEntry{
			Keyword:  fmt.Sprintf(format, name),
			Modifier: DateModifier{Kind: ModifierNextWeekday, Weekday: wd},
		})
	}
	return out
}

// weeklyOnEntries expands a phrase template ("every %s", "jeden %s") over
// every weekday name into weekly recurrence entries.
func weeklyOnEntries(format string, names map[string]time.Weekday) []RecurrenceEntry {
	out := make([]RecurrenceEntry, 0, len(names))
	for name, wd := range names {
		out = append(out, RecurrenceEntry{
			Keyword: fmt.Sprintf(format, name),
			Template: RecurringPattern{
				Frequency:  FrequencyWeekly,
				Interval:   1,
				DaysOfWeek: []time.Weekday{wd},
			},
		})
	}
	return out
}

func workdays() []time.Weekday {
	return []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}
}
