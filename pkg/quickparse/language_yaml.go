package quickparse

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// languageFile is the YAML shape of a language definition. Weekday values are
// English day names, months map keywords to their 1-12 number, frequencies
// and modifier kinds are the lowercase strings below.
type languageFile struct {
	Code string `yaml:"code"`

	RelativeDates []struct {
		Keyword string `yaml:"keyword"`
		Kind    string `yaml:"kind"` // today|tomorrow|day_after_tomorrow|next_week|next_month|next_year|next_weekday|days_offset
		Weekday string `yaml:"weekday,omitempty"`
		Days    int    `yaml:"days,omitempty"`
	} `yaml:"relative_dates"`

	Recurrences []struct {
		Keyword     string   `yaml:"keyword"`
		Frequency   string   `yaml:"frequency"` // daily|weekly|monthly|yearly
		Interval    int      `yaml:"interval,omitempty"`
		DaysOfWeek  []string `yaml:"days_of_week,omitempty"`
		DayOfMonth  int      `yaml:"day_of_month,omitempty"`
		WeekOfMonth int      `yaml:"week_of_month,omitempty"`
	} `yaml:"recurrences"`

	DeadlineKeywords []string `yaml:"deadline_keywords"`

	TimeTemplates         []string `yaml:"time_templates"`
	DeadlineTimeTemplates []string `yaml:"deadline_time_templates"`

	IntervalTemplates    []string          `yaml:"interval_templates"`
	IntervalUnits        map[string]string `yaml:"interval_units"`
	RecurrenceIndicators []string          `yaml:"recurrence_indicators"`

	Weekdays    map[string]string `yaml:"weekdays"`
	Months      map[string]int    `yaml:"months"`
	TodayWords  []string          `yaml:"today_words"`
	Connectors  []string          `yaml:"connectors"`
	DateInfixes []string          `yaml:"date_infixes"`
	MonthFirst  bool              `yaml:"month_first"`
}

// LoadLanguageFile reads a YAML language definition and compiles it. Entries
// with unknown kinds, weekdays or frequencies are rejected so that a typo in
// a table fails loudly at load time rather than silently never matching.
func LoadLanguageFile(path string) (*LanguageConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read language file: %w", err)
	}

	var file languageFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse language file %s: %w", path, err)
	}

	spec, err := file.toSpec()
	if err != nil {
		return nil, fmt.Errorf("language file %s: %w", path, err)
	}
	return NewLanguage(spec)
}

func (f *languageFile) toSpec() (LanguageSpec, error) {
	spec := LanguageSpec{
		Code:                  f.Code,
		DeadlineKeywords:      f.DeadlineKeywords,
		TimeTemplates:         f.TimeTemplates,
		DeadlineTimeTemplates: f.DeadlineTimeTemplates,
		IntervalTemplates:     f.IntervalTemplates,
		RecurrenceIndicators:  f.RecurrenceIndicators,
		TodayWords:            f.TodayWords,
		Connectors:            f.Connectors,
		DateInfixes:           f.DateInfixes,
		MonthFirst:            f.MonthFirst,
	}

	for _, rd := range f.RelativeDates {
		mod, err := modifierFromStrings(rd.Kind, rd.Weekday, rd.Days)
		if err != nil {
			return LanguageSpec{}, fmt.Errorf("relative date %q: %w", rd.Keyword, err)
		}
		spec.RelativeDates = append(spec.RelativeDates, RelativeDateEntry{Keyword: rd.Keyword, Modifier: mod})
	}

	for _, rec := range f.Recurrences {
		freq, err := frequencyFromString(rec.Frequency)
		if err != nil {
			return LanguageSpec{}, fmt.Errorf("recurrence %q: %w", rec.Keyword, err)
		}
		tpl := RecurringPattern{
			Frequency:   freq,
			Interval:    rec.Interval,
			DayOfMonth:  rec.DayOfMonth,
			WeekOfMonth: rec.WeekOfMonth,
		}
		for _, name := range rec.DaysOfWeek {
			wd, err := weekdayFromString(name)
			if err != nil {
				return LanguageSpec{}, fmt.Errorf("recurrence %q: %w", rec.Keyword, err)
			}
			tpl.DaysOfWeek = append(tpl.DaysOfWeek, wd)
		}
		spec.Recurrences = append(spec.Recurrences, RecurrenceEntry{Keyword: rec.Keyword, Template: tpl})
	}

	if len(f.IntervalUnits) > 0 {
		spec.IntervalUnits = make(map[string]Frequency, len(f.IntervalUnits))
		for unit, name := range f.IntervalUnits {
			freq, err := frequencyFromString(name)
			if err != nil {
				return LanguageSpec{}, fmt.Errorf("interval unit %q: %w", unit, err)
			}
			spec.IntervalUnits[unit] = freq
		}
	}

	if len(f.Weekdays) > 0 {
		spec.Weekdays = make(map[string]time.Weekday, len(f.Weekdays))
		for keyword, name := range f.Weekdays {
			wd, err := weekdayFromString(name)
			if err != nil {
				return LanguageSpec{}, fmt.Errorf("weekday %q: %w", keyword, err)
			}
			spec.Weekdays[keyword] = wd
		}
	}

	if len(f.Months) > 0 {
		spec.Months = make(map[string]time.Month, len(f.Months))
		for keyword, num := range f.Months {
			if num < 1 || num > 12 {
				return LanguageSpec{}, fmt.Errorf("month %q: number %d out of range", keyword, num)
			}
			spec.Months[keyword] = time.Month(num)
		}
	}

	return spec, nil
}

func modifierFromStrings(kind, weekday string, days int) (DateModifier, error) {
	switch strings.ToLower(kind) {
	case "today":
		return DateModifier{Kind: ModifierToday}, nil
	case "tomorrow":
		return DateModifier{Kind: ModifierTomorrow}, nil
	case "day_after_tomorrow":
		return DateModifier{Kind: ModifierDayAfterTomorrow}, nil
	case "next_week":
		return DateModifier{Kind: ModifierNextWeek}, nil
	case "next_month":
		return DateModifier{Kind: ModifierNextMonth}, nil
	case "next_year":
		return DateModifier{Kind: ModifierNextYear}, nil
	case "next_weekday":
		wd, err := weekdayFromString(weekday)
		if err != nil {
			return DateModifier{}, err
		}
		return DateModifier{Kind: ModifierNextWeekday, Weekday: wd}, nil
	case "days_offset":
		return DateModifier{Kind: ModifierDaysOffset, Days: days}, nil
	}
	return DateModifier{}, fmt.Errorf("unknown modifier kind %q", kind)
}

func frequencyFromString(name string) (Frequency, error) {
	switch strings.ToLower(name) {
	case "daily":
		return FrequencyDaily, nil
	case "weekly":
		return FrequencyWeekly, nil
	case "monthly":
		return FrequencyMonthly, nil
	case "yearly", "annually":
		return FrequencyYearly, nil
	}
	return "", fmt.Errorf("unknown frequency %q", name)
}

func weekdayFromString(name string) (time.Weekday, error) {
	switch strings.ToLower(name) {
	case "sunday":
		return time.Sunday, nil
	case "monday":
		return time.Monday, nil
	case "tuesday":
		return time.Tuesday, nil
	case "wednesday":
		return time.Wednesday, nil
	case "thursday":
		return time.Thursday, nil
	case "friday":
		return time.Friday, nil
	case "saturday":
		return time.Saturday, nil
	}
	return 0, fmt.Errorf("unknown weekday %q", name)
}
