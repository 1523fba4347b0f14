package quickparse

import "time"

func englishSpec() LanguageSpec {
	weekdays := map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}

	relatives := []RelativeDateEntry{
		{Keyword: "today", Modifier: DateModifier{Kind: ModifierToday}},
		{Keyword: "tonight", Modifier: DateModifier{Kind: ModifierToday}},
		{Keyword: "tomorrow", Modifier: DateModifier{Kind: ModifierTomorrow}},
		{Keyword: "day after tomorrow", Modifier: DateModifier{Kind: ModifierDayAfterTomorrow}},
		{Keyword: "next week", Modifier: DateModifier{Kind: ModifierNextWeek}},
		{Keyword: "next month", Modifier: DateModifier{Kind: ModifierNextMonth}},
		{Keyword: "next year", Modifier: DateModifier{Kind: ModifierNextYear}},
	}
	relatives = append(relatives, nextWeekdayEntries("next %s", weekdays)...)
	relatives = append(relatives, nextWeekdayEntries("%s", weekdays)...)

	recurrences := []RecurrenceEntry{
		{Keyword: "every day", Template: RecurringPattern{Frequency: FrequencyDaily, Interval: 1}},
		{Keyword: "daily", Template: RecurringPattern{Frequency: FrequencyDaily, Interval: 1}},
		{Keyword: "every week", Template: RecurringPattern{Frequency: FrequencyWeekly, Interval: 1}},
		{Keyword: "weekly", Template: RecurringPattern{Frequency: FrequencyWeekly, Interval: 1}},
		{Keyword: "every month", Template: RecurringPattern{Frequency: FrequencyMonthly, Interval: 1}},
		{Keyword: "monthly", Template: RecurringPattern{Frequency: FrequencyMonthly, Interval: 1}},
		{Keyword: "every year", Template: RecurringPattern{Frequency: FrequencyYearly, Interval: 1}},
		{Keyword: "yearly", Template: RecurringPattern{Frequency: FrequencyYearly, Interval: 1}},
		{Keyword: "annually", Template: RecurringPattern{Frequency: FrequencyYearly, Interval: 1}},
		{Keyword: "every other day", Template: RecurringPattern{Frequency: FrequencyDaily, Interval: 2}},
		{Keyword: "every other week", Template: RecurringPattern{Frequency: FrequencyWeekly, Interval: 2}},
		{Keyword: "every other month", Template: RecurringPattern{Frequency: FrequencyMonthly, Interval: 2}},
		{Keyword: "every weekday", Template: RecurringPattern{Frequency: FrequencyWeekly, Interval: 1, DaysOfWeek: workdays()}},
		{Keyword: "every weekend", Template: RecurringPattern{Frequency: FrequencyWeekly, Interval: 1, DaysOfWeek: []time.Weekday{time.Saturday, time.Sunday}}},
	}
	recurrences = append(recurrences, weeklyOnEntries("every %s", weekdays)...)

	return LanguageSpec{
		Code: "en",

		RelativeDates:    relatives,
		Recurrences:      recurrences,
		DeadlineKeywords: []string{"due by", "by", "due", "until"},

		TimeTemplates: []string{
			`(?:at\s+)?(?P<hour>\d{1,2}):(?P<minute>\d{2})(?:\s*(?P<meridiem>am|pm))?`,
			`(?:at\s+)?(?P<hour>\d{1,2})\s*(?P<meridiem>am|pm)`,
		},
		DeadlineTimeTemplates: []string{
			`(?:due by|until|due|by)\s+(?P<hour>\d{1,2}):(?P<minute>\d{2})(?:\s*(?P<meridiem>am|pm))?`,
			`(?:due by|until|due|by)\s+(?P<hour>\d{1,2})\s*(?P<meridiem>am|pm)`,
		},

		IntervalTemplates: []string{
			`every\s+(?P<count>\d+)\s+(?P<unit>days?|weeks?|months?|years?)`,
		},
		IntervalUnits: map[string]Frequency{
			"day": FrequencyDaily, "days": FrequencyDaily,
			"week": FrequencyWeekly, "weeks": FrequencyWeekly,
			"month": FrequencyMonthly, "months": FrequencyMonthly,
			"year": FrequencyYearly, "years": FrequencyYearly,
		},
		RecurrenceIndicators: []string{"every"},

		Weekdays: weekdays,
		Months: map[string]time.Month{
			"january": time.January, "jan": time.January,
			"february": time.February, "feb": time.February,
			"march": time.March, "mar": time.March,
			"april": time.April, "apr": time.April,
			"may": time.May,
			"june": time.June, "jun": time.June,
			"july": time.July, "jul": time.July,
			"august": time.August, "aug": time.August,
			"september": time.September, "sep": time.September, "sept": time.September,
			"october": time.October, "oct": time.October,
			"november": time.November, "nov": time.November,
			"december": time.December, "dec": time.December,
		},
		TodayWords: []string{"today", "tomorrow", "tonight"},
		Connectors: []string{"at", "on"},
		MonthFirst: true,
	}
}
