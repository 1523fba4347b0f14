package quickparse

import "time"

func germanSpec() LanguageSpec {
	weekdays := map[string]time.Weekday{
		"montag":     time.Monday,
		"dienstag":   time.Tuesday,
		"mittwoch":   time.Wednesday,
		"donnerstag": time.Thursday,
		"freitag":    time.Friday,
		"samstag":    time.Saturday,
		"sonntag":    time.Sunday,
	}

	relatives := []RelativeDateEntry{
		{Keyword: "heute", Modifier: DateModifier{Kind: ModifierToday}},
		{Keyword: "morgen", Modifier: DateModifier{Kind: ModifierTomorrow}},
		{Keyword: "übermorgen", Modifier: DateModifier{Kind: ModifierDayAfterTomorrow}},
		{Keyword: "nächste woche", Modifier: DateModifier{Kind: ModifierNextWeek}},
		{Keyword: "nächsten monat", Modifier: DateModifier{Kind: ModifierNextMonth}},
		{Keyword: "nächstes jahr", Modifier: DateModifier{Kind: ModifierNextYear}},
	}
	relatives = append(relatives, nextWeekdayEntries("nächsten %s", weekdays)...)
	relatives = append(relatives, nextWeekdayEntries("%s", weekdays)...)

	recurrences := []RecurrenceEntry{
		{Keyword: "täglich", Template: RecurringPattern{Frequency: FrequencyDaily, Interval: 1}},
		{Keyword: "jeden tag", Template: RecurringPattern{Frequency: FrequencyDaily, Interval: 1}},
		{Keyword: "wöchentlich", Template: RecurringPattern{Frequency: FrequencyWeekly, Interval: 1}},
		{Keyword: "jede woche", Template: RecurringPattern{Frequency: FrequencyWeekly, Interval: 1}},
		{Keyword: "monatlich", Template: RecurringPattern{Frequency: FrequencyMonthly, Interval: 1}},
		{Keyword: "jeden monat", Template: RecurringPattern{Frequency: FrequencyMonthly, Interval: 1}},
		{Keyword: "jährlich", Template: RecurringPattern{Frequency: FrequencyYearly, Interval: 1}},
		{Keyword: "jedes jahr", Template: RecurringPattern{Frequency: FrequencyYearly, Interval: 1}},
		{Keyword: "jeden werktag", Template: RecurringPattern{Frequency: FrequencyWeekly, Interval: 1, DaysOfWeek: workdays()}},
	}
	recurrences = append(recurrences, weeklyOnEntries("jeden %s", weekdays)...)

	return LanguageSpec{
		Code: "de",

		RelativeDates:    relatives,
		Recurrences:      recurrences,
		DeadlineKeywords: []string{"bis zum", "bis", "fällig am", "fällig"},

		TimeTemplates: []string{
			`(?:um\s+)?(?P<hour>\d{1,2}):(?P<minute>\d{2})(?:\s*uhr)?`,
			`(?:um\s+)?(?P<hour>\d{1,2})\s*uhr`,
		},
		DeadlineTimeTemplates: []string{
			`(?:bis zum|bis um|bis)\s+(?P<hour>\d{1,2}):(?P<minute>\d{2})(?:\s*uhr)?`,
			`(?:bis zum|bis um|bis)\s+(?P<hour>\d{1,2})\s*uhr`,
		},

		IntervalTemplates: []string{
			`alle\s+(?P<count>\d+)\s+(?P<unit>tage?n?|wochen?|monate?n?|jahre?n?)`,
		},
		IntervalUnits: map[string]Frequency{
			"tag": FrequencyDaily, "tage": FrequencyDaily, "tagen": FrequencyDaily,
			"woche": FrequencyWeekly, "wochen": FrequencyWeekly,
			"monat": FrequencyMonthly, "monate": FrequencyMonthly, "monaten": FrequencyMonthly,
			"jahr": FrequencyYearly, "jahre": FrequencyYearly, "jahren": FrequencyYearly,
		},
		RecurrenceIndicators: []string{"alle", "jeden", "jede", "jedes"},

		Weekdays: weekdays,
		Months: map[string]time.Month{
			"januar": time.January, "februar": time.February,
			"märz": time.March, "maerz": time.March,
			"april": time.April, "mai": time.May, "juni": time.June,
			"juli": time.July, "august": time.August, "september": time.September,
			"oktober": time.October, "november": time.November, "dezember": time.December,
		},
		TodayWords: []string{"heute", "morgen", "übermorgen"},
		Connectors: []string{"um", "am"},
		MonthFirst: false,
	}
}
