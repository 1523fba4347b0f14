package quickparse

import "time"

func spanishSpec() LanguageSpec {
	weekdays := map[string]time.Weekday{
		"lunes":     time.Monday,
		"martes":    time.Tuesday,
		"miércoles": time.Wednesday,
		"miercoles": time.Wednesday,
		"jueves":    time.Thursday,
		"viernes":   time.Friday,
		"sábado":    time.Saturday,
		"sabado":    time.Saturday,
		"domingo":   time.Sunday,
	}

	relatives := []RelativeDateEntry{
		{Keyword: "hoy", Modifier: DateModifier{Kind: ModifierToday}},
		{Keyword: "mañana", Modifier: DateModifier{Kind: ModifierTomorrow}},
		{Keyword: "pasado mañana", Modifier: DateModifier{Kind: ModifierDayAfterTomorrow}},
		{Keyword: "la próxima semana", Modifier: DateModifier{Kind: ModifierNextWeek}},
		{Keyword: "próxima semana", Modifier: DateModifier{Kind: ModifierNextWeek}},
		{Keyword: "el próximo mes", Modifier: DateModifier{Kind: ModifierNextMonth}},
		{Keyword: "próximo mes", Modifier: DateModifier{Kind: ModifierNextMonth}},
		{Keyword: "el próximo año", Modifier: DateModifier{Kind: ModifierNextYear}},
		{Keyword: "próximo año", Modifier: DateModifier{Kind: ModifierNextYear}},
	}
	relatives = append(relatives, nextWeekdayEntries("el próximo %s", weekdays)...)
	relatives = append(relatives, nextWeekdayEntries("%s", weekdays)...)

	recurrences := []RecurrenceEntry{
		{Keyword: "todos los días", Template: RecurringPattern{Frequency: FrequencyDaily, Interval: 1}},
		{Keyword: "cada día", Template: RecurringPattern{Frequency: FrequencyDaily, Interval: 1}},
		{Keyword: "diariamente", Template: RecurringPattern{Frequency: FrequencyDaily, Interval: 1}},
		{Keyword: "todas las semanas", Template: RecurringPattern{Frequency: FrequencyWeekly, Interval: 1}},
		{Keyword: "cada semana", Template: RecurringPattern{Frequency: FrequencyWeekly, Interval: 1}},
		{Keyword: "semanalmente", Template: RecurringPattern{Frequency: FrequencyWeekly, Interval: 1}},
		{Keyword: "todos los meses", Template: RecurringPattern{Frequency: FrequencyMonthly, Interval: 1}},
		{Keyword: "cada mes", Template: RecurringPattern{Frequency: FrequencyMonthly, Interval: 1}},
		{Keyword: "mensualmente", Template: RecurringPattern{Frequency: FrequencyMonthly, Interval: 1}},
		{Keyword: "todos los años", Template: RecurringPattern{Frequency: FrequencyYearly, Interval: 1}},
		{Keyword: "cada año", Template: RecurringPattern{Frequency: FrequencyYearly, Interval: 1}},
		{Keyword: "anualmente", Template: RecurringPattern{Frequency: FrequencyYearly, Interval: 1}},
	}
	recurrences = append(recurrences, weeklyOnEntries("cada %s", weekdays)...)

	return LanguageSpec{
		Code: "es",

		RelativeDates:    relatives,
		Recurrences:      recurrences,
		DeadlineKeywords: []string{"para el", "para", "antes del", "antes de"},

		TimeTemplates: []string{
			`(?:a las?\s+)?(?P<hour>\d{1,2}):(?P<minute>\d{2})`,
			`a las?\s+(?P<hour>\d{1,2})`,
		},
		DeadlineTimeTemplates: []string{
			`(?:para|antes de)\s+las?\s+(?P<hour>\d{1,2})(?::(?P<minute>\d{2}))?`,
		},

		IntervalTemplates: []string{
			`cada\s+(?P<count>\d+)\s+(?P<unit>días?|dias?|semanas?|meses|mes|años?|anos?)`,
		},
		IntervalUnits: map[string]Frequency{
			"día": FrequencyDaily, "días": FrequencyDaily,
			"dia": FrequencyDaily, "dias": FrequencyDaily,
			"semana": FrequencyWeekly, "semanas": FrequencyWeekly,
			"mes": FrequencyMonthly, "meses": FrequencyMonthly,
			"año": FrequencyYearly, "años": FrequencyYearly,
			"ano": FrequencyYearly, "anos": FrequencyYearly,
		},
		RecurrenceIndicators: []string{"cada", "todos", "todas"},

		Weekdays: weekdays,
		Months: map[string]time.Month{
			"enero": time.January, "febrero": time.February, "marzo": time.March,
			"abril": time.April, "mayo": time.May, "junio": time.June,
			"julio": time.July, "agosto": time.August, "septiembre": time.September,
			"octubre": time.October, "noviembre": time.November, "diciembre": time.December,
		},
		TodayWords:  []string{"hoy", "mañana", "pasado mañana"},
		Connectors:  []string{"a las", "a la", "a", "el"},
		DateInfixes: []string{"de", "del"},
		MonthFirst:  false,
	}
}
