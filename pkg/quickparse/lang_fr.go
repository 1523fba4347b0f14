package quickparse

import "time"

func frenchSpec() LanguageSpec {
	weekdays := map[string]time.Weekday{
		"lundi":    time.Monday,
		"mardi":    time.Tuesday,
		"mercredi": time.Wednesday,
		"jeudi":    time.Thursday,
		"vendredi": time.Friday,
		"samedi":   time.Saturday,
		"dimanche": time.Sunday,
	}

	relatives := []RelativeDateEntry{
		{Keyword: "aujourd'hui", Modifier: DateModifier{Kind: ModifierToday}},
		{Keyword: "demain", Modifier: DateModifier{Kind: ModifierTomorrow}},
		{Keyword: "après-demain", Modifier: DateModifier{Kind: ModifierDayAfterTomorrow}},
		{Keyword: "apres-demain", Modifier: DateModifier{Kind: ModifierDayAfterTomorrow}},
		{Keyword: "la semaine prochaine", Modifier: DateModifier{Kind: ModifierNextWeek}},
		{Keyword: "semaine prochaine", Modifier: DateModifier{Kind: ModifierNextWeek}},
		{Keyword: "le mois prochain", Modifier: DateModifier{Kind: ModifierNextMonth}},
		{Keyword: "mois prochain", Modifier: DateModifier{Kind: ModifierNextMonth}},
		{Keyword: "l'année prochaine", Modifier: DateModifier{Kind: ModifierNextYear}},
		{Keyword: "année prochaine", Modifier: DateModifier{Kind: ModifierNextYear}},
	}
	relatives = append(relatives, nextWeekdayEntries("%s prochain", weekdays)...)
	relatives = append(relatives, nextWeekdayEntries("%s", weekdays)...)

	recurrences := []RecurrenceEntry{
		{Keyword: "tous les jours", Template: RecurringPattern{Frequency: FrequencyDaily, Interval: 1}},
		{Keyword: "chaque jour", Template: RecurringPattern{Frequency: FrequencyDaily, Interval: 1}},
		{Keyword: "toutes les semaines", Template: RecurringPattern{Frequency: FrequencyWeekly, Interval: 1}},
		{Keyword: "chaque semaine", Template: RecurringPattern{Frequency: FrequencyWeekly, Interval: 1}},
		{Keyword: "tous les mois", Template: RecurringPattern{Frequency: FrequencyMonthly, Interval: 1}},
		{Keyword: "chaque mois", Template: RecurringPattern{Frequency: FrequencyMonthly, Interval: 1}},
		{Keyword: "tous les ans", Template: RecurringPattern{Frequency: FrequencyYearly, Interval: 1}},
		{Keyword: "chaque année", Template: RecurringPattern{Frequency: FrequencyYearly, Interval: 1}},
	}
	recurrences = append(recurrences, weeklyOnEntries("chaque %s", weekdays)...)
	recurrences = append(recurrences, weeklyOnEntries("tous les %ss", weekdays)...)

	return LanguageSpec{
		Code: "fr",

		RelativeDates:    relatives,
		Recurrences:      recurrences,
		DeadlineKeywords: []string{"avant le", "avant", "pour le", "d'ici"},

		TimeTemplates: []string{
			`(?:à\s+)?(?P<hour>\d{1,2})h(?P<minute>\d{2})?`,
			`(?P<hour>\d{1,2}):(?P<minute>\d{2})`,
		},
		DeadlineTimeTemplates: []string{
			`(?:avant le|avant|pour le|d'ici)\s+(?P<hour>\d{1,2})h(?P<minute>\d{2})?`,
			`(?:avant le|avant|pour le|d'ici)\s+(?P<hour>\d{1,2}):(?P<minute>\d{2})`,
		},

		IntervalTemplates: []string{
			`tous les\s+(?P<count>\d+)\s+(?P<unit>jours?|mois|ans?|années?)`,
			`toutes les\s+(?P<count>\d+)\s+(?P<unit>semaines?)`,
		},
		IntervalUnits: map[string]Frequency{
			"jour": FrequencyDaily, "jours": FrequencyDaily,
			"semaine": FrequencyWeekly, "semaines": FrequencyWeekly,
			"mois": FrequencyMonthly,
			"an":   FrequencyYearly, "ans": FrequencyYearly,
			"année": FrequencyYearly, "années": FrequencyYearly,
		},
		RecurrenceIndicators: []string{"tous", "toutes", "chaque"},

		Weekdays: weekdays,
		Months: map[string]time.Month{
			"janvier": time.January, "février": time.February, "fevrier": time.February,
			"mars": time.March, "avril": time.April, "mai": time.May,
			"juin": time.June, "juillet": time.July,
			"août": time.August, "aout": time.August,
			"septembre": time.September, "octobre": time.October,
			"novembre": time.November, "décembre": time.December, "decembre": time.December,
		},
		TodayWords: []string{"aujourd'hui", "demain", "après-demain", "apres-demain"},
		Connectors: []string{"à", "le", "la"},
		MonthFirst: false,
	}
}
