package quickparse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	cal := testCalendar()
	// Sunday.
	ref := time.Date(2025, 10, 19, 15, 42, 7, 0, time.UTC)

	cases := []struct {
		name string
		mod  DateModifier
		want time.Time
	}{
		{"today anchors to midnight", DateModifier{Kind: ModifierToday}, *day(2025, time.October, 19)},
		{"tomorrow", DateModifier{Kind: ModifierTomorrow}, *day(2025, time.October, 20)},
		{"day after tomorrow", DateModifier{Kind: ModifierDayAfterTomorrow}, *day(2025, time.October, 21)},
		{"days offset", DateModifier{Kind: ModifierDaysOffset, Days: 10}, *day(2025, time.October, 29)},
		{"next week", DateModifier{Kind: ModifierNextWeek}, *day(2025, time.October, 26)},
		{"next month", DateModifier{Kind: ModifierNextMonth}, *day(2025, time.November, 19)},
		{"next year", DateModifier{Kind: ModifierNextYear}, *day(2026, time.October, 19)},
		{"next monday from sunday is one day ahead", DateModifier{Kind: ModifierNextWeekday, Weekday: time.Monday}, *day(2025, time.October, 20)},
		{"next friday from sunday", DateModifier{Kind: ModifierNextWeekday, Weekday: time.Friday}, *day(2025, time.October, 24)},
		{"next sunday is never the reference day", DateModifier{Kind: ModifierNextWeekday, Weekday: time.Sunday}, *day(2025, time.October, 26)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Resolve(tc.mod, ref, cal))
		})
	}
}

// The strictly-future rule holds regardless of which day the week starts on.
func TestResolveNextWeekdayWeekStart(t *testing.T) {
	ref := time.Date(2025, 10, 22, 9, 0, 0, 0, time.UTC) // Wednesday

	for _, start := range []time.Weekday{time.Monday, time.Sunday, time.Saturday} {
		cal := Calendar{Location: time.UTC, WeekStart: start}
		for wd := time.Sunday; wd <= time.Saturday; wd++ {
			got := Resolve(DateModifier{Kind: ModifierNextWeekday, Weekday: wd}, ref, cal)
			diff := int(got.Sub(*day(2025, time.October, 22)).Hours() / 24)
			assert.Equal(t, wd, got.Weekday())
			assert.GreaterOrEqual(t, diff, 1, "week start %s, target %s", start, wd)
			assert.LessOrEqual(t, diff, 7, "week start %s, target %s", start, wd)
		}
	}
}

func TestResolveTimezone(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*60*60)
	cal := Calendar{Location: loc, WeekStart: time.Monday}

	// 20:00 UTC on the 19th is already the 20th in UTC+7.
	ref := time.Date(2025, 10, 19, 20, 0, 0, 0, time.UTC)
	got := Resolve(DateModifier{Kind: ModifierTomorrow}, ref, cal)

	assert.Equal(t, time.Date(2025, 10, 21, 0, 0, 0, 0, loc), got)
}

func TestCalendarZeroLocationFallsBack(t *testing.T) {
	var cal Calendar
	got := cal.startOfDay(time.Date(2025, 10, 19, 13, 0, 0, 0, time.Local))
	assert.Equal(t, 0, got.Hour())
	assert.Equal(t, time.Local, got.Location())
}
