package quickparse

import "time"

// Calendar fixes the timezone and the first weekday used when resolving
// relative dates. The zero value is not usable; call DefaultCalendar or fill
// both fields.
type Calendar struct {
	Location  *time.Location
	WeekStart time.Weekday
}

// DefaultCalendar returns the Gregorian calendar in local time with Monday
// as the first day of the week.
func DefaultCalendar() Calendar {
	return Calendar{Location: time.Local, WeekStart: time.Monday}
}

func (c Calendar) location() *time.Location {
	if c.Location == nil {
		return time.Local
	}
	return c.Location
}

// startOfDay returns midnight of t's day in the calendar's timezone.
func (c Calendar) startOfDay(t time.Time) time.Time {
	loc := c.location()
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// weekdayIndex positions d within the calendar's week, 0 = WeekStart.
func (c Calendar) weekdayIndex(d time.Weekday) int {
	return (int(d) - int(c.WeekStart) + 7) % 7
}

// ModifierKind enumerates the supported relative-date instructions.
type ModifierKind int

const (
	ModifierToday ModifierKind = iota
	ModifierTomorrow
	ModifierDayAfterTomorrow
	ModifierNextWeekday
	ModifierNextWeek
	ModifierNextMonth
	ModifierNextYear
	ModifierDaysOffset
)

// DateModifier is a symbolic relative-date instruction. Weekday is only
// meaningful for ModifierNextWeekday, Days only for ModifierDaysOffset.
type DateModifier struct {
	Kind    ModifierKind
	Weekday time.Weekday
	Days    int
}

// Resolve turns a relative-date modifier into an absolute date.
//
// Every modifier anchors to the start of the reference day before adding its
// unit. ModifierNextWeekday always lands strictly in the future: when the
// target weekday is at or before the reference day within the calendar week,
// the result moves one extra week ahead, so it is 1 to 7 days away and never
// the reference day itself.
func Resolve(m DateModifier, reference time.Time, cal Calendar) time.Time {
	base := cal.startOfDay(reference)

	switch m.Kind {
	case ModifierToday:
		return base
	case ModifierTomorrow:
		return base.AddDate(0, 0, 1)
	case ModifierDayAfterTomorrow:
		return base.AddDate(0, 0, 2)
	case ModifierDaysOffset:
		return base.AddDate(0, 0, m.Days)
	case ModifierNextWeek:
		return base.AddDate(0, 0, 7)
	case ModifierNextMonth:
		return base.AddDate(0, 1, 0)
	case ModifierNextYear:
		return base.AddDate(1, 0, 0)
	case ModifierNextWeekday:
		delta := cal.weekdayIndex(m.Weekday) - cal.weekdayIndex(base.Weekday())
		if delta <= 0 {
			delta += 7
		}
		return base.AddDate(0, 0, delta)
	}

	return base
}
