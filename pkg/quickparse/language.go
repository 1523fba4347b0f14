package quickparse

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// RelativeDateEntry binds a keyword phrase to the modifier it resolves to.
type RelativeDateEntry struct {
	Keyword  string
	Modifier DateModifier
}

// RecurrenceEntry binds a keyword phrase to the recurrence it produces.
type RecurrenceEntry struct {
	Keyword  string
	Template RecurringPattern
}

// LanguageSpec is the declarative definition of one language. It is the only
// thing needed to add a language: the engine itself is language-agnostic.
//
// Template fields hold regexp sources. Time and deadline+time templates must
// use the named groups hour, minute and meridiem; interval templates must
// use count and unit. Sources are compiled case-insensitively and matched
// with rune-aware word boundaries, so plain keyword spellings are enough.
type LanguageSpec struct {
	Code string

	RelativeDates    []RelativeDateEntry
	Recurrences      []RecurrenceEntry
	DeadlineKeywords []string

	TimeTemplates         []string
	DeadlineTimeTemplates []string

	IntervalTemplates []string
	IntervalUnits     map[string]Frequency

	// RecurrenceIndicators are the leading words of recurrence phrases
	// ("every", "alle", "cada"); a date span directly after one of them is
	// left for the recurrence phase.
	RecurrenceIndicators []string

	Weekdays   map[string]time.Weekday
	Months     map[string]time.Month
	TodayWords []string

	// Connectors are filler words stripped from the start of the title and
	// accepted between a date and its time ("at", "um", "à", "a las").
	Connectors []string

	// DateInfixes are words allowed inside a day+month date ("de" in
	// "24 de diciembre").
	DateInfixes []string

	// MonthFirst selects month/day order for slash-separated numeric dates.
	MonthFirst bool
}

// LanguageConfig is the compiled, immutable form of a LanguageSpec. Build it
// once via NewLanguage (or use a built-in) and share it across any number of
// concurrent Parse calls; it is never mutated afterwards.
type LanguageConfig struct {
	code string

	relativeDates    []RelativeDateEntry // longest keyword first
	recurrences      []RecurrenceEntry   // longest keyword first
	deadlineKeywords []string            // longest first
	connectors       []string            // longest first

	timeTemplates         []*regexp.Regexp
	deadlineTimeTemplates []*regexp.Regexp
	intervalTemplates     []*regexp.Regexp
	intervalUnits         map[string]Frequency

	recurrenceIndicators []string
	dateInfixes          []string
	weekdays             map[string]time.Weekday
	months               map[string]time.Month
	todayWords           []string
	monthFirst           bool

	spanRe         *regexp.Regexp // generic date/time span detector
	spanAtStartRe  *regexp.Regexp // span anchored at offset zero
	timeFragmentRe *regexp.Regexp // time fragment inside a span
	bareTimeRe     *regexp.Regexp // whole-string time fragment
}

// Code returns the language identifier ("en", "de", ...).
func (lc *LanguageConfig) Code() string { return lc.code }

// NewLanguage compiles a LanguageSpec. Template sources that do not compile
// are reported; empty tables are allowed and simply never match.
func NewLanguage(spec LanguageSpec) (*LanguageConfig, error) {
	lc := &LanguageConfig{
		code:                 spec.Code,
		relativeDates:        sortedRelatives(spec.RelativeDates),
		recurrences:          sortedRecurrences(spec.Recurrences),
		deadlineKeywords:     sortedByLength(spec.DeadlineKeywords),
		connectors:           sortedByLength(spec.Connectors),
		intervalUnits:        lowerFrequencyMap(spec.IntervalUnits),
		recurrenceIndicators: lowerAll(spec.RecurrenceIndicators),
		dateInfixes:          lowerAll(spec.DateInfixes),
		weekdays:             lowerWeekdayMap(spec.Weekdays),
		months:               lowerMonthMap(spec.Months),
		todayWords:           lowerAll(spec.TodayWords),
		monthFirst:           spec.MonthFirst,
	}

	var err error
	if lc.timeTemplates, err = compileAll(spec.TimeTemplates); err != nil {
		return nil, fmt.Errorf("language %s: time template: %w", spec.Code, err)
	}
	if lc.deadlineTimeTemplates, err = compileAll(spec.DeadlineTimeTemplates); err != nil {
		return nil, fmt.Errorf("language %s: deadline time template: %w", spec.Code, err)
	}
	if lc.intervalTemplates, err = compileAll(spec.IntervalTemplates); err != nil {
		return nil, fmt.Errorf("language %s: interval template: %w", spec.Code, err)
	}
	if err = lc.compileSpanDetector(); err != nil {
		return nil, fmt.Errorf("language %s: span detector: %w", spec.Code, err)
	}

	return lc, nil
}

func mustLanguage(spec LanguageSpec) *LanguageConfig {
	lc, err := NewLanguage(spec)
	if err != nil {
		panic(err)
	}
	return lc
}

// Lookup resolves a language code to a built-in configuration.
func Lookup(code string) (*LanguageConfig, bool) {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "en", "english":
		return English(), true
	case "de", "german", "deutsch":
		return German(), true
	case "fr", "french", "français", "francais":
		return French(), true
	case "es", "spanish", "español", "espanol":
		return Spanish(), true
	}
	return nil, false
}

// compileSpanDetector assembles the generic date/time span regexp from the
// language's weekday and month vocabulary. Dates may carry a trailing time,
// optionally joined by a connector or deadline keyword so that spans like
// "friday by 5pm" surface as one candidate and can be split by the engine.
func (lc *LanguageConfig) compileSpanDetector() error {
	dayNum := `\d{1,2}(?:st|nd|rd|th)?`

	dateAlts := []string{
		`\d{4}-\d{1,2}-\d{1,2}`,
	}
	if len(lc.months) > 0 {
		monthAlt := alternation(keysOfMonths(lc.months))
		infix := ""
		if len(lc.dateInfixes) > 0 {
			infix = `(?:(?:` + alternation(lc.dateInfixes) + `)\s+)?`
		}
		dateAlts = append(dateAlts,
			`(?:`+monthAlt+`)\s+`+dayNum+`(?:,?\s+\d{4})?`,
			dayNum+`\.?\s+`+infix+`(?:`+monthAlt+`)(?:\s+`+infix+`\d{4})?`,
		)
	}
	dateAlts = append(dateAlts, `\d{1,2}[./]\d{1,2}(?:[./]\d{2,4})?`)
	if len(lc.weekdays) > 0 {
		dateAlts = append(dateAlts, `(?:`+alternation(keysOfWeekdays(lc.weekdays))+`)`)
	}

	timeFragment := `\d{1,2}:\d{2}(?:\s*(?:am|pm))?|\d{1,2}\s*(?:am|pm)`

	links := append([]string{}, lc.connectors...)
	links = append(links, lc.deadlineKeywords...)
	link := ""
	if len(links) > 0 {
		link = `(?:(?:` + alternation(links) + `)\s+)?`
	}

	date := strings.Join(dateAlts, "|")
	src := fmt.Sprintf(`(?i)(?:%s)(?:\s+%s(?:%s))?|(?:%s)`, date, link, timeFragment, timeFragment)

	var err error
	if lc.spanRe, err = regexp.Compile(src); err != nil {
		return err
	}
	if lc.spanAtStartRe, err = regexp.Compile(`(?i)^(?:` + strings.TrimPrefix(src, `(?i)`) + `)`); err != nil {
		return err
	}
	if lc.timeFragmentRe, err = regexp.Compile(`(?i)` + timeFragment); err != nil {
		return err
	}
	lc.bareTimeRe, err = regexp.Compile(`(?i)^(?:` + timeFragment + `)$`)
	return err
}

// resolveDateText turns the date portion of a span ("friday", "oct 5",
// "12.10.2026", "2026-10-12") into an absolute start-of-day date. Dates
// without a year resolve to their next occurrence on or after the reference
// day; weekday names resolve strictly into the future.
func (lc *LanguageConfig) resolveDateText(text string, reference time.Time, cal Calendar) (time.Time, bool) {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return time.Time{}, false
	}

	if wd, ok := lc.weekdays[t]; ok {
		return Resolve(DateModifier{Kind: ModifierNextWeekday, Weekday: wd}, reference, cal), true
	}

	base := cal.startOfDay(reference)

	if m := isoDateRe.FindStringSubmatch(t); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		return buildDate(year, month, day, cal)
	}

	if m := numericDateRe.FindStringSubmatch(t); m != nil {
		first, _ := strconv.Atoi(m[1])
		second, _ := strconv.Atoi(m[3])
		day, month := first, second
		if m[2] == "/" && lc.monthFirst {
			day, month = second, first
		}
		if m[4] != "" {
			year, _ := strconv.Atoi(m[4])
			if year < 100 {
				year += 2000
			}
			return buildDate(year, month, day, cal)
		}
		return nextOccurrence(month, day, base, cal)
	}

	// Month-name forms: a month token plus a day number, optional year.
	month, day, year, ok := lc.scanMonthDate(t)
	if !ok {
		return time.Time{}, false
	}
	if year > 0 {
		return buildDate(year, int(month), day, cal)
	}
	return nextOccurrence(int(month), day, base, cal)
}

var (
	isoDateRe     = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	numericDateRe = regexp.MustCompile(`^(\d{1,2})([./])(\d{1,2})(?:[./](\d{2,4}))?$`)
	ordinalRe     = regexp.MustCompile(`^(\d{1,2})(?:st|nd|rd|th)?\.?$`)
	yearRe        = regexp.MustCompile(`^(\d{4})$`)
)

func (lc *LanguageConfig) scanMonthDate(t string) (time.Month, int, int, bool) {
	var (
		month time.Month
		day   int
		year  int
	)
	for _, tok := range strings.Fields(strings.ReplaceAll(t, ",", " ")) {
		if lc.isDateInfix(tok) {
			continue
		}
		if m, ok := lc.months[tok]; ok && month == 0 {
			month = m
			continue
		}
		if m := yearRe.FindStringSubmatch(tok); m != nil && year == 0 {
			year, _ = strconv.Atoi(m[1])
			continue
		}
		if m := ordinalRe.FindStringSubmatch(tok); m != nil && day == 0 {
			day, _ = strconv.Atoi(m[1])
			continue
		}
		return 0, 0, 0, false
	}
	if month == 0 || day == 0 {
		return 0, 0, 0, false
	}
	return month, day, year, true
}

func (lc *LanguageConfig) isDateInfix(tok string) bool {
	for _, w := range lc.dateInfixes {
		if tok == w {
			return true
		}
	}
	return false
}

func buildDate(year, month, day int, cal Calendar) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, cal.location())
	if d.Day() != day {
		// Overflowed into the next month (e.g. Feb 31).
		return time.Time{}, false
	}
	return d, true
}

// nextOccurrence picks the first year in which month/day falls on or after
// the reference day.
func nextOccurrence(month, day int, base time.Time, cal Calendar) (time.Time, bool) {
	d, ok := buildDate(base.Year(), month, day, cal)
	if !ok {
		return time.Time{}, false
	}
	if d.Before(base) {
		return buildDate(base.Year()+1, month, day, cal)
	}
	return d, true
}

// --- construction helpers ---

func sortedRelatives(entries []RelativeDateEntry) []RelativeDateEntry {
	out := make([]RelativeDateEntry, len(entries))
	for i, e := range entries {
		e.Keyword = strings.ToLower(e.Keyword)
		out[i] = e
	}
	sort.SliceStable(out, func(i, j int) bool { return len(out[i].Keyword) > len(out[j].Keyword) })
	return out
}

func sortedRecurrences(entries []RecurrenceEntry) []RecurrenceEntry {
	out := make([]RecurrenceEntry, len(entries))
	for i, e := range entries {
		e.Keyword = strings.ToLower(e.Keyword)
		out[i] = e
	}
	sort.SliceStable(out, func(i, j int) bool { return len(out[i].Keyword) > len(out[j].Keyword) })
	return out
}

func sortedByLength(words []string) []string {
	out := lowerAll(words)
	sort.SliceStable(out, func(i, j int) bool { return len(out[i]) > len(out[j]) })
	return out
}

func lowerAll(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = strings.ToLower(w)
	}
	return out
}

func lowerFrequencyMap(m map[string]Frequency) map[string]Frequency {
	out := make(map[string]Frequency, len(m))
	for k, v := range m {
		out[strings.ToLower(k)] = v
	}
	return out
}

func lowerWeekdayMap(m map[string]time.Weekday) map[string]time.Weekday {
	out := make(map[string]time.Weekday, len(m))
	for k, v := range m {
		out[strings.ToLower(k)] = v
	}
	return out
}

func lowerMonthMap(m map[string]time.Month) map[string]time.Month {
	out := make(map[string]time.Month, len(m))
	for k, v := range m {
		out[strings.ToLower(k)] = v
	}
	return out
}

func compileAll(sources []string) ([]*regexp.Regexp, error) {
	out := make([]*regexp.Regexp, 0, len(sources))
	for _, src := range sources {
		re, err := regexp.Compile(`(?i)` + src)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", src, err)
		}
		out = append(out, re)
	}
	return out, nil
}

// alternation builds a regexp alternation of quoted literals, longest first
// so that shorter words never shadow longer phrases.
func alternation(words []string) string {
	sorted := sortedByLength(words)
	quoted := make([]string, 0, len(sorted))
	for _, w := range sorted {
		if w == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(w))
	}
	return strings.Join(quoted, "|")
}

func keysOfWeekdays(m map[string]time.Weekday) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func keysOfMonths(m map[string]time.Month) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
