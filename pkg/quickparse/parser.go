package quickparse

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser converts free-form task text into a structured ParsedTask. It runs
// eight extraction phases in a fixed order; the order encodes precedence
// (recurrence before relative dates, absolute dates before relative ones,
// anchored deadlines before keyword deadlines before bare times) and later
// phases never re-claim text an earlier phase consumed.
//
// A Parser is stateless apart from its configuration and safe for concurrent
// use.
type Parser struct {
	lang *LanguageConfig
	cal  Calendar
}

// New creates a parser for the given language with the default Gregorian,
// Monday-first calendar.
func New(lang *LanguageConfig) *Parser {
	return NewWithCalendar(lang, DefaultCalendar())
}

// NewWithCalendar creates a parser with an explicit calendar.
func NewWithCalendar(lang *LanguageConfig, cal Calendar) *Parser {
	if cal.Location == nil {
		cal.Location = time.Local
	}
	return &Parser{lang: lang, cal: cal}
}

// Parse parses input using lang, the default calendar and the current time.
func Parse(input string, lang *LanguageConfig) ParsedTask {
	return New(lang).Parse(input, time.Now())
}

// Parse converts input into a ParsedTask, resolving relative dates against
// the reference time. It never fails: any construct that cannot be resolved
// simply leaves the corresponding field absent, and an input without any
// recognized construct yields only a whitespace-normalized title.
func (p *Parser) Parse(input string, reference time.Time) ParsedTask {
	st := newParseState(input)

	if p.lang != nil {
		p.extractSymbols(st)
		p.extractDateSpans(st, reference)
		p.extractRecurrence(st)
		p.extractAnchoredDeadline(st)
		p.extractKeywordDeadline(st, reference)
		p.extractTime(st)
		p.extractRelativeDate(st, reference)
	}
	p.extractTitle(st)

	return *st.task
}

// parseState carries the two views of the input through the phases: the
// immutable original (source of truth for annotation ranges, tracked with a
// claimed-byte mask) and the residual working copy from which every
// recognized substring is blanked so later phases cannot re-match it.
type parseState struct {
	original string
	residual string
	claimed  []bool
	task     *ParsedTask
}

func newParseState(input string) *parseState {
	return &parseState{
		original: input,
		residual: input,
		claimed:  make([]bool, len(input)),
		task:     &ParsedTask{OriginalInput: input},
	}
}

func (st *parseState) overlapsClaimed(start, end int) bool {
	for i := start; i < end && i < len(st.claimed); i++ {
		if st.claimed[i] {
			return true
		}
	}
	return false
}

func (st *parseState) markClaimed(start, end int) {
	for i := start; i < end && i < len(st.claimed); i++ {
		st.claimed[i] = true
	}
}

// consumeResidual removes residual[start:end] from the working copy and
// annotates the corresponding range of the original. Because the residual is
// the original minus previously claimed text, the k-th occurrence of the
// matched text in the residual corresponds to the k-th unclaimed occurrence
// in the original.
func (st *parseState) consumeResidual(start, end int, typ AnnotationType) {
	if start < 0 || end > len(st.residual) || start >= end {
		return
	}
	text := st.residual[start:end]
	k := countOccurrences(st.residual[:start], text)
	st.annotateOriginal(text, k, typ)
	st.residual = st.residual[:start] + " " + st.residual[end:]
}

// consumeOriginal claims original[start:end] directly (used by the absolute
// date phase, which scans the original) and removes the matching occurrence
// from the residual.
func (st *parseState) consumeOriginal(start, end int, typ AnnotationType) {
	if start < 0 || end > len(st.original) || start >= end {
		return
	}
	text := st.original[start:end]

	// Count unclaimed occurrences before start so the right residual copy
	// gets removed.
	k, off := 0, 0
	for {
		idx := strings.Index(st.original[off:], text)
		if idx < 0 || off+idx >= start {
			break
		}
		at := off + idx
		if !st.overlapsClaimed(at, at+len(text)) {
			k++
		}
		off = at + len(text)
	}

	st.markClaimed(start, end)
	st.task.Annotations = append(st.task.Annotations, Annotation{Start: start, End: end, Text: text, Type: typ})
	st.removeFromResidual(text, k)
}

func (st *parseState) annotateOriginal(text string, k int, typ AnnotationType) {
	off, seen := 0, 0
	for {
		idx := strings.Index(st.original[off:], text)
		if idx < 0 {
			return
		}
		start := off + idx
		end := start + len(text)
		if !st.overlapsClaimed(start, end) {
			if seen == k {
				st.markClaimed(start, end)
				st.task.Annotations = append(st.task.Annotations, Annotation{Start: start, End: end, Text: text, Type: typ})
				return
			}
			seen++
		}
		off = start + len(text)
	}
}

func (st *parseState) removeFromResidual(text string, k int) {
	off, seen := 0, 0
	for {
		idx := strings.Index(st.residual[off:], text)
		if idx < 0 {
			return
		}
		start := off + idx
		if seen == k {
			st.residual = st.residual[:start] + " " + st.residual[start+len(text):]
			return
		}
		seen++
		off = start + len(text)
	}
}

func countOccurrences(s, text string) int {
	count, off := 0, 0
	for {
		idx := strings.Index(s[off:], text)
		if idx < 0 {
			return count
		}
		count++
		off += idx + len(text)
	}
}

// Symbol markers are fixed across languages.
var (
	priorityWordRe = regexp.MustCompile(`(?i)\bp([1-4])\b`)
	priorityBangRe = regexp.MustCompile(`!+`)
	projectRe      = regexp.MustCompile(`@([\p{L}\p{N}_][\p{L}\p{N}_\-/]*)`)
	labelRe        = regexp.MustCompile(`#([\p{L}\p{N}_][\p{L}\p{N}_\-/]*)`)
)

// Phase 1: priority, project and label markers.
func (p *Parser) extractSymbols(st *parseState) {
	p.extractPriority(st)
	p.extractProjects(st)
	p.extractLabels(st)
}

// extractPriority finds at most one marker; the earliest of the p1..p4 and
// bang forms wins. A run of more than three bangs is not a marker.
func (p *Parser) extractPriority(st *parseState) {
	wordLoc := priorityWordRe.FindStringSubmatchIndex(st.residual)

	var bangStart, bangEnd = -1, -1
	for off := 0; off < len(st.residual); {
		loc := priorityBangRe.FindStringIndex(st.residual[off:])
		if loc == nil {
			break
		}
		start, end := off+loc[0], off+loc[1]
		if end-start <= 3 {
			bangStart, bangEnd = start, end
			break
		}
		off = end
	}

	switch {
	case wordLoc == nil && bangStart < 0:
		return
	case wordLoc != nil && (bangStart < 0 || wordLoc[0] < bangStart):
		st.task.Priority = int(st.residual[wordLoc[2]] - '0')
		st.consumeResidual(wordLoc[0], wordLoc[1], AnnotationPriority)
	default:
		// !!! -> 1, !! -> 2, ! -> 3; there is no four-bang form.
		st.task.Priority = 4 - (bangEnd - bangStart)
		st.consumeResidual(bangStart, bangEnd, AnnotationPriority)
	}
}

// extractProjects stores the first @project but removes and annotates every
// marker.
func (p *Parser) extractProjects(st *parseState) {
	first := true
	for {
		loc := projectRe.FindStringSubmatchIndex(st.residual)
		if loc == nil {
			return
		}
		if first {
			st.task.Project = st.residual[loc[2]:loc[3]]
			first = false
		}
		st.consumeResidual(loc[0], loc[1], AnnotationProject)
	}
}

// extractLabels keeps every #label in order, duplicates and casing intact.
func (p *Parser) extractLabels(st *parseState) {
	for {
		loc := labelRe.FindStringSubmatchIndex(st.residual)
		if loc == nil {
			return
		}
		st.task.Labels = append(st.task.Labels, st.residual[loc[2]:loc[3]])
		st.consumeResidual(loc[0], loc[1], AnnotationLabel)
	}
}

// Phase 2: absolute date/time spans, detected against the original input.
// At most one candidate is accepted; the skip rules cede overlapping claims
// to the recurrence, deadline and relative-date phases.
func (p *Parser) extractDateSpans(st *parseState, reference time.Time) {
	lang := p.lang
	if lang.spanRe == nil {
		return
	}

	for _, span := range findAllValid(lang.spanRe, st.original) {
		start, end := span.start, span.end
		if st.overlapsClaimed(start, end) {
			continue
		}
		text := st.original[start:end]

		// (a) Split at an embedded deadline keyword; only the part before it
		// stays a scheduled-date candidate, the tail is left for phases 4/5.
		if cut, ok := lang.splitAtDeadline(text); ok {
			head := strings.TrimRight(text[:cut], " \t")
			if head == "" {
				continue
			}
			end = start + len(head)
			text = head
		}

		lower := strings.ToLower(text)

		// (b) Spans that begin with a deadline keyword belong to phase 5.
		if lang.hasDeadlinePrefix(lower) {
			continue
		}

		bareTime := lang.bareTimeRe.MatchString(strings.TrimSpace(lower))

		// (c) A full date right after a deadline keyword belongs to phase 5.
		// A bare time there is left alone so phase 4 can combine it.
		if !bareTime && precededByAny(st.original, start, lang.deadlineKeywords) {
			continue
		}

		// A bare time never becomes the scheduled date; phases 4 and 6 own it.
		if bareTime {
			continue
		}

		// (d) The first token must be a recognized date word or numeric.
		if !lang.validSpanLead(lower) {
			continue
		}

		// (e) Cede to the recurrence phase ("every monday").
		if precededByAny(st.original, start, lang.recurrenceIndicators) {
			continue
		}

		// Part of a longer relative phrase ("next monday"): phase 7's claim.
		if lang.inRelativePhrase(st.original, start, end) {
			continue
		}

		dateText, clock, hasClock := lang.splitSpanClock(text)
		when, ok := lang.resolveDateText(dateText, reference, p.cal)
		if !ok {
			continue
		}

		st.task.ScheduledDate = &when
		if hasClock {
			c := clock
			st.task.Time = &c
		}
		st.consumeOriginal(start, end, AnnotationScheduledDate)
		return
	}
}

// Phase 3: recurrence, keyword table first (longest wins), then the
// "every N <unit>" interval patterns.
func (p *Parser) extractRecurrence(st *parseState) {
	for _, entry := range p.lang.recurrences {
		idx := findKeyword(st.residual, entry.Keyword, 0)
		if idx < 0 {
			continue
		}
		pattern := entry.Template.normalized()
		st.task.Recurring = &pattern
		st.consumeResidual(idx, idx+len(entry.Keyword), AnnotationRecurring)
		return
	}

	for _, re := range p.lang.intervalTemplates {
		m := findValid(re, st.residual)
		if m == nil {
			continue
		}
		groups := submatchMap(re, st.residual, m.loc)
		count, err := strconv.Atoi(groups["count"])
		if err != nil {
			continue
		}
		freq, ok := p.lang.intervalUnits[strings.ToLower(groups["unit"])]
		if !ok {
			continue
		}
		pattern := NewRecurringPattern(freq, count)
		st.task.Recurring = &pattern
		st.consumeResidual(m.start, m.end, AnnotationRecurring)
		return
	}
}

// Phase 4: "scheduled day + deadline time" ("Monday by 5pm"). Only runs when
// phase 2 produced a scheduled date. The deadline takes the date component
// of the scheduled date and the newly parsed clock; a time captured in phase
// 2 is dropped, it described the scheduled start.
func (p *Parser) extractAnchoredDeadline(st *parseState) {
	if st.task.ScheduledDate == nil {
		return
	}
	for _, re := range p.lang.deadlineTimeTemplates {
		m := findValid(re, st.residual)
		if m == nil {
			continue
		}
		clock, ok := clockFromMatch(re, st.residual, m.loc)
		if !ok {
			continue
		}
		d := *st.task.ScheduledDate
		deadline := time.Date(d.Year(), d.Month(), d.Day(), clock.Hour, clock.Minute, 0, 0, d.Location())
		st.task.Deadline = &deadline
		st.task.Time = nil
		st.consumeResidual(m.start, m.end, AnnotationDeadline)
		return
	}
}

// Phase 5: deadline keyword followed by an absolute date span (bare times
// are rejected) or a relative-date keyword. Skipped when phase 4 already
// produced a deadline.
func (p *Parser) extractKeywordDeadline(st *parseState, reference time.Time) {
	if st.task.Deadline != nil {
		return
	}
	lang := p.lang

	for _, kw := range lang.deadlineKeywords {
		pos := findKeyword(st.residual, kw, 0)
		if pos < 0 {
			continue
		}
		afterKw := pos + len(kw)
		gap := 0
		for afterKw+gap < len(st.residual) && (st.residual[afterKw+gap] == ' ' || st.residual[afterKw+gap] == '\t') {
			gap++
		}
		rest := st.residual[afterKw+gap:]
		if rest == "" {
			continue
		}

		// Absolute date/time span directly after the keyword.
		if m := findSpanAtStart(lang, rest); m != nil {
			spanText := rest[:m.end]
			if !lang.bareTimeRe.MatchString(strings.TrimSpace(strings.ToLower(spanText))) {
				dateText, clock, hasClock := lang.splitSpanClock(spanText)
				if when, ok := lang.resolveDateText(dateText, reference, p.cal); ok {
					if hasClock {
						when = time.Date(when.Year(), when.Month(), when.Day(), clock.Hour, clock.Minute, 0, 0, when.Location())
					}
					st.task.Deadline = &when
					st.consumeResidual(pos, afterKw+gap+m.end, AnnotationDeadline)
					return
				}
			}
		}

		// Relative-date keyword directly after the keyword.
		for _, entry := range lang.relativeDates {
			if !hasKeywordPrefix(rest, entry.Keyword) {
				continue
			}
			when := Resolve(entry.Modifier, reference, p.cal)
			st.task.Deadline = &when
			st.consumeResidual(pos, afterKw+gap+len(entry.Keyword), AnnotationDeadline)
			return
		}
	}
}

// Phase 6: bare time literal, only when no time was captured yet.
func (p *Parser) extractTime(st *parseState) {
	if st.task.Time != nil {
		return
	}
	for _, re := range p.lang.timeTemplates {
		// A match that fails clock validation ("99:99") must not mask a
		// valid one later in the input.
		for _, m := range findAllValid(re, st.residual) {
			clock, ok := clockFromMatch(re, st.residual, m.loc)
			if !ok {
				continue
			}
			c := clock
			st.task.Time = &c
			st.consumeResidual(m.start, m.end, AnnotationTime)
			return
		}
	}
}

// Phase 7: relative-date keywords, longest first. An occurrence directly
// after a deadline keyword is phase 5's claim and skipped. May overwrite a
// scheduled date set by phase 2.
func (p *Parser) extractRelativeDate(st *parseState, reference time.Time) {
	for _, entry := range p.lang.relativeDates {
		for idx := findKeyword(st.residual, entry.Keyword, 0); idx >= 0; idx = findKeyword(st.residual, entry.Keyword, idx+1) {
			if precededByAny(st.residual, idx, p.lang.deadlineKeywords) {
				continue
			}
			when := Resolve(entry.Modifier, reference, p.cal)
			st.task.ScheduledDate = &when
			st.consumeResidual(idx, idx+len(entry.Keyword), AnnotationScheduledDate)
			return
		}
	}
}

// Phase 8: the title is whatever is left, minus leading connector words and
// collapsed whitespace. A connector left dangling at the end after a date or
// time was consumed ("regalos el <24 de diciembre>") is dropped too.
func (p *Parser) extractTitle(st *parseState) {
	title := strings.Join(strings.Fields(st.residual), " ")

	var connectors []string
	if p.lang != nil {
		connectors = p.lang.connectors
	}
	trimTail := len(st.task.Annotations) > 0

	for {
		lower := strings.ToLower(title)
		stripped := false
		for _, c := range connectors {
			if lower == c {
				title = ""
				stripped = true
				break
			}
			if strings.HasPrefix(lower, c+" ") {
				title = strings.TrimSpace(title[len(c)+1:])
				stripped = true
				break
			}
			if trimTail && strings.HasSuffix(lower, " "+c) {
				title = strings.TrimSpace(title[:len(title)-len(c)-1])
				stripped = true
				break
			}
		}
		if !stripped {
			break
		}
	}

	st.task.Title = title
}

// --- language helpers used by the phases ---

// splitAtDeadline finds an embedded deadline keyword followed by a date- or
// time-like suffix and returns the byte offset to cut the span at.
func (lc *LanguageConfig) splitAtDeadline(text string) (int, bool) {
	for _, kw := range lc.deadlineKeywords {
		idx := findKeyword(text, kw, 1)
		if idx < 0 {
			continue
		}
		rest := strings.TrimSpace(text[idx+len(kw):])
		if rest == "" {
			continue
		}
		if lc.timeFragmentRe.MatchString(rest) || lc.spanAtStartRe.MatchString(strings.ToLower(rest)) {
			return idx, true
		}
	}
	return 0, false
}

func (lc *LanguageConfig) hasDeadlinePrefix(lower string) bool {
	for _, kw := range lc.deadlineKeywords {
		if hasKeywordPrefix(lower, kw) {
			return true
		}
	}
	return false
}

// validSpanLead accepts spans whose first token is numeric or a recognized
// date word; everything else is treated as ordinary prose.
func (lc *LanguageConfig) validSpanLead(lower string) bool {
	token := lower
	if i := strings.IndexAny(token, " \t"); i >= 0 {
		token = token[:i]
	}
	token = strings.Trim(token, ".,")
	if token == "" {
		return false
	}
	if token[0] >= '0' && token[0] <= '9' {
		return true
	}
	if _, ok := lc.weekdays[token]; ok {
		return true
	}
	if _, ok := lc.months[token]; ok {
		return true
	}
	for _, w := range lc.todayWords {
		if token == w {
			return true
		}
	}
	return false
}

// inRelativePhrase reports whether [start,end) sits inside a longer
// multi-word relative-date phrase ("next monday", "lundi prochain").
func (lc *LanguageConfig) inRelativePhrase(s string, start, end int) bool {
	for _, entry := range lc.relativeDates {
		if !strings.Contains(entry.Keyword, " ") {
			continue
		}
		for idx := findKeyword(s, entry.Keyword, 0); idx >= 0; idx = findKeyword(s, entry.Keyword, idx+1) {
			phraseEnd := idx + len(entry.Keyword)
			if idx <= start && end <= phraseEnd && phraseEnd-idx > end-start {
				return true
			}
			if idx >= end {
				break
			}
		}
	}
	return false
}

// splitSpanClock separates the clock part of a span from its date part using
// the language's time templates.
func (lc *LanguageConfig) splitSpanClock(text string) (string, TimeOfDay, bool) {
	for _, re := range lc.timeTemplates {
		m := findValid(re, text)
		if m == nil {
			continue
		}
		clock, ok := clockFromMatch(re, text, m.loc)
		if !ok {
			continue
		}
		dateText := lc.trimTrailingLink(strings.TrimSpace(text[:m.start]))
		return dateText, clock, true
	}
	return strings.TrimSpace(text), TimeOfDay{}, false
}

// trimTrailingLink strips trailing connector and deadline-keyword words left
// over after the clock part of a span is cut off ("friday at" -> "friday").
func (lc *LanguageConfig) trimTrailingLink(s string) string {
	words := append(append([]string{}, lc.connectors...), lc.deadlineKeywords...)
	for {
		trimmed := strings.TrimRight(s, " \t")
		lower := strings.ToLower(trimmed)
		cut := false
		for _, w := range words {
			if strings.HasSuffix(lower, " "+w) {
				trimmed = trimmed[:len(trimmed)-len(w)-1]
				cut = true
				break
			}
		}
		s = trimmed
		if !cut {
			return strings.TrimRight(s, " \t")
		}
	}
}

// findSpanAtStart matches the span detector anchored at the beginning of s.
func findSpanAtStart(lc *LanguageConfig, s string) *matchLoc {
	loc := lc.spanAtStartRe.FindStringSubmatchIndex(s)
	if loc == nil || loc[0] != 0 || loc[1] == 0 {
		return nil
	}
	if !isWordBoundary(s, 0, loc[1]) {
		return nil
	}
	return &matchLoc{start: 0, end: loc[1], loc: loc}
}

// hasKeywordPrefix reports whether s starts with keyword on a word boundary,
// case-insensitively.
func hasKeywordPrefix(s, keyword string) bool {
	if keyword == "" || len(s) < len(keyword) {
		return false
	}
	if !strings.EqualFold(s[:len(keyword)], keyword) {
		return false
	}
	return isWordBoundary(s, 0, len(keyword))
}

// precededByAny reports whether the trimmed text before pos ends with one of
// the given keywords on a word boundary.
func precededByAny(s string, pos int, keywords []string) bool {
	prefix := strings.TrimRight(s[:min(pos, len(s))], " \t")
	lower := strings.ToLower(prefix)
	for _, kw := range keywords {
		if kw == "" || len(lower) < len(kw) {
			continue
		}
		if !strings.HasSuffix(lower, kw) {
			continue
		}
		if isWordBoundary(prefix, len(prefix)-len(kw), len(prefix)) {
			return true
		}
	}
	return false
}
