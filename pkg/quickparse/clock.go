package quickparse

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// clockFromParts converts captured hour/minute/meridiem strings into a
// TimeOfDay. Time-literal parsing recurs in the absolute-date, deadline and
// time phases, so all of them funnel through here.
//
// pm adds 12 unless the hour already is 12; am maps 12 to 0. Without a
// meridiem the hour is read as 24h.
func clockFromParts(hourStr, minuteStr, meridiem string) (TimeOfDay, bool) {
	hour, err := strconv.Atoi(hourStr)
	if err != nil || hour > 23 {
		return TimeOfDay{}, false
	}

	minute := 0
	if minuteStr != "" {
		minute, err = strconv.Atoi(minuteStr)
		if err != nil || minute > 59 {
			return TimeOfDay{}, false
		}
	}

	switch strings.ToLower(meridiem) {
	case "pm":
		if hour > 12 {
			return TimeOfDay{}, false
		}
		if hour != 12 {
			hour += 12
		}
	case "am":
		if hour > 12 {
			return TimeOfDay{}, false
		}
		if hour == 12 {
			hour = 0
		}
	}

	return TimeOfDay{Hour: hour, Minute: minute}, true
}

// clockFromMatch extracts a TimeOfDay from the hour/minute/meridiem named
// groups of a template match.
func clockFromMatch(re *regexp.Regexp, s string, loc []int) (TimeOfDay, bool) {
	groups := submatchMap(re, s, loc)
	if groups["hour"] == "" {
		return TimeOfDay{}, false
	}
	return clockFromParts(groups["hour"], groups["minute"], groups["meridiem"])
}

// submatchMap maps named capture groups of a FindStringSubmatchIndex result
// to their matched text. Absent groups are omitted.
func submatchMap(re *regexp.Regexp, s string, loc []int) map[string]string {
	out := make(map[string]string)
	for i, name := range re.SubexpNames() {
		if name == "" || 2*i+1 >= len(loc) || loc[2*i] < 0 {
			continue
		}
		out[name] = s[loc[2*i]:loc[2*i+1]]
	}
	return out
}

// matchLoc is a regexp match with submatch indexes rebased onto the full
// searched string.
type matchLoc struct {
	start, end int
	loc        []int
}

// findValid returns the first match of re in s whose edges fall on word
// boundaries. The stock \b assertion is ASCII-only, which breaks on the
// accented keywords of the non-English tables, so boundaries are checked on
// runes here instead.
func findValid(re *regexp.Regexp, s string) *matchLoc {
	if re == nil {
		return nil
	}
	for off := 0; off <= len(s); {
		loc := re.FindStringSubmatchIndex(s[off:])
		if loc == nil {
			return nil
		}
		start, end := off+loc[0], off+loc[1]
		if start == end {
			return nil
		}
		if isWordBoundary(s, start, end) {
			adjusted := make([]int, len(loc))
			for i, v := range loc {
				if v < 0 {
					adjusted[i] = -1
				} else {
					adjusted[i] = v + off
				}
			}
			return &matchLoc{start: start, end: end, loc: adjusted}
		}
		_, size := utf8.DecodeRuneInString(s[start:])
		off = start + size
	}
	return nil
}

// findAllValid returns every boundary-respecting, non-overlapping match of
// re in s, in order of appearance.
func findAllValid(re *regexp.Regexp, s string) []matchLoc {
	var out []matchLoc
	if re == nil {
		return out
	}
	for off := 0; off <= len(s); {
		m := findValid(re, s[off:])
		if m == nil {
			break
		}
		adjusted := make([]int, len(m.loc))
		for i, v := range m.loc {
			if v < 0 {
				adjusted[i] = -1
			} else {
				adjusted[i] = v + off
			}
		}
		out = append(out, matchLoc{start: m.start + off, end: m.end + off, loc: adjusted})
		off += m.end
	}
	return out
}

// isWordBoundary reports whether [start,end) is not glued to letters or
// digits on either side.
func isWordBoundary(s string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:start])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	if end < len(s) {
		r, _ := utf8.DecodeRuneInString(s[end:])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// findKeyword locates the first case-insensitive, word-bounded occurrence of
// keyword in s, starting at from. Returns -1 when absent.
func findKeyword(s, keyword string, from int) int {
	if keyword == "" || from > len(s) {
		return -1
	}
	lower := strings.ToLower(s)
	key := strings.ToLower(keyword)
	for off := from; off <= len(lower)-len(key); {
		idx := strings.Index(lower[off:], key)
		if idx < 0 {
			return -1
		}
		start := off + idx
		end := start + len(key)
		if isWordBoundary(s, start, end) {
			return start
		}
		_, size := utf8.DecodeRuneInString(s[start:])
		off = start + size
	}
	return -1
}
