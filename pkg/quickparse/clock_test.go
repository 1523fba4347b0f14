package quickparse

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClockFromParts(t *testing.T) {
	cases := []struct {
		hour, minute, meridiem string
		want                   TimeOfDay
		ok                     bool
	}{
		{"14", "00", "", TimeOfDay{14, 0}, true},
		{"9", "", "", TimeOfDay{9, 0}, true},
		{"5", "", "pm", TimeOfDay{17, 0}, true},
		{"12", "30", "pm", TimeOfDay{12, 30}, true},
		{"12", "", "am", TimeOfDay{0, 0}, true},
		{"11", "59", "PM", TimeOfDay{23, 59}, true},
		{"0", "15", "", TimeOfDay{0, 15}, true},
		{"23", "59", "", TimeOfDay{23, 59}, true},
		{"24", "00", "", TimeOfDay{}, false},
		{"13", "", "pm", TimeOfDay{}, false},
		{"10", "60", "", TimeOfDay{}, false},
	}

	for _, tc := range cases {
		got, ok := clockFromParts(tc.hour, tc.minute, tc.meridiem)
		assert.Equal(t, tc.ok, ok, "%s:%s %s", tc.hour, tc.minute, tc.meridiem)
		if tc.ok {
			assert.Equal(t, tc.want, got, "%s:%s %s", tc.hour, tc.minute, tc.meridiem)
		}
	}
}

// \b in the stdlib regexp engine treats accented letters as non-word, so the
// custom boundary check has to reject matches glued to them.
func TestFindKeywordRuneBoundaries(t *testing.T) {
	assert.Equal(t, -1, findKeyword("spätestens", "test", 0))
	assert.Equal(t, -1, findKeyword("mañanas", "mañana", 0))
	assert.Equal(t, 0, findKeyword("Mañana früh", "mañana", 0))
	assert.Equal(t, 6, findKeyword("hasta mañana", "mañana", 0))
	assert.Equal(t, -1, findKeyword("hasta mañana", "mañana", 7))
}

func TestFindValidSkipsGluedMatches(t *testing.T) {
	re := regexp.MustCompile(`\d{1,2}:\d{2}`)

	m := findValid(re, "ab12:30cd 14:00")
	if assert.NotNil(t, m) {
		assert.Equal(t, 10, m.start)
		assert.Equal(t, 15, m.end)
	}

	assert.Nil(t, findValid(re, "ab12:30cd"))
}

func TestFindAllValid(t *testing.T) {
	re := regexp.MustCompile(`\d{1,2}:\d{2}`)
	got := findAllValid(re, "9:00 then 17:30")

	if assert.Len(t, got, 2) {
		assert.Equal(t, 0, got[0].start)
		assert.Equal(t, 4, got[0].end)
		assert.Equal(t, 10, got[1].start)
		assert.Equal(t, 15, got[1].end)
	}
}
