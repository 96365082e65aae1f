package tagger

import (
	"strings"

	"github.com/az-ai-labs/en-itn/internal/textcase"
	"github.com/az-ai-labs/en-itn/numtext"
)

// Time is a clock time. Meridiem is "a.m.", "p.m.", their uppercase forms,
// or empty. Zone is the time zone abbreviation as spoken, letters joined.
type Time struct {
	Hour     int
	Minute   int
	Meridiem string
	Zone     string
}

// Category implements Value.
func (Time) Category() Category { return CategoryTime }

// timeZones lists the zone abbreviations read after a time.
var timeZones = map[string]bool{
	"gmt": true,
	"utc": true,
	"est": true,
	"edt": true,
	"cst": true,
	"cdt": true,
	"mst": true,
	"mdt": true,
	"pst": true,
	"pdt": true,
}

// meridiemPhrases maps spoken day-part phrases to a.m. or p.m.
var meridiemPhrases = []struct {
	words []string
	pm    bool
}{
	{[]string{"in", "the", "morning"}, false},
	{[]string{"in", "the", "afternoon"}, true},
	{[]string{"in", "the", "evening"}, true},
	{[]string{"at", "night"}, true},
}

// hourWords are the only words accepted as an hour.
var hourWords = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5, "six": 6,
	"seven": 7, "eight": 8, "nine": 9, "ten": 10, "eleven": 11, "twelve": 12,
}

type timeTagger struct{}

func (timeTagger) Category() Category { return CategoryTime }

// Parse accepts:
//
//	<h> <m>                     two thirty, eight oh six
//	<h> o'clock                 three o'clock, three o clock
//	quarter|half past <h>       quarter past one
//	quarter to <h>              quarter to one → 12:45
//	<n> [minutes] past|to <h>   ten minutes to six → 05:50
//	<h>                         only with a meridiem or zone
//
// each optionally followed by a meridiem (a m, pm, in the morning) and a
// zone (g m t, est). Without a meridiem or zone, hours ten to twelve with
// a two-digit minute read as years ("eleven fifty") and are rejected, and
// "<n> to <h>" needs the word "minutes".
func (timeTagger) Parse(words []Word) (Value, bool) {
	lw := lowers(words)
	var t Time

	if zone, n := timeZone(words, lw); n > 0 {
		t.Zone = zone
		words, lw = words[:len(words)-n], lw[:len(lw)-n]
	}
	if mer, n := meridiem(words, lw); n > 0 {
		t.Meridiem = mer
		words, lw = words[:len(words)-n], lw[:len(lw)-n]
	}
	if len(lw) == 0 {
		return nil, false
	}
	marked := t.Meridiem != "" || t.Zone != ""

	hour, minute, ok := clock(lw, marked)
	if !ok {
		return nil, false
	}
	t.Hour, t.Minute = hour, minute
	return t, true
}

// clock reads the hour and minute of a time without its meridiem or zone.
func clock(lw []string, marked bool) (hour, minute int, ok bool) {
	n := len(lw)

	// <h> o'clock
	switch {
	case n == 2 && (lw[1] == "o'clock" || lw[1] == "o’clock" || lw[1] == "oclock"):
		hour, ok = hourWords[lw[0]]
		return hour, 0, ok
	case n == 3 && lw[1] == "o" && lw[2] == "clock":
		hour, ok = hourWords[lw[0]]
		return hour, 0, ok
	}

	// <minutes> past|to <h>
	for i, w := range lw {
		if (w != "past" && w != "to") || i == 0 || i != n-2 {
			continue
		}
		hour, ok = hourWords[lw[n-1]]
		if !ok {
			return 0, 0, false
		}
		before, ok := minutesPhrase(lw[:i], marked || w == "past")
		if !ok {
			return 0, 0, false
		}
		if w == "past" {
			return hour, before, true
		}
		if before == 30 {
			return 0, 0, false
		}
		return previousHour(hour), 60 - before, true
	}

	hour, ok = hourWords[lw[0]]
	if !ok {
		return 0, 0, false
	}
	if n == 1 {
		return hour, 0, marked
	}
	minute, ok = minuteWords(lw[1:])
	if !ok {
		return 0, 0, false
	}
	if !marked && hour >= 10 && minute >= 10 {
		return 0, 0, false
	}
	return hour, minute, true
}

// minutesPhrase reads the part before "past" or "to": "quarter", "half",
// or a number of minutes. Unless loose is set, a bare number needs the word
// "minutes": "five to ten" is more often a range than a time.
func minutesPhrase(lw []string, loose bool) (int, bool) {
	switch {
	case len(lw) == 1 && lw[0] == "quarter", len(lw) == 2 && lw[0] == "a" && lw[1] == "quarter":
		return 15, true
	case len(lw) == 1 && lw[0] == "half":
		return 30, true
	}
	named := false
	if last := lw[len(lw)-1]; last == "minute" || last == "minutes" {
		named = true
		lw = lw[:len(lw)-1]
	}
	if len(lw) == 0 || (!named && !loose) {
		return 0, false
	}
	m, ok := numtext.Cardinal(lw)
	if !ok || m < 1 || m > 59 {
		return 0, false
	}
	return int(m), true
}

// minuteWords reads the minute after an hour: "oh five", a teen, a tens
// word, or a tens word with a unit. Single digits are rejected so that
// digit strings ("seven nine nine") are not read as times.
func minuteWords(lw []string) (int, bool) {
	switch len(lw) {
	case 1:
		v, ok := numtext.Small(lw[0])
		if !ok || v < 10 || v > 59 {
			return 0, false
		}
		return int(v), true
	case 2:
		if lw[0] == "oh" || lw[0] == "o" {
			v, ok := numtext.Small(lw[1])
			if !ok || v > 9 {
				return 0, false
			}
			return int(v), true
		}
		t, ok := numtext.Small(lw[0])
		if !ok || t < 20 || t > 50 || t%10 != 0 {
			return 0, false
		}
		u, ok := numtext.Small(lw[1])
		if !ok || u > 9 {
			return 0, false
		}
		return int(t + u), true
	default:
		return 0, false
	}
}

func previousHour(h int) int {
	if h == 1 {
		return 12
	}
	return h - 1
}

// timeZone reads a trailing zone, spelled ("g m t") or whole ("gmt"), and
// returns its original text with letters joined and the number of words used.
func timeZone(words []Word, lw []string) (string, int) {
	n := len(lw)
	if n >= 2 && timeZones[lw[n-1]] {
		return words[n-1].Text, 1
	}
	if n >= 4 {
		tail := lw[n-3:]
		if len(tail[0]) == 1 && len(tail[1]) == 1 && len(tail[2]) == 1 && timeZones[strings.Join(tail, "")] {
			var b strings.Builder
			for _, w := range words[n-3:] {
				b.WriteString(w.Text)
			}
			return b.String(), 3
		}
	}
	return "", 0
}

// meridiem reads a trailing a.m./p.m. marker and returns its written form
// and the number of words used. Uppercase spoken letters give "A.M.".
func meridiem(words []Word, lw []string) (string, int) {
	n := len(lw)
	for _, p := range meridiemPhrases {
		if n > len(p.words) && hasSuffix(lw, p.words...) {
			if p.pm {
				return "p.m.", len(p.words)
			}
			return "a.m.", len(p.words)
		}
	}

	var letter string
	var used int
	switch {
	case n >= 3 && (lw[n-2] == "a" || lw[n-2] == "p") && lw[n-1] == "m":
		letter, used = lw[n-2], 2
	case n >= 2 && (lw[n-1] == "am" || lw[n-1] == "pm"):
		letter, used = lw[n-1][:1], 1
	default:
		return "", 0
	}

	upper := true
	for _, w := range words[n-used:] {
		if !textcase.IsAllUpper(w.Text) {
			upper = false
		}
	}
	mer := letter + ".m."
	if upper {
		mer = strings.ToUpper(mer)
	}
	return mer, used
}
