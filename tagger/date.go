package tagger

import (
	"time"

	"github.com/az-ai-labs/en-itn/numtext"
)

// DateForm is the written layout of a Date, chosen by how it was spoken.
type DateForm int

const (
	DateMonthDay     DateForm = iota // January 5
	DateMonthDayYear                 // January 5, 2025
	DateDayMonth                     // 5 January
	DateDayMonthYear                 // 5 January 2025
	DateMonthYear                    // January 2025
	DateYear                         // 1994
	DateDecade                       // 1980s
	DateQuarter                      // Q2 2022
	DateEra                          // 750BC
)

// Date is a calendar date or a part of one. MonthText keeps the month name
// as the caller spelled it. Year holds the decade's first year for
// DateDecade ("80" for "eighties").
type Date struct {
	Form      DateForm
	Year      int
	Month     time.Month
	MonthText string
	Day       int
	Quarter   int
	Era       string // BC, AD, BCE or CE
}

// Category implements Value.
func (Date) Category() Category { return CategoryDate }

var monthNames = map[string]time.Month{
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June,
	"july": time.July, "august": time.August, "september": time.September,
	"october": time.October, "november": time.November, "december": time.December,
}

// verbMonths are month names that are also common verbs. Lowercase, they
// are read as months only before an ordinal day ("may fifth", not "may
// one").
var verbMonths = map[string]bool{"may": true, "march": true}

var quarterWords = map[string]int{"first": 1, "second": 2, "third": 3, "fourth": 4}

// eras maps spoken era markers to their written form. A lone "ad" is not
// listed: "one ad" is an advertisement.
var eras = []struct {
	words   []string
	written string
}{
	{[]string{"b", "c", "e"}, "BCE"},
	{[]string{"b", "c"}, "BC"},
	{[]string{"a", "d"}, "AD"},
	{[]string{"c", "e"}, "CE"},
	{[]string{"bce"}, "BCE"},
	{[]string{"bc"}, "BC"},
}

type dateTagger struct{}

func (dateTagger) Category() Category { return CategoryDate }

// Parse accepts month-day, month-day-year, month-year, "[the] <ordinal> of
// <month> [<year>]", quarters ("second quarter of twenty twenty two"),
// decades ("nineteen eighties"), era years ("seven fifty b c") and
// standalone spoken years ("nineteen ninety four").
func (dateTagger) Parse(words []Word) (Value, bool) {
	lw := lowers(words)
	if d, ok := parseMonthFirst(words, lw); ok {
		return d, true
	}
	if d, ok := parseDayOfMonth(words, lw); ok {
		return d, true
	}
	if d, ok := parseQuarter(lw); ok {
		return d, true
	}
	if d, ok := parseEra(lw); ok {
		return d, true
	}
	if d, ok := parseDecade(lw); ok {
		return d, true
	}
	if y, ok := standaloneYear(lw); ok {
		return Date{Form: DateYear, Year: y}, true
	}
	return nil, false
}

// parseMonthFirst reads "<month> [the] <day> [<year>]" and "<month> <year>".
func parseMonthFirst(words []Word, lw []string) (Date, bool) {
	month, ok := monthNames[lw[0]]
	if !ok || len(lw) < 2 {
		return Date{}, false
	}
	d := Date{Month: month, MonthText: words[0].Text}
	rest := lw[1:]
	verb := verbMonths[lw[0]] && words[0].Text == lw[0]

	if y, ok := numtext.Year(rest); ok && !verb {
		d.Form, d.Year = DateMonthYear, y
		return d, true
	}

	the := rest[0] == "the"
	if the {
		rest = rest[1:]
	}
	for split := len(rest); split > 0; split-- {
		day, ordinal, ok := dayNumber(rest[:split])
		if !ok || (the && !ordinal) {
			continue
		}
		if !ordinal && verb {
			continue
		}
		year := 0
		if split < len(rest) {
			if year, ok = numtext.Year(rest[split:]); !ok {
				continue
			}
		}
		if !validDay(month, day, year) {
			continue
		}
		d.Day, d.Year = day, year
		d.Form = DateMonthDay
		if year != 0 {
			d.Form = DateMonthDayYear
		}
		return d, true
	}
	return Date{}, false
}

// parseDayOfMonth reads "[the] <ordinal> of <month> [<year>]".
func parseDayOfMonth(words []Word, lw []string) (Date, bool) {
	start := 0
	if lw[0] == "the" {
		start = 1
	}
	for of := start + 1; of < len(lw)-1; of++ {
		if lw[of] != "of" {
			continue
		}
		day, ordinal, ok := dayNumber(lw[start:of])
		if !ok || !ordinal {
			return Date{}, false
		}
		month, ok := monthNames[lw[of+1]]
		if !ok {
			return Date{}, false
		}
		d := Date{Form: DateDayMonth, Month: month, MonthText: words[of+1].Text, Day: day}
		if of+2 < len(lw) {
			y, ok := numtext.Year(lw[of+2:])
			if !ok {
				return Date{}, false
			}
			d.Form, d.Year = DateDayMonthYear, y
		}
		if !validDay(month, day, d.Year) {
			return Date{}, false
		}
		return d, true
	}
	return Date{}, false
}

// parseQuarter reads "<first..fourth> quarter of <year>".
func parseQuarter(lw []string) (Date, bool) {
	if len(lw) < 4 || lw[1] != "quarter" || lw[2] != "of" {
		return Date{}, false
	}
	q, ok := quarterWords[lw[0]]
	if !ok {
		return Date{}, false
	}
	y, ok := numtext.Year(lw[3:])
	if !ok {
		return Date{}, false
	}
	return Date{Form: DateQuarter, Quarter: q, Year: y}, true
}

// parseEra reads a year followed by an era marker.
func parseEra(lw []string) (Date, bool) {
	for _, e := range eras {
		if len(lw) <= len(e.words) || !hasSuffix(lw, e.words...) {
			continue
		}
		y, ok := eraYear(lw[:len(lw)-len(e.words)])
		if !ok {
			return Date{}, false
		}
		return Date{Form: DateEra, Year: y, Era: e.written}, true
	}
	return Date{}, false
}

// eraYear reads the year of an era date: a spoken year, the hundreds
// shorthand ("seven fifty") or a plain cardinal.
func eraYear(lw []string) (int, bool) {
	if y, ok := numtext.Year(lw); ok {
		return y, true
	}
	if n, ok := numtext.Shorthand(lw); ok {
		return int(n), true
	}
	n, ok := numtext.Cardinal(lw)
	if !ok || n < 1 || n > 9999 {
		return 0, false
	}
	return int(n), true
}

// parseDecade reads "nineteen eighties" or "eighties". "tens" alone is left
// alone: "tens of thousands" is not a decade.
func parseDecade(lw []string) (Date, bool) {
	y, ok := numtext.Decade(lw)
	if !ok || y == 10 {
		return Date{}, false
	}
	return Date{Form: DateDecade, Year: y}, true
}

// standaloneYear reads a century-pair year outside a date. Centuries below
// thirteen are rejected: "ten thirty" and "twelve fifteen" are more often
// times or plain numbers.
func standaloneYear(lw []string) (int, bool) {
	c, ok := numtext.Small(lw[0])
	if !ok || c < 13 || c > 20 {
		return 0, false
	}
	if len(lw) < 2 || len(lw) > 3 {
		return 0, false
	}
	return numtext.Year(lw)
}

// dayNumber reads a day of the month spoken as an ordinal ("fifth",
// "twenty first") or a cardinal ("thirty").
func dayNumber(lw []string) (day int, ordinal, ok bool) {
	if n, ok := numtext.Ordinal(lw); ok {
		return int(n), true, n >= 1 && n <= 31
	}
	n, ok := numtext.Cardinal(lw)
	if !ok || n < 1 || n > 31 {
		return 0, false, false
	}
	return int(n), false, true
}

// validDay reports whether day exists in month. Year zero means unknown,
// which allows February 29.
func validDay(month time.Month, day, year int) bool {
	if day < 1 {
		return false
	}
	y := year
	if y == 0 {
		y = 2000
	}
	last := time.Date(y, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	return day <= last
}
