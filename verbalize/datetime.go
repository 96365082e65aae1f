package verbalize

import (
	"fmt"
	"strconv"

	"github.com/az-ai-labs/en-itn/tagger"
)

func date(d tagger.Date) string {
	switch d.Form {
	case tagger.DateMonthDay:
		return fmt.Sprintf("%s %d", d.MonthText, d.Day)
	case tagger.DateMonthDayYear:
		return fmt.Sprintf("%s %d, %d", d.MonthText, d.Day, d.Year)
	case tagger.DateDayMonth:
		return fmt.Sprintf("%d %s", d.Day, d.MonthText)
	case tagger.DateDayMonthYear:
		return fmt.Sprintf("%d %s %d", d.Day, d.MonthText, d.Year)
	case tagger.DateMonthYear:
		return fmt.Sprintf("%s %d", d.MonthText, d.Year)
	case tagger.DateDecade:
		return strconv.Itoa(d.Year) + "s"
	case tagger.DateQuarter:
		return fmt.Sprintf("Q%d %d", d.Quarter, d.Year)
	case tagger.DateEra:
		return strconv.Itoa(d.Year) + d.Era
	default:
		return strconv.Itoa(d.Year)
	}
}

// clock renders "02:30", "07:00 a.m." or "08:00 a.m. gmt".
func clock(t tagger.Time) string {
	s := fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
	if t.Meridiem != "" {
		s += " " + t.Meridiem
	}
	if t.Zone != "" {
		s += " " + t.Zone
	}
	return s
}
