// Package dates formats and parses locale-aware date labels.
//
// English names come from the standard library; Tamil names from a
// fixed table, since the runtime carries no CLDR data for ta-IN.
package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"kanakku/internal/i18n"
)

// MonthStyle selects how the month component renders in FormatLong.
type MonthStyle int

const (
	MonthNone MonthStyle = iota
	MonthLong
	MonthShort
)

// Options enumerates which components FormatLong includes.
type Options struct {
	Year  bool
	Month MonthStyle
	Day   bool
	Clock bool // hour and minute, 24h
}

// Full is the default long form: "May 29, 2025 10:00".
var Full = Options{Year: true, Month: MonthLong, Day: true, Clock: true}

// DateOnly drops the time of day: "May 29, 2025".
var DateOnly = Options{Year: true, Month: MonthLong, Day: true}

// ShortDate uses the abbreviated month: "May 29, 2025".
var ShortDate = Options{Year: true, Month: MonthShort, Day: true}

var tamilMonths = [12]string{
	"ஜனவரி", "பிப்ரவரி", "மார்ச்", "ஏப்ரல்", "மே", "ஜூன்",
	"ஜூலை", "ஆகஸ்ட்", "செப்டம்பர்", "அக்டோபர்", "நவம்பர்", "டிசம்பர்",
}

var englishMonths = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthName returns the localized long month name for a 1-based month.
func MonthName(month time.Month, locale i18n.Locale) string {
	if locale == i18n.Tamil {
		return tamilMonths[month-1]
	}
	return englishMonths[month-1]
}

func shortMonthName(month time.Month, locale i18n.Locale) string {
	if locale == i18n.Tamil {
		// Tamil has no conventional three-letter abbreviations.
		return tamilMonths[month-1]
	}
	return englishMonths[month-1][:3]
}

// FormatLong renders t with the requested components in the locale's
// long-date order.
func FormatLong(t time.Time, locale i18n.Locale, opts Options) string {
	var parts []string

	switch {
	case opts.Month != MonthNone && opts.Day:
		name := MonthName(t.Month(), locale)
		if opts.Month == MonthShort {
			name = shortMonthName(t.Month(), locale)
		}
		parts = append(parts, fmt.Sprintf("%s %d", name, t.Day()))
	case opts.Month != MonthNone:
		name := MonthName(t.Month(), locale)
		if opts.Month == MonthShort {
			name = shortMonthName(t.Month(), locale)
		}
		parts = append(parts, name)
	case opts.Day:
		parts = append(parts, strconv.Itoa(t.Day()))
	}

	if opts.Year {
		if len(parts) > 0 {
			parts[len(parts)-1] += ","
		}
		parts = append(parts, strconv.Itoa(t.Year()))
	}

	out := strings.Join(parts, " ")
	if opts.Clock {
		clock := t.Format("15:04")
		if out == "" {
			return clock
		}
		out += " " + clock
	}
	return out
}

// MonthYear produces the locale's "Month Year" label, e.g. "May 2025"
// or "மே 2025". The label doubles as the monthly grouping key.
func MonthYear(t time.Time, locale i18n.Locale) string {
	return MonthName(t.Month(), locale) + " " + strconv.Itoa(t.Year())
}

// MonthIndex reverse-maps a localized month name to its time.Month.
// It probes the requested locale's formatted names first, then falls
// back to the fixed per-locale tables (both locales), and reports
// failure via ok=false.
func MonthIndex(name string, locale i18n.Locale) (time.Month, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return 0, false
	}

	for m := time.January; m <= time.December; m++ {
		if strings.ToLower(MonthName(m, locale)) == needle {
			return m, true
		}
	}

	for _, table := range [][12]string{englishMonths, tamilMonths} {
		for i, candidate := range table {
			if strings.ToLower(candidate) == needle {
				return time.Month(i + 1), true
			}
		}
	}
	return 0, false
}

// ParseMonthYear splits a "Month Year" label back into its calendar
// coordinates. Labels that fail to parse report ok=false; callers fall
// back to lexical ordering.
func ParseMonthYear(label string, locale i18n.Locale) (year int, month time.Month, ok bool) {
	fields := strings.Fields(strings.TrimSpace(label))
	if len(fields) != 2 {
		return 0, 0, false
	}
	month, ok = MonthIndex(fields[0], locale)
	if !ok {
		return 0, 0, false
	}
	year, err := strconv.Atoi(fields[1])
	if err != nil || year <= 0 {
		return 0, 0, false
	}
	return year, month, true
}

// SameDay reports whether two instants fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// RelativeDayLabel returns the localized "Today"/"Yesterday" when t
// falls on those days relative to now, else a short month-day string.
func RelativeDayLabel(t, now time.Time, locale i18n.Locale) string {
	if SameDay(t, now) {
		return i18n.T("today", locale, nil)
	}
	if SameDay(t, now.AddDate(0, 0, -1)) {
		return i18n.T("yesterday", locale, nil)
	}
	return fmt.Sprintf("%s %d", shortMonthName(t.Month(), locale), t.Day())
}
