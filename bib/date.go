package bib

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Date is a structured date with optional month and day. A non-zero
// Date always carries at least a year.
type Date struct {
	Year  int
	Month int
	Day   int
}

// IsZero reports whether the date has no value.
func (d Date) IsZero() bool {
	return d.Year == 0
}

// String renders the date in ISO form at its available precision.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(d.Year))
	if d.Month > 0 {
		sb.WriteByte('-')
		if d.Month < 10 {
			sb.WriteByte('0')
		}
		sb.WriteString(strconv.Itoa(d.Month))
		if d.Day > 0 {
			sb.WriteByte('-')
			if d.Day < 10 {
				sb.WriteByte('0')
			}
			sb.WriteString(strconv.Itoa(d.Day))
		}
	}
	return sb.String()
}

var yearOnlyRegex = regexp.MustCompile(`^\d{4}$`)

// dateLayouts are tried in order by the permissive parser. Repository
// date metadata is wildly inconsistent; this mirrors the multi-format
// parsing the host platform applies to descriptive dates.
var dateLayouts = []string{
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006-01",
	"2006/01/02",
	"01/02/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"January 2006",
	"Jan 2006",
}

// ParseDate derives a structured date from a raw metadata value. Bare
// 4-digit years short-circuit to a year-only date. Anything else goes
// through the multi-format parser. Unparseable input yields no date,
// never an error; the caller skips the occurrence.
func ParseDate(raw string) (Date, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Date{}, false
	}

	if yearOnlyRegex.MatchString(s) {
		year, _ := strconv.Atoi(s)
		return Date{Year: year}, true
	}

	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		d := Date{Year: t.Year()}
		// Layouts shorter than a full date leave month/day at their
		// zero-time defaults; only keep components the layout names.
		if strings.Contains(layout, "01") || strings.Contains(layout, "January") || strings.Contains(layout, "Jan") {
			d.Month = int(t.Month())
		}
		if strings.Contains(layout, "2,") || strings.Contains(layout, "02") || strings.HasPrefix(layout, "2 ") {
			d.Day = t.Day()
		}
		return d, true
	}

	// Last resort: pull a plausible year out of the string.
	if m := yearExtractRegex.FindString(s); m != "" {
		year, _ := strconv.Atoi(m)
		return Date{Year: year}, true
	}

	return Date{}, false
}

var yearExtractRegex = regexp.MustCompile(`\b(1[0-9]{3}|20[0-9]{2})\b`)
