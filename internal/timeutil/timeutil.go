// Package timeutil holds the date handling shared by the translator and
// the facade. Backend dates travel as strings; only the first ten
// characters of an incoming date are significant ("2024-01-31..." is
// accepted and truncated).
package timeutil

import (
	"fmt"
	"time"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date. Longer inputs (e.g. with a time
// suffix) are truncated to the date part first.
func ParseDate(s string) (time.Time, error) {
	if len(s) < len(DateLayout) {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	t, err := time.Parse(DateLayout, s[:len(DateLayout)])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// FormatDate renders t in the wire format.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// LookbackStart computes the start of the window [until-d, until].
func LookbackStart(until time.Time, d time.Duration) time.Time {
	return until.Add(-d)
}
