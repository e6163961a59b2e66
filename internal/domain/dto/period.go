package dto

import (
	"fmt"
	"time"
)

// Period identifies the statistics window a backend figure was computed
// over. The numeric codes are part of the backend contract.
type Period int32

const (
	PeriodYear Period = iota
	PeriodSemiAnnual
	PeriodQuarter
	PeriodMonth
	PeriodWeek
	PeriodDay
	PeriodHour
	PeriodMinute
)

// periodDurations maps every period code to exactly one lookback duration.
// The table is used to derive the start of a lookback window from an
// "until" boundary (until - duration).
var periodDurations = map[Period]time.Duration{
	PeriodYear:       365 * 24 * time.Hour,
	PeriodSemiAnnual: 180 * 24 * time.Hour,
	PeriodQuarter:    90 * 24 * time.Hour,
	PeriodMonth:      30 * 24 * time.Hour,
	PeriodWeek:       7 * 24 * time.Hour,
	PeriodDay:        24 * time.Hour,
	PeriodHour:       time.Hour,
	PeriodMinute:     time.Minute,
}

// Duration returns the lookback duration for the period code.
// Unknown codes are rejected rather than silently defaulted.
func (p Period) Duration() (time.Duration, error) {
	d, ok := periodDurations[p]
	if !ok {
		return 0, fmt.Errorf("unknown period code %d", int32(p))
	}
	return d, nil
}

// Valid reports whether p is one of the known period codes.
func (p Period) Valid() bool {
	_, ok := periodDurations[p]
	return ok
}
