// Package timeutil holds the day-boundary computation used for daily-counter
// resets and bury expiry.
package timeutil

import (
	"fmt"
	"time"
)

// LocalMidnight returns midnight of t's calendar date in the named IANA
// timezone. The host timezone is never consulted; an unknown name is an
// error so callers can fall back deliberately.
func LocalMidnight(t time.Time, tz string) (time.Time, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.Time{}, fmt.Errorf("timeutil: unknown timezone %q: %w", tz, err)
	}
	lt := t.In(loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc), nil
}

// SameDay reports whether a and b fall on the same calendar date in the named
// timezone.
func SameDay(a, b time.Time, tz string) (bool, error) {
	ma, err := LocalMidnight(a, tz)
	if err != nil {
		return false, err
	}
	mb, err := LocalMidnight(b, tz)
	if err != nil {
		return false, err
	}
	return ma.Equal(mb), nil
}
