package timeutil_test

import (
	"testing"
	"time"

	"github.com/cardloop/backend/internal/timeutil"
)

func TestLocalMidnightNamedZone(t *testing.T) {
	// 02:30 UTC on March 10 is still March 9 in New York (UTC-5).
	ts := time.Date(2026, time.March, 10, 2, 30, 0, 0, time.UTC)

	m, err := timeutil.LocalMidnight(ts, "America/New_York")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loc, _ := time.LoadLocation("America/New_York")
	want := time.Date(2026, time.March, 9, 0, 0, 0, 0, loc)
	if !m.Equal(want) {
		t.Errorf("expected %v, got %v", want, m)
	}
}

func TestLocalMidnightUTC(t *testing.T) {
	ts := time.Date(2026, time.March, 10, 23, 59, 59, 0, time.UTC)

	m, err := timeutil.LocalMidnight(ts, "UTC")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	if !m.Equal(want) {
		t.Errorf("expected %v, got %v", want, m)
	}
}

func TestLocalMidnightUnknownZone(t *testing.T) {
	if _, err := timeutil.LocalMidnight(time.Now(), "Mars/Olympus_Mons"); err == nil {
		t.Error("expected error for unknown timezone")
	}
}

func TestSameDayAcrossZones(t *testing.T) {
	// Both instants are March 9 in New York even though one is March 10 UTC.
	a := time.Date(2026, time.March, 9, 20, 0, 0, 0, time.UTC)
	b := time.Date(2026, time.March, 10, 3, 0, 0, 0, time.UTC)

	same, err := timeutil.SameDay(a, b, "America/New_York")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !same {
		t.Error("expected same New York day")
	}

	same, err = timeutil.SameDay(a, b, "UTC")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if same {
		t.Error("expected different UTC days")
	}
}
