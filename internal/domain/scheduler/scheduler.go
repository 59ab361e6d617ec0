// Package scheduler contains the pure spaced-repetition engine: a validated
// configuration record and a total state-transition function over card state.
// Nothing here performs I/O or reads the clock; "now" is always an argument.
package scheduler

import (
	"math"
	"time"

	"github.com/cardloop/backend/internal/domain/card"
)

// Schedule computes the card's next state for the given rating at the given
// time. The input card is never mutated; the returned card is a fresh value.
//
// The function is total: settings are sanitized on entry, a suspended or
// buried card is returned unchanged apart from LastReviewed, and an invalid
// rating is treated the same way.
func Schedule(c card.Card, r card.Rating, s Settings, now time.Time) card.Card {
	s, _ = Validate(s)

	out := c.Clone()
	out.LastReviewed = now

	if c.IsSuspended || c.IsBuried || !r.IsValid() {
		return out
	}

	// Ease is meaningless before the card has ever entered the ease-based
	// part of the lifecycle; seed it so the floor invariant holds from the
	// first transition on.
	if out.Ease < s.MinimumEase {
		out.Ease = s.StartingEase
	}

	switch c.State {
	case card.StateNew:
		return scheduleNew(out, r, s, now)
	case card.Learning:
		return scheduleLearning(out, r, s, now)
	case card.Review:
		return scheduleReview(out, r, s, now)
	case card.Relearning:
		return scheduleRelearning(out, r, s, now)
	default:
		return out
	}
}

func scheduleNew(c card.Card, r card.Rating, s Settings, now time.Time) card.Card {
	if r == card.Easy {
		// Skip learning entirely.
		interval := float64(s.EasyInterval)
		if s.EasyInterval <= s.GraduatingInterval {
			interval = math.Round(float64(s.GraduatingInterval) * c.Ease * s.EasyIntervalFactor)
		}
		return graduate(c, clampDays(interval, s), 1, now)
	}

	c.State = card.Learning
	c.LearningStep = 0
	c.Interval = s.LearningSteps[0]
	c.Due = dueInMinutes(now, c.Interval)
	return c
}

func scheduleLearning(c card.Card, r card.Rating, s Settings, now time.Time) card.Card {
	steps := s.LearningSteps

	switch r {
	case card.Again:
		c.LearningStep = 0
		return atStep(c, steps, now)

	case card.Hard:
		// Repeat the current step.
		if c.LearningStep >= len(steps) {
			c.LearningStep = len(steps) - 1
		}
		return atStep(c, steps, now)

	case card.Good:
		next := c.LearningStep + 1
		if next >= len(steps) {
			return graduate(c, clampDays(float64(s.GraduatingInterval), s), 1, now)
		}
		c.LearningStep = next
		return atStep(c, steps, now)

	default: // Easy
		interval := math.Round(float64(s.GraduatingInterval) * c.Ease * s.EasyIntervalFactor)
		return graduate(c, clampDays(interval, s), 1, now)
	}
}

func scheduleReview(c card.Card, r card.Rating, s Settings, now time.Time) card.Card {
	if r == card.Again {
		return lapse(c, s, now)
	}

	// Whole days the review is overdue; an on-time review earns nothing.
	var lateDays float64
	if now.After(c.Due) {
		lateDays = math.Floor(now.Sub(c.Due).Hours() / 24)
	}

	prev := c.Interval

	// Base interval for the SM-2 growth path. The first two post-graduation
	// reviews use fixed anchors instead of the previous interval.
	var base float64
	switch c.Repetitions {
	case 0:
		base = 1
	case 1:
		base = math.Round(1 * c.Ease)
	default:
		base = math.Round(prev * c.Ease)
	}

	var interval float64
	switch r {
	case card.Hard:
		interval = math.Round(prev * s.HardIntervalFactor)
	case card.Easy:
		interval = math.Round(base * s.EasyIntervalFactor)
		c.Ease += s.EasyEaseBonus
	default: // Good
		interval = base
	}

	interval += lateDays
	interval = math.Round(interval * s.IntervalModifier)
	if c.Repetitions >= 2 {
		// Intervals must grow on success, except on the anchored first two
		// reviews.
		interval = math.Max(interval, prev+1)
	}

	c.Interval = clampDays(interval, s)
	c.Due = dueInDays(now, c.Interval)
	c.Repetitions++
	return c
}

func scheduleRelearning(c card.Card, r card.Rating, s Settings, now time.Time) card.Card {
	steps := s.RelearningSteps

	switch r {
	case card.Again:
		c.LearningStep = 0
		return atStep(c, steps, now)

	case card.Hard:
		if c.LearningStep >= len(steps) {
			c.LearningStep = len(steps) - 1
		}
		return atStep(c, steps, now)

	case card.Good:
		next := c.LearningStep + 1
		if next >= len(steps) {
			interval := math.Round(math.Max(1, float64(c.Repetitions)) * c.Ease * s.LapseRecoveryFactor)
			return graduate(c, clampDays(interval, s), c.Repetitions, now)
		}
		c.LearningStep = next
		return atStep(c, steps, now)

	default: // Easy
		interval := math.Round(math.Max(1, float64(c.Repetitions)) * c.Ease * s.EasyIntervalFactor)
		return graduate(c, clampDays(interval, s), c.Repetitions, now)
	}
}

// lapse handles Again on a Review card: ease penalty, relearning entry,
// lapse count and leech detection.
func lapse(c card.Card, s Settings, now time.Time) card.Card {
	c.Lapses++
	c.Ease = math.Max(s.MinimumEase, c.Ease-s.AgainEasePenalty)
	c.State = card.Relearning
	c.LearningStep = 0
	c.Interval = s.RelearningSteps[0]
	c.Due = dueInMinutes(now, c.Interval)

	if c.Lapses >= s.LeechThreshold {
		c.IsLeech = true
		if s.LeechAction == LeechActionSuspend {
			c.IsSuspended = true
		}
	}
	return c
}

// atStep schedules the card at its current LearningStep within steps.
func atStep(c card.Card, steps []float64, now time.Time) card.Card {
	c.Interval = steps[c.LearningStep]
	c.Due = dueInMinutes(now, c.Interval)
	return c
}

// graduate moves the card into Review with the given day interval.
func graduate(c card.Card, days float64, repetitions int, now time.Time) card.Card {
	c.State = card.Review
	c.LearningStep = 0
	c.Interval = days
	c.Repetitions = repetitions
	c.Due = dueInDays(now, days)
	return c
}

func clampDays(days float64, s Settings) float64 {
	if days < 1 {
		return 1
	}
	if days > float64(s.MaxInterval) {
		return float64(s.MaxInterval)
	}
	return days
}

func dueInMinutes(now time.Time, minutes float64) time.Time {
	return now.Add(time.Duration(minutes * float64(time.Minute)))
}

func dueInDays(now time.Time, days float64) time.Time {
	return now.Add(time.Duration(days * 24 * float64(time.Hour)))
}
