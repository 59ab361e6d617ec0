package scheduler_test

import (
	"math"
	"testing"
	"time"

	"github.com/cardloop/backend/internal/domain/card"
	"github.com/cardloop/backend/internal/domain/scheduler"
)

var now = time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

func reviewCard(interval, ease float64, reps, lapses int) card.Card {
	c := card.New("c1", now.Add(-time.Duration(interval)*24*time.Hour))
	c.State = card.Review
	c.Interval = interval
	c.Ease = ease
	c.Repetitions = reps
	c.Lapses = lapses
	c.Due = now
	return c
}

func TestNewCardEasyGraduatesImmediately(t *testing.T) {
	c := card.New("c1", now)
	s := scheduler.Default()

	out := scheduler.Schedule(c, card.Easy, s, now)

	if out.State != card.Review {
		t.Fatalf("expected Review, got %v", out.State)
	}
	if out.Interval != 4 {
		t.Errorf("expected interval 4, got %g", out.Interval)
	}
	if out.Ease != 2.5 {
		t.Errorf("expected ease seeded to 2.5, got %g", out.Ease)
	}
	if out.Repetitions != 1 {
		t.Errorf("expected repetitions 1, got %d", out.Repetitions)
	}
	if want := now.Add(4 * 24 * time.Hour); !out.Due.Equal(want) {
		t.Errorf("expected due %v, got %v", want, out.Due)
	}
}

func TestNewCardEasyWithSmallEasyInterval(t *testing.T) {
	// When the fixed easy interval is not longer than the graduating
	// interval, the factor formula takes over.
	c := card.New("c1", now)
	s := scheduler.Default()
	s.EasyInterval = 1
	s.GraduatingInterval = 1

	out := scheduler.Schedule(c, card.Easy, s, now)

	// round(1 * 2.5 * 1.3) = 3
	if out.Interval != 3 {
		t.Errorf("expected interval 3, got %g", out.Interval)
	}
}

func TestNewCardEntersLearningAtStepZero(t *testing.T) {
	s := scheduler.Default()

	for _, r := range []card.Rating{card.Again, card.Hard, card.Good} {
		out := scheduler.Schedule(card.New("c1", now), r, s, now)

		if out.State != card.Learning {
			t.Fatalf("rating %v: expected Learning, got %v", r, out.State)
		}
		if out.LearningStep != 0 {
			t.Errorf("rating %v: expected step 0, got %d", r, out.LearningStep)
		}
		if out.Interval != 1 {
			t.Errorf("rating %v: expected interval 1 minute, got %g", r, out.Interval)
		}
		if want := now.Add(time.Minute); !out.Due.Equal(want) {
			t.Errorf("rating %v: expected due %v, got %v", r, want, out.Due)
		}
	}
}

func TestLearningGoodAdvancesThenGraduates(t *testing.T) {
	s := scheduler.Default()

	c := scheduler.Schedule(card.New("c1", now), card.Good, s, now)
	c = scheduler.Schedule(c, card.Good, s, now)
	if c.State != card.Learning || c.LearningStep != 1 {
		t.Fatalf("expected Learning step 1, got %v step %d", c.State, c.LearningStep)
	}
	if c.Interval != 10 {
		t.Errorf("expected interval 10 minutes, got %g", c.Interval)
	}

	c = scheduler.Schedule(c, card.Good, s, now)
	if c.State != card.Review {
		t.Fatalf("expected graduation to Review, got %v", c.State)
	}
	if c.Interval != 1 {
		t.Errorf("expected graduating interval 1, got %g", c.Interval)
	}
	if c.Repetitions != 1 {
		t.Errorf("expected repetitions 1, got %d", c.Repetitions)
	}
}

func TestLearningAgainResetsToStepZero(t *testing.T) {
	s := scheduler.Default()

	c := scheduler.Schedule(card.New("c1", now), card.Good, s, now)
	c = scheduler.Schedule(c, card.Good, s, now) // step 1
	c = scheduler.Schedule(c, card.Again, s, now)

	if c.State != card.Learning || c.LearningStep != 0 {
		t.Errorf("expected Learning step 0, got %v step %d", c.State, c.LearningStep)
	}
	if c.Interval != 1 {
		t.Errorf("expected interval 1 minute, got %g", c.Interval)
	}
}

func TestLearningHardRepeatsCurrentStep(t *testing.T) {
	s := scheduler.Default()

	c := scheduler.Schedule(card.New("c1", now), card.Good, s, now)
	c = scheduler.Schedule(c, card.Good, s, now) // step 1, 10 minutes
	c = scheduler.Schedule(c, card.Hard, s, now)

	if c.LearningStep != 1 || c.Interval != 10 {
		t.Errorf("expected step 1 repeated at 10 minutes, got step %d interval %g", c.LearningStep, c.Interval)
	}
}

func TestLearningEasyGraduatesWithFactor(t *testing.T) {
	s := scheduler.Default()

	c := scheduler.Schedule(card.New("c1", now), card.Good, s, now)
	c = scheduler.Schedule(c, card.Easy, s, now)

	if c.State != card.Review {
		t.Fatalf("expected Review, got %v", c.State)
	}
	// round(1 * 2.5 * 1.3) = 3
	if c.Interval != 3 {
		t.Errorf("expected interval 3, got %g", c.Interval)
	}
}

func TestReviewAgainIsALapse(t *testing.T) {
	c := reviewCard(10, 2.5, 2, 0)
	s := scheduler.Default()

	out := scheduler.Schedule(c, card.Again, s, now)

	if out.State != card.Relearning {
		t.Fatalf("expected Relearning, got %v", out.State)
	}
	if out.Lapses != 1 {
		t.Errorf("expected 1 lapse, got %d", out.Lapses)
	}
	if math.Abs(out.Ease-2.3) > 1e-9 {
		t.Errorf("expected ease 2.3, got %g", out.Ease)
	}
	if out.LearningStep != 0 || out.Interval != 10 {
		t.Errorf("expected relearning step 0 at 10 minutes, got step %d interval %g", out.LearningStep, out.Interval)
	}
	if want := now.Add(10 * time.Minute); !out.Due.Equal(want) {
		t.Errorf("expected due %v, got %v", want, out.Due)
	}
}

func TestReviewHardUsesHardFactor(t *testing.T) {
	c := reviewCard(10, 2.5, 2, 0)
	s := scheduler.Default()

	out := scheduler.Schedule(c, card.Hard, s, now)

	// round(10 * 1.2) = 12
	if out.Interval != 12 {
		t.Errorf("expected interval 12, got %g", out.Interval)
	}
	if out.Ease != 2.5 {
		t.Errorf("expected ease unchanged at 2.5, got %g", out.Ease)
	}
	if out.Repetitions != 3 {
		t.Errorf("expected repetitions 3, got %d", out.Repetitions)
	}
}

func TestReviewGoodGrowsByEase(t *testing.T) {
	c := reviewCard(10, 2.5, 2, 0)
	s := scheduler.Default()

	out := scheduler.Schedule(c, card.Good, s, now)

	// round(10 * 2.5) = 25
	if out.Interval != 25 {
		t.Errorf("expected interval 25, got %g", out.Interval)
	}
	if out.Ease != 2.5 {
		t.Errorf("expected ease unchanged, got %g", out.Ease)
	}
}

func TestReviewEasyBoostsIntervalAndEase(t *testing.T) {
	c := reviewCard(10, 2.5, 2, 0)
	s := scheduler.Default()

	out := scheduler.Schedule(c, card.Easy, s, now)

	// round(round(10 * 2.5) * 1.3) = round(32.5) = 33
	if out.Interval != 33 {
		t.Errorf("expected interval 33, got %g", out.Interval)
	}
	if math.Abs(out.Ease-2.65) > 1e-9 {
		t.Errorf("expected ease 2.65, got %g", out.Ease)
	}
}

func TestReviewLateBonusAddsWholeDays(t *testing.T) {
	c := reviewCard(10, 2.5, 2, 0)
	c.Due = now.Add(-3*24*time.Hour - time.Hour) // 3 whole days late
	s := scheduler.Default()

	out := scheduler.Schedule(c, card.Good, s, now)

	if out.Interval != 28 {
		t.Errorf("expected interval 25+3=28, got %g", out.Interval)
	}
}

func TestReviewFirstTwoReviewsUseAnchors(t *testing.T) {
	s := scheduler.Default()

	first := reviewCard(4, 2.5, 0, 0)
	out := scheduler.Schedule(first, card.Good, s, now)
	if out.Interval != 1 {
		t.Errorf("first review: expected interval 1, got %g", out.Interval)
	}

	second := reviewCard(1, 2.5, 1, 0)
	out = scheduler.Schedule(second, card.Good, s, now)
	// round(1 * 2.5) = 3
	if out.Interval != 3 {
		t.Errorf("second review: expected interval 3, got %g", out.Interval)
	}
}

func TestReviewIntervalAlwaysGrows(t *testing.T) {
	// A mature card at the ease floor with a tiny interval must still gain a
	// day on success.
	c := reviewCard(1, 1.3, 5, 0)
	s := scheduler.Default()

	out := scheduler.Schedule(c, card.Good, s, now)

	if out.Interval != 2 {
		t.Errorf("expected interval forced to previous+1=2, got %g", out.Interval)
	}
}

func TestReviewIntervalClampedToMax(t *testing.T) {
	c := reviewCard(10, 2.5, 2, 0)
	s := scheduler.Default()
	s.MaxInterval = 20

	out := scheduler.Schedule(c, card.Good, s, now)

	if out.Interval != 20 {
		t.Errorf("expected interval clamped to 20, got %g", out.Interval)
	}
}

func TestReviewIntervalModifierApplies(t *testing.T) {
	c := reviewCard(10, 2.5, 0, 0)
	s := scheduler.Default()
	s.IntervalModifier = 2.0

	out := scheduler.Schedule(c, card.Good, s, now)

	// base anchor 1, modified to 2
	if out.Interval != 2 {
		t.Errorf("expected interval 2, got %g", out.Interval)
	}
}

func TestEaseNeverDropsBelowFloor(t *testing.T) {
	c := reviewCard(10, 1.4, 2, 0)
	s := scheduler.Default()

	out := scheduler.Schedule(c, card.Again, s, now)

	if out.Ease != 1.3 {
		t.Errorf("expected ease floored at 1.3, got %g", out.Ease)
	}
}

func TestLeechDetectionSuspends(t *testing.T) {
	c := reviewCard(10, 2.5, 2, 7)
	s := scheduler.Default()

	out := scheduler.Schedule(c, card.Again, s, now)

	if out.Lapses != 8 {
		t.Fatalf("expected 8 lapses, got %d", out.Lapses)
	}
	if !out.IsLeech {
		t.Error("expected leech flag set")
	}
	if !out.IsSuspended {
		t.Error("expected card suspended by leech action")
	}
}

func TestLeechTagActionDoesNotSuspend(t *testing.T) {
	c := reviewCard(10, 2.5, 2, 7)
	s := scheduler.Default()
	s.LeechAction = scheduler.LeechActionTag

	out := scheduler.Schedule(c, card.Again, s, now)

	if !out.IsLeech {
		t.Error("expected leech flag set")
	}
	if out.IsSuspended {
		t.Error("tag action must not suspend")
	}
}

func TestRelearningGoodGraduatesWithRecoveryFactor(t *testing.T) {
	c := reviewCard(0, 2.3, 2, 1)
	c.State = card.Relearning
	c.LearningStep = 1 // last relearning step
	s := scheduler.Default()

	out := scheduler.Schedule(c, card.Good, s, now)

	if out.State != card.Review {
		t.Fatalf("expected Review, got %v", out.State)
	}
	// round(max(1,2) * 2.3 * 0.5) = round(2.3) = 2
	if out.Interval != 2 {
		t.Errorf("expected interval 2, got %g", out.Interval)
	}
	if out.Repetitions != 2 {
		t.Errorf("expected repetitions preserved at 2, got %d", out.Repetitions)
	}
}

func TestRelearningEasyGraduatesWithEasyFactor(t *testing.T) {
	c := reviewCard(0, 2.3, 2, 1)
	c.State = card.Relearning
	s := scheduler.Default()

	out := scheduler.Schedule(c, card.Easy, s, now)

	if out.State != card.Review {
		t.Fatalf("expected Review, got %v", out.State)
	}
	// round(2 * 2.3 * 1.3) = round(5.98) = 6
	if out.Interval != 6 {
		t.Errorf("expected interval 6, got %g", out.Interval)
	}
}

func TestRelearningAgainResetsStep(t *testing.T) {
	c := reviewCard(0, 2.3, 2, 1)
	c.State = card.Relearning
	c.LearningStep = 1
	s := scheduler.Default()

	out := scheduler.Schedule(c, card.Again, s, now)

	if out.LearningStep != 0 || out.Interval != 10 {
		t.Errorf("expected step 0 at 10 minutes, got step %d interval %g", out.LearningStep, out.Interval)
	}
}

func TestSuspendedCardIsNoOp(t *testing.T) {
	c := reviewCard(10, 2.5, 2, 0).Suspend()
	s := scheduler.Default()

	out := scheduler.Schedule(c, card.Good, s, now)

	if !out.LastReviewed.Equal(now) {
		t.Error("expected LastReviewed stamped")
	}
	out.LastReviewed = c.LastReviewed
	if out != c {
		t.Errorf("expected no change beyond LastReviewed, got %+v vs %+v", out, c)
	}
}

func TestBuriedCardIsNoOp(t *testing.T) {
	c := reviewCard(10, 2.5, 2, 0).Bury()
	s := scheduler.Default()

	out := scheduler.Schedule(c, card.Again, s, now)

	out.LastReviewed = c.LastReviewed
	if out != c {
		t.Errorf("expected no change beyond LastReviewed, got %+v vs %+v", out, c)
	}
}

func TestInvalidRatingIsNoOp(t *testing.T) {
	c := reviewCard(10, 2.5, 2, 0)
	s := scheduler.Default()

	out := scheduler.Schedule(c, card.Rating(42), s, now)

	out.LastReviewed = c.LastReviewed
	if out != c {
		t.Errorf("expected no change beyond LastReviewed, got %+v vs %+v", out, c)
	}
}

func TestScheduleDoesNotMutateInput(t *testing.T) {
	c := reviewCard(10, 2.5, 2, 0)
	snapshot := c
	s := scheduler.Default()

	scheduler.Schedule(c, card.Again, s, now)

	if c != snapshot {
		t.Errorf("input card mutated: %+v vs %+v", c, snapshot)
	}
}

func TestScheduleSanitizesBrokenSettings(t *testing.T) {
	c := card.New("c1", now)
	s := scheduler.Default()
	s.LearningSteps = nil // would index out of range unrepaired

	out := scheduler.Schedule(c, card.Good, s, now)

	if out.State != card.Learning || out.Interval != 1 {
		t.Errorf("expected default learning step, got %v interval %g", out.State, out.Interval)
	}
}
