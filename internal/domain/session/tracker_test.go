package session_test

import (
	"fmt"
	"testing"

	"github.com/cardloop/backend/internal/domain/card"
	"github.com/cardloop/backend/internal/domain/scheduler"
	"github.com/cardloop/backend/internal/domain/session"
)

func TestApplyReviewRecordsHistory(t *testing.T) {
	before := dueReviewCard("r1", now)
	after := scheduler.Schedule(before, card.Good, scheduler.Default(), now)
	cards := map[string]card.Card{"r1": before}

	out := session.ApplyReview(newSession(), before, card.Good, after, cards, scheduler.Default(), now)

	if len(out.ReviewHistory) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(out.ReviewHistory))
	}
	entry := out.ReviewHistory[0]
	if entry.CardID != "r1" || entry.Rating != card.Good {
		t.Errorf("unexpected entry %+v", entry)
	}
	if entry.Previous != before {
		t.Errorf("expected exact previous state retained, got %+v", entry.Previous)
	}
}

func TestApplyReviewHistoryIsBounded(t *testing.T) {
	s := newSession()
	cards := map[string]card.Card{}
	set := scheduler.Default()

	for i := 0; i < session.MaxHistory+5; i++ {
		c := dueReviewCard(fmt.Sprintf("r%02d", i), now)
		cards[c.ID] = c
		after := scheduler.Schedule(c, card.Good, set, now)
		s = session.ApplyReview(s, c, card.Good, after, cards, set, now)
	}

	if len(s.ReviewHistory) != session.MaxHistory {
		t.Fatalf("expected history capped at %d, got %d", session.MaxHistory, len(s.ReviewHistory))
	}
	// Oldest entries fall off the front.
	if got := s.ReviewHistory[0].CardID; got != "r05" {
		t.Errorf("expected oldest retained entry r05, got %q", got)
	}
}

func TestApplyReviewCounters(t *testing.T) {
	set := scheduler.Default()
	s := newSession()

	n := card.New("n1", now)
	s = session.ApplyReview(s, n, card.Good, scheduler.Schedule(n, card.Good, set, now),
		map[string]card.Card{"n1": n}, set, now)
	if s.NewCardsStudied != 1 || s.ReviewsCompleted != 0 {
		t.Errorf("after new card: got new=%d reviews=%d", s.NewCardsStudied, s.ReviewsCompleted)
	}

	r := dueReviewCard("r1", now)
	s = session.ApplyReview(s, r, card.Good, scheduler.Schedule(r, card.Good, set, now),
		map[string]card.Card{"r1": r}, set, now)
	if s.NewCardsStudied != 1 || s.ReviewsCompleted != 1 {
		t.Errorf("after review: got new=%d reviews=%d", s.NewCardsStudied, s.ReviewsCompleted)
	}
}

func TestApplyReviewQueuesNewCardEnteringLearning(t *testing.T) {
	set := scheduler.Default()
	n := card.New("n1", now)
	after := scheduler.Schedule(n, card.Good, set, now)

	s := session.ApplyReview(newSession(), n, card.Good, after, map[string]card.Card{"n1": n}, set, now)

	if len(s.LearningQueue) != 1 || s.LearningQueue[0] != "n1" {
		t.Errorf("expected queue [n1], got %v", s.LearningQueue)
	}
}

func TestApplyReviewAgainMovesToBackOfQueue(t *testing.T) {
	set := scheduler.Default()
	s := newSession()
	s.LearningQueue = []string{"l1", "l2"}

	l1 := learningCard("l1", now)
	after := scheduler.Schedule(l1, card.Again, set, now)
	s = session.ApplyReview(s, l1, card.Again, after, map[string]card.Card{"l1": l1}, set, now)

	if len(s.LearningQueue) != 2 || s.LearningQueue[0] != "l2" || s.LearningQueue[1] != "l1" {
		t.Errorf("expected queue [l2 l1], got %v", s.LearningQueue)
	}
}

func TestApplyReviewGraduationLeavesQueue(t *testing.T) {
	set := scheduler.Default()
	s := newSession()
	s.LearningQueue = []string{"l1"}

	l1 := learningCard("l1", now)
	l1.LearningStep = 1 // last learning step
	after := scheduler.Schedule(l1, card.Good, set, now)
	if after.State != card.Review {
		t.Fatalf("setup: expected graduation, got %v", after.State)
	}

	s = session.ApplyReview(s, l1, card.Good, after, map[string]card.Card{"l1": l1}, set, now)
	if len(s.LearningQueue) != 0 {
		t.Errorf("expected empty queue after graduation, got %v", s.LearningQueue)
	}
}

func TestApplyReviewBuriesSiblings(t *testing.T) {
	set := scheduler.Default()
	a := card.New("a", now)
	a.NoteID = "note1"
	b := card.New("b", now)
	b.NoteID = "note1"
	c := card.New("c", now)
	c.NoteID = "note2"
	cards := map[string]card.Card{"a": a, "b": b, "c": c}

	after := scheduler.Schedule(a, card.Good, set, now)
	s := session.ApplyReview(newSession(), a, card.Good, after, cards, set, now)

	if !s.BuriedCards["b"] {
		t.Error("expected sibling b buried")
	}
	if s.BuriedCards["a"] {
		t.Error("the rated card itself must not be buried")
	}
	if s.BuriedCards["c"] {
		t.Error("card with a different note must not be buried")
	}
}

func TestApplyReviewBurySiblingsDisabled(t *testing.T) {
	set := scheduler.Default()
	set.BurySiblings = false
	a := card.New("a", now)
	a.NoteID = "note1"
	b := card.New("b", now)
	b.NoteID = "note1"
	cards := map[string]card.Card{"a": a, "b": b}

	after := scheduler.Schedule(a, card.Good, set, now)
	s := session.ApplyReview(newSession(), a, card.Good, after, cards, set, now)

	if len(s.BuriedCards) != 0 {
		t.Errorf("expected no burying, got %v", s.BuriedCards)
	}
}

func TestApplyReviewDoesNotMutateInput(t *testing.T) {
	set := scheduler.Default()
	s := newSession()
	n := card.New("n1", now)
	after := scheduler.Schedule(n, card.Good, set, now)

	session.ApplyReview(s, n, card.Good, after, map[string]card.Card{"n1": n}, set, now)

	if len(s.ReviewHistory) != 0 || len(s.LearningQueue) != 0 || s.NewCardsStudied != 0 {
		t.Errorf("input session mutated: %+v", s)
	}
}

func TestUndoRestoresExactPreviousState(t *testing.T) {
	set := scheduler.Default()
	before := dueReviewCard("r1", now)
	after := scheduler.Schedule(before, card.Again, set, now)
	cards := map[string]card.Card{"r1": after}

	s := session.ApplyReview(newSession(), before, card.Again, after, cards, set, now)

	undone, restored, cardID, ok := session.Undo(s, cards)
	if !ok {
		t.Fatal("expected undo to succeed")
	}
	if cardID != "r1" {
		t.Errorf("expected r1, got %q", cardID)
	}
	if restored["r1"] != before {
		t.Errorf("expected exact previous state, got %+v", restored["r1"])
	}
	if len(undone.ReviewHistory) != 0 {
		t.Errorf("expected history popped, got %d entries", len(undone.ReviewHistory))
	}
	// Input collection untouched.
	if cards["r1"] != after {
		t.Error("input card collection mutated by undo")
	}
}

func TestUndoReversesCounters(t *testing.T) {
	set := scheduler.Default()
	n := card.New("n1", now)
	after := scheduler.Schedule(n, card.Good, set, now)
	cards := map[string]card.Card{"n1": after}

	s := session.ApplyReview(newSession(), n, card.Good, after, cards, set, now)
	if s.NewCardsStudied != 1 {
		t.Fatalf("setup: expected counter 1, got %d", s.NewCardsStudied)
	}

	undone, _, _, ok := session.Undo(s, cards)
	if !ok {
		t.Fatal("expected undo to succeed")
	}
	if undone.NewCardsStudied != 0 {
		t.Errorf("expected counter back to 0, got %d", undone.NewCardsStudied)
	}
}

func TestUndoCountersFloorAtZero(t *testing.T) {
	s := newSession()
	s.ReviewHistory = []session.HistoryEntry{{
		CardID:    "r1",
		Previous:  dueReviewCard("r1", now),
		Rating:    card.Good,
		Timestamp: now,
	}}
	// Counter already zero; undo must not go negative.
	undone, _, _, ok := session.Undo(s, map[string]card.Card{"r1": dueReviewCard("r1", now)})
	if !ok {
		t.Fatal("expected undo to succeed")
	}
	if undone.ReviewsCompleted != 0 {
		t.Errorf("expected counter floored at 0, got %d", undone.ReviewsCompleted)
	}
}

func TestUndoEmptyHistory(t *testing.T) {
	_, _, _, ok := session.Undo(newSession(), map[string]card.Card{})
	if ok {
		t.Error("expected ok=false with empty history")
	}
}

func TestRolloverResetsDailyState(t *testing.T) {
	s := newSession()
	s.NewCardsStudied = 5
	s.ReviewsCompleted = 12
	s.BuriedCards["x"] = true
	s.LearningQueue = []string{"l1"}

	next := midnight().AddDate(0, 0, 1)
	out := session.Rollover(s, next)

	if out.NewCardsStudied != 0 || out.ReviewsCompleted != 0 {
		t.Errorf("expected counters reset, got new=%d reviews=%d", out.NewCardsStudied, out.ReviewsCompleted)
	}
	if len(out.BuriedCards) != 0 {
		t.Errorf("expected buried set cleared, got %v", out.BuriedCards)
	}
	if !out.DayStart.Equal(next) {
		t.Errorf("expected day start %v, got %v", next, out.DayStart)
	}
	// The learning queue survives the boundary.
	if len(out.LearningQueue) != 1 {
		t.Errorf("expected learning queue preserved, got %v", out.LearningQueue)
	}
}

func TestRolloverSameDayIsUnchanged(t *testing.T) {
	s := newSession()
	s.NewCardsStudied = 5
	s.BuriedCards["x"] = true

	out := session.Rollover(s, midnight())

	if out.NewCardsStudied != 5 || !out.BuriedCards["x"] {
		t.Errorf("expected state preserved within the same day, got %+v", out)
	}
}

func TestUndoDepthMatchesRetainedHistory(t *testing.T) {
	set := scheduler.Default()
	s := newSession()
	cards := map[string]card.Card{}

	const total = session.MaxHistory + 3
	for i := 0; i < total; i++ {
		c := dueReviewCard(fmt.Sprintf("r%02d", i), now)
		cards[c.ID] = c
		after := scheduler.Schedule(c, card.Good, set, now)
		s = session.ApplyReview(s, c, card.Good, after, cards, set, now)
		cards[c.ID] = after
	}

	undos := 0
	for {
		var ok bool
		s, cards, _, ok = session.Undo(s, cards)
		if !ok {
			break
		}
		undos++
	}
	if undos != session.MaxHistory {
		t.Errorf("expected exactly %d undos, got %d", session.MaxHistory, undos)
	}
}
