package session

import (
	"time"

	"github.com/cardloop/backend/internal/domain/card"
	"github.com/cardloop/backend/internal/domain/scheduler"
)

// ApplyReview records one rating event: history, daily counters, learning
// queue maintenance and sibling burying. before is the card state as it was
// when shown, after the state the scheduler produced. The input session is
// not mutated.
func ApplyReview(s *StudySession, before card.Card, r card.Rating, after card.Card, cards map[string]card.Card, set scheduler.Settings, now time.Time) *StudySession {
	set, _ = scheduler.Validate(set)
	out := s.Clone()

	out.ReviewHistory = append(out.ReviewHistory, HistoryEntry{
		CardID:    before.ID,
		Previous:  before.Clone(),
		Rating:    r,
		Timestamp: now,
	})
	if len(out.ReviewHistory) > MaxHistory {
		out.ReviewHistory = out.ReviewHistory[len(out.ReviewHistory)-MaxHistory:]
	}

	switch before.State {
	case card.StateNew:
		out.NewCardsStudied++
	case card.Review:
		out.ReviewsCompleted++
	}

	if after.State.InLearning() {
		switch {
		case before.State == card.StateNew:
			if !queueContains(out.LearningQueue, before.ID) {
				out.LearningQueue = append(out.LearningQueue, before.ID)
			}
		case before.State.InLearning() && r == card.Again:
			// Failed learning card goes to the back of the line.
			out.LearningQueue = removeFromQueue(out.LearningQueue, before.ID)
			out.LearningQueue = append(out.LearningQueue, before.ID)
		default:
			// Queue position is left alone; a lapsed review card is picked
			// up by the selector's earliest-due fallback instead.
		}
	} else {
		out.LearningQueue = removeFromQueue(out.LearningQueue, before.ID)
	}

	if set.BurySiblings && before.NoteID != "" {
		for id, c := range cards {
			if id != before.ID && c.NoteID == before.NoteID {
				out.BuriedCards[id] = true
			}
		}
	}

	return out
}

// Undo reverses the most recent rating: the card's exact previous state is
// restored into a copy of the collection and the counter increments made for
// that entry are rolled back. Strictly single-step per call; ok is false when
// there is nothing to undo.
func Undo(s *StudySession, cards map[string]card.Card) (*StudySession, map[string]card.Card, string, bool) {
	if len(s.ReviewHistory) == 0 {
		return s, cards, "", false
	}

	out := s.Clone()
	entry := out.ReviewHistory[len(out.ReviewHistory)-1]
	out.ReviewHistory = out.ReviewHistory[:len(out.ReviewHistory)-1]

	switch entry.Previous.State {
	case card.StateNew:
		if out.NewCardsStudied > 0 {
			out.NewCardsStudied--
		}
	case card.Review:
		if out.ReviewsCompleted > 0 {
			out.ReviewsCompleted--
		}
	}

	restored := make(map[string]card.Card, len(cards))
	for id, c := range cards {
		restored[id] = c
	}
	restored[entry.CardID] = entry.Previous.Clone()

	return out, restored, entry.CardID, true
}
