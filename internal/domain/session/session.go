// Package session holds the in-session state machine around the scheduler:
// which card to show next, daily quota counters, the learning queue, sibling
// burying and single-step undo. Everything here is a pure transformation;
// functions return new state instead of mutating their inputs.
package session

import (
	"time"

	"github.com/cardloop/backend/internal/domain/card"
)

// MaxHistory bounds the undo log.
const MaxHistory = 20

// HistoryEntry is one rating event retained for undo. Previous is a deep copy
// owned exclusively by the history slot.
type HistoryEntry struct {
	CardID    string      `json:"card_id"`
	Previous  card.Card   `json:"previous"`
	Rating    card.Rating `json:"rating"`
	Timestamp time.Time   `json:"timestamp"`
}

// StudySession is one learner's open study session over a deck.
type StudySession struct {
	ID        string
	LearnerID string
	DeckID    string

	// DayStart is the local midnight the current counters belong to.
	DayStart time.Time

	NewCardsStudied  int
	ReviewsCompleted int

	// LearningQueue is the FIFO of cards cycling through learning/relearning.
	LearningQueue []string

	// BuriedCards are suppressed from selection until the next day boundary.
	BuriedCards map[string]bool

	ReviewHistory []HistoryEntry
}

// New creates an empty session anchored at the given local midnight.
func New(id, learnerID, deckID string, dayStart time.Time) *StudySession {
	return &StudySession{
		ID:          id,
		LearnerID:   learnerID,
		DeckID:      deckID,
		DayStart:    dayStart,
		BuriedCards: make(map[string]bool),
	}
}

// Clone returns a deep copy of the session.
func (s *StudySession) Clone() *StudySession {
	out := *s
	out.LearningQueue = append([]string(nil), s.LearningQueue...)
	out.BuriedCards = make(map[string]bool, len(s.BuriedCards))
	for id := range s.BuriedCards {
		out.BuriedCards[id] = true
	}
	out.ReviewHistory = append([]HistoryEntry(nil), s.ReviewHistory...)
	return &out
}

// Rollover resets the daily counters and clears the buried set if midnight is
// past the session's current day. It returns a new session either way.
func Rollover(s *StudySession, midnight time.Time) *StudySession {
	out := s.Clone()
	if !midnight.After(s.DayStart) {
		return out
	}
	out.DayStart = midnight
	out.NewCardsStudied = 0
	out.ReviewsCompleted = 0
	out.BuriedCards = make(map[string]bool)
	return out
}

func (s *StudySession) isBuried(id string) bool {
	return s.BuriedCards[id]
}

func removeFromQueue(queue []string, id string) []string {
	out := queue[:0]
	for _, q := range queue {
		if q != id {
			out = append(out, q)
		}
	}
	return out
}

func queueContains(queue []string, id string) bool {
	for _, q := range queue {
		if q == id {
			return true
		}
	}
	return false
}
