package session

import (
	"math/rand"
	"sort"
	"time"

	"github.com/cardloop/backend/internal/domain/card"
	"github.com/cardloop/backend/internal/domain/scheduler"
)

// NextCard picks the id of the next card to study, or ok=false if the session
// is exhausted. Priority tiers, each consulted only when the previous one is
// empty:
//
//  1. due learning/relearning cards, learning-queue order first
//  2. due review cards, under the daily review cap
//  3. new cards, under the daily new-card cap
func NextCard(cards map[string]card.Card, s *StudySession, set scheduler.Settings, now time.Time) (string, bool) {
	set, _ = scheduler.Validate(set)

	if id, ok := nextLearning(cards, s, now); ok {
		return id, true
	}
	if id, ok := nextReview(cards, s, set, now); ok {
		return id, true
	}
	return nextNew(cards, s, set)
}

func nextLearning(cards map[string]card.Card, s *StudySession, now time.Time) (string, bool) {
	due := func(c card.Card) bool {
		return c.State.InLearning() && !c.IsSuspended && !c.Due.After(now)
	}

	// FIFO: first queued id that is currently due.
	for _, id := range s.LearningQueue {
		if c, ok := cards[id]; ok && due(c) {
			return id, true
		}
	}

	// Fall back to the earliest-due learning card outside the queue.
	var best string
	var bestDue time.Time
	for id, c := range cards {
		if !due(c) {
			continue
		}
		if best == "" || c.Due.Before(bestDue) || (c.Due.Equal(bestDue) && id < best) {
			best, bestDue = id, c.Due
		}
	}
	return best, best != ""
}

func nextReview(cards map[string]card.Card, s *StudySession, set scheduler.Settings, now time.Time) (string, bool) {
	if set.MaxReviewsPerDay > 0 && s.ReviewsCompleted >= set.MaxReviewsPerDay {
		return "", false
	}

	var best string
	var bestDue time.Time
	for id, c := range cards {
		if c.State != card.Review || c.IsSuspended || c.IsBuried || s.isBuried(id) {
			continue
		}
		if !set.ReviewAhead && c.Due.After(now) {
			continue
		}
		if best == "" || c.Due.Before(bestDue) || (c.Due.Equal(bestDue) && id < best) {
			best, bestDue = id, c.Due
		}
	}
	return best, best != ""
}

func nextNew(cards map[string]card.Card, s *StudySession, set scheduler.Settings) (string, bool) {
	if s.NewCardsStudied >= set.NewCardsPerDay {
		return "", false
	}

	var eligible []string
	for id, c := range cards {
		if c.State == card.StateNew && !c.IsSuspended && !c.IsBuried && !s.isBuried(id) {
			eligible = append(eligible, id)
		}
	}
	if len(eligible) == 0 {
		return "", false
	}

	if set.NewCardOrder == scheduler.NewCardOrderRandom {
		return eligible[rand.Intn(len(eligible))], true
	}

	// FIFO: creation order, approximated by due time (set at creation),
	// with id as tiebreaker.
	sort.Slice(eligible, func(i, j int) bool {
		a, b := cards[eligible[i]], cards[eligible[j]]
		if !a.Due.Equal(b.Due) {
			return a.Due.Before(b.Due)
		}
		return eligible[i] < eligible[j]
	})
	return eligible[0], true
}
