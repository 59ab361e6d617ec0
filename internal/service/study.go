// internal/service/study.go
package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/cardloop/backend/internal/domain/card"
	"github.com/cardloop/backend/internal/domain/scheduler"
	"github.com/cardloop/backend/internal/domain/session"
	"github.com/cardloop/backend/internal/id"
	"github.com/cardloop/backend/internal/store"
	"github.com/cardloop/backend/internal/timeutil"
)

// ErrNothingToUndo is returned when the session's review history is empty.
var ErrNothingToUndo = errors.New("nothing to undo")

// StudyService orchestrates one rating event end to end: load state, roll the
// day over if needed, run the scheduler, update the session, persist, pick
// the next card.
//
// The scheduler has no internal conflict resolution, so concurrent reviews
// for the same session are funneled through a per-session mutex; one rating
// is fully processed and persisted before the next is applied.
type StudyService struct {
	store  store.Store
	logger *slog.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex // sessionID → serialization lock
}

// NewStudyService creates a StudyService.
func NewStudyService(s store.Store, logger *slog.Logger) *StudyService {
	return &StudyService{
		store:  s,
		logger: logger,
		locks:  make(map[string]*sync.Mutex),
	}
}

func (svc *StudyService) sessionLock(sessionID string) *sync.Mutex {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	l, ok := svc.locks[sessionID]
	if !ok {
		l = &sync.Mutex{}
		svc.locks[sessionID] = l
	}
	return l
}

// ReviewResult is the outcome of one rating event.
type ReviewResult struct {
	Card       card.Card
	Session    *session.StudySession
	NextCardID string
	HasNext    bool

	// Warning is set when the rating was ignored (suspended or buried card).
	Warning string
}

// NextCardResult identifies the card the learner should see next.
type NextCardResult struct {
	CardID  string
	Card    card.Card
	HasNext bool
}

// UndoResult reports what a successful undo restored.
type UndoResult struct {
	CardID  string
	Card    card.Card
	Session *session.StudySession
}

// StartSession opens a study session for a learner over a deck, anchored at
// the deck-local midnight of the current day.
func (svc *StudyService) StartSession(ctx context.Context, learnerID, deckID string) (*session.StudySession, error) {
	d, err := svc.store.GetDeck(ctx, deckID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sess := session.New(id.GenerateID(), learnerID, deckID, svc.midnight(now, d.Timezone))
	if err := svc.store.SaveSession(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// NextCard returns the next card to study in the session, rolling the day
// over first when a new deck-local day has begun.
func (svc *StudyService) NextCard(ctx context.Context, sessionID string) (*NextCardResult, error) {
	l := svc.sessionLock(sessionID)
	l.Lock()
	defer l.Unlock()

	now := time.Now()
	sess, settings, states, err := svc.loadSessionState(ctx, sessionID, now)
	if err != nil {
		return nil, err
	}

	cardID, ok := session.NextCard(states, sess, settings, now)
	if !ok {
		return &NextCardResult{}, nil
	}
	return &NextCardResult{CardID: cardID, Card: states[cardID], HasNext: true}, nil
}

// SubmitReview applies one rating to one card. Rating a suspended or buried
// card is a no-op reported through ReviewResult.Warning.
func (svc *StudyService) SubmitReview(ctx context.Context, sessionID, cardID string, r card.Rating) (*ReviewResult, error) {
	l := svc.sessionLock(sessionID)
	l.Lock()
	defer l.Unlock()

	now := time.Now()
	sess, settings, states, err := svc.loadSessionState(ctx, sessionID, now)
	if err != nil {
		return nil, err
	}

	before, ok := states[cardID]
	if !ok {
		return nil, store.ErrNotFound
	}

	if before.IsSuspended || before.IsBuried || sess.BuriedCards[cardID] {
		svc.logger.Warn("rating ignored for inert card",
			"session_id", sessionID,
			"card_id", cardID,
			"suspended", before.IsSuspended,
		)
		next, hasNext := session.NextCard(states, sess, settings, now)
		return &ReviewResult{
			Card:       before,
			Session:    sess,
			NextCardID: next,
			HasNext:    hasNext,
			Warning:    "card is suspended or buried; rating ignored",
		}, nil
	}

	after := scheduler.Schedule(before, r, settings, now)
	updated := session.ApplyReview(sess, before, r, after, states, settings, now)

	if err := svc.store.UpsertCardState(ctx, sess.LearnerID, sess.DeckID, after); err != nil {
		return nil, err
	}
	if err := svc.store.UpdateSession(ctx, updated); err != nil {
		return nil, err
	}

	states[cardID] = after
	next, hasNext := session.NextCard(states, updated, settings, now)
	return &ReviewResult{
		Card:       after,
		Session:    updated,
		NextCardID: next,
		HasNext:    hasNext,
	}, nil
}

// Undo reverses the most recent rating in the session. Returns
// ErrNothingToUndo when the history is empty.
func (svc *StudyService) Undo(ctx context.Context, sessionID string) (*UndoResult, error) {
	l := svc.sessionLock(sessionID)
	l.Lock()
	defer l.Unlock()

	now := time.Now()
	sess, _, states, err := svc.loadSessionState(ctx, sessionID, now)
	if err != nil {
		return nil, err
	}

	updated, restored, cardID, ok := session.Undo(sess, states)
	if !ok {
		return nil, ErrNothingToUndo
	}

	if err := svc.store.UpsertCardState(ctx, sess.LearnerID, sess.DeckID, restored[cardID]); err != nil {
		return nil, err
	}
	if err := svc.store.UpdateSession(ctx, updated); err != nil {
		return nil, err
	}

	return &UndoResult{CardID: cardID, Card: restored[cardID], Session: updated}, nil
}

// Settings returns the sanitized settings in effect for a learner and deck,
// along with any repairs the validator made.
func (svc *StudyService) Settings(ctx context.Context, learnerID, deckID string) (scheduler.Settings, []scheduler.Warning, error) {
	raw, err := svc.store.GetSettings(ctx, learnerID, deckID)
	if errors.Is(err, store.ErrNotFound) {
		s, warnings := scheduler.Validate(scheduler.Default())
		return s, warnings, nil
	}
	if err != nil {
		return scheduler.Settings{}, nil, err
	}
	s, warnings := scheduler.Validate(raw)
	return s, warnings, nil
}

// loadSessionState assembles everything a rating event needs and performs the
// day rollover: counters reset, session bury set cleared, card-level bury
// flags lifted.
func (svc *StudyService) loadSessionState(ctx context.Context, sessionID string, now time.Time) (*session.StudySession, scheduler.Settings, map[string]card.Card, error) {
	sess, err := svc.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, scheduler.Settings{}, nil, err
	}

	d, err := svc.store.GetDeck(ctx, sess.DeckID)
	if err != nil {
		return nil, scheduler.Settings{}, nil, err
	}

	settings, warnings, err := svc.Settings(ctx, sess.LearnerID, sess.DeckID)
	if err != nil {
		return nil, scheduler.Settings{}, nil, err
	}
	for _, w := range warnings {
		svc.logger.Warn("settings repaired", "field", w.Field, "message", w.Message,
			"learner_id", sess.LearnerID, "deck_id", sess.DeckID)
	}

	states, err := svc.store.LoadCardStates(ctx, sess.LearnerID, sess.DeckID, now)
	if err != nil {
		return nil, scheduler.Settings{}, nil, err
	}

	rolled := session.Rollover(sess, svc.midnight(now, d.Timezone))
	if rolled.DayStart.After(sess.DayStart) {
		for cid, c := range states {
			if c.IsBuried {
				states[cid] = c.Unbury()
				if err := svc.store.UpsertCardState(ctx, sess.LearnerID, sess.DeckID, states[cid]); err != nil {
					return nil, scheduler.Settings{}, nil, err
				}
			}
		}
		if err := svc.store.UpdateSession(ctx, rolled); err != nil {
			return nil, scheduler.Settings{}, nil, err
		}
	}

	return rolled, settings, states, nil
}

// midnight resolves the deck-local midnight, falling back to UTC when the
// deck names a zone the host database does not know.
func (svc *StudyService) midnight(now time.Time, tz string) time.Time {
	m, err := timeutil.LocalMidnight(now, tz)
	if err != nil {
		svc.logger.Warn("falling back to UTC day boundary", "timezone", tz, "error", err)
		m, _ = timeutil.LocalMidnight(now, "UTC")
	}
	return m
}
