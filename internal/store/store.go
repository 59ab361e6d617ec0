package store

import (
	"context"
	"errors"
	"time"

	"github.com/cardloop/backend/internal/domain/card"
	"github.com/cardloop/backend/internal/domain/deck"
	"github.com/cardloop/backend/internal/domain/scheduler"
	"github.com/cardloop/backend/internal/domain/session"
)

var (
	ErrNotFound = errors.New("not found")
)

// Store is the persistence boundary. Card scheduling state is keyed by the
// composite (learner, deck, card); everything the scheduling core computes is
// written back through full-record upserts.
type Store interface {
	// Decks
	SaveDeck(ctx context.Context, d *deck.Deck) error
	GetDeck(ctx context.Context, id string) (*deck.Deck, error)
	ListDecks(ctx context.Context) ([]*deck.Deck, error)
	DeleteDeck(ctx context.Context, id string) error

	// Cards (content; per-learner scheduling state lives in card states)
	AddCard(ctx context.Context, deckID string, c card.Card) error
	ListCards(ctx context.Context, deckID string) ([]card.Card, error)
	DeleteCard(ctx context.Context, deckID, cardID string) error

	// Card states. LoadCardStates returns one entry per card in the deck,
	// initializing any card the learner has never seen as New with due=now.
	LoadCardStates(ctx context.Context, learnerID, deckID string, now time.Time) (map[string]card.Card, error)
	UpsertCardState(ctx context.Context, learnerID, deckID string, c card.Card) error

	// Per-learner, per-deck scheduling settings. Stored as supplied; callers
	// run the validator on the way out.
	GetSettings(ctx context.Context, learnerID, deckID string) (scheduler.Settings, error)
	SaveSettings(ctx context.Context, learnerID, deckID string, s scheduler.Settings) error

	// Study sessions
	SaveSession(ctx context.Context, s *session.StudySession) error
	GetSession(ctx context.Context, id string) (*session.StudySession, error)
	UpdateSession(ctx context.Context, s *session.StudySession) error

	Close() error
}
