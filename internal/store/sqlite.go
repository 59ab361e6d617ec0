// internal/store/sqlite.go
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cardloop/backend/internal/domain/card"
	"github.com/cardloop/backend/internal/domain/deck"
	"github.com/cardloop/backend/internal/domain/scheduler"
	"github.com/cardloop/backend/internal/domain/session"
)

const schema = `
CREATE TABLE IF NOT EXISTS decks (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    timezone TEXT NOT NULL DEFAULT 'UTC'
);

CREATE TABLE IF NOT EXISTS cards (
    id TEXT PRIMARY KEY,
    deck_id TEXT NOT NULL,
    note_id TEXT NOT NULL DEFAULT '',
    front TEXT NOT NULL DEFAULT '',
    back TEXT NOT NULL DEFAULT '',
    position INTEGER NOT NULL,
    FOREIGN KEY (deck_id) REFERENCES decks(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS card_states (
    learner_id TEXT NOT NULL,
    deck_id TEXT NOT NULL,
    card_id TEXT NOT NULL,
    state TEXT NOT NULL,
    interval REAL NOT NULL,
    ease REAL NOT NULL,
    due INTEGER NOT NULL,
    last_reviewed INTEGER NOT NULL,
    repetitions INTEGER NOT NULL,
    lapses INTEGER NOT NULL,
    learning_step INTEGER NOT NULL,
    is_leech INTEGER NOT NULL,
    is_suspended INTEGER NOT NULL,
    is_buried INTEGER NOT NULL,
    PRIMARY KEY (learner_id, deck_id, card_id)
);

CREATE TABLE IF NOT EXISTS deck_settings (
    learner_id TEXT NOT NULL,
    deck_id TEXT NOT NULL,
    settings TEXT NOT NULL,
    PRIMARY KEY (learner_id, deck_id)
);

CREATE TABLE IF NOT EXISTS study_sessions (
    id TEXT PRIMARY KEY,
    learner_id TEXT NOT NULL,
    deck_id TEXT NOT NULL,
    day_start INTEGER NOT NULL,
    new_cards_studied INTEGER NOT NULL,
    reviews_completed INTEGER NOT NULL,
    learning_queue TEXT NOT NULL,
    buried_cards TEXT NOT NULL,
    review_history TEXT NOT NULL
);
`

type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// millis converts a time to unix milliseconds, with 0 for the zero time
// ("never"). The zero time itself has a negative unix value, so the mapping
// is unambiguous.
func millis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

func fromMillis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}

// ============================================================================
// Decks
// ============================================================================

func (s *SQLiteStore) SaveDeck(ctx context.Context, d *deck.Deck) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO decks (id, name, timezone) VALUES (?, ?, ?)",
		d.ID, d.Name, d.Timezone,
	)
	return err
}

func (s *SQLiteStore) GetDeck(ctx context.Context, id string) (*deck.Deck, error) {
	var d deck.Deck
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, timezone FROM decks WHERE id = ?", id,
	).Scan(&d.ID, &d.Name, &d.Timezone)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *SQLiteStore) ListDecks(ctx context.Context) ([]*deck.Deck, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, timezone FROM decks")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var decks []*deck.Deck
	for rows.Next() {
		var d deck.Deck
		if err := rows.Scan(&d.ID, &d.Name, &d.Timezone); err != nil {
			return nil, err
		}
		decks = append(decks, &d)
	}
	return decks, rows.Err()
}

func (s *SQLiteStore) DeleteDeck(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM card_states WHERE deck_id = ?", id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM deck_settings WHERE deck_id = ?", id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM study_sessions WHERE deck_id = ?", id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM cards WHERE deck_id = ?", id); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, "DELETE FROM decks WHERE id = ?", id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return tx.Commit()
}

// ============================================================================
// Cards
// ============================================================================

func (s *SQLiteStore) AddCard(ctx context.Context, deckID string, c card.Card) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO cards (id, deck_id, note_id, front, back, position)
		VALUES (?, ?, ?, ?, ?, (SELECT COALESCE(MAX(position), 0) + 1 FROM cards WHERE deck_id = ?))
	`, c.ID, deckID, c.NoteID, c.Front, c.Back, deckID)
	return err
}

func (s *SQLiteStore) ListCards(ctx context.Context, deckID string) ([]card.Card, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, note_id, front, back FROM cards WHERE deck_id = ? ORDER BY position",
		deckID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []card.Card
	for rows.Next() {
		var c card.Card
		if err := rows.Scan(&c.ID, &c.NoteID, &c.Front, &c.Back); err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, rows.Err()
}

func (s *SQLiteStore) DeleteCard(ctx context.Context, deckID, cardID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM card_states WHERE deck_id = ? AND card_id = ?", deckID, cardID); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, "DELETE FROM cards WHERE deck_id = ? AND id = ?", deckID, cardID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return tx.Commit()
}

// ============================================================================
// Card states
// ============================================================================

func (s *SQLiteStore) LoadCardStates(ctx context.Context, learnerID, deckID string, now time.Time) (map[string]card.Card, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT c.id, c.note_id, c.front, c.back,
		       cs.state, cs.interval, cs.ease, cs.due, cs.last_reviewed,
		       cs.repetitions, cs.lapses, cs.learning_step,
		       cs.is_leech, cs.is_suspended, cs.is_buried
		FROM cards c
		LEFT JOIN card_states cs
		  ON cs.card_id = c.id AND cs.deck_id = c.deck_id AND cs.learner_id = ?
		WHERE c.deck_id = ?
		ORDER BY c.position
	`, learnerID, deckID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	states := make(map[string]card.Card)
	for rows.Next() {
		var (
			c           card.Card
			state       sql.NullString
			interval    sql.NullFloat64
			ease        sql.NullFloat64
			due         sql.NullInt64
			lastRev     sql.NullInt64
			repetitions sql.NullInt64
			lapses      sql.NullInt64
			step        sql.NullInt64
			isLeech     sql.NullBool
			isSuspended sql.NullBool
			isBuried    sql.NullBool
		)
		if err := rows.Scan(&c.ID, &c.NoteID, &c.Front, &c.Back,
			&state, &interval, &ease, &due, &lastRev,
			&repetitions, &lapses, &step,
			&isLeech, &isSuspended, &isBuried); err != nil {
			return nil, err
		}

		if !state.Valid {
			// Never studied by this learner: fresh New card, due now.
			fresh := card.New(c.ID, now)
			fresh.NoteID = c.NoteID
			fresh.Front = c.Front
			fresh.Back = c.Back
			states[c.ID] = fresh
			continue
		}

		if err := c.State.UnmarshalText([]byte(state.String)); err != nil {
			return nil, fmt.Errorf("card %s: %w", c.ID, err)
		}
		c.Interval = interval.Float64
		c.Ease = ease.Float64
		c.Due = fromMillis(due.Int64)
		c.LastReviewed = fromMillis(lastRev.Int64)
		c.Repetitions = int(repetitions.Int64)
		c.Lapses = int(lapses.Int64)
		c.LearningStep = int(step.Int64)
		c.IsLeech = isLeech.Bool
		c.IsSuspended = isSuspended.Bool
		c.IsBuried = isBuried.Bool
		states[c.ID] = c
	}
	return states, rows.Err()
}

func (s *SQLiteStore) UpsertCardState(ctx context.Context, learnerID, deckID string, c card.Card) error {
	stateText, err := c.State.MarshalText()
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO card_states (
			learner_id, deck_id, card_id, state, interval, ease, due,
			last_reviewed, repetitions, lapses, learning_step,
			is_leech, is_suspended, is_buried
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (learner_id, deck_id, card_id) DO UPDATE SET
			state = excluded.state,
			interval = excluded.interval,
			ease = excluded.ease,
			due = excluded.due,
			last_reviewed = excluded.last_reviewed,
			repetitions = excluded.repetitions,
			lapses = excluded.lapses,
			learning_step = excluded.learning_step,
			is_leech = excluded.is_leech,
			is_suspended = excluded.is_suspended,
			is_buried = excluded.is_buried
	`, learnerID, deckID, c.ID, string(stateText), c.Interval, c.Ease,
		millis(c.Due), millis(c.LastReviewed), c.Repetitions, c.Lapses,
		c.LearningStep, c.IsLeech, c.IsSuspended, c.IsBuried)
	return err
}

// ============================================================================
// Settings
// ============================================================================

func (s *SQLiteStore) GetSettings(ctx context.Context, learnerID, deckID string) (scheduler.Settings, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		"SELECT settings FROM deck_settings WHERE learner_id = ? AND deck_id = ?",
		learnerID, deckID,
	).Scan(&raw)
	if err == sql.ErrNoRows {
		return scheduler.Settings{}, ErrNotFound
	}
	if err != nil {
		return scheduler.Settings{}, err
	}

	var settings scheduler.Settings
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		return scheduler.Settings{}, fmt.Errorf("settings for %s/%s: %w", learnerID, deckID, err)
	}
	return settings, nil
}

func (s *SQLiteStore) SaveSettings(ctx context.Context, learnerID, deckID string, settings scheduler.Settings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO deck_settings (learner_id, deck_id, settings) VALUES (?, ?, ?)
		ON CONFLICT (learner_id, deck_id) DO UPDATE SET settings = excluded.settings
	`, learnerID, deckID, string(raw))
	return err
}

// ============================================================================
// Study sessions
// ============================================================================

func (s *SQLiteStore) SaveSession(ctx context.Context, sess *session.StudySession) error {
	queue, buried, history, err := encodeSessionColumns(sess)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO study_sessions (
			id, learner_id, deck_id, day_start,
			new_cards_studied, reviews_completed,
			learning_queue, buried_cards, review_history
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, sess.ID, sess.LearnerID, sess.DeckID, millis(sess.DayStart),
		sess.NewCardsStudied, sess.ReviewsCompleted, queue, buried, history)
	return err
}

func (s *SQLiteStore) GetSession(ctx context.Context, id string) (*session.StudySession, error) {
	var (
		sess                  session.StudySession
		dayStart              int64
		queue, buried, histry string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, learner_id, deck_id, day_start,
		       new_cards_studied, reviews_completed,
		       learning_queue, buried_cards, review_history
		FROM study_sessions WHERE id = ?
	`, id).Scan(&sess.ID, &sess.LearnerID, &sess.DeckID, &dayStart,
		&sess.NewCardsStudied, &sess.ReviewsCompleted, &queue, &buried, &histry)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	sess.DayStart = fromMillis(dayStart)
	if err := json.Unmarshal([]byte(queue), &sess.LearningQueue); err != nil {
		return nil, err
	}
	var buriedIDs []string
	if err := json.Unmarshal([]byte(buried), &buriedIDs); err != nil {
		return nil, err
	}
	sess.BuriedCards = make(map[string]bool, len(buriedIDs))
	for _, cid := range buriedIDs {
		sess.BuriedCards[cid] = true
	}
	if err := json.Unmarshal([]byte(histry), &sess.ReviewHistory); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *SQLiteStore) UpdateSession(ctx context.Context, sess *session.StudySession) error {
	queue, buried, history, err := encodeSessionColumns(sess)
	if err != nil {
		return err
	}
	result, err := s.db.ExecContext(ctx, `
		UPDATE study_sessions SET
			day_start = ?, new_cards_studied = ?, reviews_completed = ?,
			learning_queue = ?, buried_cards = ?, review_history = ?
		WHERE id = ?
	`, millis(sess.DayStart), sess.NewCardsStudied, sess.ReviewsCompleted,
		queue, buried, history, sess.ID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func encodeSessionColumns(sess *session.StudySession) (queue, buried, history string, err error) {
	q, err := json.Marshal(sess.LearningQueue)
	if err != nil {
		return "", "", "", err
	}
	buriedIDs := make([]string, 0, len(sess.BuriedCards))
	for id := range sess.BuriedCards {
		buriedIDs = append(buriedIDs, id)
	}
	b, err := json.Marshal(buriedIDs)
	if err != nil {
		return "", "", "", err
	}
	h, err := json.Marshal(sess.ReviewHistory)
	if err != nil {
		return "", "", "", err
	}
	return string(q), string(b), string(h), nil
}
