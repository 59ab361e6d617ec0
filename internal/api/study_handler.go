package api

import (
	"errors"
	"net/http"

	"github.com/cardloop/backend/internal/domain/card"
	"github.com/cardloop/backend/internal/domain/session"
	"github.com/cardloop/backend/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type StartSessionRequest struct {
	LearnerID string `json:"learner_id" example:"l1e2a3r4n5e6r7i8"`
	DeckID    string `json:"deck_id" example:"x9y8z7w6v5u4t3s2"`
}

func (r *StartSessionRequest) Validate() error {
	if r.LearnerID == "" {
		return errors.New("learner_id is required")
	}
	if r.DeckID == "" {
		return errors.New("deck_id is required")
	}
	return nil
}

type SessionResponse struct {
	ID               string `json:"id" example:"s1e2s3s4i5o6n7i8"`
	LearnerID        string `json:"learner_id"`
	DeckID           string `json:"deck_id"`
	DayStart         int64  `json:"day_start" example:"1756000800000"`
	NewCardsStudied  int    `json:"new_cards_studied" example:"5"`
	ReviewsCompleted int    `json:"reviews_completed" example:"37"`
	LearningCount    int    `json:"learning_count" example:"2"`
	HistoryDepth     int    `json:"history_depth" example:"12"`
}

func sessionResponse(s *session.StudySession) SessionResponse {
	return SessionResponse{
		ID:               s.ID,
		LearnerID:        s.LearnerID,
		DeckID:           s.DeckID,
		DayStart:         s.DayStart.UnixMilli(),
		NewCardsStudied:  s.NewCardsStudied,
		ReviewsCompleted: s.ReviewsCompleted,
		LearningCount:    len(s.LearningQueue),
		HistoryDepth:     len(s.ReviewHistory),
	}
}

// NextCardResponse is empty except for has_next=false when the session has
// nothing left to show today.
type NextCardResponse struct {
	HasNext bool               `json:"has_next"`
	Card    *CardStateResponse `json:"card,omitempty"`
	Front   string             `json:"front,omitempty"`
	Back    string             `json:"back,omitempty"`
}

func nextCardResponse(res *service.NextCardResult) NextCardResponse {
	if !res.HasNext {
		return NextCardResponse{}
	}
	state := cardStateResponse(res.Card)
	return NextCardResponse{
		HasNext: true,
		Card:    &state,
		Front:   res.Card.Front,
		Back:    res.Card.Back,
	}
}

type SubmitReviewRequest struct {
	CardID string      `json:"card_id" example:"q1w2e3r4t5y6u7i8"`
	Rating card.Rating `json:"rating" example:"2"`
}

func (r *SubmitReviewRequest) Validate() error {
	if r.CardID == "" {
		return errors.New("card_id is required")
	}
	if !r.Rating.IsValid() {
		return errors.New("rating must be one of Again, Hard, Good, Easy")
	}
	return nil
}

type ReviewResponse struct {
	Card       CardStateResponse `json:"card"`
	Session    SessionResponse   `json:"session"`
	NextCardID string            `json:"next_card_id,omitempty"`
	HasNext    bool              `json:"has_next"`
	Warning    string            `json:"warning,omitempty"`
}

type UndoResponse struct {
	CardID  string            `json:"card_id"`
	Card    CardStateResponse `json:"card"`
	Session SessionResponse   `json:"session"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// startSession opens a study session.
// @Summary      Start a study session
// @Description  Opens a session for a learner over a deck, anchored at the deck-local midnight of the current day.
// @Tags         Study
// @Accept       json
// @Produce      json
// @Param        body  body      StartSessionRequest  true  "Learner and deck"
// @Success      201   {object}  SessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /sessions [post]
func (h *Handler) startSession(w http.ResponseWriter, r *http.Request) {
	var req StartSessionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	sess, err := h.study.StartSession(r.Context(), req.LearnerID, req.DeckID)
	if h.handleStoreError(w, err, "deck") {
		return
	}

	respondJSON(w, http.StatusCreated, sessionResponse(sess))
}

// getSession returns the current session counters.
// @Summary      Get a session
// @Tags         Study
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  SessionResponse
// @Failure      404        {object}  map[string]string
// @Failure      500        {object}  map[string]string
// @Router       /sessions/{sessionID} [get]
func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.store.GetSession(r.Context(), r.PathValue("sessionID"))
	if h.handleStoreError(w, err, "session") {
		return
	}

	respondJSON(w, http.StatusOK, sessionResponse(sess))
}

// nextCard returns the card the learner should study next.
// @Summary      Next card
// @Description  Picks the next card by priority: due learning cards, then due reviews, then new cards. has_next=false means the session is done for today.
// @Tags         Study
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  NextCardResponse
// @Failure      404        {object}  map[string]string
// @Failure      500        {object}  map[string]string
// @Router       /sessions/{sessionID}/next [get]
func (h *Handler) nextCard(w http.ResponseWriter, r *http.Request) {
	res, err := h.study.NextCard(r.Context(), r.PathValue("sessionID"))
	if h.handleStoreError(w, err, "session") {
		return
	}

	respondJSON(w, http.StatusOK, nextCardResponse(res))
}

// submitReview applies one rating to one card.
// @Summary      Submit a review
// @Description  Rates a card and returns its updated scheduling state. Rating a suspended or buried card changes nothing and sets a warning.
// @Tags         Study
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string               true  "Session ID"
// @Param        body       body      SubmitReviewRequest  true  "Card and rating"
// @Success      200        {object}  ReviewResponse
// @Failure      400        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Failure      500        {object}  map[string]string
// @Router       /sessions/{sessionID}/reviews [post]
func (h *Handler) submitReview(w http.ResponseWriter, r *http.Request) {
	var req SubmitReviewRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := h.study.SubmitReview(r.Context(), r.PathValue("sessionID"), req.CardID, req.Rating)
	if h.handleStoreError(w, err, "session or card") {
		return
	}

	respondJSON(w, http.StatusOK, ReviewResponse{
		Card:       cardStateResponse(res.Card),
		Session:    sessionResponse(res.Session),
		NextCardID: res.NextCardID,
		HasNext:    res.HasNext,
		Warning:    res.Warning,
	})
}

// undoReview reverses the most recent rating in the session.
// @Summary      Undo the last review
// @Description  Restores the reviewed card to its exact prior scheduling state and decrements the matching daily counter.
// @Tags         Study
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  UndoResponse
// @Failure      404        {object}  map[string]string
// @Failure      409        {object}  map[string]string
// @Failure      500        {object}  map[string]string
// @Router       /sessions/{sessionID}/undo [post]
func (h *Handler) undoReview(w http.ResponseWriter, r *http.Request) {
	res, err := h.study.Undo(r.Context(), r.PathValue("sessionID"))
	if errors.Is(err, service.ErrNothingToUndo) {
		respondError(w, http.StatusConflict, "nothing to undo")
		return
	}
	if h.handleStoreError(w, err, "session") {
		return
	}

	respondJSON(w, http.StatusOK, UndoResponse{
		CardID:  res.CardID,
		Card:    cardStateResponse(res.Card),
		Session: sessionResponse(res.Session),
	})
}
