package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/cardloop/backend/internal/domain/card"
	"github.com/cardloop/backend/internal/id"
)

// ── Request / Response types ────────────────────────────────────────────────

type AddCardRequest struct {
	Front  string `json:"front" example:"el perro"`
	Back   string `json:"back" example:"the dog"`
	NoteID string `json:"note_id,omitempty" example:"n1a2b3c4d5e6f7g8"`
}

func (r *AddCardRequest) Validate() error {
	if r.Front == "" {
		return errors.New("front is required")
	}
	return nil
}

type CardResponse struct {
	ID     string `json:"id" example:"q1w2e3r4t5y6u7i8"`
	NoteID string `json:"note_id,omitempty" example:"n1a2b3c4d5e6f7g8"`
	Front  string `json:"front" example:"el perro"`
	Back   string `json:"back" example:"the dog"`
}

// CardStateResponse is the full per-learner scheduling state of a card.
type CardStateResponse struct {
	ID           string  `json:"id" example:"q1w2e3r4t5y6u7i8"`
	NoteID       string  `json:"note_id,omitempty"`
	State        string  `json:"state" example:"Review"`
	Interval     float64 `json:"interval" example:"12"`
	Ease         float64 `json:"ease" example:"2.5"`
	Due          int64   `json:"due" example:"1756054800000"`
	LastReviewed int64   `json:"last_reviewed" example:"1755018000000"`
	Repetitions  int     `json:"repetitions" example:"3"`
	Lapses       int     `json:"lapses" example:"1"`
	LearningStep int     `json:"learning_step" example:"0"`
	IsLeech      bool    `json:"is_leech" example:"false"`
	IsSuspended  bool    `json:"is_suspended" example:"false"`
	IsBuried     bool    `json:"is_buried" example:"false"`
}

func cardStateResponse(c card.Card) CardStateResponse {
	toMillis := func(t time.Time) int64 {
		if t.IsZero() {
			return 0
		}
		return t.UnixMilli()
	}
	return CardStateResponse{
		ID:           c.ID,
		NoteID:       c.NoteID,
		State:        c.State.String(),
		Interval:     c.Interval,
		Ease:         c.Ease,
		Due:          toMillis(c.Due),
		LastReviewed: toMillis(c.LastReviewed),
		Repetitions:  c.Repetitions,
		Lapses:       c.Lapses,
		LearningStep: c.LearningStep,
		IsLeech:      c.IsLeech,
		IsSuspended:  c.IsSuspended,
		IsBuried:     c.IsBuried,
	}
}

// CardOpRequest names the learner whose scheduling state the operation
// applies to.
type CardOpRequest struct {
	LearnerID string `json:"learner_id" example:"l1e2a3r4n5e6r7i8"`
}

func (r *CardOpRequest) Validate() error {
	if r.LearnerID == "" {
		return errors.New("learner_id is required")
	}
	return nil
}

// ── Handlers ────────────────────────────────────────────────────────────────

// addCard adds a card to a deck.
// @Summary      Add a card
// @Tags         Cards
// @Accept       json
// @Produce      json
// @Param        deckID  path      string          true  "Deck ID"
// @Param        body    body      AddCardRequest  true  "Card to add"
// @Success      201     {object}  CardResponse
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Failure      500     {object}  map[string]string
// @Router       /decks/{deckID}/cards [post]
func (h *Handler) addCard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	deckID := r.PathValue("deckID")

	_, err := h.store.GetDeck(ctx, deckID)
	if h.handleStoreError(w, err, "deck") {
		return
	}

	var req AddCardRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	c := card.New(id.GenerateID(), time.Now())
	c.NoteID = req.NoteID
	c.Front = req.Front
	c.Back = req.Back

	if err := h.store.AddCard(ctx, deckID, c); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to save card")
		return
	}

	respondJSON(w, http.StatusCreated, CardResponse{
		ID:     c.ID,
		NoteID: c.NoteID,
		Front:  c.Front,
		Back:   c.Back,
	})
}

// listCards lists the cards of a deck.
// @Summary      List cards
// @Tags         Cards
// @Produce      json
// @Param        deckID  path      string  true  "Deck ID"
// @Success      200     {array}   CardResponse
// @Failure      404     {object}  map[string]string
// @Failure      500     {object}  map[string]string
// @Router       /decks/{deckID}/cards [get]
func (h *Handler) listCards(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	deckID := r.PathValue("deckID")

	_, err := h.store.GetDeck(ctx, deckID)
	if h.handleStoreError(w, err, "deck") {
		return
	}

	cards, err := h.store.ListCards(ctx, deckID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load cards")
		return
	}

	response := make([]CardResponse, len(cards))
	for i, c := range cards {
		response[i] = CardResponse{
			ID:     c.ID,
			NoteID: c.NoteID,
			Front:  c.Front,
			Back:   c.Back,
		}
	}
	respondJSON(w, http.StatusOK, response)
}

// deleteCard removes a card and its scheduling state.
// @Summary      Delete a card
// @Tags         Cards
// @Param        deckID  path  string  true  "Deck ID"
// @Param        cardID  path  string  true  "Card ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /decks/{deckID}/cards/{cardID} [delete]
func (h *Handler) deleteCard(w http.ResponseWriter, r *http.Request) {
	deckID := r.PathValue("deckID")
	cardID := r.PathValue("cardID")

	err := h.store.DeleteCard(r.Context(), deckID, cardID)
	if h.handleStoreError(w, err, "card") {
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// suspendCard suspends a card for a learner.
// @Summary      Suspend a card
// @Tags         Cards
// @Accept       json
// @Produce      json
// @Param        deckID  path      string         true  "Deck ID"
// @Param        cardID  path      string         true  "Card ID"
// @Param        body    body      CardOpRequest  true  "Learner"
// @Success      200     {object}  CardStateResponse
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /decks/{deckID}/cards/{cardID}/suspend [post]
func (h *Handler) suspendCard(w http.ResponseWriter, r *http.Request) {
	h.applyCardOp(w, r, card.Card.Suspend)
}

// unsuspendCard clears a card's suspended flag for a learner.
// @Summary      Unsuspend a card
// @Tags         Cards
// @Accept       json
// @Produce      json
// @Param        deckID  path      string         true  "Deck ID"
// @Param        cardID  path      string         true  "Card ID"
// @Param        body    body      CardOpRequest  true  "Learner"
// @Success      200     {object}  CardStateResponse
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /decks/{deckID}/cards/{cardID}/unsuspend [post]
func (h *Handler) unsuspendCard(w http.ResponseWriter, r *http.Request) {
	h.applyCardOp(w, r, card.Card.Unsuspend)
}

// buryCard buries a card for a learner until the next day boundary.
// @Summary      Bury a card
// @Tags         Cards
// @Accept       json
// @Produce      json
// @Param        deckID  path      string         true  "Deck ID"
// @Param        cardID  path      string         true  "Card ID"
// @Param        body    body      CardOpRequest  true  "Learner"
// @Success      200     {object}  CardStateResponse
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /decks/{deckID}/cards/{cardID}/bury [post]
func (h *Handler) buryCard(w http.ResponseWriter, r *http.Request) {
	h.applyCardOp(w, r, card.Card.Bury)
}

// unburyCard clears a card's buried flag for a learner.
// @Summary      Unbury a card
// @Tags         Cards
// @Accept       json
// @Produce      json
// @Param        deckID  path      string         true  "Deck ID"
// @Param        cardID  path      string         true  "Card ID"
// @Param        body    body      CardOpRequest  true  "Learner"
// @Success      200     {object}  CardStateResponse
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /decks/{deckID}/cards/{cardID}/unbury [post]
func (h *Handler) unburyCard(w http.ResponseWriter, r *http.Request) {
	h.applyCardOp(w, r, card.Card.Unbury)
}

// resetCard drops all scheduling progress, returning the card to New.
// @Summary      Reset a card
// @Tags         Cards
// @Accept       json
// @Produce      json
// @Param        deckID  path      string         true  "Deck ID"
// @Param        cardID  path      string         true  "Card ID"
// @Param        body    body      CardOpRequest  true  "Learner"
// @Success      200     {object}  CardStateResponse
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /decks/{deckID}/cards/{cardID}/reset [post]
func (h *Handler) resetCard(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	h.applyCardOp(w, r, func(c card.Card) card.Card {
		return c.Reset(now)
	})
}

// applyCardOp loads a card's scheduling state for the learner, applies the
// operation and persists the result.
func (h *Handler) applyCardOp(w http.ResponseWriter, r *http.Request, op func(card.Card) card.Card) {
	ctx := r.Context()
	deckID := r.PathValue("deckID")
	cardID := r.PathValue("cardID")

	var req CardOpRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	states, err := h.store.LoadCardStates(ctx, req.LearnerID, deckID, time.Now())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load card states")
		return
	}

	c, ok := states[cardID]
	if !ok {
		respondError(w, http.StatusNotFound, "card not found")
		return
	}

	updated := op(c)
	if err := h.store.UpsertCardState(ctx, req.LearnerID, deckID, updated); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to save card state")
		return
	}

	respondJSON(w, http.StatusOK, cardStateResponse(updated))
}
