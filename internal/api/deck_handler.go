package api

import (
	"errors"
	"net/http"

	"github.com/cardloop/backend/internal/domain/deck"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateDeckRequest struct {
	Name     string `json:"name" example:"Spanish vocabulary"`
	Timezone string `json:"timezone,omitempty" example:"Europe/Madrid"`
}

func (r *CreateDeckRequest) Validate() error {
	if r.Name == "" {
		return errors.New("name is required")
	}
	return nil
}

type DeckResponse struct {
	ID       string `json:"id" example:"x9y8z7w6v5u4t3s2"`
	Name     string `json:"name" example:"Spanish vocabulary"`
	Timezone string `json:"timezone" example:"Europe/Madrid"`
}

type GetDeckResponse struct {
	ID        string         `json:"id" example:"x9y8z7w6v5u4t3s2"`
	Name      string         `json:"name" example:"Spanish vocabulary"`
	Timezone  string         `json:"timezone" example:"Europe/Madrid"`
	CardCount int            `json:"card_count" example:"42"`
	Cards     []CardResponse `json:"cards"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// createDeck creates a new deck.
// @Summary      Create a deck
// @Description  Create a new deck of cards. Timezone anchors the deck's day boundaries.
// @Tags         Decks
// @Accept       json
// @Produce      json
// @Param        body  body      CreateDeckRequest  true  "Deck to create"
// @Success      201   {object}  DeckResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /decks [post]
func (h *Handler) createDeck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req CreateDeckRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	tz := req.Timezone
	if tz == "" {
		tz = h.defaultTimezone
	}
	d := deck.NewWithTimezone(req.Name, tz)
	if err := h.store.SaveDeck(ctx, d); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to save deck")
		return
	}

	respondJSON(w, http.StatusCreated, DeckResponse{
		ID:       d.ID,
		Name:     d.Name,
		Timezone: d.Timezone,
	})
}

// listDecks lists all decks.
// @Summary      List decks
// @Tags         Decks
// @Produce      json
// @Success      200  {array}   DeckResponse
// @Failure      500  {object}  map[string]string
// @Router       /decks [get]
func (h *Handler) listDecks(w http.ResponseWriter, r *http.Request) {
	decks, err := h.store.ListDecks(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load decks")
		return
	}

	response := make([]DeckResponse, len(decks))
	for i, d := range decks {
		response[i] = DeckResponse{
			ID:       d.ID,
			Name:     d.Name,
			Timezone: d.Timezone,
		}
	}
	respondJSON(w, http.StatusOK, response)
}

// getDeck returns a deck with its cards.
// @Summary      Get a deck
// @Tags         Decks
// @Produce      json
// @Param        deckID  path      string  true  "Deck ID"
// @Success      200     {object}  GetDeckResponse
// @Failure      404     {object}  map[string]string
// @Failure      500     {object}  map[string]string
// @Router       /decks/{deckID} [get]
func (h *Handler) getDeck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	deckID := r.PathValue("deckID")

	d, err := h.store.GetDeck(ctx, deckID)
	if h.handleStoreError(w, err, "deck") {
		return
	}

	cards, err := h.store.ListCards(ctx, deckID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load cards")
		return
	}

	cardResponses := make([]CardResponse, len(cards))
	for i, c := range cards {
		cardResponses[i] = CardResponse{
			ID:     c.ID,
			NoteID: c.NoteID,
			Front:  c.Front,
			Back:   c.Back,
		}
	}

	respondJSON(w, http.StatusOK, GetDeckResponse{
		ID:        d.ID,
		Name:      d.Name,
		Timezone:  d.Timezone,
		CardCount: len(cards),
		Cards:     cardResponses,
	})
}

// deleteDeck deletes a deck and everything keyed to it.
// @Summary      Delete a deck
// @Tags         Decks
// @Param        deckID  path  string  true  "Deck ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /decks/{deckID} [delete]
func (h *Handler) deleteDeck(w http.ResponseWriter, r *http.Request) {
	deckID := r.PathValue("deckID")

	err := h.store.DeleteDeck(r.Context(), deckID)
	if h.handleStoreError(w, err, "deck") {
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
