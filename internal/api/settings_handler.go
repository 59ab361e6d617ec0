package api

import (
	"errors"
	"net/http"

	"github.com/cardloop/backend/internal/domain/scheduler"
)

// ── Request / Response types ────────────────────────────────────────────────

type UpdateSettingsRequest struct {
	LearnerID string             `json:"learner_id" example:"l1e2a3r4n5e6r7i8"`
	Settings  scheduler.Settings `json:"settings"`
}

func (r *UpdateSettingsRequest) Validate() error {
	if r.LearnerID == "" {
		return errors.New("learner_id is required")
	}
	return nil
}

// SettingsResponse carries the sanitized settings actually in effect plus any
// repairs the validator made to the stored values.
type SettingsResponse struct {
	Settings scheduler.Settings  `json:"settings"`
	Warnings []scheduler.Warning `json:"warnings,omitempty"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getSettings returns the effective scheduling settings for a learner and deck.
// @Summary      Get scheduling settings
// @Description  Returns the sanitized settings in effect. Out-of-range stored values are reported as warnings.
// @Tags         Settings
// @Produce      json
// @Param        deckID      path      string  true  "Deck ID"
// @Param        learner_id  query     string  true  "Learner ID"
// @Success      200         {object}  SettingsResponse
// @Failure      400         {object}  map[string]string
// @Failure      404         {object}  map[string]string
// @Failure      500         {object}  map[string]string
// @Router       /decks/{deckID}/settings [get]
func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	deckID := r.PathValue("deckID")
	learnerID := r.URL.Query().Get("learner_id")
	if learnerID == "" {
		respondError(w, http.StatusBadRequest, "learner_id is required")
		return
	}

	if _, err := h.store.GetDeck(ctx, deckID); h.handleStoreError(w, err, "deck") {
		return
	}

	settings, warnings, err := h.study.Settings(ctx, learnerID, deckID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load settings")
		return
	}

	respondJSON(w, http.StatusOK, SettingsResponse{Settings: settings, Warnings: warnings})
}

// updateSettings stores scheduling settings for a learner and deck.
// @Summary      Update scheduling settings
// @Description  Stores the settings as supplied and responds with the sanitized form the scheduler will actually use.
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Param        deckID  path      string                 true  "Deck ID"
// @Param        body    body      UpdateSettingsRequest  true  "Settings to store"
// @Success      200     {object}  SettingsResponse
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Failure      500     {object}  map[string]string
// @Router       /decks/{deckID}/settings [put]
func (h *Handler) updateSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	deckID := r.PathValue("deckID")

	var req UpdateSettingsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if _, err := h.store.GetDeck(ctx, deckID); h.handleStoreError(w, err, "deck") {
		return
	}

	// Stored raw; the validator repairs on every read so stale stored values
	// can never reach the scheduler.
	if err := h.store.SaveSettings(ctx, req.LearnerID, deckID, req.Settings); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to save settings")
		return
	}

	sanitized, warnings := scheduler.Validate(req.Settings)
	respondJSON(w, http.StatusOK, SettingsResponse{Settings: sanitized, Warnings: warnings})
}
