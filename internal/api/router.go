// internal/api/router.go
package api

import "net/http"

// RegisterRoutes wires every handler onto the mux using Go 1.22 method
// patterns.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Decks
	mux.HandleFunc("POST /decks", h.createDeck)
	mux.HandleFunc("GET /decks", h.listDecks)
	mux.HandleFunc("GET /decks/{deckID}", h.getDeck)
	mux.HandleFunc("DELETE /decks/{deckID}", h.deleteDeck)

	// Cards
	mux.HandleFunc("POST /decks/{deckID}/cards", h.addCard)
	mux.HandleFunc("GET /decks/{deckID}/cards", h.listCards)
	mux.HandleFunc("DELETE /decks/{deckID}/cards/{cardID}", h.deleteCard)

	// Card operations (per-learner scheduling state)
	mux.HandleFunc("POST /decks/{deckID}/cards/{cardID}/suspend", h.suspendCard)
	mux.HandleFunc("POST /decks/{deckID}/cards/{cardID}/unsuspend", h.unsuspendCard)
	mux.HandleFunc("POST /decks/{deckID}/cards/{cardID}/bury", h.buryCard)
	mux.HandleFunc("POST /decks/{deckID}/cards/{cardID}/unbury", h.unburyCard)
	mux.HandleFunc("POST /decks/{deckID}/cards/{cardID}/reset", h.resetCard)

	// Scheduling settings
	mux.HandleFunc("GET /decks/{deckID}/settings", h.getSettings)
	mux.HandleFunc("PUT /decks/{deckID}/settings", h.updateSettings)

	// Study flow
	mux.HandleFunc("POST /sessions", h.startSession)
	mux.HandleFunc("GET /sessions/{sessionID}", h.getSession)
	mux.HandleFunc("GET /sessions/{sessionID}/next", h.nextCard)
	mux.HandleFunc("POST /sessions/{sessionID}/reviews", h.submitReview)
	mux.HandleFunc("POST /sessions/{sessionID}/undo", h.undoReview)
}
