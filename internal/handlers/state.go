package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jmorrisey/warren/internal/session"
)

// StateHandler serves the current game state snapshot for a character.
type StateHandler struct {
	sessions *session.Manager
	logger   *slog.Logger
}

func NewStateHandler(sessions *session.Manager, logger *slog.Logger) *StateHandler {
	return &StateHandler{
		sessions: sessions,
		logger:   logger,
	}
}

func (h *StateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		writeJSON(w, h.logger, StateResponse{Error: "Method not allowed. Only GET is supported."})
		return
	}

	characterID := r.URL.Query().Get("character_id")
	if characterID == "" {
		w.WriteHeader(http.StatusBadRequest)
		writeJSON(w, h.logger, StateResponse{Error: "Missing 'character_id' query parameter."})
		return
	}

	ps, err := h.sessions.Get(r.Context(), characterID)
	if err != nil {
		h.logger.Error("Failed to get session", "character_id", characterID, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		writeJSON(w, h.logger, StateResponse{Error: "Game state not available."})
		return
	}

	ps.Lock()
	defer ps.Unlock()

	sess := ps.Session
	response := StateResponse{
		CharacterStatus:        characterStatus(sess.Character()),
		Inventory:              sess.Character().Inventory,
		ActiveQuests:           sess.ActiveQuestNames(),
		LocationName:           sess.CurrentLocation().Name,
		DiscoveredActions:      sess.DiscoveredActions(),
		TotalActions:           sess.TotalActions(),
		DiscoveredNarrateVerbs: sess.DiscoveredNarrateVerbs(),
	}

	w.WriteHeader(http.StatusOK)
	writeJSON(w, h.logger, response)
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, v any) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Error encoding response", "error", err)
	}
}
