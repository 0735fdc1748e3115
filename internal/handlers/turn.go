package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jmorrisey/warren/internal/services"
	"github.com/jmorrisey/warren/internal/session"
	"github.com/jmorrisey/warren/pkg/chat"
	"github.com/jmorrisey/warren/pkg/game"
	"github.com/jmorrisey/warren/pkg/narrator"
)

const llmTimeout = 30 * time.Second

// TurnHandler runs one player turn: game mechanics first, then LLM narration
// of the mechanical outcome, then persistence.
type TurnHandler struct {
	sessions   *session.Manager
	llmService services.LLMService
	logger     *slog.Logger
}

func NewTurnHandler(sessions *session.Manager, llmService services.LLMService, logger *slog.Logger) *TurnHandler {
	return &TurnHandler{
		sessions:   sessions,
		llmService: llmService,
		logger:     logger,
	}
}

func (h *TurnHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		h.logger.Warn("Method not allowed for turn endpoint",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr)
		w.WriteHeader(http.StatusMethodNotAllowed)
		writeJSON(w, h.logger, TurnResponse{Error: "Method not allowed. Only POST is supported."})
		return
	}

	var request chat.TurnRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.logger.Warn("Invalid request body", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		writeJSON(w, h.logger, TurnResponse{Error: "Invalid request body. Expected JSON with 'character_id' and 'input' fields."})
		return
	}
	if err := request.Validate(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		writeJSON(w, h.logger, TurnResponse{Error: err.Error()})
		return
	}

	ps, err := h.sessions.Get(r.Context(), request.CharacterID)
	if err != nil {
		h.logger.Error("Failed to get session", "character_id", request.CharacterID, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		writeJSON(w, h.logger, TurnResponse{Error: "Game state not available."})
		return
	}

	ps.Lock()
	defer ps.Unlock()

	sess := ps.Session
	result := sess.ProcessTurn(request.Input)

	h.logger.Info("Turn processed",
		"character_id", request.CharacterID,
		"input", request.Input,
		"newly_discovered", result.NewlyDiscovered)

	reply := result.Message
	if narration := h.narrate(r.Context(), sess, result, request.Input); narration != "" {
		reply = reply + "\n\n" + narration
	}

	// Persistence failures are logged, not surfaced; the turn already
	// happened and the player should see its result.
	if err := h.sessions.SaveState(r.Context(), ps); err != nil {
		h.logger.Error("Failed to save state", "character_id", request.CharacterID, "error", err)
	}

	response := TurnResponse{
		Reply:                  reply,
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

// narrate calls the LLM for turns that produced a narratable outcome. A
// newly discovered canonical verb overrides the handler's outcome with a
// congratulation request. LLM failures degrade to mechanics-only replies.
func (h *TurnHandler) narrate(ctx context.Context, sess *game.Session, result game.TurnResult, playerInput string) string {
	outcome := result.Narration
	if result.NewlyDiscovered && result.DiscoveredVerb != "" {
		outcome = &game.NarrationRequest{
			Action:         game.ActionDiscovery,
			DiscoveredVerb: result.DiscoveredVerb,
			Success:        true,
			Message: fmt.Sprintf("NEW ACTION DISCOVERED! Congratulate the player on discovering how to use the '%s' command. "+
				"Briefly explain its general purpose (e.g., 'look' is for observing surroundings, 'get' is for picking things up, 'attack' is for combat).",
				result.DiscoveredVerb),
		}
	}
	if outcome == nil {
		return ""
	}

	character := sess.Character()
	location := sess.CurrentLocation()
	state := &narrator.State{
		CharacterName:       character.Name,
		HP:                  character.HP,
		MaxHP:               character.MaxHP,
		Level:               character.Level,
		XP:                  character.XP,
		Inventory:           character.Inventory,
		Skills:              character.Skills,
		ActiveQuests:        sess.ActiveQuestNames(),
		LocationID:          location.ID,
		LocationName:        location.Name,
		LocationDescription: location.Description,
	}

	messages, err := narrator.BuildMessages(state, outcome, playerInput)
	if err != nil {
		h.logger.Error("Failed to build narration prompt", "error", err)
		return ""
	}

	llmCtx, cancel := context.WithTimeout(ctx, llmTimeout)
	defer cancel()

	response, err := h.llmService.GenerateResponse(llmCtx, messages)
	if err != nil {
		h.logger.Error("Error generating narration", "error", err)
		return ""
	}
	return response.Message
}
