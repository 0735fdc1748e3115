package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmorrisey/warren/internal/services"
	"github.com/jmorrisey/warren/internal/session"
	"github.com/jmorrisey/warren/internal/storage"
	"github.com/jmorrisey/warren/pkg/chat"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

func newTurnHandler(store *storage.MockStorage, llm *services.MockLLMAPI) *TurnHandler {
	logger := testLogger()
	return NewTurnHandler(session.NewManager(store, logger), llm, logger)
}

func postTurn(t *testing.T, handler http.Handler, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/turn", &buf)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func decodeTurn(t *testing.T, w *httptest.ResponseRecorder) TurnResponse {
	t.Helper()
	var resp TurnResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func TestTurnHandler_MethodNotAllowed(t *testing.T) {
	handler := newTurnHandler(storage.NewMockStorage(), services.NewMockLLMAPI())

	req := httptest.NewRequest(http.MethodGet, "/v1/turn", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Contains(t, decodeTurn(t, w).Error, "Only POST")
}

func TestTurnHandler_InvalidBody(t *testing.T) {
	handler := newTurnHandler(storage.NewMockStorage(), services.NewMockLLMAPI())

	w := postTurn(t, handler, "not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTurnHandler_MissingCharacterID(t *testing.T) {
	handler := newTurnHandler(storage.NewMockStorage(), services.NewMockLLMAPI())

	w := postTurn(t, handler, chat.TurnRequest{Input: "look"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeTurn(t, w).Error, "character_id")
}

func TestTurnHandler_NewGameTurn(t *testing.T) {
	store := storage.NewMockStorage()
	llm := services.NewMockLLMAPI()
	handler := newTurnHandler(store, llm)

	w := postTurn(t, handler, chat.TurnRequest{CharacterID: "hero-1", Input: "look"})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeTurn(t, w)
	assert.Contains(t, resp.Reply, "Current Location: Cave Entrance")
	assert.Equal(t, 20, resp.CharacterStatus.HP)
	assert.Equal(t, 1, resp.CharacterStatus.Level)
	assert.Equal(t, 100, resp.CharacterStatus.XPNeeded)
	assert.Equal(t, "Cave Entrance", resp.LocationName)
	assert.Equal(t, []string{"look"}, resp.DiscoveredActions)
	assert.Equal(t, 11, resp.TotalActions)

	// First use of a canonical verb narrates the discovery.
	require.Len(t, llm.GenerateResponseCalls, 1)
	messages := llm.GenerateResponseCalls[0].Messages
	require.NotEmpty(t, messages)
	assert.Contains(t, messages[0].Content, "NEW ACTION DISCOVERED!")
	assert.Contains(t, resp.Reply, "Mock narration")

	// The turn was persisted.
	saved, err := store.LoadCharacterState(context.Background(), "hero-1")
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, []string{"look"}, saved.DiscoveredActions)
}

func TestTurnHandler_NoNarrationForRepeatedVerb(t *testing.T) {
	llm := services.NewMockLLMAPI()
	handler := newTurnHandler(storage.NewMockStorage(), llm)

	postTurn(t, handler, chat.TurnRequest{CharacterID: "hero-1", Input: "inventory"})
	w := postTurn(t, handler, chat.TurnRequest{CharacterID: "hero-1", Input: "inventory"})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeTurn(t, w)
	assert.Equal(t, "Your inventory is empty.", resp.Reply)
	// Discovery narration fired only on the first turn.
	assert.Len(t, llm.GenerateResponseCalls, 1)
}

func TestTurnHandler_LLMFailureDegradesToMechanics(t *testing.T) {
	llm := services.NewMockLLMAPI()
	llm.SetGenerateResponseError(errors.New("llm down"))
	handler := newTurnHandler(storage.NewMockStorage(), llm)

	w := postTurn(t, handler, chat.TurnRequest{CharacterID: "hero-1", Input: "xyzzy"})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeTurn(t, w)
	assert.Equal(t, "You attempt to xyzzy...", resp.Reply)
	assert.Equal(t, []string{"xyzzy"}, resp.DiscoveredNarrateVerbs)
}

func TestTurnHandler_StatePersistsAcrossSessions(t *testing.T) {
	store := storage.NewMockStorage()
	logger := testLogger()
	llm := services.NewMockLLMAPI()

	handler := NewTurnHandler(session.NewManager(store, logger), llm, logger)
	w := postTurn(t, handler, chat.TurnRequest{CharacterID: "hero-1", Input: "get pickaxe"})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeTurn(t, w)
	assert.Contains(t, resp.Reply, "You take the pickaxe.")
	assert.Contains(t, resp.Reply, "Quest Completed: Retrieve the Tool! (+25 XP)")
	assert.Equal(t, 25, resp.CharacterStatus.XP)

	// A fresh manager simulates an api restart over the same storage.
	restarted := NewTurnHandler(session.NewManager(store, logger), llm, logger)
	w = postTurn(t, restarted, chat.TurnRequest{CharacterID: "hero-1", Input: "look"})
	require.Equal(t, http.StatusOK, w.Code)
	resp = decodeTurn(t, w)

	assert.Equal(t, []string{"pickaxe"}, resp.Inventory)
	assert.Equal(t, 25, resp.CharacterStatus.XP)
	// The pickaxe pickup replayed from the modification log.
	assert.NotContains(t, resp.Reply, "a rusty pickaxe leaning against the wall")
	assert.NotContains(t, resp.ActiveQuests, "Retrieve the Tool")
}

func TestTurnHandler_EmptyInput(t *testing.T) {
	handler := newTurnHandler(storage.NewMockStorage(), services.NewMockLLMAPI())

	w := postTurn(t, handler, chat.TurnRequest{CharacterID: "hero-1", Input: ""})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Please enter a command.", decodeTurn(t, w).Reply)
}

func TestTurnHandler_DiscoveryReplyShape(t *testing.T) {
	llm := services.NewMockLLMAPI()
	llm.GenerateResponseFunc = func(ctx context.Context, messages []chat.ChatMessage) (*chat.ChatResponse, error) {
		for _, m := range messages {
			if strings.Contains(m.Content, "Discovered command: attack") {
				return &chat.ChatResponse{Message: "A warrior is born!"}, nil
			}
		}
		return &chat.ChatResponse{Message: "Mock narration"}, nil
	}
	handler := newTurnHandler(storage.NewMockStorage(), llm)

	w := postTurn(t, handler, chat.TurnRequest{CharacterID: "hero-1", Input: "attack shadows"})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeTurn(t, w)
	// The mechanical miss message still leads the reply.
	assert.Contains(t, resp.Reply, "You don't see 'shadows' here to attack.")
	assert.Contains(t, resp.Reply, "A warrior is born!")
	assert.Equal(t, []string{"attack"}, resp.DiscoveredActions)
}
