package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Client-side views of the api payloads.

type CharacterStatus struct {
	HP       int `json:"hp"`
	MaxHP    int `json:"max_hp"`
	Level    int `json:"level"`
	XP       int `json:"xp"`
	XPNeeded int `json:"xp_needed"`
}

type StateResponse struct {
	CharacterStatus        CharacterStatus `json:"character_status"`
	Inventory              []string        `json:"inventory"`
	ActiveQuests           []string        `json:"active_quests"`
	LocationName           string          `json:"location_name"`
	DiscoveredActions      []string        `json:"discovered_actions"`
	TotalActions           int             `json:"total_actions"`
	DiscoveredNarrateVerbs []string        `json:"discovered_narrate_verbs"`
	Error                  string          `json:"error,omitempty"`
}

type TurnResponse struct {
	Reply string `json:"reply"`
	StateResponse
}

type TurnRequest struct {
	CharacterID string `json:"character_id"`
	Input       string `json:"input"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func testConnection(client *http.Client, baseURL string) bool {
	resp, err := client.Get(baseURL + "/health")
	if err != nil {
		return false
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()
	return resp.StatusCode == http.StatusOK
}

func getState(client *http.Client, baseURL string, characterID string) (*StateResponse, error) {
	resp, err := client.Get(baseURL + "/v1/state?character_id=" + url.QueryEscape(characterID))
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp ErrorResponse
		if err := json.Unmarshal(body, &errorResp); err != nil || errorResp.Error == "" {
			return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
		}
		return nil, fmt.Errorf("failed to get game state: %s", errorResp.Error)
	}

	var state StateResponse
	if err := json.Unmarshal(body, &state); err != nil {
		return nil, fmt.Errorf("failed to parse game state response: %w", err)
	}
	return &state, nil
}

func postTurn(client *http.Client, baseURL string, characterID, input string) (*TurnResponse, error) {
	jsonData, err := json.Marshal(TurnRequest{CharacterID: characterID, Input: input})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := client.Post(baseURL+"/v1/turn", "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp ErrorResponse
		if err := json.Unmarshal(body, &errorResp); err != nil || errorResp.Error == "" {
			return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
		}
		return nil, fmt.Errorf("turn request failed: %s", errorResp.Error)
	}

	var turn TurnResponse
	if err := json.Unmarshal(body, &turn); err != nil {
		return nil, fmt.Errorf("failed to parse turn response: %w", err)
	}
	return &turn, nil
}
