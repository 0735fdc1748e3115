package handlers

import "github.com/jmorrisey/warren/pkg/game"

// CharacterStatus is the character sheet summary included in api responses.
type CharacterStatus struct {
	HP       int `json:"hp"`
	MaxHP    int `json:"max_hp"`
	Level    int `json:"level"`
	XP       int `json:"xp"`
	XPNeeded int `json:"xp_needed"`
}

// StateResponse is the GET /v1/state payload.
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

// TurnResponse is the POST /v1/turn payload: the combined reply plus the
// same state snapshot the client uses to refresh its panels.
type TurnResponse struct {
	Reply                  string          `json:"reply"`
	CharacterStatus        CharacterStatus `json:"character_status"`
	Inventory              []string        `json:"inventory"`
	ActiveQuests           []string        `json:"active_quests"`
	LocationName           string          `json:"location_name"`
	DiscoveredActions      []string        `json:"discovered_actions"`
	TotalActions           int             `json:"total_actions"`
	DiscoveredNarrateVerbs []string        `json:"discovered_narrate_verbs"`
	Error                  string          `json:"error,omitempty"`
}

func characterStatus(c *game.Character) CharacterStatus {
	return CharacterStatus{
		HP:       c.HP,
		MaxHP:    c.MaxHP,
		Level:    c.Level,
		XP:       c.XP,
		XPNeeded: c.XPNeeded(),
	}
}
