package game

// ErrorPrefix marks a display message produced from an internal handler
// error. The orchestrator adds it when a handler returns an error; it is
// never part of an ordinary user-facing failure message.
const ErrorPrefix = "[Game Error]"

// Narration action kinds.
const (
	ActionUse        = "use"
	ActionTalk       = "talk"
	ActionAttack     = "attack"
	ActionSkillCheck = "skill_check"
	ActionNarrative  = "narrative_action"
	ActionDiscovery  = "discovery"
)

// NarrationRequest carries a handler outcome to the narration collaborator.
// Handlers never call the narrator themselves; they describe what happened
// and the caller decides whether and how to render it as prose.
type NarrationRequest struct {
	Action   string `json:"action"`
	Command  string `json:"command,omitempty"`
	Argument string `json:"argument,omitempty"`
	Item     string `json:"item,omitempty"`
	Target   string `json:"target,omitempty"`
	NPC      string `json:"npc,omitempty"`
	Dialogue string `json:"dialogue,omitempty"`
	Skill    string `json:"skill,omitempty"`
	Roll     int    `json:"roll,omitempty"`
	Value    int    `json:"value,omitempty"`
	DC       int    `json:"dc,omitempty"`
	Hit      bool   `json:"hit,omitempty"`
	Damage   int    `json:"damage,omitempty"`
	Success  bool   `json:"success"`

	// Message is the outcome summary interpolated into the narration prompt.
	Message string `json:"message"`

	// DiscoveredVerb is set only on the caller-built discovery override.
	DiscoveredVerb string `json:"discovered_verb,omitempty"`
}

// Result is the outcome of a handler that completed without an internal
// error. Ordinary user-facing failures (missing target, item not held) are
// still Results; internal errors travel on the error return instead.
type Result struct {
	Message   string
	Narration *NarrationRequest
}

// TurnResult is what one call to Session.ProcessTurn produces.
type TurnResult struct {
	Message         string
	Narration       *NarrationRequest
	NewlyDiscovered bool
	DiscoveredVerb  string
}
