// Package narrator builds the chat messages sent to the LLM that voices the
// dungeon master. Game logic never calls the LLM; handlers produce a
// mechanical outcome and this package frames it for narration.
package narrator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jmorrisey/warren/pkg/chat"
	"github.com/jmorrisey/warren/pkg/game"
)

// State is the character and location snapshot interpolated into the
// narration prompt.
type State struct {
	CharacterName       string
	HP                  int
	MaxHP               int
	Level               int
	XP                  int
	Inventory           []string
	Skills              map[string]int
	ActiveQuests        []string
	LocationID          string
	LocationName        string
	LocationDescription string
}

// Builder constructs chat messages for LLM narration using a fluent
// interface.
type Builder struct {
	systemPrompt string
	state        *State
	outcome      *game.NarrationRequest
	playerInput  string
}

// New creates a new prompt builder with the default system prompt.
func New() *Builder {
	return &Builder{systemPrompt: game.SystemPrompt}
}

// WithSystemPrompt overrides the default narrator persona.
func (b *Builder) WithSystemPrompt(prompt string) *Builder {
	b.systemPrompt = prompt
	return b
}

// WithState sets the character and location snapshot.
func (b *Builder) WithState(st *State) *Builder {
	b.state = st
	return b
}

// WithOutcome sets the mechanical outcome to narrate. nil means the turn had
// no narratable outcome.
func (b *Builder) WithOutcome(outcome *game.NarrationRequest) *Builder {
	b.outcome = outcome
	return b
}

// WithPlayerInput sets the raw player input for the turn.
func (b *Builder) WithPlayerInput(input string) *Builder {
	b.playerInput = input
	return b
}

// Build constructs the final message array for LLM consumption: one system
// message carrying persona, state and outcome, then the player input as the
// user message.
func (b *Builder) Build() ([]chat.ChatMessage, error) {
	if b.state == nil {
		return nil, fmt.Errorf("state is required")
	}

	var sb strings.Builder
	sb.WriteString(b.systemPrompt)
	sb.WriteString("\n\n--- Current State ---\n")
	sb.WriteString(fmt.Sprintf("Location: %s (ID: %s)\n", b.state.LocationName, b.state.LocationID))
	sb.WriteString(fmt.Sprintf("Character: %s (Level: %d XP: %d | HP: %d/%d)\n",
		b.state.CharacterName, b.state.Level, b.state.XP, b.state.HP, b.state.MaxHP))
	sb.WriteString("Inventory: " + formatList(b.state.Inventory, "empty") + "\n")
	sb.WriteString("Skills: " + formatSkills(b.state.Skills) + "\n")
	sb.WriteString("Active Quests: " + formatList(b.state.ActiveQuests, "none") + "\n")
	sb.WriteString("Location Description: " + b.state.LocationDescription)

	sb.WriteString("\n\n--- Last Action Outcome ---\n")
	sb.WriteString(formatOutcome(b.outcome))

	messages := []chat.ChatMessage{
		{Role: chat.ChatRoleSystem, Content: sb.String()},
	}
	if b.playerInput != "" {
		messages = append(messages, chat.ChatMessage{
			Role:    chat.ChatRoleUser,
			Content: b.playerInput,
		})
	}
	return messages, nil
}

// BuildMessages is a convenience function for the common case.
func BuildMessages(st *State, outcome *game.NarrationRequest, playerInput string) ([]chat.ChatMessage, error) {
	return New().
		WithState(st).
		WithOutcome(outcome).
		WithPlayerInput(playerInput).
		Build()
}

// formatOutcome renders a mechanical outcome as labeled lines for the
// narrator. The summary message leads; the structured fields follow so the
// LLM can ground hit/miss and roll arithmetic.
func formatOutcome(outcome *game.NarrationRequest) string {
	if outcome == nil {
		return "(none)"
	}

	lines := []string{outcome.Message, "Action: " + outcome.Action}
	switch outcome.Action {
	case game.ActionAttack:
		lines = append(lines,
			"Target: "+outcome.Target,
			fmt.Sprintf("Hit: %t", outcome.Hit),
			fmt.Sprintf("Damage: %d", outcome.Damage))
	case game.ActionSkillCheck:
		lines = append(lines,
			"Skill: "+outcome.Skill,
			fmt.Sprintf("Roll: %d + Skill: %d vs DC: %d", outcome.Roll, outcome.Value, outcome.DC),
			fmt.Sprintf("Success: %t", outcome.Success))
	case game.ActionTalk:
		lines = append(lines,
			"NPC: "+outcome.NPC,
			"NPC says: "+outcome.Dialogue)
	case game.ActionUse:
		lines = append(lines,
			"Item: "+outcome.Item,
			"Target: "+outcome.Target,
			fmt.Sprintf("Success: %t", outcome.Success))
	case game.ActionNarrative:
		attempted := outcome.Command
		if outcome.Argument != "" {
			attempted += " " + outcome.Argument
		}
		lines = append(lines, "Attempted: "+attempted)
	case game.ActionDiscovery:
		lines = append(lines, "Discovered command: "+outcome.DiscoveredVerb)
	}
	return strings.Join(lines, "\n")
}

func formatList(items []string, empty string) string {
	if len(items) == 0 {
		return empty
	}
	return strings.Join(items, ", ")
}

func formatSkills(skills map[string]int) string {
	if len(skills) == 0 {
		return "none"
	}
	names := make([]string, 0, len(skills))
	for name := range skills {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s %d", name, skills[name]))
	}
	return strings.Join(parts, ", ")
}
