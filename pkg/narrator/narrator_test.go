package narrator

import (
	"strings"
	"testing"

	"github.com/jmorrisey/warren/pkg/chat"
	"github.com/jmorrisey/warren/pkg/game"
)

func testState() *State {
	return &State{
		CharacterName:       "Hero",
		HP:                  15,
		MaxHP:               20,
		Level:               2,
		XP:                  125,
		Inventory:           []string{"pickaxe", "shiny button"},
		Skills:              map[string]int{"perception": 1},
		ActiveQuests:        []string{"The Chieftain's Key"},
		LocationID:          "guard_room",
		LocationName:        "Guard Room",
		LocationDescription: "A rough-hewn chamber.",
	}
}

func TestBuildRequiresState(t *testing.T) {
	if _, err := New().Build(); err == nil {
		t.Fatal("expected error when state is missing")
	}
}

func TestBuildMessageShape(t *testing.T) {
	messages, err := BuildMessages(testState(), nil, "look around")
	if err != nil {
		t.Fatalf("BuildMessages: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("message count = %d, want 2", len(messages))
	}
	if messages[0].Role != chat.ChatRoleSystem {
		t.Errorf("first role = %q", messages[0].Role)
	}
	if messages[1].Role != chat.ChatRoleUser || messages[1].Content != "look around" {
		t.Errorf("user message = %+v", messages[1])
	}

	system := messages[0].Content
	for _, want := range []string{
		"Location: Guard Room (ID: guard_room)",
		"Character: Hero (Level: 2 XP: 125 | HP: 15/20)",
		"Inventory: pickaxe, shiny button",
		"Skills: perception 1",
		"Active Quests: The Chieftain's Key",
		"Location Description: A rough-hewn chamber.",
		"(none)",
	} {
		if !strings.Contains(system, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}
}

func TestBuildWithoutPlayerInput(t *testing.T) {
	messages, err := BuildMessages(testState(), nil, "")
	if err != nil {
		t.Fatalf("BuildMessages: %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("message count = %d, want 1", len(messages))
	}
}

func TestFormatOutcome(t *testing.T) {
	tests := []struct {
		name    string
		outcome *game.NarrationRequest
		want    []string
	}{
		{
			name: "attack",
			outcome: &game.NarrationRequest{
				Action:  game.ActionAttack,
				Target:  "a mean-looking goblin",
				Hit:     true,
				Damage:  5,
				Message: "You attack the a mean-looking goblin.",
			},
			want: []string{"Action: attack", "Target: a mean-looking goblin", "Hit: true", "Damage: 5"},
		},
		{
			name: "skill check",
			outcome: &game.NarrationRequest{
				Action:  game.ActionSkillCheck,
				Skill:   "perception",
				Roll:    6,
				Value:   1,
				DC:      7,
				Success: true,
				Message: "You attempt to use your perception skill (Roll: 6 + Skill: 1 vs DC: 7)...",
			},
			want: []string{"Action: skill_check", "Roll: 6 + Skill: 1 vs DC: 7", "Success: true"},
		},
		{
			name: "talk",
			outcome: &game.NarrationRequest{
				Action:   game.ActionTalk,
				NPC:      "goblin",
				Dialogue: `"Get out! This my cave!"`,
				Message:  "You talk to the goblin.",
			},
			want: []string{"NPC: goblin", `NPC says: "Get out! This my cave!"`},
		},
		{
			name: "narrative action with argument",
			outcome: &game.NarrationRequest{
				Action:   game.ActionNarrative,
				Command:  "dance",
				Argument: "wildly",
				Success:  true,
				Message:  "You try to dance wildly.",
			},
			want: []string{"Attempted: dance wildly"},
		},
		{
			name: "discovery",
			outcome: &game.NarrationRequest{
				Action:         game.ActionDiscovery,
				DiscoveredVerb: "attack",
				Message:        "NEW ACTION DISCOVERED!",
			},
			want: []string{"Discovered command: attack"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatOutcome(tt.outcome)
			if !strings.Contains(got, tt.outcome.Message) {
				t.Errorf("outcome should lead with the summary message: %q", got)
			}
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("missing %q in %q", want, got)
				}
			}
		})
	}
}
