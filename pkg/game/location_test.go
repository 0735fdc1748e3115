package game

import (
	"strings"
	"testing"
)

func TestLocationFullDescription(t *testing.T) {
	loc := &Location{
		ID:          "test_room",
		Name:        "Test Room",
		Description: "A bare room.",
		Exits:       map[string]string{"west": "a", "east": "b", "north": "c"},
		NPCs: []NPC{
			{Name: "goblin", Description: "a mean-looking goblin"},
		},
		Items: []Item{
			{Name: "club", Description: "a crude wooden club", Gettable: true},
		},
	}

	desc := loc.FullDescription()
	if !strings.Contains(desc, "A bare room.") {
		t.Error("description should include the base text")
	}
	if !strings.Contains(desc, "Present here: a mean-looking goblin.") {
		t.Errorf("missing NPC line in %q", desc)
	}
	if !strings.Contains(desc, "You see here: a crude wooden club.") {
		t.Errorf("missing item line in %q", desc)
	}
	// Exits are listed alphabetically so output is stable.
	if !strings.Contains(desc, "Exits are: east, north, west.") {
		t.Errorf("missing sorted exits line in %q", desc)
	}
}

func TestLocationFullDescriptionEmpty(t *testing.T) {
	loc := &Location{ID: "void", Name: "Void", Description: "Nothing here."}

	desc := loc.FullDescription()
	if !strings.Contains(desc, "You don't see any loose items here.") {
		t.Errorf("missing no-items line in %q", desc)
	}
	if !strings.Contains(desc, "There are no obvious exits.") {
		t.Errorf("missing no-exits line in %q", desc)
	}
	if strings.Contains(desc, "Present here:") {
		t.Error("NPC line should be absent when there are no NPCs")
	}
}

func TestLocationExit(t *testing.T) {
	loc := &Location{Exits: map[string]string{"east": "next_room"}}

	if got := loc.Exit("EAST"); got != "next_room" {
		t.Errorf("Exit(EAST) = %q, want next_room", got)
	}
	if got := loc.Exit("west"); got != "" {
		t.Errorf("Exit(west) = %q, want empty", got)
	}
}

func TestLocationFindItem(t *testing.T) {
	loc := &Location{Items: []Item{{Name: "shiny button", Gettable: true}}}

	if loc.FindItem("Shiny Button") == nil {
		t.Error("FindItem should match case-insensitively")
	}
	if loc.FindItem("button") != nil {
		t.Error("FindItem matches whole names, not substrings")
	}
}

func TestLocationFindNPC(t *testing.T) {
	loc := &Location{NPCs: []NPC{{Name: "sleepy goblin", Dialogue: "zzz"}}}

	tests := []struct {
		query string
		found bool
	}{
		{"sleepy goblin", true},
		{"goblin", true}, // substring match
		{"GOBLIN", true},
		{"dragon", false},
	}
	for _, tt := range tests {
		got := loc.FindNPC(tt.query)
		if (got != nil) != tt.found {
			t.Errorf("FindNPC(%q) found = %v, want %v", tt.query, got != nil, tt.found)
		}
	}
}

func TestLocationRemoveItem(t *testing.T) {
	loc := &Location{Items: []Item{
		{Name: "club", Gettable: true},
		{Name: "helmet", Gettable: true},
	}}

	item, ok := loc.RemoveItem("CLUB")
	if !ok || item.Name != "club" {
		t.Fatalf("RemoveItem(CLUB) = %+v, %v", item, ok)
	}
	if len(loc.Items) != 1 || loc.Items[0].Name != "helmet" {
		t.Errorf("remaining items = %+v", loc.Items)
	}

	if _, ok := loc.RemoveItem("club"); ok {
		t.Error("removing a missing item should report false")
	}
}
