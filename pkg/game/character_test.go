package game

import "testing"

func TestCharacterDamageAndHealing(t *testing.T) {
	c := StartingCharacter()

	c.TakeDamage(5)
	if c.HP != 15 {
		t.Errorf("HP after 5 damage = %d, want 15", c.HP)
	}

	c.TakeDamage(100)
	if c.HP != 0 {
		t.Errorf("HP clamps at 0, got %d", c.HP)
	}
	if c.IsAlive() {
		t.Error("character at 0 HP should not be alive")
	}

	c.Heal(7)
	if c.HP != 7 {
		t.Errorf("HP after healing 7 = %d, want 7", c.HP)
	}

	c.Heal(100)
	if c.HP != c.MaxHP {
		t.Errorf("HP clamps at MaxHP %d, got %d", c.MaxHP, c.HP)
	}
}

func TestCharacterInventory(t *testing.T) {
	c := StartingCharacter()

	c.AddItem("pickaxe")
	if !c.HasItem("pickaxe") {
		t.Fatal("expected pickaxe in inventory")
	}
	if !c.HasItem("PICKAXE") {
		t.Error("HasItem should be case-insensitive")
	}

	// Duplicate adds are ignored regardless of case.
	c.AddItem("Pickaxe")
	if len(c.Inventory) != 1 {
		t.Errorf("inventory length after duplicate add = %d, want 1", len(c.Inventory))
	}

	if !c.RemoveItem("PickAxe") {
		t.Error("RemoveItem should match case-insensitively")
	}
	if c.HasItem("pickaxe") {
		t.Error("pickaxe should be gone after removal")
	}
	if c.RemoveItem("pickaxe") {
		t.Error("removing a missing item should report false")
	}
}

func TestCharacterSkill(t *testing.T) {
	c := StartingCharacter()

	if got := c.Skill("perception"); got != 1 {
		t.Errorf("Skill(perception) = %d, want 1", got)
	}
	if got := c.Skill("Perception"); got != 1 {
		t.Errorf("skill lookup should be case-insensitive, got %d", got)
	}
	if got := c.Skill("basketweaving"); got != 0 {
		t.Errorf("unknown skill = %d, want 0", got)
	}
}

func TestCharacterXPAndLeveling(t *testing.T) {
	c := StartingCharacter()

	if c.XPNeeded() != 100 {
		t.Fatalf("level 1 threshold = %d, want 100", c.XPNeeded())
	}

	if c.AddXP(50) {
		t.Error("50 XP should not level up from level 1")
	}
	if c.Level != 1 || c.XP != 50 {
		t.Errorf("after 50 XP: level %d xp %d, want level 1 xp 50", c.Level, c.XP)
	}

	c.TakeDamage(10)
	if !c.AddXP(50) {
		t.Fatal("reaching 100 XP should level up")
	}
	if c.Level != 2 {
		t.Errorf("level = %d, want 2", c.Level)
	}
	if c.MaxHP != 25 {
		t.Errorf("MaxHP after level up = %d, want 25", c.MaxHP)
	}
	if c.HP != c.MaxHP {
		t.Errorf("level up should fully heal: HP %d, MaxHP %d", c.HP, c.MaxHP)
	}
	if c.XPNeeded() != 200 {
		t.Errorf("level 2 threshold = %d, want 200", c.XPNeeded())
	}

	// One large award can cross several thresholds at once.
	if !c.AddXP(1000) {
		t.Fatal("large XP award should level up")
	}
	if c.Level != 12 {
		t.Errorf("level after 1100 total XP = %d, want 12", c.Level)
	}
	if c.MaxHP != 75 {
		t.Errorf("MaxHP after ten level ups = %d, want 75", c.MaxHP)
	}
}

func TestCharacterQuests(t *testing.T) {
	c := StartingCharacter()

	if !c.HasQuest("get_pickaxe") {
		t.Fatal("starting character should have get_pickaxe")
	}

	c.RemoveQuest("get_pickaxe")
	if c.HasQuest("get_pickaxe") {
		t.Error("quest should be gone after removal")
	}
	if len(c.ActiveQuests) != 3 {
		t.Errorf("active quests = %d, want 3", len(c.ActiveQuests))
	}

	c.AddQuest("get_pickaxe")
	c.AddQuest("get_pickaxe")
	if len(c.ActiveQuests) != 4 {
		t.Errorf("duplicate AddQuest should be ignored, got %d quests", len(c.ActiveQuests))
	}
}
