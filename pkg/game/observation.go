package game

import (
	"fmt"
	"sort"
	"strings"
)

// handleLook describes the current location. The tutorial room's description
// is patched for the gate state before rendering.
func handleLook(s *Session, _ string) (Result, error) {
	desc := s.current.FullDescription()
	if s.current.ID == TutorialLocationID {
		desc = s.tutorialLookDescription(desc)
	}
	return Result{Message: fmt.Sprintf("Current Location: %s\n\n%s", s.current.Name, desc)}, nil
}

func handleInventory(s *Session, _ string) (Result, error) {
	if len(s.character.Inventory) == 0 {
		return Result{Message: "Your inventory is empty."}, nil
	}
	return Result{Message: fmt.Sprintf("You are carrying: %s.", strings.Join(s.character.Inventory, ", "))}, nil
}

// handleStatus renders the character sheet. Skills are sorted by name so the
// output is stable.
func handleStatus(s *Session, _ string) (Result, error) {
	c := s.character

	lines := []string{
		fmt.Sprintf("Name: %s", c.Name),
		fmt.Sprintf("Level: %d", c.Level),
		fmt.Sprintf("XP: %d / %d", c.XP, c.XPNeeded()),
		fmt.Sprintf("HP: %d / %d", c.HP, c.MaxHP),
	}

	if len(c.Skills) > 0 {
		names := make([]string, 0, len(c.Skills))
		for name := range c.Skills {
			names = append(names, name)
		}
		sort.Strings(names)

		skills := make([]string, 0, len(names))
		for _, name := range names {
			skills = append(skills, fmt.Sprintf("%s %d", name, c.Skills[name]))
		}
		lines = append(lines, fmt.Sprintf("Skills: %s", strings.Join(skills, ", ")))
	}

	lines = append(lines, fmt.Sprintf("Location: %s", s.current.Name))
	return Result{Message: strings.Join(lines, "\n")}, nil
}

func handleQuests(s *Session, _ string) (Result, error) {
	if len(s.character.ActiveQuests) == 0 {
		return Result{Message: "You have no active quests."}, nil
	}

	lines := []string{"Active Quests:"}
	for _, questID := range s.character.ActiveQuests {
		quest, ok := s.quests[questID]
		if !ok {
			s.logger.Warn("active quest has no definition", "quest_id", questID)
			continue
		}
		lines = append(lines, fmt.Sprintf("- %s: %s", quest.Name, quest.Description))
	}
	return Result{Message: strings.Join(lines, "\n")}, nil
}
