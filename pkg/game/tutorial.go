package game

import "strings"

// The tutorial gate is a three-state progression derived from two booleans:
// no tool, tool held, blockage cleared. Clearing implies the tool was used,
// but the tool-held flag stays true independently.

// tutorialGate intercepts a movement attempt out of the tutorial room.
// blocked is true when movement must not proceed; msg then carries the hint.
// The gate only intervenes when the player named a valid exit direction and
// the blockage is still in place.
func (s *Session) tutorialGate(direction string) (msg string, blocked bool) {
	if s.character.CurrentLocationID != TutorialLocationID {
		return "", false
	}
	if direction == "" || s.current.Exit(direction) == "" {
		return "", false
	}
	if s.tutorialBlockageCleared {
		return "", false
	}

	if !s.tutorialToolTaken {
		return "The exit is blocked by a pile of rubble. You might need a tool to clear it.", true
	}
	return "You have the pickaxe. Perhaps you could use it to clear the rubble blocking the exit?", true
}

// tutorialLookDescription patches the tutorial room's description for the
// current gate state: blockage sentence replaced once cleared, a hint
// appended while the tool is held but unused.
func (s *Session) tutorialLookDescription(description string) string {
	switch {
	case s.tutorialBlockageCleared:
		return strings.Replace(description, blockageSentence, clearedSentence, 1)
	case s.tutorialToolTaken:
		return description + "\n\n" + tutorialLookHint
	default:
		return description
	}
}

// tutorialItemTaken fires after a successful get in the tutorial room.
func (s *Session) tutorialItemTaken(itemName string) {
	if strings.EqualFold(itemName, TutorialToolName) && !s.tutorialToolTaken {
		s.tutorialToolTaken = true
	}
}

// clearTutorialBlockage transitions tool_held -> blockage_cleared. The
// permanent world change is recorded exactly once as a location modification;
// repeat calls are a no-op.
func (s *Session) clearTutorialBlockage() bool {
	if s.tutorialBlockageCleared {
		return false
	}
	s.tutorialBlockageCleared = true

	loc := s.locations[TutorialLocationID]
	cleared := strings.Replace(loc.Description, blockageSentence, clearedSentence, 1)
	s.recordModification(newReplaceDescriptionModification(TutorialLocationID, cleared))
	return true
}
