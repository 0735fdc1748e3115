package game

import "fmt"

// handleGo moves the character through an exit. The tutorial gate intercepts
// movement out of the entry cave until the blockage is cleared.
func handleGo(s *Session, direction string) (Result, error) {
	if msg, blocked := s.tutorialGate(direction); blocked {
		return Result{Message: msg}, nil
	}

	if direction == "" {
		return Result{Message: "Go where? Please specify a direction (e.g., north, east, up)."}, nil
	}

	nextID := s.current.Exit(direction)
	if nextID == "" {
		return Result{Message: fmt.Sprintf("You can't go %s from here.", direction)}, nil
	}

	next, ok := s.locations[nextID]
	if !ok {
		// Content error: the exit points at a location that doesn't exist.
		// Refuse the move rather than crash the turn.
		return Result{}, fmt.Errorf("exit %q of location %q points to unknown location %q",
			direction, s.current.ID, nextID)
	}

	s.character.CurrentLocationID = nextID
	s.current = next

	// Arriving shows the new room, same as an explicit look.
	return handleLook(s, "")
}
