package game

import (
	"fmt"
	"strings"
)

// handleGet picks up a gettable item from the current location. The pickup is
// recorded as a location modification so it persists across sessions.
func handleGet(s *Session, itemName string) (Result, error) {
	if itemName == "" {
		return Result{Message: "Get what? Please specify an item."}, nil
	}

	item := s.current.FindItem(itemName)
	if item == nil {
		return Result{Message: fmt.Sprintf("You don't see '%s' here.", itemName)}, nil
	}
	if !item.Gettable {
		return Result{Message: fmt.Sprintf("You can't take the %s.", item.Name)}, nil
	}

	// Copy the name before RemoveItem shifts the slice out from under the
	// item pointer.
	name := item.Name
	s.character.AddItem(name)
	s.current.RemoveItem(name)
	s.recordModification(newRemoveItemModification(s.current.ID, name))
	s.tutorialItemTaken(name)

	return Result{Message: fmt.Sprintf("You take the %s.", name)}, nil
}

// handleDrop moves an item from inventory onto the floor of the current
// location. Dropped items get a generic description and are always gettable
// again.
func handleDrop(s *Session, itemName string) (Result, error) {
	if itemName == "" {
		return Result{Message: "Drop what? Please specify an item."}, nil
	}

	if !s.character.RemoveItem(itemName) {
		return Result{Message: fmt.Sprintf("You don't have '%s' to drop.", itemName)}, nil
	}

	dropped := Item{
		Name:        itemName,
		Description: fmt.Sprintf("%s lying on the ground", itemName),
		Gettable:    true,
	}
	s.current.AddItem(dropped)
	s.recordModification(newAddItemModification(s.current.ID, dropped))

	return Result{Message: fmt.Sprintf("You drop the %s.", itemName)}, nil
}

// handleUse applies an inventory item to a target, "use <item> on <target>".
// The only mechanical use is the pickaxe on the tutorial rubble; everything
// else is handed to the narrator.
func handleUse(s *Session, argument string) (Result, error) {
	itemName, targetName, found := strings.Cut(argument, " on ")
	itemName = strings.TrimSpace(itemName)
	targetName = strings.TrimSpace(targetName)

	if itemName == "" {
		return Result{Message: "Use what? And on what? (e.g., 'use key on door')"}, nil
	}
	if !s.character.HasItem(itemName) {
		return Result{Message: fmt.Sprintf("You don't have a %s.", itemName)}, nil
	}
	if !found || targetName == "" {
		return Result{Message: fmt.Sprintf("Use %s on what?", itemName)}, nil
	}

	if s.current.ID == TutorialLocationID && strings.EqualFold(itemName, TutorialToolName) {
		if !strings.EqualFold(targetName, TutorialTargetName) {
			return Result{Message: fmt.Sprintf("Using the pickaxe on the %s doesn't seem to do anything useful here.", targetName)}, nil
		}
		if !s.clearTutorialBlockage() {
			return Result{Message: "The rubble blocking the exit is already cleared."}, nil
		}
		return Result{Message: "With a swing of the pickaxe, the rubble blocking the exit crumbles! The way is clear."}, nil
	}

	return Result{
		Message: fmt.Sprintf("You try to use the %s on the %s.", itemName, targetName),
		Narration: &NarrationRequest{
			Action:  ActionUse,
			Item:    itemName,
			Target:  targetName,
			Success: false,
			Message: fmt.Sprintf("You try to use the %s on the %s. Nothing seems to happen.", itemName, targetName),
		},
	}, nil
}

// handleTalk starts a conversation with an NPC in the current location. The
// NPC's canned dialogue is passed to the narrator as grounding.
func handleTalk(s *Session, npcName string) (Result, error) {
	if npcName == "" {
		return Result{Message: "Talk to whom?"}, nil
	}

	npc := s.current.FindNPC(npcName)
	if npc == nil {
		return Result{Message: fmt.Sprintf("You don't see anyone named '%s' here.", npcName)}, nil
	}

	return Result{
		Message: fmt.Sprintf("You approach the %s...", npc.Name),
		Narration: &NarrationRequest{
			Action:   ActionTalk,
			NPC:      npc.Name,
			Dialogue: npc.Dialogue,
			Success:  true,
			Message:  fmt.Sprintf("You talk to the %s.", npc.Name),
		},
	}, nil
}
