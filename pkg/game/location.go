package game

import (
	"sort"
	"strings"
)

// Item is an object lying in a location. Gettable items can be moved into
// the character's inventory.
type Item struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Gettable    bool   `json:"gettable"`
}

// NPC is a non-player character present in a location.
type NPC struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Dialogue    string `json:"dialogue,omitempty"`
}

// Location is a room in the game world. Identity is immutable; the item list
// and description may change during play (and those changes are recorded as
// location modifications for replay).
type Location struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Exits       map[string]string `json:"exits,omitempty"` // direction -> location ID
	NPCs        []NPC             `json:"npcs,omitempty"`
	Items       []Item            `json:"items,omitempty"`
}

// FullDescription returns the room description followed by NPC, item and
// exit summaries.
func (l *Location) FullDescription() string {
	var b strings.Builder
	b.WriteString(l.Description)

	if len(l.NPCs) > 0 {
		descs := make([]string, 0, len(l.NPCs))
		for _, npc := range l.NPCs {
			if npc.Description != "" {
				descs = append(descs, npc.Description)
			} else {
				descs = append(descs, npc.Name)
			}
		}
		b.WriteString("\n\nPresent here: " + strings.Join(descs, ", ") + ".")
	}

	if len(l.Items) > 0 {
		descs := make([]string, 0, len(l.Items))
		for _, item := range l.Items {
			if item.Description != "" {
				descs = append(descs, item.Description)
			} else {
				descs = append(descs, item.Name)
			}
		}
		b.WriteString("\n\nYou see here: " + strings.Join(descs, ", ") + ".")
	} else {
		b.WriteString("\n\nYou don't see any loose items here.")
	}

	if len(l.Exits) > 0 {
		directions := make([]string, 0, len(l.Exits))
		for dir := range l.Exits {
			directions = append(directions, dir)
		}
		sort.Strings(directions)
		b.WriteString("\n\nExits are: " + strings.Join(directions, ", ") + ".")
	} else {
		b.WriteString("\n\nThere are no obvious exits.")
	}

	return b.String()
}

// Exit returns the location ID for a direction (case-insensitive), or ""
// when there is no exit that way.
func (l *Location) Exit(direction string) string {
	return l.Exits[strings.ToLower(direction)]
}

// AddItem appends an item to the location's item list.
func (l *Location) AddItem(item Item) {
	l.Items = append(l.Items, item)
}

// RemoveItem removes an item by name (case-insensitive) and returns it.
// The second return value reports whether an item was found.
func (l *Location) RemoveItem(itemName string) (Item, bool) {
	for i, item := range l.Items {
		if strings.EqualFold(item.Name, itemName) {
			l.Items = append(l.Items[:i], l.Items[i+1:]...)
			return item, true
		}
	}
	return Item{}, false
}

// FindItem returns a pointer to the item with the given name
// (case-insensitive), or nil.
func (l *Location) FindItem(itemName string) *Item {
	for i := range l.Items {
		if strings.EqualFold(l.Items[i].Name, itemName) {
			return &l.Items[i]
		}
	}
	return nil
}

// FindNPC returns the first NPC whose name contains the given name as a
// case-insensitive substring, or nil.
func (l *Location) FindNPC(npcName string) *NPC {
	needle := strings.ToLower(npcName)
	for i := range l.NPCs {
		if strings.Contains(strings.ToLower(l.NPCs[i].Name), needle) {
			return &l.NPCs[i]
		}
	}
	return nil
}
