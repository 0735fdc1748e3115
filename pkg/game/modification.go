package game

import "encoding/json"

// Location modification kinds. Static world content plus an ordered list of
// these patch records fully determines a session's world state; the records
// are persisted by the caller and replayed at the next session start.
const (
	ModReplaceDescription = "replace-description"
	ModAddItem            = "add-item"
	ModRemoveItem         = "remove-item"
)

// LocationModification is a persisted patch to static world content,
// recording a permanent player-caused change.
type LocationModification struct {
	LocationID string `json:"location_id"`
	Kind       string `json:"kind"`
	Payload    string `json:"payload"`
}

func newAddItemModification(locationID string, item Item) LocationModification {
	payload, _ := json.Marshal(item)
	return LocationModification{
		LocationID: locationID,
		Kind:       ModAddItem,
		Payload:    string(payload),
	}
}

func newRemoveItemModification(locationID, itemName string) LocationModification {
	return LocationModification{
		LocationID: locationID,
		Kind:       ModRemoveItem,
		Payload:    itemName,
	}
}

func newReplaceDescriptionModification(locationID, description string) LocationModification {
	return LocationModification{
		LocationID: locationID,
		Kind:       ModReplaceDescription,
		Payload:    description,
	}
}
