package game

import "fmt"

// Quest completion criteria kinds. Defeating an NPC is not a criteria kind:
// combat is stateless and NPC death is not tracked.
const (
	CriteriaHasItem       = "has_item"
	CriteriaReachLocation = "reach_location"
)

// QuestCriteria describes what completes a quest. Exactly one of ItemName or
// LocationID is meaningful, selected by Type.
type QuestCriteria struct {
	Type       string `json:"type"`
	ItemName   string `json:"item_name,omitempty"`
	LocationID string `json:"location_id,omitempty"`
}

// Quest is a static quest definition.
type Quest struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Criteria    QuestCriteria `json:"completion_criteria"`
	XPReward    int           `json:"xp_reward"`
}

func (q QuestCriteria) satisfiedBy(c *Character) bool {
	switch q.Type {
	case CriteriaHasItem:
		return q.ItemName != "" && c.HasItem(q.ItemName)
	case CriteriaReachLocation:
		return q.LocationID != "" && c.CurrentLocationID == q.LocationID
	}
	return false
}

// checkQuestCompletion scans active quests in order against the current
// character state and completes at most one per call: the first satisfiable
// quest is removed from the active list and its XP reward applied. Returns
// the completion message, or "" when nothing completed.
func (s *Session) checkQuestCompletion() string {
	var completed *Quest
	for _, questID := range s.character.ActiveQuests {
		quest, ok := s.quests[questID]
		if !ok {
			s.logger.Warn("active quest has no definition", "quest_id", questID)
			continue
		}
		if quest.Criteria.satisfiedBy(s.character) {
			completed = &quest
			break
		}
	}
	if completed == nil {
		return ""
	}

	s.character.RemoveQuest(completed.ID)
	leveledUp := s.character.AddXP(completed.XPReward)

	msg := fmt.Sprintf("Quest Completed: %s! (+%d XP)", completed.Name, completed.XPReward)
	if leveledUp {
		msg += fmt.Sprintf("\n*** You reached Level %d! ***", s.character.Level)
	}
	return msg
}
