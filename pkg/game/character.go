package game

import "strings"

const (
	// XPPerLevel sets the leveling threshold: a character levels up when
	// total XP reaches Level * XPPerLevel.
	XPPerLevel = 100

	// LevelUpHPBonus is added to MaxHP on every level gained.
	LevelUpHPBonus = 5
)

// Character is the player character. Action handlers and the quest evaluator
// mutate it in place during a turn; persistence happens outside the core.
type Character struct {
	Name              string         `json:"name"`
	HP                int            `json:"hp"`
	MaxHP             int            `json:"max_hp"`
	CurrentLocationID string         `json:"current_location_id"`
	Inventory         []string       `json:"inventory"`
	Skills            map[string]int `json:"skills"`
	XP                int            `json:"xp"`
	Level             int            `json:"level"`
	ActiveQuests      []string       `json:"active_quests"`
}

// TakeDamage reduces HP by the damage amount, never below 0.
func (c *Character) TakeDamage(damage int) {
	c.HP -= damage
	if c.HP < 0 {
		c.HP = 0
	}
}

// Heal increases HP by the heal amount, never above MaxHP.
func (c *Character) Heal(amount int) {
	c.HP += amount
	if c.HP > c.MaxHP {
		c.HP = c.MaxHP
	}
}

func (c *Character) IsAlive() bool {
	return c.HP > 0
}

// AddItem adds an item to the inventory. Membership is case-insensitive but
// the original casing is preserved in storage. Adding an item already held is
// a no-op.
func (c *Character) AddItem(itemName string) {
	if c.HasItem(itemName) {
		return
	}
	c.Inventory = append(c.Inventory, itemName)
}

// RemoveItem removes an item by name (case-insensitive). It reports whether
// an item was removed.
func (c *Character) RemoveItem(itemName string) bool {
	for i, item := range c.Inventory {
		if strings.EqualFold(item, itemName) {
			c.Inventory = append(c.Inventory[:i], c.Inventory[i+1:]...)
			return true
		}
	}
	return false
}

// HasItem reports whether the inventory contains the item (case-insensitive).
func (c *Character) HasItem(itemName string) bool {
	for _, item := range c.Inventory {
		if strings.EqualFold(item, itemName) {
			return true
		}
	}
	return false
}

// Skill returns the value of a skill, or 0 if the character doesn't have it.
func (c *Character) Skill(skillName string) int {
	return c.Skills[strings.ToLower(skillName)]
}

// XPNeeded returns the cumulative XP required for the next level.
func (c *Character) XPNeeded() int {
	return c.Level * XPPerLevel
}

// AddXP awards experience and applies level-ups. XP is cumulative; the loop
// handles multiple level-ups from a single award. Each level raises MaxHP by
// LevelUpHPBonus and fully heals. Zero or negative amounts change nothing.
// It reports whether at least one level was gained.
func (c *Character) AddXP(amount int) bool {
	if amount <= 0 {
		return false
	}

	c.XP += amount
	leveledUp := false
	for c.XP >= c.XPNeeded() {
		c.Level++
		c.MaxHP += LevelUpHPBonus
		c.HP = c.MaxHP
		leveledUp = true
	}
	return leveledUp
}

// AddQuest adds a quest ID to the active quests if not already present.
func (c *Character) AddQuest(questID string) {
	if c.HasQuest(questID) {
		return
	}
	c.ActiveQuests = append(c.ActiveQuests, questID)
}

// RemoveQuest removes a quest ID from the active quests.
func (c *Character) RemoveQuest(questID string) {
	for i, id := range c.ActiveQuests {
		if id == questID {
			c.ActiveQuests = append(c.ActiveQuests[:i], c.ActiveQuests[i+1:]...)
			return
		}
	}
}

func (c *Character) HasQuest(questID string) bool {
	for _, id := range c.ActiveQuests {
		if id == questID {
			return true
		}
	}
	return false
}
