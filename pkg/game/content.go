package game

// Static world content. Every session gets its own copy of the location
// table, since play mutates item lists and descriptions in place.

// Tutorial constants. The entry cave's east exit is gated until the player
// takes the pickaxe and uses it on the rubble.
const (
	TutorialLocationID = "entry_cave"
	TutorialToolName   = "pickaxe"
	TutorialTargetName = "rubble"

	blockageSentence = "A narrow passage leading east is blocked by a pile of rubble."
	clearedSentence  = "The narrow passage leading east is now clear of rubble."
	tutorialLookHint = "Maybe the pickaxe could clear the rubble?"
)

// SystemPrompt is the narrator persona sent with every narration request.
const SystemPrompt = `You are a Dungeon Master (DM) running a fun, light-hearted fantasy adventure game for your friends. You are fair and impartial, but also clever and funny.
Your Role: Describe locations, objects, NPCs, and action results based only on provided context. Use descriptive, engaging, concise language (2-4 sentences). Maintain a light-hearted, witty tone. Refer to the player as 'you'.
Constraints: Be fair. Do NOT decide player actions or feelings. Do NOT invent rules, items, NPCs, or locations. Base narration strictly on the last action outcome (hit/miss, success/fail). Do NOT repeat location descriptions unless the player uses 'look'. Do NOT ask "What do you do next?".
Response Format: Only the DM's narrative description.
Current Situation:`

// StartingCharacter returns the built-in starting character, used when no
// prior state exists in storage.
func StartingCharacter() *Character {
	return &Character{
		Name:              "Hero",
		HP:                20,
		MaxHP:             20,
		CurrentLocationID: TutorialLocationID,
		Inventory:         []string{},
		Skills:            map[string]int{"perception": 1},
		XP:                0,
		Level:             1,
		ActiveQuests: []string{
			"get_pickaxe",
			"find_button",
			"get_chieftains_key",
			"scout_trash_pit",
		},
	}
}

// DefaultLocations returns a fresh copy of the static location table.
func DefaultLocations() map[string]*Location {
	return map[string]*Location{
		"entry_cave": {
			ID:   "entry_cave",
			Name: "Cave Entrance",
			Description: "You stand just inside the mouth of a dark, damp cave. Water drips steadily from the ceiling. " +
				"The air smells earthy and cold. " + blockageSentence +
				" A rusty pickaxe lies discarded in a corner near the entrance.",
			Exits: map[string]string{"east": "narrow_corridor"},
			Items: []Item{
				{Name: "pickaxe", Description: "a rusty pickaxe leaning against the wall", Gettable: true},
				{Name: "rubble", Description: "a pile of rubble blocking the east passage", Gettable: false},
			},
		},
		"narrow_corridor": {
			ID:   "narrow_corridor",
			Name: "Narrow Corridor",
			Description: "The passage is tight, forcing you to squeeze through. The rough stone walls are slick with moisture. " +
				"You can hear faint scratching sounds coming from the east. The cave entrance is back to the west.",
			Exits: map[string]string{"east": "goblin_chamber", "west": "entry_cave"},
		},
		"goblin_chamber": {
			ID:   "goblin_chamber",
			Name: "Small Chamber",
			Description: "This small chamber opens up slightly. Filthy rags form a makeshift bed in one corner. " +
				"A single, mean-looking goblin glares at you, wielding a crude spear! " +
				"The only way out seems to be back west. A rough opening leads further east.",
			Exits: map[string]string{"west": "narrow_corridor", "east": "guard_room"},
			NPCs: []NPC{
				{Name: "goblin", Description: "a mean-looking goblin", Dialogue: `"Get out! This my cave!"`},
			},
			Items: []Item{
				{Name: "rags", Description: "filthy rags", Gettable: false},
				{Name: "bone", Description: "a discarded bone", Gettable: false},
			},
		},
		"guard_room": {
			ID:   "guard_room",
			Name: "Guard Room",
			Description: "This rough-hewn chamber was clearly used as a guard post. A crude wooden table sits overturned " +
				"against one wall, and the floor is littered with gnawed bones. Passages lead north, south, and east. " +
				"The way back west leads to the first goblin chamber.",
			Exits: map[string]string{
				"north": "sleeping_quarters",
				"south": "mess_hall",
				"east":  "trash_pit",
				"west":  "goblin_chamber",
			},
			NPCs: []NPC{
				{
					Name:        "sleepy goblin",
					Description: "a goblin guard dozing lightly by the north passage",
					Dialogue:    `"Zzz... huh? Wha? Go 'way..."`,
				},
			},
			Items: []Item{
				{Name: "club", Description: "a crude wooden club lying near the overturned table", Gettable: true},
				{Name: "helmet", Description: "a dented goblin helmet on the floor", Gettable: true},
			},
		},
		"mess_hall": {
			ID:   "mess_hall",
			Name: "Mess Hall",
			Description: "The smell of stale food and unwashed goblin hangs heavy in the air. Greasy, makeshift tables " +
				"and benches are scattered haphazardly. A large, unpleasant cooking pot sits cold in a hearth.",
			Exits: map[string]string{"north": "guard_room"},
			NPCs: []NPC{
				{
					Name:        "cook",
					Description: "a fat goblin stirring the empty cooking pot",
					Dialogue:    `"No food for you! Only for goblins!"`,
				},
			},
			Items: []Item{
				{Name: "dirty plate", Description: "a greasy wooden plate with scraps", Gettable: false},
				{Name: "ladle", Description: "a bent ladle resting against the pot", Gettable: true},
			},
		},
		"trash_pit": {
			ID:   "trash_pit",
			Name: "Trash Pit",
			Description: "This area serves as a dumping ground. Piles of refuse, broken pottery, and more bones are " +
				"scattered around a dark, foul-smelling pit in the center. It looks hazardous. A passage leads back west.",
			Exits: map[string]string{"west": "guard_room"},
			Items: []Item{
				{Name: "broken bottle", Description: "shards of a broken bottle", Gettable: false},
				{Name: "shiny button", Description: "a small, shiny button half-buried in the muck", Gettable: true},
			},
		},
		"sleeping_quarters": {
			ID:   "sleeping_quarters",
			Name: "Sleeping Quarters",
			Description: "Several disgusting piles of furs and dirty straw serve as communal beds. The air is thick with " +
				"the stench of sleeping goblins (though none are here now). An exit leads south, and another passage continues east.",
			Exits: map[string]string{"south": "guard_room", "east": "chieftains_room"},
			Items: []Item{
				{Name: "straw pile", Description: "a pile of dirty straw", Gettable: false},
				{Name: "torn pouch", Description: "a small, torn pouch tucked under some straw", Gettable: true},
			},
		},
		"chieftains_room": {
			ID:   "chieftains_room",
			Name: "Chieftain's Room",
			Description: "This chamber is slightly larger and marginally cleaner than the others. A large, crude throne " +
				"made of wood and skulls sits against the far wall. A thick, flea-ridden fur pelt lies on the floor. " +
				"The only exit is back to the west.",
			Exits: map[string]string{"west": "sleeping_quarters"},
			NPCs: []NPC{
				{
					Name:        "chieftain",
					Description: "a particularly large and ugly goblin wearing a necklace of teeth, sitting on the throne",
					Dialogue:    `"WHO DARES ENTER MY CHAMBER?!"`,
				},
			},
			Items: []Item{
				{Name: "throne", Description: "a crude throne of wood and skulls", Gettable: false},
				{Name: "fur pelt", Description: "a thick, flea-ridden fur pelt", Gettable: false},
				{Name: "iron key", Description: "a heavy iron key hanging on a hook behind the throne", Gettable: true},
			},
		},
	}
}

// DefaultQuests returns the static quest table.
func DefaultQuests() map[string]Quest {
	return map[string]Quest{
		"get_pickaxe": {
			ID:          "get_pickaxe",
			Name:        "Retrieve the Tool",
			Description: "Find and retrieve the rusty pickaxe near the cave entrance.",
			Criteria:    QuestCriteria{Type: CriteriaHasItem, ItemName: "pickaxe"},
			XPReward:    25,
		},
		"find_button": {
			ID:          "find_button",
			Name:        "A Glimmer in the Filth",
			Description: "Something shiny was lost in the trash pit. Maybe it's valuable?",
			Criteria:    QuestCriteria{Type: CriteriaHasItem, ItemName: "shiny button"},
			XPReward:    20,
		},
		"get_chieftains_key": {
			ID:          "get_chieftains_key",
			Name:        "The Chieftain's Key",
			Description: "That large goblin chieftain likely keeps valuables locked away. Secure the key from his chamber.",
			Criteria:    QuestCriteria{Type: CriteriaHasItem, ItemName: "iron key"},
			XPReward:    35,
		},
		"scout_trash_pit": {
			ID:          "scout_trash_pit",
			Name:        "Hazardous Reconnaissance",
			Description: "Find out what lies in the trash pit area of the goblin warren.",
			Criteria:    QuestCriteria{Type: CriteriaReachLocation, LocationID: "trash_pit"},
			XPReward:    20,
		},
	}
}
