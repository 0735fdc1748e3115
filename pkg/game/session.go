package game

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"time"
)

// Session is one player's in-memory game state: character, world, registry,
// discovery sets and the pending modification log. It is not safe for
// concurrent use; callers serialize turns per session.
type Session struct {
	logger *slog.Logger
	rng    *RNG

	registry  *Registry
	locations map[string]*Location
	quests    map[string]Quest

	character *Character
	current   *Location

	tutorialToolTaken       bool
	tutorialBlockageCleared bool

	discoveredActions map[string]struct{}
	discoveredNarrate map[string]struct{}

	pendingMods []LocationModification
}

// SessionConfig carries prior persisted state into a new session. The zero
// value starts a fresh game with the built-in starting character.
type SessionConfig struct {
	// Character resumes a saved character; nil starts the built-in one.
	Character *Character

	DiscoveredActions      []string
	DiscoveredNarrateVerbs []string

	TutorialToolTaken       bool
	TutorialBlockageCleared bool

	Logger *slog.Logger

	// Seed fixes the RNG for reproducible outcomes; 0 seeds from the clock.
	Seed int64
}

// NewSession builds a session over the built-in world content. It fails when
// the character's saved location no longer exists in the content.
func NewSession(cfg SessionConfig) (*Session, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	character := cfg.Character
	if character == nil {
		character = StartingCharacter()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	locations := DefaultLocations()
	current, ok := locations[character.CurrentLocationID]
	if !ok {
		return nil, fmt.Errorf("character location %q not found in world content", character.CurrentLocationID)
	}

	s := &Session{
		logger:                  logger,
		rng:                     NewRNG(seed),
		registry:                NewRegistry(),
		locations:               locations,
		quests:                  DefaultQuests(),
		character:               character,
		current:                 current,
		tutorialToolTaken:       cfg.TutorialToolTaken,
		tutorialBlockageCleared: cfg.TutorialBlockageCleared,
		discoveredActions:       make(map[string]struct{}, len(cfg.DiscoveredActions)),
		discoveredNarrate:       make(map[string]struct{}, len(cfg.DiscoveredNarrateVerbs)),
	}
	for _, verb := range cfg.DiscoveredActions {
		s.discoveredActions[verb] = struct{}{}
	}
	for _, verb := range cfg.DiscoveredNarrateVerbs {
		s.discoveredNarrate[verb] = struct{}{}
	}
	return s, nil
}

// questCheckExcluded lists canonical verbs that only report state and so can
// never complete a quest. Evaluating after them would let a pure status query
// pop a completion.
var questCheckExcluded = map[string]struct{}{
	"look":      {},
	"inventory": {},
	"status":    {},
	"quests":    {},
}

// ProcessTurn runs one player turn: parse, resolve aliases, dispatch through
// the registry, track discovery, evaluate quests and assemble the response.
func (s *Session) ProcessTurn(input string) TurnResult {
	cmd, ok := ParseCommand(input)
	if !ok {
		return TurnResult{Message: "Please enter a command."}
	}

	verb, argument := cmd.Verb, cmd.Argument
	if full, isDirection := s.registry.Direction(verb); isDirection {
		verb, argument = "go", full
	}

	var result TurnResult
	canonical, entry, found := s.registry.lookup(verb)

	switch {
	case !found:
		result.Message = fmt.Sprintf("Sorry, I don't know how to '%s'.", verb)

	case entry.narrateOnly:
		r := handleNarrateOnly(canonical, argument)
		result.Message = r.Message
		result.Narration = r.Narration
		s.discoveredNarrate[canonical] = struct{}{}

	default:
		r, err := entry.handler(s, argument)
		if err != nil {
			s.logger.Error("action handler failed", "verb", canonical, "error", err)
			result.Message = ErrorPrefix + " An internal error occurred performing that action."
			break
		}
		result.Message = r.Message
		result.Narration = r.Narration
		if _, seen := s.discoveredActions[canonical]; !seen {
			s.discoveredActions[canonical] = struct{}{}
			result.NewlyDiscovered = true
			result.DiscoveredVerb = canonical
		}
	}

	if _, excluded := questCheckExcluded[canonical]; !excluded {
		if questMsg := s.checkQuestCompletion(); questMsg != "" {
			result.Message += "\n\n" + questMsg
		}
	}

	return result
}

// Character returns the live character. Callers must not mutate it outside a
// turn.
func (s *Session) Character() *Character {
	return s.character
}

// CurrentLocation returns the character's current location.
func (s *Session) CurrentLocation() *Location {
	return s.current
}

// DiscoveredActions returns the sorted canonical verbs discovered so far.
func (s *Session) DiscoveredActions() []string {
	return sortedKeys(s.discoveredActions)
}

// DiscoveredNarrateVerbs returns the sorted narrate-only verbs used so far.
func (s *Session) DiscoveredNarrateVerbs() []string {
	return sortedKeys(s.discoveredNarrate)
}

// TotalActions is the number of canonical actions available to discover.
func (s *Session) TotalActions() int {
	return s.registry.TotalActions()
}

// TutorialToolTaken reports whether the tutorial tool has been picked up.
func (s *Session) TutorialToolTaken() bool {
	return s.tutorialToolTaken
}

// TutorialBlockageCleared reports whether the tutorial exit has been cleared.
func (s *Session) TutorialBlockageCleared() bool {
	return s.tutorialBlockageCleared
}

// ActiveQuestNames returns display names for the character's active quests,
// in acceptance order.
func (s *Session) ActiveQuestNames() []string {
	names := make([]string, 0, len(s.character.ActiveQuests))
	for _, questID := range s.character.ActiveQuests {
		if quest, ok := s.quests[questID]; ok {
			names = append(names, quest.Name)
		} else {
			names = append(names, questID)
		}
	}
	return names
}

func (s *Session) recordModification(mod LocationModification) {
	s.pendingMods = append(s.pendingMods, mod)
}

// DrainModifications returns the modifications recorded since the last drain
// and clears the pending log. The caller persists them.
func (s *Session) DrainModifications() []LocationModification {
	mods := s.pendingMods
	s.pendingMods = nil
	return mods
}

// ApplyModifications replays persisted modifications over the static world
// content, oldest first. Unknown kinds and locations are logged and skipped
// so one bad record cannot wedge a session.
func (s *Session) ApplyModifications(mods []LocationModification) {
	for _, mod := range mods {
		loc, ok := s.locations[mod.LocationID]
		if !ok {
			s.logger.Warn("modification references unknown location", "location_id", mod.LocationID, "kind", mod.Kind)
			continue
		}

		switch mod.Kind {
		case ModReplaceDescription:
			loc.Description = mod.Payload
		case ModAddItem:
			var item Item
			if err := json.Unmarshal([]byte(mod.Payload), &item); err != nil {
				s.logger.Warn("modification has malformed item payload", "location_id", mod.LocationID, "error", err)
				continue
			}
			loc.AddItem(item)
		case ModRemoveItem:
			loc.RemoveItem(mod.Payload)
		default:
			s.logger.Warn("unknown modification kind", "kind", mod.Kind, "location_id", mod.LocationID)
		}
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
