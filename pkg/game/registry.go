package game

// HandlerFunc executes one gameplay verb against the session. It returns the
// player-facing message and an optional narration request. A non-nil error
// means the handler failed internally; ordinary user-facing failures are
// Results, not errors.
type HandlerFunc func(s *Session, argument string) (Result, error)

// registryEntry is a tagged registry value: either a handler or the
// narrate-only marker, never both.
type registryEntry struct {
	handler     HandlerFunc
	narrateOnly bool
}

// Registry maps canonical verbs to handlers or narrate-only entries, plus the
// immutable alias and direction lookup tables. Built once at session
// construction and read-only thereafter.
type Registry struct {
	entries      map[string]registryEntry
	aliases      map[string]string // surface verb -> canonical verb
	directions   map[string]string // direction alias -> full direction name
	totalActions int
}

// NewRegistry builds the action registry: canonical verbs first, then the
// narrate-only vocabulary (skipping conflicts with canonical verbs), plus the
// alias and direction tables.
func NewRegistry() *Registry {
	canonical := map[string]HandlerFunc{
		"go":        handleGo,
		"look":      handleLook,
		"inventory": handleInventory,
		"status":    handleStatus,
		"quests":    handleQuests,
		"get":       handleGet,
		"drop":      handleDrop,
		"use":       handleUse,
		"talk":      handleTalk,
		"attack":    handleAttack,
		"check":     handleSkillCheck,
	}

	entries := make(map[string]registryEntry, len(canonical)+len(narrateOnlyVerbs))
	for verb, handler := range canonical {
		entries[verb] = registryEntry{handler: handler}
	}
	for _, verb := range narrateOnlyVerbs {
		if _, exists := entries[verb]; !exists {
			entries[verb] = registryEntry{narrateOnly: true}
		}
	}

	return &Registry{
		entries: entries,
		aliases: map[string]string{
			"north": "go", "n": "go", "south": "go", "s": "go",
			"east": "go", "e": "go", "west": "go", "w": "go",
			"up": "go", "u": "go", "down": "go", "d": "go",
			"l": "look", "examine": "look",
			"inv": "inventory", "i": "inventory",
			"stats": "status", "score": "status",
			"journal": "quests", "q": "quests",
			"take": "get",
			"ask":  "talk",
			"hit":  "attack", "fight": "attack",
		},
		directions: map[string]string{
			"north": "north", "n": "north", "south": "south", "s": "south",
			"east": "east", "e": "east", "west": "west", "w": "west",
			"up": "up", "u": "up", "down": "down", "d": "down",
		},
		totalActions: len(canonical),
	}
}

// Canonical resolves a surface verb to its canonical verb. Verbs without an
// alias entry are already canonical.
func (r *Registry) Canonical(verb string) string {
	if canonical, ok := r.aliases[verb]; ok {
		return canonical
	}
	return verb
}

// Direction resolves a raw verb to its full direction name. ok is false when
// the verb is not a direction.
func (r *Registry) Direction(verb string) (string, bool) {
	full, ok := r.directions[verb]
	return full, ok
}

// lookup finds the registry entry for a verb: first by canonical resolution,
// then retrying with the raw verb (narrate-only verbs have no alias entry).
func (r *Registry) lookup(rawVerb string) (canonical string, entry registryEntry, ok bool) {
	canonical = r.Canonical(rawVerb)
	if entry, ok = r.entries[canonical]; ok {
		return canonical, entry, true
	}
	if entry, ok = r.entries[rawVerb]; ok {
		return rawVerb, entry, true
	}
	return canonical, registryEntry{}, false
}

// TotalActions is the number of distinct canonical handlers reachable through
// the registry, used for discovery progress display.
func (r *Registry) TotalActions() int {
	return r.totalActions
}
