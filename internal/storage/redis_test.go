package storage

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"github.com/jmorrisey/warren/pkg/game"
)

func setupTestRedis(t *testing.T) (*RedisStorage, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	store, err := NewRedisStorage("redis://"+mr.Addr(), logger)
	if err != nil {
		mr.Close()
		t.Fatalf("Failed to create redis storage: %v", err)
	}

	return store, mr
}

func TestRedisStorage_SaveAndLoadCharacterState(t *testing.T) {
	store, mr := setupTestRedis(t)
	defer mr.Close()
	defer store.Close()

	ctx := context.Background()

	character := game.StartingCharacter()
	character.Inventory = []string{"pickaxe"}
	character.XP = 25

	cs := &CharacterState{
		Character:              character,
		DiscoveredActions:      []string{"get", "look"},
		DiscoveredNarrateVerbs: []string{"xyzzy"},
		TutorialToolTaken:      true,
	}

	if err := store.SaveCharacterState(ctx, "hero-1", cs); err != nil {
		t.Fatalf("Failed to save character state: %v", err)
	}

	loaded, err := store.LoadCharacterState(ctx, "hero-1")
	if err != nil {
		t.Fatalf("Failed to load character state: %v", err)
	}
	if loaded == nil {
		t.Fatal("Expected non-nil character state")
	}

	if loaded.Character.XP != 25 {
		t.Errorf("Expected XP 25, got %d", loaded.Character.XP)
	}
	if len(loaded.DiscoveredActions) != 2 {
		t.Errorf("Expected 2 discovered actions, got %d", len(loaded.DiscoveredActions))
	}
	if !loaded.TutorialToolTaken {
		t.Error("Expected tutorial tool flag to round-trip")
	}
	if loaded.TutorialBlockageCleared {
		t.Error("Expected blockage flag to stay false")
	}
}

func TestRedisStorage_LoadNonExistentCharacterState(t *testing.T) {
	store, mr := setupTestRedis(t)
	defer mr.Close()
	defer store.Close()

	loaded, err := store.LoadCharacterState(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("Expected no error for non-existent character, got: %v", err)
	}
	if loaded != nil {
		t.Error("Expected nil for non-existent character")
	}
}

func TestRedisStorage_LocationModificationLog(t *testing.T) {
	store, mr := setupTestRedis(t)
	defer mr.Close()
	defer store.Close()

	ctx := context.Background()

	mods := []game.LocationModification{
		{LocationID: "entry_cave", Kind: game.ModRemoveItem, Payload: "pickaxe"},
		{LocationID: "entry_cave", Kind: game.ModReplaceDescription, Payload: "A cleared cave."},
	}
	for _, mod := range mods {
		if err := store.RecordLocationModification(ctx, "hero-1", mod); err != nil {
			t.Fatalf("Failed to record modification: %v", err)
		}
	}

	loaded, err := store.LoadLocationModifications(ctx, "hero-1")
	if err != nil {
		t.Fatalf("Failed to load modifications: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("Expected 2 modifications, got %d", len(loaded))
	}
	// Order of the log is the order of play.
	if loaded[0].Kind != game.ModRemoveItem || loaded[1].Kind != game.ModReplaceDescription {
		t.Errorf("Modifications out of order: %+v", loaded)
	}

	// Another character's log is empty.
	other, err := store.LoadLocationModifications(ctx, "hero-2")
	if err != nil {
		t.Fatalf("Failed to load empty log: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("Expected empty log, got %+v", other)
	}
}

func TestRedisStorage_SkipsMalformedModifications(t *testing.T) {
	store, mr := setupTestRedis(t)
	defer mr.Close()
	defer store.Close()

	ctx := context.Background()

	if err := store.RecordLocationModification(ctx, "hero-1", game.LocationModification{
		LocationID: "entry_cave", Kind: game.ModRemoveItem, Payload: "pickaxe",
	}); err != nil {
		t.Fatalf("Failed to record modification: %v", err)
	}
	mr.Lpush(modificationsKey("hero-1"), "{not valid json")

	loaded, err := store.LoadLocationModifications(ctx, "hero-1")
	if err != nil {
		t.Fatalf("Failed to load modifications: %v", err)
	}
	if len(loaded) != 1 {
		t.Errorf("Expected the malformed entry to be skipped, got %d entries", len(loaded))
	}
}
