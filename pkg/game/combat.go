package game

import "fmt"

const (
	attackHitChance = 0.6
	attackDamage    = 5
)

// handleAttack resolves a swing against an NPC in the current location as a
// weighted hit/miss draw with fixed damage. No NPC hp is tracked; the outcome
// exists only for the narrator to voice.
func handleAttack(s *Session, targetName string) (Result, error) {
	if targetName == "" {
		return Result{Message: "Attack what? Please specify a target."}, nil
	}

	npc := s.current.FindNPC(targetName)
	if npc == nil {
		return Result{Message: fmt.Sprintf("You don't see '%s' here to attack.", targetName)}, nil
	}

	target := npc.Description
	if target == "" {
		target = npc.Name
	}

	hit := s.rng.Chance(attackHitChance)
	damage := 0
	if hit {
		damage = attackDamage
	}

	return Result{
		Message: fmt.Sprintf("You attempt to attack the %s...", target),
		Narration: &NarrationRequest{
			Action:  ActionAttack,
			Target:  target,
			Hit:     hit,
			Damage:  damage,
			Success: hit,
			Message: fmt.Sprintf("You attack the %s.", target),
		},
	}, nil
}
