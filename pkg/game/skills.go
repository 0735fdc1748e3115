package game

import "fmt"

const (
	skillCheckDie = 10
	skillCheckDC  = 7
)

// handleSkillCheck rolls 1d10 + skill value against a fixed DC. Unknown
// skills count as 0 rather than failing the command. The check never mutates
// state; the arithmetic is packaged for the narrator.
func handleSkillCheck(s *Session, skillName string) (Result, error) {
	if skillName == "" {
		return Result{Message: "Check what skill? Please specify a skill name."}, nil
	}

	value := s.character.Skill(skillName)
	roll := s.rng.Roll(skillCheckDie)
	success := roll+value >= skillCheckDC

	return Result{
		Message: fmt.Sprintf("You focus, attempting a %s check...", skillName),
		Narration: &NarrationRequest{
			Action:  ActionSkillCheck,
			Skill:   skillName,
			Roll:    roll,
			Value:   value,
			DC:      skillCheckDC,
			Success: success,
			Message: fmt.Sprintf("You attempt to use your %s skill (Roll: %d + Skill: %d vs DC: %d)...",
				skillName, roll, value, skillCheckDC),
		},
	}, nil
}
