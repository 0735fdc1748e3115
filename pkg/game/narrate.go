package game

import "fmt"

// handleNarrateOnly covers the open-ended flavor vocabulary. The attempt
// always succeeds mechanically; the narrator decides what actually happens.
func handleNarrateOnly(verb, argument string) Result {
	direct := fmt.Sprintf("You attempt to %s...", verb)
	context := fmt.Sprintf("You try to %s.", verb)
	if argument != "" {
		direct = fmt.Sprintf("You attempt to %s %s...", verb, argument)
		context = fmt.Sprintf("You try to %s %s.", verb, argument)
	}

	return Result{
		Message: direct,
		Narration: &NarrationRequest{
			Action:   ActionNarrative,
			Command:  verb,
			Argument: argument,
			Success:  true,
			Message:  context,
		},
	}
}
