package game

import (
	"strings"
	"unicode"
)

// Command is a parsed player input: a verb and the remainder of the line.
type Command struct {
	Verb     string
	Argument string
}

// phraseOverride remaps a two-word phrase after the initial verb/argument
// split. Some phrases collapse into a different verb ("open sesame" is the
// spell "sesame", not an attempt to open something); others keep their second
// word as narration context.
type phraseOverride struct {
	verb    string
	keepArg bool
}

var phraseOverrides = map[string]phraseOverride{
	"open sesame":    {verb: "sesame"},
	"hello sailor":   {verb: "hello", keepArg: true},
	"flux capacitor": {verb: "flux", keepArg: true},
}

// ParseCommand turns raw player text into a verb and an optional argument.
// The input is trimmed and lowercased, then split on the first whitespace;
// the argument is the unsplit remainder. Empty or whitespace-only input
// returns ok=false, which is "no command", not an error.
func ParseCommand(input string) (Command, bool) {
	cleaned := strings.ToLower(strings.TrimSpace(input))
	if cleaned == "" {
		return Command{}, false
	}

	verb := cleaned
	argument := ""
	if i := strings.IndexFunc(cleaned, unicode.IsSpace); i >= 0 {
		verb = cleaned[:i]
		argument = strings.TrimSpace(cleaned[i:])
	}

	if argument != "" {
		if override, ok := phraseOverrides[verb+" "+argument]; ok {
			verb = override.verb
			if !override.keepArg {
				argument = ""
			}
		}
	}

	return Command{Verb: verb, Argument: argument}, true
}
