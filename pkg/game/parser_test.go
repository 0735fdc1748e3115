package game

import "testing"

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantOK   bool
		wantVerb string
		wantArg  string
	}{
		{
			name:   "empty input",
			input:  "",
			wantOK: false,
		},
		{
			name:   "whitespace only",
			input:  "   \t  ",
			wantOK: false,
		},
		{
			name:     "bare verb",
			input:    "look",
			wantOK:   true,
			wantVerb: "look",
		},
		{
			name:     "verb with argument",
			input:    "get pickaxe",
			wantOK:   true,
			wantVerb: "get",
			wantArg:  "pickaxe",
		},
		{
			name:     "multi-word argument stays intact",
			input:    "use pickaxe on rubble",
			wantOK:   true,
			wantVerb: "use",
			wantArg:  "pickaxe on rubble",
		},
		{
			name:     "input is lowercased and trimmed",
			input:    "  GET Pickaxe  ",
			wantOK:   true,
			wantVerb: "get",
			wantArg:  "pickaxe",
		},
		{
			name:     "tab separates verb and argument",
			input:    "get\tpickaxe",
			wantOK:   true,
			wantVerb: "get",
			wantArg:  "pickaxe",
		},
		{
			name:     "mixed whitespace between words",
			input:    "use \t pickaxe on rubble",
			wantOK:   true,
			wantVerb: "use",
			wantArg:  "pickaxe on rubble",
		},
		{
			name:     "open sesame collapses to sesame",
			input:    "open sesame",
			wantOK:   true,
			wantVerb: "sesame",
			wantArg:  "",
		},
		{
			name:     "phrase override applies across tab",
			input:    "open\tsesame",
			wantOK:   true,
			wantVerb: "sesame",
			wantArg:  "",
		},
		{
			name:     "hello sailor keeps argument",
			input:    "hello sailor",
			wantOK:   true,
			wantVerb: "hello",
			wantArg:  "sailor",
		},
		{
			name:     "flux capacitor keeps argument",
			input:    "FLUX CAPACITOR",
			wantOK:   true,
			wantVerb: "flux",
			wantArg:  "capacitor",
		},
		{
			name:     "open something else is not a phrase override",
			input:    "open door",
			wantOK:   true,
			wantVerb: "open",
			wantArg:  "door",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, ok := ParseCommand(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseCommand(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if cmd.Verb != tt.wantVerb {
				t.Errorf("verb = %q, want %q", cmd.Verb, tt.wantVerb)
			}
			if cmd.Argument != tt.wantArg {
				t.Errorf("argument = %q, want %q", cmd.Argument, tt.wantArg)
			}
		})
	}
}
