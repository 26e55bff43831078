package cli

import "testing"

func TestParseCommand(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		action string
		args   map[string]string
	}{
		{
			name:   "move",
			input:  "move Kitchen",
			action: "move",
			args:   map[string]string{"room": "Kitchen"},
		},
		{
			name:   "go with preposition",
			input:  "go to the Billiard Room",
			action: "move",
			args:   map[string]string{"room": "the Billiard Room"},
		},
		{
			name:   "travel alias",
			input:  "travel Dining Room",
			action: "move",
			args:   map[string]string{"room": "Dining Room"},
		},
		{
			name:   "suggest with multi-word names",
			input:  "suggest Colonel Mustard with Lead Pipe in Dining Room",
			action: "suggest",
			args: map[string]string{
				"character": "Colonel Mustard",
				"weapon":    "Lead Pipe",
				"room":      "Dining Room",
			},
		},
		{
			name:   "accuse is case-insensitive",
			input:  "ACCUSE Miss Scarlett WITH Rope IN Kitchen",
			action: "accuse",
			args: map[string]string{
				"character": "Miss Scarlett",
				"weapon":    "Rope",
				"room":      "Kitchen",
			},
		},
		{
			name:   "path",
			input:  "path Conservatory",
			action: "path",
			args:   map[string]string{"room": "Conservatory"},
		},
		{
			name:   "note keeps full text",
			input:  "note the rope was dealt to Plum",
			action: "note",
			args:   map[string]string{"text": "the rope was dealt to Plum"},
		},
		{
			name:   "view notes",
			input:  "view notes",
			action: "notes",
			args:   map[string]string{},
		},
		{
			name:   "surrounding whitespace is trimmed",
			input:  "   quit   ",
			action: "quit",
			args:   map[string]string{},
		},
		{
			name:   "gibberish",
			input:  "dance in the hall",
			action: "unknown",
			args:   map[string]string{},
		},
		{
			name:   "suggest missing weapon clause",
			input:  "suggest Miss Scarlett in Kitchen",
			action: "unknown",
			args:   map[string]string{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			action, args := parseCommand(tc.input)
			if action != tc.action {
				t.Fatalf("expected action %q, got %q", tc.action, action)
			}
			for key, want := range tc.args {
				if got := args[key]; got != want {
					t.Errorf("arg %q: expected %q, got %q", key, want, got)
				}
			}
			if len(args) != len(tc.args) {
				t.Errorf("expected %d args, got %v", len(tc.args), args)
			}
		})
	}
}
