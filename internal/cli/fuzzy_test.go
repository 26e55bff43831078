package cli

import "testing"

var classicRooms = []string{
	"Kitchen", "Ballroom", "Conservatory", "Billiard Room", "Library",
	"Study", "Hall", "Lounge", "Dining Room",
}

func TestCorrectInput(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"exact match passes through", "Kitchen", "Kitchen"},
		{"case-insensitive match is normalized", "kitchen", "Kitchen"},
		{"single typo is corrected", "Kitchn", "Kitchen"},
		{"transposition is corrected", "Libarry", "Library"},
		{"multi-word typo is corrected", "billiard rom", "Billiard Room"},
		{"nonsense is left untouched", "Spaceship", "Spaceship"},
		{"empty input is left untouched", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := correctInput(tc.input, classicRooms); got != tc.want {
				t.Errorf("correctInput(%q) = %q, expected %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestCorrectInputWithNoOptions(t *testing.T) {
	if got := correctInput("Kitchen", nil); got != "Kitchen" {
		t.Errorf("expected the input back with no candidates, got %q", got)
	}
}
