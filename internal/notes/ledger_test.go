package notes

import (
	"reflect"
	"testing"

	"cluedo-engine/internal/events"
)

func TestRenderFormatsSuggestions(t *testing.T) {
	l := NewLedger()
	l.AddSuggestion("Miss Scarlett", "Rope", "Kitchen", "")
	l.AddSuggestion("Colonel Mustard", "Candlestick", "Library", "Professor Plum")

	want := []string{
		"Suggested: Miss Scarlett with Rope in Kitchen",
		"Suggested: Colonel Mustard with Candlestick in Library",
		" - Refuted by Professor Plum",
	}
	if got := l.Render(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestRemoveManualLeavesSuggestionsIntact(t *testing.T) {
	l := NewLedger()
	l.AddSuggestion("Miss Scarlett", "Rope", "Kitchen", "")
	l.AddManual("check the cellar")

	// Removing an unrelated value changes nothing.
	if removed := l.RemoveManual("check the attic"); removed != 0 {
		t.Errorf("expected 0 removals for an absent note, got %d", removed)
	}
	if l.Len() != 2 {
		t.Fatalf("expected 2 entries after removing an absent note, got %d", l.Len())
	}

	l.RemoveManual("check the cellar")
	want := []string{"Suggested: Miss Scarlett with Rope in Kitchen"}
	if got := l.Render(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected the suggestion to survive, got %v", got)
	}
}

func TestRemoveManualRemovesAllDuplicates(t *testing.T) {
	l := NewLedger()
	l.AddManual("rope is out")
	l.AddManual("plum acts nervous")
	l.AddManual("rope is out")

	if removed := l.RemoveManual("rope is out"); removed != 2 {
		t.Errorf("expected 2 removals, got %d", removed)
	}

	want := []string{"plum acts nervous"}
	if got := l.Render(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected every duplicate removed, got %v", got)
	}
}

func TestLedgerListensToSuggestionEvents(t *testing.T) {
	l := NewLedger()
	bus := events.NewManager()
	bus.Subscribe(l)

	bus.Publish(events.SuggestionResolvedEvent{
		Suggester: "Miss Scarlett",
		Character: "Colonel Mustard",
		Weapon:    "Rope",
		Room:      "Kitchen",
		Refuted:   true,
		RefutedBy: "Professor Plum",
		Card:      "Rope",
	})
	bus.Publish(events.CharacterMovedEvent{Character: "Miss Scarlett", From: "Kitchen", To: "Library"})

	want := []string{
		"Suggested: Colonel Mustard with Rope in Kitchen",
		" - Refuted by Professor Plum",
	}
	if got := l.Render(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected only the suggestion recorded, got %v", got)
	}
}
