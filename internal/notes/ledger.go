package notes

import (
	"fmt"

	"cluedo-engine/internal/events"
)

// entryKind separates engine-written suggestion records from the player's own
// free-form annotations.
type entryKind int

const (
	kindSuggestion entryKind = iota
	kindManual
)

type entry struct {
	kind entryKind

	// suggestion fields
	character string
	weapon    string
	room      string
	refutedBy string // empty when no one refuted

	// manual note text
	note string
}

// Ledger is the append-only log of suggestions and manual annotations.
// Suggestion records are written once by the engine and never edited; only
// manual notes can be removed.
type Ledger struct {
	entries []entry
}

func NewLedger() *Ledger {
	return &Ledger{}
}

// AddSuggestion appends a suggestion record. refutedBy is empty when no one
// could refute.
func (l *Ledger) AddSuggestion(character, weapon, room, refutedBy string) {
	l.entries = append(l.entries, entry{
		kind:      kindSuggestion,
		character: character,
		weapon:    weapon,
		room:      room,
		refutedBy: refutedBy,
	})
}

// AddManual appends a free-form annotation.
func (l *Ledger) AddManual(note string) {
	l.entries = append(l.entries, entry{kind: kindManual, note: note})
}

// RemoveManual deletes every manual note whose text exactly matches and
// returns how many were removed. Suggestion records are never touched, and
// removing an absent note is not an error.
func (l *Ledger) RemoveManual(note string) int {
	kept := l.entries[:0]
	removed := 0
	for _, e := range l.entries {
		if e.kind == kindManual && e.note == note {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	l.entries = kept
	return removed
}

// Len returns the number of entries in the ledger.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Render formats all entries in insertion order. A refuted suggestion takes
// two lines; everything else one.
func (l *Ledger) Render() []string {
	var lines []string
	for _, e := range l.entries {
		switch e.kind {
		case kindSuggestion:
			lines = append(lines, fmt.Sprintf("Suggested: %s with %s in %s", e.character, e.weapon, e.room))
			if e.refutedBy != "" {
				lines = append(lines, fmt.Sprintf(" - Refuted by %s", e.refutedBy))
			}
		case kindManual:
			lines = append(lines, e.note)
		}
	}
	return lines
}

// HandleEvent records suggestion outcomes straight off the bus.
func (l *Ledger) HandleEvent(e events.Event) {
	if resolved, ok := e.(events.SuggestionResolvedEvent); ok {
		l.AddSuggestion(resolved.Character, resolved.Weapon, resolved.Room, resolved.RefutedBy)
	}
}
