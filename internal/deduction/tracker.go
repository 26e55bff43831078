package deduction

import (
	"fmt"

	"cluedo-engine/internal/events"
)

// UnknownCombinationError reports an update for a triple outside the
// precomputed cross product.
type UnknownCombinationError struct {
	Character string
	Weapon    string
	Room      string
}

func (e *UnknownCombinationError) Error() string {
	return fmt.Sprintf("unknown combination (%s, %s, %s)", e.Character, e.Weapon, e.Room)
}

// Triple is one (character, weapon, room) hypothesis.
type Triple struct {
	Character string
	Weapon    string
	Room      string
}

// Tracker keeps a probability over every triple in the registries' cross
// product. The update rule is a deliberate heuristic, not a real posterior:
// a refuted triple is halved, an unrefuted one doubled, then the whole table
// is renormalized to sum to 1. The table iterates in construction order so
// MostLikely breaks ties by the first maximum encountered.
type Tracker struct {
	triples []Triple
	probs   map[Triple]float64
}

// NewTracker precomputes the cross product of the given name lists, starting
// from a uniform distribution. The cross product is fixed for the life of the
// tracker; updates for any other triple fail.
func NewTracker(characters, weapons, rooms []string) *Tracker {
	t := &Tracker{
		probs: make(map[Triple]float64, len(characters)*len(weapons)*len(rooms)),
	}
	for _, c := range characters {
		for _, w := range weapons {
			for _, r := range rooms {
				triple := Triple{Character: c, Weapon: w, Room: r}
				t.triples = append(t.triples, triple)
			}
		}
	}
	uniform := 1.0 / float64(len(t.triples))
	for _, triple := range t.triples {
		t.probs[triple] = uniform
	}
	return t
}

// Update reweights one triple from a suggestion outcome: halve on a
// refutation, double otherwise, then renormalize.
func (t *Tracker) Update(character, weapon, room string, refuted bool) error {
	triple := Triple{Character: character, Weapon: weapon, Room: room}
	if _, ok := t.probs[triple]; !ok {
		return &UnknownCombinationError{Character: character, Weapon: weapon, Room: room}
	}
	if refuted {
		t.probs[triple] *= 0.5
	} else {
		t.probs[triple] *= 2.0
	}
	t.normalize()
	return nil
}

func (t *Tracker) normalize() {
	var total float64
	for _, p := range t.probs {
		total += p
	}
	if total == 0 {
		return
	}
	for triple, p := range t.probs {
		t.probs[triple] = p / total
	}
}

// MostLikely returns the triple with the maximum probability. Ties go to the
// earliest triple in construction order.
func (t *Tracker) MostLikely() Triple {
	var best Triple
	bestProb := -1.0
	for _, triple := range t.triples {
		if p := t.probs[triple]; p > bestProb {
			best = triple
			bestProb = p
		}
	}
	return best
}

// Probability returns the current probability of one triple (zero for a
// triple outside the cross product).
func (t *Tracker) Probability(character, weapon, room string) float64 {
	return t.probs[Triple{Character: character, Weapon: weapon, Room: room}]
}

// Triples returns the cross product in construction order.
func (t *Tracker) Triples() []Triple {
	out := make([]Triple, len(t.triples))
	copy(out, t.triples)
	return out
}

// Sum returns the total probability mass, which stays at 1 within floating
// tolerance after every update.
func (t *Tracker) Sum() float64 {
	var total float64
	for _, p := range t.probs {
		total += p
	}
	return total
}

// HandleEvent feeds suggestion outcomes into the table, making the tracker a
// drop-in bus listener. Events naming entities outside the cross product are
// ignored; the tracker's correctness is independent of the engine's.
func (t *Tracker) HandleEvent(e events.Event) {
	if resolved, ok := e.(events.SuggestionResolvedEvent); ok {
		_ = t.Update(resolved.Character, resolved.Weapon, resolved.Room, resolved.Refuted)
	}
}
