package engine

import "fmt"

// Component identifies one part of a (character, weapon, room) triple.
type Component int

const (
	ComponentCharacter Component = iota
	ComponentWeapon
	ComponentRoom
)

func (c Component) String() string {
	return []string{"character", "weapon", "room"}[c]
}

// SuggestionOutcome is the structured result of MakeSuggestion. The
// relocation side effect has already happened by the time it is returned,
// refuted or not.
type SuggestionOutcome struct {
	Suggester string
	Character string
	Weapon    string
	Room      string
	Refuted   bool
	RefutedBy string
	Card      string
}

// Mismatch names one wrong component of an incorrect accusation.
type Mismatch struct {
	Component Component
	Value     string
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s '%s' is incorrect", m.Component, m.Value)
}

// AccusationOutcome is the structured result of ProcessAccusation. Feedback
// holds one entry per mismatched component and is empty when Correct.
type AccusationOutcome struct {
	Accuser  string
	Correct  bool
	Feedback []Mismatch
}
