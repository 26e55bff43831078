package game

import (
	"cluedo-engine/internal/advisor"
	"cluedo-engine/internal/board"
	"cluedo-engine/internal/config"
	"cluedo-engine/internal/deduction"
	"cluedo-engine/internal/engine"
	"cluedo-engine/internal/entity"
	"cluedo-engine/internal/events"
	"cluedo-engine/internal/notes"
	"cluedo-engine/internal/solution"
)

// Session owns one game's worth of state: the room graph, the registry, the
// hidden solution, and the components hanging off the event bus. Nothing here
// is a process-wide singleton; running two games means building two sessions.
type Session struct {
	Config   *config.BoardConfig
	Graph    *board.Graph
	Registry *entity.Registry
	Engine   *engine.Engine
	Ledger   *notes.Ledger
	Tracker  *deduction.Tracker
	Advisor  *advisor.Advisor
	Bus      *events.Manager

	secret solution.Solution
	turn   int
}

// CurrentCharacter returns whose turn it is, or nil once everyone has
// withdrawn. Turn order is registration order; the index lives here, outside
// the engine, which never tracks turns itself.
func (s *Session) CurrentCharacter() *entity.Character {
	characters := s.Registry.Characters()
	if len(characters) == 0 {
		return nil
	}
	return characters[s.turn%len(characters)]
}

// AdvanceTurn moves to the next character in rotation.
func (s *Session) AdvanceTurn() {
	characters := s.Registry.Characters()
	if len(characters) == 0 {
		return
	}
	s.turn = (s.turn + 1) % len(characters)
}

// Withdraw removes the named character via the engine and keeps the turn
// index valid for the shrunken roster.
func (s *Session) Withdraw(name string) error {
	if err := s.Engine.Withdraw(name); err != nil {
		return err
	}
	if remaining := len(s.Registry.Characters()); remaining > 0 {
		s.turn %= remaining
	} else {
		s.turn = 0
	}
	return nil
}

// Stalemate reports that no character can still win: everyone left has
// already spent their accusation.
func (s *Session) Stalemate() bool {
	for _, c := range s.Registry.Characters() {
		if !c.Accused {
			return false
		}
	}
	return true
}

// RevealSolution formats the hidden triple for the debug reveal flag.
func (s *Session) RevealSolution() string {
	return s.secret.Reveal()
}
