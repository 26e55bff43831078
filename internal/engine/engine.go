package engine

import (
	"strings"

	"cluedo-engine/internal/board"
	"cluedo-engine/internal/entity"
	"cluedo-engine/internal/events"
	"cluedo-engine/internal/solution"

	"github.com/sirupsen/logrus"
)

// Engine is the turn-based rule engine. It owns all mutation of character and
// weapon positions; the front end only calls these operations and renders
// their outcomes. Whose turn it is stays with the caller.
type Engine struct {
	graph    *board.Graph
	registry *entity.Registry
	secret   solution.Solution
	bus      *events.Manager
	log      *logrus.Logger
}

// New wires an engine over one session's graph, registry, and solution.
func New(graph *board.Graph, registry *entity.Registry, secret solution.Solution,
	bus *events.Manager, log *logrus.Logger) *Engine {
	return &Engine{
		graph:    graph,
		registry: registry,
		secret:   secret,
		bus:      bus,
		log:      log,
	}
}

// Registry exposes the session roster for display and fuzzy-correction
// candidates. Callers must not mutate character state through it.
func (e *Engine) Registry() *entity.Registry { return e.registry }

// Graph exposes the room graph for display and path queries.
func (e *Engine) Graph() *board.Graph { return e.graph }

// MoveCharacter relocates a character to an adjacent room. A move is a
// degenerate, validated room re-assignment: the destination must exist and
// share an edge with the current room.
func (e *Engine) MoveCharacter(name, destination string) error {
	character, ok := e.registry.FindCharacter(name)
	if !ok {
		return &UnknownEntityError{Name: name}
	}
	if character.Accused {
		return &CharacterBarredError{Name: name}
	}
	if !e.graph.Contains(destination) {
		return &board.UnknownRoomError{Room: destination}
	}
	if !e.graph.Adjacent(character.Room, destination) {
		return &IllegalMoveError{From: character.Room, To: destination}
	}

	from := character.Room
	character.Room = destination
	e.log.Debugf("%s moved %s -> %s", name, from, destination)
	e.bus.Publish(events.CharacterMovedEvent{Character: name, From: from, To: destination})
	return nil
}

// MakeSuggestion validates and resolves a suggestion. Once validation passes,
// the suggested character and weapon are relocated to the suggestion room
// unconditionally; that teleport is part of making a suggestion, not a
// side effect of its outcome. The refutation scan then walks the other
// characters in registry order and stops at the first holder of a matching
// card, checking character before weapon before room.
func (e *Engine) MakeSuggestion(suggesterName, characterName, weaponName, roomName string) (SuggestionOutcome, error) {
	suggester, ok := e.registry.FindCharacter(suggesterName)
	if !ok {
		return SuggestionOutcome{}, &UnknownEntityError{Name: suggesterName}
	}
	if suggester.Accused {
		return SuggestionOutcome{}, &CharacterBarredError{Name: suggesterName}
	}
	if suggester.Room != roomName {
		return SuggestionOutcome{}, &WrongRoomError{Current: suggester.Room, Required: roomName}
	}

	character, charOK := e.registry.FindCharacter(characterName)
	weapon, weapOK := e.registry.FindWeapon(weaponName)
	if !charOK {
		return SuggestionOutcome{}, &UnknownEntityError{Name: characterName}
	}
	if !weapOK {
		return SuggestionOutcome{}, &UnknownEntityError{Name: weaponName}
	}

	character.Room = roomName
	weapon.Room = roomName
	e.log.Debugf("suggestion relocated %s and %s to the %s", characterName, weaponName, roomName)

	outcome := SuggestionOutcome{
		Suggester: suggesterName,
		Character: characterName,
		Weapon:    weaponName,
		Room:      roomName,
	}
	for _, other := range e.registry.Characters() {
		if other.Name == suggesterName {
			continue
		}
		card, found := refutingCard(other, characterName, weaponName, roomName)
		if found {
			outcome.Refuted = true
			outcome.RefutedBy = other.Name
			outcome.Card = card
			break
		}
	}

	e.bus.Publish(events.SuggestionResolvedEvent{
		Suggester: outcome.Suggester,
		Character: outcome.Character,
		Weapon:    outcome.Weapon,
		Room:      outcome.Room,
		Refuted:   outcome.Refuted,
		RefutedBy: outcome.RefutedBy,
		Card:      outcome.Card,
	})
	return outcome, nil
}

// refutingCard checks one character's hand against the suggested triple.
// Precedence is fixed: the character card beats the weapon card beats the
// room card, so the first match by that order is the card shown.
func refutingCard(holder *entity.Character, characterName, weaponName, roomName string) (string, bool) {
	for _, candidate := range []string{characterName, weaponName, roomName} {
		if holder.HoldsCard(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// ProcessAccusation compares an accused triple against the hidden solution.
// A self-accusation is rejected before any other validation and mutates
// nothing. Any processed accusation, correct or not, transitions the accuser
// to the accused state; on a correct one the game loop halts anyway.
func (e *Engine) ProcessAccusation(accuserName, characterName, weaponName, roomName string) (AccusationOutcome, error) {
	if strings.EqualFold(accuserName, characterName) {
		return AccusationOutcome{}, &SelfAccusationError{Name: accuserName}
	}

	accuser, ok := e.registry.FindCharacter(accuserName)
	if !ok {
		return AccusationOutcome{}, &UnknownEntityError{Name: accuserName}
	}
	if accuser.Accused {
		return AccusationOutcome{}, &CharacterBarredError{Name: accuserName}
	}

	characterOK, weaponOK, roomOK := e.secret.Matches(characterName, weaponName, roomName)
	outcome := AccusationOutcome{
		Accuser: accuserName,
		Correct: characterOK && weaponOK && roomOK,
	}
	if !outcome.Correct {
		if !characterOK {
			outcome.Feedback = append(outcome.Feedback, Mismatch{ComponentCharacter, characterName})
		}
		if !weaponOK {
			outcome.Feedback = append(outcome.Feedback, Mismatch{ComponentWeapon, weaponName})
		}
		if !roomOK {
			outcome.Feedback = append(outcome.Feedback, Mismatch{ComponentRoom, roomName})
		}
	}

	accuser.Accused = true
	e.log.Debugf("%s accused (%s, %s, %s): correct=%v", accuserName, characterName, weaponName, roomName, outcome.Correct)

	e.bus.Publish(events.AccusationResolvedEvent{
		Accuser:   accuserName,
		Character: characterName,
		Weapon:    weaponName,
		Room:      roomName,
		Correct:   outcome.Correct,
	})
	return outcome, nil
}

// Withdraw removes a forfeiting character from the roster entirely. Pieces
// they already moved stay where they are.
func (e *Engine) Withdraw(name string) error {
	if !e.registry.RemoveCharacter(name) {
		return &UnknownEntityError{Name: name}
	}
	e.log.Debugf("%s withdrew from the game", name)
	e.bus.Publish(events.CharacterWithdrewEvent{Character: name})
	return nil
}
