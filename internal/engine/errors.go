package engine

import "fmt"

// WrongRoomError rejects a suggestion made from a room other than the one
// declared. The message states both rooms so the front end can render it
// verbatim.
type WrongRoomError struct {
	Current  string
	Required string
}

func (e *WrongRoomError) Error() string {
	return fmt.Sprintf("you are currently in the '%s' and must be in the '%s' to suggest it",
		e.Current, e.Required)
}

// UnknownEntityError rejects an action naming a character or weapon that is
// not in the registry. Character and weapon existence are checked together,
// so a single kind covers both.
type UnknownEntityError struct {
	Name string
}

func (e *UnknownEntityError) Error() string {
	return fmt.Sprintf("character or weapon %q does not exist", e.Name)
}

// SelfAccusationError rejects an accusation where the accuser names
// themselves. No state changes; the caller typically skips the turn.
type SelfAccusationError struct {
	Name string
}

func (e *SelfAccusationError) Error() string {
	return fmt.Sprintf("%s, you cannot accuse yourself", e.Name)
}

// CharacterBarredError rejects a move, suggestion, or accusation by a
// character who already made an accusation.
type CharacterBarredError struct {
	Name string
}

func (e *CharacterBarredError) Error() string {
	return fmt.Sprintf("%s has already made an accusation and may no longer act", e.Name)
}

// IllegalMoveError rejects a move to a room that is not adjacent to the
// character's current room.
type IllegalMoveError struct {
	From string
	To   string
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("cannot move from '%s' to '%s': the rooms are not connected", e.From, e.To)
}
