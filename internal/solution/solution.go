package solution

import (
	"fmt"
	"math/rand"
	"strings"
)

// EmptyPoolError reports a selection attempt over an empty category pool.
type EmptyPoolError struct {
	Pool string
}

func (e *EmptyPoolError) Error() string {
	return fmt.Sprintf("cannot select a solution: the %s pool is empty", e.Pool)
}

// Solution is the hidden (character, weapon, room) triple. It is selected once
// at game start and never mutated; the fields are unexported so nothing
// outside this package can rewrite them.
type Solution struct {
	character string
	weapon    string
	room      string
}

func (s Solution) Character() string { return s.character }
func (s Solution) Weapon() string    { return s.weapon }
func (s Solution) Room() string      { return s.room }

// Matches compares an accused triple against the solution. Comparison is
// case-insensitive on every component.
func (s Solution) Matches(character, weapon, room string) (characterOK, weaponOK, roomOK bool) {
	characterOK = strings.EqualFold(character, s.character)
	weaponOK = strings.EqualFold(weapon, s.weapon)
	roomOK = strings.EqualFold(room, s.room)
	return
}

// Reveal formats the triple for the debug reveal flag. Gameplay code never
// calls this.
func (s Solution) Reveal() string {
	return fmt.Sprintf("%s with the %s in the %s", s.character, s.weapon, s.room)
}

// Fixed builds a known solution. Intended for tests and scripted scenarios;
// live games go through Select.
func Fixed(character, weapon, room string) Solution {
	return Solution{character: character, weapon: weapon, room: room}
}

// Select draws the hidden triple from the given pools using rng. Each
// category is drawn independently and in a fixed order (character, then
// weapon, then room) so a seeded rng reproduces the same triple.
func Select(characters, weapons, rooms []string, rng *rand.Rand) (Solution, error) {
	switch {
	case len(characters) == 0:
		return Solution{}, &EmptyPoolError{Pool: "character"}
	case len(weapons) == 0:
		return Solution{}, &EmptyPoolError{Pool: "weapon"}
	case len(rooms) == 0:
		return Solution{}, &EmptyPoolError{Pool: "room"}
	}
	return Solution{
		character: characters[rng.Intn(len(characters))],
		weapon:    weapons[rng.Intn(len(weapons))],
		room:      rooms[rng.Intn(len(rooms))],
	}, nil
}
