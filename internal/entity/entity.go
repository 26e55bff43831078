package entity

import "fmt"

// Character is a suspect on the board. Identity is the name; the registry
// enforces uniqueness so name-keyed lookups are safe.
type Character struct {
	Name string
	Room string
	// Accused is set after the character's accusation is processed. An
	// accused character no longer moves, suggests, or accuses, but stays
	// visible for refutation scans and room display.
	Accused bool
	// Cards are evidence card names (character, weapon, or room names) used
	// only for refutation lookups.
	Cards []string
}

// HoldsCard reports whether the character holds the named evidence card.
func (c *Character) HoldsCard(name string) bool {
	for _, card := range c.Cards {
		if card == name {
			return true
		}
	}
	return false
}

// Weapon is a weapon piece. Room is where the piece currently stands;
// suggestions relocate it.
type Weapon struct {
	Name string
	Room string
}

// DuplicateNameError reports a roster that registers the same name twice.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("duplicate name %q in registry", e.Name)
}

// Registry holds the authoritative character and weapon lists for one game
// session. Iteration order is registration order, which fixes the refutation
// scan order.
type Registry struct {
	characters []*Character
	weapons    []*Weapon
	charIndex  map[string]*Character
	weapIndex  map[string]*Weapon
}

// NewRegistry builds a registry from the given rosters. It fails fast on a
// duplicate character or weapon name; letting duplicates collide under map
// keys was a latent bug in earlier drafts of this game.
func NewRegistry(characters []*Character, weapons []*Weapon) (*Registry, error) {
	r := &Registry{
		charIndex: make(map[string]*Character, len(characters)),
		weapIndex: make(map[string]*Weapon, len(weapons)),
	}
	for _, c := range characters {
		if _, exists := r.charIndex[c.Name]; exists {
			return nil, &DuplicateNameError{Name: c.Name}
		}
		r.characters = append(r.characters, c)
		r.charIndex[c.Name] = c
	}
	for _, w := range weapons {
		if _, exists := r.weapIndex[w.Name]; exists {
			return nil, &DuplicateNameError{Name: w.Name}
		}
		r.weapons = append(r.weapons, w)
		r.weapIndex[w.Name] = w
	}
	return r, nil
}

// FindCharacter looks up a character by exact, case-sensitive name.
// Fuzzy correction of user input happens in the front end, never here.
func (r *Registry) FindCharacter(name string) (*Character, bool) {
	c, ok := r.charIndex[name]
	return c, ok
}

// FindWeapon looks up a weapon by exact, case-sensitive name.
func (r *Registry) FindWeapon(name string) (*Weapon, bool) {
	w, ok := r.weapIndex[name]
	return w, ok
}

// Characters returns the roster in registration order. The slice is shared;
// mutation of character state goes through the engine.
func (r *Registry) Characters() []*Character {
	return r.characters
}

// Weapons returns the weapon list in registration order.
func (r *Registry) Weapons() []*Weapon {
	return r.weapons
}

// CharacterNames returns all character names in registration order.
func (r *Registry) CharacterNames() []string {
	names := make([]string, len(r.characters))
	for i, c := range r.characters {
		names[i] = c.Name
	}
	return names
}

// WeaponNames returns all weapon names in registration order.
func (r *Registry) WeaponNames() []string {
	names := make([]string, len(r.weapons))
	for i, w := range r.weapons {
		names[i] = w.Name
	}
	return names
}

// RemoveCharacter drops a character from the roster entirely. Used for
// withdrawal; pieces the character already moved stay where they are.
// Returns false if no such character is registered.
func (r *Registry) RemoveCharacter(name string) bool {
	if _, ok := r.charIndex[name]; !ok {
		return false
	}
	delete(r.charIndex, name)
	for i, c := range r.characters {
		if c.Name == name {
			r.characters = append(r.characters[:i], r.characters[i+1:]...)
			break
		}
	}
	return true
}
