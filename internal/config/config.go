package config

import (
	"encoding/json"
	"fmt"
	"os"

	"cluedo-engine/internal/board"
	"cluedo-engine/internal/entity"
)

// Connection names one edge endpoint in the board definition.
type Connection struct {
	To string `json:"to"`
}

// RoomDef declares one room and its outgoing connections. Connections are
// declared one-way in the file; the graph makes them symmetric.
type RoomDef struct {
	Name        string       `json:"name"`
	Connections []Connection `json:"connections"`
}

// CharacterDef declares a character and their starting room.
type CharacterDef struct {
	Name string `json:"name"`
	Room string `json:"room"`
}

// BoardConfig holds the static definitions for one game: the room topology
// and the character/weapon rosters.
type BoardConfig struct {
	Rooms      []RoomDef      `json:"rooms"`
	Characters []CharacterDef `json:"characters"`
	Weapons    []string       `json:"weapons"`
}

// Load reads and validates a board definition. A definition that references
// an undeclared room (in a connection or a starting position) fails fast
// rather than constructing a partial graph.
func Load(path string) (*BoardConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg BoardConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing board definition %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid board definition %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *BoardConfig) validate() error {
	if len(c.Rooms) == 0 {
		return fmt.Errorf("no rooms declared")
	}
	declared := make(map[string]bool, len(c.Rooms))
	for _, room := range c.Rooms {
		if declared[room.Name] {
			return fmt.Errorf("room %q declared twice", room.Name)
		}
		declared[room.Name] = true
	}
	for _, room := range c.Rooms {
		for _, conn := range room.Connections {
			if !declared[conn.To] {
				return fmt.Errorf("room %q connects to %w", room.Name, &board.UnknownRoomError{Room: conn.To})
			}
		}
	}
	for _, character := range c.Characters {
		if !declared[character.Room] {
			return fmt.Errorf("character %q starts in %w", character.Name, &board.UnknownRoomError{Room: character.Room})
		}
	}
	return nil
}

// BuildGraph constructs the room graph from the definition. Load already
// validated every reference, so edge insertion cannot fail here.
func (c *BoardConfig) BuildGraph() (*board.Graph, error) {
	g := board.NewGraph()
	for _, room := range c.Rooms {
		g.AddRoom(room.Name)
	}
	for _, room := range c.Rooms {
		for _, conn := range room.Connections {
			if err := g.Connect(room.Name, conn.To); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// Roster materializes the character and weapon lists in declaration order.
// Weapons have no declared position, so they are scattered round-robin over
// the declared rooms.
func (c *BoardConfig) Roster() ([]*entity.Character, []*entity.Weapon) {
	characters := make([]*entity.Character, len(c.Characters))
	for i, def := range c.Characters {
		characters[i] = &entity.Character{Name: def.Name, Room: def.Room}
	}
	weapons := make([]*entity.Weapon, len(c.Weapons))
	for i, name := range c.Weapons {
		weapons[i] = &entity.Weapon{Name: name, Room: c.Rooms[i%len(c.Rooms)].Name}
	}
	return characters, weapons
}

// RoomNames returns all declared room names in declaration order.
func (c *BoardConfig) RoomNames() []string {
	names := make([]string, len(c.Rooms))
	for i, room := range c.Rooms {
		names[i] = room.Name
	}
	return names
}
