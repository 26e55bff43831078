package cli

import (
	"fmt"
	"io"
	"math/rand"
	"strings"

	"cluedo-engine/internal/config"
	"cluedo-engine/internal/entity"
	"cluedo-engine/internal/game"

	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"
)

// CLI manages all command-line interactions.
type CLI struct {
	log  *logrus.Logger
	line *liner.State
}

// NewCLI creates a new command-line interface manager.
func NewCLI(log *logrus.Logger) *CLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &CLI{
		log:  log,
		line: line,
	}
}

// Run builds a session from the board config and drives the turn loop until
// a correct accusation, a stalemate, or every character has withdrawn.
func (c *CLI) Run(cfg *config.BoardConfig, rng *rand.Rand, reveal bool) error {
	defer c.line.Close()

	session, err := game.NewBuilder(cfg, c.log, rng).Build()
	if err != nil {
		return fmt.Errorf("failed to build game: %w", err)
	}
	if reveal {
		C.Debug.Printf("[reveal] %s\n", session.RevealSolution())
	}

	C.Header.Println("--- A Murder Has Been Committed ---")
	C.Info.Println("Find the culprit, the weapon, and the room. Type 'help' for commands.")

	for {
		if session.Stalemate() {
			C.Warn.Println("\nEvery investigator has spent their accusation. The case goes cold.")
			C.Info.Printf("It was %s.\n", session.RevealSolution())
			return nil
		}
		current := session.CurrentCharacter()
		if current == nil {
			C.Warn.Println("\nEveryone has left the manor. The case goes unsolved.")
			return nil
		}
		if current.Accused {
			session.AdvanceTurn()
			continue
		}

		input, err := c.line.Prompt(fmt.Sprintf("(%s | %s) ", current.Name, current.Room))
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				C.Info.Println("\nGoodbye!")
				return nil
			}
			return fmt.Errorf("error reading line: %w", err)
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		c.line.AppendHistory(input)

		action, args := parseCommand(input)
		switch action {
		case "move":
			c.handleMove(session, current, args["room"])
		case "suggest":
			c.handleSuggest(session, current, args)
		case "accuse":
			if done := c.handleAccuse(session, current, args); done {
				return nil
			}
		case "path":
			c.handlePath(session, current, args["room"])
		case "look":
			renderGameState(session, current)
		case "hand":
			renderHand(current)
		case "map":
			renderMap(session)
		case "notes":
			renderNotes(session.Ledger)
		case "note":
			session.Ledger.AddManual(args["text"])
			C.Info.Println("Noted.")
		case "unnote":
			if session.Ledger.RemoveManual(args["text"]) > 0 {
				C.Info.Println("Removed.")
			} else {
				C.Warn.Println("No such note.")
			}
		case "odds":
			renderProbabilities(session.Tracker)
		case "hint":
			renderHint(session.Advisor.Recommend(current))
		case "help":
			c.printHelp()
		case "quit":
			C.Info.Printf("%s withdraws from the investigation.\n", ColorizeName(current.Name))
			if err := session.Withdraw(current.Name); err != nil {
				C.Warn.Println(err)
			}
		default:
			C.Warn.Println("I don't understand that. Type 'help' for a list of commands.")
		}
	}
}

func (c *CLI) handleMove(session *game.Session, current *entity.Character, room string) {
	room = correctInput(room, session.Config.RoomNames())
	if err := session.Engine.MoveCharacter(current.Name, room); err != nil {
		C.Warn.Println(err)
		return
	}
	C.Info.Printf("%s moves to the %s.\n", ColorizeName(current.Name), room)
	session.AdvanceTurn()
}

func (c *CLI) handleSuggest(session *game.Session, current *entity.Character, args map[string]string) {
	character := correctInput(args["character"], session.Registry.CharacterNames())
	weapon := correctInput(args["weapon"], session.Registry.WeaponNames())
	room := correctInput(args["room"], session.Config.RoomNames())

	outcome, err := session.Engine.MakeSuggestion(current.Name, character, weapon, room)
	if err != nil {
		C.Warn.Println(err)
		return
	}
	renderSuggestion(outcome)
	session.AdvanceTurn()
}

// handleAccuse resolves an accusation and reports whether the game is over.
func (c *CLI) handleAccuse(session *game.Session, current *entity.Character, args map[string]string) bool {
	character := correctInput(args["character"], session.Registry.CharacterNames())
	weapon := correctInput(args["weapon"], session.Registry.WeaponNames())
	room := correctInput(args["room"], session.Config.RoomNames())

	outcome, err := session.Engine.ProcessAccusation(current.Name, character, weapon, room)
	if err != nil {
		C.Warn.Println(err)
		return false
	}
	renderAccusation(outcome)
	if outcome.Correct {
		C.Info.Printf("It was %s.\n", session.RevealSolution())
		return true
	}
	session.AdvanceTurn()
	return false
}

func (c *CLI) handlePath(session *game.Session, current *entity.Character, room string) {
	room = correctInput(room, session.Config.RoomNames())
	path, ok := session.Graph.ShortestPath(current.Room, room)
	if !ok {
		C.Warn.Printf("There is no route from the %s to '%s'.\n", current.Room, room)
		return
	}
	C.Info.Printf("Route: %s (%d moves)\n", strings.Join(path, " -> "), len(path)-1)
}
