package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"cluedo-engine/internal/advisor"
	"cluedo-engine/internal/deduction"
	"cluedo-engine/internal/engine"
	"cluedo-engine/internal/entity"
	"cluedo-engine/internal/game"
	"cluedo-engine/internal/notes"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// C holds pre-configured color objects for printing to the console.
var C = struct {
	Yes, No, Info, Warn, Header, Prompt, Debug *color.Color
}{
	Yes:    color.New(color.FgGreen),
	No:     color.New(color.FgRed),
	Info:   color.New(color.FgCyan),
	Warn:   color.New(color.FgHiYellow),
	Header: color.New(color.FgWhite, color.Bold),
	Prompt: color.New(color.FgHiWhite),
	Debug:  color.New(color.FgMagenta),
}

// SuspectColors maps the classic suspect names to display colors. Boards with
// custom characters simply render uncolored.
var SuspectColors = map[string]*color.Color{
	"Miss Scarlett":   color.New(color.FgRed),
	"Colonel Mustard": color.New(color.FgYellow),
	"Mrs. White":      color.New(color.FgWhite),
	"Mr. Green":       color.New(color.FgGreen),
	"Mrs. Peacock":    color.New(color.FgBlue),
	"Professor Plum":  color.New(color.FgMagenta),
}

// ColorizeName returns a name as a colored string if it's a known suspect.
func ColorizeName(name string) string {
	if c, ok := SuspectColors[name]; ok {
		return c.Sprint(name)
	}
	return name
}

func (c *CLI) printHelp() {
	C.Header.Println("\n--- Commands ---")

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Command", "Description"})
	t.AppendRows([]table.Row{
		{"move <room>", "Move to an adjacent room (also: go, travel)."},
		{"suggest <character> with <weapon> in <room>", "Make a suggestion; must be in that room."},
		{"accuse <character> with <weapon> in <room>", "Make your one accusation."},
		{"path <room>", "Show the shortest route to a room."},
		{"look", "Describe your current room."},
		{"hand", "Show the evidence cards you hold."},
		{"map", "Show every room and its connections."},
		{"notes", "Display the shared case notes."},
		{"note <text>", "Add a manual note."},
		{"unnote <text>", "Remove a manual note."},
		{"odds", "Show the most likely solutions so far."},
		{"hint", "Ask the advisor what to suggest next."},
		{"help", "Show this help message."},
		{"quit", "Withdraw from the game."},
	})
	t.SetStyle(table.StyleLight)
	t.Render()
}

// renderGameState describes the current character's surroundings: the room,
// its exits, and any other pieces standing in it.
func renderGameState(session *game.Session, current *entity.Character) {
	C.Header.Printf("\n--- %s ---\n", current.Room)
	C.Info.Printf("Exits: %s\n", strings.Join(session.Graph.Neighbors(current.Room), ", "))

	var here []string
	for _, other := range session.Registry.Characters() {
		if other.Name != current.Name && other.Room == current.Room {
			here = append(here, ColorizeName(other.Name))
		}
	}
	if len(here) > 0 {
		C.Info.Printf("Also here: %s\n", strings.Join(here, ", "))
	}

	var weapons []string
	for _, w := range session.Registry.Weapons() {
		if w.Room == current.Room {
			weapons = append(weapons, w.Name)
		}
	}
	if len(weapons) > 0 {
		C.Info.Printf("Weapons: %s\n", strings.Join(weapons, ", "))
	}
}

func renderMap(session *game.Session) {
	C.Header.Println("\n--- The Manor ---")
	for _, room := range session.Graph.Rooms() {
		C.Info.Printf("%-16s -> %s\n", room, strings.Join(session.Graph.Neighbors(room), ", "))
	}
}

func renderNotes(ledger *notes.Ledger) {
	C.Header.Println("\n--- Case Notes ---")
	lines := ledger.Render()
	if len(lines) == 0 {
		C.Info.Println("Nothing noted yet.")
		return
	}
	for _, line := range lines {
		C.Info.Println(line)
	}
}

// maxOddsRows caps the probability table; a full board has 324 combinations.
const maxOddsRows = 10

func renderProbabilities(tracker *deduction.Tracker) {
	triples := tracker.Triples()
	prob := func(t deduction.Triple) float64 {
		return tracker.Probability(t.Character, t.Weapon, t.Room)
	}
	sort.SliceStable(triples, func(i, j int) bool {
		return prob(triples[i]) > prob(triples[j])
	})

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("Most Likely Solutions")
	t.AppendHeader(table.Row{"#", "Character", "Weapon", "Room", "Probability"})
	for i, triple := range triples {
		if i == maxOddsRows {
			break
		}
		t.AppendRow(table.Row{
			i + 1,
			ColorizeName(triple.Character),
			triple.Weapon,
			triple.Room,
			fmt.Sprintf("%.2f%%", prob(triple)*100),
		})
	}
	t.SetStyle(table.StyleRounded)
	t.Style().Title.Align = text.AlignCenter
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 1, Align: text.AlignRight}})
	t.Render()
}

func renderHand(current *entity.Character) {
	C.Header.Printf("\n--- %s's Hand ---\n", ColorizeName(current.Name))
	if len(current.Cards) == 0 {
		C.Info.Println("No cards.")
		return
	}
	for _, card := range current.Cards {
		C.Info.Println(" - " + ColorizeName(card))
	}
}

func renderHint(rec advisor.Recommendation) {
	C.Header.Println("\n--- Advisor ---")
	C.Info.Printf("Try: suggest %s with %s in %s (%.2f%%)\n",
		ColorizeName(rec.Character), rec.Weapon, rec.Room, rec.Probability*100)
	switch {
	case len(rec.Route) == 0:
		C.Warn.Printf("No route leads to the %s from here.\n", rec.Room)
	case len(rec.Route) == 1:
		C.Info.Println("You are already in the right room.")
	default:
		C.Info.Printf("Route: %s\n", strings.Join(rec.Route, " -> "))
	}
}

func renderSuggestion(outcome engine.SuggestionOutcome) {
	C.Info.Printf("%s suggests: %s with the %s in the %s\n",
		ColorizeName(outcome.Suggester),
		ColorizeName(outcome.Character), outcome.Weapon, outcome.Room)
	if outcome.Refuted {
		C.No.Printf("-> %s refutes the suggestion by showing %s.\n",
			ColorizeName(outcome.RefutedBy), outcome.Card)
	} else {
		C.Yes.Println("-> No one can refute the suggestion.")
	}
}

func renderAccusation(outcome engine.AccusationOutcome) {
	if outcome.Correct {
		C.Yes.Printf("The accusation is CORRECT! %s solves the case!\n", ColorizeName(outcome.Accuser))
		return
	}
	C.No.Printf("The accusation is WRONG. %s is out of the game.\n", ColorizeName(outcome.Accuser))
	for _, m := range outcome.Feedback {
		C.Warn.Printf(" - %s\n", m)
	}
}
