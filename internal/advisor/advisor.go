package advisor

import (
	"cluedo-engine/internal/board"
	"cluedo-engine/internal/deduction"
	"cluedo-engine/internal/entity"

	"github.com/sirupsen/logrus"
)

// Recommendation is the advisor's pick for a character's next suggestion:
// the most promising triple and the route to its room.
type Recommendation struct {
	Character   string
	Weapon      string
	Room        string
	Probability float64

	// Route runs from the character's current room to the recommended room.
	// Empty when the room is unreachable; a single element means they are
	// already there.
	Route []string
}

// Advisor turns the tracker's probability estimates into concrete play
// advice. It only reads session state and never mutates it.
type Advisor struct {
	tracker *deduction.Tracker
	graph   *board.Graph
	log     *logrus.Logger
}

func New(tracker *deduction.Tracker, graph *board.Graph, log *logrus.Logger) *Advisor {
	return &Advisor{
		tracker: tracker,
		graph:   graph,
		log:     log,
	}
}

// Recommend picks the highest-probability triple whose cards the asking
// character does not hold; a card in hand cannot be in the solution, so
// suggesting it wastes the turn. Ties keep the earliest triple so advice is
// deterministic. If the hand somehow excludes everything, the filter is
// dropped rather than returning nothing.
func (a *Advisor) Recommend(asker *entity.Character) Recommendation {
	best, ok := a.pickBest(asker, true)
	if !ok {
		best, _ = a.pickBest(asker, false)
	}

	rec := Recommendation{
		Character:   best.Character,
		Weapon:      best.Weapon,
		Room:        best.Room,
		Probability: a.tracker.Probability(best.Character, best.Weapon, best.Room),
	}
	if path, reachable := a.graph.ShortestPath(asker.Room, best.Room); reachable {
		rec.Route = path
	}
	a.log.Debugf("advising %s: (%s, %s, %s) at %.4f",
		asker.Name, rec.Character, rec.Weapon, rec.Room, rec.Probability)
	return rec
}

func (a *Advisor) pickBest(asker *entity.Character, filterHand bool) (deduction.Triple, bool) {
	var best deduction.Triple
	bestProb := -1.0
	for _, t := range a.tracker.Triples() {
		if filterHand && (asker.HoldsCard(t.Character) || asker.HoldsCard(t.Weapon) || asker.HoldsCard(t.Room)) {
			continue
		}
		if p := a.tracker.Probability(t.Character, t.Weapon, t.Room); p > bestProb {
			best = t
			bestProb = p
		}
	}
	return best, bestProb >= 0
}
