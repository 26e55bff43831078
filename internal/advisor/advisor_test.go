package advisor

import (
	"io"
	"reflect"
	"testing"

	"cluedo-engine/internal/board"
	"cluedo-engine/internal/deduction"
	"cluedo-engine/internal/entity"

	"github.com/sirupsen/logrus"
)

func setupAdvisor(t *testing.T) (*Advisor, *deduction.Tracker) {
	t.Helper()
	g := board.NewGraph()
	for _, room := range []string{"Kitchen", "Ballroom", "Library"} {
		g.AddRoom(room)
	}
	for _, edge := range [][2]string{{"Kitchen", "Ballroom"}, {"Ballroom", "Library"}} {
		if err := g.Connect(edge[0], edge[1]); err != nil {
			t.Fatalf("Connect failed: %v", err)
		}
	}

	tracker := deduction.NewTracker(
		[]string{"Miss Scarlett", "Colonel Mustard"},
		[]string{"Rope", "Candlestick"},
		[]string{"Kitchen", "Library"},
	)

	log := logrus.New()
	log.SetOutput(io.Discard)
	return New(tracker, g, log), tracker
}

func TestRecommendSkipsCardsInHand(t *testing.T) {
	adv, _ := setupAdvisor(t)

	// Holding a card rules it out of the solution, so the advisor should
	// never recommend suggesting it.
	asker := &entity.Character{
		Name:  "Professor Plum",
		Room:  "Kitchen",
		Cards: []string{"Miss Scarlett", "Rope"},
	}
	rec := adv.Recommend(asker)
	if rec.Character != "Colonel Mustard" || rec.Weapon != "Candlestick" {
		t.Errorf("expected the hand to be excluded, got (%s, %s, %s)",
			rec.Character, rec.Weapon, rec.Room)
	}
}

func TestRecommendFollowsTheTracker(t *testing.T) {
	adv, tracker := setupAdvisor(t)

	// An unrefuted suggestion doubles its triple's weight; the advisor
	// should chase it.
	if err := tracker.Update("Colonel Mustard", "Candlestick", "Library", false); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	asker := &entity.Character{Name: "Professor Plum", Room: "Kitchen"}
	rec := adv.Recommend(asker)
	if rec.Character != "Colonel Mustard" || rec.Weapon != "Candlestick" || rec.Room != "Library" {
		t.Errorf("expected the boosted triple, got (%s, %s, %s)",
			rec.Character, rec.Weapon, rec.Room)
	}
	if rec.Probability <= 1.0/8 {
		t.Errorf("expected the boosted probability above uniform, got %f", rec.Probability)
	}
}

func TestRecommendIncludesTheRoute(t *testing.T) {
	adv, tracker := setupAdvisor(t)
	if err := tracker.Update("Miss Scarlett", "Rope", "Kitchen", false); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	asker := &entity.Character{Name: "Professor Plum", Room: "Library"}
	rec := adv.Recommend(asker)
	want := []string{"Library", "Ballroom", "Kitchen"}
	if !reflect.DeepEqual(rec.Route, want) {
		t.Errorf("expected route %v, got %v", want, rec.Route)
	}
}

func TestRecommendFallsBackWhenHandExcludesEverything(t *testing.T) {
	adv, _ := setupAdvisor(t)

	asker := &entity.Character{
		Name:  "Professor Plum",
		Room:  "Kitchen",
		Cards: []string{"Miss Scarlett", "Colonel Mustard"},
	}
	rec := adv.Recommend(asker)
	if rec.Character == "" || rec.Weapon == "" || rec.Room == "" {
		t.Errorf("expected a recommendation despite the exclusions, got %+v", rec)
	}
}
