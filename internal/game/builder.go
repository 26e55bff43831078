package game

import (
	"math/rand"

	"cluedo-engine/internal/advisor"
	"cluedo-engine/internal/config"
	"cluedo-engine/internal/deduction"
	"cluedo-engine/internal/engine"
	"cluedo-engine/internal/entity"
	"cluedo-engine/internal/events"
	"cluedo-engine/internal/notes"
	"cluedo-engine/internal/solution"

	"github.com/sirupsen/logrus"
)

// SessionBuilder assembles a Session step by step: graph, registry, hidden
// solution, evidence deal, and the listeners on the event bus.
type SessionBuilder struct {
	cfg    *config.BoardConfig
	log    *logrus.Logger
	rand   *rand.Rand
	bus    *events.Manager
	secret *solution.Solution
}

// NewBuilder creates a builder with its required dependencies. The random
// source drives both the solution draw and the evidence deal, so a seeded
// source reproduces a full game setup.
func NewBuilder(cfg *config.BoardConfig, logger *logrus.Logger, rng *rand.Rand) *SessionBuilder {
	return &SessionBuilder{
		cfg:  cfg,
		log:  logger,
		rand: rng,
		bus:  events.NewManager(),
	}
}

// Bus exposes the event manager so callers can subscribe renderers before
// Build publishes anything.
func (b *SessionBuilder) Bus() *events.Manager {
	return b.bus
}

// WithSolution pins the hidden triple instead of drawing one. Used by tests
// and scripted scenarios.
func (b *SessionBuilder) WithSolution(s solution.Solution) *SessionBuilder {
	b.secret = &s
	return b
}

// Build constructs the session: validated graph, registry with unique names,
// solution draw (character, then weapon, then room), evidence deal, and the
// ledger/tracker subscriptions.
func (b *SessionBuilder) Build() (*Session, error) {
	graph, err := b.cfg.BuildGraph()
	if err != nil {
		return nil, err
	}

	characters, weapons := b.cfg.Roster()
	registry, err := entity.NewRegistry(characters, weapons)
	if err != nil {
		return nil, err
	}

	var secret solution.Solution
	if b.secret != nil {
		secret = *b.secret
	} else {
		secret, err = solution.Select(
			registry.CharacterNames(),
			registry.WeaponNames(),
			b.cfg.RoomNames(),
			b.rand,
		)
		if err != nil {
			return nil, err
		}
	}
	b.log.Debugf("solution selected (hidden): %s", secret.Reveal())

	ledger := notes.NewLedger()
	tracker := deduction.NewTracker(
		registry.CharacterNames(),
		registry.WeaponNames(),
		b.cfg.RoomNames(),
	)
	b.bus.Subscribe(ledger)
	b.bus.Subscribe(tracker)

	session := &Session{
		Config:   b.cfg,
		Graph:    graph,
		Registry: registry,
		Engine:   engine.New(graph, registry, secret, b.bus, b.log),
		Ledger:   ledger,
		Tracker:  tracker,
		Advisor:  advisor.New(tracker, graph, b.log),
		Bus:      b.bus,
		secret:   secret,
	}

	b.deal(session, secret)
	return session, nil
}

// deal shuffles every card name that is not part of the solution and hands
// them out round-robin in registration order. These are evidence cards for
// refutation only; they do not move any piece.
func (b *SessionBuilder) deal(s *Session, secret solution.Solution) {
	inSolution := map[string]bool{
		secret.Character(): true,
		secret.Weapon():    true,
		secret.Room():      true,
	}

	var deck []string
	for _, name := range s.Registry.CharacterNames() {
		if !inSolution[name] {
			deck = append(deck, name)
		}
	}
	for _, name := range s.Registry.WeaponNames() {
		if !inSolution[name] {
			deck = append(deck, name)
		}
	}
	for _, name := range b.cfg.RoomNames() {
		if !inSolution[name] {
			deck = append(deck, name)
		}
	}
	b.rand.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })

	characters := s.Registry.Characters()
	if len(characters) == 0 {
		return
	}
	for i, card := range deck {
		holder := characters[i%len(characters)]
		holder.Cards = append(holder.Cards, card)
	}
	for _, c := range characters {
		b.log.Debugf("%s holds: %v", c.Name, c.Cards)
	}
}
