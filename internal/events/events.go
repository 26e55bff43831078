package events

// Event is a marker interface for all event types.
type Event interface{}

// Listener is implemented by any component that reacts to engine outcomes
// (the notes ledger, the deduction tracker, the CLI renderer).
type Listener interface {
	HandleEvent(e Event)
}

// Manager is a minimal synchronous event bus. Listeners are notified in
// subscription order, one event at a time; the game is strictly sequential so
// no locking is needed.
type Manager struct {
	listeners []Listener
}

func NewManager() *Manager {
	return &Manager{}
}

func (m *Manager) Subscribe(l Listener) {
	m.listeners = append(m.listeners, l)
}

func (m *Manager) Publish(e Event) {
	for _, l := range m.listeners {
		l.HandleEvent(e)
	}
}

// --- Event types published by the engine ---

// SuggestionResolvedEvent carries the full outcome of one suggestion,
// including the relocation side effect that already happened.
type SuggestionResolvedEvent struct {
	Suggester string
	Character string
	Weapon    string
	Room      string
	Refuted   bool
	RefutedBy string // empty when Refuted is false
	Card      string // the evidence card shown; empty when not refuted
}

// AccusationResolvedEvent is published after an accusation is validated and
// compared against the solution.
type AccusationResolvedEvent struct {
	Accuser   string
	Character string
	Weapon    string
	Room      string
	Correct   bool
}

// CharacterMovedEvent is published after a validated move.
type CharacterMovedEvent struct {
	Character string
	From      string
	To        string
}

// CharacterWithdrewEvent is published when a character forfeits and leaves
// the roster.
type CharacterWithdrewEvent struct {
	Character string
}
