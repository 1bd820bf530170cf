package game

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Update is what a session hands to renderers after each action.
type Update struct {
	Command  CommandKind `json:"command"`
	Snapshot Snapshot    `json:"snapshot"`
	Events   []Event     `json:"events,omitempty"`
	Error    string      `json:"error,omitempty"`
}

// Session owns one PlayerState for the lifetime of a play session and runs
// each action as command, rules pass, snapshot.
type Session struct {
	mu        sync.Mutex
	ID        string
	CreatedAt time.Time
	rules     ProgressionRules
	state     *PlayerState
	publish   func(Update)
}

// NewSession starts a session with a default player.
func NewSession(rules ProgressionRules) *Session {
	return &Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		rules:     rules,
		state:     NewPlayerState(),
	}
}

// Apply executes cmd and, when it changed state, runs the rules pass. A
// failed command leaves state untouched and skips the pass. Reset skips it
// too so the returned snapshot is the fresh default.
//
// Updates of state-changing commands are published before the session is
// unlocked, so subscribers see them in the order they were applied.
func (s *Session) Apply(cmd Command) (Update, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := cmd.Execute(s.state); err != nil {
		return Update{Command: cmd.Kind, Snapshot: s.state.Snapshot(), Error: err.Error()}, err
	}
	var events []Event
	if cmd.Mutates() && cmd.Kind != CmdReset {
		events = s.rules.Apply(s.state)
	}
	update := Update{Command: cmd.Kind, Snapshot: s.state.Snapshot(), Events: events}
	if cmd.Mutates() && s.publish != nil {
		s.publish(update)
	}
	return update, nil
}

// Snapshot returns a consistent view of the current player.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Snapshot()
}
