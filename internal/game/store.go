package game

import (
	"herohud/pkg/realtime"
)

// Store holds sessions and delegates to realtime.RoomStore for lookup and broadcast.
type Store struct {
	r     *realtime.RoomStore[*Session, Update]
	rules ProgressionRules
}

// NewStore creates an in-memory session store. Every session it creates uses rules.
func NewStore(rules ProgressionRules) *Store {
	return &Store{
		r:     realtime.NewRoomStore[*Session, Update](),
		rules: rules,
	}
}

// CreateSession starts a session and registers its broadcaster. Every
// state-changing command on the session is published to it.
func (s *Store) CreateSession() *Session {
	sess := NewSession(s.rules)
	sess.publish = func(u Update) { s.r.Publish(sess.ID, u) }
	s.r.Create(sess.ID, sess)
	return sess
}

// GetSession returns a session by ID if it exists.
func (s *Store) GetSession(id string) (*Session, bool) {
	room, ok := s.r.Get(id)
	if !ok {
		return nil, false
	}
	return room.State, true
}

// EndSession discards a session and ends its live subscriptions.
func (s *Store) EndSession(id string) bool {
	return s.r.Delete(id)
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	return s.r.Len()
}

// Broadcaster returns the update broadcaster for a session.
func (s *Store) Broadcaster(id string) (*realtime.Broadcaster[Update], bool) {
	return s.r.Broadcaster(id)
}
