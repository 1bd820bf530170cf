package realtime

import "sync"

// Room holds state and a broadcaster for one room.
type Room[T, E any] struct {
	ID    string
	State T
	hub   *Broadcaster[E]
}

// RoomStore manages rooms and their broadcasters. T is the room state, E the
// value published to subscribers.
type RoomStore[T, E any] struct {
	mu    sync.RWMutex
	rooms map[string]*Room[T, E]
}

// NewRoomStore creates an empty room store.
func NewRoomStore[T, E any]() *RoomStore[T, E] {
	return &RoomStore[T, E]{
		rooms: make(map[string]*Room[T, E]),
	}
}

// Create adds a room with the given id and state, and a new Broadcaster.
func (s *RoomStore[T, E]) Create(id string, state T) *Room[T, E] {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := &Room[T, E]{ID: id, State: state, hub: NewBroadcaster[E]()}
	s.rooms[id] = r
	return r
}

// Get returns the room by ID if it exists.
func (s *RoomStore[T, E]) Get(id string) (*Room[T, E], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.rooms[id]
	return r, ok
}

// Delete drops the room and closes its broadcaster, which ends every live
// subscription.
func (s *RoomStore[T, E]) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rooms[id]
	if !ok {
		return false
	}
	delete(s.rooms, id)
	if r.hub != nil {
		r.hub.Close()
	}
	return true
}

// Len returns the number of rooms.
func (s *RoomStore[T, E]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rooms)
}

// Publish notifies subscribers of the room's broadcaster.
func (s *RoomStore[T, E]) Publish(id string, v E) {
	hub, ok := s.Broadcaster(id)
	if !ok {
		return
	}
	hub.Publish(v)
}

// Broadcaster returns the broadcaster for an existing room.
func (s *RoomStore[T, E]) Broadcaster(id string) (*Broadcaster[E], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rooms[id]
	if !ok {
		return nil, false
	}
	if r.hub == nil {
		r.hub = NewBroadcaster[E]()
	}
	return r.hub, true
}
