package realtime

import "testing"

func TestNewRoomStore(t *testing.T) {
	s := NewRoomStore[string, string]()
	if s == nil {
		t.Fatal("NewRoomStore returned nil")
	}
	if s.Len() != 0 {
		t.Errorf("Len %d, want 0", s.Len())
	}
}

func TestRoomStore_Create_Get(t *testing.T) {
	s := NewRoomStore[string, string]()
	s.Create("room1", "state1")
	room, ok := s.Get("room1")
	if !ok {
		t.Fatal("Get returned false for existing room")
	}
	if room.ID != "room1" {
		t.Errorf("room ID %q, want room1", room.ID)
	}
	if room.State != "state1" {
		t.Errorf("room State %q, want state1", room.State)
	}

	_, ok = s.Get("nonexistent")
	if ok {
		t.Error("Get should return false for missing ID")
	}
}

func TestRoomStore_Delete(t *testing.T) {
	s := NewRoomStore[string, string]()
	s.Create("r1", "x")
	if !s.Delete("r1") {
		t.Fatal("Delete returned false for existing room")
	}
	if s.Delete("r1") {
		t.Error("second Delete should return false")
	}
	if s.Len() != 0 {
		t.Errorf("Len %d, want 0", s.Len())
	}
}

func TestRoomStore_Publish(t *testing.T) {
	s := NewRoomStore[string, string]()
	s.Create("r1", "x")
	hub, ok := s.Broadcaster("r1")
	if !ok {
		t.Fatal("Broadcaster returned false for existing room")
	}
	ch := hub.Subscribe()
	defer hub.Unsubscribe(ch)

	s.Publish("r1", "event1")
	got := <-ch
	if got != "event1" {
		t.Errorf("got %q, want event1", got)
	}
}

func TestRoomStore_PublishUnknownRoom(t *testing.T) {
	s := NewRoomStore[string, string]()
	s.Publish("nonexistent", "event")
	if _, ok := s.Broadcaster("nonexistent"); ok {
		t.Error("Broadcaster should not create rooms")
	}
	if s.Len() != 0 {
		t.Errorf("Len %d, want 0", s.Len())
	}
}

func TestRoomStore_DeleteClosesSubscribers(t *testing.T) {
	s := NewRoomStore[string, string]()
	s.Create("r1", "x")
	hub, _ := s.Broadcaster("r1")
	ch := hub.Subscribe()

	s.Delete("r1")
	if _, open := <-ch; open {
		t.Fatal("subscriber channel still open after Delete")
	}
	hub.Unsubscribe(ch)
}
