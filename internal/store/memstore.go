package store

import (
	"sync"

	"checkers-server/internal/room"
)

// MemoryStore keeps rooms in process memory. Nothing survives a restart.
type MemoryStore struct {
	mu           sync.RWMutex
	rooms        map[string]*room.Room
	participants map[string]string // participant ID -> room ID
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		rooms:        map[string]*room.Room{},
		participants: map[string]string{},
	}
}

// AddRoom inserts r unless its ID is already taken.
func (m *MemoryStore) AddRoom(r *room.Room) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, taken := m.rooms[r.ID]; taken {
		return false
	}
	m.rooms[r.ID] = r
	return true
}

func (m *MemoryStore) GetRoom(id string) (*room.Room, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.rooms[id]
	return r, ok
}

func (m *MemoryStore) DeleteRoom(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rooms, id)
}

func (m *MemoryStore) ListRooms() []*room.Room {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*room.Room, 0, len(m.rooms))
	for _, r := range m.rooms {
		out = append(out, r)
	}
	return out
}

func (m *MemoryStore) BindParticipant(participantID, roomID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.participants[participantID] = roomID
}

// UnbindParticipant drops the index entry only if it still points at roomID.
func (m *MemoryStore) UnbindParticipant(participantID, roomID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.participants[participantID] == roomID {
		delete(m.participants, participantID)
	}
}

func (m *MemoryStore) RoomOfParticipant(participantID string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.participants[participantID]
	return id, ok
}
