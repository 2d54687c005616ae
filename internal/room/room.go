package room

import (
	"sync"
	"time"

	"checkers-server/internal/game"
)

type State string

const (
	StateWaiting    State = "waiting"
	StateInProgress State = "in_progress"
	StateFinished   State = "finished"
)

// MaxParticipants is the seat count of a checkers room.
const MaxParticipants = 2

// Room is one game session. All fields are guarded by mu; the manager is
// the only writer.
type Room struct {
	mu sync.Mutex

	ID           string
	Participants []string
	Board        game.Board
	CurrentTurn  string
	CreatedAt    time.Time
	State        State

	closed bool
}

func newRoom(id, creator string, now time.Time) *Room {
	return &Room{
		ID:           id,
		Participants: []string{creator},
		Board:        game.InitialBoard(),
		CreatedAt:    now,
		State:        StateWaiting,
	}
}

func (r *Room) order() game.Order {
	var o game.Order
	copy(o[:], r.Participants)
	return o
}

func (r *Room) has(participantID string) bool {
	for _, p := range r.Participants {
		if p == participantID {
			return true
		}
	}
	return false
}

func (r *Room) index(participantID string) int {
	for i, p := range r.Participants {
		if p == participantID {
			return i
		}
	}
	return -1
}

// Summary is a read-only copy of a room for diagnostics.
type Summary struct {
	ID           string     `json:"id"`
	Participants []string   `json:"participants"`
	CurrentTurn  string     `json:"currentTurn,omitempty"`
	State        State      `json:"state"`
	CreatedAt    time.Time  `json:"createdAt"`
	Board        game.Board `json:"board"`
}

func (r *Room) summaryLocked() Summary {
	return Summary{
		ID:           r.ID,
		Participants: append([]string(nil), r.Participants...),
		CurrentTurn:  r.CurrentTurn,
		State:        r.State,
		CreatedAt:    r.CreatedAt,
		Board:        r.Board,
	}
}

// Store keeps rooms and the participant → room index.
// Implementations must be safe for concurrent use.
type Store interface {
	AddRoom(r *Room) bool
	GetRoom(id string) (*Room, bool)
	DeleteRoom(id string)
	ListRooms() []*Room

	BindParticipant(participantID, roomID string)
	UnbindParticipant(participantID, roomID string)
	RoomOfParticipant(participantID string) (string, bool)
}
