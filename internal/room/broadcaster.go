package room

import "checkers-server/internal/game"

// Kind names an outbound notification.
type Kind string

const (
	KindRoomCreated       Kind = "room-created"
	KindParticipantJoined Kind = "participant-joined"
	KindBoardChanged      Kind = "board-changed"
	KindGameOver          Kind = "game-over"
	KindRejected          Kind = "rejected"
)

// ReasonOpponentLeft marks a game won by forfeit.
const ReasonOpponentLeft = "opponent-left"

type RoomCreated struct {
	RoomID string `json:"roomId"`
}

type ParticipantJoined struct {
	RoomID       string   `json:"roomId"`
	Participants []string `json:"participants"`
}

type BoardChanged struct {
	Board       game.Board `json:"board"`
	CurrentTurn string     `json:"currentTurn"`
}

type GameOver struct {
	Winner string `json:"winner"`
	Reason string `json:"reason,omitempty"`
}

type Rejected struct {
	Message string `json:"message"`
}

// Broadcaster delivers notifications to participants. It is called while a
// room is locked, so it must not block or call back into the Manager.
type Broadcaster interface {
	Broadcast(to []string, kind Kind, payload any)
}
