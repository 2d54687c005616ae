package ws

import "checkers-server/internal/game"

// RoomManager is the session store as seen by the transport.
type RoomManager interface {
	CreateRoom(participantID string) (string, error)
	JoinRoom(roomID, participantID string) error
	Move(roomID, participantID string, from, to game.Pos) error
	Leave(participantID string) bool
}
