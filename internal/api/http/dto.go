package http

import (
	"checkers-server/internal/game"
	"checkers-server/internal/room"
)

// HealthResponse is returned by /healthz.
type HealthResponse struct {
	Status  string `json:"status"`
	Rooms   int    `json:"rooms"`
	Clients int    `json:"clients"`
}

// RoomsResponse lists every live room for /debug/rooms.
type RoomsResponse struct {
	Count int            `json:"count"`
	Rooms []room.Summary `json:"rooms"`
}

// PossibleMovesResponse lists the legal moves of one participant.
type PossibleMovesResponse struct {
	RoomID        string      `json:"roomId"`
	ParticipantID string      `json:"participantId"`
	Moves         []game.Move `json:"moves"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
