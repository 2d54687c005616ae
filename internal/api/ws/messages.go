package ws

import (
	"encoding/json"

	"checkers-server/internal/game"
)

// Inbound actions.
const (
	ActionCreateRoom = "create-room"
	ActionJoinRoom   = "join-room"
	ActionSubmitMove = "submit-move"
)

// ActionConnected greets a new socket with the participant ID it was given.
const ActionConnected = "connected"

// Envelope is the frame every message travels in, both directions.
type Envelope struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data,omitempty"`
}

type outbound struct {
	Action string `json:"action"`
	Data   any    `json:"data"`
}

type JoinRoomRequest struct {
	RoomID string `json:"roomId"`
}

type SubmitMoveRequest struct {
	RoomID string   `json:"roomId"`
	From   game.Pos `json:"from"`
	To     game.Pos `json:"to"`
}

type Connected struct {
	ParticipantID string `json:"participantId"`
}
