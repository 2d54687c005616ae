package http

import (
	"errors"
	"net/http"

	"checkers-server/internal/api/ws"
	"checkers-server/internal/game"
	"checkers-server/internal/room"

	"github.com/gin-gonic/gin"
)

// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HealthHandler(rm *room.Manager, hub *ws.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, HealthResponse{
			Status:  "ok",
			Rooms:   rm.Count(),
			Clients: hub.ClientCount(),
		})
	}
}

// @Summary List live rooms
// @Description Snapshot of every room with its participants, turn and board
// @Tags Debug
// @Produce json
// @Success 200 {object} RoomsResponse
// @Router /debug/rooms [get]
func DebugRoomsHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rooms := rm.Rooms()
		c.JSON(http.StatusOK, RoomsResponse{Count: len(rooms), Rooms: rooms})
	}
}

// @Summary Get possible moves for a participant
// @Description Returns every step and capture the participant could play now
// @Tags Game
// @Produce json
// @Param roomId query string true "Room ID"
// @Param participantId query string true "Participant ID"
// @Success 200 {object} PossibleMovesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /possible-moves [get]
func PossibleMovesHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomID := c.Query("roomId")
		participantID := c.Query("participantId")
		if roomID == "" || participantID == "" {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "roomId and participantId are required"})
			return
		}

		moves, err := rm.LegalMoves(roomID, participantID)
		switch {
		case errors.Is(err, room.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		case errors.Is(err, room.ErrInvalidParticipant):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "participant not in room"})
			return
		case err != nil:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
			return
		}
		if moves == nil {
			moves = []game.Move{}
		}
		c.JSON(http.StatusOK, PossibleMovesResponse{
			RoomID:        roomID,
			ParticipantID: participantID,
			Moves:         moves,
		})
	}
}
