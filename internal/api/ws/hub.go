package ws

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"checkers-server/internal/room"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBuffer     = 64
)

// Hub owns one websocket per participant. It turns inbound frames into
// RoomManager calls and implements room.Broadcaster for the way back.
type Hub struct {
	mu       sync.RWMutex
	clients  map[string]*Client
	manager  RoomManager
	log      *zap.Logger
	upgrader websocket.Upgrader
}

type Client struct {
	id   string
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

func NewHub(log *zap.Logger, allowedOrigins []string) *Hub {
	if log == nil {
		log = zap.NewNop()
	}
	h := &Hub{
		clients: make(map[string]*Client),
		log:     log,
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     originChecker(allowedOrigins),
	}
	return h
}

// SetRoomManager must be called before the hub serves connections.
func (h *Hub) SetRoomManager(rm RoomManager) {
	h.manager = rm
}

func originChecker(allowed []string) func(*http.Request) bool {
	set := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		if o == "*" {
			return func(*http.Request) bool { return true }
		}
		set[o] = struct{}{}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		_, ok := set[origin]
		return ok
	}
}

// ServeWS upgrades the request and blocks until the socket goes away.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("ws_upgrade_failed", zap.Error(err))
		return
	}

	c := &Client{
		id:   uuid.NewString(),
		hub:  h,
		conn: conn,
		send: make(chan []byte, sendBuffer),
	}
	h.mu.Lock()
	h.clients[c.id] = c
	h.mu.Unlock()
	h.log.Info("ws_connected", zap.String("participant_id", c.id), zap.String("remote", r.RemoteAddr))

	go c.writePump()
	h.send([]string{c.id}, ActionConnected, Connected{ParticipantID: c.id})
	c.readPump()
}

// Broadcast implements room.Broadcaster. Slow clients are dropped rather
// than waited on.
func (h *Hub) Broadcast(to []string, kind room.Kind, payload any) {
	h.send(to, string(kind), payload)
}

func (h *Hub) send(to []string, action string, payload any) {
	msg, err := json.Marshal(outbound{Action: action, Data: payload})
	if err != nil {
		h.log.Error("ws_marshal_failed", zap.String("action", action), zap.Error(err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, id := range to {
		c, ok := h.clients[id]
		if !ok {
			continue
		}
		select {
		case c.send <- msg:
		default:
			h.log.Warn("ws_client_too_slow", zap.String("participant_id", id))
			h.removeLocked(c)
		}
	}
}

// ClientCount returns the number of open sockets.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[c.id] == c {
		h.removeLocked(c)
	}
}

func (h *Hub) removeLocked(c *Client) {
	delete(h.clients, c.id)
	close(c.send)
}

func (h *Hub) dispatch(c *Client, env Envelope) {
	log := h.log.With(zap.String("participant_id", c.id), zap.String("action", env.Action))

	switch env.Action {
	case ActionCreateRoom:
		if _, err := h.manager.CreateRoom(c.id); err != nil {
			log.Warn("create_room_failed", zap.Error(err))
		}
	case ActionJoinRoom:
		var req JoinRoomRequest
		if err := json.Unmarshal(env.Data, &req); err != nil {
			log.Warn("ws_bad_payload", zap.Error(err))
			return
		}
		// The participant already got a rejected notification on failure.
		if err := h.manager.JoinRoom(req.RoomID, c.id); err != nil {
			log.Debug("join_refused", zap.String("room_id", req.RoomID), zap.Error(err))
		}
	case ActionSubmitMove:
		var req SubmitMoveRequest
		if err := json.Unmarshal(env.Data, &req); err != nil {
			log.Warn("ws_bad_payload", zap.Error(err))
			return
		}
		if err := h.manager.Move(req.RoomID, c.id, req.From, req.To); err != nil {
			log.Debug("move_ignored", zap.String("room_id", req.RoomID), zap.Error(err))
		}
	default:
		log.Warn("ws_unknown_action")
	}
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister(c)
		_ = c.conn.Close()
		if c.hub.manager.Leave(c.id) {
			c.hub.log.Info("ws_left_room", zap.String("participant_id", c.id))
		}
		c.hub.log.Info("ws_disconnected", zap.String("participant_id", c.id))
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.hub.log.Warn("ws_read_failed", zap.String("participant_id", c.id), zap.Error(err))
			}
			return
		}
		var env Envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			c.hub.log.Warn("ws_bad_frame", zap.String("participant_id", c.id), zap.Error(err))
			continue
		}
		c.hub.dispatch(c, env)
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
