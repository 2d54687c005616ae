package room

import (
	"context"
	"errors"
	"fmt"
	"time"

	"checkers-server/internal/game"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultTTL           = 30 * time.Minute
	DefaultSweepInterval = 5 * time.Minute

	idAttempts = 5
)

var (
	ErrRoomNotFound       = errors.New("room not found")
	ErrRoomFull           = errors.New("room is full")
	ErrNotYourTurn        = errors.New("not your turn")
	ErrInvalidParticipant = errors.New("participant id required")
	ErrAlreadySeated      = errors.New("already seated in another room")
)

// Manager is the authoritative session store. Operations on one room are
// serialized by that room's lock; different rooms proceed independently.
type Manager struct {
	store Store
	out   Broadcaster
	log   *zap.Logger

	now           func() time.Time
	newID         func() string
	ttl           time.Duration
	sweepInterval time.Duration
}

type Option func(*Manager)

func WithLogger(l *zap.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.log = l
		}
	}
}

// WithClock replaces time.Now, mostly for expiry tests.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

func WithIDGenerator(gen func() string) Option {
	return func(m *Manager) { m.newID = gen }
}

// WithExpiry sets how old a room may get and how often Run sweeps.
func WithExpiry(ttl, sweepInterval time.Duration) Option {
	return func(m *Manager) {
		if ttl > 0 {
			m.ttl = ttl
		}
		if sweepInterval > 0 {
			m.sweepInterval = sweepInterval
		}
	}
}

func NewManager(s Store, out Broadcaster, opts ...Option) *Manager {
	m := &Manager{
		store:         s,
		out:           out,
		log:           zap.NewNop(),
		now:           time.Now,
		newID:         shortID,
		ttl:           DefaultTTL,
		sweepInterval: DefaultSweepInterval,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// shortID takes the first six characters of a random UUID.
func shortID() string {
	return uuid.NewString()[:6]
}

// CreateRoom opens a room seated by participantID and tells the creator its id.
// A creator still seated elsewhere leaves that room first, forfeiting any
// game in progress.
func (m *Manager) CreateRoom(participantID string) (string, error) {
	if participantID == "" {
		return "", ErrInvalidParticipant
	}
	if prev, ok := m.store.RoomOfParticipant(participantID); ok && m.Leave(participantID) {
		m.log.Info("room_left_for_new", zap.String("room_id", prev), zap.String("participant_id", participantID))
	}

	for i := 0; i < idAttempts; i++ {
		r := newRoom(m.newID(), participantID, m.now())
		r.mu.Lock()
		if !m.store.AddRoom(r) {
			r.mu.Unlock()
			continue
		}
		m.store.BindParticipant(participantID, r.ID)
		m.out.Broadcast([]string{participantID}, KindRoomCreated, RoomCreated{RoomID: r.ID})
		r.mu.Unlock()

		m.log.Info("room_created", zap.String("room_id", r.ID), zap.String("participant_id", participantID))
		return r.ID, nil
	}
	return "", fmt.Errorf("allocate room id after %d attempts", idAttempts)
}

// JoinRoom seats the second participant and starts the game. Join failures
// are reported to the caller as a rejected notification.
func (m *Manager) JoinRoom(roomID, participantID string) error {
	if participantID == "" {
		return ErrInvalidParticipant
	}

	r, ok := m.lockRoom(roomID)
	if !ok {
		return m.reject(roomID, participantID, ErrRoomNotFound)
	}
	defer r.mu.Unlock()

	if len(r.Participants) >= MaxParticipants {
		return m.reject(roomID, participantID, ErrRoomFull)
	}
	if r.has(participantID) {
		m.log.Debug("join_ignored", zap.String("room_id", roomID), zap.String("participant_id", participantID), zap.String("reason", "already_joined"))
		return nil
	}
	if other, ok := m.store.RoomOfParticipant(participantID); ok && other != r.ID {
		if _, live := m.store.GetRoom(other); live {
			return m.reject(roomID, participantID, ErrAlreadySeated)
		}
	}

	r.Participants = append(r.Participants, participantID)
	r.Board = r.Board.AssignOwners(r.order())
	r.CurrentTurn = r.Participants[0]
	r.State = StateInProgress
	m.store.BindParticipant(participantID, r.ID)

	m.log.Info("room_joined",
		zap.String("room_id", r.ID),
		zap.String("participant_id", participantID),
		zap.Strings("participants", r.Participants),
		zap.String("current_turn", r.CurrentTurn))

	to := append([]string(nil), r.Participants...)
	m.out.Broadcast(to, KindParticipantJoined, ParticipantJoined{RoomID: r.ID, Participants: to})
	m.out.Broadcast(to, KindBoardChanged, BoardChanged{Board: r.Board, CurrentTurn: r.CurrentTurn})
	return nil
}

func (m *Manager) reject(roomID, participantID string, err error) error {
	m.log.Info("join_rejected", zap.String("room_id", roomID), zap.String("participant_id", participantID), zap.Error(err))
	m.out.Broadcast([]string{participantID}, KindRejected, Rejected{Message: err.Error()})
	return err
}

// Move applies one step or capture. A refused move changes nothing and
// notifies nobody; the error is only returned for the caller's logs.
func (m *Manager) Move(roomID, participantID string, from, to game.Pos) error {
	r, ok := m.lockRoom(roomID)
	if !ok {
		return m.drop(roomID, participantID, ErrRoomNotFound)
	}
	defer r.mu.Unlock()

	if r.State != StateInProgress || r.CurrentTurn != participantID {
		return m.drop(roomID, participantID, ErrNotYourTurn)
	}
	order := r.order()
	if err := game.Validate(r.Board, from, to, participantID, order); err != nil {
		return m.drop(roomID, participantID, fmt.Errorf("move %v -> %v: %w", from, to, err))
	}

	r.Board = game.Apply(r.Board, from, to, participantID, order)
	// Turn passes by seat index rather than by looking the opponent up.
	r.CurrentTurn = r.Participants[(r.index(participantID)+1)%len(r.Participants)]

	participants := append([]string(nil), r.Participants...)
	m.out.Broadcast(participants, KindBoardChanged, BoardChanged{Board: r.Board, CurrentTurn: r.CurrentTurn})

	if winner, done := game.CheckWin(r.Board, participantID, order.Opponent(participantID)); done {
		m.log.Info("game_won", zap.String("room_id", r.ID), zap.String("winner", winner))
		m.log.Debug("final_board", zap.String("room_id", r.ID), zap.String("board", r.Board.Render(order)))
		m.out.Broadcast(participants, KindGameOver, GameOver{Winner: winner})
		m.closeLocked(r)
	}
	return nil
}

func (m *Manager) drop(roomID, participantID string, err error) error {
	m.log.Info("move_dropped", zap.String("room_id", roomID), zap.String("participant_id", participantID), zap.Error(err))
	return err
}

// Leave handles a disconnect. A started game is forfeited to the remaining
// participant; the room is removed either way. It reports whether a room
// was removed.
func (m *Manager) Leave(participantID string) bool {
	roomID, ok := m.store.RoomOfParticipant(participantID)
	if !ok {
		return false
	}
	r, ok := m.lockRoom(roomID)
	if !ok {
		m.store.UnbindParticipant(participantID, roomID)
		return false
	}
	defer r.mu.Unlock()

	if !r.has(participantID) {
		m.store.UnbindParticipant(participantID, roomID)
		return false
	}

	if len(r.Participants) == MaxParticipants {
		other := r.Participants[(r.index(participantID)+1)%MaxParticipants]
		m.out.Broadcast([]string{other}, KindGameOver, GameOver{Winner: other, Reason: ReasonOpponentLeft})
	}
	m.closeLocked(r)

	m.log.Info("room_abandoned", zap.String("room_id", r.ID), zap.String("participant_id", participantID))
	return true
}

// Sweep removes every room created more than the TTL ago and returns how
// many went.
func (m *Manager) Sweep() int {
	now := m.now()
	removed := 0
	for _, r := range m.store.ListRooms() {
		r.mu.Lock()
		if !r.closed && now.Sub(r.CreatedAt) > m.ttl {
			m.closeLocked(r)
			removed++
			m.log.Info("room_expired", zap.String("room_id", r.ID), zap.Time("created_at", r.CreatedAt))
		}
		r.mu.Unlock()
	}
	return removed
}

// Run sweeps on every interval tick until ctx is done.
func (m *Manager) Run(ctx context.Context) {
	ticker := time.NewTicker(m.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.Sweep(); n > 0 {
				m.log.Info("sweep_done", zap.Int("removed", n), zap.Int("remaining", m.Count()))
			}
		}
	}
}

// Count returns the number of live rooms.
func (m *Manager) Count() int {
	return len(m.store.ListRooms())
}

// Rooms returns a snapshot of every live room.
func (m *Manager) Rooms() []Summary {
	rooms := m.store.ListRooms()
	out := make([]Summary, 0, len(rooms))
	for _, r := range rooms {
		r.mu.Lock()
		if !r.closed {
			out = append(out, r.summaryLocked())
		}
		r.mu.Unlock()
	}
	return out
}

// Room returns a snapshot of one room.
func (m *Manager) Room(roomID string) (Summary, bool) {
	r, ok := m.lockRoom(roomID)
	if !ok {
		return Summary{}, false
	}
	defer r.mu.Unlock()
	return r.summaryLocked(), true
}

// LegalMoves lists what participantID could play in roomID right now,
// ignoring whose turn it is.
func (m *Manager) LegalMoves(roomID, participantID string) ([]game.Move, error) {
	r, ok := m.lockRoom(roomID)
	if !ok {
		return nil, ErrRoomNotFound
	}
	defer r.mu.Unlock()

	if !r.has(participantID) {
		return nil, ErrInvalidParticipant
	}
	if r.State != StateInProgress {
		return nil, nil
	}
	return game.LegalMoves(r.Board, participantID, r.order()), nil
}

// lockRoom returns the room locked, or false if it does not exist or was
// closed while we waited for the lock.
func (m *Manager) lockRoom(roomID string) (*Room, bool) {
	r, ok := m.store.GetRoom(roomID)
	if !ok {
		return nil, false
	}
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil, false
	}
	return r, true
}

func (m *Manager) closeLocked(r *Room) {
	r.closed = true
	r.State = StateFinished
	for _, p := range r.Participants {
		m.store.UnbindParticipant(p, r.ID)
	}
	m.store.DeleteRoom(r.ID)
}
