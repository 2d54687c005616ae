package game

import (
	"bytes"
	"encoding/json"
)

// Size is the side length of a checkers board.
const Size = 8

// Pos addresses a square by row and column.
type Pos struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Pos) InBounds() bool {
	return p.Row >= 0 && p.Row < Size && p.Col >= 0 && p.Col < Size
}

// Dark reports whether p is a playable square.
func (p Pos) Dark() bool {
	return (p.Row+p.Col)%2 == 1
}

type Piece struct {
	Owner  string // participant ID, empty until the room starts
	IsKing bool
}

// Square is either empty or holds exactly one piece.
type Square struct {
	Occupied bool
	Piece    Piece
}

type pieceJSON struct {
	Owner  *string `json:"owner"`
	IsKing bool    `json:"isKing"`
}

// MarshalJSON encodes an empty square as null and an unassigned owner as null.
func (s Square) MarshalJSON() ([]byte, error) {
	if !s.Occupied {
		return []byte("null"), nil
	}
	pj := pieceJSON{IsKing: s.Piece.IsKing}
	if s.Piece.Owner != "" {
		owner := s.Piece.Owner
		pj.Owner = &owner
	}
	return json.Marshal(pj)
}

func (s *Square) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*s = Square{}
		return nil
	}
	var pj pieceJSON
	if err := json.Unmarshal(data, &pj); err != nil {
		return err
	}
	*s = Square{Occupied: true, Piece: Piece{IsKing: pj.IsKing}}
	if pj.Owner != nil {
		s.Piece.Owner = *pj.Owner
	}
	return nil
}

// Board is a value type: assigning or passing it copies the whole grid.
type Board [Size][Size]Square

// Order is the seating of a room. Order[0] moves toward row 0,
// Order[1] toward row 7.
type Order [2]string

// Direction returns the row step a non-king piece of playerID must take.
func (o Order) Direction(playerID string) int {
	if o[0] == playerID {
		return -1
	}
	return 1
}

// PromotionRow is the far row where playerID's pieces are crowned.
func (o Order) PromotionRow(playerID string) int {
	if o[0] == playerID {
		return 0
	}
	return Size - 1
}

// Opponent returns the other seat, or "" if playerID is not seated.
func (o Order) Opponent(playerID string) string {
	switch playerID {
	case o[0]:
		return o[1]
	case o[1]:
		return o[0]
	}
	return ""
}

type Move struct {
	From     Pos    `json:"from"`
	To       Pos    `json:"to"`
	PlayerID string `json:"playerId"`
	Capture  bool   `json:"capture"`
}
