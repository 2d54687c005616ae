package game

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange  = errors.New("position out of range")
	ErrLightSquare = errors.New("pieces may only stand on dark squares")
)

// Rows holding pieces at the start of a game.
const (
	topRowsEnd      = 3 // rows 0-2
	bottomRowsStart = 5 // rows 5-7
)

// InitialBoard returns the starting layout: unowned men on every dark
// square of rows 0-2 and 5-7, everything else empty.
func InitialBoard() Board {
	var b Board
	for row := 0; row < Size; row++ {
		if row >= topRowsEnd && row < bottomRowsStart {
			continue
		}
		for col := 0; col < Size; col++ {
			if (Pos{row, col}).Dark() {
				b[row][col] = Square{Occupied: true}
			}
		}
	}
	return b
}

// NewBoard builds a board from an explicit piece placement.
func NewBoard(pieces map[Pos]Piece) (Board, error) {
	var b Board
	for p, pc := range pieces {
		if !p.InBounds() {
			return Board{}, fmt.Errorf("place %v: %w", p, ErrOutOfRange)
		}
		if !p.Dark() {
			return Board{}, fmt.Errorf("place %v: %w", p, ErrLightSquare)
		}
		b[p.Row][p.Col] = Square{Occupied: true, Piece: pc}
	}
	return b, nil
}

func (b Board) At(p Pos) (Square, error) {
	if !p.InBounds() {
		return Square{}, ErrOutOfRange
	}
	return b[p.Row][p.Col], nil
}

// AssignOwners hands rows 5-7 to order[0] and rows 0-2 to order[1].
func (b Board) AssignOwners(order Order) Board {
	for row := 0; row < Size; row++ {
		var owner string
		switch {
		case row >= bottomRowsStart:
			owner = order[0]
		case row < topRowsEnd:
			owner = order[1]
		default:
			continue
		}
		for col := 0; col < Size; col++ {
			if b[row][col].Occupied {
				b[row][col].Piece.Owner = owner
			}
		}
	}
	return b
}

// Count returns how many pieces playerID owns.
func (b Board) Count(playerID string) int {
	n := 0
	for row := range b {
		for col := range b[row] {
			if sq := b[row][col]; sq.Occupied && sq.Piece.Owner == playerID {
				n++
			}
		}
	}
	return n
}

// Pieces returns the total number of pieces on the board.
func (b Board) Pieces() int {
	n := 0
	for row := range b {
		for col := range b[row] {
			if b[row][col].Occupied {
				n++
			}
		}
	}
	return n
}
