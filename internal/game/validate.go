package game

import "errors"

// Move rejection reasons, checked in this order by Validate.
var (
	ErrOutOfBounds         = errors.New("destination out of bounds")
	ErrDestinationOccupied = errors.New("destination occupied")
	ErrNoOwnedPiece        = errors.New("no owned piece at origin")
	ErrWrongDirection      = errors.New("piece cannot move in that direction")
	ErrNoCaptureTarget     = errors.New("no opponent piece to capture")
	ErrNotDiagonal         = errors.New("move is not diagonal or has wrong distance")
)

// Validate checks a single step or a single capture hop for playerID.
// Captures are never mandatory and multi-hop captures are not supported.
func Validate(b Board, from, to Pos, playerID string, order Order) error {
	if !to.InBounds() {
		return ErrOutOfBounds
	}
	if b[to.Row][to.Col].Occupied {
		return ErrDestinationOccupied
	}
	if playerID == "" || !from.InBounds() {
		return ErrNoOwnedPiece
	}
	sq := b[from.Row][from.Col]
	if !sq.Occupied || sq.Piece.Owner != playerID {
		return ErrNoOwnedPiece
	}

	dRow, dCol := abs(to.Row-from.Row), abs(to.Col-from.Col)
	switch {
	case dRow == 1 && dCol == 1:
		if !sq.Piece.IsKing && !forward(from, to, playerID, order) {
			return ErrWrongDirection
		}
		return nil
	case dRow == 2 && dCol == 2:
		mid := b[(from.Row+to.Row)/2][(from.Col+to.Col)/2]
		if !mid.Occupied || mid.Piece.Owner == "" || mid.Piece.Owner == playerID {
			return ErrNoCaptureTarget
		}
		if !sq.Piece.IsKing && !forward(from, to, playerID, order) {
			return ErrWrongDirection
		}
		return nil
	}
	return ErrNotDiagonal
}

func forward(from, to Pos, playerID string, order Order) bool {
	return (to.Row-from.Row)*order.Direction(playerID) > 0
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
