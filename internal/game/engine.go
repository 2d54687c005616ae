package game

// Apply performs an already validated move and returns the resulting board.
// The input board is left untouched.
func Apply(b Board, from, to Pos, playerID string, order Order) Board {
	piece := b[from.Row][from.Col].Piece
	b[from.Row][from.Col] = Square{}

	if abs(to.Row-from.Row) == 2 {
		b[(from.Row+to.Row)/2][(from.Col+to.Col)/2] = Square{}
	}

	// Crowning only happens on the mover's own far row.
	if piece.Owner == playerID && to.Row == order.PromotionRow(playerID) {
		piece.IsKing = true
	}
	b[to.Row][to.Col] = Square{Occupied: true, Piece: piece}
	return b
}
