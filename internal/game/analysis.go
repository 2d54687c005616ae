package game

var steps = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

// LegalMoves lists every single step or single capture Validate would
// accept for playerID, scanning the board row by row.
func LegalMoves(b Board, playerID string, order Order) []Move {
	var moves []Move
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			sq := b[row][col]
			if !sq.Occupied || sq.Piece.Owner != playerID {
				continue
			}
			from := Pos{row, col}
			for _, d := range steps {
				for dist := 1; dist <= 2; dist++ {
					to := Pos{row + d[0]*dist, col + d[1]*dist}
					if Validate(b, from, to, playerID, order) == nil {
						moves = append(moves, Move{From: from, To: to, PlayerID: playerID, Capture: dist == 2})
					}
				}
			}
		}
	}
	return moves
}
