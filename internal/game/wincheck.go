package game

// CheckWin reports the winner once one side has no pieces left.
// Running out of legal moves is not treated as a loss.
func CheckWin(b Board, playerID, opponentID string) (string, bool) {
	mine, theirs := 0, 0
	for row := range b {
		for col := range b[row] {
			sq := b[row][col]
			if !sq.Occupied {
				continue
			}
			switch sq.Piece.Owner {
			case playerID:
				mine++
			case opponentID:
				theirs++
			}
		}
	}
	if theirs == 0 {
		return playerID, true
	}
	if mine == 0 {
		return opponentID, true
	}
	return "", false
}
