package game

import "strings"

// Render draws the board one row per line, row 0 first. order[0]'s men are
// x, order[1]'s are o, kings are upper case, unassigned men are * and
// empty squares are dots.
func (b Board) Render(order Order) string {
	var sb strings.Builder
	sb.Grow(Size * (2*Size + 1))
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(glyph(b[r][c], order))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func glyph(s Square, order Order) byte {
	if !s.Occupied {
		return '.'
	}
	var g byte
	switch s.Piece.Owner {
	case "":
		return '*'
	case order[0]:
		g = 'x'
	case order[1]:
		g = 'o'
	default:
		return '?'
	}
	if s.Piece.IsKing {
		g -= 'a' - 'A'
	}
	return g
}
