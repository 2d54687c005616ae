package game

import "testing"

func TestCheckWin(t *testing.T) {
	tests := []struct {
		name       string
		pieces     map[Pos]Piece
		wantWinner string
		wantOK     bool
	}{
		{
			name:   "both sides alive",
			pieces: map[Pos]Piece{{5, 0}: {Owner: "p1"}, {0, 1}: {Owner: "p2"}},
		},
		{
			name:       "opponent wiped out",
			pieces:     map[Pos]Piece{{5, 0}: {Owner: "p1"}},
			wantWinner: "p1",
			wantOK:     true,
		},
		{
			name:       "mover wiped out",
			pieces:     map[Pos]Piece{{0, 1}: {Owner: "p2"}},
			wantWinner: "p2",
			wantOK:     true,
		},
		{
			name:   "only kings left",
			pieces: map[Pos]Piece{{3, 0}: {Owner: "p1", IsKing: true}, {4, 1}: {Owner: "p2", IsKing: true}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBoard(t, tt.pieces)
			winner, ok := CheckWin(b, "p1", "p2")
			if ok != tt.wantOK || winner != tt.wantWinner {
				t.Errorf("CheckWin = (%q, %v), want (%q, %v)", winner, ok, tt.wantWinner, tt.wantOK)
			}
		})
	}
}

func TestCheckWinAfterCapture(t *testing.T) {
	b := mustBoard(t, map[Pos]Piece{
		{2, 3}: {Owner: "p1"},
		{1, 4}: {Owner: "p2"},
	})
	if _, ok := CheckWin(b, "p1", "p2"); ok {
		t.Fatal("no winner expected before the capture")
	}

	b = Apply(b, Pos{2, 3}, Pos{0, 5}, "p1", testOrder)

	winner, ok := CheckWin(b, "p1", "p2")
	if !ok || winner != "p1" {
		t.Errorf("expected p1 to win, got (%q, %v)", winner, ok)
	}
	if !b[0][5].Piece.IsKing {
		t.Error("capturing piece should be crowned on row 0")
	}
}
