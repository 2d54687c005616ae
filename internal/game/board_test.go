package game

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestInitialBoard(t *testing.T) {
	b := InitialBoard()

	if got := b.Pieces(); got != 24 {
		t.Fatalf("expected 24 pieces, got %d", got)
	}
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			sq := b[row][col]
			if !sq.Occupied {
				continue
			}
			if !(Pos{row, col}).Dark() {
				t.Errorf("piece on light square (%d,%d)", row, col)
			}
			if row == 3 || row == 4 {
				t.Errorf("piece in middle row (%d,%d)", row, col)
			}
			if sq.Piece.Owner != "" || sq.Piece.IsKing {
				t.Errorf("expected unowned man at (%d,%d), got %+v", row, col, sq.Piece)
			}
		}
	}
}

func TestBoardAt(t *testing.T) {
	b := InitialBoard()

	sq, err := b.At(Pos{0, 1})
	if err != nil {
		t.Fatalf("At(0,1): %v", err)
	}
	if !sq.Occupied {
		t.Error("expected (0,1) to be occupied")
	}

	for _, p := range []Pos{{-1, 0}, {0, 8}, {8, 8}, {3, -2}} {
		if _, err := b.At(p); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("At(%v): expected ErrOutOfRange, got %v", p, err)
		}
	}
}

func TestNewBoardRejectsLightSquares(t *testing.T) {
	if _, err := NewBoard(map[Pos]Piece{{0, 0}: {Owner: "a"}}); !errors.Is(err, ErrLightSquare) {
		t.Errorf("expected ErrLightSquare, got %v", err)
	}
	if _, err := NewBoard(map[Pos]Piece{{9, 0}: {Owner: "a"}}); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
	b, err := NewBoard(map[Pos]Piece{{2, 3}: {Owner: "a", IsKing: true}})
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	if sq := b[2][3]; !sq.Occupied || !sq.Piece.IsKing || sq.Piece.Owner != "a" {
		t.Errorf("unexpected square %+v", sq)
	}
}

func TestAssignOwners(t *testing.T) {
	order := Order{"p1", "p2"}
	start := InitialBoard()
	b := start.AssignOwners(order)

	if b.Count("p1") != 12 || b.Count("p2") != 12 {
		t.Fatalf("expected 12/12 split, got %d/%d", b.Count("p1"), b.Count("p2"))
	}
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			sq := b[row][col]
			if !sq.Occupied {
				continue
			}
			want := "p2"
			if row >= 5 {
				want = "p1"
			}
			if sq.Piece.Owner != want {
				t.Errorf("(%d,%d): expected owner %s, got %s", row, col, want, sq.Piece.Owner)
			}
		}
	}
	if start.Count("p1") != 0 {
		t.Error("AssignOwners mutated its receiver")
	}
}

func TestSquareJSON(t *testing.T) {
	b, _ := NewBoard(map[Pos]Piece{{0, 1}: {}, {1, 0}: {Owner: "p2", IsKing: true}})

	raw, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var generic [][]map[string]any
	if err := json.Unmarshal(raw, &generic); err != nil {
		t.Fatalf("unmarshal generic: %v", err)
	}
	if generic[0][0] != nil {
		t.Errorf("expected empty square to encode as null, got %v", generic[0][0])
	}
	if owner, ok := generic[0][1]["owner"]; !ok || owner != nil {
		t.Errorf("expected null owner, got %v", generic[0][1])
	}
	if generic[1][0]["owner"] != "p2" || generic[1][0]["isKing"] != true {
		t.Errorf("unexpected king encoding %v", generic[1][0])
	}

	var back Board
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal board: %v", err)
	}
	if back != b {
		t.Error("board did not survive JSON encoding")
	}
}
