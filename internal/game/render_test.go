package game

import (
	"strings"
	"testing"
)

func TestRenderInitialBoard(t *testing.T) {
	lines := strings.Split(strings.TrimSuffix(InitialBoard().Render(Order{"a", "b"}), "\n"), "\n")
	if len(lines) != Size {
		t.Fatalf("got %d lines", len(lines))
	}
	if lines[0] != ". * . * . * . *" {
		t.Errorf("row 0 = %q", lines[0])
	}
	if lines[3] != ". . . . . . . ." {
		t.Errorf("row 3 = %q", lines[3])
	}
	if lines[5] != "* . * . * . * ." {
		t.Errorf("row 5 = %q", lines[5])
	}
}

func TestRenderOwnersAndKings(t *testing.T) {
	order := Order{"a", "b"}
	b, err := NewBoard(map[Pos]Piece{
		{Row: 0, Col: 1}: {Owner: "a", IsKing: true},
		{Row: 7, Col: 0}: {Owner: "b"},
		{Row: 4, Col: 3}: {Owner: "zed"},
	})
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(b.Render(order), "\n")
	if lines[0][2] != 'X' {
		t.Errorf("king of order[0] = %q", lines[0][2])
	}
	if lines[7][0] != 'o' {
		t.Errorf("man of order[1] = %q", lines[7][0])
	}
	if lines[4][6] != '?' {
		t.Errorf("stranger = %q", lines[4][6])
	}
}
