package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// mustFEN builds a board from a FEN placement, failing the test on error.
func mustFEN(t testing.TB, fen string) *Board {
	t.Helper()
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) failed: %v", fen, err)
	}
	return board
}

// sq parses a square name.
func sq(t testing.TB, name string) chess.Position {
	t.Helper()
	pos, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("ParseSquare(%q) failed: %v", name, err)
	}
	return pos
}

// snapshot records kind, colour and stored position of every cell.
type cell struct {
	Kind   chess.Kind
	Colour chess.Colour
	Pos    chess.Position
}

func snapshot(b *Board) [chess.BoardSize][chess.BoardSize]cell {
	var s [chess.BoardSize][chess.BoardSize]cell
	b.Each(func(pos chess.Position, p Piece) {
		s[pos.Rank][pos.File] = cell{Kind: p.Kind(), Colour: p.Colour(), Pos: p.Position()}
	})
	return s
}
