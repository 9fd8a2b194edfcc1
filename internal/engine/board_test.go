package engine

import (
	"errors"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	tests := []struct {
		name   string
		square string
		kind   chess.Kind
		colour chess.Colour
	}{
		// White back rank
		{"white rook a1", "a1", chess.Rook, chess.White},
		{"white knight b1", "b1", chess.Knight, chess.White},
		{"white bishop c1", "c1", chess.Bishop, chess.White},
		{"white queen d1", "d1", chess.Queen, chess.White},
		{"white king e1", "e1", chess.King, chess.White},
		{"white bishop f1", "f1", chess.Bishop, chess.White},
		{"white knight g1", "g1", chess.Knight, chess.White},
		{"white rook h1", "h1", chess.Rook, chess.White},
		// Pawns
		{"white pawn a2", "a2", chess.Pawn, chess.White},
		{"white pawn h2", "h2", chess.Pawn, chess.White},
		{"black pawn a7", "a7", chess.Pawn, chess.Black},
		{"black pawn h7", "h7", chess.Pawn, chess.Black},
		// Black back rank
		{"black rook a8", "a8", chess.Rook, chess.Black},
		{"black queen d8", "d8", chess.Queen, chess.Black},
		{"black king e8", "e8", chess.King, chess.Black},
		{"black knight g8", "g8", chess.Knight, chess.Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := sq(t, tt.square)
			p := b.At(pos)
			if p.Kind() != tt.kind || p.Colour() != tt.colour {
				t.Errorf("At(%s) = %v %v; want %v %v", tt.square, p.Colour(), p.Kind(), tt.colour, tt.kind)
			}
			if p.Position() != pos {
				t.Errorf("At(%s).Position() = %v; want %v", tt.square, p.Position(), pos)
			}
		})
	}

	t.Run("middle ranks empty", func(t *testing.T) {
		for rank := 2; rank <= 5; rank++ {
			for file := 0; file < chess.BoardSize; file++ {
				if got := b.At(chess.Pos(rank, file)); !got.IsEmpty() {
					t.Errorf("At(%v) = %v; want empty", chess.Pos(rank, file), got)
				}
			}
		}
	})

	t.Run("sixteen pieces per side", func(t *testing.T) {
		if n := len(b.Pieces(chess.White)); n != 16 {
			t.Errorf("len(Pieces(White)) = %d; want 16", n)
		}
		if n := len(b.Pieces(chess.Black)); n != 16 {
			t.Errorf("len(Pieces(Black)) = %d; want 16", n)
		}
	})
}

func TestPopulateResets(t *testing.T) {
	b := NewBoard()
	b.ApplyMove(sq(t, "e2"), sq(t, "e4"))
	b.Place(sq(t, "d5"), chess.Queen, chess.Black)

	b.Populate()

	testutil.AssertEqual(t, b.Placement(), NewBoard().Placement())
}

func TestNewEmptyBoard(t *testing.T) {
	b := NewEmptyBoard()
	b.Each(func(pos chess.Position, p Piece) {
		if p != Empty {
			t.Errorf("At(%v) = %v; want Empty", pos, p)
		}
	})
	if _, ok := b.King(chess.White); ok {
		t.Error("King(White) found on an empty board")
	}
}

func TestInBounds(t *testing.T) {
	b := NewEmptyBoard()
	if !b.InBounds(chess.Pos(0, 7)) {
		t.Error("InBounds(0,7) = false; want true")
	}
	if b.InBounds(chess.Pos(0, 8)) {
		t.Error("InBounds(0,8) = true; want false")
	}
}

func TestOutOfBoundsAccessPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func(b *Board)
	}{
		{"At", func(b *Board) { b.At(chess.Pos(8, 0)) }},
		{"Set", func(b *Board) { b.Set(chess.Pos(0, -1), Empty) }},
		{"ApplyMove", func(b *Board) { b.ApplyMove(chess.Pos(1, 4), chess.Pos(1, 9)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok {
					t.Fatalf("recover() = %v; want an error", r)
				}
				if !errors.Is(err, chesserrors.ErrOutOfBounds) {
					t.Errorf("panic error = %v; want ErrOutOfBounds", err)
				}
			}()
			tt.fn(NewBoard())
		})
	}
}

func TestSetUpdatesPosition(t *testing.T) {
	b := NewEmptyBoard()
	rook := NewPiece(chess.Rook, chess.White, chess.Pos(0, 0))

	b.Set(sq(t, "c5"), rook)

	if rook.Position() != sq(t, "c5") {
		t.Errorf("Position() = %v; want c5", rook.Position())
	}
	if b.At(sq(t, "c5")) != rook {
		t.Error("At(c5) is not the piece that was set")
	}

	b.Set(sq(t, "c5"), nil)
	if b.At(sq(t, "c5")) != Empty {
		t.Error("Set(nil) did not store the Empty sentinel")
	}
}

func TestKing(t *testing.T) {
	b := NewBoard()
	pos, ok := b.King(chess.Black)
	if !ok || pos != sq(t, "e8") {
		t.Errorf("King(Black) = %v, %v; want e8, true", pos, ok)
	}
}

func TestApplyMove(t *testing.T) {
	t.Run("relocates and clears origin", func(t *testing.T) {
		b := NewBoard()
		knight := b.At(sq(t, "g1"))

		b.ApplyMove(sq(t, "g1"), sq(t, "f3"))

		if b.At(sq(t, "f3")) != knight {
			t.Error("At(f3) is not the moved knight")
		}
		if knight.Position() != sq(t, "f3") {
			t.Errorf("knight.Position() = %v; want f3", knight.Position())
		}
		if !b.At(sq(t, "g1")).IsEmpty() {
			t.Error("At(g1) not empty after move")
		}
	})

	t.Run("captures unconditionally", func(t *testing.T) {
		b := NewBoard()
		b.ApplyMove(sq(t, "d1"), sq(t, "d8"))

		got := b.At(sq(t, "d8"))
		if got.Kind() != chess.Queen || got.Colour() != chess.White {
			t.Errorf("At(d8) = %v; want white queen", got)
		}
		if n := len(b.Pieces(chess.Black)); n != 15 {
			t.Errorf("len(Pieces(Black)) = %d; want 15", n)
		}
	})
}

func TestDuplicate(t *testing.T) {
	b := mustFEN(t, "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w - - 4 4")
	before := snapshot(b)

	dup := b.Duplicate()

	t.Run("identical occupants", func(t *testing.T) {
		testutil.AssertEqual(t, snapshot(dup), before)
	})

	t.Run("independent instances", func(t *testing.T) {
		if dup.ID() == b.ID() {
			t.Error("duplicate shares the original's ID")
		}
		b.Each(func(pos chess.Position, p Piece) {
			d := dup.At(pos)
			if p.IsEmpty() {
				if d != Empty {
					t.Errorf("At(%v) in duplicate is not the shared sentinel", pos)
				}
				return
			}
			if d == p {
				t.Errorf("At(%v) shares a piece instance with the original", pos)
			}
		})
	})

	t.Run("mutating the duplicate leaves the original", func(t *testing.T) {
		dup.ApplyMove(sq(t, "c4"), sq(t, "f7"))
		dup.ApplyMove(sq(t, "e8"), sq(t, "f7"))
		dup.Clear(sq(t, "a8"))

		testutil.AssertEqual(t, snapshot(b), before)
	})
}

func TestBoardString(t *testing.T) {
	want := "rnbqkbnr\npppppppp\n........\n........\n........\n........\nPPPPPPPP\nRNBQKBNR\n"
	testutil.AssertEqual(t, NewBoard().String(), want)
}
