package notation

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func mustBoard(t *testing.T, fen string) *engine.Board {
	t.Helper()
	b, err := engine.NewBoardFromFEN(fen)
	testutil.AssertNoError(t, err, "NewBoardFromFEN")
	return b
}

func TestDecodeSAN(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		side     chess.Colour
		san      string
		from, to string
	}{
		{"pawn push", engine.InitialFEN, chess.White, "e4", "e2", "e4"},
		{"knight development", engine.InitialFEN, chess.White, "Nf3", "g1", "f3"},
		{"black reply", engine.InitialFEN, chess.Black, "e5", "e7", "e5"},
		{"pawn capture", "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1", chess.White, "exd5", "e4", "d5"},
		{"disambiguated rook", "4k3/8/8/8/8/8/4K3/R6R w - - 0 1", chess.White, "Rad1", "a1", "d1"},
		{"check suffix", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", chess.White, "Ra8+", "a1", "a8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			from, to, err := DecodeSAN(board, tt.side, tt.san)
			testutil.AssertNoError(t, err, "DecodeSAN(%q)", tt.san)
			testutil.AssertEqual(t, from, testutil.Square(t, tt.from), "from")
			testutil.AssertEqual(t, to, testutil.Square(t, tt.to), "to")
		})
	}
}

func TestDecodeSAN_Invalid(t *testing.T) {
	tests := []struct {
		name string
		side chess.Colour
		san  string
	}{
		{"wrong side", chess.Black, "e4"},
		{"impossible move", chess.White, "e5"},
		{"garbage", chess.White, "zz9"},
	}

	board := engine.NewBoard()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeSAN(board, tt.side, tt.san)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidNotation)
		})
	}
}

func TestDecode(t *testing.T) {
	board := engine.NewBoard()

	from, to, err := Decode(board, chess.White, "g1f3")
	testutil.AssertNoError(t, err, "coordinate text")
	testutil.AssertEqual(t, Coordinate(from, to), "g1f3")

	from, to, err = Decode(board, chess.White, "Nc3")
	testutil.AssertNoError(t, err, "SAN text")
	testutil.AssertEqual(t, Coordinate(from, to), "b1c3")
}

func TestDecodeLeavesBoardUntouched(t *testing.T) {
	board := engine.NewBoard()
	before := board.Placement()

	if _, _, err := DecodeSAN(board, chess.White, "e4"); err != nil {
		t.Fatalf("DecodeSAN: %v", err)
	}
	testutil.AssertEqual(t, board.Placement(), before)
}

func TestEncodeSAN(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		side     chess.Colour
		from, to string
		want     string
	}{
		{"pawn push", engine.InitialFEN, chess.White, "e2", "e4", "e4"},
		{"knight", engine.InitialFEN, chess.Black, "g8", "f6", "Nf6"},
		{"capture", "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1", chess.White, "e4", "d5", "exd5"},
		{"mate", "6k1/5ppp/8/8/8/8/8/R3K3 w - - 0 1", chess.White, "a1", "a8", "Ra8#"},
		{"pawn to last rank", "8/4P2k/8/8/8/8/8/4K3 w - - 0 1", chess.White, "e7", "e8", "e7e8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			got := EncodeSAN(board, tt.side, testutil.Square(t, tt.from), testutil.Square(t, tt.to))
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

// Every move the engine allows in a quiet middlegame has a SAN form that
// decodes back to the same squares.
func TestSANAgreesWithEngine(t *testing.T) {
	board := mustBoard(t, "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w - - 4 4")

	for _, p := range board.Pieces(chess.White) {
		for _, to := range p.LegalMoves(board) {
			from := p.Position()
			san := EncodeSAN(board, chess.White, from, to)
			gotFrom, gotTo, err := DecodeSAN(board, chess.White, san)
			if err != nil {
				t.Errorf("DecodeSAN(%q) for %v: %v", san, Coordinate(from, to), err)
				continue
			}
			if gotFrom != from || gotTo != to {
				t.Errorf("DecodeSAN(%q) = %v%v; want %v%v", san, gotFrom, gotTo, from, to)
			}
		}
	}
}
