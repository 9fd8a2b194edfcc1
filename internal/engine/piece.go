package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Piece is an occupant of a board square: one of the six piece variants or
// the shared Empty sentinel. The board a piece stands on is passed to the
// move generators explicitly; pieces hold no reference to it.
type Piece interface {
	Kind() chess.Kind
	Colour() chess.Colour
	Position() chess.Position
	IsEmpty() bool

	// RawMoves returns the pseudo-legal destinations on b, ignoring
	// whether the move leaves the mover's king in check.
	RawMoves(b *Board) []chess.Position

	// LegalMoves returns the subset of RawMoves that does not leave the
	// mover's king in check.
	LegalMoves(b *Board) []chess.Position

	// setPosition is called by the Board when the piece is relocated.
	setPosition(pos chess.Position)
}

// Empty is the occupant of every vacant square.
var Empty Piece = emptySquare{}

type emptySquare struct{}

func (emptySquare) Kind() chess.Kind { return chess.None }
func (emptySquare) Colour() chess.Colour { return chess.NoColour }
func (emptySquare) Position() chess.Position { return chess.Position{} }
func (emptySquare) IsEmpty() bool { return true }
func (emptySquare) RawMoves(*Board) []chess.Position { return nil }
func (emptySquare) LegalMoves(*Board) []chess.Position { return nil }
func (emptySquare) setPosition(chess.Position) {}
func (emptySquare) String() string { return "empty" }

// base holds the state common to every real piece.
type base struct {
	colour chess.Colour
	pos    chess.Position
}

func (p *base) Colour() chess.Colour { return p.colour }
func (p *base) Position() chess.Position { return p.pos }
func (p *base) IsEmpty() bool { return false }
func (p *base) setPosition(pos chess.Position) { p.pos = pos }

// Pawn moves forward one square, two from its starting rank, and captures
// one square diagonally forward.
type Pawn struct{ base }

// Knight jumps in an L shape.
type Knight struct{ base }

// Bishop slides along diagonals.
type Bishop struct{ base }

// Rook slides along ranks and files.
type Rook struct{ base }

// Queen slides along ranks, files and diagonals.
type Queen struct{ base }

// King steps to any adjacent square.
type King struct{ base }

func (*Pawn) Kind() chess.Kind { return chess.Pawn }
func (*Knight) Kind() chess.Kind { return chess.Knight }
func (*Bishop) Kind() chess.Kind { return chess.Bishop }
func (*Rook) Kind() chess.Kind { return chess.Rook }
func (*Queen) Kind() chess.Kind { return chess.Queen }
func (*King) Kind() chess.Kind { return chess.King }

func (p *Pawn) RawMoves(b *Board) []chess.Position {
	return pawnMoves(b, p.pos, p.colour)
}

func (p *Knight) RawMoves(b *Board) []chess.Position {
	return stepMoves(b, p.pos, p.colour, knightOffsets)
}

func (p *Bishop) RawMoves(b *Board) []chess.Position {
	return slideMoves(b, p.pos, p.colour, diagonalDirs)
}

func (p *Rook) RawMoves(b *Board) []chess.Position {
	return slideMoves(b, p.pos, p.colour, straightDirs)
}

func (p *Queen) RawMoves(b *Board) []chess.Position {
	return slideMoves(b, p.pos, p.colour, allDirs)
}

func (p *King) RawMoves(b *Board) []chess.Position {
	return stepMoves(b, p.pos, p.colour, allDirs)
}

func (p *Pawn) LegalMoves(b *Board) []chess.Position { return legalMoves(b, p) }
func (p *Knight) LegalMoves(b *Board) []chess.Position { return legalMoves(b, p) }
func (p *Bishop) LegalMoves(b *Board) []chess.Position { return legalMoves(b, p) }
func (p *Rook) LegalMoves(b *Board) []chess.Position { return legalMoves(b, p) }
func (p *Queen) LegalMoves(b *Board) []chess.Position { return legalMoves(b, p) }
func (p *King) LegalMoves(b *Board) []chess.Position { return legalMoves(b, p) }

// NewPiece constructs a piece of the given kind and colour at pos.
// Kind None returns the Empty sentinel.
func NewPiece(kind chess.Kind, colour chess.Colour, pos chess.Position) Piece {
	b := base{colour: colour, pos: pos}
	switch kind {
	case chess.Pawn:
		return &Pawn{b}
	case chess.Knight:
		return &Knight{b}
	case chess.Bishop:
		return &Bishop{b}
	case chess.Rook:
		return &Rook{b}
	case chess.Queen:
		return &Queen{b}
	case chess.King:
		return &King{b}
	default:
		return Empty
	}
}

// Describe returns a short human readable name such as "white knight".
func Describe(p Piece) string {
	if p.IsEmpty() {
		return ""
	}
	return strings.ToLower(p.Colour().String() + " " + p.Kind().String())
}

// Glyph returns the FEN letter for a piece: uppercase for White, lowercase
// for Black, '.' for an empty square.
func Glyph(p Piece) byte {
	if p.IsEmpty() {
		return '.'
	}
	letter := p.Kind().Letter()
	if p.Colour() == chess.Black {
		letter += 'a' - 'A'
	}
	return letter
}

func (p *Pawn) String() string { return describeAt(p) }
func (p *Knight) String() string { return describeAt(p) }
func (p *Bishop) String() string { return describeAt(p) }
func (p *Rook) String() string { return describeAt(p) }
func (p *Queen) String() string { return describeAt(p) }
func (p *King) String() string { return describeAt(p) }

func describeAt(p Piece) string {
	return fmt.Sprintf("%s on %s", Describe(p), p.Position())
}
