package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsCheckmate returns true if colour is in check and no piece of that
// colour has a legal move.
func (b *Board) IsCheckmate(colour chess.Colour) bool {
	return b.IsInCheck(colour) && !b.HasLegalMoves(colour)
}

// IsStalemate returns true if colour is not in check but has no legal move.
func (b *Board) IsStalemate(colour chess.Colour) bool {
	return !b.IsInCheck(colour) && !b.HasLegalMoves(colour)
}

// Status summarises the check state of one side.
type Status int

const (
	Normal Status = iota
	InCheck
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case InCheck:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "normal"
	}
}

// StatusOf classifies the position for colour.
func (b *Board) StatusOf(colour chess.Colour) Status {
	inCheck := b.IsInCheck(colour)
	hasMoves := b.HasLegalMoves(colour)
	switch {
	case inCheck && !hasMoves:
		return Checkmate
	case inCheck:
		return InCheck
	case !hasMoves:
		return Stalemate
	default:
		return Normal
	}
}
