package engine

import (
	"slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// IsInCheck returns true if the given colour's king is attacked by any
// opposing piece's raw moves. A side without a king is never in check.
func (b *Board) IsInCheck(colour chess.Colour) bool {
	kingPos, ok := b.King(colour)
	if !ok {
		return false // No king found
	}
	return b.isSquareAttacked(kingPos, colour.Opposite())
}

// isSquareAttacked returns true if the square is among the raw moves of
// any piece of byColour. Raw moves are used, not legal moves, so check
// detection never recurses into legality simulation.
func (b *Board) isSquareAttacked(pos chess.Position, byColour chess.Colour) bool {
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			p := b.squares[rank][file]
			if p.IsEmpty() || p.Colour() != byColour {
				continue
			}
			if slices.Contains(p.RawMoves(b), pos) {
				return true
			}
		}
	}
	return false
}
