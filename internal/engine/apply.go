package engine

import (
	"slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// RequestMove validates and plays a move. It returns nil once the move has
// been applied. Otherwise it returns a *errors.MoveError wrapping
// ErrIllegalPattern (empty start, or a destination the piece cannot reach),
// ErrLeavesKingInCheck, or ErrOutOfBounds, and the board is unchanged.
//
// RequestMove does not track whose turn it is.
func (b *Board) RequestMove(from, to chess.Position) error {
	if !from.InBounds() || !to.InBounds() {
		return moveError(errors.ErrOutOfBounds, from, to, Empty)
	}

	piece := b.At(from)
	if piece.IsEmpty() || !slices.Contains(piece.RawMoves(b), to) {
		return moveError(errors.ErrIllegalPattern, from, to, piece)
	}
	if !tryMove(b, from, to, piece.Colour()) {
		return moveError(errors.ErrLeavesKingInCheck, from, to, piece)
	}

	b.ApplyMove(from, to)
	return nil
}

// moveError builds the structured rejection for a move request.
func moveError(err error, from, to chess.Position, piece Piece) *errors.MoveError {
	return &errors.MoveError{
		Err:   err,
		From:  from.String(),
		To:    to.String(),
		Piece: Describe(piece),
	}
}
