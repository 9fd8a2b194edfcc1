package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// legalMoves filters p's raw moves to those that do not leave p's side in
// check, simulating each one on a duplicate of b.
func legalMoves(b *Board, p Piece) []chess.Position {
	var legal []chess.Position
	for _, to := range p.RawMoves(b) {
		if tryMove(b, p.Position(), to, p.Colour()) {
			legal = append(legal, to)
		}
	}
	return legal
}

// tryMove makes a move on a duplicated board and checks if it leaves the king in check.
func tryMove(b *Board, from, to chess.Position, colour chess.Colour) bool {
	testBoard := b.Duplicate()
	testBoard.ApplyMove(from, to)
	return !testBoard.IsInCheck(colour)
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func (b *Board) HasLegalMoves(colour chess.Colour) bool {
	for _, p := range b.Pieces(colour) {
		if len(p.LegalMoves(b)) > 0 {
			return true
		}
	}
	return false
}

// LegalMovesFrom returns the legal destinations of the piece on pos.
// An empty square has none.
func (b *Board) LegalMovesFrom(pos chess.Position) []chess.Position {
	return b.At(pos).LegalMoves(b)
}
