package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// pawnMoves generates pushes and diagonal captures for a pawn at pos.
// There is no en passant and no promotion.
func pawnMoves(b *Board, pos chess.Position, colour chess.Colour) []chess.Position {
	var moves []chess.Position
	dir := chess.ColourOffset(colour)

	// Forward move
	one := pos.Add(dir, 0)
	if one.InBounds() && b.At(one).IsEmpty() {
		moves = append(moves, one)

		// Double push from starting rank
		if pos.Rank == chess.PawnStartRank(colour) {
			two := pos.Add(2*dir, 0)
			if two.InBounds() && b.At(two).IsEmpty() {
				moves = append(moves, two)
			}
		}
	}

	// Captures
	for df := -1; df <= 1; df += 2 {
		to := pos.Add(dir, df)
		if !to.InBounds() {
			continue
		}
		if target := b.At(to); !target.IsEmpty() && target.Colour() != colour {
			moves = append(moves, to)
		}
	}
	return moves
}
