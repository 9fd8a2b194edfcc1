package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Direction tables as {rank, file} deltas.
var (
	diagonalDirs  = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	allDirs       = append(append([][2]int{}, straightDirs...), diagonalDirs...)
	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
)

// slideMoves walks each direction outward from pos. A friendly piece stops
// the ray before its square; an enemy piece is included and stops the ray.
func slideMoves(b *Board, pos chess.Position, colour chess.Colour, dirs [][2]int) []chess.Position {
	var moves []chess.Position
	for _, dir := range dirs {
		to := pos.Add(dir[0], dir[1])
		for to.InBounds() {
			target := b.At(to)
			if !target.IsEmpty() {
				if target.Colour() != colour {
					moves = append(moves, to)
				}
				break // Blocked
			}
			moves = append(moves, to)
			to = to.Add(dir[0], dir[1])
		}
	}
	return moves
}

// stepMoves tries each offset once, keeping in-bounds squares that are not
// held by a friendly piece.
func stepMoves(b *Board, pos chess.Position, colour chess.Colour, offsets [][2]int) []chess.Position {
	var moves []chess.Position
	for _, offset := range offsets {
		to := pos.Add(offset[0], offset[1])
		if !to.InBounds() {
			continue
		}
		if target := b.At(to); target.IsEmpty() || target.Colour() != colour {
			moves = append(moves, to)
		}
	}
	return moves
}
