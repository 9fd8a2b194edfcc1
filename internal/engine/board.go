package engine

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Board is the 8x8 occupancy grid. Every cell holds a piece or Empty, and a
// real piece's Position always equals the cell holding it.
//
// A Board is not safe for concurrent use. Callers exploring positions in
// parallel give each goroutine its own Duplicate.
type Board struct {
	// squares[rank][file]
	squares [chess.BoardSize][chess.BoardSize]Piece

	id uuid.UUID
}

// backRank is the piece order on each side's home rank, a-file first.
var backRank = []chess.Kind{
	chess.Rook, chess.Knight, chess.Bishop, chess.Queen,
	chess.King, chess.Bishop, chess.Knight, chess.Rook,
}

// NewBoard creates a board holding the standard starting position.
func NewBoard() *Board {
	b := NewEmptyBoard()
	b.Populate()
	return b
}

// NewEmptyBoard creates a board with every square empty.
func NewEmptyBoard() *Board {
	b := &Board{id: uuid.New()}
	b.clear()
	return b
}

// ID identifies this board instance. Duplicates get their own ID.
func (b *Board) ID() uuid.UUID {
	return b.id
}

func (b *Board) clear() {
	for rank := range b.squares {
		for file := range b.squares[rank] {
			b.squares[rank][file] = Empty
		}
	}
}

// Populate resets the grid to the standard 32-piece starting arrangement.
func (b *Board) Populate() {
	b.clear()
	for file, kind := range backRank {
		b.Place(chess.Pos(chess.WhiteBackRank, file), kind, chess.White)
		b.Place(chess.Pos(chess.WhitePawnRank, file), chess.Pawn, chess.White)
		b.Place(chess.Pos(chess.BlackPawnRank, file), chess.Pawn, chess.Black)
		b.Place(chess.Pos(chess.BlackBackRank, file), kind, chess.Black)
	}
}

// InBounds reports whether pos lies on the board.
func (b *Board) InBounds(pos chess.Position) bool {
	return pos.InBounds()
}

// At returns the occupant of pos. It panics if pos is off the board.
func (b *Board) At(pos chess.Position) Piece {
	mustBeInBounds(pos)
	return b.squares[pos.Rank][pos.File]
}

// Set places p on pos, replacing whatever was there, and records pos as
// the piece's position. It panics if pos is off the board.
func (b *Board) Set(pos chess.Position, p Piece) {
	mustBeInBounds(pos)
	if p == nil {
		p = Empty
	}
	p.setPosition(pos)
	b.squares[pos.Rank][pos.File] = p
}

// Place constructs a new piece of the given kind and colour on pos.
func (b *Board) Place(pos chess.Position, kind chess.Kind, colour chess.Colour) Piece {
	p := NewPiece(kind, colour, pos)
	b.Set(pos, p)
	return p
}

// Clear empties pos.
func (b *Board) Clear(pos chess.Position) {
	b.Set(pos, Empty)
}

// mustBeInBounds enforces the grid access contract. Coordinates outside
// the board are a caller bug, not a recoverable condition.
func mustBeInBounds(pos chess.Position) {
	if !pos.InBounds() {
		panic(fmt.Errorf("board access at %v: %w", pos, errors.ErrOutOfBounds))
	}
}

// Each calls fn for every square, rank 0 file 0 first.
func (b *Board) Each(fn func(pos chess.Position, p Piece)) {
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			fn(chess.Pos(rank, file), b.squares[rank][file])
		}
	}
}

// Pieces returns every piece of the given colour in board order.
func (b *Board) Pieces(colour chess.Colour) []Piece {
	var pieces []Piece
	b.Each(func(_ chess.Position, p Piece) {
		if !p.IsEmpty() && p.Colour() == colour {
			pieces = append(pieces, p)
		}
	})
	return pieces
}

// King returns the square of the given colour's king. ok is false if that
// side has no king on the board.
func (b *Board) King(colour chess.Colour) (pos chess.Position, ok bool) {
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			p := b.squares[rank][file]
			if p.Kind() == chess.King && p.Colour() == colour {
				return chess.Pos(rank, file), true
			}
		}
	}
	return chess.Position{}, false
}

// Duplicate returns a deep copy bound to a new identity. Every piece is
// reconstructed; the Empty sentinel is shared.
func (b *Board) Duplicate() *Board {
	dup := &Board{id: uuid.New()}
	for rank := range b.squares {
		for file, p := range b.squares[rank] {
			if p.IsEmpty() {
				dup.squares[rank][file] = Empty
				continue
			}
			dup.squares[rank][file] = NewPiece(p.Kind(), p.Colour(), chess.Pos(rank, file))
		}
	}
	return dup
}

// ApplyMove relocates the occupant of from to to without validation,
// capturing whatever stood on to, and leaves from empty.
func (b *Board) ApplyMove(from, to chess.Position) {
	mustBeInBounds(to)
	p := b.At(from)
	b.Set(from, Empty)
	b.Set(to, p)
}

// String renders the board as eight ranks of glyphs, rank 8 first.
func (b *Board) String() string {
	buf := make([]byte, 0, chess.BoardSize*(chess.BoardSize+1))
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		for file := 0; file < chess.BoardSize; file++ {
			buf = append(buf, Glyph(b.squares[rank][file]))
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
