// Package notation converts between move text and engine squares.
//
// Coordinate text ("e2e4") is handled directly. Standard algebraic notation
// is decoded and encoded with github.com/notnil/chess against a position
// built from the engine board, with castling and en passant disabled to
// match the engine's rules.
package notation

import (
	"fmt"
	"strings"

	nchess "github.com/notnil/chess"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Decode accepts coordinate text or SAN and returns the move's squares.
// side is the colour making the move; it only matters for SAN.
func Decode(board *engine.Board, side chess.Colour, text string) (from, to chess.Position, err error) {
	if from, to, err = chess.ParseCoordinateMove(text); err == nil {
		return from, to, nil
	}
	return DecodeSAN(board, side, text)
}

// DecodeSAN resolves a SAN move such as "Nf3" or "exd5" for side on board.
// A promotion suffix is accepted and ignored: the engine moves the pawn
// without promoting it.
func DecodeSAN(board *engine.Board, side chess.Colour, san string) (from, to chess.Position, err error) {
	pos, err := position(board, side)
	if err != nil {
		return chess.Position{}, chess.Position{}, err
	}

	move, err := nchess.AlgebraicNotation{}.Decode(pos, strings.TrimSpace(san))
	if err != nil {
		return chess.Position{}, chess.Position{}, fmt.Errorf("%q for %v: %v: %w", san, side, err, errors.ErrInvalidNotation)
	}
	return fromSquare(move.S1()), fromSquare(move.S2()), nil
}

// EncodeSAN renders the move from-to for side in SAN. Moves the SAN
// encoder does not know, such as a pawn reaching the last rank without
// promoting, fall back to coordinate text.
func EncodeSAN(board *engine.Board, side chess.Colour, from, to chess.Position) string {
	pos, err := position(board, side)
	if err != nil {
		return Coordinate(from, to)
	}
	for _, m := range pos.ValidMoves() {
		if fromSquare(m.S1()) == from && fromSquare(m.S2()) == to && m.Promo() == nchess.NoPieceType {
			return nchess.AlgebraicNotation{}.Encode(pos, m)
		}
	}
	return Coordinate(from, to)
}

// Coordinate renders a move as long algebraic text, e.g. "e2e4".
func Coordinate(from, to chess.Position) string {
	return from.String() + to.String()
}

// position builds the notnil position for board with side to move.
func position(board *engine.Board, side chess.Colour) (*nchess.Position, error) {
	fen := engine.BoardToFEN(board, side)
	opt, err := nchess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", fen, err, errors.ErrInvalidFEN)
	}
	return nchess.NewGame(opt).Position(), nil
}

// fromSquare converts a notnil square (a1 = 0) to an engine position.
func fromSquare(sq nchess.Square) chess.Position {
	return chess.Pos(int(sq.Rank()), int(sq.File()))
}
