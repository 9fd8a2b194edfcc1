// Package analysis builds position reports: the check state of one side and
// the legal moves of each of its pieces.
package analysis

import (
	"github.com/google/uuid"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/notation"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// PieceMoves lists the legal destinations of one piece.
type PieceMoves struct {
	Piece string // e.g. "white knight"
	From  chess.Position
	Moves []chess.Position
	SAN   []string // same order as Moves
}

// Report describes one side's situation on a board.
type Report struct {
	BoardID   uuid.UUID
	Placement string
	Colour    chess.Colour
	Status    engine.Status
	InCheck   bool
	Checkmate bool
	Stalemate bool
	Pieces    []PieceMoves
	MoveCount int
}

// Analyze reports on colour's position. Move generation for each piece runs
// on its own Duplicate of board through a pool of cfg.Workers goroutines;
// board itself is only read.
func Analyze(board *engine.Board, colour chess.Colour, cfg *config.Config) (*Report, error) {
	if colour != chess.White && colour != chess.Black {
		return nil, errors.Wrapf(errors.ErrInvalidColour, "analyse %v", colour)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pieces := board.Pieces(colour)
	items := make([]worker.WorkItem, len(pieces))
	for i, p := range pieces {
		items[i] = worker.WorkItem{Board: board.Duplicate(), From: p.Position(), Index: i}
	}

	pool := worker.NewPoolWithOptions(worker.LegalMoves,
		worker.WithWorkers(cfg.Workers),
		worker.WithBufferSize(len(items)))
	results := pool.Run(items)

	report := &Report{
		BoardID:   board.ID(),
		Placement: board.Placement(),
		Colour:    colour,
		InCheck:   board.IsInCheck(colour),
	}
	for _, r := range results {
		if r.Error != nil {
			return nil, errors.Wrapf(r.Error, "analyse %v", r.From)
		}
		pm := PieceMoves{Piece: r.Piece, From: r.From, Moves: r.Moves}
		for _, to := range r.Moves {
			pm.SAN = append(pm.SAN, notation.EncodeSAN(board, colour, r.From, to))
		}
		cfg.Logf(config.Commentary, "board %s: %s on %v: %d legal moves\n", shortID(report.BoardID), r.Piece, r.From, len(r.Moves))
		report.Pieces = append(report.Pieces, pm)
		report.MoveCount += len(r.Moves)
	}

	report.Status = statusFor(report.InCheck, report.MoveCount)
	report.Checkmate = report.Status == engine.Checkmate
	report.Stalemate = report.Status == engine.Stalemate

	cfg.Logf(config.Summary, "board %s: %v to move, %v, %d legal moves\n",
		shortID(report.BoardID), colour, report.Status, report.MoveCount)
	return report, nil
}

// Legal returns the legal moves of the single piece on from.
func Legal(board *engine.Board, from chess.Position) (PieceMoves, error) {
	if !from.InBounds() {
		return PieceMoves{}, errors.Wrapf(errors.ErrOutOfBounds, "legal moves from %v", from)
	}
	p := board.At(from)
	pm := PieceMoves{Piece: engine.Describe(p), From: from, Moves: board.LegalMovesFrom(from)}
	for _, to := range pm.Moves {
		pm.SAN = append(pm.SAN, notation.EncodeSAN(board, p.Colour(), from, to))
	}
	return pm, nil
}

// statusFor mirrors engine.Board.StatusOf using the counted moves.
func statusFor(inCheck bool, moves int) engine.Status {
	switch {
	case inCheck && moves == 0:
		return engine.Checkmate
	case inCheck:
		return engine.InCheck
	case moves == 0:
		return engine.Stalemate
	default:
		return engine.Normal
	}
}

func shortID(id uuid.UUID) string {
	return id.String()[:8]
}
