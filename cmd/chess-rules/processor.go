package main

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/analysis"
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/notation"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

// run executes opts against cfg. Moves are played first, then -legal and
// -analyze look at the resulting position. With no command at all the
// position is analysed. The first rejected move stops the run and is
// returned after its result has been written.
func run(opts options, cfg *config.Config) error {
	board, side, err := loadPosition(opts.fen, opts.side)
	if err != nil {
		return err
	}
	cfg.Logf(config.Commentary, "board %s: loaded %s, %v to move\n", board.ID(), board.Placement(), side)

	w := output.NewWriter(cfg)
	err = execute(opts, cfg, board, side, w)
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	return err
}

func execute(opts options, cfg *config.Config, board *engine.Board, side chess.Colour, w output.Writer) error {
	side, err := playMoves(board, side, splitMoves(opts.moves), opts.san, cfg, w)
	if err != nil {
		return err
	}

	if opts.legal != "" {
		from, err := chess.ParseSquare(opts.legal)
		if err != nil {
			return err
		}
		pm, err := analysis.Legal(board, from)
		if err != nil {
			return err
		}
		if err := w.WriteLegal(pm); err != nil {
			return err
		}
	}

	if opts.analyze || (opts.moves == "" && opts.legal == "") {
		report, err := analysis.Analyze(board, side, cfg)
		if err != nil {
			return err
		}
		if err := w.WriteReport(report); err != nil {
			return err
		}
	}
	return nil
}

// loadPosition builds the board from fen. side overrides the FEN's side
// to move when set.
func loadPosition(fen, side string) (*engine.Board, chess.Colour, error) {
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil, chess.NoColour, err
	}
	toMove, err := engine.SideToMove(fen)
	if err != nil {
		return nil, chess.NoColour, err
	}
	if side != "" {
		if toMove, err = chess.ParseColour(side); err != nil {
			return nil, chess.NoColour, err
		}
	}
	return board, toMove, nil
}

// playMoves requests each move in turn, alternating sides after every
// accepted move, and returns the side to move afterwards.
func playMoves(board *engine.Board, side chess.Colour, moves []string, san bool, cfg *config.Config, w output.Writer) (chess.Colour, error) {
	for i, text := range moves {
		result := output.MoveResult{Number: i + 1, Side: side, Text: text}

		from, to, err := decodeMove(board, side, text, san)
		if err == nil {
			result.From, result.To, result.Decoded = from, to, true
			result.Piece = engine.Describe(board.At(from))
			err = board.RequestMove(from, to)
		}
		result.Err = err
		result.Placement = board.Placement()

		if werr := w.WriteMove(result); werr != nil {
			return side, werr
		}
		if err != nil {
			cfg.Logf(config.Summary, "board %s: move %d (%s) rejected: %v\n", board.ID(), i+1, text, err)
			return side, fmt.Errorf("move %d %q: %w", i+1, text, err)
		}
		cfg.Logf(config.Commentary, "board %s: %v played %s\n", board.ID(), side, text)
		side = side.Opposite()
	}
	if len(moves) > 0 {
		cfg.Logf(config.Summary, "board %s: %d move(s) played, %v to move\n", board.ID(), len(moves), side)
	}
	return side, nil
}

func decodeMove(board *engine.Board, side chess.Colour, text string, san bool) (from, to chess.Position, err error) {
	if san {
		return notation.Decode(board, side, text)
	}
	from, to, err = chess.ParseCoordinateMove(text)
	if err != nil {
		return from, to, errors.Wrapf(err, "coordinate move")
	}
	return from, to, nil
}

// splitMoves splits a comma or space separated move list.
func splitMoves(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}
