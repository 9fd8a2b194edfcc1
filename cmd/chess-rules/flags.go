// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

var (
	// Position
	fenFlag  = flag.String("fen", engine.InitialFEN, "Starting position in FEN (placement and side are used)")
	sideFlag = flag.String("side", "", "Side to move, white or black (default: taken from -fen)")

	// Commands
	movesFlag   = flag.String("moves", "", "Comma-separated coordinate moves to play, e.g. e2e4,e7e5")
	sanFlag     = flag.String("san", "", "Comma-separated SAN moves to play, e.g. e4,e5,Nf3")
	legalFlag   = flag.String("legal", "", "List the legal moves of the piece on this square")
	analyzeFlag = flag.Bool("analyze", false, "Report check state and legal moves for the side to move")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("J", false, "Output in JSON format")

	// Runtime
	workers   = flag.Int("workers", 0, "Analysis worker goroutines (default: number of CPUs)")
	verbosity = flag.Int("v", config.Summary, "Log verbosity: 0 silent, 1 summary, 2 per move")
	logFile   = flag.String("l", "", "Write diagnostics to this file instead of stderr")

	// Meta
	version = flag.Bool("version", false, "Print version and exit")
	help    = flag.Bool("h", false, "Show help")
)

// options is the command to run, separated from the flag globals so it can
// be driven directly.
type options struct {
	fen     string
	side    string
	moves   string
	san     bool // moves holds SAN rather than coordinates
	legal   string
	analyze bool
}

// optionsFromFlags collects the command flags. -moves and -san are mutually
// exclusive.
func optionsFromFlags() (options, error) {
	opts := options{
		fen:     *fenFlag,
		side:    *sideFlag,
		moves:   *movesFlag,
		legal:   *legalFlag,
		analyze: *analyzeFlag,
	}
	if *sanFlag != "" {
		if *movesFlag != "" {
			return options{}, fmt.Errorf("-moves and -san together: %w", errors.ErrInvalidConfig)
		}
		opts.moves = *sanFlag
		opts.san = true
	}
	return opts, nil
}

// applyFlags transfers the runtime flags onto cfg and validates the result.
func applyFlags(cfg *config.Config) error {
	cfg.Verbosity = *verbosity
	cfg.Format = config.Text
	if *jsonOutput {
		cfg.Format = config.JSON
	}
	if *workers != 0 {
		cfg.Workers = *workers
	}
	return cfg.Validate()
}
