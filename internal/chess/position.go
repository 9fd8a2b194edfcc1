package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Position is a board coordinate. Rank 0 is White's back rank and file 0
// is the a-file.
type Position struct {
	Rank int
	File int
}

// Pos is shorthand for Position{Rank: rank, File: file}.
func Pos(rank, file int) Position {
	return Position{Rank: rank, File: file}
}

// InBounds reports whether both coordinates are in [0,7].
func (p Position) InBounds() bool {
	return p.Rank >= 0 && p.Rank < BoardSize && p.File >= 0 && p.File < BoardSize
}

// Add returns the position offset by the given rank and file deltas.
func (p Position) Add(dRank, dFile int) Position {
	return Position{Rank: p.Rank + dRank, File: p.File + dFile}
}

// String returns the square name, e.g. "e2". Off-board positions print
// their raw coordinates.
func (p Position) String() string {
	if !p.InBounds() {
		return fmt.Sprintf("[%d,%d]", p.Rank, p.File)
	}
	return string([]byte{byte('a' + p.File), byte('1' + p.Rank)})
}

// ParseSquare converts a square name such as "e2" to a Position.
func ParseSquare(s string) (Position, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 {
		return Position{}, fmt.Errorf("%q: %w", s, errors.ErrInvalidSquare)
	}
	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Position{}, fmt.Errorf("%q: %w", s, errors.ErrInvalidSquare)
	}
	return Position{Rank: int(rank - '1'), File: int(file - 'a')}, nil
}

// ParseCoordinateMove splits long algebraic move text such as "e2e4" or
// "e2-e4" into its two squares.
func ParseCoordinateMove(s string) (from, to Position, err error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), "-", "")
	if len(s) != 4 {
		return Position{}, Position{}, fmt.Errorf("%q: %w", s, errors.ErrInvalidNotation)
	}
	if from, err = ParseSquare(s[:2]); err != nil {
		return Position{}, Position{}, err
	}
	if to, err = ParseSquare(s[2:]); err != nil {
		return Position{}, Position{}, err
	}
	return from, to, nil
}
