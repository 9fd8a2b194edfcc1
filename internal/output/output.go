// Package output writes analysis reports and move results as text or JSON.
package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/analysis"
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
)

// MoveResult records the outcome of one requested move.
type MoveResult struct {
	Number    int // 1-based position in the request list
	Side      chess.Colour
	Text      string // the move as the user wrote it
	From, To  chess.Position
	Decoded   bool // From and To hold the decoded squares
	Piece     string
	Err       error // nil when the move was applied
	Placement string
}

// Writer is the interface for emitting results.
// Text writes immediately; JSON buffers until Flush or Close.
type Writer interface {
	WriteMove(m MoveResult) error
	WriteLegal(pm analysis.PieceMoves) error
	WriteReport(r *analysis.Report) error
	Flush() error
	Close() error
}

// NewWriter returns the writer selected by cfg.Format on cfg.OutputFile.
func NewWriter(cfg *config.Config) Writer {
	if cfg.Format == config.JSON {
		return NewJSONWriter(cfg.OutputFile)
	}
	return NewTextWriter(cfg.OutputFile)
}

// LineWriter wraps space-separated tokens at a maximum line length.
type LineWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
	indent        string
	err           error
}

// NewLineWriter creates a LineWriter. Continuation lines start with indent.
func NewLineWriter(w io.Writer, maxLineLength int, indent string) *LineWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &LineWriter{w: w, maxLineLength: maxLineLength, indent: indent}
}

// Write emits s, preceded by a space or a line break as needed.
func (o *LineWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			o.print("\n" + o.indent)
			o.lineLength = len(o.indent)
		} else {
			o.print(" ")
			o.lineLength++
		}
	}
	o.print(s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// End terminates the current line and returns the first write error.
func (o *LineWriter) End() error {
	if o.lineLength > 0 {
		o.print("\n")
	}
	o.lineLength = 0
	o.needsSpace = false
	return o.err
}

func (o *LineWriter) print(s string) {
	if o.err != nil {
		return
	}
	_, o.err = io.WriteString(o.w, s)
}

// TextWriter writes one fact per line.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteMove writes "1. white e2e4 (white pawn e2-e4): ok" or the rejection.
func (tw *TextWriter) WriteMove(m MoveResult) error {
	status := "ok"
	if m.Err != nil {
		status = "rejected: " + m.Err.Error()
	}
	var err error
	if m.Piece != "" {
		_, err = fmt.Fprintf(tw.w, "%d. %v %s (%s %v-%v): %s\n", m.Number, m.Side, m.Text, m.Piece, m.From, m.To, status)
	} else {
		_, err = fmt.Fprintf(tw.w, "%d. %v %s: %s\n", m.Number, m.Side, m.Text, status)
	}
	return err
}

// WriteLegal writes the piece followed by its moves in SAN.
func (tw *TextWriter) WriteLegal(pm analysis.PieceMoves) error {
	lw := NewLineWriter(tw.w, 80, "    ")
	name := pm.Piece
	if name == "" {
		name = "empty"
	}
	lw.Write(fmt.Sprintf("%s %v:", name, pm.From))
	if len(pm.SAN) == 0 {
		lw.Write("-")
	}
	for _, san := range pm.SAN {
		lw.Write(san)
	}
	return lw.End()
}

// WriteReport writes the header lines of r and then every piece.
func (tw *TextWriter) WriteReport(r *analysis.Report) error {
	_, err := fmt.Fprintf(tw.w, "board %s\nplacement %s\nside %v\nstatus %v\nmoves %d\n",
		r.BoardID, r.Placement, r.Colour, r.Status, r.MoveCount)
	if err != nil {
		return err
	}
	for _, pm := range r.Pieces {
		if err := tw.WriteLegal(pm); err != nil {
			return err
		}
	}
	return nil
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close is a no-op.
func (tw *TextWriter) Close() error {
	return nil
}
