package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/analysis"
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// JSONMove represents a requested move in JSON format.
type JSONMove struct {
	Number    int    `json:"number"`
	Side      string `json:"side"`
	Move      string `json:"move"`
	From      string `json:"from,omitempty"`
	To        string `json:"to,omitempty"`
	Piece     string `json:"piece,omitempty"`
	Accepted  bool   `json:"accepted"`
	Error     string `json:"error,omitempty"`
	Placement string `json:"placement"`
}

// JSONPieceMoves represents one piece's legal moves in JSON format.
type JSONPieceMoves struct {
	Piece string   `json:"piece"`
	From  string   `json:"from"`
	Moves []string `json:"moves"`
	SAN   []string `json:"san"`
}

// JSONReport represents an analysis report in JSON format.
type JSONReport struct {
	BoardID   string           `json:"boardId"`
	Placement string           `json:"placement"`
	Side      string           `json:"side"`
	Status    string           `json:"status"`
	InCheck   bool             `json:"inCheck"`
	Checkmate bool             `json:"checkmate"`
	Stalemate bool             `json:"stalemate"`
	MoveCount int              `json:"moveCount"`
	Pieces    []JSONPieceMoves `json:"pieces"`
}

// JSONOutput is the single document a JSONWriter emits.
type JSONOutput struct {
	Moves   []JSONMove       `json:"moves,omitempty"`
	Legal   []JSONPieceMoves `json:"legal,omitempty"`
	Reports []*JSONReport    `json:"reports,omitempty"`
}

// MoveToJSON converts a move result to JSON format.
func MoveToJSON(m MoveResult) JSONMove {
	jm := JSONMove{
		Number:    m.Number,
		Side:      m.Side.String(),
		Move:      m.Text,
		Piece:     m.Piece,
		Accepted:  m.Err == nil,
		Placement: m.Placement,
	}
	if m.Decoded {
		jm.From = m.From.String()
		jm.To = m.To.String()
	}
	if m.Err != nil {
		jm.Error = m.Err.Error()
	}
	return jm
}

// PieceMovesToJSON converts one piece's moves to JSON format.
func PieceMovesToJSON(pm analysis.PieceMoves) JSONPieceMoves {
	return JSONPieceMoves{
		Piece: pm.Piece,
		From:  pm.From.String(),
		Moves: squareNames(pm.Moves),
		SAN:   nonNil(pm.SAN),
	}
}

// ReportToJSON converts an analysis report to JSON format.
func ReportToJSON(r *analysis.Report) *JSONReport {
	jr := &JSONReport{
		BoardID:   r.BoardID.String(),
		Placement: r.Placement,
		Side:      r.Colour.String(),
		Status:    r.Status.String(),
		InCheck:   r.InCheck,
		Checkmate: r.Checkmate,
		Stalemate: r.Stalemate,
		MoveCount: r.MoveCount,
		Pieces:    make([]JSONPieceMoves, 0, len(r.Pieces)),
	}
	for _, pm := range r.Pieces {
		jr.Pieces = append(jr.Pieces, PieceMovesToJSON(pm))
	}
	return jr
}

func squareNames(squares []chess.Position) []string {
	names := make([]string, len(squares))
	for i, sq := range squares {
		names[i] = sq.String()
	}
	return names
}

// nonNil keeps empty lists as [] rather than null.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// JSONWriter buffers results and writes them as one JSON document on
// Flush or Close.
type JSONWriter struct {
	w   io.Writer
	doc JSONOutput
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteMove buffers a move result.
func (jw *JSONWriter) WriteMove(m MoveResult) error {
	jw.doc.Moves = append(jw.doc.Moves, MoveToJSON(m))
	return nil
}

// WriteLegal buffers one piece's legal moves.
func (jw *JSONWriter) WriteLegal(pm analysis.PieceMoves) error {
	jw.doc.Legal = append(jw.doc.Legal, PieceMovesToJSON(pm))
	return nil
}

// WriteReport buffers an analysis report.
func (jw *JSONWriter) WriteReport(r *analysis.Report) error {
	jw.doc.Reports = append(jw.doc.Reports, ReportToJSON(r))
	return nil
}

// Flush writes everything buffered so far as one document.
func (jw *JSONWriter) Flush() error {
	if len(jw.doc.Moves) == 0 && len(jw.doc.Legal) == 0 && len(jw.doc.Reports) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&jw.doc)

	jw.doc = JSONOutput{}
	return err
}

// Close flushes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
