// Package output renders board positions as text diagrams or JSON snapshots.
package output

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/snapshot"
)

// BoardWriter is the interface for writing positions to output.
type BoardWriter interface {
	// WriteBoard writes one position.
	WriteBoard(b *chess.Board, toMove chess.Colour) error
}

// TextWriter draws positions as an 8x8 diagram with White at the bottom.
type TextWriter struct {
	w       io.Writer
	unicode bool
}

// NewTextWriter creates a diagram writer using piece letters.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// NewUnicodeWriter creates a diagram writer using chess glyphs.
func NewUnicodeWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w, unicode: true}
}

const fileLabels = "  a b c d e f g h\n"

// WriteBoard writes the diagram followed by the side to move.
func (tw *TextWriter) WriteBoard(b *chess.Board, toMove chess.Colour) error {
	bw := bufio.NewWriter(tw.w)
	bw.WriteString(fileLabels)
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		label := byte('1' + rank)
		bw.WriteByte(label)
		for file := 0; file < chess.BoardSize; file++ {
			bw.WriteByte(' ')
			bw.WriteString(tw.symbol(b.PieceAt(chess.Coord{Rank: rank, File: file})))
		}
		bw.WriteByte(' ')
		bw.WriteByte(label)
		bw.WriteByte('\n')
	}
	bw.WriteString(fileLabels)
	bw.WriteString(toMove.String() + " to move\n")
	return bw.Flush()
}

var glyphs = [2][chess.NumKinds]string{
	chess.White: {"", "♙", "♘", "♗", "♖", "♕", "♔"},
	chess.Black: {"", "♟", "♞", "♝", "♜", "♛", "♚"},
}

// symbol returns the square's character: upper case for White.
func (tw *TextWriter) symbol(p *chess.Piece) string {
	switch {
	case p == nil:
		return "-"
	case tw.unicode:
		return glyphs[p.Colour][p.Kind]
	case p.Colour == chess.White:
		return string(p.Kind.Letter())
	default:
		return string(p.Kind.Letter() + ('a' - 'A'))
	}
}

// JSONWriter writes positions as snapshot documents, one per line unless
// indenting is enabled.
type JSONWriter struct {
	enc *json.Encoder
}

// NewJSONWriter creates a compact JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{enc: json.NewEncoder(w)}
}

// NewIndentedJSONWriter creates a JSON writer that indents by two spaces.
func NewIndentedJSONWriter(w io.Writer) *JSONWriter {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return &JSONWriter{enc: enc}
}

// WriteBoard writes the position as a snapshot document without a game ID.
func (jw *JSONWriter) WriteBoard(b *chess.Board, toMove chess.Colour) error {
	return jw.enc.Encode(snapshot.NewDocument("", toMove, b))
}
