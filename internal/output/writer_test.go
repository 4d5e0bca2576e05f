package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/snapshot"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestTextWriter_WriteBoard(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTextWriter(&buf).WriteBoard(chess.NewInitialBoard(), chess.White); err != nil {
		t.Fatalf("WriteBoard() error = %v", err)
	}

	want := strings.Join([]string{
		"  a b c d e f g h",
		"8 r n b q k b n r 8",
		"7 p p p p p p p p 7",
		"6 - - - - - - - - 6",
		"5 - - - - - - - - 5",
		"4 - - - - - - - - 4",
		"3 - - - - - - - - 3",
		"2 P P P P P P P P 2",
		"1 R N B Q K B N R 1",
		"  a b c d e f g h",
		"White to move",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("WriteBoard() =\n%s\nwant\n%s", got, want)
	}
}

func TestUnicodeWriter_WriteBoard(t *testing.T) {
	b := testutil.BoardWith(t, testutil.W(chess.King, 0, 4), testutil.B(chess.Queen, 7, 3))

	var buf bytes.Buffer
	if err := NewUnicodeWriter(&buf).WriteBoard(b, chess.Black); err != nil {
		t.Fatalf("WriteBoard() error = %v", err)
	}

	lines := strings.Split(buf.String(), "\n")
	testutil.AssertEqual(t, lines[1], "8 - - - ♛ - - - - 8")
	testutil.AssertEqual(t, lines[8], "1 - - - - ♔ - - - 1")
	testutil.AssertEqual(t, lines[10], "Black to move")
}

func TestJSONWriter_WriteBoard(t *testing.T) {
	b := testutil.BoardWith(t, testutil.W(chess.King, 0, 4), testutil.B(chess.King, 7, 4))

	var buf bytes.Buffer
	w := NewJSONWriter(&buf)
	for i := 0; i < 2; i++ {
		if err := w.WriteBoard(b, chess.White); err != nil {
			t.Fatalf("WriteBoard() error = %v", err)
		}
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	testutil.AssertEqual(t, len(lines), 2, "one document per line")

	var doc snapshot.Document
	if err := json.Unmarshal([]byte(lines[0]), &doc); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	testutil.AssertEqual(t, doc.ToMove, chess.White)
	testutil.AssertEqual(t, len(doc.Pieces), 2)
	testutil.AssertEqual(t, doc.GameID, "")
}

func TestIndentedJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	if err := NewIndentedJSONWriter(&buf).WriteBoard(chess.NewInitialBoard(), chess.White); err != nil {
		t.Fatalf("WriteBoard() error = %v", err)
	}
	testutil.AssertTrue(t, strings.Contains(buf.String(), "\n  \"toMove\": \"white\""), "indented output")
}

func TestBoardWriter_Interface(t *testing.T) {
	var _ BoardWriter = NewTextWriter(nil)
	var _ BoardWriter = NewJSONWriter(nil)
}
