package perft

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/fen"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func mustGame(t *testing.T, position string) *game.Game {
	t.Helper()
	g, err := game.FromFEN(position)
	if err != nil {
		t.Fatalf("FromFEN(%q) error = %v", position, err)
	}
	return g
}

func TestCount(t *testing.T) {
	tests := []struct {
		name     string
		position string
		depth    int
		want     uint64
	}{
		{"initial depth 0", fen.Initial, 0, 1},
		{"initial depth 1", fen.Initial, 1, 20},
		{"initial depth 2", fen.Initial, 2, 400},
		{"initial depth 3", fen.Initial, 3, 8902},
		{"promotion choices", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", 1, 9},
		{"only the king moves in check", "k3r3/8/8/8/8/8/8/1N2K3 w - - 0 1", 1, 4},
		{"mated", "7k/8/8/8/8/8/6r1/K6r w - - 0 1", 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGame(t, tt.position)
			got, err := Count(context.Background(), g, tt.depth)
			testutil.AssertNoError(t, err)
			if got != tt.want {
				t.Errorf("Count(%d) = %d, want %d", tt.depth, got, tt.want)
			}
			testutil.AssertEqual(t, g.FEN(), tt.position, "game unchanged")
		})
	}
}

func TestMovesExpandsPromotions(t *testing.T) {
	g := mustGame(t, "4k3/P7/8/8/8/8/8/4K3 w - - 0 1")

	var kinds []chess.Kind
	for _, m := range Moves(g) {
		if m.From == testutil.At(6, 0) {
			kinds = append(kinds, m.Promotion)
		}
	}
	testutil.AssertEqual(t, kinds, []chess.Kind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight})
}

func TestDivide(t *testing.T) {
	g := game.New()

	counts, total, err := Divide(context.Background(), g, 2, Options{Workers: 4})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, total, uint64(400))
	testutil.AssertEqual(t, len(counts), 20)

	var sum uint64
	for i, c := range counts {
		if c.Nodes != 20 {
			t.Errorf("counts[%d] %v->%v = %d, want 20", i, c.From, c.To, c.Nodes)
		}
		if i > 0 && c.From.Index() < counts[i-1].From.Index() {
			t.Errorf("counts out of board order at %d", i)
		}
		sum += c.Nodes
	}
	testutil.AssertEqual(t, sum, total)
}

func TestDivideMatchesCount(t *testing.T) {
	g := mustGame(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")

	want, err := Count(context.Background(), g, 3)
	testutil.AssertNoError(t, err)

	_, got, err := Divide(context.Background(), g, 3, Options{})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, want)
}

func TestDivideDepthZero(t *testing.T) {
	counts, total, err := Divide(context.Background(), game.New(), 0, Options{})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, total, uint64(1))
	testutil.AssertEqual(t, len(counts), 0)
}

func TestCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Count(ctx, game.New(), 2)
	if !stderrors.Is(err, context.Canceled) {
		t.Errorf("Count() error = %v, want context.Canceled", err)
	}

	_, _, err = Divide(ctx, game.New(), 2, Options{Workers: 2})
	if !stderrors.Is(err, context.Canceled) {
		t.Errorf("Divide() error = %v, want context.Canceled", err)
	}
}
