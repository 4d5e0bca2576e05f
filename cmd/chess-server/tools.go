// tools.go - Offline board printing and perft
package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/lgbarn/chessrules-go/internal/fen"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/perft"
)

// runTools runs the offline tools selected by flags, writing to w.
func runTools(w io.Writer) error {
	position := *fenPosition
	if position == "" {
		position = fen.Initial
	}
	g, err := game.FromFEN(position)
	if err != nil {
		return err
	}

	if *showBoard {
		if err := boardWriter(w).WriteBoard(g.Board(), g.ToMove()); err != nil {
			return err
		}
	}
	if *perftDepth > 0 {
		return runPerft(w, g, *perftDepth)
	}
	return nil
}

// boardWriter picks the output format from flags.
func boardWriter(w io.Writer) output.BoardWriter {
	switch {
	case *jsonOutput:
		return output.NewIndentedJSONWriter(w)
	case *unicode:
		return output.NewUnicodeWriter(w)
	default:
		return output.NewTextWriter(w)
	}
}

// runPerft prints the node count below each root move and the total.
func runPerft(w io.Writer, g *game.Game, depth int) error {
	start := time.Now()
	counts, total, err := perft.Divide(context.Background(), g, depth, perft.Options{Workers: *workers})
	if err != nil {
		return err
	}

	for _, c := range counts {
		promo := ""
		if c.Promotion.Valid() {
			promo = "=" + string(c.Promotion.Letter())
		}
		fmt.Fprintf(w, "%v-%v%s: %d\n", c.From, c.To, promo, c.Nodes)
	}
	fmt.Fprintf(w, "\nNodes searched: %d\n", total)
	fmt.Fprintf(w, "Time: %v\n", time.Since(start).Round(time.Millisecond))
	return nil
}
