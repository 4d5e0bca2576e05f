// Package perft counts the positions reachable from a game in a fixed number
// of plies. The counts follow the game's own move rules, so they exercise
// move generation, check handling and promotion end to end.
package perft

import (
	"context"
	"runtime"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// promotions are tried for every promoting pawn move.
var promotions = []chess.Kind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// Move is one ply from a position.
type Move struct {
	From      chess.Coord `json:"from"`
	To        chess.Coord `json:"to"`
	Promotion chess.Kind  `json:"promotion,omitempty"`
}

// RootCount is the node count below one root move.
type RootCount struct {
	Move
	Nodes uint64 `json:"nodes"`
}

// Moves lists every move the side to move may play, one per promotion piece
// for promoting pawn moves.
func Moves(g *game.Game) []Move {
	var moves []Move
	for _, pm := range g.AllLegalMoves() {
		for _, to := range pm.To {
			if !g.IsPromotion(pm.From, to) {
				moves = append(moves, Move{From: pm.From, To: to})
				continue
			}
			for _, k := range promotions {
				moves = append(moves, Move{From: pm.From, To: to, Promotion: k})
			}
		}
	}
	return moves
}

// Count returns the number of positions depth plies below g. g is not
// modified.
func Count(ctx context.Context, g *game.Game, depth int) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if depth <= 0 {
		return 1, nil
	}

	var nodes uint64
	for _, m := range Moves(g) {
		if depth == 1 {
			nodes++
			continue
		}
		child, err := play(g, m)
		if err != nil {
			return 0, err
		}
		n, err := Count(ctx, child, depth-1)
		if err != nil {
			return 0, err
		}
		nodes += n
	}
	return nodes, nil
}

// Options configures Divide.
type Options struct {
	// Workers is the number of goroutines; 0 means one per CPU.
	Workers int
}

// Divide counts the positions below each root move in parallel and returns
// the per-move counts, in the order of Moves, with their total.
func Divide(ctx context.Context, g *game.Game, depth int, opts Options) ([]RootCount, uint64, error) {
	if depth <= 0 {
		return nil, 1, nil
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	roots := Moves(g)
	pool := worker.NewPool(search, worker.WithWorkers(workers), worker.WithBufferSize(len(roots)+1))
	pool.Start(ctx)

	for i, m := range roots {
		child, err := play(g, m)
		if err != nil {
			pool.Stop()
			pool.Close()
			return nil, 0, err
		}
		pool.Submit(worker.WorkItem{Game: child, Depth: depth - 1, Index: i})
	}
	go pool.Close()

	counts := make([]RootCount, len(roots))
	var (
		total    uint64
		firstErr error
	)
	for r := range pool.Results() {
		if r.Error != nil {
			if firstErr == nil {
				firstErr = r.Error
				pool.Stop()
			}
			continue
		}
		counts[r.Index] = RootCount{Move: roots[r.Index], Nodes: r.Nodes}
		total += r.Nodes
	}
	if firstErr != nil {
		return nil, 0, firstErr
	}
	return counts, total, nil
}

// search is the worker body for Divide.
func search(ctx context.Context, item worker.WorkItem) worker.ProcessResult {
	nodes, err := Count(ctx, item.Game, item.Depth)
	return worker.ProcessResult{Index: item.Index, Nodes: nodes, Error: err}
}

func play(g *game.Game, m Move) (*game.Game, error) {
	child := g.Copy()
	if _, err := child.Move(m.From, m.To, m.Promotion); err != nil {
		return nil, err
	}
	return child, nil
}
