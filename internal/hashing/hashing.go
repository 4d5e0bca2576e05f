// Package hashing computes Zobrist hashes of positions and counts how often
// each position has occurred in a game.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

const numSquares = chess.BoardSize * chess.BoardSize

// zobristKeys holds one random key per hashed feature.
type zobristKeys struct {
	pieces    [2][chess.NumKinds][numSquares]uint64
	moved     [numSquares]uint64
	enPassant [numSquares]uint64
	black     uint64
}

// The seed is fixed so hashes are stable between runs.
var keys = newZobristKeys(0x5eed)

func newZobristKeys(seed int64) *zobristKeys {
	rng := rand.New(rand.NewSource(seed))
	k := &zobristKeys{}
	for c := range k.pieces {
		for kind := chess.Pawn; kind < chess.NumKinds; kind++ {
			for sq := 0; sq < numSquares; sq++ {
				k.pieces[c][kind][sq] = rng.Uint64()
			}
		}
	}
	for sq := 0; sq < numSquares; sq++ {
		k.moved[sq] = rng.Uint64()
		k.enPassant[sq] = rng.Uint64()
	}
	k.black = rng.Uint64()
	return k
}

// Hash returns the Zobrist hash of b with toMove to play. Besides piece
// placement it covers the moved flags of kings and rooks and en-passant
// vulnerability, so positions with different castling or capture options
// hash differently. Only the side that just moved can have a pawn open to
// en passant; a flag left on a toMove pawn is stale and ignored.
func Hash(b *chess.Board, toMove chess.Colour) uint64 {
	var h uint64
	for _, p := range b.Pieces() {
		sq := p.Position.Index()
		h ^= keys.pieces[p.Colour][p.Kind][sq]
		if p.HasMoved && p.TracksMoved() {
			h ^= keys.moved[sq]
		}
		if p.EnPassantVulnerable && p.Colour == toMove.Opposite() {
			h ^= keys.enPassant[sq]
		}
	}
	if toMove == chess.Black {
		h ^= keys.black
	}
	return h
}

// History counts position occurrences over the course of a game.
// It is not safe for concurrent use.
type History struct {
	counts map[uint64]int
	plies  int
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{counts: make(map[uint64]int)}
}

// Record notes one more occurrence of hash and returns its count so far.
func (h *History) Record(hash uint64) int {
	h.counts[hash]++
	h.plies++
	return h.counts[hash]
}

// Count returns how many times hash has been recorded.
func (h *History) Count(hash uint64) int {
	return h.counts[hash]
}

// Len returns the number of recorded positions, repeats included.
func (h *History) Len() int {
	return h.plies
}

// UniqueCount returns the number of distinct positions.
func (h *History) UniqueCount() int {
	return len(h.counts)
}

// Copy returns an independent copy of the history.
func (h *History) Copy() *History {
	nh := &History{counts: make(map[uint64]int, len(h.counts)), plies: h.plies}
	for hash, n := range h.counts {
		nh.counts[hash] = n
	}
	return nh
}
