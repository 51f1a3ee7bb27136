// zobrist.go implements the Zobrist key scheme used for position
// identification and (via [ThreefoldRepetition]) repetition detection.

package chesscore

import (
	"math/rand/v2"
	"sync"
)

// zobristTable is the process-wide, immutable-after-init table of random
// keys used to hash a position. One key per (square, color, piece type);
// one per (en-passant file, side-to-move); one per (color,
// CastleRightsType); and one lone key toggled when White is to move.
type zobristTable struct {
	piece       [2][6][64]uint64
	enPassant   [2][8]uint64
	castle      [2][4]uint64
	whiteToMove uint64
}

var (
	zobrist     zobristTable
	zobristOnce sync.Once
)

// InitZobristTable seeds the process-wide Zobrist table from a
// non-deterministic source. Call it once, as early as possible, before
// hashing any position. Subsequent calls are no-ops; use
// [InitZobristTableSeeded] in tests that need a reproducible table.
func InitZobristTable() {
	zobristOnce.Do(func() {
		zobrist = newZobristTable(rand.Uint64())
	})
}

// InitZobristTableSeeded (re-)initializes the process-wide Zobrist table
// from a fixed seed, bypassing the once-guard. It exists so deterministic
// test fixtures can pin the table instead of relying on the
// non-deterministic default seed — see §5's note that the seed "must not
// be reused across deterministic test fixtures unless explicitly pinned".
func InitZobristTableSeeded(seed uint64) {
	zobrist = newZobristTable(seed)
}

func newZobristTable(seed uint64) zobristTable {
	r := rand.New(rand.NewPCG(seed, seed^0xD1B54A32D192ED03))
	var t zobristTable
	for c := 0; c < 2; c++ {
		for pt := 0; pt < 6; pt++ {
			for sq := 0; sq < 64; sq++ {
				t.piece[c][pt][sq] = r.Uint64()
			}
		}
		for f := 0; f < 8; f++ {
			t.enPassant[c][f] = r.Uint64()
		}
		for cr := 0; cr < 4; cr++ {
			t.castle[c][cr] = r.Uint64()
		}
	}
	t.whiteToMove = r.Uint64()
	return t
}

// PartialHash hashes every component of s except piece placement: side to
// move, castling rights, and en-passant file.
func (s State) PartialHash() uint64 {
	var key uint64
	if s.SideToMove == White {
		key ^= zobrist.whiteToMove
	}
	key ^= zobrist.castle[White][s.Castle[White]]
	key ^= zobrist.castle[Black][s.Castle[Black]]
	if s.EnPassant != NoSquare {
		key ^= zobrist.enPassant[s.SideToMove][s.EnPassant.File()]
	}
	return key
}

// Hash returns the full Zobrist key for the board: its State's
// PartialHash XORed with a key per piece on the board.
func (b *Board) Hash() uint64 {
	key := b.state.PartialHash()
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			bb := b.PieceBitBoard(Piece{Type: pt, Color: c})
			for sq := range bb.Squares() {
				key ^= zobrist.piece[c][pt][sq]
			}
		}
	}
	return key
}
