// Package chesscore implements a chess position representation and a
// pseudo-legal move generator: bitboards, FEN, magic-bitboard attack
// tables, Zobrist hashing, and draw predicates.
//
// The package performs no I/O. Each call to [GenerateMoves] allocates one
// [MoveList], preallocated for the maximum number of moves in a position.
// Attack tables and the Zobrist table are process-wide and must be
// initialized once, as early as possible, by calling [InitTables] and
// [InitZobristTable] before constructing or querying any [Board].
//
// Move generation is strictly pseudo-legal: it enforces per-piece
// movement, capture, en passant, and castling-safety rules, but it does
// not detect a self-check left behind by the generated move. A
// make/unmake layer with king-safety filtering is expected to sit above
// this package; see cmd/perft for a minimal example of such a layer.
package chesscore
