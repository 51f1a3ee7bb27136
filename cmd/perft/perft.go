package main

import "github.com/kagamihex/chesscore"

// perft walks the move-generation tree of legal moves to the given
// depth and counts leaf nodes. Pseudo-legal moves from
// chesscore.GenerateMoves are filtered here by checking whether the
// mover's king is left in check — the self-check filter chesscore
// deliberately omits.
//
// See https://www.chessprogramming.org/Perft_Results
func perft(b *chesscore.Board, depth int) int {
	if depth == 0 {
		return 1
	}

	mover := b.State().SideToMove
	nodes := 0
	for _, m := range chesscore.GenerateMoves(b).Moves {
		next := makeMove(b, m)
		king := next.PieceBitBoard(chesscore.Piece{Type: chesscore.King, Color: mover}).LeastSignificantSquare()
		if king != chesscore.NoSquare && chesscore.IsAttacked(next, king, mover.Other()) {
			continue
		}
		nodes += perft(next, depth-1)
	}
	return nodes
}
