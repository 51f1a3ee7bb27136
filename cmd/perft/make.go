// make.go implements a minimal make-move step and a legality filter on
// top of chesscore's pseudo-legal generator. chesscore intentionally has
// no make/unmake or self-check filtering — that belongs to a separate
// layer, and this command is that layer.
package main

import "github.com/kagamihex/chesscore"

// makeMove applies m to a clone of b and returns the resulting board.
// It handles captures, en passant, castling (rook motion), and
// promotion, and updates State (side to move, castle rights, en
// passant target, halfmove clock, fullmove number) the way a real
// make-stage would.
func makeMove(b *chesscore.Board, m chesscore.Move) *chesscore.Board {
	next := b.Clone()
	s := next.State()

	mover := s.SideToMove
	piece, _ := next.PieceAt(m.From)

	isCapture := false
	if captured, ok := next.PieceAt(m.To); ok {
		removePiece(next, captured, m.To)
		isCapture = true
	}

	isEnPassant := piece.Type == chesscore.Pawn && m.To == s.EnPassant && m.To != chesscore.NoSquare && !isCapture
	if isEnPassant {
		capturedSquare := chesscore.NewSquare(m.To.File(), m.From.Rank())
		captured, _ := next.PieceAt(capturedSquare)
		removePiece(next, captured, capturedSquare)
		isCapture = true
	}

	removePiece(next, piece, m.From)
	placed := piece
	if m.IsPromotion {
		placed = chesscore.Piece{Type: m.Promotion, Color: mover}
	}
	next.Put(placed, m.To)

	isCastle := piece.Type == chesscore.King && abs(int(m.From.File())-int(m.To.File())) == 2
	if isCastle {
		rank := m.From.Rank()
		var rookFrom, rookTo chesscore.Square
		if m.To.File() == chesscore.FileG {
			rookFrom, rookTo = chesscore.NewSquare(chesscore.FileH, rank), chesscore.NewSquare(chesscore.FileF, rank)
		} else {
			rookFrom, rookTo = chesscore.NewSquare(chesscore.FileA, rank), chesscore.NewSquare(chesscore.FileD, rank)
		}
		rook, _ := next.PieceAt(rookFrom)
		removePiece(next, rook, rookFrom)
		next.Put(rook, rookTo)
	}

	s.EnPassant = chesscore.NoSquare
	if piece.Type == chesscore.Pawn && abs(int(m.From.Rank())-int(m.To.Rank())) == 2 {
		epRank := chesscore.Rank3
		if mover == chesscore.Black {
			epRank = chesscore.Rank6
		}
		s.EnPassant = chesscore.NewSquare(m.From.File(), epRank)
	}

	if piece.Type == chesscore.King {
		s.Castle[mover] = chesscore.CastleNone
	}
	clearCastleRightsTouching(&s, m.From)
	clearCastleRightsTouching(&s, m.To)

	if piece.Type == chesscore.Pawn || isCapture {
		s.HalfmoveClock = 0
		next.TruncateHistory()
	} else {
		s.HalfmoveClock++
	}
	if isCastle || s.Castle != b.State().Castle {
		next.TruncateHistory()
	}

	if mover == chesscore.Black {
		s.FullmoveNumber++
	}
	s.SideToMove = mover.Other()

	next.SetState(s)
	s.Hash = next.Hash()
	next.SetState(s)
	next.PushHistory(s)
	return next
}

// removePiece clears p's bit from both the piece-type and color
// bitboards at sq. chesscore.Board has no exported remove primitive
// (its contract only requires put on an empty board from the FEN
// codec), so this rebuilds the board's occupancy from scratch minus sq.
func removePiece(b *chesscore.Board, p chesscore.Piece, sq chesscore.Square) {
	rebuilt := chesscore.NewBoard()
	rebuilt.SetState(b.State())
	for _, h := range b.History() {
		rebuilt.PushHistory(h)
	}
	for pt := chesscore.Pawn; pt <= chesscore.King; pt++ {
		for _, c := range [2]chesscore.Color{chesscore.White, chesscore.Black} {
			bb := b.PieceBitBoard(chesscore.Piece{Type: pt, Color: c})
			for s := range bb.Squares() {
				if s == sq {
					continue
				}
				rebuilt.Put(chesscore.Piece{Type: pt, Color: c}, s)
			}
		}
	}
	*b = *rebuilt
}

// clearCastleRightsTouching drops the castling right guarded by sq, if
// sq is a rook home square; every other square clears nothing. Covers
// both a rook moving away and a rook being captured in place.
func clearCastleRightsTouching(s *chesscore.State, sq chesscore.Square) {
	switch sq {
	case chesscore.NewSquare(chesscore.FileA, chesscore.Rank1):
		s.Castle[chesscore.White] &^= chesscore.CastleQueenSide
	case chesscore.NewSquare(chesscore.FileH, chesscore.Rank1):
		s.Castle[chesscore.White] &^= chesscore.CastleKingSide
	case chesscore.NewSquare(chesscore.FileA, chesscore.Rank8):
		s.Castle[chesscore.Black] &^= chesscore.CastleQueenSide
	case chesscore.NewSquare(chesscore.FileH, chesscore.Rank8):
		s.Castle[chesscore.Black] &^= chesscore.CastleKingSide
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
