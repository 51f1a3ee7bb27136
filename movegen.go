// movegen.go implements pseudo-legal move generation: pawn pushes,
// double pushes, captures, en passant, promotions, knight/bishop/rook/
// queen moves, and king moves including castling. Nothing here filters
// for self-check — that is a separate layer's job, built on top of
// [AttackedBy].

package chesscore

// AttackedBy returns the set of squares attacked by color c's pieces,
// given the board's current occupancy. A square is attacked if any
// piece of color c could move to it ignoring whose turn it is and
// ignoring whether the mover is itself pinned.
func AttackedBy(b *Board, c Color) BitBoard {
	occ := b.Occupancy()
	var attacks BitBoard

	for sq := range b.PieceBitBoard(Piece{Type: Pawn, Color: c}).Squares() {
		attacks |= PawnAttacks(c, sq)
	}
	for sq := range b.PieceBitBoard(Piece{Type: Knight, Color: c}).Squares() {
		attacks |= KnightAttacks(sq)
	}
	bishopsQueens := b.PieceBitBoard(Piece{Type: Bishop, Color: c}) | b.PieceBitBoard(Piece{Type: Queen, Color: c})
	for sq := range bishopsQueens.Squares() {
		attacks |= BishopAttacks(sq, occ)
	}
	rooksQueens := b.PieceBitBoard(Piece{Type: Rook, Color: c}) | b.PieceBitBoard(Piece{Type: Queen, Color: c})
	for sq := range rooksQueens.Squares() {
		attacks |= RookAttacks(sq, occ)
	}
	for sq := range b.PieceBitBoard(Piece{Type: King, Color: c}).Squares() {
		attacks |= KingAttacks(sq)
	}

	return attacks
}

// IsAttacked reports whether sq is attacked by color c.
func IsAttacked(b *Board, sq Square, c Color) bool {
	return AttackedBy(b, c).Contains(sq)
}

// GenerateMoves returns every pseudo-legal move for the side to move on
// b. The list is not filtered for moves that leave the mover's own king
// in check.
func GenerateMoves(b *Board) *MoveList {
	l := NewMoveList()
	c := b.State().SideToMove

	genPawnMoves(b, c, l)
	genPieceMoves(b, c, Knight, l)
	genPieceMoves(b, c, Bishop, l)
	genPieceMoves(b, c, Rook, l)
	genPieceMoves(b, c, Queen, l)
	genKingMoves(b, c, l)

	return l
}

// pushPromotions appends either four promotion moves (in N,B,R,Q order)
// or a single non-promotion move from `from` to `to`, depending on
// whether `to` lies on the last rank for c.
func pushPromotions(l *MoveList, from, to Square, c Color) {
	lastRank := Rank8
	if c == Black {
		lastRank = Rank1
	}
	if to.Rank() != lastRank {
		l.Push(Move{From: from, To: to})
		return
	}
	for _, pt := range promotionOrder {
		l.Push(Move{From: from, To: to, Promotion: pt, IsPromotion: true})
	}
}

// genPawnMoves appends pseudo-legal pawn moves: single/double pushes,
// diagonal captures, en passant, and promotion expansion.
func genPawnMoves(b *Board, c Color, l *MoveList) {
	occ := b.Occupancy()
	enemy := b.ColorBitBoard(c.Other())
	ep := b.State().EnPassant

	startRank, doubleStepRank := Rank2, Rank4
	if c == Black {
		startRank, doubleStepRank = Rank7, Rank5
	}

	for from := range b.PieceBitBoard(Piece{Type: Pawn, Color: c}).Squares() {
		push := pawnPushes[c][from]
		if push&occ == 0 {
			to := push.LeastSignificantSquare()
			pushPromotions(l, from, to, c)

			if from.Rank() == startRank {
				dbl := NewSquare(from.File(), doubleStepRank)
				if !occ.Contains(dbl) {
					l.Push(Move{From: from, To: dbl})
				}
			}
		}

		targets := PawnAttacks(c, from) & enemy
		if ep != NoSquare && PawnAttacks(c, from).Contains(ep) {
			targets = targets.Set(ep)
		}
		for to := range targets.Squares() {
			pushPromotions(l, from, to, c)
		}
	}
}

// genPieceMoves appends pseudo-legal moves for every piece of type pt and
// color c: knight, bishop, rook, or queen.
func genPieceMoves(b *Board, c Color, pt PieceType, l *MoveList) {
	occ := b.Occupancy()
	own := b.ColorBitBoard(c)

	for from := range b.PieceBitBoard(Piece{Type: pt, Color: c}).Squares() {
		var targets BitBoard
		switch pt {
		case Knight:
			targets = KnightAttacks(from)
		case Bishop:
			targets = BishopAttacks(from, occ)
		case Rook:
			targets = RookAttacks(from, occ)
		case Queen:
			targets = QueenAttacks(from, occ)
		}
		pushPieceMoves(l, PieceMoves{Piece: Piece{Type: pt, Color: c}, From: from, To: targets &^ own})
	}
}

// pushPieceMoves expands pm's destination bitboard into individual Moves
// and appends them to l. None of the piece types that go through
// PieceMoves (knight, bishop, rook, queen, king) promote.
func pushPieceMoves(l *MoveList, pm PieceMoves) {
	for to := range pm.To.Squares() {
		l.Push(Move{From: pm.From, To: to})
	}
}

// castling home squares, fixed (no Chess960 support).
var (
	kingHome    = [2]Square{NewSquare(FileE, Rank1), NewSquare(FileE, Rank8)}
	kingSideTo  = [2]Square{NewSquare(FileG, Rank1), NewSquare(FileG, Rank8)}
	queenSideTo = [2]Square{NewSquare(FileC, Rank1), NewSquare(FileC, Rank8)}
)

// genKingMoves appends pseudo-legal king moves, including castling.
func genKingMoves(b *Board, c Color, l *MoveList) {
	own := b.ColorBitBoard(c)
	enemyAttacks := AttackedBy(b, c.Other())

	from := b.PieceBitBoard(Piece{Type: King, Color: c}).LeastSignificantSquare()
	if from == NoSquare {
		return
	}

	targets := KingAttacks(from) &^ own &^ enemyAttacks
	pushPieceMoves(l, PieceMoves{Piece: Piece{Type: King, Color: c}, From: from, To: targets})

	genCastling(b, c, from, enemyAttacks, l)
}

// genCastling appends the king-side and queen-side castling moves that
// are pseudo-legal: the right is held, the squares between king and rook
// are empty, and none of the king's path squares are attacked.
func genCastling(b *Board, c Color, from Square, enemyAttacks BitBoard, l *MoveList) {
	occ := b.Occupancy()
	rank := Rank1
	if c == Black {
		rank = Rank8
	}
	home := kingHome[c]
	if from != home {
		return
	}

	rights := b.State().Castle[c]

	if rights.Has(CastleKingSide) {
		f, g := NewSquare(FileF, rank), NewSquare(FileG, rank)
		path := BitBoard(0).Set(f).Set(g)
		attackedPath := BitBoard(0).Set(home).Set(f).Set(g)
		if occ&path == 0 && enemyAttacks&attackedPath == 0 {
			l.Push(Move{From: from, To: kingSideTo[c]})
		}
	}

	if rights.Has(CastleQueenSide) {
		d, cc, bb := NewSquare(FileD, rank), NewSquare(FileC, rank), NewSquare(FileB, rank)
		path := BitBoard(0).Set(d).Set(cc).Set(bb)
		attackedPath := BitBoard(0).Set(home).Set(d).Set(cc)
		if occ&path == 0 && enemyAttacks&attackedPath == 0 {
			l.Push(Move{From: from, To: queenSideTo[c]})
		}
	}
}
