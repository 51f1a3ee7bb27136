// board.go declares Board: the position container. Board owns its
// bitboards and its State history exclusively; attack tables and the
// Zobrist table are process-wide and shared.

package chesscore

// Board is a chess position: six piece-type bitboards, two color
// bitboards, the current State, and a history of prior States used for
// repetition detection.
//
// Derived invariants (maintained by every mutator in this package):
//   - The six piece-type bitboards are pairwise disjoint.
//   - ColorBitBoard(White) ^ ColorBitBoard(Black) equals the union of all
//     six piece-type bitboards.
type Board struct {
	pieceBB [6]BitBoard
	colorBB [2]BitBoard
	state   State
	history []State
}

// NewBoard returns an empty board (no pieces) with the initial State.
func NewBoard() *Board {
	return &Board{state: NewState()}
}

// PieceBitBoard returns the bitboard of squares occupied by p.
func (b *Board) PieceBitBoard(p Piece) BitBoard {
	return b.pieceBB[p.Type] & b.colorBB[p.Color]
}

// PieceTypeBitBoard returns the bitboard of squares occupied by pt, of
// either color.
func (b *Board) PieceTypeBitBoard(pt PieceType) BitBoard { return b.pieceBB[pt] }

// ColorBitBoard returns the bitboard of squares occupied by any piece of
// color c.
func (b *Board) ColorBitBoard(c Color) BitBoard { return b.colorBB[c] }

// Occupancy returns the bitboard of all occupied squares.
func (b *Board) Occupancy() BitBoard { return b.colorBB[White] | b.colorBB[Black] }

// PieceAt returns the piece standing on sq, and false if sq is empty.
func (b *Board) PieceAt(sq Square) (Piece, bool) {
	if !b.Occupancy().Contains(sq) {
		return Piece{}, false
	}
	c := White
	if b.colorBB[Black].Contains(sq) {
		c = Black
	}
	for pt := Pawn; pt <= King; pt++ {
		if b.pieceBB[pt].Contains(sq) {
			return Piece{Type: pt, Color: c}, true
		}
	}
	return Piece{}, false
}

// Put places p on sq, ORing the bit into both the piece-type and color
// bitboards. The caller must ensure sq is empty first: placing onto an
// occupied square panics with a *BuilderMisuse, since that would silently
// violate the one-piece-per-square invariant.
func (b *Board) Put(p Piece, sq Square) {
	if b.Occupancy().Contains(sq) {
		panic(&BuilderMisuse{Msg: "Put: square " + sq.String() + " is already occupied"})
	}
	b.pieceBB[p.Type] = b.pieceBB[p.Type].Set(sq)
	b.colorBB[p.Color] = b.colorBB[p.Color].Set(sq)
}

// State returns the board's current State.
func (b *Board) State() State { return b.state }

// SetState replaces the board's current State.
func (b *Board) SetState(s State) { b.state = s }

// History returns the board's prior-State stack, oldest first.
func (b *Board) History() []State { return b.history }

// PushHistory appends s to the history stack. A make-stage calls this
// after every move, with s.Hash set to the resulting board's [Board.Hash]
// so [ThreefoldRepetition] can tell the position apart from one that
// merely shares side-to-move, castling rights, and en-passant file; see
// [Board.TruncateHistory] for the irreversible-move case.
func (b *Board) PushHistory(s State) { b.history = append(b.history, s) }

// TruncateHistory clears the history stack. It is called whenever an
// irreversible move is made (capture, pawn move, castling, or a castling
// rights change) since no earlier position can ever recur once such a
// move has been played.
func (b *Board) TruncateHistory() { b.history = b.history[:0] }

// Clone returns a deep copy of b: its own bitboards, state, and a copy of
// its history slice.
func (b *Board) Clone() *Board {
	clone := &Board{
		pieceBB: b.pieceBB,
		colorBB: b.colorBB,
		state:   b.state,
	}
	if len(b.history) > 0 {
		clone.history = make([]State, len(b.history))
		copy(clone.history, b.history)
	}
	return clone
}

