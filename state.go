// state.go declares State: the non-piece-placement part of a position.

package chesscore

// State is the side-to-move, castling rights, en-passant target, and move
// counters of a position — everything about a Board except where the
// pieces stand.
//
// Invariant: EnPassant's rank is Rank3 iff SideToMove is Black (the pawn
// that just moved was White), and Rank6 iff SideToMove is White.
//
// Hash is the full position Zobrist key (see [Board.Hash]) as of the
// moment this State was captured. It is the caller's responsibility to
// set it before pushing a State onto a Board's history — [Board.State]
// does not compute it, since a live board's hash can change as pieces
// are placed. [ThreefoldRepetition] compares history entries by this
// field, not by [State.PartialHash], which omits piece placement.
type State struct {
	SideToMove     Color
	Castle         CastleRights
	EnPassant      Square
	HalfmoveClock  int
	FullmoveNumber int
	Hash           uint64
}

// NewState returns the initial-position state: White to move, full
// castling rights, no en-passant target, and move 1.
func NewState() State {
	return State{
		SideToMove:     White,
		Castle:         CastleRights{CastleBoth, CastleBoth},
		EnPassant:      NoSquare,
		HalfmoveClock:  0,
		FullmoveNumber: 1,
	}
}
