// move.go declares Move, the per-piece PieceMoves intermediate, and a
// preallocated MoveList used by the generator to avoid dynamic
// allocation per call.

package chesscore

// Move is a single chess move: origin and destination squares plus an
// optional promotion piece type.
type Move struct {
	From      Square
	To        Square
	Promotion PieceType
	// IsPromotion distinguishes "no promotion" from a promotion to Pawn,
	// which cannot otherwise happen (PieceType's zero value is Pawn).
	IsPromotion bool
}

// promotionLetters maps a promotion PieceType to its lowercase UCI letter.
var promotionLetters = map[PieceType]byte{
	Knight: 'n',
	Bishop: 'b',
	Rook:   'r',
	Queen:  'q',
}

// String renders the move in long algebraic (UCI-compatible) notation:
// <from><to>[promotion], e.g. "e2e4" or "a7a8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion {
		s += string(promotionLetters[m.Promotion])
	}
	return s
}

// PieceMoves is the intermediate form the generator produces per origin
// square before it is expanded into individual Moves: every destination a
// piece on From can reach, as a single bitboard.
type PieceMoves struct {
	Piece Piece
	From  Square
	To    BitBoard
}

// promotionOrder is the fixed order moves are emitted in when a
// destination lies on the last rank: Knight, Bishop, Rook, Queen.
var promotionOrder = [4]PieceType{Knight, Bishop, Rook, Queen}

// MoveList is a preallocated, append-only collection of moves sized for
// the worst case (218 moves in any single chess position), to avoid
// dynamic allocation during generation.
//
// See https://www.talkchess.com/forum/viewtopic.php?t=61792
type MoveList struct {
	Moves []Move
}

// NewMoveList returns an empty MoveList with capacity for the maximum
// possible number of moves in a position.
func NewMoveList() *MoveList {
	return &MoveList{Moves: make([]Move, 0, 218)}
}

// Push appends m to the list.
func (l *MoveList) Push(m Move) { l.Moves = append(l.Moves, m) }

// Reset empties the list without releasing its backing array.
func (l *MoveList) Reset() { l.Moves = l.Moves[:0] }
