// draw.go implements the three draw-detection predicates: fifty-move
// rule, threefold repetition, and insufficient material.

package chesscore

// FiftyMoveRule reports whether the fifty-move rule has fired: 100 or
// more plies have passed since the last capture or pawn move.
func FiftyMoveRule(s State) bool { return s.HalfmoveClock >= 100 }

// ThreefoldRepetition reports whether the board's current position has
// occurred at least three times (the current position plus two earlier
// recurrences).
//
// The scan walks b's history backward and stops at the most recent entry
// whose HalfmoveClock is 0 — the last irreversible move — since a
// position before an irreversible move can never recur: continuing past
// it would be wasted work, and wrong if an unrelated position from before
// a material change happened to share a hash. The boundary entry itself
// is still compared.
func ThreefoldRepetition(b *Board) bool {
	target := b.Hash()
	reps := 0
	history := b.History()
	for i := len(history) - 1; i >= 0; i-- {
		entry := history[i]
		if entry.Hash == target {
			reps++
			if reps >= 2 {
				return true
			}
		}
		if entry.HalfmoveClock == 0 {
			break
		}
	}
	return false
}

// darkSquares is the bitboard of all 32 dark squares (a1 is dark).
const darkSquares BitBoard = 0xAA55AA55AA55AA55

// InsufficientMaterial reports whether neither side has enough material
// to force checkmate, using the same pragmatic (not formally complete)
// heuristic described in §4.8:
//
//   - False if either side has a pawn, rook, or queen.
//   - False if either side has the bishop pair (a bishop on each square
//     color).
//   - False if either side has three or more knights.
//   - False if either side has both a bishop and a knight.
//   - False if both sides have at least one bishop and, across both
//     sides, the bishops occupy both light and dark squares.
//   - False if both sides have at least one knight.
//   - Otherwise true.
func InsufficientMaterial(b *Board) bool {
	for _, c := range [2]Color{White, Black} {
		if b.PieceBitBoard(Piece{Type: Pawn, Color: c}) != 0 {
			return false
		}
		if b.PieceBitBoard(Piece{Type: Rook, Color: c}) != 0 {
			return false
		}
		if b.PieceBitBoard(Piece{Type: Queen, Color: c}) != 0 {
			return false
		}

		bishops := b.PieceBitBoard(Piece{Type: Bishop, Color: c})
		if bishops&darkSquares != 0 && bishops&^darkSquares != 0 {
			return false // bishop pair
		}
		if b.PieceBitBoard(Piece{Type: Knight, Color: c}).PopCount() >= 3 {
			return false
		}
		if bishops != 0 && b.PieceBitBoard(Piece{Type: Knight, Color: c}) != 0 {
			return false // bishop + knight
		}
	}

	whiteBishops := b.PieceBitBoard(Piece{Type: Bishop, Color: White})
	blackBishops := b.PieceBitBoard(Piece{Type: Bishop, Color: Black})
	if whiteBishops != 0 && blackBishops != 0 {
		allBishops := whiteBishops | blackBishops
		if allBishops&darkSquares != 0 && allBishops&^darkSquares != 0 {
			return false
		}
	}

	whiteKnights := b.PieceBitBoard(Piece{Type: Knight, Color: White})
	blackKnights := b.PieceBitBoard(Piece{Type: Knight, Color: Black})
	if whiteKnights != 0 && blackKnights != 0 {
		return false
	}

	return true
}
