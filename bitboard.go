// bitboard.go implements the BitBoard algebra: a 64-bit set over squares,
// with shifts, masked file-wrap-safe "left"/"right" shifts, and a
// non-allocating ascending iterator over a private copy.

package chesscore

import "math/bits"

// BitBoard is a set of squares, one bit per square, indexed the same way
// as Square (bit i set means square i is a member).
type BitBoard uint64

// Bitmasks excluding the named file, used to stop a shift from wrapping
// around the edge of the board onto the opposite file.
const (
	notFileA BitBoard = 0xFEFEFEFEFEFEFEFE
	notFileH BitBoard = 0x7F7F7F7F7F7F7F7F
)

// Union returns the set union (bitwise OR).
func (b BitBoard) Union(o BitBoard) BitBoard { return b | o }

// Intersect returns the set intersection (bitwise AND).
func (b BitBoard) Intersect(o BitBoard) BitBoard { return b & o }

// SymmetricDifference returns the set symmetric difference (bitwise XOR).
func (b BitBoard) SymmetricDifference(o BitBoard) BitBoard { return b ^ o }

// Complement returns the set complement (bitwise NOT).
func (b BitBoard) Complement() BitBoard { return ^b }

// ShiftUp shifts every square one rank toward rank 8 (<<8). Squares on
// rank 8 fall off the board.
func (b BitBoard) ShiftUp() BitBoard { return b << 8 }

// ShiftDown shifts every square one rank toward rank 1 (>>8). Squares on
// rank 1 fall off the board.
func (b BitBoard) ShiftDown() BitBoard { return b >> 8 }

// ShiftRight shifts every square one file toward file H (<<1), masking
// away file H first so a square on file H does not wrap onto file A of
// the next rank up.
func (b BitBoard) ShiftRight() BitBoard { return (b & notFileH) << 1 }

// ShiftLeft shifts every square one file toward file A (>>1), masking
// away file A first so a square on file A does not wrap onto file H of
// the previous rank.
func (b BitBoard) ShiftLeft() BitBoard { return (b & notFileA) >> 1 }

// Set returns b with sq added.
func (b BitBoard) Set(sq Square) BitBoard { return b | sq.BitBoard() }

// Clear returns b with sq removed.
func (b BitBoard) Clear(sq Square) BitBoard { return b &^ sq.BitBoard() }

// Contains reports whether sq is a member of b.
func (b BitBoard) Contains(sq Square) bool { return b&sq.BitBoard() != 0 }

// PopCount returns the number of squares in b.
func (b BitBoard) PopCount() int { return bits.OnesCount64(uint64(b)) }

// LeastSignificantSquare returns the minimum-indexed square in b, or
// NoSquare if b is empty.
func (b BitBoard) LeastSignificantSquare() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLSB removes and returns the least significant square from *b, or
// NoSquare if *b is empty.
func (b *BitBoard) PopLSB() Square {
	sq := b.LeastSignificantSquare()
	if sq != NoSquare {
		*b &= *b - 1
	}
	return sq
}

// Squares returns a range-over-func iterator that yields the squares set
// in b in ascending order. It operates on a private copy of b: the
// receiver is never mutated, and no heap allocation occurs.
func (b BitBoard) Squares() func(yield func(Square) bool) {
	return func(yield func(Square) bool) {
		bb := b
		for bb != 0 {
			sq := bb.PopLSB()
			if !yield(sq) {
				return
			}
		}
	}
}

// BitBoardFromDiagram builds a BitBoard from an 8x8 ASCII diagram, ranks
// given top-down (rank 8 first), 'X' for a set square and '.' for unset.
// Whitespace between tokens is ignored. This is a build-time/test
// convenience, not part of the runtime contract: it panics on malformed
// input rather than returning an error.
func BitBoardFromDiagram(diagram string) BitBoard {
	var squares []byte
	for i := 0; i < len(diagram); i++ {
		c := diagram[i]
		if c == 'X' || c == '.' {
			squares = append(squares, c)
		}
	}
	if len(squares) != 64 {
		panic("chesscore: diagram must contain exactly 64 'X'/'.' tokens")
	}

	var bb BitBoard
	for i, c := range squares {
		if c != 'X' {
			continue
		}
		rank := Rank(7 - i/8)
		file := File(i % 8)
		bb = bb.Set(NewSquare(file, rank))
	}
	return bb
}
