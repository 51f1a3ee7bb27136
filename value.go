// value.go declares the small, total-ordered value types shared by the rest
// of the package: Square, File, Rank, Color, PieceType and Piece.

package chesscore

// Square is a board square in [0,63], encoded as rank*8+file (file A=0..H=7,
// rank 1=0..8=7), so that a1=0 and h8=63.
//
// NoSquare is the sentinel for "no square" (used for an absent en-passant
// target). It is -1 rather than a1's index 0, so that "no square" is never
// silently confused with a1 — see DESIGN.md for the rationale. (The zero
// value of a Square is still a1.)
type Square int8

// NoSquare represents the absence of a square, e.g. no en-passant target.
const NoSquare Square = -1

// NewSquare builds a Square from a file and a rank.
func NewSquare(f File, r Rank) Square { return Square(int8(r)*8 + int8(f)) }

// File returns the file component of the square.
func (s Square) File() File { return File(int8(s) & 7) }

// Rank returns the rank component of the square.
func (s Square) Rank() Rank { return Rank(int8(s) >> 3) }

// IsLight reports whether the square's diagonal color is white (light).
// a1 is dark, so IsLight is true iff file+rank is odd.
func (s Square) IsLight() bool {
	return (int8(s.File())+int8(s.Rank()))%2 != 0
}

// BitBoard returns the single-bit bitboard for the square, or the empty
// bitboard if s is NoSquare.
func (s Square) BitBoard() BitBoard {
	if s == NoSquare {
		return 0
	}
	return BitBoard(1) << uint(s)
}

// String returns the algebraic notation of the square ("a1".."h8"), or "-"
// for NoSquare.
func (s Square) String() string {
	if s == NoSquare {
		return "-"
	}
	return squareNames[s]
}

// ParseSquare parses a two-character algebraic square ("a1".."h8"), or "-"
// for NoSquare.
func ParseSquare(str string) (Square, error) {
	if str == "-" {
		return NoSquare, nil
	}
	if len(str) != 2 {
		return NoSquare, &ParseError{Kind: ErrSquare, Field: "square", Value: str}
	}
	f, err := ParseFile(str[0:1])
	if err != nil {
		return NoSquare, &ParseError{Kind: ErrSquare, Field: "square", Value: str}
	}
	r, err := ParseRank(str[1:2])
	if err != nil {
		return NoSquare, &ParseError{Kind: ErrSquare, Field: "square", Value: str}
	}
	return NewSquare(f, r), nil
}

var squareNames = [64]string{
	"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1",
	"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
	"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3",
	"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h4",
	"a5", "b5", "c5", "d5", "e5", "f5", "g5", "h5",
	"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6",
	"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
	"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8",
}

// File is a board file in [0,7], A=0..H=7.
type File int8

// The eight files.
const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// String returns the file's letter, "a".."h".
func (f File) String() string { return string(rune('a' + f)) }

// ParseFile parses a single-letter file, "a".."h".
func ParseFile(str string) (File, error) {
	if len(str) != 1 || str[0] < 'a' || str[0] > 'h' {
		return 0, &ParseError{Kind: ErrValue, Field: "file", Value: str}
	}
	return File(str[0] - 'a'), nil
}

// BitBoard returns the bitboard of all eight squares on this file.
func (f File) BitBoard() BitBoard { return fileBitBoards[f] }

var fileBitBoards = func() (bbs [8]BitBoard) {
	for f := FileA; f <= FileH; f++ {
		for r := Rank1; r <= Rank8; r++ {
			bbs[f] = bbs[f].Set(NewSquare(f, r))
		}
	}
	return bbs
}()

// Rank is a board rank in [0,7], rank "1"=0..rank "8"=7.
type Rank int8

// The eight ranks.
const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// String returns the rank's digit, "1".."8".
func (r Rank) String() string { return string(rune('1' + r)) }

// ParseRank parses a single-digit rank, "1".."8".
func ParseRank(str string) (Rank, error) {
	if len(str) != 1 || str[0] < '1' || str[0] > '8' {
		return 0, &ParseError{Kind: ErrValue, Field: "rank", Value: str}
	}
	return Rank(str[0] - '1'), nil
}

// BitBoard returns the bitboard of all eight squares on this rank.
func (r Rank) BitBoard() BitBoard { return rankBitBoards[r] }

var rankBitBoards = func() (bbs [8]BitBoard) {
	for r := Rank1; r <= Rank8; r++ {
		for f := FileA; f <= FileH; f++ {
			bbs[r] = bbs[r].Set(NewSquare(f, r))
		}
	}
	return bbs
}()

// Color is one of the two sides, White or Black.
type Color int8

const (
	White Color = iota
	Black
)

// Other returns the opposing color.
func (c Color) Other() Color { return c ^ 1 }

// String returns "white" or "black".
func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceType is a kind of chess piece, independent of color.
type PieceType int8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// pieceTypeLetters holds the uppercase (White) letter for each piece type.
var pieceTypeLetters = [6]byte{'P', 'N', 'B', 'R', 'Q', 'K'}

// Piece is an (PieceType, Color) pair.
type Piece struct {
	Type  PieceType
	Color Color
}

// String renders the piece as a single letter: uppercase for White,
// lowercase for Black, using {P,N,B,R,Q,K}.
func (p Piece) String() string {
	letter := pieceTypeLetters[p.Type]
	if p.Color == Black {
		letter += 'a' - 'A'
	}
	return string(letter)
}

// ParsePiece parses a single FEN piece letter into a Piece.
func ParsePiece(ch byte) (Piece, error) {
	color := White
	upper := ch
	if ch >= 'a' && ch <= 'z' {
		color = Black
		upper = ch - ('a' - 'A')
	}
	for t, letter := range pieceTypeLetters {
		if letter == upper {
			return Piece{Type: PieceType(t), Color: color}, nil
		}
	}
	return Piece{}, &ParseError{Kind: ErrPieceLetter, Field: "piece", Value: string(ch)}
}
