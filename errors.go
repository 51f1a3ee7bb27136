// errors.go declares the parse-error kinds surfaced by the FEN codec and
// the scalar value parsers in value.go and castle.go.

package chesscore

import "fmt"

// ParseErrorKind identifies the sub-case of a parse failure.
type ParseErrorKind int

const (
	ErrFieldCount ParseErrorKind = iota
	ErrRankCount
	ErrFileCount
	ErrPieceLetter
	ErrPawnRank
	ErrTooManyPawns
	ErrTooManyPieces
	ErrColorLetter
	ErrCastleString
	ErrEnPassantSquare
	ErrEnPassantRank
	ErrHalfmoveRange
	ErrFullmoveRange
	ErrSquare
	ErrValue
)

var kindMessages = map[ParseErrorKind]string{
	ErrFieldCount:      "FEN must have 4 or 6 whitespace-separated fields",
	ErrRankCount:       "piece placement must list exactly 8 ranks",
	ErrFileCount:       "rank does not sum to exactly 8 files",
	ErrPieceLetter:     "not a valid piece letter",
	ErrPawnRank:        "pawn cannot stand on rank 1 or rank 8",
	ErrTooManyPawns:    "more than 8 pawns for one color",
	ErrTooManyPieces:   "more than 16 pieces for one color",
	ErrColorLetter:     `active color must be "w" or "b"`,
	ErrCastleString:    `castling rights must be "-" or a subset of "KQkq" in that order`,
	ErrEnPassantSquare: `en passant target must be "-" or a valid square`,
	ErrEnPassantRank:   "en passant target must be on rank 3 or rank 6",
	ErrHalfmoveRange:   "halfmove clock must be in [0,100] and at most twice the fullmove number",
	ErrFullmoveRange:   "fullmove number must be >= 1",
	ErrSquare:          "not a valid algebraic square",
	ErrValue:           "not a recognized value",
}

// ParseError reports a single malformed field encountered while parsing a
// FEN string or one of the scalar values (Square, File, Rank, Piece,
// CastleRights).
type ParseError struct {
	Kind  ParseErrorKind
	Field string
	Value string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("chesscore: invalid %s %q: %s", e.Field, e.Value, kindMessages[e.Kind])
}

// BuilderMisuse panics when a builder precondition is violated by the
// caller, e.g. placing a piece on an already-occupied square via
// [Board.Put]. It is a programmer error, not a recoverable condition.
type BuilderMisuse struct {
	Msg string
}

func (e *BuilderMisuse) Error() string { return "chesscore: builder misuse: " + e.Msg }
