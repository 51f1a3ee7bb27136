// castle.go declares the castling-rights lattice: CastleRightsType is a
// 2-bit set {KingSide, QueenSide}, and CastleRights pairs one per Color.

package chesscore

// CastleRightsType is a 2-bit lattice of castling privileges. Values stay
// in [0,3] under bitwise OR by construction: the only two bits it spans
// are CastleKingSide and CastleQueenSide.
type CastleRightsType uint8

const (
	CastleNone      CastleRightsType = 0
	CastleKingSide  CastleRightsType = 1
	CastleQueenSide CastleRightsType = 2
	CastleBoth      CastleRightsType = CastleKingSide | CastleQueenSide
)

// Has reports whether all bits of flag are set in t.
func (t CastleRightsType) Has(flag CastleRightsType) bool { return t&flag == flag }

// CastleRights holds each color's castling privileges.
type CastleRights [2]CastleRightsType

// String renders the rights in FEN order "KQkq", using "-" if none remain.
func (c CastleRights) String() string {
	var b [4]byte
	n := 0
	if c[White].Has(CastleKingSide) {
		b[n] = 'K'
		n++
	}
	if c[White].Has(CastleQueenSide) {
		b[n] = 'Q'
		n++
	}
	if c[Black].Has(CastleKingSide) {
		b[n] = 'k'
		n++
	}
	if c[Black].Has(CastleQueenSide) {
		b[n] = 'q'
		n++
	}
	if n == 0 {
		return "-"
	}
	return string(b[:n])
}

// ParseCastleRights parses the FEN castling field: "-", or any subset of
// {K,Q,k,q} given in that canonical order, with no repeats.
func ParseCastleRights(str string) (CastleRights, error) {
	var c CastleRights
	if str == "-" {
		return c, nil
	}
	if str == "" {
		return c, &ParseError{Kind: ErrCastleString, Field: "castling rights", Value: str}
	}

	const order = "KQkq"
	pos := 0
	for i := 0; i < len(str); i++ {
		idx := -1
		for j := pos; j < len(order); j++ {
			if order[j] == str[i] {
				idx = j
				break
			}
		}
		if idx == -1 {
			return CastleRights{}, &ParseError{Kind: ErrCastleString, Field: "castling rights", Value: str}
		}
		switch order[idx] {
		case 'K':
			c[White] |= CastleKingSide
		case 'Q':
			c[White] |= CastleQueenSide
		case 'k':
			c[Black] |= CastleKingSide
		case 'q':
			c[Black] |= CastleQueenSide
		}
		pos = idx + 1
	}
	return c, nil
}
