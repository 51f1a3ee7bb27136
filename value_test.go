package chesscore

import "testing"

func TestSquareRoundTrip(t *testing.T) {
	for f := FileA; f <= FileH; f++ {
		for r := Rank1; r <= Rank8; r++ {
			sq := NewSquare(f, r)
			if sq.File() != f || sq.Rank() != r {
				t.Fatalf("NewSquare(%v,%v) round-trip: got file=%v rank=%v", f, r, sq.File(), sq.Rank())
			}
			parsed, err := ParseSquare(sq.String())
			if err != nil || parsed != sq {
				t.Fatalf("ParseSquare(%q) = %v, %v; want %v, nil", sq.String(), parsed, err, sq)
			}
		}
	}
}

func TestSquareA1IsZero(t *testing.T) {
	if NewSquare(FileA, Rank1) != 0 {
		t.Fatalf("a1 must be square 0")
	}
	if NewSquare(FileH, Rank8) != 63 {
		t.Fatalf("h8 must be square 63")
	}
}

func TestNoSquareIsNotZero(t *testing.T) {
	if NoSquare == 0 {
		t.Fatalf("NoSquare must not alias a1 (square 0)")
	}
	if NoSquare.String() != "-" {
		t.Fatalf("NoSquare.String() = %q, want \"-\"", NoSquare.String())
	}
}

func TestSquareIsLight(t *testing.T) {
	a1, _ := ParseSquare("a1")
	h1, _ := ParseSquare("h1")
	if a1.IsLight() {
		t.Fatalf("a1 must be dark")
	}
	if !h1.IsLight() {
		t.Fatalf("h1 must be light")
	}
}

func TestParseSquareRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "a", "a9", "i1", "11"} {
		if _, err := ParseSquare(s); err == nil {
			t.Fatalf("ParseSquare(%q) should have failed", s)
		}
	}
}

func TestFileRankBitBoards(t *testing.T) {
	if FileA.BitBoard().PopCount() != 8 {
		t.Fatalf("file A should have 8 squares")
	}
	if Rank1.BitBoard().PopCount() != 8 {
		t.Fatalf("rank 1 should have 8 squares")
	}
	if FileA.BitBoard()&FileH.BitBoard() != 0 {
		t.Fatalf("file A and file H must not overlap")
	}
}

func TestColorOther(t *testing.T) {
	if White.Other() != Black || Black.Other() != White {
		t.Fatalf("Color.Other must swap White and Black")
	}
}

func TestPieceStringAndParse(t *testing.T) {
	cases := []struct {
		p    Piece
		want string
	}{
		{Piece{Type: Pawn, Color: White}, "P"},
		{Piece{Type: Pawn, Color: Black}, "p"},
		{Piece{Type: King, Color: White}, "K"},
		{Piece{Type: Queen, Color: Black}, "q"},
	}
	for _, tc := range cases {
		if got := tc.p.String(); got != tc.want {
			t.Errorf("Piece%+v.String() = %q, want %q", tc.p, got, tc.want)
		}
		parsed, err := ParsePiece(tc.want[0])
		if err != nil || parsed != tc.p {
			t.Errorf("ParsePiece(%q) = %+v, %v; want %+v, nil", tc.want, parsed, err, tc.p)
		}
	}
}

func TestParsePieceRejectsUnknownLetter(t *testing.T) {
	if _, err := ParsePiece('x'); err == nil {
		t.Fatalf("ParsePiece('x') should have failed")
	}
}
