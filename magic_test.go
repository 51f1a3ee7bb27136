package chesscore

import "testing"

func TestInitTablesIsIdempotent(t *testing.T) {
	InitTables()
	e4, _ := ParseSquare("e4")
	before := BishopAttacks(e4, 0)
	InitTables()
	after := BishopAttacks(e4, 0)
	if before != after {
		t.Fatalf("InitTables must be safe to call more than once")
	}
}

func TestBishopAttackSymmetry(t *testing.T) {
	InitTables()
	for s1 := Square(0); s1 < 64; s1++ {
		attacks := BishopAttacks(s1, 0)
		for sq := range attacks.Squares() {
			if !BishopAttacks(sq, 0).Contains(s1) {
				t.Fatalf("bishop attack symmetry violated: %v attacks %v but not vice versa", s1, sq)
			}
		}
	}
}

func TestRookAttackSymmetry(t *testing.T) {
	InitTables()
	for s1 := Square(0); s1 < 64; s1++ {
		attacks := RookAttacks(s1, 0)
		for sq := range attacks.Squares() {
			if !RookAttacks(sq, 0).Contains(s1) {
				t.Fatalf("rook attack symmetry violated: %v attacks %v but not vice versa", s1, sq)
			}
		}
	}
}

func TestMagicMatchesRayCastReference(t *testing.T) {
	InitTables()
	for sq := Square(0); sq < 64; sq++ {
		mask := magicOccupancy(sq, bishopDirs)
		for _, occ := range subsetsOf(mask) {
			want := rayAttacks(sq, occ, bishopDirs)
			got := BishopAttacks(sq, occ)
			if got != want {
				t.Fatalf("bishop magic mismatch at %v with occ=%x: got %x, want %x", sq, uint64(occ), uint64(got), uint64(want))
			}
		}

		mask = magicOccupancy(sq, rookDirs)
		for _, occ := range subsetsOf(mask) {
			want := rayAttacks(sq, occ, rookDirs)
			got := RookAttacks(sq, occ)
			if got != want {
				t.Fatalf("rook magic mismatch at %v with occ=%x: got %x, want %x", sq, uint64(occ), uint64(got), uint64(want))
			}
		}
	}
}

func TestQueenAttacksIsUnionOfBishopAndRook(t *testing.T) {
	InitTables()
	e4, _ := ParseSquare("e4")
	if QueenAttacks(e4, 0) != BishopAttacks(e4, 0)|RookAttacks(e4, 0) {
		t.Fatalf("queen attacks must equal the union of bishop and rook attacks")
	}
}

func TestBishopBlockersScenario(t *testing.T) {
	InitTables()
	e4, _ := ParseSquare("e4")
	c6, _ := ParseSquare("c6")
	g2, _ := ParseSquare("g2")
	occ := BitBoard(0).Set(c6).Set(g2)

	want := []string{"d5", "c6", "f5", "g6", "h7", "d3", "c2", "b1", "f3", "g2"}
	var wantBB BitBoard
	for _, s := range want {
		sq, _ := ParseSquare(s)
		wantBB = wantBB.Set(sq)
	}

	if got := BishopAttacks(e4, occ); got != wantBB {
		t.Fatalf("bishop on e4 attacks = %x, want %x", uint64(got), uint64(wantBB))
	}
}
