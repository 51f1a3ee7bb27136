package chesscore

import "testing"

func TestBitBoardSetClearContains(t *testing.T) {
	var bb BitBoard
	sq, _ := ParseSquare("e4")

	if bb.Contains(sq) {
		t.Fatalf("empty bitboard must not contain e4")
	}
	bb = bb.Set(sq)
	if !bb.Contains(sq) {
		t.Fatalf("bitboard must contain e4 after Set")
	}
	bb = bb.Clear(sq)
	if bb.Contains(sq) {
		t.Fatalf("bitboard must not contain e4 after Clear")
	}
}

func TestBitBoardAlgebra(t *testing.T) {
	a, _ := ParseSquare("a1")
	b, _ := ParseSquare("b1")
	ba, bb := BitBoard(0).Set(a), BitBoard(0).Set(b)

	if ba.Union(bb).PopCount() != 2 {
		t.Fatalf("union of two disjoint singletons must have 2 members")
	}
	if ba.Intersect(bb) != 0 {
		t.Fatalf("disjoint singletons must not intersect")
	}
	if ba.SymmetricDifference(ba) != 0 {
		t.Fatalf("symmetric difference with self must be empty")
	}
	if ba.Complement().Contains(a) {
		t.Fatalf("complement must not contain a member of the original set")
	}
}

func TestShiftRightDoesNotWrap(t *testing.T) {
	h1, _ := ParseSquare("h1")
	bb := BitBoard(0).Set(h1)
	if bb.ShiftRight() != 0 {
		t.Fatalf("shifting h1 right must fall off the board, not wrap to a2")
	}
}

func TestShiftLeftDoesNotWrap(t *testing.T) {
	a1, _ := ParseSquare("a1")
	bb := BitBoard(0).Set(a1)
	if bb.ShiftLeft() != 0 {
		t.Fatalf("shifting a1 left must fall off the board, not wrap to h-something")
	}
}

func TestShiftUpDown(t *testing.T) {
	e4, _ := ParseSquare("e4")
	e5, _ := ParseSquare("e5")
	e3, _ := ParseSquare("e3")
	bb := BitBoard(0).Set(e4)
	if bb.ShiftUp() != BitBoard(0).Set(e5) {
		t.Fatalf("ShiftUp(e4) must equal {e5}")
	}
	if bb.ShiftDown() != BitBoard(0).Set(e3) {
		t.Fatalf("ShiftDown(e4) must equal {e3}")
	}
}

func TestPopCountAndLeastSignificantSquare(t *testing.T) {
	var bb BitBoard
	if bb.LeastSignificantSquare() != NoSquare {
		t.Fatalf("empty bitboard's LSB must be NoSquare")
	}
	a1, _ := ParseSquare("a1")
	c3, _ := ParseSquare("c3")
	bb = bb.Set(c3).Set(a1)
	if bb.PopCount() != 2 {
		t.Fatalf("PopCount() = %d, want 2", bb.PopCount())
	}
	if bb.LeastSignificantSquare() != a1 {
		t.Fatalf("LeastSignificantSquare() must return the lowest-indexed square")
	}
}

func TestSquaresIterationAscendingAndNonDestructive(t *testing.T) {
	a1, _ := ParseSquare("a1")
	d4, _ := ParseSquare("d4")
	h8, _ := ParseSquare("h8")
	bb := BitBoard(0).Set(h8).Set(a1).Set(d4)

	var got []Square
	for sq := range bb.Squares() {
		got = append(got, sq)
	}
	want := []Square{a1, d4, h8}
	if len(got) != len(want) {
		t.Fatalf("got %v squares, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Squares() order = %v, want ascending %v", got, want)
		}
	}
	if bb.PopCount() != 3 {
		t.Fatalf("Squares() must not mutate the receiver; PopCount() = %d, want 3", bb.PopCount())
	}
}

func TestPopLSB(t *testing.T) {
	b1, _ := ParseSquare("b1")
	g7, _ := ParseSquare("g7")
	bb := BitBoard(0).Set(b1).Set(g7)

	first := bb.PopLSB()
	if first != b1 {
		t.Fatalf("PopLSB() = %v, want b1", first)
	}
	second := bb.PopLSB()
	if second != g7 {
		t.Fatalf("PopLSB() = %v, want g7", second)
	}
	if bb != 0 {
		t.Fatalf("bitboard should be empty after popping both members")
	}
	if bb.PopLSB() != NoSquare {
		t.Fatalf("PopLSB() on an empty bitboard must return NoSquare")
	}
}

func TestBitBoardFromDiagram(t *testing.T) {
	diagram := `
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . X . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
	`
	bb := BitBoardFromDiagram(diagram)
	e4, _ := ParseSquare("e4")
	if bb.PopCount() != 1 || !bb.Contains(e4) {
		t.Fatalf("diagram with one X on rank 4 / file e should yield the singleton {e4}, got %v", bb)
	}
}

func TestBitBoardFromDiagramPanicsOnMalformedInput(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("BitBoardFromDiagram should panic on fewer than 64 tokens")
		}
	}()
	BitBoardFromDiagram("X . .")
}
