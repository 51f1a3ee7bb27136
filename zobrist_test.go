package chesscore

import "testing"

func TestHashDependsOnlyOnPlacementAndState(t *testing.T) {
	InitZobristTableSeeded(1)

	a, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	b, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 5 3")
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}

	// Halfmove/fullmove counters are not part of the hashed tuple, so two
	// positions differing only in those counters must hash the same.
	if a.Hash() != b.Hash() {
		t.Fatalf("hash must not depend on halfmove/fullmove counters")
	}
}

func TestHashChangesWithSideToMove(t *testing.T) {
	InitZobristTableSeeded(1)

	white, _ := ParseFEN("8/8/8/8/4N3/8/8/8 w - - 0 1")
	black, _ := ParseFEN("8/8/8/8/4N3/8/8/8 b - - 0 1")
	if white.Hash() == black.Hash() {
		t.Fatalf("hash must change when side to move changes")
	}
}

func TestHashChangesWithCastleRights(t *testing.T) {
	InitZobristTableSeeded(1)

	full, _ := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	partial, _ := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w Kq - 0 1")
	if full.Hash() == partial.Hash() {
		t.Fatalf("hash must change when castling rights change")
	}
}

func TestHashChangesWithEnPassant(t *testing.T) {
	InitZobristTableSeeded(1)

	none, _ := ParseFEN("8/8/8/pP6/8/8/8/k6K w - - 0 1")
	ep, _ := ParseFEN("8/8/8/pP6/8/8/8/k6K w - a6 0 1")
	if none.Hash() == ep.Hash() {
		t.Fatalf("hash must change when the en-passant target changes")
	}
}

func TestHashChangesWithPlacement(t *testing.T) {
	InitZobristTableSeeded(1)

	a, _ := ParseFEN("8/8/8/8/4N3/8/8/8 w - - 0 1")
	b, _ := ParseFEN("8/8/8/8/4B3/8/8/8 w - - 0 1")
	if a.Hash() == b.Hash() {
		t.Fatalf("hash must change when piece placement changes")
	}
}

func TestPartialHashIsSeedStable(t *testing.T) {
	InitZobristTableSeeded(42)
	s := NewState()
	first := s.PartialHash()
	InitZobristTableSeeded(42)
	second := s.PartialHash()
	if first != second {
		t.Fatalf("the same seed must reproduce the same table and hence the same hash")
	}
}
