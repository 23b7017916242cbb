package engine

import "testing"

func TestIsSquareAttackedByPawn(t *testing.T) {
	b, err := FromFEN("8/8/8/3p4/8/8/8/k6K w - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	if !b.IsSquareAttacked(NewSquare(2, 3), Black) { // c4, attacked by black pawn on d5
		t.Fatalf("expected c4 to be attacked by the black pawn on d5")
	}
	if b.IsSquareAttacked(NewSquare(3, 3), Black) { // d4, straight ahead is not a pawn attack
		t.Fatalf("did not expect d4 to be attacked by a pawn push")
	}
}

func TestCastlingBlockedByCheck(t *testing.T) {
	b, err := FromFEN("4r3/8/8/8/8/8/8/4K2R w K - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	for _, m := range b.LegalMoves() {
		if m.IsCastling() {
			t.Fatalf("did not expect castling to be legal while in check")
		}
	}
}

func TestCastlingBlockedByAttackedTransitSquare(t *testing.T) {
	// Black rook on f8 attacks f1, the king's transit square for O-O.
	b, err := FromFEN("5r2/8/8/8/8/8/8/4K2R w K - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	for _, m := range b.LegalMoves() {
		if m.IsCastling() {
			t.Fatalf("did not expect castling through an attacked square to be legal")
		}
	}
}

func TestCastlingAllowedWhenClear(t *testing.T) {
	b, err := FromFEN("4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	found := false
	for _, m := range b.LegalMoves() {
		if m.IsCastling() {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected kingside castling to be available")
	}
}

func TestLegalMovesExcludesSelfCheck(t *testing.T) {
	// White king on e1, white rook pinned on e-file by black rook on e8;
	// moving the rook off the e-file must not be legal.
	b, err := FromFEN("4r3/8/8/8/8/8/4R3/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	for _, m := range b.LegalMoves() {
		if m.From() == NewSquare(4, 1) && m.To().File() != 4 {
			t.Fatalf("pinned rook move %v should not be legal", m)
		}
	}
}
