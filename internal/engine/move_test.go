package engine

import "testing"

func TestMoveEncodingAccessors(t *testing.T) {
	m := NewMove(NewSquare(4, 1), NewSquare(4, 3), WhitePawn, NoPiece, NoPiece, true, false, false)
	if m.From() != NewSquare(4, 1) {
		t.Errorf("From() = %v, want e2", m.From())
	}
	if m.To() != NewSquare(4, 3) {
		t.Errorf("To() = %v, want e4", m.To())
	}
	if m.Moving() != WhitePawn {
		t.Errorf("Moving() = %v, want WhitePawn", m.Moving())
	}
	if !m.IsDoublePush() {
		t.Errorf("expected IsDoublePush")
	}
	if m.IsCapture() || m.IsPromotion() || m.IsEnPassant() || m.IsCastling() {
		t.Errorf("unexpected flag set on a quiet double push")
	}
	if got, want := m.String(), "e2e4"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestMoveEncodingPromotion(t *testing.T) {
	m := NewMove(NewSquare(0, 6), NewSquare(0, 7), WhitePawn, BlackRook, WhiteQueen, false, false, false)
	if !m.IsPromotion() || !m.IsCapture() {
		t.Fatalf("expected promotion and capture flags set")
	}
	if m.Promotion() != WhiteQueen {
		t.Fatalf("Promotion() = %v, want WhiteQueen", m.Promotion())
	}
	if got, want := m.String(), "a7a8q"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestParseMoveRejectsEmptyFromSquare(t *testing.T) {
	b := StartPosition()
	if _, err := ParseMove("e3e4", b); err == nil {
		t.Fatalf("expected error parsing a move from an empty square")
	}
}

func TestParseMoveRejectsBadLength(t *testing.T) {
	b := StartPosition()
	for _, text := range []string{"", "e2", "e2e", "e2e4qq"} {
		if _, err := ParseMove(text, b); err == nil {
			t.Errorf("ParseMove(%q): expected error", text)
		}
	}
}
