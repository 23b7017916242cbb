package engine

import "testing"

func TestBitboardSetClearHas(t *testing.T) {
	var b Bitboard
	b = b.Set(NewSquare(4, 3)) // e4
	if !b.Has(NewSquare(4, 3)) {
		t.Fatalf("expected e4 to be a member after Set")
	}
	b = b.Clear(NewSquare(4, 3))
	if b.Has(NewSquare(4, 3)) {
		t.Fatalf("expected e4 to be cleared")
	}
}

func TestBitboardPopLSB(t *testing.T) {
	b := NewSquare(0, 0).Bit() | NewSquare(7, 7).Bit() | NewSquare(3, 3).Bit()
	var got []Square
	for b != 0 {
		got = append(got, b.PopLSB())
	}
	want := []Square{NewSquare(0, 0), NewSquare(3, 3), NewSquare(7, 7)}
	if len(got) != len(want) {
		t.Fatalf("got %d squares, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("PopLSB order[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestBitboardShiftsDoNotWrap(t *testing.T) {
	aFile := NewSquare(0, 3).Bit() // a4
	if aFile.ShiftLeft() != 0 {
		t.Fatalf("expected ShiftLeft off the a-file to vanish, got %#x", uint64(aFile.ShiftLeft()))
	}
	hFile := NewSquare(7, 3).Bit() // h4
	if hFile.ShiftRight() != 0 {
		t.Fatalf("expected ShiftRight off the h-file to vanish, got %#x", uint64(hFile.ShiftRight()))
	}
}

func TestBitboardPopCount(t *testing.T) {
	b := NewSquare(0, 0).Bit() | NewSquare(1, 1).Bit() | NewSquare(2, 2).Bit()
	if b.PopCount() != 3 {
		t.Fatalf("PopCount() = %d, want 3", b.PopCount())
	}
}
