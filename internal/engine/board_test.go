package engine

import "testing"

// checkInvariants re-derives every redundant representation from Mailbox
// and compares it against what the board actually holds (I1-I4).
func checkInvariants(t *testing.T, b *Board) {
	t.Helper()

	var wantPieceBB [12]Bitboard
	var wantColorBB [2]Bitboard
	var wantCounts [12]int
	var wantMaterial [2]int

	for sq := Square(0); sq < 64; sq++ {
		p := b.Mailbox[sq]
		if p.IsNone() {
			continue
		}
		wantPieceBB[p] = wantPieceBB[p].Set(sq)
		wantColorBB[p.Color()] = wantColorBB[p.Color()].Set(sq)
		wantCounts[p]++
		wantMaterial[p.Color()] += p.Value()
	}

	if b.PieceBB != wantPieceBB {
		t.Errorf("PieceBB does not match Mailbox")
	}
	if b.ColorBB != wantColorBB {
		t.Errorf("ColorBB does not match Mailbox")
	}
	if b.PieceCounts != wantCounts {
		t.Errorf("PieceCounts = %v, want %v", b.PieceCounts, wantCounts)
	}
	if b.Material != wantMaterial {
		t.Errorf("Material = %v, want %v", b.Material, wantMaterial)
	}

	for p := WhitePawn; p <= BlackKing; p++ {
		if len(b.PieceList[p]) != wantCounts[p] {
			t.Errorf("PieceList[%v] has %d entries, want %d", p, len(b.PieceList[p]), wantCounts[p])
		}
		for _, sq := range b.PieceList[p] {
			if b.Mailbox[sq] != p {
				t.Errorf("PieceList[%v] names square %v but Mailbox has %v there", p, sq, b.Mailbox[sq])
			}
		}
	}
}

func TestBoardInvariantsHoldThroughPlay(t *testing.T) {
	b := StartPosition()
	checkInvariants(t, b)

	var walk func(depth int)
	walk = func(depth int) {
		if depth == 0 {
			return
		}
		for i, m := range b.LegalMoves() {
			if i > 2 {
				break
			}
			b.Make(m)
			checkInvariants(t, b)
			walk(depth - 1)
			b.Unmake(m)
		}
	}
	walk(3)
}

func TestCloneIsIndependent(t *testing.T) {
	b := StartPosition()
	clone := b.Clone()

	m, err := ParseMove("e2e4", b)
	if err != nil {
		t.Fatalf("ParseMove: %v", err)
	}
	b.Make(m)

	if clone.Hash == b.Hash {
		t.Fatalf("expected clone's hash to be unaffected by mutating the original")
	}
	if clone.PieceAt(NewSquare(4, 1)) != WhitePawn {
		t.Fatalf("expected clone to retain the pawn on e2")
	}
}
