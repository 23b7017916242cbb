package search

import (
	"testing"

	"github.com/kestrelchess/kestrel/internal/engine"
)

func TestTableProbeStore(t *testing.T) {
	tt := NewTable(1)
	m := engine.NewMove(engine.NewSquare(4, 1), engine.NewSquare(4, 3), engine.WhitePawn, engine.NoPiece, engine.NoPiece, true, false, false)
	tt.Store(0xabc, 4, Score(120), BoundExact, m)

	entry, ok := tt.Probe(0xabc)
	if !ok {
		t.Fatalf("expected entry to be found")
	}
	if entry.Score != 120 || entry.Depth != 4 || entry.Bound != BoundExact || entry.Move != m {
		t.Fatalf("entry mismatch: %+v", entry)
	}

	if _, ok := tt.Probe(0xdef); ok {
		t.Fatalf("did not expect a hit for an unstored hash")
	}
}

func TestTableClear(t *testing.T) {
	tt := NewTable(1)
	tt.Store(1, 1, 10, BoundExact, 0)
	tt.Clear()
	if _, ok := tt.Probe(1); ok {
		t.Fatalf("expected table to be empty after Clear")
	}
}

func TestMoveOrderingPrefersTTMoveThenCaptures(t *testing.T) {
	quiet := engine.NewMove(engine.NewSquare(1, 0), engine.NewSquare(2, 2), engine.WhiteKnight, engine.NoPiece, engine.NoPiece, false, false, false)
	capture := engine.NewMove(engine.NewSquare(4, 3), engine.NewSquare(3, 4), engine.WhitePawn, engine.BlackPawn, engine.NoPiece, false, false, false)
	ttMove := engine.NewMove(engine.NewSquare(6, 0), engine.NewSquare(5, 2), engine.WhiteKnight, engine.NoPiece, engine.NoPiece, false, false, false)

	moves := []engine.Move{quiet, capture, ttMove}
	orderMoves(moves, ttMove, 0, nil, nil)

	if moves[0] != ttMove {
		t.Fatalf("expected TT move first, got %v", moves[0])
	}
	if moves[1] != capture {
		t.Fatalf("expected capture ordered before quiet move, got %v", moves[1])
	}
}
