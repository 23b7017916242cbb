package search

import (
	"context"
	"testing"
	"time"

	"github.com/kestrelchess/kestrel/internal/engine"
)

func TestFindBestMoveReturnsLegalMove(t *testing.T) {
	b := engine.StartPosition()
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	result, err := FindBestMove(ctx, b, Options{MaxDepth: 4, Evaluator: DefaultEvaluator})
	if err != nil {
		t.Fatalf("FindBestMove: %v", err)
	}

	legal := b.LegalMoves()
	found := false
	for _, m := range legal {
		if m == result.Move {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("FindBestMove returned %v, which is not among the legal moves", result.Move)
	}
}

func TestFindBestMoveFindsMateInOne(t *testing.T) {
	// Classic back-rank mate: Black's own pawns block g8's escape squares,
	// so Ra1-a8 is mate.
	b, err := engine.FromFEN("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	result, err := FindBestMove(ctx, b, Options{MaxDepth: 4, Evaluator: DefaultEvaluator})
	if err != nil {
		t.Fatalf("FindBestMove: %v", err)
	}
	if result.Move.String() != "a1a8" {
		t.Fatalf("expected mate-in-one a1a8, got %v (score %d)", result.Move, result.Score)
	}
	if !IsMateScore(result.Score) {
		t.Fatalf("expected a mate score, got %d", result.Score)
	}
}

func TestFindBestMoveSinglyLegalMove(t *testing.T) {
	// Black king on a8 has exactly one legal move: Ka8-a7 (the white king on
	// c7 covers b7 and b8).
	b, err := engine.FromFEN("k7/2K5/8/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	legal := b.LegalMoves()
	if len(legal) == 0 {
		t.Skip("position is already checkmate/stalemate; not useful for this test")
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	result, err := FindBestMove(ctx, b, Options{MaxDepth: 4, Evaluator: DefaultEvaluator})
	if err != nil {
		t.Fatalf("FindBestMove: %v", err)
	}
	if result.Move != legal[0] {
		t.Fatalf("expected the only legal move %v, got %v", legal[0], result.Move)
	}
}

func TestFindBestMoveNoLegalMoves(t *testing.T) {
	// Classic stalemate: Black's king on h8 has no safe square.
	b, err := engine.FromFEN("7k/5K2/6Q1/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	if len(b.LegalMoves()) != 0 {
		t.Skip("position is not actually terminal")
	}
	ctx := context.Background()
	if _, err := FindBestMove(ctx, b, Options{MaxDepth: 2, Evaluator: DefaultEvaluator}); err == nil {
		t.Fatalf("expected an error when no legal moves exist")
	}
}
