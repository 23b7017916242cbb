// Package search implements iterative-deepening negamax search over the
// engine package's move generator: alpha-beta pruning, a transposition
// table, null-move pruning, late-move reductions, aspiration windows, and
// quiescence search.
package search

import "github.com/kestrelchess/kestrel/internal/engine"

// Score is a centipawn evaluation from the perspective of the side to move
// (negamax convention): positive favors the mover, negative favors the
// opponent.
type Score int

const (
	InfScore    Score = 32000
	NegInfScore Score = -32000

	// MateScore is the score assigned to an immediate checkmate. Scores
	// within MateScore-MaxPly of it encode "mate in N" by offsetting by
	// the mated position's ply distance from the search root, so shallower
	// mates always outscore deeper ones.
	MateScore Score = 30000
	DrawScore Score = 0

	MaxPly = 64
)

// IsMateScore reports whether s encodes a forced mate (for either side).
func IsMateScore(s Score) bool {
	return s > MateScore-MaxPly || s < -MateScore+MaxPly
}

// Evaluator scores a quiet (non-check, not-mid-capture-sequence) position
// from the perspective of the side to move. The engine package never scores
// itself; callers of search.FindBestMove supply one.
type Evaluator func(b *engine.Board) int

// Options configures a search.
type Options struct {
	MaxDepth  int // 0 means "use a large default"
	Evaluator Evaluator
	TT        *Table
}
