package search

import (
	"context"

	"github.com/kestrelchess/kestrel/internal/engine"
)

// Result is what a completed (or time-cut) search returns.
type Result struct {
	Move  engine.Move
	Score Score
	Depth int // deepest iteration that completed
	Nodes uint64
}

const defaultMaxDepth = 32

// FindBestMove runs iterative deepening negamax from b's current position
// until ctx is cancelled (typically via context.WithTimeout) or MaxDepth is
// reached, whichever comes first. The position itself is not mutated: every
// move tried is made and unmade.
func FindBestMove(ctx context.Context, b *engine.Board, opts Options) (Result, error) {
	legal := b.LegalMoves()
	if len(legal) == 0 {
		return Result{}, &engine.EngineError{Kind: engine.ErrIllegalMove, Msg: "no legal moves available"}
	}
	if len(legal) == 1 {
		return Result{Move: legal[0], Score: Score(opts.Evaluator(b))}, nil
	}

	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}
	tt := opts.TT
	if tt == nil {
		tt = NewTable(32)
	}

	r := &runner{ctx: ctx, tt: tt, eval: opts.Evaluator}

	result := Result{Move: legal[0]}
	var prevScore Score
	havePrev := false

	for depth := 1; depth <= maxDepth; depth++ {
		move, score, completed := r.rootSearch(b, depth, prevScore, havePrev)
		if !completed {
			break
		}
		result.Move = move
		result.Score = score
		result.Depth = depth
		prevScore = score
		havePrev = true

		if IsMateScore(score) {
			break
		}
		select {
		case <-ctx.Done():
			result.Nodes = r.nodes
			return result, nil
		default:
		}
	}

	result.Nodes = r.nodes
	return result, nil
}
