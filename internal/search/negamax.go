package search

import (
	"context"

	"github.com/kestrelchess/kestrel/internal/engine"
)

// runner holds the mutable state of one iterative-deepening search: the
// transposition table, move-ordering heuristics, and node/cancellation
// bookkeeping. A fresh runner is not required per search -- its killers and
// history tables are reused across iterative-deepening iterations
// deliberately, since a move that cut off at depth N is a good guess at
// depth N+1 too.
type runner struct {
	ctx   context.Context
	tt    *Table
	eval  Evaluator
	kill  killers
	hist  history
	nodes uint64

	cancelled bool
}

// checkCancel polls the context cheaply (every 2048 nodes) and latches
// cancellation so every frame on the call stack can unwind without each one
// paying for a channel receive.
func (r *runner) checkCancel() bool {
	if r.cancelled {
		return true
	}
	if r.nodes&2047 == 0 {
		select {
		case <-r.ctx.Done():
			r.cancelled = true
		default:
		}
	}
	return r.cancelled
}

// negamax searches b to depth, returning a score from the side-to-move's
// perspective and storing the best move found in the transposition table. ply is the
// distance from the search root, used for mate-distance scoring and killer
// indexing.
func (r *runner) negamax(b *engine.Board, depth, ply int, alpha, beta Score, allowNull bool) Score {
	r.nodes++
	if r.checkCancel() {
		return 0
	}

	if ply > 0 && b.HalfmoveClock >= 100 {
		return DrawScore
	}
	if ply > 0 && r.isRepetition(b) {
		return DrawScore
	}

	alphaOrig := alpha
	var ttMove engine.Move
	if entry, ok := r.tt.Probe(b.Hash); ok {
		ttMove = entry.Move
		if entry.Depth >= depth {
			switch entry.Bound {
			case BoundExact:
				return entry.Score
			case BoundLower:
				if entry.Score > alpha {
					alpha = entry.Score
				}
			case BoundUpper:
				if entry.Score < beta {
					beta = entry.Score
				}
			}
			if alpha >= beta {
				return entry.Score
			}
		}
	}

	inCheck := b.InCheck(b.SideToMove)

	if depth <= 0 {
		if inCheck {
			depth = 1 // never evaluate a quiet-search stand-pat while in check
		} else {
			return r.quiesce(b, alpha, beta, ply)
		}
	}

	// Null-move pruning: if passing the move still leaves the opponent
	// unable to beat beta, this position is so good that a full search
	// would not change the cutoff. Skipped in check, near the leaves, and
	// when material is so low a null move is unreliable (zugzwang risk).
	if allowNull && !inCheck && depth >= 3 && hasNonPawnMaterial(b, b.SideToMove) {
		const reduction = 2
		b.MakeNull()
		score := -r.negamax(b, depth-1-reduction, ply+1, -beta, -beta+1, false)
		b.UnmakeNull()
		if r.cancelled {
			return 0
		}
		if score >= beta {
			return beta
		}
	}

	moves := b.LegalMoves()
	if len(moves) == 0 {
		if inCheck {
			return -MateScore + Score(ply)
		}
		return DrawScore
	}

	orderMoves(moves, ttMove, ply, &r.kill, &r.hist)

	best := NegInfScore
	var bestMove engine.Move
	for i, m := range moves {
		b.Make(m)

		reduction := 0
		if depth >= 3 && i >= 4 && !m.IsCapture() && !m.IsPromotion() && !inCheck {
			reduction = 1
			if i >= 10 {
				reduction = 2
			}
		}

		var score Score
		if i == 0 {
			score = -r.negamax(b, depth-1, ply+1, -beta, -alpha, true)
		} else {
			score = -r.negamax(b, depth-1-reduction, ply+1, -alpha-1, -alpha, true)
			if score > alpha && (reduction > 0 || score < beta) {
				score = -r.negamax(b, depth-1, ply+1, -beta, -alpha, true)
			}
		}

		b.Unmake(m)

		if r.cancelled {
			return 0
		}

		if score > best {
			best = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			if !m.IsCapture() {
				r.kill.add(ply, m)
				r.hist.add(m, depth)
			}
			break
		}
	}

	bound := BoundExact
	switch {
	case best <= alphaOrig:
		bound = BoundUpper
	case best >= beta:
		bound = BoundLower
	}
	r.tt.Store(b.Hash, depth, best, bound, bestMove)

	return best
}

// isRepetition reports whether the current position has already occurred
// since the last irreversible move (the slice of RepetitionHistory since
// HalfmoveClock last reset).
func (r *runner) isRepetition(b *engine.Board) bool {
	hist := b.RepetitionHistory
	n := len(hist)
	if n < 3 {
		return false
	}
	limit := n - 1 - b.HalfmoveClock
	if limit < 0 {
		limit = 0
	}
	for i := n - 2; i >= limit; i-- {
		if hist[i] == b.Hash {
			return true
		}
	}
	return false
}

func hasNonPawnMaterial(b *engine.Board, c engine.Color) bool {
	for _, pt := range [4]engine.PieceType{engine.Knight, engine.Bishop, engine.Rook, engine.Queen} {
		if b.PieceCounts[engine.NewPiece(c, pt)] > 0 {
			return true
		}
	}
	return false
}
