package search

import "github.com/kestrelchess/kestrel/internal/engine"

// quiesce extends search along capture lines only, past the nominal depth
// limit, to avoid the horizon effect: stopping mid-capture-sequence would
// misjudge a position as quiet when it is not. Delta pruning discards
// captures that cannot possibly raise alpha even with a generous margin.
func (s *runner) quiesce(b *engine.Board, alpha, beta Score, ply int) Score {
	s.nodes++

	standPat := Score(s.eval(b))
	if standPat >= beta {
		return beta
	}
	const deltaMargin = 200
	if standPat < alpha-Score(engine.Queen.Value())-deltaMargin {
		return alpha
	}
	if standPat > alpha {
		alpha = standPat
	}

	captures := b.GenerateCaptures()
	orderMoves(captures, 0, ply, nil, nil)

	for _, m := range captures {
		if standPat+Score(m.Captured().Value())+deltaMargin < alpha && !m.IsPromotion() {
			continue // futile: even winning the capture can't reach alpha
		}

		b.Make(m)
		if b.InCheck(b.SideToMove.Other()) {
			b.Unmake(m)
			continue
		}
		score := -s.quiesce(b, -beta, -alpha, ply+1)
		b.Unmake(m)

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}
