package search

import "github.com/kestrelchess/kestrel/internal/engine"

// rootSearch runs one full-width search at depth from the root position,
// returning the best move, its score, and whether the search completed
// before cancellation. Uses an aspiration window seeded from the previous
// iteration's score when available, widening and retrying on failure.
func (r *runner) rootSearch(b *engine.Board, depth int, prevScore Score, havePrev bool) (engine.Move, Score, bool) {
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return 0, DrawScore, true
	}

	var ttMove engine.Move
	if entry, ok := r.tt.Probe(b.Hash); ok {
		ttMove = entry.Move
	}
	orderMoves(moves, ttMove, 0, &r.kill, &r.hist)

	alpha, beta := NegInfScore, InfScore
	const window = 50
	if havePrev && depth >= 4 {
		alpha = prevScore - window
		beta = prevScore + window
	}

	for {
		best := NegInfScore
		var bestMove engine.Move
		a := alpha

		for _, m := range moves {
			b.Make(m)
			score := -r.negamax(b, depth-1, 1, -beta, -a, true)
			b.Unmake(m)

			if r.cancelled {
				return bestMove, best, false
			}
			if score > best {
				best = score
				bestMove = m
			}
			if score > a {
				a = score
			}
		}

		if best <= alpha && alpha > NegInfScore {
			alpha = NegInfScore
			continue // failed low: widen and re-search
		}
		if best >= beta && beta < InfScore {
			beta = InfScore
			continue // failed high: widen and re-search
		}

		return bestMove, best, true
	}
}
