package search

import (
	"sort"

	"github.com/kestrelchess/kestrel/internal/engine"
)

// mvvLvaValue ranks captures by Most-Valuable-Victim, Least-Valuable-Attacker:
// prefer capturing the most valuable piece with the least valuable one.
func mvvLvaValue(m engine.Move) int {
	victim := m.Captured().Value()
	attacker := m.Moving().Value()
	return victim*16 - attacker
}

// killers holds, per ply, up to two quiet moves that caused a beta cutoff
// elsewhere at the same depth -- cheap to try again before exhausting
// ordinary move ordering.
type killers struct {
	moves [MaxPly][2]engine.Move
}

func (k *killers) add(ply int, m engine.Move) {
	if ply < 0 || ply >= MaxPly {
		return
	}
	if k.moves[ply][0] == m {
		return
	}
	k.moves[ply][1] = k.moves[ply][0]
	k.moves[ply][0] = m
}

func (k *killers) isKiller(ply int, m engine.Move) bool {
	if ply < 0 || ply >= MaxPly {
		return false
	}
	return k.moves[ply][0] == m || k.moves[ply][1] == m
}

// history accumulates a "this move has caused cutoffs before" score across
// the whole search, indexed by (moving piece, to square), for ordering
// quiet moves that are not killers.
type history struct {
	score [12][64]int
}

func (h *history) add(m engine.Move, depth int) {
	h.score[m.Moving()][m.To()] += depth * depth
}

func (h *history) value(m engine.Move) int {
	return h.score[m.Moving()][m.To()]
}

// orderMoves sorts moves in place for alpha-beta efficiency: the
// transposition-table move first, then captures by MVV-LVA, then killers,
// then quiet moves by history score.
func orderMoves(moves []engine.Move, ttMove engine.Move, ply int, k *killers, h *history) {
	score := func(m engine.Move) int {
		switch {
		case m == ttMove:
			return 1_000_000
		case m.IsCapture():
			return 500_000 + mvvLvaValue(m)
		case k != nil && k.isKiller(ply, m):
			return 400_000
		default:
			if h != nil {
				return h.value(m)
			}
			return 0
		}
	}

	sort.SliceStable(moves, func(i, j int) bool {
		return score(moves[i]) > score(moves[j])
	})
}
