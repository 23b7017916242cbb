package search

import "github.com/kestrelchess/kestrel/internal/engine"

// Piece-square tables, in centipawns, White's perspective (rank 1 first).
// Black pieces look up the same table at engine.Square.Flip() (§4.7.5).

var pawnPST = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	10, 10, 20, 30, 30, 20, 10, 10,
	15, 15, 20, 35, 35, 20, 15, 15,
	20, 20, 30, 40, 40, 30, 20, 20,
	30, 30, 40, 50, 50, 40, 30, 30,
	50, 50, 60, 70, 70, 60, 50, 50,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightPST = [64]int{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopPST = [64]int{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookPST = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, 10, 10, 10, 10, 5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	25, 25, 25, 25, 25, 25, 25, 25,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var queenPST = [64]int{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	0, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var kingEndgamePST = [64]int{
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -20, 0, 0, -20, -40, -30,
	-30, -30, 0, 20, 20, 0, -30, -30,
	-30, -30, 0, 20, 20, 0, -30, -30,
	-30, -40, -20, 0, 0, -20, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
}

func pstBonus(pt engine.PieceType, sq engine.Square, c engine.Color) int {
	if c == engine.Black {
		sq = sq.Flip()
	}
	switch pt {
	case engine.Pawn:
		return pawnPST[sq]
	case engine.Knight:
		return knightPST[sq]
	case engine.Bishop:
		return bishopPST[sq]
	case engine.Rook:
		return rookPST[sq]
	case engine.Queen:
		return queenPST[sq]
	case engine.King:
		return kingEndgamePST[sq]
	default:
		return 0
	}
}

// DefaultEvaluator scores material, piece-square placement, rook activity on
// open/half-open files, and a simple king-safety penalty (pawn shield, open
// files near the king, attacked squares in the king zone). Grounded on the
// teacher's bot package evaluator, rescaled from pawn fractions to
// centipawns and rewritten against the bitboard board representation.
func DefaultEvaluator(b *engine.Board) int {
	score := b.Material[engine.White] - b.Material[engine.Black]

	for p := engine.WhitePawn; p <= engine.BlackKing; p++ {
		c := p.Color()
		pt := p.Type()
		bonus := 0
		for _, sq := range b.PieceList[p] {
			bonus += pstBonus(pt, sq, c)
		}
		if c == engine.White {
			score += bonus
		} else {
			score -= bonus
		}
	}

	score += rookFileBonus(b, engine.White) - rookFileBonus(b, engine.Black)
	score += kingSafety(b, engine.White) - kingSafety(b, engine.Black)

	if b.SideToMove == engine.Black {
		return -score
	}
	return score
}

func fileHasPawn(b *engine.Board, file int, c engine.Color) bool {
	pawn := engine.NewPiece(c, engine.Pawn)
	for _, sq := range b.PieceList[pawn] {
		if sq.File() == file {
			return true
		}
	}
	return false
}

// rookFileBonus rewards rooks on open files (no pawns of either color) and
// half-open files (no friendly pawn).
func rookFileBonus(b *engine.Board, c engine.Color) int {
	bonus := 0
	rook := engine.NewPiece(c, engine.Rook)
	for _, sq := range b.PieceList[rook] {
		file := sq.File()
		friendlyPawn := fileHasPawn(b, file, c)
		enemyPawn := fileHasPawn(b, file, c.Other())
		switch {
		case !friendlyPawn && !enemyPawn:
			bonus += 25
		case !friendlyPawn:
			bonus += 10
		}
	}
	return bonus
}

// kingSafety penalizes a thin pawn shield, open files near the king, and
// enemy pressure on the king's immediate zone.
func kingSafety(b *engine.Board, c engine.Color) int {
	kingSq := b.KingSquare(c)
	file, rank := kingSq.File(), kingSq.Rank()

	shieldRank := rank + 1
	if c == engine.Black {
		shieldRank = rank - 1
	}
	pawnCount := 0
	for df := -1; df <= 1; df++ {
		f := file + df
		if f < 0 || f > 7 || shieldRank < 0 || shieldRank > 7 {
			continue
		}
		sq := engine.NewSquare(f, shieldRank)
		p := b.PieceAt(sq)
		if p.Type() == engine.Pawn && p.Color() == c {
			pawnCount++
		}
	}
	penalty := (3 - pawnCount) * 30

	for df := -1; df <= 1; df++ {
		f := file + df
		if f < 0 || f > 7 {
			continue
		}
		if !fileHasPawn(b, f, engine.White) && !fileHasPawn(b, f, engine.Black) {
			penalty += 25
		}
	}

	attackers := 0
	for dr := -1; dr <= 1; dr++ {
		for df := -1; df <= 1; df++ {
			f, r := file+df, rank+dr
			if f < 0 || f > 7 || r < 0 || r > 7 {
				continue
			}
			if b.IsSquareAttacked(engine.NewSquare(f, r), c.Other()) {
				attackers++
			}
		}
	}
	penalty += attackers * 10

	return -penalty
}
