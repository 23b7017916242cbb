package engine

// IsSquareAttacked reports whether sq is attacked by any piece of color by,
// using the same attack tables the move generator uses (§4.2). Used both by
// check detection and by castling's transit-square safety check.
func (b *Board) IsSquareAttacked(sq Square, by Color) bool {
	occ := b.Occupancy()

	if PawnAttacks(by.Other(), sq)&b.PieceBB[NewPiece(by, Pawn)] != 0 {
		return true
	}
	if KnightAttacks(sq)&b.PieceBB[NewPiece(by, Knight)] != 0 {
		return true
	}
	if KingAttacks(sq)&b.PieceBB[NewPiece(by, King)] != 0 {
		return true
	}
	bishopsQueens := b.PieceBB[NewPiece(by, Bishop)] | b.PieceBB[NewPiece(by, Queen)]
	if BishopAttacks(sq, occ)&bishopsQueens != 0 {
		return true
	}
	rooksQueens := b.PieceBB[NewPiece(by, Rook)] | b.PieceBB[NewPiece(by, Queen)]
	if RookAttacks(sq, occ)&rooksQueens != 0 {
		return true
	}
	return false
}

// InCheck reports whether c's king currently sits on an attacked square.
func (b *Board) InCheck(c Color) bool {
	return b.IsSquareAttacked(b.KingSquare(c), c.Other())
}

// LegalMoves filters GenerateMoves down to moves that do not leave the
// mover's own king in check, by making and unmaking each candidate (§4.6).
// Castling's transit-square safety is already enforced at generation time;
// this still re-checks the destination square because a pin can be revealed
// only after the move is actually played.
func (b *Board) LegalMoves() []Move {
	pseudo := b.GenerateMoves()
	legal := make([]Move, 0, len(pseudo))
	mover := b.SideToMove
	for _, m := range pseudo {
		b.Make(m)
		if !b.InCheck(mover) {
			legal = append(legal, m)
		}
		b.Unmake(m)
	}
	return legal
}
