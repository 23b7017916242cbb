package engine

// GenerateMoves enumerates every pseudo-legal move for the side to move
// (§4.5): legal under piece-movement and occupancy rules, but not yet
// filtered for leaving the mover's own king in check (see LegalMoves).
func (b *Board) GenerateMoves() []Move {
	moves := make([]Move, 0, 48)
	b.genPawnMoves(&moves)
	b.genKnightMoves(&moves)
	b.genSliderMoves(&moves, Bishop)
	b.genSliderMoves(&moves, Rook)
	b.genSliderMoves(&moves, Queen)
	b.genKingMoves(&moves)
	b.genCastling(&moves)
	return moves
}

// GenerateCaptures enumerates only pseudo-legal captures and promotions,
// for use by quiescence search.
func (b *Board) GenerateCaptures() []Move {
	all := b.GenerateMoves()
	caps := all[:0:0]
	for _, m := range all {
		if m.IsCapture() || m.IsPromotion() {
			caps = append(caps, m)
		}
	}
	return caps
}

const promoRankWhite = 7
const promoRankBlack = 0

var promoOrder = [4]PieceType{Queen, Rook, Bishop, Knight}

func (b *Board) genPawnMoves(moves *[]Move) {
	c := b.SideToMove
	pawn := NewPiece(c, Pawn)
	occ := b.Occupancy()
	enemy := b.ColorBB[c.Other()]

	forward := 1
	startRank := 1
	promoRank := promoRankWhite
	if c == Black {
		forward = -1
		startRank = 6
		promoRank = promoRankBlack
	}

	for _, from := range b.PieceList[pawn] {
		file, rank := from.File(), from.Rank()

		oneRank := rank + forward
		if oneRank >= 0 && oneRank <= 7 {
			oneSq := NewSquare(file, oneRank)
			if !occ.Has(oneSq) {
				b.emitPawnMove(moves, from, oneSq, pawn, NoPiece, oneRank == promoRank, false)

				if rank == startRank {
					twoSq := NewSquare(file, rank+2*forward)
					if !occ.Has(twoSq) {
						*moves = append(*moves, NewMove(from, twoSq, pawn, NoPiece, NoPiece, true, false, false))
					}
				}
			}
		}

		for _, fileOff := range [2]int{-1, 1} {
			cf := file + fileOff
			cr := rank + forward
			if cf < 0 || cf > 7 || cr < 0 || cr > 7 {
				continue
			}
			to := NewSquare(cf, cr)
			if enemy.Has(to) {
				captured := b.Mailbox[to]
				b.emitPawnMove(moves, from, to, pawn, captured, cr == promoRank, false)
			} else if to == b.EnPassant && b.EnPassant != NoSquare {
				captured := NewPiece(c.Other(), Pawn)
				*moves = append(*moves, NewMove(from, to, pawn, captured, NoPiece, false, true, false))
			}
		}
	}
}

func (b *Board) emitPawnMove(moves *[]Move, from, to Square, pawn, captured Piece, promotes bool, _ bool) {
	if promotes {
		for _, pt := range promoOrder {
			promo := NewPiece(pawn.Color(), pt)
			*moves = append(*moves, NewMove(from, to, pawn, captured, promo, false, false, false))
		}
		return
	}
	*moves = append(*moves, NewMove(from, to, pawn, captured, NoPiece, false, false, false))
}

func (b *Board) genKnightMoves(moves *[]Move) {
	c := b.SideToMove
	piece := NewPiece(c, Knight)
	friendly := b.ColorBB[c]
	for _, from := range b.PieceList[piece] {
		targets := KnightAttacks(from) &^ friendly
		b.emitSimpleMoves(moves, from, piece, targets)
	}
}

func (b *Board) genKingMoves(moves *[]Move) {
	c := b.SideToMove
	piece := NewPiece(c, King)
	friendly := b.ColorBB[c]
	for _, from := range b.PieceList[piece] {
		targets := KingAttacks(from) &^ friendly
		b.emitSimpleMoves(moves, from, piece, targets)
	}
}

func (b *Board) genSliderMoves(moves *[]Move, pt PieceType) {
	c := b.SideToMove
	piece := NewPiece(c, pt)
	friendly := b.ColorBB[c]
	occ := b.Occupancy()
	for _, from := range b.PieceList[piece] {
		var targets Bitboard
		switch pt {
		case Bishop:
			targets = BishopAttacks(from, occ)
		case Rook:
			targets = RookAttacks(from, occ)
		case Queen:
			targets = QueenAttacks(from, occ)
		}
		targets &^= friendly
		b.emitSimpleMoves(moves, from, piece, targets)
	}
}

// emitSimpleMoves emits one move per bit of targets, excluding any target
// that holds the enemy king (generator policy: reaching a king capture
// indicates a prior side-to-move bug and must never be relied upon).
func (b *Board) emitSimpleMoves(moves *[]Move, from Square, piece Piece, targets Bitboard) {
	enemyKing := NewPiece(piece.Color().Other(), King)
	for targets != 0 {
		to := targets.PopLSB()
		captured := b.Mailbox[to]
		if captured == enemyKing {
			continue
		}
		*moves = append(*moves, NewMove(from, to, piece, captured, NoPiece, false, false, false))
	}
}

// castlingPathIndex: 0 = White O-O, 1 = White O-O-O, 2 = Black O-O, 3 = Black O-O-O.
var castlingRookFrom = [4]Square{7, 0, 63, 56}
var castlingRookTo = [4]Square{5, 3, 61, 59}
var castlingKingTo = [4]Square{6, 2, 62, 58}
var castlingRight = [4]uint8{CastleWhiteKing, CastleWhiteQueen, CastleBlackKing, CastleBlackQueen}
var castlingBetween = [4]Bitboard{
	(Square(5)).Bit() | (Square(6)).Bit(),
	(Square(1)).Bit() | (Square(2)).Bit() | (Square(3)).Bit(),
	(Square(61)).Bit() | (Square(62)).Bit(),
	(Square(57)).Bit() | (Square(58)).Bit() | (Square(59)).Bit(),
}

// castlingTransit holds the squares the king actually passes through
// (origin, transit, destination) that must all be unattacked.
var castlingTransit = [4][3]Square{
	{4, 5, 6},
	{4, 3, 2},
	{60, 61, 62},
	{60, 59, 58},
}

func (b *Board) genCastling(moves *[]Move) {
	c := b.SideToMove
	var idxs [2]int
	if c == White {
		idxs = [2]int{0, 1}
	} else {
		idxs = [2]int{2, 3}
	}

	occ := b.Occupancy()
	king := NewPiece(c, King)
	kingSq := b.KingSquare(c)

	for _, i := range idxs {
		if b.CastlingRights&castlingRight[i] == 0 {
			continue
		}
		rookSq := castlingRookFrom[i]
		rookPiece := NewPiece(c, Rook)
		if b.Mailbox[rookSq] != rookPiece {
			continue // rook has moved or been captured
		}
		if occ&castlingBetween[i] != 0 {
			continue // blocked
		}
		if b.IsSquareAttacked(kingSq, c.Other()) {
			continue // currently in check
		}
		attacked := false
		for _, sq := range castlingTransit[i] {
			if b.IsSquareAttacked(sq, c.Other()) {
				attacked = true
				break
			}
		}
		if attacked {
			continue
		}
		*moves = append(*moves, NewMove(kingSq, castlingKingTo[i], king, NoPiece, NoPiece, false, false, true))
	}
}
