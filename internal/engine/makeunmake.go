package engine

// undoState holds exactly what Unmake needs to restore after a Make, without
// recomputing anything from scratch. Hash and PawnHash are snapshotted
// rather than reversed key-by-key: storing them is cheap and sidesteps any
// risk of the incremental XOR order drifting from Make's (P2 guards the two
// paths agree, but Unmake never needs to re-derive what it can just recall).
type undoState struct {
	CastlingRights uint8
	EnPassant      Square
	HalfmoveClock  int
	FullmoveNumber int
	Hash           uint64
	PawnHash       uint64
	Captured       Piece
	CapturedSquare Square
}

var allCastlingBits = [4]uint8{CastleWhiteKing, CastleWhiteQueen, CastleBlackKing, CastleBlackQueen}

// castlingLossMask returns the castling rights forfeited when a king or rook
// leaves (or is captured on) sq.
func castlingLossMask(sq Square) uint8 {
	switch sq {
	case 4:
		return CastleWhiteKing | CastleWhiteQueen
	case 7:
		return CastleWhiteKing
	case 0:
		return CastleWhiteQueen
	case 60:
		return CastleBlackKing | CastleBlackQueen
	case 63:
		return CastleBlackKing
	case 56:
		return CastleBlackQueen
	default:
		return 0
	}
}

func castlingIndexFor(to Square) int {
	for i, t := range castlingKingTo {
		if t == to {
			return i
		}
	}
	panic("engine: invalid castling destination")
}

// Make applies m to the board, updating every representation incrementally
// and pushing an undo record (§4.6). m is assumed pseudo-legal; Make does
// not itself check whether it leaves the mover in check (see LegalMoves).
func (b *Board) Make(m Move) {
	mover := b.SideToMove
	from, to := m.From(), m.To()
	moving := m.Moving()
	captured := m.Captured()

	capSq := to
	if m.IsEnPassant() {
		if mover == White {
			capSq = NewSquare(to.File(), to.Rank()-1)
		} else {
			capSq = NewSquare(to.File(), to.Rank()+1)
		}
	}

	b.undo = append(b.undo, undoState{
		CastlingRights: b.CastlingRights,
		EnPassant:      b.EnPassant,
		HalfmoveClock:  b.HalfmoveClock,
		FullmoveNumber: b.FullmoveNumber,
		Hash:           b.Hash,
		PawnHash:       b.PawnHash,
		Captured:       captured,
		CapturedSquare: capSq,
	})

	if captured != NoPiece {
		b.removePiece(capSq)
	}

	if m.IsPromotion() {
		b.removePiece(from)
		b.placePiece(m.Promotion(), to)
	} else {
		b.relocatePiece(from, to)
		b.Hash ^= pieceKey(moving, from) ^ pieceKey(moving, to)
		b.PawnHash ^= pawnKey(moving, from) ^ pawnKey(moving, to)
	}

	if m.IsCastling() {
		idx := castlingIndexFor(to)
		rookFrom, rookTo := castlingRookFrom[idx], castlingRookTo[idx]
		rook := NewPiece(mover, Rook)
		b.relocatePiece(rookFrom, rookTo)
		b.Hash ^= pieceKey(rook, rookFrom) ^ pieceKey(rook, rookTo)
	}

	if b.EnPassant != NoSquare {
		b.Hash ^= zobristEnPassant[b.EnPassant.File()]
	}
	if m.IsDoublePush() {
		var epSq Square
		if mover == White {
			epSq = NewSquare(to.File(), to.Rank()-1)
		} else {
			epSq = NewSquare(to.File(), to.Rank()+1)
		}
		b.EnPassant = epSq
		b.Hash ^= zobristEnPassant[epSq.File()]
	} else {
		b.EnPassant = NoSquare
	}

	oldRights := b.CastlingRights
	newRights := oldRights &^ castlingLossMask(from) &^ castlingLossMask(to)
	if newRights != oldRights {
		for _, bit := range allCastlingBits {
			if oldRights&bit != 0 {
				b.Hash ^= zobristCastling[castlingKeyIndex(bit)]
			}
		}
		for _, bit := range allCastlingBits {
			if newRights&bit != 0 {
				b.Hash ^= zobristCastling[castlingKeyIndex(bit)]
			}
		}
		b.CastlingRights = newRights
	}

	b.Hash ^= zobristSide
	b.SideToMove = mover.Other()

	if moving.Type() == Pawn || captured != NoPiece {
		b.HalfmoveClock = 0
	} else {
		b.HalfmoveClock++
	}
	if mover == Black {
		b.FullmoveNumber++
	}

	b.RepetitionHistory = append(b.RepetitionHistory, b.Hash)
}

// Unmake reverses the most recent Make(m). Moves must be unmade in exact
// reverse order of being made; the board keeps no check of this beyond the
// undo stack running empty.
func (b *Board) Unmake(m Move) {
	n := len(b.undo)
	u := b.undo[n-1]
	b.undo = b.undo[:n-1]

	b.SideToMove = b.SideToMove.Other()
	from, to := m.From(), m.To()

	if m.IsCastling() {
		idx := castlingIndexFor(to)
		rookFrom, rookTo := castlingRookFrom[idx], castlingRookTo[idx]
		b.relocatePiece(rookTo, rookFrom)
	}

	if m.IsPromotion() {
		b.removePiece(to)
		b.placePiece(m.Moving(), from)
	} else {
		b.relocatePiece(to, from)
	}

	if u.Captured != NoPiece {
		b.placePiece(u.Captured, u.CapturedSquare)
	}

	b.CastlingRights = u.CastlingRights
	b.EnPassant = u.EnPassant
	b.HalfmoveClock = u.HalfmoveClock
	b.FullmoveNumber = u.FullmoveNumber
	b.Hash = u.Hash
	b.PawnHash = u.PawnHash

	b.RepetitionHistory = b.RepetitionHistory[:len(b.RepetitionHistory)-1]
}

// MakeNull flips the side to move without moving a piece, for null-move
// pruning. The en passant square is cleared, as a null move cannot be
// answered by an en passant capture.
func (b *Board) MakeNull() {
	b.undo = append(b.undo, undoState{
		CastlingRights: b.CastlingRights,
		EnPassant:      b.EnPassant,
		HalfmoveClock:  b.HalfmoveClock,
		FullmoveNumber: b.FullmoveNumber,
		Hash:           b.Hash,
		PawnHash:       b.PawnHash,
		Captured:       NoPiece,
		CapturedSquare: NoSquare,
	})
	if b.EnPassant != NoSquare {
		b.Hash ^= zobristEnPassant[b.EnPassant.File()]
		b.EnPassant = NoSquare
	}
	b.Hash ^= zobristSide
	b.SideToMove = b.SideToMove.Other()
	b.HalfmoveClock++
}

// UnmakeNull reverses the most recent MakeNull.
func (b *Board) UnmakeNull() {
	n := len(b.undo)
	u := b.undo[n-1]
	b.undo = b.undo[:n-1]

	b.SideToMove = b.SideToMove.Other()
	b.CastlingRights = u.CastlingRights
	b.EnPassant = u.EnPassant
	b.HalfmoveClock = u.HalfmoveClock
	b.FullmoveNumber = u.FullmoveNumber
	b.Hash = u.Hash
	b.PawnHash = u.PawnHash
}
