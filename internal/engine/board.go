package engine

// Castling rights bit masks (§3).
const (
	CastleWhiteKing  uint8 = 1 << 0 // K
	CastleWhiteQueen uint8 = 1 << 1 // Q
	CastleBlackKing  uint8 = 1 << 2 // k
	CastleBlackQueen uint8 = 1 << 3 // q
	CastleAll        uint8 = CastleWhiteKing | CastleWhiteQueen | CastleBlackKing | CastleBlackQueen
)

// Board is the central position representation (§3 BoardState). It keeps
// bitboards, a mailbox, and piece lists in lockstep (invariants I1-I7);
// Make/Unmake are the only mutators that preserve those invariants.
type Board struct {
	PieceBB [12]Bitboard // indexed by Piece (WhitePawn..BlackKing)
	ColorBB [2]Bitboard  // indexed by Color

	Mailbox [64]Piece // square -> Piece, or NoPiece

	// PieceList[p] holds exactly the squares set in PieceBB[p]. Order
	// within a list is never meaningful (I3).
	PieceList [12][]Square

	SideToMove     Color
	CastlingRights uint8
	EnPassant      Square // NoSquare if unset
	HalfmoveClock  int
	FullmoveNumber int

	Material    [2]int // centipawn material sum per color (I4)
	PieceCounts [12]int

	Hash     uint64 // full Zobrist hash (I5)
	PawnHash uint64 // hash over pawn placement only

	// RepetitionHistory holds the hash after every real (non-null) move
	// played so far, including the current position's hash as the last
	// entry. Used for threefold-repetition detection.
	RepetitionHistory []uint64

	undo []undoState
}

// NewBoard returns an empty board: no pieces, White to move, all castling
// rights set, no en passant, clocks at their initial values. Callers
// typically populate it via FEN rather than use it directly.
func NewBoard() *Board {
	b := &Board{
		SideToMove:     White,
		CastlingRights: CastleAll,
		EnPassant:      NoSquare,
		FullmoveNumber: 1,
	}
	for i := range b.Mailbox {
		b.Mailbox[i] = NoPiece
	}
	return b
}

// Occupancy returns the union of both color bitboards.
func (b *Board) Occupancy() Bitboard { return b.ColorBB[White] | b.ColorBB[Black] }

// PieceAt returns the piece on sq, or NoPiece if empty or sq is invalid.
func (b *Board) PieceAt(sq Square) Piece {
	if !sq.IsValid() {
		return NoPiece
	}
	return b.Mailbox[sq]
}

// KingSquare returns the square of c's king. Panics if none exists, which
// per I7 indicates a prior bookkeeping bug rather than a reachable game
// state.
func (b *Board) KingSquare(c Color) Square {
	bb := b.PieceBB[NewPiece(c, King)]
	sq := bb.LSB()
	if sq == NoSquare {
		panic("engine: no king on board for color " + c.String())
	}
	return sq
}

// placePiece sets p on sq across all representations. sq must currently be
// empty.
func (b *Board) placePiece(p Piece, sq Square) {
	b.PieceBB[p] = b.PieceBB[p].Set(sq)
	b.ColorBB[p.Color()] = b.ColorBB[p.Color()].Set(sq)
	b.Mailbox[sq] = p
	b.PieceList[p] = append(b.PieceList[p], sq)
	b.PieceCounts[p]++
	b.Material[p.Color()] += p.Value()
	b.Hash ^= pieceKey(p, sq)
	b.PawnHash ^= pawnKey(p, sq)
}

// removePiece clears whatever piece sits on sq (must be non-empty) across
// all representations.
func (b *Board) removePiece(sq Square) {
	p := b.Mailbox[sq]
	b.PieceBB[p] = b.PieceBB[p].Clear(sq)
	b.ColorBB[p.Color()] = b.ColorBB[p.Color()].Clear(sq)
	b.Mailbox[sq] = NoPiece
	b.removeFromList(p, sq)
	b.PieceCounts[p]--
	b.Material[p.Color()] -= p.Value()
	b.Hash ^= pieceKey(p, sq)
	b.PawnHash ^= pawnKey(p, sq)
}

// relocatePiece relocates whatever piece sits on from to the (empty) square
// to, across all representations, without touching the Zobrist hash --
// callers XOR the hash delta themselves so that make() can interleave the
// piece-move keys with capture/castling/promotion keys in the order the
// spec prescribes.
func (b *Board) relocatePiece(from, to Square) {
	p := b.Mailbox[from]
	b.PieceBB[p] = b.PieceBB[p].Clear(from).Set(to)
	b.ColorBB[p.Color()] = b.ColorBB[p.Color()].Clear(from).Set(to)
	b.Mailbox[from] = NoPiece
	b.Mailbox[to] = p
	b.removeFromList(p, from)
	b.PieceList[p] = append(b.PieceList[p], to)
}

func (b *Board) removeFromList(p Piece, sq Square) {
	list := b.PieceList[p]
	for i, s := range list {
		if s == sq {
			list[i] = list[len(list)-1]
			b.PieceList[p] = list[:len(list)-1]
			return
		}
	}
}

// Clone returns a deep copy suitable for the UI's undo/redo history; the
// search itself uses the cheaper incremental Make/Unmake below.
func (b *Board) Clone() *Board {
	nb := *b
	for p := range nb.PieceList {
		nb.PieceList[p] = append([]Square(nil), b.PieceList[p]...)
	}
	nb.RepetitionHistory = append([]uint64(nil), b.RepetitionHistory...)
	nb.undo = nil
	return &nb
}
