package engine

import "math/rand"

// Zobrist key tables (§4.3), filled once at init time with deterministic
// pseudo-random values so that repeated runs (and, crucially, repeated test
// runs) observe identical hashes for identical positions.
var (
	zobristPiece     [12][64]uint64
	zobristPawn      [2][64]uint64 // keyed by color, square — pawn-structure hash only hashes pawns
	zobristEnPassant [8]uint64     // by file
	zobristCastling  [4]uint64     // WK, WQ, BK, BQ
	zobristSide      uint64
)

func init() {
	rng := rand.New(rand.NewSource(0x5EED_C0FF_EE15_B17D))
	for p := 0; p < 12; p++ {
		for sq := 0; sq < 64; sq++ {
			zobristPiece[p][sq] = rng.Uint64()
		}
	}
	for c := 0; c < 2; c++ {
		for sq := 0; sq < 64; sq++ {
			zobristPawn[c][sq] = rng.Uint64()
		}
	}
	for f := 0; f < 8; f++ {
		zobristEnPassant[f] = rng.Uint64()
	}
	for i := 0; i < 4; i++ {
		zobristCastling[i] = rng.Uint64()
	}
	zobristSide = rng.Uint64()
}

// castlingKeyIndex maps CastleWhiteKing/.../CastleBlackQueen to an index
// into zobristCastling.
func castlingKeyIndex(bit uint8) int {
	switch bit {
	case CastleWhiteKing:
		return 0
	case CastleWhiteQueen:
		return 1
	case CastleBlackKing:
		return 2
	default:
		return 3
	}
}

// pieceKey returns the Zobrist contribution of piece p sitting on sq.
func pieceKey(p Piece, sq Square) uint64 {
	if p.IsNone() {
		return 0
	}
	return zobristPiece[p][sq]
}

// pawnKey returns the pawn-structure-hash contribution of a pawn of color c
// sitting on sq; zero for any other piece type.
func pawnKey(p Piece, sq Square) uint64 {
	if p.IsNone() || p.Type() != Pawn {
		return 0
	}
	return zobristPawn[p.Color()][sq]
}

// computeHash recomputes the full Zobrist hash and pawn hash from scratch,
// per I5. Used at FEN-parse time and by tests to verify incremental
// updates never drift (P2).
func (b *Board) computeHash() (hash, pawnHash uint64) {
	for sq := Square(0); sq < 64; sq++ {
		p := b.Mailbox[sq]
		if p.IsNone() {
			continue
		}
		hash ^= pieceKey(p, sq)
		pawnHash ^= pawnKey(p, sq)
	}
	if b.SideToMove == Black {
		hash ^= zobristSide
	}
	if b.EnPassant != NoSquare {
		hash ^= zobristEnPassant[b.EnPassant.File()]
	}
	for _, bit := range []uint8{CastleWhiteKing, CastleWhiteQueen, CastleBlackKing, CastleBlackQueen} {
		if b.CastlingRights&bit != 0 {
			hash ^= zobristCastling[castlingKeyIndex(bit)]
		}
	}
	return hash, pawnHash
}
