package engine

// Move is a chess move packed into a single 32-bit word (§3/§4.4):
//
//	bits  0-5  from square      (0..63)
//	bits  6-11 to square        (0..63)
//	bits 12-15 moving piece     (0..11)
//	bits 16-19 captured piece   (0..11, or 12 = none)
//	bits 20-23 promotion piece  (0..11, or 12 = none)
//	bit     24 double pawn push flag
//	bit     25 en passant flag
//	bit     26 castling flag
type Move uint32

const noPieceField = uint32(NoPiece) // 12, fits in 4 bits

const (
	moveFlagDoublePush = 1 << 24
	moveFlagEnPassant  = 1 << 25
	moveFlagCastling   = 1 << 26
)

// NoMove is the zero-value-unsafe "no move" sentinel: an all-zero Move would
// decode to a1a1 moving a WhitePawn, which is a real (if nonsensical)
// encoding, so callers that need an "absent" value use NoMove instead of a
// bare Move(0).
var NoMove = NewMove(NoSquare&0x3F, NoSquare&0x3F, NoPiece, NoPiece, NoPiece, false, false, false)

// NewMove packs a move from its logical fields. captured and promo should
// be NoPiece when not applicable.
func NewMove(from, to Square, moving, captured, promo Piece, doublePush, enPassant, castling bool) Move {
	m := Move(uint32(from)&0x3F) |
		Move((uint32(to)&0x3F)<<6) |
		Move((uint32(moving)&0xF)<<12) |
		Move((uint32(captured)&0xF)<<16) |
		Move((uint32(promo)&0xF)<<20)
	if doublePush {
		m |= moveFlagDoublePush
	}
	if enPassant {
		m |= moveFlagEnPassant
	}
	if castling {
		m |= moveFlagCastling
	}
	return m
}

func (m Move) From() Square      { return Square(m & 0x3F) }
func (m Move) To() Square        { return Square((m >> 6) & 0x3F) }
func (m Move) Moving() Piece     { return Piece((m >> 12) & 0xF) }
func (m Move) Captured() Piece   { return Piece((m >> 16) & 0xF) }
func (m Move) Promotion() Piece  { return Piece((m >> 20) & 0xF) }
func (m Move) IsDoublePush() bool { return m&moveFlagDoublePush != 0 }
func (m Move) IsEnPassant() bool  { return m&moveFlagEnPassant != 0 }
func (m Move) IsCastling() bool   { return m&moveFlagCastling != 0 }

// IsCapture reports whether the move's capture field names a real piece.
func (m Move) IsCapture() bool { return m.Captured() != NoPiece }

// IsPromotion reports whether the move's promotion field names a real piece.
func (m Move) IsPromotion() bool { return m.Promotion() != NoPiece }

var promoLetters = map[PieceType]byte{Queen: 'q', Rook: 'r', Bishop: 'b', Knight: 'n'}
var promoFromLetter = map[byte]PieceType{'q': Queen, 'r': Rook, 'b': Bishop, 'n': Knight}

// String renders the move in coordinate notation, e.g. "e2e4", "e7e8q".
func (m Move) String() string {
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += string(promoLetters[m.Promotion().Type()])
	}
	return s
}

// ParseMove parses coordinate-notation move text ("e2e4", "e7e8q") against
// board, inferring the moving/captured piece and the double-push/
// en-passant/castling flags from the board's current state (§4.4). It does
// not check legality -- only that the encoding is internally consistent.
func ParseMove(text string, b *Board) (Move, error) {
	if len(text) < 4 || len(text) > 5 {
		return 0, &EngineError{Kind: ErrIllegalEncoding, Msg: "move text must be 4-5 characters: " + text}
	}
	from, err := ParseSquare(text[0:2])
	if err != nil {
		return 0, err
	}
	to, err := ParseSquare(text[2:4])
	if err != nil {
		return 0, err
	}

	moving := b.PieceAt(from)
	if moving.IsNone() {
		return 0, &EngineError{Kind: ErrIllegalEncoding, Msg: "no piece on from square: " + from.String()}
	}

	promo := NoPiece
	if len(text) == 5 {
		pt, ok := promoFromLetter[text[4]]
		if !ok {
			return 0, &EngineError{Kind: ErrIllegalEncoding, Msg: "invalid promotion letter"}
		}
		promo = NewPiece(moving.Color(), pt)
	}

	captured := b.PieceAt(to)
	enPassant := false
	if moving.Type() == Pawn && to == b.EnPassant && captured.IsNone() && from.File() != to.File() {
		enPassant = true
		captured = NewPiece(moving.Color().Other(), Pawn)
	}

	doublePush := moving.Type() == Pawn && abs(to.Rank()-from.Rank()) == 2

	castling := moving.Type() == King && abs(to.File()-from.File()) == 2

	return NewMove(from, to, moving, captured, promo, doublePush, enPassant, castling), nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
