// Package engine implements the chess position representation, the
// bitboard/magic-bitboard move generator, the Zobrist hasher, and the
// make/unmake protocol for the kestrelchess engine.
package engine

// Color represents the color of a chess piece (White or Black).
type Color uint8

const (
	// White is the white player.
	White Color = 0
	// Black is the black player.
	Black Color = 1
)

// Other returns the opposing color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns "w" or "b".
func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

// PieceType represents the kind of a chess piece, independent of color.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPieceType PieceType = 6
)

// Value returns the centipawn value of the piece type. The king's value is
// set far above any realizable material swing rather than "infinite" so it
// can still participate in signed arithmetic.
func (pt PieceType) Value() int {
	switch pt {
	case Pawn:
		return 100
	case Knight:
		return 320
	case Bishop:
		return 330
	case Rook:
		return 500
	case Queen:
		return 900
	case King:
		return 100000
	default:
		return 0
	}
}

// Piece is a (color, type) pair encoded as a small integer 0..11, with an
// additional sentinel NoPiece (12) for "empty square" / "no capture".
//
//	index = color*6 + pieceType
type Piece uint8

const (
	WhitePawn Piece = iota
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
	NoPiece Piece = 12
)

// NewPiece builds a Piece from its color and type.
func NewPiece(c Color, pt PieceType) Piece {
	return Piece(uint8(c)*6 + uint8(pt))
}

// Color returns the piece's color. Undefined for NoPiece.
func (p Piece) Color() Color {
	return Color(p / 6)
}

// Type returns the piece's type. Undefined for NoPiece.
func (p Piece) Type() PieceType {
	return PieceType(p % 6)
}

// IsNone reports whether p is the "no piece" sentinel.
func (p Piece) IsNone() bool {
	return p == NoPiece
}

// Value returns the centipawn value of the piece (0 for NoPiece).
func (p Piece) Value() int {
	if p.IsNone() {
		return 0
	}
	return p.Type().Value()
}

var pieceLetters = [12]byte{'P', 'N', 'B', 'R', 'Q', 'K', 'p', 'n', 'b', 'r', 'q', 'k'}

// Letter returns the FEN letter for the piece ('P'..'K' for White,
// 'p'..'k' for Black).
func (p Piece) Letter() byte {
	if p.IsNone() {
		return '.'
	}
	return pieceLetters[p]
}

// Square is a board square 0..63, indexed as rank*8+file (a1=0, h1=7,
// a8=56, h8=63). NoSquare (-1) marks "not applicable".
type Square int8

const NoSquare Square = -1

// NewSquare builds a Square from 0-based file (0=a..7=h) and rank (0=1..7=8).
// Returns NoSquare if either is out of range.
func NewSquare(file, rank int) Square {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare
	}
	return Square(rank*8 + file)
}

// File returns the 0-based file (0=a..7=h).
func (s Square) File() int { return int(s) & 7 }

// Rank returns the 0-based rank (0=rank1..7=rank8).
func (s Square) Rank() int { return int(s) >> 3 }

// IsValid reports whether s is in 0..63.
func (s Square) IsValid() bool { return s >= 0 && s <= 63 }

// Flip returns 63-s, the board-inversion square used to reuse
// piece-square tables across colors.
func (s Square) Flip() Square { return 63 - s }

// Bit returns the single-bit Bitboard for s.
func (s Square) Bit() Bitboard { return Bitboard(1) << uint(s) }

// String returns algebraic notation, e.g. "e4", or "-" if invalid.
func (s Square) String() string {
	if !s.IsValid() {
		return "-"
	}
	return string([]byte{byte('a' + s.File()), byte('1' + s.Rank())})
}

// ParseSquare parses algebraic notation (e.g. "e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, &EngineError{Kind: ErrInvalidSquare, Msg: "square must be 2 characters: " + s}
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	sq := NewSquare(file, rank)
	if !sq.IsValid() {
		return NoSquare, &EngineError{Kind: ErrInvalidSquare, Msg: "square out of range: " + s}
	}
	return sq, nil
}
