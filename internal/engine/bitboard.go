package engine

import "math/bits"

// Bitboard is a 64-bit set of squares; bit i is set iff square i is a member.
type Bitboard uint64

// File masks, used to guard shifts against wrapping across board edges.
const (
	fileA Bitboard = 0x0101010101010101
	fileH Bitboard = 0x8080808080808080
	rank1 Bitboard = 0x00000000000000FF
	rank8 Bitboard = 0xFF00000000000000

	notFileA Bitboard = ^fileA
	notFileH Bitboard = ^fileH
	notRank1 Bitboard = ^rank1
	notRank8 Bitboard = ^rank8

	// notAB / notGH exclude the two files nearest an edge, needed by knight
	// jumps that move two files in one step.
	notFileAB Bitboard = ^(fileA | fileA<<1)
	notFileGH Bitboard = ^(fileH | fileH>>1)

	AllSquares Bitboard = 0xFFFFFFFFFFFFFFFF
	EmptySet   Bitboard = 0
)

// Has reports whether sq is a member.
func (b Bitboard) Has(sq Square) bool { return b&sq.Bit() != 0 }

// Set returns b with sq added.
func (b Bitboard) Set(sq Square) Bitboard { return b | sq.Bit() }

// Clear returns b with sq removed.
func (b Bitboard) Clear(sq Square) Bitboard { return b &^ sq.Bit() }

// PopCount returns the number of member squares.
func (b Bitboard) PopCount() int { return bits.OnesCount64(uint64(b)) }

// LSB returns the lowest-indexed member square. Undefined (returns
// NoSquare) for the empty set.
func (b Bitboard) LSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// MSB returns the highest-indexed member square. Undefined (returns
// NoSquare) for the empty set.
func (b Bitboard) MSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLSB clears and returns the lowest-indexed member square. Undefined on
// the empty set; callers must guard with a non-zero check first.
func (b *Bitboard) PopLSB() Square {
	sq := b.LSB()
	*b &= *b - 1
	return sq
}

// ShiftUp / ShiftDown move every member one rank toward rank8 / rank1.
func (b Bitboard) ShiftUp() Bitboard   { return b << 8 }
func (b Bitboard) ShiftDown() Bitboard { return b >> 8 }

// ShiftLeft / ShiftRight move every member one file, masking away wrap.
func (b Bitboard) ShiftLeft() Bitboard  { return (b & notFileA) >> 1 }
func (b Bitboard) ShiftRight() Bitboard { return (b & notFileH) << 1 }

// The four diagonal single-step shifts, each masked against the file it
// would otherwise wrap across.
func (b Bitboard) ShiftUpLeft() Bitboard    { return (b & notFileA) << 7 }
func (b Bitboard) ShiftUpRight() Bitboard   { return (b & notFileH) << 9 }
func (b Bitboard) ShiftDownLeft() Bitboard  { return (b & notFileA) >> 9 }
func (b Bitboard) ShiftDownRight() Bitboard { return (b & notFileH) >> 7 }

// Squares returns the member squares in increasing order. Intended for
// tests and rendering, not hot search paths (use PopLSB there).
func (b Bitboard) Squares() []Square {
	sqs := make([]Square, 0, b.PopCount())
	for bb := b; bb != 0; {
		sqs = append(sqs, bb.PopLSB())
	}
	return sqs
}
