package engine

// Magic numbers and relevant-occupancy bit counts for the bishop and rook
// sliding-piece attack tables (§4.2). The constants are a black box handed
// down from a known-good magic search; they are reproduced here exactly as
// published rather than rederived, the same way a production engine vendors
// them.
var (
	bishopMagics = [64]uint64{
		0x11410121040100, 0x2084820928010, 0xa010208481080040, 0x214240082000610,
		0x4d104000400480, 0x1012010804408, 0x42044101452000c, 0x2844804050104880,
		0x814204290a0a00, 0x10280688224500, 0x1080410101010084, 0x10020a108408004,
		0x2482020210c80080, 0x480104a0040400, 0x411006404200810, 0x1024010908024292,
		0x1004401001011a, 0x810006081220080, 0x1040404206004100, 0x58080000820041ce,
		0x3406000422010890, 0x1a004100520210, 0x202a000048040400, 0x225004441180110,
		0x8064240102240, 0x1424200404010402, 0x1041100041024200, 0x8082002012008200,
		0x1010008104000, 0x8808004000806000, 0x380a000080c400, 0x31040100042d0101,
		0x110109008082220, 0x4010880204201, 0x4006462082100300, 0x4002010040140041,
		0x40090200250880, 0x2010100c40c08040, 0x12800ac01910104, 0x10b20051020100,
		0x210894104828c000, 0x50440220004800, 0x1002011044180800, 0x4220404010410204,
		0x1002204a2020401, 0x21021001000210, 0x4880081009402, 0xc208088c088e0040,
		0x4188464200080, 0x3810440618022200, 0xc020310401040420, 0x2000008208800e0,
		0x4c910240020, 0x425100a8602a0, 0x20c4206a0c030510, 0x4c10010801184000,
		0x200202020a026200, 0x6000004400841080, 0xc14004121082200, 0x400324804208800,
		0x1802200040504100, 0x1820000848488820, 0x8620682a908400, 0x8010600084204240,
	}
	rookMagics = [64]uint64{
		0x2080008040002010, 0x40200010004000, 0x100090010200040, 0x2080080010000480,
		0x880040080080102, 0x8200106200042108, 0x410041000408b200, 0x100009a00402100,
		0x5800800020804000, 0x848404010002000, 0x101001820010041, 0x10a0040100420080,
		0x8a02002006001008, 0x926000844110200, 0x8000800200800100, 0x28060001008c2042,
		0x10818002204000, 0x10004020004001, 0x110002008002400, 0x11a020010082040,
		0x2001010008000410, 0x42010100080400, 0x4004040008020110, 0x820000840041,
		0x400080208000, 0x2080200040005000, 0x8000200080100080, 0x4400080180500080,
		0x4900080080040080, 0x4004004480020080, 0x8006000200040108, 0xc481000100006396,
		0x1000400080800020, 0x201004400040, 0x10008010802000, 0x204012000a00,
		0x800400800802, 0x284000200800480, 0x3000403000200, 0x840a6000514,
		0x4080c000228012, 0x10002000444010, 0x620001000808020, 0xc210010010009,
		0x100c001008010100, 0xc10020004008080, 0x20100802040001, 0x808008305420014,
		0xc010800840043080, 0x208401020890100, 0x10b0081020028280, 0x6087001001220900,
		0xc080011000500, 0x9810200040080, 0x2000010882100400, 0x2000050880540200,
		0x800020104200810a, 0x6220250242008016, 0x9180402202900a, 0x40210500100009,
		0x6000814102026, 0x410100080a040013, 0x10405008022d1184, 0x1000009400410822,
	}

	// bishopBits/rookBits is the number of relevant-occupancy bits per
	// square, i.e. the popcount of the square's relevance mask.
	bishopBits = [64]int{
		6, 5, 5, 5, 5, 5, 5, 6,
		5, 5, 5, 5, 5, 5, 5, 5,
		5, 5, 7, 7, 7, 7, 5, 5,
		5, 5, 7, 9, 9, 7, 5, 5,
		5, 5, 7, 9, 9, 7, 5, 5,
		5, 5, 7, 7, 7, 7, 5, 5,
		5, 5, 5, 5, 5, 5, 5, 5,
		6, 5, 5, 5, 5, 5, 5, 6,
	}
	rookBits = [64]int{
		12, 11, 11, 11, 11, 11, 11, 12,
		11, 10, 10, 10, 10, 10, 10, 11,
		11, 10, 10, 10, 10, 10, 10, 11,
		11, 10, 10, 10, 10, 10, 10, 11,
		11, 10, 10, 10, 10, 10, 10, 11,
		11, 10, 10, 10, 10, 10, 10, 11,
		11, 10, 10, 10, 10, 10, 10, 11,
		12, 11, 11, 11, 11, 11, 11, 12,
	}
)

// rayAttacks ray-traces a slider's attack set on-the-fly from square sq
// along the given (file,rank) step deltas, stopping at (and including) the
// first occupied square in each direction. This is the reference generator
// used both to seed the magic tables at init time and, in tests, to check
// every magic lookup against brute force (P5).
func rayAttacks(sq Square, occ Bitboard, deltas [4][2]int) Bitboard {
	var attacks Bitboard
	file, rank := sq.File(), sq.Rank()
	for _, d := range deltas {
		f, r := file+d[0], rank+d[1]
		for f >= 0 && f <= 7 && r >= 0 && r <= 7 {
			s := NewSquare(f, r)
			attacks = attacks.Set(s)
			if occ.Has(s) {
				break
			}
			f += d[0]
			r += d[1]
		}
	}
	return attacks
}

var bishopDeltas = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var rookDeltas = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

func bishopRayAttacks(sq Square, occ Bitboard) Bitboard { return rayAttacks(sq, occ, bishopDeltas) }
func rookRayAttacks(sq Square, occ Bitboard) Bitboard   { return rayAttacks(sq, occ, rookDeltas) }

// relevanceMask is the ray attack set computed against an empty board with
// the board edges stripped off: the "inner" squares whose occupancy can
// possibly change the slider's attack set.
func relevanceMask(sq Square, deltas [4][2]int) Bitboard {
	var mask Bitboard
	file, rank := sq.File(), sq.Rank()
	for _, d := range deltas {
		f, r := file+d[0], rank+d[1]
		for {
			nf, nr := f+d[0], r+d[1]
			if nf < 0 || nf > 7 || nr < 0 || nr > 7 {
				break
			}
			if f < 0 || f > 7 || r < 0 || r > 7 {
				break
			}
			mask = mask.Set(NewSquare(f, r))
			f, r = nf, nr
		}
	}
	return mask
}

// occupancySubset returns the index-th subset of mask's bits, bit i of index
// selecting the i-th lowest square of mask. It addresses the same subsets
// that initSliderTables visits with its Carry-Rippler walk, by number.
func occupancySubset(index int, mask Bitboard) Bitboard {
	var occ Bitboard
	bitsLeft := mask
	for i := 0; bitsLeft != 0; i++ {
		sq := bitsLeft.PopLSB()
		if index&(1<<uint(i)) != 0 {
			occ = occ.Set(sq)
		}
	}
	return occ
}
