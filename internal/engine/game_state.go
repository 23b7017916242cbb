package engine

// GameStatus represents the current state of a chess game.
type GameStatus int

const (
	// Ongoing indicates the game is still in progress.
	Ongoing GameStatus = iota

	// Checkmate indicates the player to move is in checkmate; the
	// opponent wins.
	Checkmate

	// Stalemate indicates the player to move has no legal moves but is
	// not in check. The game is a draw.
	Stalemate

	// DrawInsufficientMaterial indicates neither side has enough material
	// to deliver checkmate (e.g. K vs K, K+B vs K, K+N vs K).
	DrawInsufficientMaterial

	// DrawFiftyMoveRule indicates a draw may be claimed: fifty full moves
	// have passed without a pawn move or capture.
	DrawFiftyMoveRule

	// DrawSeventyFiveMoveRule indicates an automatic draw: seventy-five
	// full moves have passed without a pawn move or capture.
	DrawSeventyFiveMoveRule

	// DrawThreefoldRepetition indicates a draw may be claimed: the
	// current position has occurred three times.
	DrawThreefoldRepetition

	// DrawFivefoldRepetition indicates an automatic draw: the current
	// position has occurred five times.
	DrawFivefoldRepetition
)

// String returns a human-readable status label.
func (s GameStatus) String() string {
	switch s {
	case Ongoing:
		return "ongoing"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case DrawInsufficientMaterial:
		return "draw (insufficient material)"
	case DrawFiftyMoveRule:
		return "draw (fifty-move rule)"
	case DrawSeventyFiveMoveRule:
		return "draw (seventy-five-move rule)"
	case DrawThreefoldRepetition:
		return "draw (threefold repetition)"
	case DrawFivefoldRepetition:
		return "draw (fivefold repetition)"
	default:
		return "unknown"
	}
}

// Status evaluates the current position against every end-of-game condition
// in priority order: no legal moves first (checkmate/stalemate), then the
// automatic draws (fivefold repetition, seventy-five-move rule, insufficient
// material), then the claimable draws (threefold repetition, fifty-move
// rule), then Ongoing.
func (b *Board) Status() GameStatus {
	if len(b.LegalMoves()) == 0 {
		if b.InCheck(b.SideToMove) {
			return Checkmate
		}
		return Stalemate
	}

	repCount := b.repetitionCount()
	if repCount >= 5 {
		return DrawFivefoldRepetition
	}
	if b.HalfmoveClock >= 150 {
		return DrawSeventyFiveMoveRule
	}
	if b.isInsufficientMaterial() {
		return DrawInsufficientMaterial
	}
	if repCount >= 3 {
		return DrawThreefoldRepetition
	}
	if b.HalfmoveClock >= 100 {
		return DrawFiftyMoveRule
	}

	return Ongoing
}

// IsGameOver reports whether the game has ended by any rule.
func (b *Board) IsGameOver() bool {
	return b.Status() != Ongoing
}

// Winner returns the winning color and true if Status is Checkmate; returns
// (0, false) for every draw and for Ongoing.
func (b *Board) Winner() (Color, bool) {
	if b.Status() == Checkmate {
		return b.SideToMove.Other(), true
	}
	return 0, false
}

// repetitionCount counts occurrences of the current hash in the game's
// recorded history, which includes the current position as its last entry.
func (b *Board) repetitionCount() int {
	count := 0
	for _, hash := range b.RepetitionHistory {
		if hash == b.Hash {
			count++
		}
	}
	return count
}

// isInsufficientMaterial reports whether the position is a dead draw on
// material alone: K vs K, K+minor vs K, or K+B vs K+B with same-colored
// bishops. Any pawn, rook, or queen on the board, or two-or-more minor
// pieces on one side, rules this out.
func (b *Board) isInsufficientMaterial() bool {
	for _, pt := range [3]PieceType{Pawn, Rook, Queen} {
		if b.PieceCounts[NewPiece(White, pt)] > 0 || b.PieceCounts[NewPiece(Black, pt)] > 0 {
			return false
		}
	}

	whiteMinors := b.PieceCounts[WhiteKnight] + b.PieceCounts[WhiteBishop]
	blackMinors := b.PieceCounts[BlackKnight] + b.PieceCounts[BlackBishop]

	if whiteMinors == 0 && blackMinors == 0 {
		return true // K vs K
	}
	if whiteMinors+blackMinors == 1 {
		return true // K+minor vs K
	}
	if whiteMinors == 1 && blackMinors == 1 && b.PieceCounts[WhiteKnight] == 0 && b.PieceCounts[BlackKnight] == 0 {
		wb := b.PieceList[WhiteBishop][0]
		bb := b.PieceList[BlackBishop][0]
		return squareColor(wb) == squareColor(bb)
	}
	return false
}

// squareColor returns 0 for a dark square, 1 for a light square.
func squareColor(sq Square) int {
	return int(sq.File()+sq.Rank()) % 2
}
