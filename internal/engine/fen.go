package engine

import (
	"strconv"
	"strings"
)

// FromFEN builds a Board from Forsyth-Edwards Notation (§6): six
// space-separated fields -- piece placement, active color, castling rights,
// en passant target, halfmove clock, fullmove number.
func FromFEN(fen string) (*Board, error) {
	parts := strings.Fields(fen)
	if len(parts) != 6 {
		return nil, &EngineError{Kind: ErrInvalidFen, Msg: "expected 6 space-separated fields, got " + strconv.Itoa(len(parts))}
	}

	b := NewBoard()

	ranks := strings.Split(parts[0], "/")
	if len(ranks) != 8 {
		return nil, &EngineError{Kind: ErrInvalidFen, Msg: "piece placement must have 8 ranks"}
	}
	for rankIdx := 0; rankIdx < 8; rankIdx++ {
		rank := 7 - rankIdx
		file := 0
		for _, ch := range ranks[rankIdx] {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			if file > 7 {
				return nil, &EngineError{Kind: ErrInvalidFen, Msg: "too many pieces in a rank"}
			}
			p, err := pieceFromFEN(byte(ch))
			if err != nil {
				return nil, err
			}
			b.placePiece(p, NewSquare(file, rank))
			file++
		}
		if file != 8 {
			return nil, &EngineError{Kind: ErrInvalidFen, Msg: "rank does not sum to 8 squares"}
		}
	}

	switch parts[1] {
	case "w":
		b.SideToMove = White
	case "b":
		b.SideToMove = Black
	default:
		return nil, &EngineError{Kind: ErrInvalidFen, Msg: "active color must be 'w' or 'b': " + parts[1]}
	}

	b.CastlingRights = 0
	if parts[2] != "-" {
		for _, ch := range parts[2] {
			switch ch {
			case 'K':
				b.CastlingRights |= CastleWhiteKing
			case 'Q':
				b.CastlingRights |= CastleWhiteQueen
			case 'k':
				b.CastlingRights |= CastleBlackKing
			case 'q':
				b.CastlingRights |= CastleBlackQueen
			default:
				return nil, &EngineError{Kind: ErrInvalidFen, Msg: "invalid castling character: " + string(ch)}
			}
		}
	}

	b.EnPassant = NoSquare
	if parts[3] != "-" {
		sq, err := ParseSquare(parts[3])
		if err != nil {
			return nil, &EngineError{Kind: ErrInvalidFen, Msg: "invalid en passant square: " + parts[3]}
		}
		b.EnPassant = sq
	}

	halfMove, err := strconv.Atoi(parts[4])
	if err != nil || halfMove < 0 {
		return nil, &EngineError{Kind: ErrInvalidFen, Msg: "invalid halfmove clock: " + parts[4]}
	}
	b.HalfmoveClock = halfMove

	fullMove, err := strconv.Atoi(parts[5])
	if err != nil || fullMove < 1 {
		return nil, &EngineError{Kind: ErrInvalidFen, Msg: "invalid fullmove number: " + parts[5]}
	}
	b.FullmoveNumber = fullMove

	b.Hash, b.PawnHash = b.computeHash()
	b.RepetitionHistory = append(b.RepetitionHistory, b.Hash)

	return b, nil
}

func pieceFromFEN(ch byte) (Piece, error) {
	color := White
	if ch >= 'a' && ch <= 'z' {
		color = Black
		ch = ch - 'a' + 'A'
	}
	var pt PieceType
	switch ch {
	case 'P':
		pt = Pawn
	case 'N':
		pt = Knight
	case 'B':
		pt = Bishop
	case 'R':
		pt = Rook
	case 'Q':
		pt = Queen
	case 'K':
		pt = King
	default:
		return NoPiece, &EngineError{Kind: ErrInvalidFen, Msg: "invalid piece character: " + string(ch)}
	}
	return NewPiece(color, pt), nil
}

// FEN renders the board back to Forsyth-Edwards Notation.
func (b *Board) FEN() string {
	var sb strings.Builder

	for rankIdx := 0; rankIdx < 8; rankIdx++ {
		rank := 7 - rankIdx
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.Mailbox[NewSquare(file, rank)]
			if p.IsNone() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(p.Letter())
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rankIdx != 7 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if b.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	if b.CastlingRights == 0 {
		sb.WriteByte('-')
	} else {
		if b.CastlingRights&CastleWhiteKing != 0 {
			sb.WriteByte('K')
		}
		if b.CastlingRights&CastleWhiteQueen != 0 {
			sb.WriteByte('Q')
		}
		if b.CastlingRights&CastleBlackKing != 0 {
			sb.WriteByte('k')
		}
		if b.CastlingRights&CastleBlackQueen != 0 {
			sb.WriteByte('q')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(b.EnPassant.String())

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.HalfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.FullmoveNumber))

	return sb.String()
}

// StartPosition returns a fresh board in the standard starting position.
func StartPosition() *Board {
	b, err := FromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		panic("engine: standard start position failed to parse: " + err.Error())
	}
	return b
}
