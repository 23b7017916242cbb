package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kestrelchess/kestrel/internal/config"
	"github.com/kestrelchess/kestrel/internal/engine"
)

// boardRenderer renders a Board to a terminal string, respecting the
// display options in config.Config.
type boardRenderer struct {
	cfg config.Config
}

func newBoardRenderer(cfg config.Config) *boardRenderer {
	return &boardRenderer{cfg: cfg}
}

// Render draws the board from White's perspective: rank 8 at the top,
// rank 1 at the bottom.
func (r *boardRenderer) Render(b *engine.Board) string {
	if b == nil {
		return "no board available"
	}

	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		if r.cfg.ShowCoordinates {
			fmt.Fprintf(&sb, "%d ", rank+1)
		}
		for file := 0; file < 8; file++ {
			if file > 0 {
				sb.WriteString(" ")
			}
			sq := engine.NewSquare(file, rank)
			sb.WriteString(r.pieceSymbol(b.PieceAt(sq)))
		}
		sb.WriteString("\n")
	}
	if r.cfg.ShowCoordinates {
		sb.WriteString("  a b c d e f g h")
	}
	return sb.String()
}

var unicodeSymbols = [12]string{"♙", "♘", "♗", "♖", "♕", "♔", "♟", "♞", "♝", "♜", "♛", "♚"}

func (r *boardRenderer) pieceSymbol(p engine.Piece) string {
	if p.IsNone() {
		return "."
	}

	symbol := string(p.Letter())
	if r.cfg.UseUnicode {
		symbol = unicodeSymbols[p]
	}
	if !r.cfg.UseColors {
		return symbol
	}
	return r.colorSymbol(symbol, p)
}

func (r *boardRenderer) colorSymbol(symbol string, p engine.Piece) string {
	if p.Color() == engine.White {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true).Render(symbol)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Render(symbol)
}
