// Package cli implements the interactive terminal program described in
// §6 as an external collaborator: a bubbletea TUI that reads a move from
// the player, lets the bot reply, and renders the board after each ply.
// It is intentionally thin -- one screen, one game at a time -- since the
// engine and search packages carry the hard problems.
package cli

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/kestrelchess/kestrel/internal/bot"
	"github.com/kestrelchess/kestrel/internal/config"
	"github.com/kestrelchess/kestrel/internal/engine"
	"github.com/kestrelchess/kestrel/internal/util"
)

var (
	statusStyle = lipgloss.NewStyle().Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Model is the bubbletea application model for a single human-vs-bot (or
// human-vs-human, with a nil botEngine) game.
type Model struct {
	board     *engine.Board
	renderer  *boardRenderer
	cfg       config.Config
	botEngine bot.Engine
	userColor engine.Color

	input     textinput.Model
	statusMsg string
	errorMsg  string
	thinking  bool
	quitting  bool
}

// NewModel builds a Model starting from the standard position. A nil
// botEngine means both sides are played interactively.
func NewModel(cfg config.Config, botEngine bot.Engine, userColor engine.Color) Model {
	ti := textinput.New()
	ti.Placeholder = "e2e4, quit, copy"
	ti.Focus()
	ti.CharLimit = 16
	ti.Width = 20

	return Model{
		board:     engine.StartPosition(),
		renderer:  newBoardRenderer(cfg),
		cfg:       cfg,
		botEngine: botEngine,
		userColor: userColor,
		input:     ti,
		statusMsg: "White to move",
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.handleSubmit()
		}
	case botMoveMsg:
		m.thinking = false
		if msg.err != nil {
			m.errorMsg = fmt.Sprintf("bot error: %v", msg.err)
			return m, nil
		}
		m.board.Make(msg.move)
		m.errorMsg = ""
		m.refreshStatus()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleSubmit() (tea.Model, tea.Cmd) {
	text := m.input.Value()
	m.input.SetValue("")

	switch text {
	case "quit", "exit":
		m.quitting = true
		return m, tea.Quit
	case "copy":
		if err := util.CopyToClipboard(m.board.FEN()); err != nil {
			m.errorMsg = fmt.Sprintf("copy failed: %v", err)
		} else {
			m.statusMsg = "FEN copied to clipboard"
			m.errorMsg = ""
		}
		return m, nil
	}

	if m.board.IsGameOver() || m.thinking {
		return m, nil
	}

	move, err := engine.ParseMove(text, m.board)
	if err != nil {
		m.errorMsg = err.Error()
		return m, nil
	}
	if !isLegal(m.board, move) {
		m.errorMsg = "illegal move: " + text
		return m, nil
	}

	m.board.Make(move)
	m.errorMsg = ""
	m.refreshStatus()

	if m.board.IsGameOver() || m.botEngine == nil || m.board.SideToMove != m.userColor.Other() {
		return m, nil
	}

	m.thinking = true
	return m, m.requestBotMove()
}

// isLegal reports whether move appears in the board's current legal move
// list, matching it by its packed encoding.
func isLegal(b *engine.Board, move engine.Move) bool {
	for _, lm := range b.LegalMoves() {
		if lm == move {
			return true
		}
	}
	return false
}

func (m Model) requestBotMove() tea.Cmd {
	board := m.board
	eng := m.botEngine
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		move, err := eng.SelectMove(ctx, board)
		return botMoveMsg{move: move, err: err}
	}
}

func (m *Model) refreshStatus() {
	switch m.board.Status() {
	case engine.Checkmate:
		winner, _ := m.board.Winner()
		m.statusMsg = fmt.Sprintf("Checkmate -- %s wins", winner)
	case engine.Stalemate:
		m.statusMsg = "Draw by stalemate"
	case engine.Ongoing:
		side := "White"
		if m.board.SideToMove == engine.Black {
			side = "Black"
		}
		if m.board.InCheck(m.board.SideToMove) {
			m.statusMsg = side + " to move, in check"
		} else {
			m.statusMsg = side + " to move"
		}
	default:
		m.statusMsg = m.board.Status().String()
	}
}

func (m Model) View() string {
	if m.quitting {
		return "Goodbye.\n"
	}

	var out string
	out += m.renderer.Render(m.board) + "\n\n"
	out += statusStyle.Render(m.statusMsg) + "\n"
	if m.thinking {
		out += helpStyle.Render("(bot is thinking...)") + "\n"
	}
	if m.errorMsg != "" {
		out += errorStyle.Render(m.errorMsg) + "\n"
	}
	out += m.input.View() + "\n"
	out += helpStyle.Render("moves in coordinate notation (e2e4, e7e8q) -- \"copy\" for FEN, \"quit\" to exit")
	return out
}
