package bot

import (
	"context"
	"testing"
	"time"

	"github.com/kestrelchess/kestrel/internal/engine"
	"github.com/stretchr/testify/require"
)

func TestRandomEngineSelectMoveReturnsLegalMove(t *testing.T) {
	e := &randomEngine{name: "Easy Bot", timeLimit: time.Second}
	board := engine.StartPosition()

	move, err := e.SelectMove(context.Background(), board)
	require.NoError(t, err)
	require.Contains(t, board.LegalMoves(), move)
}

func TestRandomEngineSelectMoveClosedReturnsError(t *testing.T) {
	e := &randomEngine{name: "Easy Bot", timeLimit: time.Second}
	require.NoError(t, e.Close())

	_, err := e.SelectMove(context.Background(), engine.StartPosition())
	require.Error(t, err)
}

func TestRandomEngineSelectMoveNoLegalMoves(t *testing.T) {
	e := &randomEngine{name: "Easy Bot", timeLimit: time.Second}
	board, err := engine.FromFEN("7k/5K2/6Q1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)

	_, err = e.SelectMove(context.Background(), board)
	require.Error(t, err)
}

func TestFilterCapturesOnlyReturnsCaptures(t *testing.T) {
	board, err := engine.FromFEN("rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2")
	require.NoError(t, err)

	moves := board.LegalMoves()
	captures := filterCaptures(moves)
	require.NotEmpty(t, captures)
	for _, m := range captures {
		require.True(t, m.IsCapture())
	}
}

func TestFilterChecksBoardUnchangedAfterward(t *testing.T) {
	board, err := engine.FromFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	require.NoError(t, err)
	before := board.FEN()

	_ = filterChecks(board, board.LegalMoves())

	require.Equal(t, before, board.FEN())
}

func TestRandomEngineInfo(t *testing.T) {
	e := &randomEngine{name: "Easy Bot", timeLimit: time.Second}
	info := e.Info()
	require.Equal(t, Easy, info.Difficulty)
	require.Equal(t, TypeInternal, info.Type)
}
