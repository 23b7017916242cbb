package bot

import (
	"context"
	"testing"
	"time"

	"github.com/kestrelchess/kestrel/internal/engine"
	"github.com/kestrelchess/kestrel/internal/search"
	"github.com/stretchr/testify/require"
)

func newTestSearchEngine(t *testing.T) *searchEngine {
	t.Helper()
	return &searchEngine{
		name:       "Medium Bot",
		difficulty: Medium,
		maxDepth:   4,
		timeLimit:  2 * time.Second,
		tt:         search.NewTable(1),
	}
}

func TestSearchEngineSelectMoveReturnsLegalMove(t *testing.T) {
	e := newTestSearchEngine(t)
	board := engine.StartPosition()

	move, err := e.SelectMove(context.Background(), board)
	require.NoError(t, err)
	require.Contains(t, board.LegalMoves(), move)
}

func TestSearchEngineSelectMoveClosedReturnsError(t *testing.T) {
	e := newTestSearchEngine(t)
	require.NoError(t, e.Close())

	_, err := e.SelectMove(context.Background(), engine.StartPosition())
	require.Error(t, err)
}

func TestSearchEngineSelectMoveNoLegalMoves(t *testing.T) {
	e := newTestSearchEngine(t)
	board, err := engine.FromFEN("7k/5K2/6Q1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)

	_, err = e.SelectMove(context.Background(), board)
	require.Error(t, err)
}

func TestSearchEngineConfigureSearchDepth(t *testing.T) {
	e := newTestSearchEngine(t)
	require.NoError(t, e.Configure(map[string]any{"search_depth": 8}))
	require.Equal(t, 8, e.maxDepth)

	err := e.Configure(map[string]any{"search_depth": 100})
	require.Error(t, err)
}

func TestSearchEngineConfigureTimeLimit(t *testing.T) {
	e := newTestSearchEngine(t)
	require.NoError(t, e.Configure(map[string]any{"time_limit": 10 * time.Second}))
	require.Equal(t, 10*time.Second, e.timeLimit)

	err := e.Configure(map[string]any{"time_limit": -1 * time.Second})
	require.Error(t, err)
}

func TestSearchEngineInfoReportsFeatures(t *testing.T) {
	e := newTestSearchEngine(t)
	info := e.Info()
	require.Equal(t, Medium, info.Difficulty)
	require.True(t, info.Features["transposition_table"])
	require.True(t, info.Features["configurable"])
}
