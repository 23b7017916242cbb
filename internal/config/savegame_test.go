package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kestrelchess/kestrel/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveGamePath(t *testing.T) {
	path, err := SaveGamePath()
	require.NoError(t, err)
	assert.Contains(t, path, ".kestrelchess")
	assert.True(t, strings.HasSuffix(path, "savegame.fen"))
}

func TestSaveGame(t *testing.T) {
	board := engine.StartPosition()

	require.NoError(t, SaveGame(board))
	path, _ := SaveGamePath()
	defer os.Remove(path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = engine.FromFEN(string(data))
	assert.NoError(t, err)
}

func TestSaveGameCreatesDirectory(t *testing.T) {
	path, _ := SaveGamePath()
	saveDir := filepath.Dir(path)
	os.RemoveAll(saveDir)

	require.NoError(t, SaveGame(engine.StartPosition()))
	defer os.Remove(path)

	_, err := os.Stat(saveDir)
	assert.NoError(t, err)
}

func TestLoadGameRoundTrip(t *testing.T) {
	board := engine.StartPosition()
	for _, moveStr := range []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1c4"} {
		m, err := engine.ParseMove(moveStr, board)
		require.NoError(t, err)
		board.Make(m)
	}

	require.NoError(t, SaveGame(board))
	path, _ := SaveGamePath()
	defer os.Remove(path)

	loaded, err := LoadGame()
	require.NoError(t, err)

	assert.Equal(t, board.FEN(), loaded.FEN())
	assert.Equal(t, board.SideToMove, loaded.SideToMove)
	assert.Equal(t, board.CastlingRights, loaded.CastlingRights)
	assert.Equal(t, board.EnPassant, loaded.EnPassant)
	assert.Equal(t, board.HalfmoveClock, loaded.HalfmoveClock)
	assert.Equal(t, board.FullmoveNumber, loaded.FullmoveNumber)
}

func TestLoadGameNonExistent(t *testing.T) {
	path, _ := SaveGamePath()
	os.Remove(path)

	_, err := LoadGame()
	assert.Error(t, err)
}

func TestLoadGameInvalidFEN(t *testing.T) {
	path, _ := SaveGamePath()
	saveDir := filepath.Dir(path)
	os.MkdirAll(saveDir, 0755)

	require.NoError(t, os.WriteFile(path, []byte("not a fen"), 0644))
	defer os.Remove(path)

	_, err := LoadGame()
	assert.Error(t, err)
}

func TestDeleteSaveGame(t *testing.T) {
	require.NoError(t, SaveGame(engine.StartPosition()))
	path, _ := SaveGamePath()

	require.NoError(t, DeleteSaveGame())

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestDeleteSaveGameNonExistent(t *testing.T) {
	path, _ := SaveGamePath()
	os.Remove(path)

	assert.NoError(t, DeleteSaveGame())
}

func TestSaveGameExists(t *testing.T) {
	path, _ := SaveGamePath()
	os.Remove(path)

	assert.False(t, SaveGameExists())

	require.NoError(t, SaveGame(engine.StartPosition()))
	defer os.Remove(path)

	assert.True(t, SaveGameExists())
}
