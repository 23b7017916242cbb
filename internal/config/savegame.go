package config

import (
	"fmt"
	"os"

	"github.com/kestrelchess/kestrel/internal/engine"
)

// SaveGame writes board's FEN to ~/.kestrelchess/savegame.fen, creating
// the directory if needed.
func SaveGame(board *engine.Board) error {
	savePath, err := SaveGamePath()
	if err != nil {
		return fmt.Errorf("failed to get save game path: %w", err)
	}

	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(savePath, []byte(board.FEN()), 0644); err != nil {
		return fmt.Errorf("failed to write save game file: %w", err)
	}
	return nil
}

// LoadGame reads ~/.kestrelchess/savegame.fen and parses it into a Board.
func LoadGame() (*engine.Board, error) {
	savePath, err := SaveGamePath()
	if err != nil {
		return nil, fmt.Errorf("failed to get save game path: %w", err)
	}

	data, err := os.ReadFile(savePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read save game file: %w", err)
	}

	board, err := engine.FromFEN(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse saved game FEN: %w", err)
	}
	return board, nil
}

// DeleteSaveGame removes the save file. A missing file is not an error.
func DeleteSaveGame() error {
	savePath, err := SaveGamePath()
	if err != nil {
		return fmt.Errorf("failed to get save game path: %w", err)
	}

	if _, err := os.Stat(savePath); os.IsNotExist(err) {
		return nil
	}
	if err := os.Remove(savePath); err != nil {
		return fmt.Errorf("failed to delete save game file: %w", err)
	}
	return nil
}

// SaveGameExists reports whether a save file is present.
func SaveGameExists() bool {
	savePath, err := SaveGamePath()
	if err != nil {
		return false
	}
	_, err = os.Stat(savePath)
	return err == nil
}
