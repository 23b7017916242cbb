package config

import (
	"os"
	"testing"
	"time"

	"github.com/kestrelchess/kestrel/internal/bot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withBackedUpConfigFile renames any existing config file aside for the
// duration of fn, then restores it.
func withBackedUpConfigFile(t *testing.T, fn func()) {
	t.Helper()
	configPath, err := getConfigFilePath()
	require.NoError(t, err)

	backupPath := configPath + ".test-backup"
	if _, err := os.Stat(configPath); err == nil {
		require.NoError(t, os.Rename(configPath, backupPath))
		defer os.Rename(backupPath, configPath)
	} else {
		defer os.Remove(configPath)
	}

	fn()
}

func TestLoadConfigWithMissingFile(t *testing.T) {
	withBackedUpConfigFile(t, func() {
		configPath, _ := getConfigFilePath()
		os.Remove(configPath)

		assert.Equal(t, DefaultConfig(), LoadConfig())
	})
}

func TestSaveAndLoadConfig(t *testing.T) {
	withBackedUpConfigFile(t, func() {
		custom := Config{
			UseUnicode:        true,
			ShowCoordinates:   false,
			UseColors:         false,
			Theme:             "modern",
			ThinkTime:         6 * time.Second,
			TTSizeMB:          64,
			DefaultDifficulty: bot.Hard,
		}

		require.NoError(t, SaveConfig(custom))
		assert.Equal(t, custom, LoadConfig())
	})
}

func TestSaveConfigCreatesDirectory(t *testing.T) {
	configDir, err := GetConfigDir()
	require.NoError(t, err)

	require.NoError(t, SaveConfig(DefaultConfig()))

	_, err = os.Stat(configDir)
	assert.NoError(t, err)
}

func TestFileToConfigFillsDefaultsForZeroFields(t *testing.T) {
	f := File{
		Display: DisplaySection{UseUnicode: true, ShowCoordinates: false, UseColors: false, Theme: ""},
		Engine:  EngineSection{ThinkTimeMS: 0, TTSizeMB: 0, DefaultDifficulty: ""},
	}

	cfg := fileToConfig(f)
	d := DefaultConfig()

	assert.Equal(t, d.Theme, cfg.Theme)
	assert.Equal(t, d.ThinkTime, cfg.ThinkTime)
	assert.Equal(t, d.TTSizeMB, cfg.TTSizeMB)
	assert.Equal(t, d.DefaultDifficulty, cfg.DefaultDifficulty)
	assert.True(t, cfg.UseUnicode)
	assert.False(t, cfg.ShowCoordinates)
	assert.False(t, cfg.UseColors)
}

func TestConfigToFileRoundTripsDifficulty(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DefaultDifficulty = bot.Hard

	f := configToFile(cfg)
	assert.Equal(t, "hard", f.Engine.DefaultDifficulty)

	back := fileToConfig(f)
	assert.Equal(t, bot.Hard, back.DefaultDifficulty)
}

func TestParseDifficultyUnknownFallsBack(t *testing.T) {
	_, ok := parseDifficulty("grandmaster")
	assert.False(t, ok)
}
