// Package config provides configuration and game state persistence for
// Kestrel Chess.
//
// Configuration lives in ~/.kestrelchess/config.toml. Game saves are
// stored as FEN strings in ~/.kestrelchess/savegame.fen.
//
// Config directory permissions: 0755 (rwxr-xr-x)
// Config file permissions: 0644 (rw-r--r--)
// Save game file permissions: 0644 (rw-r--r--)
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/kestrelchess/kestrel/internal/bot"
)

// DefaultTheme is the default color theme name.
const DefaultTheme = "classic"

// Config holds the fully-resolved runtime configuration, combining the
// display and engine sections of the TOML file into the shape the rest of
// the program consumes.
type Config struct {
	UseUnicode      bool
	ShowCoordinates bool
	UseColors       bool
	Theme           string

	ThinkTime         time.Duration
	TTSizeMB          int
	DefaultDifficulty bot.Difficulty
}

// DefaultConfig returns a Config with default values for maximum
// compatibility and user-friendliness.
func DefaultConfig() Config {
	return Config{
		UseUnicode:      false,
		ShowCoordinates: true,
		UseColors:       true,
		Theme:           DefaultTheme,

		ThinkTime:         4 * time.Second,
		TTSizeMB:          32,
		DefaultDifficulty: bot.Medium,
	}
}

// File mirrors the on-disk TOML layout (§6): a [display] and an [engine]
// section.
type File struct {
	Display DisplaySection `toml:"display"`
	Engine  EngineSection  `toml:"engine"`
}

// DisplaySection holds display-related configuration options.
type DisplaySection struct {
	UseUnicode      bool   `toml:"use_unicode"`
	ShowCoordinates bool   `toml:"show_coordinates"`
	UseColors       bool   `toml:"use_colors"`
	Theme           string `toml:"theme"`
}

// EngineSection holds engine tuning knobs.
type EngineSection struct {
	ThinkTimeMS       int    `toml:"think_time_ms"`
	TTSizeMB          int    `toml:"tt_size_mb"`
	DefaultDifficulty string `toml:"default_difficulty"`
}

func defaultFile() File {
	d := DefaultConfig()
	return File{
		Display: DisplaySection{
			UseUnicode:      d.UseUnicode,
			ShowCoordinates: d.ShowCoordinates,
			UseColors:       d.UseColors,
			Theme:           d.Theme,
		},
		Engine: EngineSection{
			ThinkTimeMS:       int(d.ThinkTime / time.Millisecond),
			TTSizeMB:          d.TTSizeMB,
			DefaultDifficulty: strings.ToLower(d.DefaultDifficulty.String()),
		},
	}
}

// fileToConfig converts a parsed File into a resolved Config, filling in
// defaults for anything missing or out of range.
func fileToConfig(f File) Config {
	c := DefaultConfig()

	c.UseUnicode = f.Display.UseUnicode
	c.ShowCoordinates = f.Display.ShowCoordinates
	c.UseColors = f.Display.UseColors
	if f.Display.Theme != "" {
		c.Theme = f.Display.Theme
	}

	if f.Engine.ThinkTimeMS > 0 {
		c.ThinkTime = time.Duration(f.Engine.ThinkTimeMS) * time.Millisecond
	}
	if f.Engine.TTSizeMB > 0 {
		c.TTSizeMB = f.Engine.TTSizeMB
	}
	if diff, ok := parseDifficulty(f.Engine.DefaultDifficulty); ok {
		c.DefaultDifficulty = diff
	}

	return c
}

// configToFile converts a resolved Config back into the TOML shape.
func configToFile(c Config) File {
	return File{
		Display: DisplaySection{
			UseUnicode:      c.UseUnicode,
			ShowCoordinates: c.ShowCoordinates,
			UseColors:       c.UseColors,
			Theme:           c.Theme,
		},
		Engine: EngineSection{
			ThinkTimeMS:       int(c.ThinkTime / time.Millisecond),
			TTSizeMB:          c.TTSizeMB,
			DefaultDifficulty: strings.ToLower(c.DefaultDifficulty.String()),
		},
	}
}

func parseDifficulty(s string) (bot.Difficulty, bool) {
	switch strings.ToLower(s) {
	case "easy":
		return bot.Easy, true
	case "medium":
		return bot.Medium, true
	case "hard":
		return bot.Hard, true
	default:
		return bot.Easy, false
	}
}

// LoadConfig reads ~/.kestrelchess/config.toml. If the file is missing or
// cannot be parsed, it returns the default configuration; this function
// never returns an error.
func LoadConfig() Config {
	configPath, err := getConfigFilePath()
	if err != nil {
		return DefaultConfig()
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return DefaultConfig()
	}

	var f File
	if _, err := toml.DecodeFile(configPath, &f); err != nil {
		return DefaultConfig()
	}

	return fileToConfig(f)
}

// SaveConfig writes config to ~/.kestrelchess/config.toml, creating the
// directory if needed.
func SaveConfig(cfg Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath, err := getConfigFilePath()
	if err != nil {
		return fmt.Errorf("failed to get config file path: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(configToFile(cfg)); err != nil {
		return fmt.Errorf("failed to encode config to TOML: %w", err)
	}
	return nil
}
