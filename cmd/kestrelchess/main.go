// Package main is the entry point for Kestrel Chess.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kestrelchess/kestrel/internal/bot"
	"github.com/kestrelchess/kestrel/internal/cli"
	"github.com/kestrelchess/kestrel/internal/config"
	"github.com/kestrelchess/kestrel/internal/engine"
	"github.com/kestrelchess/kestrel/internal/version"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	difficultyFlag := flag.String("difficulty", "", "Bot difficulty: easy, medium, hard, or none for two-player")
	flag.Parse()

	if *showVersion {
		printVersion()
		return
	}

	cfg := config.LoadConfig()

	botEngine, err := buildBotEngine(cfg, *difficultyFlag)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	model := cli.NewModel(cfg, botEngine, engine.White)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// buildBotEngine resolves the requested difficulty (flag, falling back to
// the configured default) into a bot.Engine. An explicit "none" disables
// the bot for a two-player game.
func buildBotEngine(cfg config.Config, requested string) (bot.Engine, error) {
	if requested == "none" {
		return nil, nil
	}

	difficulty := cfg.DefaultDifficulty
	switch requested {
	case "easy":
		difficulty = bot.Easy
	case "medium":
		difficulty = bot.Medium
	case "hard":
		difficulty = bot.Hard
	case "":
		// fall through to the configured default
	default:
		return nil, fmt.Errorf("unknown difficulty %q (expected easy, medium, hard, or none)", requested)
	}

	if difficulty == bot.Easy {
		return bot.NewRandomEngine(bot.WithTimeLimit(cfg.ThinkTime))
	}
	return bot.NewSearchEngine(difficulty, bot.WithTimeLimit(cfg.ThinkTime), bot.WithTTSize(cfg.TTSizeMB))
}

func printVersion() {
	fmt.Printf("kestrelchess %s\n", version.Version)
	fmt.Printf("Build date: %s\n", version.BuildDate)
	fmt.Printf("Git commit: %s\n", version.GitCommit)
}
