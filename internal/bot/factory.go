package bot

import (
	"fmt"
	"time"

	"github.com/kestrelchess/kestrel/internal/search"
)

// EngineOption is a functional option for engine creation.
type EngineOption func(*engineConfig) error

type engineConfig struct {
	timeLimit   time.Duration
	searchDepth int
	ttSizeMB    int
}

// WithTimeLimit sets the per-move time budget.
func WithTimeLimit(d time.Duration) EngineOption {
	return func(c *engineConfig) error {
		if d <= 0 {
			return fmt.Errorf("time limit must be positive")
		}
		c.timeLimit = d
		return nil
	}
}

// WithSearchDepth sets the iterative-deepening depth cap for search engines.
func WithSearchDepth(depth int) EngineOption {
	return func(c *engineConfig) error {
		if depth < 1 || depth > 20 {
			return fmt.Errorf("search depth must be 1-20")
		}
		c.searchDepth = depth
		return nil
	}
}

// WithTTSize sets the transposition table size in megabytes.
func WithTTSize(mb int) EngineOption {
	return func(c *engineConfig) error {
		if mb < 1 {
			return fmt.Errorf("transposition table size must be at least 1 MB")
		}
		c.ttSizeMB = mb
		return nil
	}
}

// NewRandomEngine creates the Easy bot: no search, a tactical-leaning
// random mover.
func NewRandomEngine(opts ...EngineOption) (Engine, error) {
	cfg := &engineConfig{timeLimit: 2 * time.Second}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return &randomEngine{name: "Easy Bot", timeLimit: cfg.timeLimit}, nil
}

// NewSearchEngine creates a Medium or Hard bot backed by internal/search's
// iterative-deepening negamax.
func NewSearchEngine(difficulty Difficulty, opts ...EngineOption) (Engine, error) {
	cfg := &engineConfig{ttSizeMB: 32}
	switch difficulty {
	case Medium:
		cfg.timeLimit = 4 * time.Second
		cfg.searchDepth = 6
	case Hard:
		cfg.timeLimit = 8 * time.Second
		cfg.searchDepth = 12
	default:
		return nil, fmt.Errorf("invalid difficulty for a search engine: %v (expected Medium or Hard)", difficulty)
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	return &searchEngine{
		name:       fmt.Sprintf("%s Bot", difficulty.String()),
		difficulty: difficulty,
		maxDepth:   cfg.searchDepth,
		timeLimit:  cfg.timeLimit,
		tt:         search.NewTable(cfg.ttSizeMB),
	}, nil
}
