package bot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kestrelchess/kestrel/internal/engine"
	"github.com/kestrelchess/kestrel/internal/search"
)

// searchEngine implements the Medium and Hard bots. It owns a single
// transposition table across its whole lifetime, so later moves in a game
// benefit from earlier search work the way a real engine's hash table does.
type searchEngine struct {
	name       string
	difficulty Difficulty
	maxDepth   int
	timeLimit  time.Duration
	tt         *search.Table
	closed     bool
}

// SelectMove runs iterative-deepening negamax (internal/search) bounded by
// both maxDepth and timeLimit, whichever is hit first.
func (e *searchEngine) SelectMove(ctx context.Context, board *engine.Board) (engine.Move, error) {
	if e.closed {
		return engine.NoMove, errors.New("engine is closed")
	}

	moves := board.LegalMoves()
	if len(moves) == 0 {
		return engine.NoMove, errors.New("no legal moves available")
	}
	if len(moves) == 1 {
		return moves[0], nil
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeLimit)
	defer cancel()

	result, err := search.FindBestMove(ctx, board, search.Options{
		MaxDepth:  e.maxDepth,
		Evaluator: search.DefaultEvaluator,
		TT:        e.tt,
	})
	if err != nil {
		return engine.NoMove, err
	}
	return result.Move, nil
}

func (e *searchEngine) Name() string { return e.name }

func (e *searchEngine) Close() error {
	e.closed = true
	return nil
}

// Configure applies runtime tuning. Recognized keys: "search_depth" (int,
// 1-20) and "time_limit" (time.Duration).
func (e *searchEngine) Configure(options map[string]any) error {
	if v, ok := options["search_depth"]; ok {
		depth, ok := v.(int)
		if !ok || depth < 1 || depth > 20 {
			return fmt.Errorf("search_depth must be an int 1-20, got %v", v)
		}
		e.maxDepth = depth
	}
	if v, ok := options["time_limit"]; ok {
		d, ok := v.(time.Duration)
		if !ok || d <= 0 {
			return fmt.Errorf("time_limit must be a positive time.Duration, got %v", v)
		}
		e.timeLimit = d
	}
	return nil
}

func (e *searchEngine) Info() Info {
	return Info{
		Name:       e.name,
		Author:     "kestrelchess",
		Version:    "1.0",
		Type:       TypeInternal,
		Difficulty: e.difficulty,
		Features: map[string]bool{
			"alpha_beta":          true,
			"iterative_deepening": true,
			"transposition_table": true,
			"null_move_pruning":   true,
			"late_move_reduction": true,
			"quiescence_search":   true,
			"move_ordering":       true,
			"configurable":        true,
		},
	}
}
