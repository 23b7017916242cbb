package bot

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/kestrelchess/kestrel/internal/engine"
)

// randomEngine implements the Easy bot: legal moves with a tactical bias,
// no search at all.
type randomEngine struct {
	name      string
	timeLimit time.Duration
	closed    bool
}

// SelectMove returns a move using weighted selection: captures and checks
// are preferred, but never guaranteed, over a plain random legal move.
func (e *randomEngine) SelectMove(ctx context.Context, board *engine.Board) (engine.Move, error) {
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

	select {
	case <-ctx.Done():
		return engine.NoMove, ctx.Err()
	default:
	}

	captures := filterCaptures(moves)
	checks := filterChecks(board, moves)

	if rand.Float64() < 0.7 && len(captures) > 0 {
		return captures[rand.Intn(len(captures))], nil
	}
	if rand.Float64() < 0.5 && len(checks) > 0 {
		return checks[rand.Intn(len(checks))], nil
	}
	return moves[rand.Intn(len(moves))], nil
}

// filterCaptures returns every move that captures a piece. Unlike the
// mailbox-era engine, a capture is already recorded in the move encoding
// itself, so this needs no board lookup.
func filterCaptures(moves []engine.Move) []engine.Move {
	var captures []engine.Move
	for _, m := range moves {
		if m.IsCapture() {
			captures = append(captures, m)
		}
	}
	return captures
}

// filterChecks returns every move that gives check, found by making and
// unmaking each candidate on the real board.
func filterChecks(board *engine.Board, moves []engine.Move) []engine.Move {
	var checks []engine.Move
	mover := board.SideToMove
	for _, m := range moves {
		board.Make(m)
		if board.InCheck(mover.Other()) {
			checks = append(checks, m)
		}
		board.Unmake(m)
	}
	return checks
}

func (e *randomEngine) Name() string { return e.name }

func (e *randomEngine) Close() error {
	e.closed = true
	return nil
}

func (e *randomEngine) Info() Info {
	return Info{
		Name:       e.name,
		Author:     "kestrelchess",
		Version:    "1.0",
		Type:       TypeInternal,
		Difficulty: Easy,
		Features: map[string]bool{
			"random_selection":   true,
			"tactical_awareness": true,
			"weighted_selection": true,
		},
	}
}
