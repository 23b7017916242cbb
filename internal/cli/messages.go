package cli

import "github.com/kestrelchess/kestrel/internal/engine"

// botMoveMsg carries the bot's chosen move back to the Update loop once its
// SelectMove call returns.
type botMoveMsg struct {
	move engine.Move
	err  error
}

// tickMsg is a tick message type. Nothing in this package sends it and
// Update does not handle it; the "thinking" line in View is static text.
type tickMsg struct{}
