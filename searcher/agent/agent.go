package agent

import (
	"othello/experiments/metrics"
	"othello/game"
)

type Agent interface {
	// Decide returns the action to play on board, or false when the agent
	// found none; the driver then passes or ends the game.
	Decide(board game.Board) (game.Action, bool)
}

// Measured is implemented by agents that run a search and can report its
// metrics after each decision.
type Measured interface {
	LastMetric() metrics.SearchMetric
}
