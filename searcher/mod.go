package searcher

import (
	"othello/experiments/metrics"
	"othello/game"
)

// Decision is the outcome of one search. Action is only meaningful when Found
// is set; a search finds nothing when the board has no legal placement.
type Decision struct {
	Action      game.Action
	Found       bool
	Score       game.Score // Minimax and alpha-beta value of Action
	Visits      int        // MCTS visit count of Action
	Simulations int        // MCTS simulations run
	Metric      metrics.SearchMetric
}

type Searcher interface {
	Name() string
	Search(board game.Board) Decision
}
