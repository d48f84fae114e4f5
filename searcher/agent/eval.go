package agent

import (
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
)

type searchAgent struct {
	searcher searcher.Searcher
	last     metrics.SearchMetric
}

// NewSearchAgent returns an agent that plays the decision of s.
func NewSearchAgent(s searcher.Searcher) Agent {
	return &searchAgent{searcher: s}
}

func (a *searchAgent) Decide(board game.Board) (game.Action, bool) {
	decision := a.searcher.Search(board)
	a.last = decision.Metric
	return decision.Action, decision.Found
}

func (a *searchAgent) LastMetric() metrics.SearchMetric {
	return a.last
}
