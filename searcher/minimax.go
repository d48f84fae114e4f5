package searcher

import (
	"othello/game"
	"othello/meta"

	"github.com/rs/zerolog/log"
)

// Minimax is a fixed-depth negamax search. Every node's score is from its own
// mover's perspective.
type Minimax struct {
	config
}

func NewMinimax(options ...Option) *Minimax {
	return &Minimax{config: newConfig(options)}
}

func (m *Minimax) Name() string {
	return "minimax"
}

// Search scores every legal action with a search of the configured depth below
// it and keeps the first action with the strictly highest score.
func (m *Minimax) Search(board game.Board) Decision {
	deadline := startClock(m.timeLimit, m.reserved)
	m.metrics.Start(m.Name())

	best := Decision{Score: -meta.INF}
	for _, action := range board.LegalActions() {
		score := -m.score(board.MustPlay(action), m.depth, deadline)
		if !best.Found || score > best.Score {
			best.Score = score
			best.Action = action
			best.Found = true
		}
	}

	best.Metric = m.metrics.Complete()
	log.Debug().Msgf("minimax chose %s with score %d at ply %d", best.Action, best.Score, board.Ply())
	return best
}

func (m *Minimax) score(board game.Board, depth int, deadline clock) game.Score {
	m.metrics.AddNode()
	if deadline.expired() {
		m.metrics.SetTimedOut()
		return m.evaluator.Evaluate(board)
	}

	status := board.Status()
	if status == game.Finished || depth == 0 {
		return m.evaluator.Evaluate(board)
	}
	// A forced pass does not consume depth.
	if status == game.Pass {
		return -m.score(board.MustPass(), depth, deadline)
	}

	best := -meta.INF
	for _, action := range board.LegalActions() {
		score := -m.score(board.MustPlay(action), depth-1, deadline)
		if score > best {
			best = score
		}
	}
	return best
}
