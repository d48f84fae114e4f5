package searcher

import (
	"othello/game"
	"othello/meta"

	"github.com/rs/zerolog/log"
)

// AlphaBeta is Minimax with alpha-beta pruning. It returns the same action and
// score as Minimax of the same depth when the deadline does not interfere.
type AlphaBeta struct {
	config
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	return &AlphaBeta{config: newConfig(options)}
}

func (a *AlphaBeta) Name() string {
	return "alphabeta"
}

func (a *AlphaBeta) Search(board game.Board) Decision {
	deadline := startClock(a.timeLimit, a.reserved)
	a.metrics.Start(a.Name())

	best := Decision{Score: -meta.INF}
	alpha, beta := -meta.INF, meta.INF
	for _, action := range board.LegalActions() {
		score := -a.score(board.MustPlay(action), a.depth, -beta, -alpha, deadline)
		if !best.Found || score > alpha {
			alpha = score
			best.Score = score
			best.Action = action
			best.Found = true
		}
	}

	best.Metric = a.metrics.Complete()
	log.Debug().Msgf("alphabeta chose %s with score %d at ply %d", best.Action, best.Score, board.Ply())
	return best
}

// score is exact when the node value lies strictly inside (alpha, beta).
// Otherwise it is only a bound: at most alpha when the value is at most alpha,
// at least beta on a cutoff.
func (a *AlphaBeta) score(board game.Board, depth int, alpha, beta game.Score, deadline clock) game.Score {
	a.metrics.AddNode()
	if deadline.expired() {
		a.metrics.SetTimedOut()
		return a.evaluator.Evaluate(board)
	}

	status := board.Status()
	if status == game.Finished || depth == 0 {
		return a.evaluator.Evaluate(board)
	}
	if status == game.Pass {
		return -a.score(board.MustPass(), depth, -beta, -alpha, deadline)
	}

	for _, action := range board.LegalActions() {
		score := -a.score(board.MustPlay(action), depth-1, -beta, -alpha, deadline)
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			return alpha
		}
	}
	return alpha
}
