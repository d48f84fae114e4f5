package searcher

import (
	"othello/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// MCTS is a UCB1 Monte Carlo tree search that runs until the soft deadline.
// A fresh tree is built for every decision.
type MCTS struct {
	config
	rng *rand.Rand
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{config: newConfig(options)}
	if m.expandThreshold < 1 {
		panic("expand threshold must be at least 1")
	}
	m.rng = rand.New(rand.NewSource(m.seed))
	return m
}

func (m *MCTS) Name() string {
	return "mcts"
}

// Search picks the root action whose child was visited most often. At least
// one simulation runs, so a board with a legal placement always yields one.
func (m *MCTS) Search(board game.Board) Decision {
	_, decision := m.Policy(board)
	log.Debug().Msgf("mcts chose %s with %d of %d visits at ply %d", decision.Action, decision.Visits, decision.Simulations, board.Ply())
	return decision
}

// Visit is the root visit count of one legal action.
type Visit struct {
	Action game.Action
	Visits int
}

// Policy searches like Search and also reports the visit count of every legal
// action in generation order.
func (m *MCTS) Policy(board game.Board) ([]Visit, Decision) {
	m.metrics.Start(m.Name())

	actions := board.LegalActions()
	if len(actions) == 0 {
		return nil, Decision{Metric: m.metrics.Complete()}
	}

	root, simulations := m.buildTree(board)
	policy := make([]Visit, len(actions))
	for i, action := range actions {
		policy[i] = Visit{Action: action, Visits: root.children[i].visits}
	}
	decision := m.decide(root, actions, simulations)
	return policy, decision
}

func (m *MCTS) decide(root *node, actions []game.Action, simulations int) Decision {
	decision := Decision{Simulations: simulations}
	if best := root.mostVisited(); best >= 0 {
		decision.Action = actions[best]
		decision.Visits = root.children[best].visits
		decision.Found = true
	}
	decision.Metric = m.metrics.Complete()
	return decision
}

// buildTree expands the root eagerly and then simulates until the deadline.
func (m *MCTS) buildTree(board game.Board) (*node, int) {
	deadline := startClock(m.timeLimit, m.reserved)
	root := newNode(board)
	root.expand(m)

	simulations := 0
	for {
		root.evaluate(m)
		simulations++
		m.metrics.AddSimulation()
		if deadline.expired() {
			break
		}
	}
	return root, simulations
}

// sample scores a leaf for its mover. Without a rollout cutoff this is the
// outcome of the leaf itself, a draw while unfinished.
func (m *MCTS) sample(board game.Board) float64 {
	if m.rollout == 0 {
		return outcomeReward(board.WinningStatus())
	}
	m.metrics.AddRollout()
	return rollout(board, m.rollout, m.rng)
}

// rollout plays up to cutoff uniformly random plies, passing when forced, and
// scores the final position for the mover of the starting one.
func rollout(board game.Board, cutoff int, rng *rand.Rand) float64 {
	mover := board.Turn()
	for depth := 0; depth < cutoff; depth++ {
		status := board.Status()
		if status == game.Finished {
			break
		}
		if status == game.Pass {
			board = board.MustPass()
			continue
		}
		actions := board.LegalActions()
		board = board.MustPlay(actions[rng.Intn(len(actions))])
	}

	value := outcomeReward(board.WinningStatus())
	if board.Turn() != mover {
		value = 1 - value
	}
	return value
}
