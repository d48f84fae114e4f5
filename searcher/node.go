package searcher

import (
	"math"
	"othello/game"
	"othello/utils"
)

// node is one position of an MCTS tree. rewards and visits are from the
// perspective of the node's own mover. A parent exclusively owns its
// children; the whole tree is dropped when the search returns.
type node struct {
	board    game.Board
	children []*node
	rewards  float64
	visits   int
}

func newNode(board game.Board) *node {
	return &node{board: board}
}

// expand materialises one child per legal action in generation order, or a
// single pass child when the mover has to pass.
func (n *node) expand(m *MCTS) {
	if n.board.Status() == game.Pass {
		n.children = []*node{newNode(n.board.MustPass())}
		m.metrics.AddNode()
		return
	}

	actions := n.board.LegalActions()
	n.children = make([]*node, 0, len(actions))
	for _, action := range actions {
		n.children = append(n.children, newNode(n.board.MustPlay(action)))
		m.metrics.AddNode()
	}
}

// evaluate runs one simulation through the subtree and returns the reward
// for this node's mover.
func (n *node) evaluate(m *MCTS) float64 {
	if status := n.board.WinningStatus(); status != game.NotFinished {
		value := outcomeReward(status)
		n.record(value)
		return value
	}

	if len(n.children) == 0 {
		value := m.sample(n.board)
		n.record(value)
		if n.visits == m.expandThreshold {
			n.expand(m)
		}
		return value
	}

	child := n.children[n.pickChild(m.exploration)]
	value := 1 - child.evaluate(m)
	n.record(value)
	return value
}

func (n *node) record(value float64) {
	n.rewards += value
	n.visits++
}

// pickChild returns the first unvisited child, or else the child with the
// highest UCB1 value.
func (n *node) pickChild(c float64) int {
	total := 0
	for i, child := range n.children {
		if child.visits == 0 {
			return i
		}
		total += child.visits
	}

	policy := newUCB1(c, float64(total))
	scores := make([]float64, len(n.children))
	for i, child := range n.children {
		scores[i] = policy.evaluate(child.rewards, float64(child.visits))
	}
	return utils.FirstMax(scores, math.Inf(-1))
}

// mostVisited returns the index of the first child with the strictly highest
// visit count, or -1 if no child has been visited.
func (n *node) mostVisited() int {
	visits := make([]int, len(n.children))
	for i, child := range n.children {
		visits[i] = child.visits
	}
	return utils.FirstMax(visits, 0)
}

func outcomeReward(status game.WinningStatus) float64 {
	switch status {
	case game.Win:
		return WIN
	case game.Lose:
		return LOSS
	default:
		return DRAW
	}
}
