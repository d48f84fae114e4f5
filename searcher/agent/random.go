package agent

import (
	"othello/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent that plays a uniformly random legal action.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) Decide(board game.Board) (game.Action, bool) {
	actions := board.LegalActions()
	if len(actions) == 0 {
		return game.Action{}, false
	}
	return actions[a.rng.Intn(len(actions))], true
}
