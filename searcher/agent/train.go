package agent

import (
	"math"
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"

	"golang.org/x/exp/rand"
)

type samplingAgent struct {
	mcts        *searcher.MCTS
	temperature float64
	rng         *rand.Rand
	last        metrics.SearchMetric
}

// NewSamplingAgent returns an agent that samples its move from the MCTS root
// visit counts sharpened by temperature, for varied self-play.
func NewSamplingAgent(mcts *searcher.MCTS, temperature float64, seed uint64) Agent {
	if temperature <= 0 {
		panic("temperature must be positive")
	}
	return &samplingAgent{
		mcts:        mcts,
		temperature: temperature,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

func (a *samplingAgent) Decide(board game.Board) (game.Action, bool) {
	policy, decision := a.mcts.Policy(board)
	a.last = decision.Metric
	if !decision.Found {
		return game.Action{}, false
	}
	probs := adjustTemperature(policy, a.temperature)
	return sample(policy, probs, a.rng.Float64()), true
}

func (a *samplingAgent) LastMetric() metrics.SearchMetric {
	return a.last
}

// adjustTemperature scales visit counts by the largest one before raising
// them to 1/temperature, so cold temperatures cannot overflow.
func adjustTemperature(policy []searcher.Visit, temperature float64) []float64 {
	most := 0
	for _, visit := range policy {
		most = max(most, visit.Visits)
	}
	adjusted := make([]float64, len(policy))
	if most == 0 {
		return adjusted
	}

	// Compute temperature-adjusted move probabilities
	exponent := 1.0 / temperature
	sum := 0.0
	for i, visit := range policy {
		prob := math.Pow(float64(visit.Visits)/float64(most), exponent)
		sum += prob
		adjusted[i] = prob
	}
	// Normalize
	for i := range adjusted {
		adjusted[i] /= sum
	}
	return adjusted
}

func sample(policy []searcher.Visit, probs []float64, sampled float64) game.Action {
	cumulative := 0.0
	var last game.Action
	for i, prob := range probs {
		if prob == 0 {
			continue
		}
		last = policy[i].Action
		cumulative += prob
		if sampled < cumulative {
			return last
		}
	}
	return last // Fallback in case of rounding errors
}
