package metrics

import "time"

// AgentConfig describes one contestant of an experiment.
type AgentConfig struct {
	ID              int           `yaml:"id"`
	Kind            string        `yaml:"kind"` // random, minimax, alphabeta, mcts, sampling
	Depth           int           `yaml:"depth,omitempty"`
	Duration        time.Duration `yaml:"duration,omitempty"` // Time ceiling per decision
	Reserved        time.Duration `yaml:"reserved,omitempty"`
	ExpandThreshold int           `yaml:"expand_threshold,omitempty"`
	Rollout         int           `yaml:"rollout,omitempty"` // Random playout cutoff, 0 disables
	Exploration     float64       `yaml:"exploration,omitempty"` // UCB1 constant, 0 keeps the default
	Evaluator       string        `yaml:"evaluator,omitempty"`
	Temperature     float64       `yaml:"temperature,omitempty"` // Sampling agent only
	Seed            uint64        `yaml:"seed,omitempty"`
}
