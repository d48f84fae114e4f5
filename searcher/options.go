package searcher

import (
	"othello/experiments/metrics"
	"othello/game"
	"othello/meta"
	"time"
)

type Option func(c *config)

// config is shared by every searcher; each one reads the fields it needs.
type config struct {
	timeLimit       time.Duration
	reserved        time.Duration
	depth           int
	evaluator       game.Evaluator
	expandThreshold int
	exploration     float64
	rollout         int
	seed            uint64
	metrics         metrics.Collector
}

func defaultConfig() config {
	return config{
		timeLimit:       meta.TIME_LIMIT,
		depth:           meta.DEPTH,
		evaluator:       game.CellEvaluator,
		expandThreshold: meta.EXPAND_THRESHOLD,
		exploration:     meta.EXPLORATION,
		seed:            uint64(time.Now().UnixNano()),
		metrics:         metrics.NewDummyCollector(),
	}
}

func newConfig(options []Option) config {
	c := defaultConfig()
	for _, option := range options {
		option(&c)
	}
	return c
}

// WithTimeLimit sets the soft ceiling on the wall-clock time of one decision.
func WithTimeLimit(limit time.Duration) Option {
	return func(c *config) {
		if limit > 0 {
			c.timeLimit = limit
		}
	}
}

// WithReserved sets time the caller needs left over after the decision; it is
// added to the elapsed time before comparing against the ceiling.
func WithReserved(reserved time.Duration) Option {
	return func(c *config) {
		if reserved >= 0 {
			c.reserved = reserved
		}
	}
}

func WithDepth(depth int) Option {
	return func(c *config) {
		if depth >= 0 {
			c.depth = depth
		}
	}
}

func WithEvaluator(evaluator game.Evaluator) Option {
	return func(c *config) {
		if evaluator != nil {
			c.evaluator = evaluator
		}
	}
}

func WithExpandThreshold(threshold int) Option {
	return func(c *config) {
		c.expandThreshold = threshold
	}
}

func WithExploration(exploration float64) Option {
	return func(c *config) {
		if exploration >= 0 {
			c.exploration = exploration
		}
	}
}

// WithRollout makes MCTS leaves play up to cutoff random plies before scoring.
// A cutoff of 0 scores the leaf as it stands.
func WithRollout(cutoff int) Option {
	return func(c *config) {
		if cutoff >= 0 {
			c.rollout = cutoff
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
	}
}

func WithMetrics() Option {
	return func(c *config) {
		c.metrics = metrics.NewCollector()
	}
}

func WithCollector(collector metrics.Collector) Option {
	return func(c *config) {
		if collector != nil {
			c.metrics = collector
		}
	}
}
