package experiments

import (
	"errors"
	"fmt"
	"os"
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
	"othello/searcher/agent"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownKind   = errors.New("unknown agent kind")
	ErrInvalidConfig = errors.New("invalid experiment config")
)

// Config describes an experiment: a roster of agents and the match-ups
// between them, each played Games times with alternating colours.
type Config struct {
	Name     string                `yaml:"name"`
	Games    int                   `yaml:"games"` // Per match up
	Seed     uint64                `yaml:"seed,omitempty"`
	Agents   []metrics.AgentConfig `yaml:"agents"`
	MatchUps [][]int               `yaml:"matchups"` // Pairs of agent IDs
}

// LoadConfig reads and validates a YAML experiment config.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(data)
}

func ParseConfig(data []byte) (Config, error) {
	var config Config
	err := yaml.Unmarshal(data, &config)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	err = config.Validate()
	if err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidConfig)
	}
	if c.Games < 1 {
		return fmt.Errorf("%w: games must be positive, got %d", ErrInvalidConfig, c.Games)
	}
	ids := make(map[int]bool, len(c.Agents))
	for _, a := range c.Agents {
		if ids[a.ID] {
			return fmt.Errorf("%w: duplicate agent id %d", ErrInvalidConfig, a.ID)
		}
		ids[a.ID] = true
		if _, err := newAgent(a, 0); err != nil {
			return fmt.Errorf("%w: agent %d: %w", ErrInvalidConfig, a.ID, err)
		}
	}
	if len(c.MatchUps) == 0 {
		return fmt.Errorf("%w: no match ups", ErrInvalidConfig)
	}
	for _, matchUp := range c.MatchUps {
		if len(matchUp) != 2 {
			return fmt.Errorf("%w: match up %v is not a pair", ErrInvalidConfig, matchUp)
		}
		for _, id := range matchUp {
			if !ids[id] {
				return fmt.Errorf("%w: match up %v references unknown agent %d", ErrInvalidConfig, matchUp, id)
			}
		}
	}
	return nil
}

func (c Config) agent(id int) metrics.AgentConfig {
	for _, a := range c.Agents {
		if a.ID == id {
			return a
		}
	}
	panic(fmt.Sprintf("agent %d not in roster", id))
}

// newAgent builds a fresh agent for one game. seed is used when the config
// leaves its own seed unset.
func newAgent(config metrics.AgentConfig, seed uint64) (agent.Agent, error) {
	if config.Seed != 0 {
		seed = config.Seed
	}

	switch config.Kind {
	case "random":
		return agent.NewRandomAgent(seed), nil
	case "minimax":
		return agent.NewSearchAgent(searcher.NewMinimax(searchOptions(config, seed)...)), nil
	case "alphabeta":
		return agent.NewSearchAgent(searcher.NewAlphaBeta(searchOptions(config, seed)...)), nil
	case "mcts":
		if config.ExpandThreshold < 0 {
			return nil, fmt.Errorf("negative expand threshold %d", config.ExpandThreshold)
		}
		return agent.NewSearchAgent(searcher.NewMCTS(searchOptions(config, seed)...)), nil
	case "sampling":
		if config.Temperature <= 0 {
			return nil, fmt.Errorf("sampling temperature must be positive, got %v", config.Temperature)
		}
		return agent.NewSamplingAgent(searcher.NewMCTS(searchOptions(config, seed)...), config.Temperature, seed), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, config.Kind)
	}
}

func searchOptions(config metrics.AgentConfig, seed uint64) []searcher.Option {
	options := []searcher.Option{searcher.WithSeed(seed), searcher.WithMetrics()}

	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	if config.Duration > 0 {
		options = append(options, searcher.WithTimeLimit(config.Duration))
	}
	if config.Reserved > 0 {
		options = append(options, searcher.WithReserved(config.Reserved))
	}
	if config.ExpandThreshold > 0 {
		options = append(options, searcher.WithExpandThreshold(config.ExpandThreshold))
	}
	if config.Rollout > 0 {
		options = append(options, searcher.WithRollout(config.Rollout))
	}
	if config.Exploration > 0 {
		options = append(options, searcher.WithExploration(config.Exploration))
	}
	if config.Evaluator != "" {
		options = append(options, searcher.WithEvaluator(game.EvaluatorByName(config.Evaluator)))
	}
	return options
}
