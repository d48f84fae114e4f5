package experiments

import (
	"fmt"
	"othello/experiments/metrics"
	"sort"
	"time"
)

var presets = map[string]func() Config{
	"tournament": DefaultConfig,
	"throughput": ThroughputConfig,
	"rollout":    RolloutConfig,
}

// Preset returns a built-in experiment by name.
func Preset(name string) (Config, error) {
	preset, ok := presets[name]
	if !ok {
		return Config{}, fmt.Errorf("%w: no preset %q (have %v)", ErrInvalidConfig, name, PresetNames())
	}
	return preset(), nil
}

func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThroughputConfig measures how many MCTS simulations fit in growing time
// budgets. Each match up uses the same config for both players for the same
// playing strength and similar game length.
func ThroughputConfig() Config {
	durations := []time.Duration{5 * time.Millisecond, 10 * time.Millisecond, 50 * time.Millisecond, 150 * time.Millisecond}
	config := Config{Name: "throughput", Games: 2}
	for i, duration := range durations {
		config.Agents = append(config.Agents, metrics.AgentConfig{ID: i + 1, Kind: "mcts", Duration: duration})
		config.MatchUps = append(config.MatchUps, []int{i + 1, i + 1})
	}
	return config
}

// RolloutConfig pairs the leaf-outcome MCTS baseline against agents that play
// random rollouts of increasing length.
func RolloutConfig() Config {
	baseline := metrics.AgentConfig{ID: 0, Kind: "mcts", Duration: TimeBudget}
	config := Config{Name: "rollout", Games: NumGames, Agents: []metrics.AgentConfig{baseline}}
	for i, cutoff := range []int{4, 10, 20, 60} {
		id := i + 1
		config.Agents = append(config.Agents, metrics.AgentConfig{ID: id, Kind: "mcts", Duration: baseline.Duration, Rollout: cutoff})
		config.MatchUps = append(config.MatchUps, []int{baseline.ID, id})
	}
	return config
}
