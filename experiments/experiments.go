package experiments

import (
	"fmt"
	"othello/engine"
	"othello/experiments/metrics"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	NumGames   = 10 // Per match up
	TimeBudget = 50 * time.Millisecond
)

// DefaultConfig pits every searcher against a random baseline and the two
// strongest against each other.
func DefaultConfig() Config {
	return Config{
		Name:  "tournament",
		Games: NumGames,
		Agents: []metrics.AgentConfig{
			{ID: 0, Kind: "random"},
			{ID: 1, Kind: "minimax", Depth: 2, Duration: TimeBudget},
			{ID: 2, Kind: "alphabeta", Depth: 4, Duration: TimeBudget},
			{ID: 3, Kind: "mcts", Duration: TimeBudget},
			{ID: 4, Kind: "mcts", Duration: TimeBudget, Rollout: 60}, // Full random playouts
		},
		MatchUps: [][]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}, {2, 3}, {3, 4}},
	}
}

// Result locates the files an experiment wrote and its per-agent summaries.
type Result struct {
	Dir       string
	Summaries []metrics.Summary
}

// Run plays every match up of config and writes the records under root.
// The two agents of a match up swap colours after every game.
func Run(config Config, root string) (Result, error) {
	err := config.Validate()
	if err != nil {
		return Result{}, err
	}

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", config.Name)

	for mi, matchUp := range config.MatchUps {
		config1 := config.agent(matchUp[0])
		config2 := config.agent(matchUp[1])

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(config.MatchUps), config1, config2)

		for i := 0; i < config.Games; i++ {
			black, white := config1, config2
			if i%2 == 1 {
				black, white = white, black
			}
			count++

			log.Info().Msgf("starting matchup %d of %d game %d of %d with black=%d white=%d...", mi+1, len(config.MatchUps), i+1, config.Games, black.ID, white.ID)

			gameMetric, moveMetrics, err := runGame(black, white, config.Seed+uint64(2*count))
			if err != nil {
				return Result{}, fmt.Errorf("game %d: %w", count, err)
			}
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Black:      black.ID,
				White:      white.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				id := black.ID
				if mm.Player == "White" {
					id = white.ID
				}
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					Agent:      id,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s (%d-%d)", mi+1, len(config.MatchUps), i+1, gameMetric.Winner, gameMetric.BlackDisks, gameMetric.WhiteDisks)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(config.MatchUps))
	}

	log.Info().Msgf("completed %s experiment", config.Name)

	summaries := metrics.Summarize(moveRecords)
	for _, s := range summaries {
		log.Info().Msgf("agent %d: %d moves, mean %v (sd %v), %.1f nodes, %.1f simulations, %.1f%% timed out",
			s.Agent, s.Moves, s.MeanDuration, s.StdDevDuration, s.MeanNodes, s.MeanSimulations, 100*s.TimeoutRate)
	}

	dir, err := store(config, gameRecords, moveRecords, summaries, root)
	if err != nil {
		return Result{}, err
	}
	return Result{Dir: dir, Summaries: summaries}, nil
}

func store(config Config, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord, summaries []metrics.Summary, root string) (string, error) {
	writer, err := metrics.NewWriter(root, config.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(config.Agents)
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	err = writer.WriteSummaries(summaries)
	if err != nil {
		return "", fmt.Errorf("failed to write summaries: %w", err)
	}
	log.Info().Msgf("stored summaries in %s", writer.Dir())

	return writer.Dir(), nil
}

// runGame executes a single game between two fresh agents.
func runGame(black, white metrics.AgentConfig, seed uint64) (metrics.GameMetric, []metrics.MoveMetric, error) {
	blackAgent, err := newAgent(black, seed)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	whiteAgent, err := newAgent(white, seed+1)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	e := engine.LocalEngine(blackAgent, whiteAgent)
	_, gameMetric, moveMetrics, err := e.Run()
	return gameMetric, moveMetrics, err
}
