package metrics

import (
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates the search metrics of every move one agent made.
type Summary struct {
	Agent           int
	Moves           int
	MeanDuration    time.Duration
	StdDevDuration  time.Duration
	MeanNodes       float64
	MeanSimulations float64
	TimeoutRate     float64
}

// Summarize groups move records by agent, ordered by agent ID. Passes carry
// no search and are skipped.
func Summarize(records []MoveRecord) []Summary {
	byAgent := make(map[int][]MoveRecord)
	for _, record := range records {
		if record.Algorithm == "" {
			continue
		}
		byAgent[record.Agent] = append(byAgent[record.Agent], record)
	}

	agents := make([]int, 0, len(byAgent))
	for agent := range byAgent {
		agents = append(agents, agent)
	}
	sort.Ints(agents)

	summaries := make([]Summary, 0, len(agents))
	for _, agent := range agents {
		moves := byAgent[agent]
		durations := make([]float64, len(moves))
		nodes := make([]float64, len(moves))
		simulations := make([]float64, len(moves))
		timeouts := make([]float64, len(moves))
		for i, m := range moves {
			durations[i] = float64(m.Duration)
			nodes[i] = float64(m.Nodes)
			simulations[i] = float64(m.Simulations)
			if m.TimedOut {
				timeouts[i] = 1
			}
		}

		mean, std := stat.MeanStdDev(durations, nil)
		if len(moves) < 2 {
			std = 0
		}
		summaries = append(summaries, Summary{
			Agent:           agent,
			Moves:           len(moves),
			MeanDuration:    time.Duration(mean),
			StdDevDuration:  time.Duration(std),
			MeanNodes:       stat.Mean(nodes, nil),
			MeanSimulations: stat.Mean(simulations, nil),
			TimeoutRate:     stat.Mean(timeouts, nil),
		})
	}
	return summaries
}
