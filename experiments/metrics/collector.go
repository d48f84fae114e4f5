package metrics

import (
	"time"
)

type SearchMetric struct {
	Algorithm   string
	Duration    time.Duration
	Nodes       int
	Simulations int
	Rollouts    int
	TimedOut    bool
}

type MoveMetric struct {
	Ply    int
	Player string // Color name
	Action string // Coordinate, or "pass"
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // Color name, "Draw" for a tie
	BlackDisks     int
	WhiteDisks     int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Passes         int
}

// Collector records statistics of one search. Searches are single-threaded,
// so implementations need no synchronisation.
type Collector interface {
	Start(algorithm string)
	AddNode()
	AddSimulation()
	AddRollout()
	SetTimedOut()
	Complete() SearchMetric
}

type collector struct {
	algorithm   string
	startTime   time.Time
	nodes       int
	simulations int
	rollouts    int
	timedOut    bool
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters, so one collector can serve successive searches.
func (m *collector) Start(algorithm string) {
	*m = collector{algorithm: algorithm, startTime: time.Now()}
}

func (m *collector) AddNode() {
	m.nodes++
}

func (m *collector) AddSimulation() {
	m.simulations++
}

func (m *collector) AddRollout() {
	m.rollouts++
}

func (m *collector) SetTimedOut() {
	m.timedOut = true
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Algorithm:   m.algorithm,
		Duration:    time.Since(m.startTime),
		Nodes:       m.nodes,
		Simulations: m.simulations,
		Rollouts:    m.rollouts,
		TimedOut:    m.timedOut,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(algorithm string) {}
func (m *dummyCollector) AddNode()               {}
func (m *dummyCollector) AddSimulation()         {}
func (m *dummyCollector) AddRollout()            {}
func (m *dummyCollector) SetTimedOut()           {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
