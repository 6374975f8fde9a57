package metrics

import (
	"goban/game"
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Depth    int
	Duration time.Duration
	Nodes    int
	Cutoffs  int
	Value    float64
}

type MoveMetric struct {
	Step   int
	Player game.Color
	Move   game.Move
	SearchMetric
}

type GameMetric struct {
	Result     game.Result
	Score      float64 // heuristic score of the final position
	AreaScore  float64
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

// AgentConfig describes one contestant in an experiment. Depth 0 means a
// random agent.
type AgentConfig struct {
	ID        int
	Depth     int
	TieBreak  float64
	Local     bool
	Area      bool // evaluate by area score instead of the heuristic
	NoPruning bool
}

type Collector interface {
	Start(depth int)
	AddNode()
	AddCutoff()
	Complete(value float64) SearchMetric
}

type collector struct {
	depth     int
	startTime time.Time
	nodes     atomic.Int64
	cutoffs   atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int) {
	m.startTime = time.Now()
	m.depth = depth
	m.nodes.Store(0)
	m.cutoffs.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete(value float64) SearchMetric {
	return SearchMetric{
		Depth:    m.depth,
		Duration: time.Since(m.startTime),
		Nodes:    int(m.nodes.Load()),
		Cutoffs:  int(m.cutoffs.Load()),
		Value:    value,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int)                     {}
func (m *dummyCollector) AddNode()                            {}
func (m *dummyCollector) AddCutoff()                          {}
func (m *dummyCollector) Complete(value float64) SearchMetric { return SearchMetric{} }
