package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Mode        string
	Strategy    string
	Cutoff      int
	Duration    time.Duration
	Expanded    int // Inner nodes whose children were generated
	Evaluated   int // Leaves scored by the utility policy
	Pruned      int // Alpha-beta cutoffs
	IsTreeReset bool
}

type MoveMetric struct {
	Step   int
	Player int // game.AgentID
	Action string
	Value  float64 // Mover's coordinate of the backed-up value
	SearchMetric
}

type GameMetric struct {
	StartingPlayer int // game.AgentID
	Saved          [2]int
	TotalSaved     int
	Elapsed        float64
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(mode, strategy string, cutoff int)
	SetTreeReset(value bool)
	AddExpansion()
	AddEvaluation()
	AddPrune()
	Complete() SearchMetric
}

type collector struct {
	mode        string
	strategy    string
	cutoff      int
	startTime   time.Time
	expanded    atomic.Int32
	evaluated   atomic.Int32
	pruned      atomic.Int32
	isTreeReset atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) SetTreeReset(value bool) {
	m.isTreeReset.Store(value)
}

// Start resets the counters for a new search.
func (m *collector) Start(mode, strategy string, cutoff int) {
	m.startTime = time.Now()
	m.mode = mode
	m.strategy = strategy
	m.cutoff = cutoff
	m.expanded.Store(0)
	m.evaluated.Store(0)
	m.pruned.Store(0)
}

func (m *collector) AddExpansion() {
	m.expanded.Add(1)
}

func (m *collector) AddEvaluation() {
	m.evaluated.Add(1)
}

func (m *collector) AddPrune() {
	m.pruned.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Mode:        m.mode,
		Strategy:    m.strategy,
		Cutoff:      m.cutoff,
		Duration:    time.Since(m.startTime),
		Expanded:    int(m.expanded.Load()),
		Evaluated:   int(m.evaluated.Load()),
		Pruned:      int(m.pruned.Load()),
		IsTreeReset: m.isTreeReset.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(mode, strategy string, cutoff int) {}
func (m *dummyCollector) SetTreeReset(value bool)                 {}
func (m *dummyCollector) AddExpansion()                           {}
func (m *dummyCollector) AddEvaluation()                          {}
func (m *dummyCollector) AddPrune()                               {}
func (m *dummyCollector) Complete() SearchMetric                  { return SearchMetric{} }
