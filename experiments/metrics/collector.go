package metrics

import (
	"time"

	"mancala/game"
)

// AgentConfig identifies one agent configuration under test.
type AgentConfig struct {
	ID    int
	Kind  string // "minimax" or "random"
	Depth int    // search depth, minimax only
	Seed  uint64 // rng seed, random only
}

// SearchMetric describes a single move search.
type SearchMetric struct {
	Depth     int
	Nodes     int
	Leaves    int
	Terminals int
	Cutoffs   int
	Score     game.Score
	Duration  time.Duration
}

type MoveMetric struct {
	Step   int
	Player string
	SearchMetric
}

type GameMetric struct {
	Winner     string
	FinalScore game.Score
	TotalMoves int
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
}

// Collector accumulates counters over one search at a time. A
// collector belongs to a single searcher and is never shared between
// goroutines, so the counters are plain ints.
type Collector interface {
	Start(depth int)
	AddNode()
	AddLeaf()
	AddTerminal()
	AddCutoff()
	SetScore(score game.Score)
	Complete() SearchMetric
}

type collector struct {
	depth     int
	nodes     int
	leaves    int
	terminals int
	cutoffs   int
	score     game.Score
	startTime time.Time
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for the next search.
func (m *collector) Start(depth int) {
	*m = collector{depth: depth, startTime: time.Now()}
}

func (m *collector) AddNode() {
	m.nodes++
}

func (m *collector) AddLeaf() {
	m.leaves++
}

func (m *collector) AddTerminal() {
	m.terminals++
}

func (m *collector) AddCutoff() {
	m.cutoffs++
}

func (m *collector) SetScore(score game.Score) {
	m.score = score
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:     m.depth,
		Nodes:     m.nodes,
		Leaves:    m.leaves,
		Terminals: m.terminals,
		Cutoffs:   m.cutoffs,
		Score:     m.score,
		Duration:  time.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int)           {}
func (m *dummyCollector) AddNode()                  {}
func (m *dummyCollector) AddLeaf()                  {}
func (m *dummyCollector) AddTerminal()              {}
func (m *dummyCollector) AddCutoff()                {}
func (m *dummyCollector) SetScore(score game.Score) {}
func (m *dummyCollector) Complete() SearchMetric    { return SearchMetric{} }
