package searcher

import "time"

// SearchMetrics describes one ChooseMove call.
type SearchMetrics struct {
	StartTime time.Time
	Duration  time.Duration
	Nodes     int64 // recursive calls entered
	Leaves    int64 // positions scored at a cutoff
	Pruned    int64 // alpha-beta cutoffs taken
}

type MetricsCollector interface {
	Start()
	AddNode()
	AddLeaf()
	AddPrune()
	Complete() SearchMetrics
}

// The search is single-threaded depth-first recursion, so plain counters
// are enough.
type metricsCollector struct {
	startTime time.Time
	nodes     int64
	leaves    int64
	pruned    int64
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start() {
	*m = metricsCollector{startTime: time.Now()}
}

func (m *metricsCollector) AddNode() {
	m.nodes++
}

func (m *metricsCollector) AddLeaf() {
	m.leaves++
}

func (m *metricsCollector) AddPrune() {
	m.pruned++
}

func (m *metricsCollector) Complete() SearchMetrics {
	return SearchMetrics{
		StartTime: m.startTime,
		Duration:  time.Since(m.startTime),
		Nodes:     m.nodes,
		Leaves:    m.leaves,
		Pruned:    m.pruned,
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (noMetricsCollector) Start()                  {}
func (noMetricsCollector) AddNode()                {}
func (noMetricsCollector) AddLeaf()                {}
func (noMetricsCollector) AddPrune()               {}
func (noMetricsCollector) Complete() SearchMetrics { return SearchMetrics{} }
