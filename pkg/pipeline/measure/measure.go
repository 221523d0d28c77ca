package measure

import (
	"sync"
)

// DefaultMeasure keeps metrics in memory.
type DefaultMeasure struct {
	mu    sync.Mutex
	Nodes map[string]Metric
	steps int64
}

// NewDefaultMeasure creates an empty measure.
func NewDefaultMeasure() *DefaultMeasure {
	return &DefaultMeasure{
		Nodes: make(map[string]Metric),
	}
}

func (m *DefaultMeasure) AddMetric(name string) Metric {
	m.mu.Lock()
	defer m.mu.Unlock()

	if mt, ok := m.Nodes[name]; ok {
		return mt
	}

	mt := &DefaultMetric{
		allTransports: make(map[string]*TransportInfo),
	}
	m.Nodes[name] = mt

	return mt
}

func (m *DefaultMeasure) GetMetric(name string) Metric {
	m.mu.Lock()
	defer m.mu.Unlock()

	mt, ok := m.Nodes[name]
	if !ok {
		return nil
	}

	return mt
}

func (m *DefaultMeasure) AllMetrics() map[string]Metric {
	m.mu.Lock()
	defer m.mu.Unlock()

	all := make(map[string]Metric, len(m.Nodes))
	for name, mt := range m.Nodes {
		all[name] = mt
	}

	return all
}

func (m *DefaultMeasure) AddStep() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.steps++
}

func (m *DefaultMeasure) StepCount() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.steps
}

var _ Measure = (*DefaultMeasure)(nil)
