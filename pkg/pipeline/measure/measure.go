package measure

import (
	"sync"
)

type DefaultMeasure struct {
	mu     sync.Mutex
	steps  map[string]Metric
	labels []string
}

func NewDefaultMeasure() *DefaultMeasure {
	return &DefaultMeasure{
		steps: make(map[string]Metric),
	}
}

// AddMetric registers a fresh metric for label, replacing any previous one.
func (m *DefaultMeasure) AddMetric(label string, concurrent int) Metric {
	m.mu.Lock()
	defer m.mu.Unlock()

	if concurrent < 1 {
		concurrent = 1
	}

	mt := &DefaultMetric{
		mu:           &sync.Mutex{},
		allSnapshots: make(map[string]*SnapshotInfo),
		concurrent:   concurrent,
	}
	if _, ok := m.steps[label]; !ok {
		m.labels = append(m.labels, label)
	}
	m.steps[label] = mt

	return mt
}

// GetMetric returns nil when no metric was added for label.
func (m *DefaultMeasure) GetMetric(label string) Metric {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.steps[label]
}

func (m *DefaultMeasure) AllMetrics() map[string]Metric {
	m.mu.Lock()
	defer m.mu.Unlock()

	res := make(map[string]Metric, len(m.steps))
	for label, mt := range m.steps {
		res[label] = mt
	}

	return res
}

func (m *DefaultMeasure) Labels() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]string(nil), m.labels...)
}

var _ Measure = (*DefaultMeasure)(nil)
