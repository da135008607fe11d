package measure

import "time"

// Measure collects one Metric per pipeline step, keyed by the step label.
type Measure interface {
	AddMetric(label string, concurrent int) Metric
	GetMetric(label string) Metric
	AllMetrics() map[string]Metric
	// Labels returns the step labels in the order their metric was added.
	Labels() []string
}

// Metric collects the timings of a single step.
type Metric interface {
	AddDuration(elapsed time.Duration)
	AddSnapshotDuration(attribute string, elapsed time.Duration)
	AVGDuration() time.Duration
	Rows() int64
	AVGSnapshotDuration() map[string]time.Duration
	SetTotalDuration(endDuration time.Duration)
	GetTotalDuration() time.Duration
	AllSnapshots() map[string]*SnapshotInfo
}
