package measure

import "time"

// Measure collects the metrics of every node of a pipeline.
type Measure interface {
	// AddMetric returns the metric of the node called name, creating it if needed.
	AddMetric(name string) Metric
	// GetMetric returns the metric of the node called name, or nil.
	GetMetric(name string) Metric
	// AllMetrics returns the metrics, by node name.
	AllMetrics() map[string]Metric
	// AddStep records a step change of the pipeline.
	AddStep()
	// StepCount returns the number of recorded step changes.
	StepCount() int64
}

// Metric aggregates the recomputations of a node.
type Metric interface {
	// AddDuration records the time spent computing the node output.
	AddDuration(elapsed time.Duration)
	// AddTransportDuration records the time spent pulling the output of upstream.
	AddTransportDuration(upstream string, elapsed time.Duration)
	// AVGDuration returns the average computation time.
	AVGDuration() time.Duration
	// AVGTransportDuration returns the average pull time, by upstream node.
	AVGTransportDuration() map[string]*TransportInfo
	// AllTransports returns the total pull time, by upstream node.
	AllTransports() map[string]*TransportInfo
	// Count returns how many times the node was computed.
	Count() int64
}
