package model

import "time"

// PipelineOption defines the interface for pipeline options.
type PipelineOption interface {
	// New initialises the pipeline option.
	New() error

	pipelineGraphOption
	pipelineFilterOption

	// Finish runs when the pipeline is closed.
	Finish() error
}

// pipelineGraphOption defines the hooks called while the pipeline rewires its members.
type pipelineGraphOption interface {
	// BeginRewire runs before the members are connected again, from scratch.
	BeginRewire(source *NodeInfo) error
	// PrepareFilter runs everytime a filter is connected to its upstream node.
	PrepareFilter(upstream, filter *NodeInfo) error
}

// pipelineFilterOption defines the hooks called while data flows through the pipeline.
type pipelineFilterOption interface {
	// OnStep runs everytime the pipeline moves to a new step value.
	OnStep(value float64) error
	// OnFilterOutput runs everytime a filter recomputed its output.
	OnFilterOutput(upstream, filter *NodeInfo, pullDuration, computeDuration time.Duration) error
}
