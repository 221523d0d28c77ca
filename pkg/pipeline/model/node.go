package model

import (
	"time"

	"github.com/askiada/go-postpipeline/pkg/dataset"
)

// OutputPort produces the data consumed by a downstream node.
type OutputPort interface {
	// Name identifies the port in logs and drawings.
	Name() string
	// Data returns the current output, computing it if needed.
	Data() (*dataset.Leaf, error)
}

// InputPort is the entry point of a node. It holds at most one upstream connection.
type InputPort interface {
	// SetInputConnection connects the port to upstream, replacing any previous connection.
	// A node may reject the connection.
	SetInputConnection(upstream OutputPort) error
	// RemoveAllInputConnections disconnects the port.
	RemoveAllInputConnections()
	// InputConnection returns the connected upstream port, or nil.
	InputConnection() OutputPort
}

// PostObject is anything exposing post-processing data: a pipeline or one of its members.
type PostObject interface {
	Name() string
	// ActiveOutput returns the port currently exposing the result of the object.
	// Objects with internal sub-stages may switch it at any time.
	ActiveOutput() OutputPort
}

// Node is a member of a pipeline chain. Nodes are owned by the caller: a pipeline
// only references them.
type Node interface {
	PostObject
	// ActiveInput returns the port feeding the currently active sub-stage.
	ActiveInput() InputPort
	// Touch marks the node output as outdated.
	Touch()
	// SetStep informs the node of the step value the pipeline moved to.
	SetStep(value float64)
	// Subscribe registers fn for the events reported by the node.
	Subscribe(fn func(NodeEvent) error) (unsubscribe func())
}

// EventKind identifies what a node reports.
type EventKind int

const (
	// EventModified reports that the node result changed because of its own settings.
	EventModified EventKind = iota
	// EventPipelineChanged reports that the node switched its active sub-stage,
	// so its active ports changed.
	EventPipelineChanged
	// EventComputed reports that the node recomputed its output.
	EventComputed
)

// NodeEvent is reported by a node to its subscribers.
type NodeEvent struct {
	Kind EventKind
	Node Node
	// PullDuration and ComputeDuration are set for EventComputed.
	PullDuration    time.Duration
	ComputeDuration time.Duration
}
