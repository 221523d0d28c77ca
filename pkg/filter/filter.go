package filter

import (
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-postpipeline/pkg/dataset"
	"github.com/askiada/go-postpipeline/pkg/pipeline/model"
	"github.com/askiada/go-postpipeline/pkg/property"
)

// DefaultBranch is the branch of a filter created without branch.
const DefaultBranch = "default"

// Option configures a filter.
type Option func(f *Filter) error

// WithBranch adds a branch running stages in order. The first branch is active.
func WithBranch(name string, stages ...Stage) Option {
	return func(f *Filter) error {
		if _, ok := f.branch(name); ok {
			return errors.Wrapf(ErrDuplicateBranch, "%s", name)
		}

		b := &branch{name: name, stages: stages, dirty: true}
		b.input = &inputPort{filter: f}
		b.output = &outputPort{filter: f, branch: b}
		f.branches = append(f.branches, b)

		return nil
	}
}

// Filter is a pipeline member.
type Filter struct {
	name     string
	branches []*branch
	active   *branch
	step     float64
	events   property.Signal[model.NodeEvent]
}

type branch struct {
	name   string
	stages []Stage
	input  *inputPort
	output *outputPort
	dirty  bool
	cache  *dataset.Leaf
}

// New creates a filter called name.
func New(name string, opts ...Option) (*Filter, error) {
	f := &Filter{name: name}

	for _, opt := range opts {
		err := opt(f)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to apply option to filter %s", name)
		}
	}

	if len(f.branches) == 0 {
		err := WithBranch(DefaultBranch, Passthrough())(f)
		if err != nil {
			return nil, err
		}
	}

	f.active = f.branches[0]

	return f, nil
}

// Name returns the filter name.
func (f *Filter) Name() string { return f.name }

// ActiveInput implements model.Node.
func (f *Filter) ActiveInput() model.InputPort { return f.active.input }

// ActiveOutput implements model.Node.
func (f *Filter) ActiveOutput() model.OutputPort { return f.active.output }

// ActiveBranch returns the name of the active branch.
func (f *Filter) ActiveBranch() string { return f.active.name }

// Branches returns the branch names, in definition order.
func (f *Filter) Branches() []string {
	names := make([]string, len(f.branches))
	for i, b := range f.branches {
		names[i] = b.name
	}

	return names
}

// SetActiveBranch makes branch name the active one. Subscribers are told that the
// ports of the filter changed.
func (f *Filter) SetActiveBranch(name string) error {
	b, ok := f.branch(name)
	if !ok {
		return errors.Wrapf(ErrUnknownBranch, "%s", name)
	}

	if b == f.active {
		return nil
	}

	f.active = b
	b.dirty = true

	return f.events.Emit(model.NodeEvent{Kind: model.EventPipelineChanged, Node: f})
}

// SetStages replaces the stages of branch name.
func (f *Filter) SetStages(name string, stages ...Stage) error {
	b, ok := f.branch(name)
	if !ok {
		return errors.Wrapf(ErrUnknownBranch, "%s", name)
	}

	b.stages = stages

	return f.Modified()
}

// Modified marks the filter output as outdated and tells subscribers that its result
// changed.
func (f *Filter) Modified() error {
	f.Touch()

	return f.events.Emit(model.NodeEvent{Kind: model.EventModified, Node: f})
}

// Touch implements model.Node.
func (f *Filter) Touch() {
	for _, b := range f.branches {
		b.dirty = true
	}
}

// IsDirty reports whether the active output must be computed again.
func (f *Filter) IsDirty() bool { return f.active.dirty }

// SetStep implements model.Node.
func (f *Filter) SetStep(value float64) { f.step = value }

// Step returns the step value the filter was last informed of.
func (f *Filter) Step() float64 { return f.step }

// Subscribe implements model.Node.
func (f *Filter) Subscribe(fn func(model.NodeEvent) error) (unsubscribe func()) {
	return f.events.Connect(fn)
}

func (f *Filter) branch(name string) (*branch, bool) {
	for _, b := range f.branches {
		if b.name == name {
			return b, true
		}
	}

	return nil, false
}

func (f *Filter) compute(b *branch) (*dataset.Leaf, error) {
	if !b.dirty && b.cache != nil {
		return b.cache, nil
	}

	upstream := b.input.upstream
	if upstream == nil {
		return nil, errors.Wrapf(ErrNotConnected, "%s", b.output.Name())
	}

	start := time.Now()

	data, err := upstream.Data()
	if err != nil {
		return nil, errors.Wrapf(err, "unable to pull %s", upstream.Name())
	}

	pullDuration := time.Since(start)
	start = time.Now()

	for _, stage := range b.stages {
		data, err = stage.Apply(data)
		if err != nil {
			return nil, errors.Wrapf(err, "stage %s of %s", stage.Name(), b.output.Name())
		}
	}

	b.cache, b.dirty = data, false

	err = f.events.Emit(model.NodeEvent{
		Kind:            model.EventComputed,
		Node:            f,
		PullDuration:    pullDuration,
		ComputeDuration: time.Since(start),
	})
	if err != nil {
		return nil, err
	}

	return data, nil
}

type inputPort struct {
	filter   *Filter
	upstream model.OutputPort
}

func (in *inputPort) SetInputConnection(upstream model.OutputPort) error {
	if upstream == nil {
		return ErrNilConnection
	}

	if out, ok := upstream.(*outputPort); ok && out.filter == in.filter {
		return errors.Wrapf(ErrSelfConnection, "%s", in.filter.name)
	}

	in.upstream = upstream
	in.filter.Touch()

	return nil
}

func (in *inputPort) RemoveAllInputConnections() {
	in.upstream = nil
	in.filter.Touch()
}

func (in *inputPort) InputConnection() model.OutputPort { return in.upstream }

type outputPort struct {
	filter *Filter
	branch *branch
}

func (out *outputPort) Name() string { return out.filter.name + "/" + out.branch.name }

func (out *outputPort) Data() (*dataset.Leaf, error) { return out.filter.compute(out.branch) }

var (
	_ model.Node       = (*Filter)(nil)
	_ model.InputPort  = (*inputPort)(nil)
	_ model.OutputPort = (*outputPort)(nil)
)
