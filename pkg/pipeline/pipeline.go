package pipeline

import (
	"io"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/askiada/go-postpipeline/pkg/dataset"
	"github.com/askiada/go-postpipeline/pkg/pipeline/model"
	"github.com/askiada/go-postpipeline/pkg/property"
	"github.com/askiada/go-postpipeline/pkg/result"
	"github.com/askiada/go-postpipeline/pkg/units"
)

// Pipeline feeds a time-stepped dataset through a chain of members.
type Pipeline struct {
	name      string
	container *property.Container
	changed   *property.Signal[property.Change]

	data    *property.Value[dataset.Dataset]
	step    *property.Enumeration
	mode    *property.Value[model.Mode]
	members *property.List[model.Node]

	source     *Source
	catalog    Catalog
	graph      *graphManager
	propagator *propagator

	unsubscribe []func()
	disconnect  func()

	exporter        result.Exporter
	readers         map[string]Reader
	hooks           []model.PipelineOption
	logger          *slog.Logger
	loadConcurrency int
	initialMode     model.Mode
}

// New creates an empty pipeline called name.
func New(name string, opts ...Option) (*Pipeline, error) {
	p := &Pipeline{
		name:            name,
		exporter:        result.DefaultExporter{},
		readers:         make(map[string]Reader),
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		loadConcurrency: 1,
		initialMode:     model.Serial,
	}

	for _, opt := range opts {
		opt(p)
	}

	for _, hook := range p.hooks {
		err := hook.New()
		if err != nil {
			return nil, errors.Wrap(err, "unable to apply pipeline option")
		}
	}

	p.container = property.NewContainer(name, p.changed)
	p.data = property.NewValue[dataset.Dataset](p.container, DataProperty, nil)
	p.step = property.NewEnumeration(p.container, StepProperty, nil, property.NoSelection)
	p.mode = property.NewValue(p.container, ModeProperty, p.initialMode)
	p.members = property.NewList[model.Node](p.container, MembersProperty)

	p.source = NewSource(name + "/source")
	p.graph = newGraphManager(p.source, p.hooks, p.logger)
	p.propagator = &propagator{p: p}
	p.disconnect = p.container.Changed().Connect(p.propagator.onChanged)

	return p, nil
}

// Name returns the pipeline name.
func (p *Pipeline) Name() string { return p.name }

// Properties returns the observable properties of the pipeline.
func (p *Pipeline) Properties() *property.Container { return p.container }

// Source returns the head of the pipeline.
func (p *Pipeline) Source() *Source { return p.source }

// ActiveOutput returns the output of the last member, or the source output when
// the pipeline has no member.
func (p *Pipeline) ActiveOutput() model.OutputPort {
	last, ok := p.members.Last()
	if !ok {
		return p.source
	}

	return last.ActiveOutput()
}

// SetDataset replaces the data of the pipeline.
func (p *Pipeline) SetDataset(d dataset.Dataset) error {
	return p.data.Set(d)
}

// Dataset returns the data of the pipeline, for every step.
func (p *Pipeline) Dataset() dataset.Dataset { return p.data.Get() }

// CurrentDataset returns the data of the selected step, or nil.
func (p *Pipeline) CurrentDataset() *dataset.Leaf { return p.source.Dataset() }

// Scale multiplies the mesh of every step by s.
func (p *Pipeline) Scale(s float64) error {
	switch d := p.data.Get().(type) {
	case *dataset.Leaf:
		return p.SetDataset(d.Scale(s))
	case *dataset.Collection:
		return p.SetDataset(d.Scale(s))
	}

	return nil
}

// Mode returns how members are fed.
func (p *Pipeline) Mode() model.Mode { return p.mode.Get() }

// SetMode changes how members are fed and rewires them.
func (p *Pipeline) SetMode(mode model.Mode) error {
	return p.mode.Set(mode)
}

// MustExecute reports whether the mode changed since the last Recompute.
func (p *Pipeline) MustExecute() bool { return p.mode.IsTouched() }

// Recompute pulls the output of the pipeline and clears the changed properties.
func (p *Pipeline) Recompute() (*dataset.Leaf, error) {
	data, err := p.ActiveOutput().Data()
	if err != nil {
		return nil, errors.Wrap(err, "unable to compute pipeline output")
	}

	p.container.PurgeTouched()

	return data, nil
}

// Members returns the chain, in processing order.
func (p *Pipeline) Members() []model.Node { return p.members.Values() }

// AddMember appends node to the chain.
func (p *Pipeline) AddMember(node model.Node) error {
	err := p.checkMembers(append(p.members.Values(), node))
	if err != nil {
		return err
	}

	return p.members.Append(node)
}

// RemoveMember removes node from the chain. It reports whether node was a member.
func (p *Pipeline) RemoveMember(node model.Node) (bool, error) {
	return p.members.Remove(node)
}

// SetMembers replaces the chain.
func (p *Pipeline) SetMembers(nodes ...model.Node) error {
	err := p.checkMembers(nodes)
	if err != nil {
		return err
	}

	return p.members.SetValues(nodes)
}

// Contains reports whether node is part of the chain.
func (p *Pipeline) Contains(node model.Node) bool { return p.members.Contains(node) }

// LastMember returns the last member of the chain, or the pipeline itself when the
// chain is empty.
func (p *Pipeline) LastMember() model.PostObject {
	last, ok := p.members.Last()
	if !ok {
		return p
	}

	return last
}

func (p *Pipeline) checkMembers(nodes []model.Node) error {
	names := map[string]struct{}{p.source.Name(): {}}

	for _, node := range nodes {
		if node == nil {
			return ErrNodeMustBeSet
		}

		if _, ok := names[node.Name()]; ok {
			return errors.Wrapf(ErrDuplicateMember, "%s", node.Name())
		}

		names[node.Name()] = struct{}{}
	}

	return nil
}

func (p *Pipeline) subscribeMembers() {
	for _, unsubscribe := range p.unsubscribe {
		unsubscribe()
	}

	p.unsubscribe = p.unsubscribe[:0]
	for _, member := range p.members.Values() {
		p.unsubscribe = append(p.unsubscribe, member.Subscribe(p.propagator.onNodeEvent))
	}
}

// HasSteps reports whether the data has at least one step.
func (p *Pipeline) HasSteps() bool { return p.StepCount() > 0 }

// StepCount returns the number of steps.
func (p *Pipeline) StepCount() int { return len(p.source.StepValues()) }

// StepValues returns the value of every step, in order.
func (p *Pipeline) StepValues() []float64 { return p.source.StepValues() }

// StepUnit returns the unit of the step values.
func (p *Pipeline) StepUnit() units.Unit { return stepUnitOf(p.data.Get()) }

// StepType returns what the steps represent, such as "time" or "mode".
func (p *Pipeline) StepType() string { return stepTypeOf(p.data.Get()) }

// StepLabels returns the labels offered for step selection.
func (p *Pipeline) StepLabels() []string { return p.step.Enums() }

// CurrentStepLabel returns the label of the selected step.
func (p *Pipeline) CurrentStepLabel() string { return p.step.ValueAsString() }

// CurrentStep returns the index of the selected step, or property.NoSelection.
func (p *Pipeline) CurrentStep() int { return p.step.Index() }

// SelectStep selects step i.
func (p *Pipeline) SelectStep(i int) error {
	if i < 0 || i >= len(p.step.Enums()) {
		return errors.Wrapf(ErrStepNotFound, "index %d", i)
	}

	return p.step.SetIndex(i)
}

// SelectStepLabel selects the step labelled label.
func (p *Pipeline) SelectStepLabel(label string) error {
	err := p.step.SetValueString(label)
	if errors.Is(err, property.ErrUnknownValue) {
		return errors.Wrapf(ErrStepNotFound, "%q", label)
	}

	return err
}

// StepValue returns the value of the selected step. Without selection the first step
// is used; without steps, or out of range, the value is 0.
func (p *Pipeline) StepValue() float64 {
	idx := p.step.Index()
	if idx < 0 {
		idx = 0
	}

	steps := p.source.StepValues()
	if idx >= len(steps) {
		return 0
	}

	return steps[idx]
}

// Connections returns the links between the source and the members, in chain order.
func (p *Pipeline) Connections() []Connection {
	return p.graph.connections(p.members.Values())
}

// Close releases the member subscriptions and finishes the pipeline options.
func (p *Pipeline) Close() error {
	for _, unsubscribe := range p.unsubscribe {
		unsubscribe()
	}

	p.unsubscribe = nil
	p.disconnect()

	for _, hook := range p.hooks {
		err := hook.Finish()
		if err != nil {
			return errors.Wrap(err, "unable to finish pipeline option")
		}
	}

	return nil
}

var _ model.PostObject = (*Pipeline)(nil)
