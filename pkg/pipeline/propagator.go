package pipeline

import (
	"github.com/pkg/errors"

	"github.com/askiada/go-postpipeline/pkg/dataset"
	"github.com/askiada/go-postpipeline/pkg/pipeline/model"
	"github.com/askiada/go-postpipeline/pkg/property"
)

// Names of the pipeline properties.
const (
	DataProperty    = "Data"
	StepProperty    = "Step"
	ModeProperty    = "Mode"
	MembersProperty = "Members"
)

// propagator turns property changes and member events into source updates, step
// propagation and rewiring.
type propagator struct {
	p *Pipeline
	// reselecting is set while the step labels are rebuilt after a dataset change.
	reselecting bool
}

func (pr *propagator) onChanged(change property.Change) error {
	if change.Container != pr.p.container {
		return nil
	}

	switch change.Property.Name() {
	case DataProperty:
		return pr.datasetReplaced()
	case StepProperty:
		if pr.reselecting {
			return nil
		}

		return pr.stepChanged()
	case MembersProperty:
		pr.p.subscribeMembers()

		return pr.rewire()
	case ModeProperty:
		return pr.rewire()
	}

	return nil
}

func (pr *propagator) datasetReplaced() error {
	p := pr.p

	data := p.data.Get()
	p.source.SetDataset(data)

	previous := p.step.ValueAsString()

	steps := p.source.StepValues()
	if _, ok := data.(*dataset.Collection); ok && len(steps) == 0 {
		p.logger.Debug("multiblock dataset is not fully set up with time values", "pipeline", p.name)
	}

	labels := p.catalog.Rebuild(steps, stepUnitOf(data))

	idx := p.catalog.Reselect(previous)
	if idx == property.NoSelection {
		// an enumeration with labels always shows the first one
		idx = 0
	}

	pr.reselecting = true
	err := p.step.SetEnums(labels, idx)
	pr.reselecting = false

	if err != nil {
		return errors.Wrap(err, "unable to update step labels")
	}

	p.step.PurgeTouched()

	return pr.stepChanged()
}

func (pr *propagator) stepChanged() error {
	p := pr.p

	value := p.StepValue()
	p.source.UpdateTimeStep(value)

	for _, opt := range p.hooks {
		err := opt.OnStep(value)
		if err != nil {
			return errors.Wrap(err, "unable to run on step function")
		}
	}

	for _, member := range p.members.Values() {
		member.SetStep(value)
		member.Touch()
	}

	return nil
}

func (pr *propagator) rewire() error {
	return pr.p.graph.rewire(pr.p.mode.Get(), pr.p.members.Values())
}

func (pr *propagator) onNodeEvent(ev model.NodeEvent) error {
	switch ev.Kind {
	case model.EventModified:
		pr.memberModified(ev.Node)
	case model.EventPipelineChanged:
		return pr.rewire()
	case model.EventComputed:
		return pr.memberComputed(ev)
	}

	return nil
}

// memberModified marks every member after node as outdated. Parallel members do not
// depend on each other.
func (pr *propagator) memberModified(node model.Node) {
	if pr.p.mode.Get() != model.Serial {
		return
	}

	after := false

	for _, member := range pr.p.members.Values() {
		if after {
			member.Touch()
		}

		if member == node {
			after = true
		}
	}
}

func (pr *propagator) memberComputed(ev model.NodeEvent) error {
	if len(pr.p.hooks) == 0 || ev.Node == nil {
		return nil
	}

	upstream := model.SourceInfo(pr.p.source.Name())
	if name, ok := pr.p.graph.upstreamOf(ev.Node.Name()); ok && name != pr.p.source.Name() {
		upstream = model.FilterInfo(name)
	}

	filter := model.FilterInfo(ev.Node.Name())
	for _, opt := range pr.p.hooks {
		err := opt.OnFilterOutput(upstream, filter, ev.PullDuration, ev.ComputeDuration)
		if err != nil {
			return errors.Wrap(err, "unable to run on filter output function")
		}
	}

	return nil
}
